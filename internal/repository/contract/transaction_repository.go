package contract

import (
	"context"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	// FindOneForUpdate locks the row (SELECT ... FOR UPDATE) so concurrent
	// webhook deliveries serialize on the idempotency check.
	FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)

	// Dashboard stats
	SumCompletedAmount(ctx context.Context) (float64, error)
}
