package contract

import (
	"context"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type FreezeRequestRepository interface {
	Create(ctx context.Context, request *entity.FreezeRequest) error
	Update(ctx context.Context, request *entity.FreezeRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FreezeRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FreezeRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
