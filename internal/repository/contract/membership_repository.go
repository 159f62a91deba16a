package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) error
	Update(ctx context.Context, membership *entity.Membership) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Membership, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Membership, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateStatus writes only the status column for a single membership.
	// Only pkg/membership/lifecycle calls this.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MembershipStatus) error
}
