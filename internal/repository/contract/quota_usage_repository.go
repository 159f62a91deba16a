package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

// QuotaUsageRepository persists per-membership usage counters. A counter is
// keyed by (membership, product item) for INDIVIDUAL quotas or
// (membership, quota pool) for SHARED quotas.
type QuotaUsageRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MembershipQuotaUsage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MembershipQuotaUsage, error)

	// IncrementItemUsage upserts the (membership, product item) counter.
	IncrementItemUsage(ctx context.Context, membershipId, productItemId uuid.UUID) error
	// IncrementPoolUsage upserts the (membership, quota pool) counter.
	IncrementPoolUsage(ctx context.Context, membershipId, quotaPoolId uuid.UUID) error

	// DecrementItemUsage decrements the counter, guarded in SQL by
	// used_count > 0 so concurrent releases can never drive it negative.
	// Missing rows and zero counters are silent no-ops.
	DecrementItemUsage(ctx context.Context, membershipId, productItemId uuid.UUID) error
	DecrementPoolUsage(ctx context.Context, membershipId, quotaPoolId uuid.UUID) error
}
