package quota

import (
	"context"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
)

// Ledger tracks per-membership consumption against the quota strategy of a
// product item. INDIVIDUAL items count against the (membership, product item)
// pair, SHARED items against the (membership, quota pool) pair.
//
// Both operations must run inside the caller's unit of work, in the same
// transaction as the booking mutation they accompany.
type Ledger struct {
	logger logger.ILogger
}

func NewLedger(logger logger.ILogger) *Ledger {
	return &Ledger{logger: logger}
}

// resolveItem finds the product item binding the membership's product to the
// class item. A nil result means the product does not meter the class item,
// which the ledger treats as unlimited.
func (l *Ledger) resolveItem(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership, classItemId uuid.UUID) (*entity.ProductItem, error) {
	return uow.ProductRepository().FindItem(ctx, m.ProductId, classItemId)
}

// Consume records one unit of usage for the class item under the membership.
// A class item the membership's product does not cover is a silent no-op; the
// caller decides whether an uncovered item should block the booking.
func (l *Ledger) Consume(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership, classItemId uuid.UUID) error {
	item, err := l.resolveItem(ctx, uow, m, classItemId)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	switch item.QuotaType {
	case entity.QuotaTypeIndividual:
		return uow.QuotaUsageRepository().IncrementItemUsage(ctx, m.Id, item.Id)
	case entity.QuotaTypeShared:
		if item.QuotaPoolId == nil {
			return apperror.Newf(apperror.KindInternal,
				"product item %s is SHARED but has no quota pool", item.Id)
		}
		return uow.QuotaUsageRepository().IncrementPoolUsage(ctx, m.Id, *item.QuotaPoolId)
	default:
		return apperror.Newf(apperror.KindInternal,
			"product item %s has unknown quota type %q", item.Id, item.QuotaType)
	}
}

// Release returns one unit of usage. The decrement is clamped at the database
// level so releasing more often than consumed leaves the counter at zero.
// Uncovered class items and missing counters are silent no-ops.
func (l *Ledger) Release(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership, classItemId uuid.UUID) error {
	item, err := l.resolveItem(ctx, uow, m, classItemId)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	switch item.QuotaType {
	case entity.QuotaTypeIndividual:
		return uow.QuotaUsageRepository().DecrementItemUsage(ctx, m.Id, item.Id)
	case entity.QuotaTypeShared:
		if item.QuotaPoolId == nil {
			return apperror.Newf(apperror.KindInternal,
				"product item %s is SHARED but has no quota pool", item.Id)
		}
		return uow.QuotaUsageRepository().DecrementPoolUsage(ctx, m.Id, *item.QuotaPoolId)
	default:
		return apperror.Newf(apperror.KindInternal,
			"product item %s has unknown quota type %q", item.Id, item.QuotaType)
	}
}

// Usage reports the current counters for a membership, keyed by the quota
// key each product item resolves to. Used by the member profile and the
// admin dashboard.
func (l *Ledger) Usage(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership) ([]*entity.MembershipQuotaUsage, error) {
	return uow.QuotaUsageRepository().FindAll(ctx, specification.MembershipOf{MembershipID: m.Id})
}
