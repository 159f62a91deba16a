package lifecycle

import (
	"context"
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
)

// Controller is the single writer of Membership.status. Settlement, the
// freeze workflow and the reactivation sweep all go through its named
// transitions; nothing else in the codebase touches the column. Callers are
// expected to run transitions inside their own unit-of-work transaction so
// concurrent writers serialize at the storage layer.
type Controller struct {
	logger logger.ILogger
}

func NewController(logger logger.ILogger) *Controller {
	return &Controller{
		logger: logger,
	}
}

// transitions maps a target status to the statuses it may be entered from.
var transitions = map[entity.MembershipStatus][]entity.MembershipStatus{
	entity.MembershipStatusActive: {
		entity.MembershipStatusPending,
		entity.MembershipStatusSuspended,
		entity.MembershipStatusFreezed,
	},
	entity.MembershipStatusFreezed: {
		entity.MembershipStatusActive,
	},
	// A refund can suspend a membership in any state.
	entity.MembershipStatusSuspended: {
		entity.MembershipStatusPending,
		entity.MembershipStatusActive,
		entity.MembershipStatusFreezed,
		entity.MembershipStatusExpired,
	},
}

// CanTransition reports whether a membership may move from one status to
// another.
func CanTransition(from, to entity.MembershipStatus) bool {
	for _, allowed := range transitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

// EffectiveStatus derives the status a membership presents at the given
// time. Expiration is computed on read rather than swept: an ACTIVE
// membership whose expiredAt has passed reads as EXPIRED without a write.
func EffectiveStatus(m *entity.Membership, now time.Time) entity.MembershipStatus {
	if m.Status == entity.MembershipStatusActive && !m.ExpiredAt.After(now) {
		return entity.MembershipStatusExpired
	}
	return m.Status
}

// Activate moves a membership to ACTIVE. Used by settlement (payment
// completed) and the reactivation sweep (freeze finished).
func (c *Controller) Activate(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership) error {
	return c.transition(ctx, uow, m, entity.MembershipStatusActive)
}

// Suspend moves a membership to SUSPENDED. Used by settlement when a
// transaction fails, is cancelled, expires or is refunded.
func (c *Controller) Suspend(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership) error {
	return c.transition(ctx, uow, m, entity.MembershipStatusSuspended)
}

// Freeze moves an ACTIVE membership to FREEZED. Used by freeze approval.
func (c *Controller) Freeze(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership) error {
	return c.transition(ctx, uow, m, entity.MembershipStatusFreezed)
}

func (c *Controller) transition(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership, to entity.MembershipStatus) error {
	from := m.Status
	// Re-applying the current status is a no-op, not an error, so retried
	// settlements and sweeps cause no duplicate writes.
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return apperror.Newf(apperror.KindInvalidState,
			"membership %s cannot move from %s to %s", m.Id, from, to)
	}

	if err := uow.MembershipRepository().UpdateStatus(ctx, m.Id, to); err != nil {
		return err
	}
	m.Status = to

	c.logger.Info("LIFECYCLE", "Membership status changed", map[string]interface{}{
		"membershipId": m.Id.String(),
		"from":         string(from),
		"to":           string(to),
	})
	return nil
}

// ExtendExpiration pushes a membership's expiredAt forward by the given
// number of calendar days. Status is untouched; the caller's transaction
// makes the extension atomic with whatever triggered it.
func (c *Controller) ExtendExpiration(ctx context.Context, uow unitofwork.UnitOfWork, m *entity.Membership, days int) error {
	m.ExpiredAt = m.ExpiredAt.AddDate(0, 0, days)
	return uow.MembershipRepository().Update(ctx, m)
}
