package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/events"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"
)

// Source identifies who initiated a settlement.
type Source string

const (
	SourceWebhook Source = "webhook"
	SourceManual  Source = "manual"
)

// Options carries optional settlement attributes filled in when a
// transaction becomes COMPLETED.
type Options struct {
	PaymentMethod   string
	PaymentProvider string
}

// Result reports what a Settle call did. Applied is false when the
// idempotency gate absorbed the call.
type Result struct {
	Transaction *entity.Transaction
	Applied     bool
	// ActivatedMemberships lists memberships moved to ACTIVE, for the
	// post-commit notification.
	ActivatedMemberships []*entity.Membership
}

// Settler is the single authority moving a transaction to a new status and
// fanning the change out to the memberships it funds. The status write and
// the fan-out commit in one transaction; the idempotency check runs on a
// row-locked read inside that same transaction so concurrent deliveries of
// the same webhook serialize instead of double-applying.
type Settler struct {
	logger    logger.ILogger
	lifecycle *lifecycle.Controller
	events    events.Publisher
}

func NewSettler(logger logger.ILogger, lc *lifecycle.Controller, publisher events.Publisher) *Settler {
	return &Settler{
		logger:    logger,
		lifecycle: lc,
		events:    publisher,
	}
}

// Settle moves the transaction to newStatus and applies the membership
// fan-out. A transaction already in newStatus returns unchanged with
// Applied false: no membership writes, no events.
func (s *Settler) Settle(ctx context.Context, uow unitofwork.UnitOfWork, transactionId uuid.UUID, newStatus entity.TransactionStatus, source Source, opts Options) (*Result, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	transaction, err := uow.TransactionRepository().FindOneForUpdate(ctx, specification.ByID{ID: transactionId})
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NotFound("transaction")
	}

	if transaction.Status == newStatus {
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		s.logger.Info("SETTLEMENT", "Transaction already settled, skipping", map[string]interface{}{
			"transactionId": transactionId.String(),
			"status":        string(newStatus),
		})
		return &Result{Transaction: transaction, Applied: false}, nil
	}

	previous := transaction.Status
	transaction.Status = newStatus
	transaction.UpdatedAt = time.Now()

	if newStatus == entity.TransactionStatusCompleted {
		now := time.Now()
		transaction.PaidAt = &now
		if opts.PaymentMethod != "" {
			transaction.PaymentMethod = opts.PaymentMethod
		} else if source == SourceManual {
			transaction.PaymentMethod = "Manual"
		}
		if opts.PaymentProvider != "" {
			transaction.PaymentProvider = opts.PaymentProvider
		}
	}

	if err := uow.TransactionRepository().Update(ctx, transaction); err != nil {
		return nil, err
	}

	memberships, err := uow.MembershipRepository().FindAll(ctx,
		specification.FundedByTransaction{TransactionID: transactionId})
	if err != nil {
		return nil, err
	}

	var activated []*entity.Membership
	for _, m := range memberships {
		target, affected := MembershipTarget(newStatus, m.Status)
		if !affected {
			continue
		}
		switch target {
		case entity.MembershipStatusActive:
			if err := s.lifecycle.Activate(ctx, uow, m); err != nil {
				return nil, err
			}
			activated = append(activated, m)
		case entity.MembershipStatusSuspended:
			if err := s.lifecycle.Suspend(ctx, uow, m); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("SETTLEMENT", "Transaction settled", map[string]interface{}{
		"transactionId": transactionId.String(),
		"from":          string(previous),
		"to":            string(newStatus),
		"source":        string(source),
		"memberships":   len(memberships),
		"activated":     len(activated),
	})

	s.publishEvents(ctx, transaction, newStatus, memberships, activated)

	return &Result{
		Transaction:          transaction,
		Applied:              true,
		ActivatedMemberships: activated,
	}, nil
}

// publishEvents runs after commit. Event delivery is auxiliary: failures
// are logged inside the publisher and never roll back the settlement.
func (s *Settler) publishEvents(ctx context.Context, transaction *entity.Transaction, newStatus entity.TransactionStatus, memberships, activated []*entity.Membership) {
	if s.events == nil {
		return
	}

	switch newStatus {
	case entity.TransactionStatusCompleted:
		s.events.PublishPaymentCompleted(ctx, transaction.Id, transaction.UserId, transaction.Amount, transaction.PaymentMethod)
		for _, m := range activated {
			s.events.PublishMembershipActivated(ctx, m.Id, m.UserId, m.ExpiredAt)
		}
	case entity.TransactionStatusFailed, entity.TransactionStatusCancelled,
		entity.TransactionStatusExpired, entity.TransactionStatusRefunded:
		s.events.PublishPaymentFailed(ctx, transaction.Id, transaction.UserId, string(newStatus))
		for _, m := range memberships {
			if m.Status == entity.MembershipStatusSuspended {
				s.events.PublishMembershipSuspended(ctx, m.Id, m.UserId, string(newStatus))
			}
		}
	}
}
