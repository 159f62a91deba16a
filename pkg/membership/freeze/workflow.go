package freeze

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

// Workflow drives the freeze request state machine:
// PENDING_APPROVAL -> {APPROVED, REJECTED}, APPROVED -> COMPLETED.
// REJECTED and COMPLETED are terminal. Membership status changes triggered
// by the machine go through the lifecycle controller.
type Workflow struct {
	logger    logger.ILogger
	lifecycle *lifecycle.Controller
	events    events.Publisher
}

func NewWorkflow(logger logger.ILogger, lc *lifecycle.Controller, publisher events.Publisher) *Workflow {
	return &Workflow{
		logger:    logger,
		lifecycle: lc,
		events:    publisher,
	}
}

// validateRequest checks every precondition for a new freeze request and
// returns a NotAllowed error naming the first one violated. Pure so the
// rules are testable without storage.
func validateRequest(m *entity.Membership, requesterId uuid.UUID, blockers []*entity.FreezeRequest, now time.Time) error {
	if m.UserId != requesterId {
		return apperror.NotAllowed("membership does not belong to the requester")
	}
	if m.Status != entity.MembershipStatusActive {
		return apperror.Newf(apperror.KindNotAllowed,
			"only ACTIVE memberships can be frozen (current status: %s)", m.Status)
	}
	if !m.ExpiredAt.After(now) {
		return apperror.NotAllowed("membership has already expired")
	}
	for _, b := range blockers {
		if b.Status == entity.FreezeStatusPendingApproval {
			return apperror.NotAllowed("a freeze request is already awaiting approval for this membership")
		}
		if b.Status == entity.FreezeStatusApproved && b.FreezeEndDate != nil && b.FreezeEndDate.After(now) {
			return apperror.NotAllowed("an approved freeze is still running for this membership")
		}
	}
	return nil
}

// Request creates a freeze request in PENDING_APPROVAL. The duplicate-request
// scan runs inside the same transaction as the insert so two concurrent
// requests cannot both pass the precondition.
func (w *Workflow) Request(ctx context.Context, uow unitofwork.UnitOfWork, membershipId, requesterId uuid.UUID, reason entity.FreezeReason, details string) (*entity.FreezeRequest, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()

	m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: membershipId})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("membership")
	}

	blockers, err := uow.FreezeRequestRepository().FindAll(ctx,
		specification.MembershipOf{MembershipID: membershipId},
		specification.ActiveFreezeBlockers{Now: now},
	)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(m, requesterId, blockers, now); err != nil {
		return nil, err
	}

	request := &entity.FreezeRequest{
		Id:           uuid.New(),
		MembershipId: membershipId,
		RequestedBy:  requesterId,
		Reason:       reason,
		Details:      details,
		Status:       entity.FreezeStatusPendingApproval,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.FreezeRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	w.logger.Info("FREEZE", "Freeze request created", map[string]interface{}{
		"requestId":    request.Id.String(),
		"membershipId": membershipId.String(),
		"reason":       string(reason),
	})
	return request, nil
}

// Approve transitions a pending request to APPROVED, freezes the membership
// and, when the freeze window swallows the membership's expiry date, extends
// expiredAt by the frozen days so the member keeps the paid time. All writes
// share one transaction.
func (w *Workflow) Approve(ctx context.Context, uow unitofwork.UnitOfWork, requestId, approverId uuid.UUID, startDate time.Time, days int) (*entity.FreezeRequest, error) {
	if days <= 0 {
		return nil, apperror.Validation("freeze duration must be at least one day")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	request, err := uow.FreezeRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("freeze request")
	}
	if request.Status != entity.FreezeStatusPendingApproval {
		return nil, apperror.Newf(apperror.KindInvalidState,
			"freeze request is %s, expected PENDING_APPROVAL", request.Status)
	}

	m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: request.MembershipId})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("membership")
	}
	// Approving a freeze for a membership that expired since the request
	// was filed would skip the extension rule entirely; refuse instead.
	if !m.ExpiredAt.After(time.Now()) {
		return nil, apperror.NotAllowed("membership has already expired")
	}

	endDate := ComputeEndDate(startDate, days)
	totalDays := days

	request.Status = entity.FreezeStatusApproved
	request.ApprovedBy = &approverId
	request.FreezeStartDate = &startDate
	request.FreezeEndDate = &endDate
	request.TotalFrozenDays = &totalDays
	request.UpdatedAt = time.Now()

	if err := uow.FreezeRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if ShouldExtendExpiration(m.ExpiredAt, startDate, endDate) {
		if err := w.lifecycle.ExtendExpiration(ctx, uow, m, totalDays); err != nil {
			return nil, err
		}
	}

	if err := w.lifecycle.Freeze(ctx, uow, m); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	w.logger.Info("FREEZE", "Freeze request approved", map[string]interface{}{
		"requestId":    request.Id.String(),
		"membershipId": m.Id.String(),
		"startDate":    startDate.Format(time.DateOnly),
		"endDate":      endDate.Format(time.DateOnly),
		"totalDays":    totalDays,
	})
	if w.events != nil {
		w.events.PublishFreezeApproved(ctx, request.Id, m.Id, startDate, endDate, totalDays)
	}
	return request, nil
}

// Reject transitions a pending request to REJECTED. The membership is not
// touched.
func (w *Workflow) Reject(ctx context.Context, uow unitofwork.UnitOfWork, requestId, approverId uuid.UUID, rejectionReason string) (*entity.FreezeRequest, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	request, err := uow.FreezeRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("freeze request")
	}
	if request.Status != entity.FreezeStatusPendingApproval {
		return nil, apperror.Newf(apperror.KindInvalidState,
			"freeze request is %s, expected PENDING_APPROVAL", request.Status)
	}

	request.Status = entity.FreezeStatusRejected
	request.ApprovedBy = &approverId
	request.RejectionReason = rejectionReason
	request.UpdatedAt = time.Now()

	if err := uow.FreezeRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	w.logger.Info("FREEZE", "Freeze request rejected", map[string]interface{}{
		"requestId": request.Id.String(),
		"reason":    rejectionReason,
	})
	if w.events != nil {
		w.events.PublishFreezeRejected(ctx, request.Id, request.MembershipId, rejectionReason)
	}
	return request, nil
}

// CompleteDue finishes every approved freeze whose end date has passed:
// the request moves to COMPLETED and its membership back to ACTIVE. The
// whole batch commits atomically so a membership is never left ACTIVE with
// an APPROVED freeze or vice versa. Returns the number of freezes completed.
func (w *Workflow) CompleteDue(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) (int, error) {
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	due, err := uow.FreezeRequestRepository().FindAll(ctx, specification.DueForCompletion{Now: now})
	if err != nil {
		return 0, err
	}

	completed := make([]*entity.FreezeRequest, 0, len(due))
	for _, request := range due {
		m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: request.MembershipId})
		if err != nil {
			return 0, err
		}
		if m == nil {
			// Membership removed while frozen; close the request anyway.
			w.logger.Warn("FREEZE", "Due freeze has no membership", map[string]interface{}{
				"requestId":    request.Id.String(),
				"membershipId": request.MembershipId.String(),
			})
		} else if m.Status == entity.MembershipStatusFreezed {
			if err := w.lifecycle.Activate(ctx, uow, m); err != nil {
				return 0, err
			}
		}

		request.Status = entity.FreezeStatusCompleted
		request.UpdatedAt = now
		if err := uow.FreezeRequestRepository().Update(ctx, request); err != nil {
			return 0, err
		}
		completed = append(completed, request)
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	if len(completed) > 0 {
		w.logger.Info("FREEZE", "Reactivation sweep finished", map[string]interface{}{
			"completed": len(completed),
		})
	}
	if w.events != nil {
		for _, request := range completed {
			w.events.PublishFreezeCompleted(ctx, request.Id, request.MembershipId)
		}
	}
	return len(completed), nil
}
