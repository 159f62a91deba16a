package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/mailer"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/freeze"
)

type IFreezeService interface {
	CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateFreezeRequest) (*dto.FreezeRequestResponse, error)
	MyRequests(ctx context.Context, userId uuid.UUID) ([]*dto.FreezeRequestResponse, error)
	Approve(ctx context.Context, approverId, requestId uuid.UUID, req *dto.ApproveFreezeRequest) (*dto.FreezeRequestResponse, error)
	Reject(ctx context.Context, approverId, requestId uuid.UUID, req *dto.RejectFreezeRequest) (*dto.FreezeRequestResponse, error)
	PendingRequests(ctx context.Context) ([]*dto.FreezeRequestResponse, error)
	Sweep(ctx context.Context) (*dto.SweepResponse, error)
}

type freezeService struct {
	uowFactory   unitofwork.RepositoryFactory
	workflow     *freeze.Workflow
	emailService mailer.IEmailService
}

func NewFreezeService(
	uowFactory unitofwork.RepositoryFactory,
	workflow *freeze.Workflow,
	emailService mailer.IEmailService,
) IFreezeService {
	return &freezeService{
		uowFactory:   uowFactory,
		workflow:     workflow,
		emailService: emailService,
	}
}

func (s *freezeService) CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateFreezeRequest) (*dto.FreezeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := s.workflow.Request(ctx, uow, req.MembershipId, userId, entity.FreezeReason(req.Reason), req.Details)
	if err != nil {
		return nil, err
	}

	res := toFreezeResponse(request)
	return &res, nil
}

func (s *freezeService) MyRequests(ctx context.Context, userId uuid.UUID) ([]*dto.FreezeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.FreezeRequestRepository().FindAll(ctx,
		specification.Filter("requested_by", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toFreezeResponses(requests), nil
}

func (s *freezeService) Approve(ctx context.Context, approverId, requestId uuid.UUID, req *dto.ApproveFreezeRequest) (*dto.FreezeRequestResponse, error) {
	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, apperror.Validation("start_date must be YYYY-MM-DD")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := s.workflow.Approve(ctx, uow, requestId, approverId, startDate, req.Days)
	if err != nil {
		return nil, err
	}

	s.sendDecisionEmail(ctx, request, "approved",
		fmt.Sprintf("Your membership is frozen from %s to %s.",
			request.FreezeStartDate.Format(time.DateOnly),
			request.FreezeEndDate.Format(time.DateOnly)))

	res := toFreezeResponse(request)
	return &res, nil
}

func (s *freezeService) Reject(ctx context.Context, approverId, requestId uuid.UUID, req *dto.RejectFreezeRequest) (*dto.FreezeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := s.workflow.Reject(ctx, uow, requestId, approverId, req.Reason)
	if err != nil {
		return nil, err
	}

	detail := "Contact the front desk if you have questions."
	if request.RejectionReason != "" {
		detail = "Reason: " + request.RejectionReason
	}
	s.sendDecisionEmail(ctx, request, "rejected", detail)

	res := toFreezeResponse(request)
	return &res, nil
}

func (s *freezeService) PendingRequests(ctx context.Context) ([]*dto.FreezeRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.FreezeRequestRepository().FindAll(ctx,
		specification.Filter("status", entity.FreezeStatusPendingApproval),
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toFreezeResponses(requests), nil
}

// Sweep is invoked by an external periodic caller; it completes every
// approved freeze whose window has passed.
func (s *freezeService) Sweep(ctx context.Context) (*dto.SweepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	completed, err := s.workflow.CompleteDue(ctx, uow, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.SweepResponse{Completed: completed}, nil
}

// sendDecisionEmail notifies the requester of an approval or rejection.
// Failures are logged and swallowed.
func (s *freezeService) sendDecisionEmail(ctx context.Context, request *entity.FreezeRequest, decision, detail string) {
	if s.emailService == nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.RequestedBy})
	if err != nil || user == nil {
		log.Printf("[WARN] Cannot resolve requester %s for freeze email: %v", request.RequestedBy, err)
		return
	}

	if err := s.emailService.SendFreezeDecision(user.Email, user.FullName, decision, detail); err != nil {
		log.Printf("[WARN] Failed to send freeze decision email to %s: %v", user.Email, err)
	}
}

func toFreezeResponse(r *entity.FreezeRequest) dto.FreezeRequestResponse {
	return dto.FreezeRequestResponse{
		Id:              r.Id,
		MembershipId:    r.MembershipId,
		Reason:          string(r.Reason),
		Details:         r.Details,
		Status:          string(r.Status),
		FreezeStartDate: r.FreezeStartDate,
		FreezeEndDate:   r.FreezeEndDate,
		TotalFrozenDays: r.TotalFrozenDays,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

func toFreezeResponses(requests []*entity.FreezeRequest) []*dto.FreezeRequestResponse {
	res := make([]*dto.FreezeRequestResponse, 0, len(requests))
	for _, r := range requests {
		fr := toFreezeResponse(r)
		res = append(res, &fr)
	}
	return res
}
