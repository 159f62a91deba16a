package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetMembers(ctx context.Context, query *dto.PaginationQuery) ([]*dto.AdminMemberResponse, error)
	GetMemberDetail(ctx context.Context, memberId uuid.UUID) (*dto.AdminMemberResponse, error)
	GetFreezeRequests(ctx context.Context) ([]*dto.AdminFreezeListResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalMembers, err := uow.UserRepository().Count(ctx,
		specification.Filter("role", entity.UserRoleMember))
	if err != nil {
		return nil, err
	}

	activeMemberships, err := uow.MembershipRepository().Count(ctx,
		specification.Filter("status", entity.MembershipStatusActive))
	if err != nil {
		return nil, err
	}

	frozenMemberships, err := uow.MembershipRepository().Count(ctx,
		specification.Filter("status", entity.MembershipStatusFreezed))
	if err != nil {
		return nil, err
	}

	pendingFreezes, err := uow.FreezeRequestRepository().Count(ctx,
		specification.Filter("status", entity.FreezeStatusPendingApproval))
	if err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	bookingsToday, err := uow.BookingRepository().FindAll(ctx,
		specification.Filter("status", entity.BookingStatusBooked),
		specification.CreatedBetween{From: startOfDay, To: startOfDay.AddDate(0, 0, 1)},
	)
	if err != nil {
		return nil, err
	}

	revenue, err := uow.TransactionRepository().SumCompletedAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalMembers:      totalMembers,
		ActiveMemberships: activeMemberships,
		FrozenMemberships: frozenMemberships,
		PendingFreezes:    pendingFreezes,
		BookingsToday:     int64(len(bookingsToday)),
		CompletedRevenue:  revenue,
	}, nil
}

func (s *adminService) GetMembers(ctx context.Context, query *dto.PaginationQuery) ([]*dto.AdminMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.Filter("role", entity.UserRoleMember),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminMemberResponse, 0, len(users))
	for _, u := range users {
		res = append(res, &dto.AdminMemberResponse{
			Id:        u.Id,
			Email:     u.Email,
			FullName:  u.FullName,
			Role:      string(u.Role),
			Status:    string(u.Status),
			CreatedAt: u.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) GetMemberDetail(ctx context.Context, memberId uuid.UUID) (*dto.AdminMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: memberId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	memberships, err := uow.MembershipRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: memberId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.AdminMemberResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
	now := time.Now()
	for _, m := range memberships {
		res.Memberships = append(res.Memberships, toMembershipResponse(m, now))
	}
	return res, nil
}

func (s *adminService) GetFreezeRequests(ctx context.Context) ([]*dto.AdminFreezeListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.FreezeRequestRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminFreezeListResponse, 0, len(requests))
	for _, r := range requests {
		entry := &dto.AdminFreezeListResponse{Request: toFreezeResponse(r)}

		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: r.RequestedBy})
		if err != nil {
			return nil, err
		}
		if user != nil {
			entry.Member = toUserDTO(user)
		}
		res = append(res, entry)
	}
	return res, nil
}
