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
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/quota"
)

type IBookingService interface {
	CreateBooking(ctx context.Context, userId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, userId, bookingId uuid.UUID) error
	MyBookings(ctx context.Context, userId uuid.UUID) ([]*dto.BookingResponse, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	ledger     *quota.Ledger
}

func NewBookingService(uowFactory unitofwork.RepositoryFactory, ledger *quota.Ledger) IBookingService {
	return &bookingService{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// CreateBooking reserves a session slot and consumes quota in the same
// database transaction, so a booking never exists without its quota
// adjustment having been applied.
func (s *bookingService) CreateBooking(ctx context.Context, userId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: req.MembershipId})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("membership")
	}
	if m.UserId != userId {
		return nil, apperror.NotAllowed("membership does not belong to the requester")
	}

	now := time.Now()
	if lifecycle.EffectiveStatus(m, now) != entity.MembershipStatusActive {
		return nil, apperror.NotAllowed("membership is not active")
	}

	session, err := uow.BookingRepository().FindOneSession(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("class session")
	}
	if !session.StartsAt.After(now) {
		return nil, apperror.NotAllowed("session has already started")
	}

	existing, err := uow.BookingRepository().FindOne(ctx,
		specification.Filter("membership_id", req.MembershipId),
		specification.Filter("class_session_id", req.SessionId),
		specification.Filter("status", entity.BookingStatusBooked),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NotAllowed("session is already booked under this membership")
	}

	booked, err := uow.BookingRepository().CountForSession(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	if booked >= int64(session.Capacity) {
		return nil, apperror.NotAllowed("session is fully booked")
	}

	booking := &entity.Booking{
		Id:             uuid.New(),
		UserId:         userId,
		MembershipId:   m.Id,
		ClassSessionId: session.Id,
		Status:         entity.BookingStatusBooked,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.ledger.Consume(ctx, uow, m, session.ClassItemId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toBookingResponse(booking)
	return &res, nil
}

// CancelBooking flips the booking to CANCELLED and releases the quota unit
// in one transaction. The release clamps at zero on the database side.
func (s *bookingService) CancelBooking(ctx context.Context, userId, bookingId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil {
		return err
	}
	if booking == nil {
		return apperror.NotFound("booking")
	}
	if booking.UserId != userId {
		return apperror.NotAllowed("booking does not belong to the requester")
	}
	if booking.Status != entity.BookingStatusBooked {
		return apperror.InvalidState("booking is already cancelled")
	}

	m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: booking.MembershipId})
	if err != nil {
		return err
	}
	if m == nil {
		return apperror.NotFound("membership")
	}

	session, err := uow.BookingRepository().FindOneSession(ctx, specification.ByID{ID: booking.ClassSessionId})
	if err != nil {
		return err
	}

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()
	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return err
	}

	if session != nil {
		if err := s.ledger.Release(ctx, uow, m, session.ClassItemId); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *bookingService) MyBookings(ctx context.Context, userId uuid.UUID) ([]*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookings, err := uow.BookingRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		r := toBookingResponse(b)
		res = append(res, &r)
	}
	return res, nil
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		Id:           b.Id,
		MembershipId: b.MembershipId,
		SessionId:    b.ClassSessionId,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}
