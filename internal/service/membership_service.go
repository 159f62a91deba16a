package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/lifecycle"
	"github.com/martinsuhendra/manta-sub002/pkg/membership/quota"
	paymidtrans "github.com/martinsuhendra/manta-sub002/pkg/payment/midtrans"
)

type IMembershipService interface {
	Purchase(ctx context.Context, userId uuid.UUID, req *dto.PurchaseMembershipRequest) (*dto.PurchaseMembershipResponse, error)
	MyMemberships(ctx context.Context, userId uuid.UUID) ([]*dto.MembershipResponse, error)
	GetMembership(ctx context.Context, userId, membershipId uuid.UUID) (*dto.MembershipResponse, error)
	GetQuotaUsage(ctx context.Context, userId, membershipId uuid.UUID) ([]*dto.QuotaUsageResponse, error)
}

type membershipService struct {
	uowFactory unitofwork.RepositoryFactory
	lifecycle  *lifecycle.Controller
	ledger     *quota.Ledger
	gateway    *paymidtrans.Gateway
}

func NewMembershipService(
	uowFactory unitofwork.RepositoryFactory,
	lc *lifecycle.Controller,
	ledger *quota.Ledger,
	gateway *paymidtrans.Gateway,
) IMembershipService {
	return &membershipService{
		uowFactory: uowFactory,
		lifecycle:  lc,
		ledger:     ledger,
		gateway:    gateway,
	}
}

// Purchase creates a membership for the product. A free product activates
// on the spot; a paid one starts PENDING tied to a PENDING transaction and
// the caller gets a snap token to complete payment.
func (s *membershipService) Purchase(ctx context.Context, userId uuid.UUID, req *dto.PurchaseMembershipRequest) (*dto.PurchaseMembershipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product")
	}
	if !product.IsActive {
		return nil, apperror.NotAllowed("product is not available for purchase")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	now := time.Now()
	membership := &entity.Membership{
		Id:        uuid.New(),
		UserId:    userId,
		ProductId: product.Id,
		Status:    entity.MembershipStatusPending,
		JoinDate:  now,
		ExpiredAt: now.AddDate(0, 0, product.DurationDays),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var transaction *entity.Transaction
	if product.RequiresPayment() {
		transaction = &entity.Transaction{
			Id:        uuid.New(),
			UserId:    userId,
			ProductId: product.Id,
			Amount:    product.Price,
			Currency:  product.Currency,
			Status:    entity.TransactionStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		membership.TransactionId = &transaction.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if transaction != nil {
		if err := uow.TransactionRepository().Create(ctx, transaction); err != nil {
			return nil, err
		}
	}
	if err := uow.MembershipRepository().Create(ctx, membership); err != nil {
		return nil, err
	}
	if transaction == nil {
		// Free product: no settlement will arrive, activate now.
		if err := s.lifecycle.Activate(ctx, uow, membership); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := &dto.PurchaseMembershipResponse{
		MembershipId: membership.Id,
		Status:       string(membership.Status),
	}

	if transaction != nil {
		res.TransactionId = &transaction.Id

		// Provider call stays outside the transaction; a failed token
		// request leaves a PENDING transaction the member can retry.
		token, err := s.gateway.SnapTokenFor(transaction, user, product)
		if err != nil {
			log.Printf("[WARN] Snap token issuance failed for %s: %v", transaction.Id, err)
			return res, nil
		}
		if err := uow.TransactionRepository().Update(ctx, transaction); err != nil {
			return nil, err
		}
		res.SnapToken = token.Token
		res.SnapRedirectUrl = token.RedirectURL
	}

	return res, nil
}

func (s *membershipService) MyMemberships(ctx context.Context, userId uuid.UUID) ([]*dto.MembershipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	memberships, err := uow.MembershipRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := make([]*dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		r := toMembershipResponse(m, now)
		res = append(res, &r)
	}
	return res, nil
}

func (s *membershipService) GetMembership(ctx context.Context, userId, membershipId uuid.UUID) (*dto.MembershipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	m, err := s.findOwned(ctx, uow, userId, membershipId)
	if err != nil {
		return nil, err
	}

	res := toMembershipResponse(m, time.Now())

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: m.ProductId})
	if err != nil {
		return nil, err
	}
	if product != nil {
		res.ProductName = product.Name
	}
	return &res, nil
}

func (s *membershipService) GetQuotaUsage(ctx context.Context, userId, membershipId uuid.UUID) ([]*dto.QuotaUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	m, err := s.findOwned(ctx, uow, userId, membershipId)
	if err != nil {
		return nil, err
	}

	usages, err := s.ledger.Usage(ctx, uow, m)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.QuotaUsageResponse, 0, len(usages))
	for _, u := range usages {
		res = append(res, &dto.QuotaUsageResponse{
			ProductItemId: u.ProductItemId,
			QuotaPoolId:   u.QuotaPoolId,
			UsedCount:     u.UsedCount,
		})
	}
	return res, nil
}

func (s *membershipService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, membershipId uuid.UUID) (*entity.Membership, error) {
	m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: membershipId})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("membership")
	}
	if m.UserId != userId {
		return nil, apperror.NotAllowed("membership does not belong to the requester")
	}
	return m, nil
}

func toMembershipResponse(m *entity.Membership, now time.Time) dto.MembershipResponse {
	return dto.MembershipResponse{
		Id:             m.Id,
		ProductId:      m.ProductId,
		Status:         string(lifecycle.EffectiveStatus(m, now)),
		JoinDate:       m.JoinDate,
		ExpiredAt:      m.ExpiredAt,
		RemainingQuota: m.RemainingQuota,
		TransactionId:  m.TransactionId,
	}
}
