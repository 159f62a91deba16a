package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	paymidtrans "github.com/martinsuhendra/manta-sub002/pkg/payment/midtrans"
	"github.com/martinsuhendra/manta-sub002/pkg/payment/settlement"
)

type IPaymentService interface {
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	ManualSettle(ctx context.Context, transactionId uuid.UUID, req *dto.ManualSettleRequest) (*dto.TransactionResponse, error)
	GetSnapToken(ctx context.Context, userId, transactionId uuid.UUID) (*dto.SnapTokenResponse, error)
	GetMyTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error)
}

type paymentService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          *paymidtrans.Gateway
	settler          *settlement.Settler
	publisherService IPublisherService
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gateway *paymidtrans.Gateway,
	settler *settlement.Settler,
	publisherService IPublisherService,
) IPaymentService {
	return &paymentService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		settler:          settler,
		publisherService: publisherService,
	}
}

// HandleNotification processes a Midtrans webhook. Both authenticity checks
// run before any state is touched: the signature digest and a direct status
// query against Midtrans. Either failing rejects the delivery.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if err := s.gateway.VerifySignature(req.OrderId, req.StatusCode, req.GrossAmount, req.SignatureKey); err != nil {
		return err
	}

	transactionId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return apperror.Validation("invalid order id format")
	}

	newStatus, actionable := paymidtrans.MapStatus(req.TransactionStatus, req.FraudStatus)
	if !actionable {
		log.Printf("[WEBHOOK] Ignoring unknown transaction_status %q for %s", req.TransactionStatus, req.OrderId)
		return nil
	}

	if err := s.gateway.VerifyStatus(req.OrderId, req.TransactionStatus); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	result, err := s.settler.Settle(ctx, uow, transactionId, newStatus, settlement.SourceWebhook, settlement.Options{
		PaymentMethod:   req.PaymentType,
		PaymentProvider: "midtrans",
	})
	if err != nil {
		return err
	}

	if result.Applied && newStatus == entity.TransactionStatusCompleted {
		s.notifyPaymentCompleted(ctx, result.Transaction)
	}
	return nil
}

// ManualSettle is the trusted admin entry point. No signature check; the
// payment method defaults to "Manual" when absent.
func (s *paymentService) ManualSettle(ctx context.Context, transactionId uuid.UUID, req *dto.ManualSettleRequest) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result, err := s.settler.Settle(ctx, uow, transactionId, entity.TransactionStatus(req.Status), settlement.SourceManual, settlement.Options{
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	if result.Applied && result.Transaction.Status == entity.TransactionStatusCompleted {
		s.notifyPaymentCompleted(ctx, result.Transaction)
	}

	res := toTransactionResponse(result.Transaction)
	return &res, nil
}

// notifyPaymentCompleted hands the receipt email off to the notifier
// consumer. Fire and forget.
func (s *paymentService) notifyPaymentCompleted(ctx context.Context, transaction *entity.Transaction) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.PaymentCompletedMessage{
		TransactionId: transaction.Id,
		UserId:        transaction.UserId,
	})
	if err != nil {
		log.Printf("[WARN] Failed to marshal payment notification for %s: %v", transaction.Id, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish payment notification for %s: %v", transaction.Id, err)
	}
}

// GetSnapToken returns a payment token for a pending transaction, reusing
// the one cached in the transaction metadata while it is fresh.
func (s *paymentService) GetSnapToken(ctx context.Context, userId, transactionId uuid.UUID) (*dto.SnapTokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	transaction, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: transactionId})
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NotFound("transaction")
	}
	if transaction.UserId != userId {
		return nil, apperror.NotAllowed("transaction does not belong to the requester")
	}
	if entity.IsTerminalTransactionStatus(transaction.Status) {
		return nil, apperror.InvalidState("transaction is already settled")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: transaction.ProductId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product")
	}

	token, err := s.gateway.SnapTokenFor(transaction, user, product)
	if err != nil {
		return nil, err
	}

	if !token.Reused {
		if err := uow.TransactionRepository().Update(ctx, transaction); err != nil {
			return nil, err
		}
	}

	return &dto.SnapTokenResponse{
		TransactionId:   transaction.Id,
		SnapToken:       token.Token,
		SnapRedirectUrl: token.RedirectURL,
		Reused:          token.Reused,
	}, nil
}

func (s *paymentService) GetMyTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	transactions, err := uow.TransactionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		r := toTransactionResponse(t)
		res = append(res, &r)
	}
	return res, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:              t.Id,
		ProductId:       t.ProductId,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          string(t.Status),
		PaymentMethod:   t.PaymentMethod,
		PaymentProvider: t.PaymentProvider,
		PaidAt:          t.PaidAt,
		CreatedAt:       t.CreatedAt,
	}
}
