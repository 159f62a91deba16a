package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/mailer"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
)

type INotifierService interface {
	Consume(ctx context.Context) error
}

// notifierService drains payment-completed messages and sends the receipt
// email. Runs on the in-process bus so a slow SMTP server never blocks a
// webhook response.
type notifierService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *notifierService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PaymentCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal payment notification: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	transaction, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: payload.TransactionId})
	if err != nil {
		log.Printf("[ERROR] Failed to load transaction %s: %v", payload.TransactionId, err)
		msg.Nack()
		return
	}
	if transaction == nil {
		log.Printf("[ERROR] Transaction not found: %s", payload.TransactionId)
		msg.Ack()
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to load user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[ERROR] User not found: %s", payload.UserId)
		msg.Ack()
		return
	}

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: transaction.ProductId})
	if err != nil {
		log.Printf("[ERROR] Failed to load product %s: %v", transaction.ProductId, err)
		msg.Nack()
		return
	}

	productName := "your membership"
	if product != nil {
		productName = product.Name
	}

	// Email failure is logged and acked; a receipt is not worth a retry
	// storm against a dead SMTP server.
	if err := s.emailService.SendPaymentSuccess(user.Email, user.FullName, productName, transaction.Amount, transaction.Currency); err != nil {
		log.Printf("[ERROR] Failed to send payment receipt for %s: %v", transaction.Id, err)
	}

	msg.Ack()
}
