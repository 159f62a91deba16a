package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/pkg/logger"
	pkgEvents "github.com/martinsuhendra/manta-sub002/pkg/events"
	pkgNats "github.com/martinsuhendra/manta-sub002/pkg/nats"
)

// Publisher abstracts event publishing for membership and payment
// operations. Implementations must never fail the business operation:
// publish errors are logged and swallowed.
type Publisher interface {
	PublishPaymentCompleted(ctx context.Context, transactionId, userId uuid.UUID, amount float64, method string)
	PublishPaymentFailed(ctx context.Context, transactionId, userId uuid.UUID, status string)
	PublishMembershipActivated(ctx context.Context, membershipId, userId uuid.UUID, expiredAt time.Time)
	PublishMembershipSuspended(ctx context.Context, membershipId, userId uuid.UUID, cause string)
	PublishFreezeApproved(ctx context.Context, requestId, membershipId uuid.UUID, startDate, endDate time.Time, totalDays int)
	PublishFreezeRejected(ctx context.Context, requestId, membershipId uuid.UUID, reason string)
	PublishFreezeCompleted(ctx context.Context, requestId, membershipId uuid.UUID)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishPaymentCompleted emits PAYMENT_COMPLETED after a transaction settles
func (p *NatsPublisher) PublishPaymentCompleted(ctx context.Context, transactionId, userId uuid.UUID, amount float64, method string) {
	p.emit(ctx, pkgEvents.TypePaymentCompleted, map[string]interface{}{
		"transaction_id": transactionId,
		"user_id":        userId,
		"amount":         amount,
		"payment_method": method,
		"entity_type":    "transaction",
		"entity_id":      transactionId.String(),
	})
}

// PublishPaymentFailed emits PAYMENT_FAILED for failed, cancelled, expired
// and refunded settlements
func (p *NatsPublisher) PublishPaymentFailed(ctx context.Context, transactionId, userId uuid.UUID, status string) {
	p.emit(ctx, pkgEvents.TypePaymentFailed, map[string]interface{}{
		"transaction_id": transactionId,
		"user_id":        userId,
		"status":         status,
		"entity_type":    "transaction",
		"entity_id":      transactionId.String(),
	})
}

// PublishMembershipActivated emits MEMBERSHIP_ACTIVATED
func (p *NatsPublisher) PublishMembershipActivated(ctx context.Context, membershipId, userId uuid.UUID, expiredAt time.Time) {
	p.emit(ctx, pkgEvents.TypeMembershipActivated, map[string]interface{}{
		"membership_id": membershipId,
		"user_id":       userId,
		"expired_at":    expiredAt,
		"entity_type":   "membership",
		"entity_id":     membershipId.String(),
	})
}

// PublishMembershipSuspended emits MEMBERSHIP_SUSPENDED
func (p *NatsPublisher) PublishMembershipSuspended(ctx context.Context, membershipId, userId uuid.UUID, cause string) {
	p.emit(ctx, pkgEvents.TypeMembershipSuspended, map[string]interface{}{
		"membership_id": membershipId,
		"user_id":       userId,
		"cause":         cause,
		"entity_type":   "membership",
		"entity_id":     membershipId.String(),
	})
}

// PublishFreezeApproved emits FREEZE_APPROVED
func (p *NatsPublisher) PublishFreezeApproved(ctx context.Context, requestId, membershipId uuid.UUID, startDate, endDate time.Time, totalDays int) {
	p.emit(ctx, pkgEvents.TypeFreezeApproved, map[string]interface{}{
		"request_id":    requestId,
		"membership_id": membershipId,
		"start_date":    startDate,
		"end_date":      endDate,
		"total_days":    totalDays,
		"entity_type":   "freeze_request",
		"entity_id":     requestId.String(),
	})
}

// PublishFreezeRejected emits FREEZE_REJECTED
func (p *NatsPublisher) PublishFreezeRejected(ctx context.Context, requestId, membershipId uuid.UUID, reason string) {
	p.emit(ctx, pkgEvents.TypeFreezeRejected, map[string]interface{}{
		"request_id":    requestId,
		"membership_id": membershipId,
		"reason":        reason,
		"entity_type":   "freeze_request",
		"entity_id":     requestId.String(),
	})
}

// PublishFreezeCompleted emits FREEZE_COMPLETED when the sweep finishes a
// freeze window
func (p *NatsPublisher) PublishFreezeCompleted(ctx context.Context, requestId, membershipId uuid.UUID) {
	p.emit(ctx, pkgEvents.TypeFreezeCompleted, map[string]interface{}{
		"request_id":    requestId,
		"membership_id": membershipId,
		"entity_type":   "freeze_request",
		"entity_id":     requestId.String(),
	})
}
