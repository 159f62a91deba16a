package dto

import (
	"time"

	"github.com/google/uuid"
)

// MidtransWebhookRequest carries the fields of a Midtrans HTTP notification
// this service reads. Amount fields arrive as strings.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type ManualSettleRequest struct {
	Status        string `json:"status" validate:"required,oneof=COMPLETED FAILED CANCELLED EXPIRED REFUNDED"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=64"`
}

type TransactionResponse struct {
	Id              uuid.UUID  `json:"id"`
	ProductId       uuid.UUID  `json:"product_id"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	PaymentProvider string     `json:"payment_provider,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SnapTokenResponse struct {
	TransactionId   uuid.UUID `json:"transaction_id"`
	SnapToken       string    `json:"snap_token"`
	SnapRedirectUrl string    `json:"snap_redirect_url,omitempty"`
	Reused          bool      `json:"reused"`
}

// PaymentCompletedMessage is the payload published on the in-process bus
// for the email notifier after a successful settlement.
type PaymentCompletedMessage struct {
	TransactionId uuid.UUID `json:"transaction_id"`
	UserId        uuid.UUID `json:"user_id"`
}
