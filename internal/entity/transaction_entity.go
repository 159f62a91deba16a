package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusCancelled  TransactionStatus = "CANCELLED"
	TransactionStatusRefunded   TransactionStatus = "REFUNDED"
	TransactionStatusExpired    TransactionStatus = "EXPIRED"
)

// IsTerminalTransactionStatus reports whether no further transitions are
// expected from the given status. Redundant updates past a terminal status
// are still absorbed by the settlement idempotency check.
func IsTerminalTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed,
		TransactionStatusCancelled, TransactionStatusRefunded,
		TransactionStatusExpired:
		return true
	}
	return false
}

// Transaction is a payment gateway order. One transaction may fund multiple
// memberships (bundle purchases); its lifetime is independent of any single
// membership. Metadata holds provider state such as the cached snap token.
type Transaction struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	ProductId       uuid.UUID
	Amount          float64
	Currency        string
	Status          TransactionStatus
	PaidAt          *time.Time
	PaymentMethod   string
	PaymentProvider string
	Metadata        map[string]interface{}
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
