package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipOf filters rows by membership reference
type MembershipOf struct {
	MembershipID uuid.UUID
}

func (s MembershipOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("membership_id = ?", s.MembershipID)
}

// StatusIn filters rows whose status is one of the given values
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// FundedByTransaction selects memberships owned by a payment transaction
type FundedByTransaction struct {
	TransactionID uuid.UUID
}

func (s FundedByTransaction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_id = ?", s.TransactionID)
}
