package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Transaction struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount          float64   `gorm:"type:decimal(12,2);not null"`
	Currency        string    `gorm:"type:varchar(10);not null;default:'IDR'"`
	Status          string    `gorm:"type:varchar(50);not null;index"`
	PaidAt          *time.Time
	PaymentMethod   string            `gorm:"type:varchar(100)"`
	PaymentProvider string            `gorm:"type:varchar(100)"`
	Metadata        datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt       time.Time         `gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime"`

	// Shared by reference: a transaction may fund multiple memberships.
	Memberships []*Membership `gorm:"foreignKey:TransactionId"`
}

func (Transaction) TableName() string {
	return "transactions"
}
