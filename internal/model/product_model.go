package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Slug         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:decimal(12,2);not null"`
	Currency     string    `gorm:"type:varchar(10);not null;default:'IDR'"`
	DurationDays int       `gorm:"not null"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	// Relations
	Items []*ProductItem `gorm:"foreignKey:ProductId"`
}

func (Product) TableName() string {
	return "products"
}

type ProductItem struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClassItemId uuid.UUID  `gorm:"type:uuid;not null;index"`
	QuotaType   string     `gorm:"type:varchar(20);not null"`
	QuotaPoolId *uuid.UUID `gorm:"type:uuid;index"`
	QuotaLimit  int        `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (ProductItem) TableName() string {
	return "product_items"
}

type QuotaPool struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (QuotaPool) TableName() string {
	return "quota_pools"
}
