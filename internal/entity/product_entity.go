package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuotaType string

const (
	// QuotaTypeIndividual tracks consumption per product item.
	QuotaTypeIndividual QuotaType = "INDIVIDUAL"
	// QuotaTypeShared tracks consumption against a pool spanning
	// multiple product items.
	QuotaTypeShared QuotaType = "SHARED"
)

// Product is a purchasable membership package.
type Product struct {
	Id           uuid.UUID
	Name         string
	Slug         string
	Description  string
	Price        float64
	Currency     string
	DurationDays int
	IsActive     bool
	Items        []ProductItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequiresPayment reports whether acquiring this product goes through the
// payment gateway. Free products activate memberships immediately.
func (p *Product) RequiresPayment() bool {
	return p.Price > 0
}

// ProductItem binds a product to a bookable class item together with the
// quota strategy used when bookings consume it. QuotaPoolId is set only for
// SHARED items.
type ProductItem struct {
	Id          uuid.UUID
	ProductId   uuid.UUID
	ClassItemId uuid.UUID
	QuotaType   QuotaType
	QuotaPoolId *uuid.UUID
	QuotaLimit  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotaPool is a shared usage counter definition spanning multiple
// product items.
type QuotaPool struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
