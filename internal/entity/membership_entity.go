package entity

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipStatusPending   MembershipStatus = "PENDING"
	MembershipStatusActive    MembershipStatus = "ACTIVE"
	MembershipStatusFreezed   MembershipStatus = "FREEZED"
	MembershipStatusExpired   MembershipStatus = "EXPIRED"
	MembershipStatusSuspended MembershipStatus = "SUSPENDED"
)

// Membership is a user's time-boxed, quota-bearing entitlement to a product.
// Status is only written through pkg/membership/lifecycle transitions.
type Membership struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProductId      uuid.UUID
	TransactionId  *uuid.UUID
	Status         MembershipStatus
	JoinDate       time.Time
	ExpiredAt      time.Time
	RemainingQuota *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MembershipQuotaUsage tracks class bookings consumed against a membership.
// Exactly one of ProductItemId / QuotaPoolId is set, depending on the
// product item's quota type.
type MembershipQuotaUsage struct {
	Id            uuid.UUID
	MembershipId  uuid.UUID
	ProductItemId *uuid.UUID
	QuotaPoolId   *uuid.UUID
	UsedCount     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
