package model

import (
	"time"

	"github.com/google/uuid"
)

type Membership struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionId  *uuid.UUID `gorm:"type:uuid;index"`
	Status         string     `gorm:"type:varchar(50);not null;index"`
	JoinDate       time.Time  `gorm:"not null"`
	ExpiredAt      time.Time  `gorm:"not null;index"`
	RemainingQuota *int
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	// Owned rows, removed with the membership.
	FreezeRequests []*FreezeRequest        `gorm:"foreignKey:MembershipId;constraint:OnDelete:CASCADE"`
	QuotaUsages    []*MembershipQuotaUsage `gorm:"foreignKey:MembershipId;constraint:OnDelete:CASCADE"`
}

func (Membership) TableName() string {
	return "memberships"
}

type MembershipQuotaUsage struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MembershipId  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_usage_item;uniqueIndex:idx_usage_pool"`
	ProductItemId *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_usage_item"`
	QuotaPoolId   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_usage_pool"`
	UsedCount     int        `gorm:"not null;default:0;check:used_count >= 0"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (MembershipQuotaUsage) TableName() string {
	return "membership_quota_usages"
}
