package model

import (
	"time"

	"github.com/google/uuid"
)

type FreezeRequest struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MembershipId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	Reason          string     `gorm:"type:varchar(20);not null"`
	Details         string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(50);not null;index"`
	RejectionReason string     `gorm:"type:text"`
	FreezeStartDate *time.Time
	FreezeEndDate   *time.Time `gorm:"index"`
	TotalFrozenDays *int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (FreezeRequest) TableName() string {
	return "freeze_requests"
}
