package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFreezeRequest struct {
	MembershipId uuid.UUID `json:"membership_id" validate:"required"`
	Reason       string    `json:"reason" validate:"required,oneof=MEDICAL PERSONAL"`
	Details      string    `json:"details" validate:"omitempty,max=500"`
}

type ApproveFreezeRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Days      int    `json:"days" validate:"required,gt=0"`
}

type RejectFreezeRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type FreezeRequestResponse struct {
	Id              uuid.UUID  `json:"id"`
	MembershipId    uuid.UUID  `json:"membership_id"`
	Reason          string     `json:"reason"`
	Details         string     `json:"details,omitempty"`
	Status          string     `json:"status"`
	FreezeStartDate *time.Time `json:"freeze_start_date,omitempty"`
	FreezeEndDate   *time.Time `json:"freeze_end_date,omitempty"`
	TotalFrozenDays *int       `json:"total_frozen_days,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SweepResponse struct {
	Completed int `json:"completed"`
}
