package entity

import (
	"time"

	"github.com/google/uuid"
)

type FreezeStatus string
type FreezeReason string

const (
	FreezeStatusPendingApproval FreezeStatus = "PENDING_APPROVAL"
	FreezeStatusApproved        FreezeStatus = "APPROVED"
	FreezeStatusRejected        FreezeStatus = "REJECTED"
	FreezeStatusCompleted       FreezeStatus = "COMPLETED"

	FreezeReasonMedical  FreezeReason = "MEDICAL"
	FreezeReasonPersonal FreezeReason = "PERSONAL"
)

// FreezeRequest is a member's request to temporarily suspend a membership.
// PENDING_APPROVAL -> APPROVED -> COMPLETED, or PENDING_APPROVAL -> REJECTED.
// Start/end dates and TotalFrozenDays stay nil until an admin approves.
type FreezeRequest struct {
	Id              uuid.UUID
	MembershipId    uuid.UUID
	RequestedBy     uuid.UUID
	ApprovedBy      *uuid.UUID
	Reason          FreezeReason
	Details         string
	Status          FreezeStatus
	RejectionReason string
	FreezeStartDate *time.Time
	FreezeEndDate   *time.Time
	TotalFrozenDays *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
