package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Catalog ---

type ProductResponse struct {
	Id           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Description  string                `json:"description"`
	Price        float64               `json:"price"`
	Currency     string                `json:"currency"`
	DurationDays int                   `json:"duration_days"`
	Items        []ProductItemResponse `json:"items,omitempty"`
}

type ProductItemResponse struct {
	Id          uuid.UUID  `json:"id"`
	ClassItemId uuid.UUID  `json:"class_item_id"`
	QuotaType   string     `json:"quota_type"`
	QuotaPoolId *uuid.UUID `json:"quota_pool_id,omitempty"`
	QuotaLimit  int        `json:"quota_limit"`
}

type CreateProductRequest struct {
	Name         string                     `json:"name" validate:"required,min=3"`
	Slug         string                     `json:"slug" validate:"required,min=3"`
	Description  string                     `json:"description"`
	Price        float64                    `json:"price" validate:"gte=0"`
	Currency     string                     `json:"currency" validate:"required,len=3"`
	DurationDays int                        `json:"duration_days" validate:"required,gt=0"`
	Items        []CreateProductItemRequest `json:"items" validate:"dive"`
}

type CreateProductItemRequest struct {
	ClassItemId uuid.UUID  `json:"class_item_id" validate:"required"`
	QuotaType   string     `json:"quota_type" validate:"required,oneof=INDIVIDUAL SHARED"`
	QuotaPoolId *uuid.UUID `json:"quota_pool_id" validate:"required_if=QuotaType SHARED"`
	QuotaLimit  int        `json:"quota_limit" validate:"gte=0"`
}

// --- Purchase ---

type PurchaseMembershipRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
}

type PurchaseMembershipResponse struct {
	MembershipId    uuid.UUID  `json:"membership_id"`
	TransactionId   *uuid.UUID `json:"transaction_id,omitempty"`
	Status          string     `json:"status"`
	SnapToken       string     `json:"snap_token,omitempty"`
	SnapRedirectUrl string     `json:"snap_redirect_url,omitempty"`
}

// --- Membership views ---

type MembershipResponse struct {
	Id            uuid.UUID  `json:"id"`
	ProductId     uuid.UUID  `json:"product_id"`
	ProductName   string     `json:"product_name,omitempty"`
	Status        string     `json:"status"`
	JoinDate      time.Time  `json:"join_date"`
	ExpiredAt     time.Time  `json:"expired_at"`
	RemainingQuota *int      `json:"remaining_quota,omitempty"`
	TransactionId *uuid.UUID `json:"transaction_id,omitempty"`
}

type QuotaUsageResponse struct {
	ProductItemId *uuid.UUID `json:"product_item_id,omitempty"`
	QuotaPoolId   *uuid.UUID `json:"quota_pool_id,omitempty"`
	UsedCount     int        `json:"used_count"`
}
