package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	MembershipId uuid.UUID `json:"membership_id" validate:"required"`
	SessionId    uuid.UUID `json:"session_id" validate:"required"`
}

type BookingResponse struct {
	Id           uuid.UUID `json:"id"`
	MembershipId uuid.UUID `json:"membership_id"`
	SessionId    uuid.UUID `json:"session_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ClassItemResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type CreateClassItemRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description"`
}

type ClassSessionResponse struct {
	Id          uuid.UUID `json:"id"`
	ClassItemId uuid.UUID `json:"class_item_id"`
	ClassName   string    `json:"class_name,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity"`
	Booked      int       `json:"booked"`
}

type CreateClassSessionRequest struct {
	ClassItemId uuid.UUID `json:"class_item_id" validate:"required"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
}
