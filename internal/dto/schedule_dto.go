package dto

import (
	"github.com/google/uuid"
)

type SessionTemplateRequest struct {
	Name        string     `json:"name" validate:"required,min=3"`
	ClassItemId uuid.UUID  `json:"class_item_id" validate:"required"`
	TeacherId   *uuid.UUID `json:"teacher_id"`
	Weekday     int        `json:"weekday" validate:"gte=0,lte=6"`
	StartHour   int        `json:"start_hour" validate:"gte=0,lte=23"`
	StartMinute int        `json:"start_minute" validate:"gte=0,lte=59"`
	DurationMin int        `json:"duration_min" validate:"required,gt=0"`
	Capacity    int        `json:"capacity" validate:"required,gt=0"`
}

type SessionTemplateResponse struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	ClassItemId uuid.UUID  `json:"class_item_id"`
	TeacherId   *uuid.UUID `json:"teacher_id,omitempty"`
	Weekday     int        `json:"weekday"`
	StartHour   int        `json:"start_hour"`
	StartMinute int        `json:"start_minute"`
	DurationMin int        `json:"duration_min"`
	Capacity    int        `json:"capacity"`
}

// GenerateSessionsRequest materializes class sessions from a template for a
// date range.
type GenerateSessionsRequest struct {
	TemplateId string `json:"template_id" validate:"required"`
	FromDate   string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate     string `json:"to_date" validate:"required,datetime=2006-01-02"`
}
