package store

import "github.com/google/uuid"

// SessionTemplate is a reusable blueprint for a class session. Templates are
// deliberately non-durable: they live in process memory behind
// TemplateRepository and are lost on restart. A persistent backend can be
// swapped in behind the same interface.
type SessionTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClassItemId uuid.UUID  `json:"class_item_id"`
	TeacherId   *uuid.UUID `json:"teacher_id,omitempty"`
	Weekday     int        `json:"weekday"` // 0 = Sunday
	StartHour   int        `json:"start_hour"`
	StartMinute int        `json:"start_minute"`
	DurationMin int        `json:"duration_min"`
	Capacity    int        `json:"capacity"`
}
