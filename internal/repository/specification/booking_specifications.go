package specification

import (
	"time"

	"gorm.io/gorm"
)

// SessionsBetween filters class sessions starting inside [From, To).
type SessionsBetween struct {
	From time.Time
	To   time.Time
}

func (s SessionsBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("starts_at >= ? AND starts_at < ?", s.From, s.To)
}

// CreatedBetween filters rows created inside [From, To).
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ? AND created_at < ?", s.From, s.To)
}
