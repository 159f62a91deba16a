package specification

import (
	"time"

	"gorm.io/gorm"
)

// DueForCompletion selects approved freeze requests whose end date has
// passed. Used by the reactivation sweep.
type DueForCompletion struct {
	Now time.Time
}

func (s DueForCompletion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND freeze_end_date <= ?", "APPROVED", s.Now)
}

// ActiveFreezeBlockers selects requests that block a new freeze request:
// anything pending approval, plus approved freezes still running.
type ActiveFreezeBlockers struct {
	Now time.Time
}

func (s ActiveFreezeBlockers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? OR (status = ? AND freeze_end_date > ?)",
		"PENDING_APPROVAL", "APPROVED", s.Now)
}
