package models

import (
	"time"

	"gorm.io/gorm"
)

// Multiple entries may exist for the same date; the rollup picks the
// most recently created one.
type WeightLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	LoggedDate time.Time `gorm:"index;not null"` // truncated to local midnight

	WeightKg float64
	BMI      float64 `gorm:"column:bmi"` // derived from the user's stored height; 0 when height unknown
}
