package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	EntryDate time.Time `gorm:"index;not null"` // truncated to local midnight

	ActivityType   string  // e.g. "running"
	DurationMin    float64 // minutes
	CaloriesBurned float64
}
