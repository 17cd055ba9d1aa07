package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	EntryDate time.Time `gorm:"index;not null"` // truncated to local midnight

	AmountML float64 `gorm:"column:amount_ml"`
}
