package models

import (
	"gorm.io/gorm"
)

// UserDailyTargets holds each user's configured daily goals. At most one
// row per user; owned by the settings/profile flow and read-only input to
// the rollup.
type UserDailyTargets struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	DailyCalories float64 // kcal
	DailyProtein  float64 // g
	DailyCarbs    float64 // g
	DailyFat      float64 // g
	WaterTargetML float64 `gorm:"column:water_target_ml"` // mL
}
