package models

import (
	"time"
)

// UserDailyData is the materialized per-(user, date) rollup row. It is a
// snapshot of the source logs as of the last rollup call, never a source
// of truth, and is only ever written through the engine's atomic upsert.
type UserDailyData struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"uniqueIndex:idx_daily_data_user_date;not null" json:"user_id"`
	Date   time.Time `gorm:"uniqueIndex:idx_daily_data_user_date;not null" json:"date"`

	TotalCaloriesConsumed float64 `json:"total_calories_consumed"`
	TotalProteinConsumed  float64 `json:"total_protein_consumed"`
	TotalCarbsConsumed    float64 `json:"total_carbs_consumed"`
	TotalFatConsumed      float64 `json:"total_fat_consumed"`
	TotalCaloriesBurned   float64 `json:"total_calories_burned"`
	WaterConsumedML       float64 `gorm:"column:water_consumed_ml" json:"water_consumed_ml"`

	// Nil until a weight log exists for the date; preserved across
	// rollups on dates with no weight log.
	WeightKg *float64 `json:"weight_kg"`

	// Goal snapshot copied from the user's targets at rollup time.
	DailyCalorieGoal float64 `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbsGoal   float64 `json:"daily_carbs_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`
	DailyWaterGoal   float64 `json:"daily_water_goal"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserDailyData) TableName() string { return "user_daily_data" }
