package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged food item. Entries are immutable; edits are modeled as
// delete-and-replace by the client.
type FoodEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	EntryDate time.Time `gorm:"index;not null"` // truncated to local midnight

	FoodName    string
	MealType    string  // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	ServingSize float64 // grams

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
