package services

import (
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodEntryInput struct {
	EntryDate   string  `json:"entry_date"` // YYYY-MM-DD, empty = today
	FoodName    string  `json:"food_name" binding:"required"`
	MealType    string  `json:"meal_type"`
	ServingSize float64 `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// LogEntry persists a food entry and then triggers the daily rollup for the
// affected date. The rollup runs after the write commits and cannot fail it.
func (s *FoodService) LogEntry(userID uint, in FoodEntryInput) (*models.FoodEntry, error) {
	day, err := resolveDay(in.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodEntry{
		UserID:      userID,
		EntryDate:   day,
		FoodName:    in.FoodName,
		MealType:    in.MealType,
		ServingSize: in.ServingSize,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	AfterFoodEntry(userID, day)
	return entry, nil
}

func (s *FoodService) ListEntries(userID uint, day time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND entry_date = ?", userID, dayStartLocal(day)).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// resolveDay parses a YYYY-MM-DD date string, defaulting to today.
func resolveDay(s string) (time.Time, error) {
	if s == "" {
		return dayStartLocal(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
