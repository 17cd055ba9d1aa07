package services

import (
	"errors"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"gorm.io/gorm"
)

type TargetService struct {
	db *gorm.DB
}

func NewTargetService(db *gorm.DB) *TargetService {
	return &TargetService{db: db}
}

// GetTargets returns the user's configured daily targets, falling back to
// the rollup's defaults when goal setup was skipped. Never an error for a
// missing row.
func (s *TargetService) GetTargets(userID uint) (*models.UserDailyTargets, error) {
	var t models.UserDailyTargets
	err := s.db.Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserDailyTargets{
			UserID:        userID,
			DailyCalories: DefaultCalorieGoal,
			DailyProtein:  DefaultProteinGoal,
			DailyCarbs:    DefaultCarbsGoal,
			DailyFat:      DefaultFatGoal,
			WaterTargetML: DefaultWaterGoalML,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type TargetsInput struct {
	DailyCalories float64 `json:"daily_calories" binding:"required,gt=0"`
	DailyProtein  float64 `json:"daily_protein" binding:"required,gt=0"`
	DailyCarbs    float64 `json:"daily_carbs" binding:"required,gt=0"`
	DailyFat      float64 `json:"daily_fat" binding:"required,gt=0"`
	WaterTargetML float64 `json:"water_target_ml" binding:"required,gt=0"`
}

// UpsertTargets creates or replaces the single targets row for the user.
// The next rollup for any date picks up the new goal snapshot.
func (s *TargetService) UpsertTargets(userID uint, in TargetsInput) (*models.UserDailyTargets, error) {
	var t models.UserDailyTargets
	err := s.db.Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = models.UserDailyTargets{
			UserID:        userID,
			DailyCalories: in.DailyCalories,
			DailyProtein:  in.DailyProtein,
			DailyCarbs:    in.DailyCarbs,
			DailyFat:      in.DailyFat,
			WaterTargetML: in.WaterTargetML,
		}
		if err := s.db.Create(&t).Error; err != nil {
			return nil, err
		}
		return &t, nil
	}
	if err != nil {
		return nil, err
	}

	t.DailyCalories = in.DailyCalories
	t.DailyProtein = in.DailyProtein
	t.DailyCarbs = in.DailyCarbs
	t.DailyFat = in.DailyFat
	t.WaterTargetML = in.WaterTargetML
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
