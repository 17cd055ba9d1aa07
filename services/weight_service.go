package services

import (
	"errors"

	"github.com/kaanx03/NutriTrack-sub001/models"
	"github.com/kaanx03/NutriTrack-sub001/utils"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

type WeightLogInput struct {
	LoggedDate string  `json:"logged_date"` // YYYY-MM-DD, empty = today
	WeightKg   float64 `json:"weight_kg" binding:"required,gt=0"`
}

// LogWeight records a weight reading, deriving BMI from the user's stored
// height. A missing or implausible height leaves BMI at 0 rather than
// rejecting the reading.
func (s *WeightService) LogWeight(userID uint, in WeightLogInput) (*models.WeightLog, error) {
	day, err := resolveDay(in.LoggedDate)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	bmi := 0.0
	if v, err := utils.CalculateBMI(user.HeightCm, in.WeightKg); err == nil {
		bmi = v
	}

	entry := &models.WeightLog{
		UserID:     userID,
		LoggedDate: day,
		WeightKg:   in.WeightKg,
		BMI:        bmi,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	AfterWeightLog(userID, day)
	return entry, nil
}

func (s *WeightService) ListWeightLogs(userID uint, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		limit = 90
	}
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_date DESC, created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
