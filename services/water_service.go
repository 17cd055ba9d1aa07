package services

import (
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

type WaterLogInput struct {
	EntryDate string  `json:"entry_date"` // YYYY-MM-DD, empty = today
	AmountML  float64 `json:"amount_ml" binding:"required,gt=0"`
}

func (s *WaterService) LogWater(userID uint, in WaterLogInput) (*models.WaterLog, error) {
	day, err := resolveDay(in.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := &models.WaterLog{
		UserID:    userID,
		EntryDate: day,
		AmountML:  in.AmountML,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	AfterWaterLog(userID, day)
	return entry, nil
}

func (s *WaterService) ListWaterLogs(userID uint, day time.Time) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := s.db.
		Where("user_id = ? AND entry_date = ?", userID, dayStartLocal(day)).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}
