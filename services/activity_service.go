package services

import (
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

type ActivityLogInput struct {
	EntryDate      string  `json:"entry_date"` // YYYY-MM-DD, empty = today
	ActivityType   string  `json:"activity_type" binding:"required"`
	DurationMin    float64 `json:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned"`
}

func (s *ActivityService) LogActivity(userID uint, in ActivityLogInput) (*models.ActivityLog, error) {
	day, err := resolveDay(in.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{
		UserID:         userID,
		EntryDate:      day,
		ActivityType:   in.ActivityType,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	AfterActivityLog(userID, day)
	return entry, nil
}

func (s *ActivityService) ListActivities(userID uint, day time.Time) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := s.db.
		Where("user_id = ? AND entry_date = ?", userID, dayStartLocal(day)).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}
