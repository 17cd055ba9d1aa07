package services

import (
	"context"
	"errors"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fallback goals used when a user never completed goal setup. The rollup
// must not fail for the lack of a targets row.
const (
	DefaultCalorieGoal = 2000 // kcal
	DefaultProteinGoal = 150  // g
	DefaultCarbsGoal   = 300  // g
	DefaultFatGoal     = 80   // g
	DefaultWaterGoalML = 2500 // mL
)

// RollupService recomputes the per-(user, date) UserDailyData summary from
// the four source logs and the user's targets. Runs at the database's
// default isolation level (READ COMMITTED on Postgres); the one-row-per-key
// invariant is maintained by the ON CONFLICT upsert, not by locking.
type RollupService struct {
	db *gorm.DB
}

func NewRollupService(db *gorm.DB) *RollupService {
	return &RollupService{db: db}
}

type BatchResult struct {
	UpdateCount int `json:"update_count"`
	ErrorCount  int `json:"error_count"`
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// normalizeDay maps the zero time to "today" and truncates to local midnight.
func normalizeDay(day time.Time) time.Time {
	if day.IsZero() {
		day = time.Now()
	}
	return dayStartLocal(day)
}

// UpdateUserDailyData recomputes and upserts the summary row for one
// (user, date). The zero day means today. Everything runs in a single
// transaction; on any error the transaction rolls back and no partial
// write is visible. Every field except weight_kg is overwritten; weight_kg
// is coalesced with the stored value when no weight log exists for the day.
func (s *RollupService) UpdateUserDailyData(ctx context.Context, userID uint, day time.Time) (*models.UserDailyData, error) {
	day = normalizeDay(day)

	var out models.UserDailyData
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food struct {
			Calories float64
			Protein  float64
			Carbs    float64
			Fat      float64
		}
		if err := tx.Model(&models.FoodEntry{}).
			Select("COALESCE(SUM(calories),0) AS calories, COALESCE(SUM(protein),0) AS protein, COALESCE(SUM(carbs),0) AS carbs, COALESCE(SUM(fat),0) AS fat").
			Where("user_id = ? AND entry_date = ?", userID, day).
			Scan(&food).Error; err != nil {
			return err
		}

		var burned float64
		if err := tx.Model(&models.ActivityLog{}).
			Select("COALESCE(SUM(calories_burned),0)").
			Where("user_id = ? AND entry_date = ?", userID, day).
			Scan(&burned).Error; err != nil {
			return err
		}

		var water float64
		if err := tx.Model(&models.WaterLog{}).
			Select("COALESCE(SUM(amount_ml),0)").
			Where("user_id = ? AND entry_date = ?", userID, day).
			Scan(&water).Error; err != nil {
			return err
		}

		// Latest weight reading for the day, if any. Absence is not an
		// error; the upsert keeps the previously stored value.
		var weight *float64
		var wl models.WeightLog
		werr := tx.Where("user_id = ? AND logged_date = ?", userID, day).
			Order("created_at DESC, id DESC").
			First(&wl).Error
		switch {
		case werr == nil:
			weight = &wl.WeightKg
		case errors.Is(werr, gorm.ErrRecordNotFound):
		default:
			return werr
		}

		goals := models.UserDailyTargets{
			DailyCalories: DefaultCalorieGoal,
			DailyProtein:  DefaultProteinGoal,
			DailyCarbs:    DefaultCarbsGoal,
			DailyFat:      DefaultFatGoal,
			WaterTargetML: DefaultWaterGoalML,
		}
		var targets models.UserDailyTargets
		terr := tx.Where("user_id = ?", userID).First(&targets).Error
		switch {
		case terr == nil:
			goals = targets
		case errors.Is(terr, gorm.ErrRecordNotFound):
		default:
			return terr
		}

		now := time.Now()
		row := models.UserDailyData{
			UserID:                userID,
			Date:                  day,
			TotalCaloriesConsumed: food.Calories,
			TotalProteinConsumed:  food.Protein,
			TotalCarbsConsumed:    food.Carbs,
			TotalFatConsumed:      food.Fat,
			TotalCaloriesBurned:   burned,
			WaterConsumedML:       water,
			WeightKg:              weight,
			DailyCalorieGoal:      goals.DailyCalories,
			DailyProteinGoal:      goals.DailyProtein,
			DailyCarbsGoal:        goals.DailyCarbs,
			DailyFatGoal:          goals.DailyFat,
			DailyWaterGoal:        goals.WaterTargetML,
			CreatedAt:             now,
			UpdatedAt:             now,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_calories_consumed": row.TotalCaloriesConsumed,
				"total_protein_consumed":  row.TotalProteinConsumed,
				"total_carbs_consumed":    row.TotalCarbsConsumed,
				"total_fat_consumed":      row.TotalFatConsumed,
				"total_calories_burned":   row.TotalCaloriesBurned,
				"water_consumed_ml":       row.WaterConsumedML,
				// keep the stored weight on days with no weight log
				"weight_kg":          gorm.Expr("COALESCE(excluded.weight_kg, user_daily_data.weight_kg)"),
				"daily_calorie_goal": row.DailyCalorieGoal,
				"daily_protein_goal": row.DailyProteinGoal,
				"daily_carbs_goal":   row.DailyCarbsGoal,
				"daily_fat_goal":     row.DailyFatGoal,
				"daily_water_goal":   row.DailyWaterGoal,
				"updated_at":         now,
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND date = ?", userID, day).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAllUsersDailyData runs the single-user rollup for every active user,
// sequentially, each in its own transaction. One user's failure is logged
// and counted, never fatal to the batch. Only a failure of the initial user
// listing escapes as an error.
func (s *RollupService) UpdateAllUsersDailyData(ctx context.Context, day time.Time) (BatchResult, error) {
	day = normalizeDay(day)

	var res BatchResult
	var users []models.User
	if err := s.db.WithContext(ctx).Where("disabled = ?", false).Find(&users).Error; err != nil {
		return res, err
	}

	for _, u := range users {
		if _, err := s.UpdateUserDailyData(ctx, u.ID, day); err != nil {
			logrus.WithFields(logrus.Fields{
				"task":    "rollup.bulk",
				"user_id": u.ID,
				"date":    day.Format("2006-01-02"),
				"error":   err.Error(),
			}).Error("daily rollup failed")
			res.ErrorCount++
			continue
		}
		res.UpdateCount++
	}

	logrus.WithFields(logrus.Fields{
		"task":    "rollup.bulk",
		"date":    day.Format("2006-01-02"),
		"updated": res.UpdateCount,
		"failed":  res.ErrorCount,
	}).Info("bulk rollup finished")
	return res, nil
}

// BackfillMissingData recomputes the last `days` summary rows for one user,
// today included, with the same per-date fault isolation as the bulk path.
func (s *RollupService) BackfillMissingData(ctx context.Context, userID uint, days int) (BatchResult, error) {
	if days <= 0 {
		days = 30
	}
	today := dayStartLocal(time.Now())

	var res BatchResult
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		if _, err := s.UpdateUserDailyData(ctx, userID, day); err != nil {
			logrus.WithFields(logrus.Fields{
				"task":    "rollup.backfill",
				"user_id": userID,
				"date":    day.Format("2006-01-02"),
				"error":   err.Error(),
			}).Error("daily rollup failed")
			res.ErrorCount++
			continue
		}
		res.UpdateCount++
	}
	return res, nil
}

// GetDailyData returns the summary row for a date, computing it on demand
// when no rollup has happened yet for that (user, date).
func (s *RollupService) GetDailyData(ctx context.Context, userID uint, day time.Time) (*models.UserDailyData, error) {
	day = normalizeDay(day)

	var row models.UserDailyData
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, day).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.UpdateUserDailyData(ctx, userID, day)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetDailyDataHistory returns up to `days` most recent summary rows.
func (s *RollupService) GetDailyDataHistory(ctx context.Context, userID uint, days int) ([]models.UserDailyData, error) {
	if days <= 0 {
		days = 30
	}
	since := dayStartLocal(time.Now()).AddDate(0, 0, -(days - 1))

	var rows []models.UserDailyData
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
