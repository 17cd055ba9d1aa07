package services

import (
	"testing"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection keeps the in-memory database alive for the whole test
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.ActivityLog{},
		&models.WaterLog{},
		&models.WeightLog{},
		&models.UserDailyTargets{},
		&models.UserDailyData{},
		&models.UserDevice{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, HeightCm: 175}
	require.NoError(t, db.Create(u).Error)
	return u
}

func today() time.Time {
	return dayStartLocal(time.Now())
}
