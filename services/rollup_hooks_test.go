package services

import (
	"testing"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFoodEntry_RefreshesSummary(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "hook@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)
	day := today()

	require.NoError(t, db.Create(&models.FoodEntry{UserID: user.ID, EntryDate: day, FoodName: "a", Calories: 450}).Error)

	AfterFoodEntry(user.ID, day)

	var row models.UserDailyData
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, day).First(&row).Error)
	assert.Equal(t, 450.0, row.TotalCaloriesConsumed)
}

func TestAfterWaterLog_DefaultsToToday(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "hookwater@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)

	require.NoError(t, db.Create(&models.WaterLog{UserID: user.ID, EntryDate: today(), AmountML: 300}).Error)

	AfterWaterLog(user.ID, time.Time{})

	var row models.UserDailyData
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, today()).First(&row).Error)
	assert.Equal(t, 300.0, row.WaterConsumedML)
}

func TestHooks_SwallowRollupFailure(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "hookfail@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)

	require.NoError(t, db.Exec("DROP TABLE user_daily_data").Error)

	// must not panic and must not surface the failure
	assert.NotPanics(t, func() { AfterActivityLog(user.ID, today()) })
	assert.NotPanics(t, func() { AfterWeightLog(user.ID, today()) })
}

func TestHooks_NoopWhenUninitialized(t *testing.T) {
	InitRollupHooks(nil, nil, nil)
	assert.NotPanics(t, func() { AfterFoodEntry(1, today()) })
}
