package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTargets_FallsBackToDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "notargets@test.local")
	svc := NewTargetService(db)

	targets, err := svc.GetTargets(user.ID)
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultCalorieGoal), targets.DailyCalories)
	assert.Equal(t, float64(DefaultProteinGoal), targets.DailyProtein)
	assert.Equal(t, float64(DefaultCarbsGoal), targets.DailyCarbs)
	assert.Equal(t, float64(DefaultFatGoal), targets.DailyFat)
	assert.Equal(t, float64(DefaultWaterGoalML), targets.WaterTargetML)
}

func TestUpsertTargets_CreateThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "settargets@test.local")
	svc := NewTargetService(db)

	created, err := svc.UpsertTargets(user.ID, TargetsInput{
		DailyCalories: 1900, DailyProtein: 130, DailyCarbs: 240, DailyFat: 65, WaterTargetML: 2800,
	})
	require.NoError(t, err)
	assert.Equal(t, 1900.0, created.DailyCalories)

	updated, err := svc.UpsertTargets(user.ID, TargetsInput{
		DailyCalories: 2100, DailyProtein: 140, DailyCarbs: 260, DailyFat: 70, WaterTargetML: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2100.0, updated.DailyCalories)

	got, err := svc.GetTargets(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2100.0, got.DailyCalories)
	assert.Equal(t, 3000.0, got.WaterTargetML)
}
