package services

import (
	"testing"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWeight_DerivesBMI(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "bmi@test.local") // 175 cm
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewWeightService(db)

	entry, err := svc.LogWeight(user.ID, WeightLogInput{WeightKg: 70})
	require.NoError(t, err)
	assert.InDelta(t, 22.86, entry.BMI, 0.01)

	// the post-write hook refreshed the summary
	var row models.UserDailyData
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, today()).First(&row).Error)
	require.NotNil(t, row.WeightKg)
	assert.Equal(t, 70.0, *row.WeightKg)
}

func TestLogWeight_UnknownHeightKeepsZeroBMI(t *testing.T) {
	db := setupTestDB(t)
	user := &models.User{Email: "noheight@test.local"}
	require.NoError(t, db.Create(user).Error)
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewWeightService(db)

	entry, err := svc.LogWeight(user.ID, WeightLogInput{WeightKg: 70})
	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.BMI)
}

func TestLogWeight_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewWeightService(db)

	_, err := svc.LogWeight(9999, WeightLogInput{WeightKg: 70})
	assert.Error(t, err)
}
