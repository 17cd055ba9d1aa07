package services

import (
	"testing"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntry_TriggersRollup(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewFoodService(db)

	entry, err := svc.LogEntry(user.ID, FoodEntryInput{
		FoodName: "oatmeal", MealType: "Breakfast", ServingSize: 80,
		Calories: 300, Protein: 10, Carbs: 54, Fat: 5,
	})
	require.NoError(t, err)
	assert.True(t, entry.EntryDate.Equal(today()))

	var row models.UserDailyData
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, today()).First(&row).Error)
	assert.Equal(t, 300.0, row.TotalCaloriesConsumed)
	assert.Equal(t, 54.0, row.TotalCarbsConsumed)
}

func TestLogEntry_ExplicitDate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "fooddate@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewFoodService(db)

	date := today().AddDate(0, 0, -3)
	entry, err := svc.LogEntry(user.ID, FoodEntryInput{
		EntryDate: date.Format("2006-01-02"), FoodName: "rice", Calories: 200,
	})
	require.NoError(t, err)
	assert.True(t, entry.EntryDate.Equal(date))

	var row models.UserDailyData
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, date).First(&row).Error)
	assert.Equal(t, 200.0, row.TotalCaloriesConsumed)
}

func TestLogEntry_RejectsMalformedDate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "badfooddate@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewFoodService(db)

	_, err := svc.LogEntry(user.ID, FoodEntryInput{EntryDate: "03/12/2025", FoodName: "rice"})
	assert.Error(t, err)
}

func TestListEntries_OnlyRequestedDay(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "foodlist@test.local")
	InitRollupHooks(NewRollupService(db), nil, nil)
	svc := NewFoodService(db)

	_, err := svc.LogEntry(user.ID, FoodEntryInput{FoodName: "toast", Calories: 150})
	require.NoError(t, err)
	_, err = svc.LogEntry(user.ID, FoodEntryInput{
		EntryDate: today().AddDate(0, 0, -1).Format("2006-01-02"), FoodName: "soup", Calories: 250,
	})
	require.NoError(t, err)

	entries, err := svc.ListEntries(user.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "toast", entries[0].FoodName)
}
