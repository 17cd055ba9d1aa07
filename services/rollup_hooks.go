package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kaanx03/NutriTrack-sub001/models"
)

type rollupHookDeps struct {
	rollup *RollupService
	rt     *RealtimeHub
	push   *PushService
}

var _hooks rollupHookDeps

func InitRollupHooks(rollup *RollupService, rt *RealtimeHub, push *PushService) {
	_hooks = rollupHookDeps{rollup: rollup, rt: rt, push: push}
}

// afterSourceWrite refreshes the summary row after a source-table write.
// Best effort: a rollup failure is logged and swallowed so it can never
// fail the write that triggered it; the summary stays stale until the next
// hook call or scheduled bulk pass.
func afterSourceWrite(source string, userID uint, day time.Time) {
	if _hooks.rollup == nil {
		return // not initialized
	}
	day = normalizeDay(day)

	var before float64
	var prev models.UserDailyData
	if err := _hooks.rollup.db.Where("user_id = ? AND date = ?", userID, day).First(&prev).Error; err == nil {
		before = prev.TotalCaloriesConsumed
	}

	summary, err := _hooks.rollup.UpdateUserDailyData(context.Background(), userID, day)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"task":    "rollup.hook",
			"source":  source,
			"user_id": userID,
			"date":    day.Format("2006-01-02"),
			"error":   err.Error(),
		}).Warn("post-write rollup failed")
		return
	}

	if _hooks.rt != nil {
		_hooks.rt.BroadcastSummary(userID, map[string]any{
			"kind":    "daily_data.updated",
			"source":  source,
			"summary": summary,
		})
	}

	// Push once, when this write is the one that crossed the calorie goal.
	if _hooks.push != nil &&
		summary.DailyCalorieGoal > 0 &&
		before < summary.DailyCalorieGoal &&
		summary.TotalCaloriesConsumed >= summary.DailyCalorieGoal {
		_hooks.push.PushToUser(userID, "Daily calorie goal reached",
			fmt.Sprintf("You've logged %.0f of %.0f kcal today.", summary.TotalCaloriesConsumed, summary.DailyCalorieGoal),
			map[string]string{"date": day.Format("2006-01-02")})
	}
}

func AfterFoodEntry(userID uint, entryDate time.Time) { afterSourceWrite("food", userID, entryDate) }

func AfterActivityLog(userID uint, entryDate time.Time) {
	afterSourceWrite("activity", userID, entryDate)
}

func AfterWaterLog(userID uint, entryDate time.Time) { afterSourceWrite("water", userID, entryDate) }

func AfterWeightLog(userID uint, loggedDate time.Time) {
	afterSourceWrite("weight", userID, loggedDate)
}
