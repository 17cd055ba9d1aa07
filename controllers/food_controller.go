package controllers

import (
	"net/http"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

// POST /food/entries
func (fc *FoodController) LogEntry(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req services.FoodEntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := fc.svc.LogEntry(sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /food/entries?date=YYYY-MM-DD
func (fc *FoodController) ListEntries(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	day, ok := parseDateQuery(c)
	if !ok {
		return
	}

	entries, err := fc.svc.ListEntries(sess.UserID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// parseDateQuery reads an optional ?date=YYYY-MM-DD param, defaulting to
// today. On a malformed date it writes the 400 itself and returns ok=false.
func parseDateQuery(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
