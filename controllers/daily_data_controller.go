package controllers

import (
	"net/http"
	"strconv"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type DailyDataController struct {
	svc *services.RollupService
}

func NewDailyDataController(svc *services.RollupService) *DailyDataController {
	return &DailyDataController{svc: svc}
}

// GET /daily-data?date=YYYY-MM-DD
func (dc *DailyDataController) GetDailyData(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	day, ok := parseDateQuery(c)
	if !ok {
		return
	}

	summary, err := dc.svc.GetDailyData(c.Request.Context(), sess.UserID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /daily-data/history?days=30
func (dc *DailyDataController) GetHistory(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := dc.svc.GetDailyDataHistory(c.Request.Context(), sess.UserID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
