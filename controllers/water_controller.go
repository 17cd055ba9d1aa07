package controllers

import (
	"net/http"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	svc *services.WaterService
}

func NewWaterController(svc *services.WaterService) *WaterController {
	return &WaterController{svc: svc}
}

// POST /water/logs
func (wc *WaterController) LogWater(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req services.WaterLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := wc.svc.LogWater(sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /water/logs?date=YYYY-MM-DD
func (wc *WaterController) ListWaterLogs(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	day, ok := parseDateQuery(c)
	if !ok {
		return
	}

	logs, err := wc.svc.ListWaterLogs(sess.UserID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
