package controllers

import (
	"net/http"
	"strconv"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{svc: svc}
}

// POST /weight/logs
func (wc *WeightController) LogWeight(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req services.WeightLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := wc.svc.LogWeight(sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /weight/logs?limit=90
func (wc *WeightController) ListWeightLogs(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "90"))

	logs, err := wc.svc.ListWeightLogs(sess.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
