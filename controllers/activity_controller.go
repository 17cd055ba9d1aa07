package controllers

import (
	"net/http"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{svc: svc}
}

// POST /activity/logs
func (ac *ActivityController) LogActivity(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req services.ActivityLogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ac.svc.LogActivity(sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /activity/logs?date=YYYY-MM-DD
func (ac *ActivityController) ListActivities(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	day, ok := parseDateQuery(c)
	if !ok {
		return
	}

	logs, err := ac.svc.ListActivities(sess.UserID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
