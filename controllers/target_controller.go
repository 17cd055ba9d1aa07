package controllers

import (
	"net/http"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type TargetController struct {
	svc *services.TargetService
}

func NewTargetController(svc *services.TargetService) *TargetController {
	return &TargetController{svc: svc}
}

// GET /targets
func (tc *TargetController) GetTargets(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	targets, err := tc.svc.GetTargets(sess.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, targets)
}

// PUT /targets
func (tc *TargetController) UpdateTargets(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req services.TargetsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := tc.svc.UpsertTargets(sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, targets)
}
