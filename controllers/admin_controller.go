package controllers

import (
	"net/http"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	svc *services.RollupService
}

func NewAdminController(svc *services.RollupService) *AdminController {
	return &AdminController{svc: svc}
}

// POST /admin/rollup/run  { "date": "YYYY-MM-DD" }  (date optional = today)
// Called by the scheduler worker once per day, typically for today and
// yesterday to catch late-arriving entries across timezones.
func (ac *AdminController) RunBulkRollup(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var day time.Time
	if req.Date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	res, err := ac.svc.UpdateAllUsersDailyData(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /admin/rollup/backfill  { "user_id": 42, "days": 30 }
func (ac *AdminController) Backfill(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
		Days   int  `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := ac.svc.BackfillMissingData(c.Request.Context(), req.UserID, req.Days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
