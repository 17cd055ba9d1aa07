package controllers

import (
	"net/http"

	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{push: push}
}

// POST /devices  { "platform": "android"|"ios", "token": "..." }
func (dc *DeviceController) RegisterDevice(c *gin.Context) {
	sess := middlewares.SessionFrom(c)

	var req struct {
		Platform string `json:"platform" binding:"required"`
		Token    string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.push.RegisterDevice(sess.UserID, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dev)
}
