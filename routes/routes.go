package routes

import (
	"os"
	"strings"

	"github.com/kaanx03/NutriTrack-sub001/controllers"
	"github.com/kaanx03/NutriTrack-sub001/middlewares"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, rt *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	rollupSvc := services.NewRollupService(db)
	services.InitRollupHooks(rollupSvc, rt, push)

	foodCtrl := controllers.NewFoodController(services.NewFoodService(db))
	activityCtrl := controllers.NewActivityController(services.NewActivityService(db))
	waterCtrl := controllers.NewWaterController(services.NewWaterService(db))
	weightCtrl := controllers.NewWeightController(services.NewWeightService(db))
	targetCtrl := controllers.NewTargetController(services.NewTargetService(db))
	dailyCtrl := controllers.NewDailyDataController(rollupSvc)
	adminCtrl := controllers.NewAdminController(rollupSvc)
	rtCtrl := controllers.NewRealtimeController(rt)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/food/entries", foodCtrl.LogEntry)
		api.GET("/food/entries", foodCtrl.ListEntries)

		api.POST("/activity/logs", activityCtrl.LogActivity)
		api.GET("/activity/logs", activityCtrl.ListActivities)

		api.POST("/water/logs", waterCtrl.LogWater)
		api.GET("/water/logs", waterCtrl.ListWaterLogs)

		api.POST("/weight/logs", weightCtrl.LogWeight)
		api.GET("/weight/logs", weightCtrl.ListWeightLogs)

		api.GET("/targets", targetCtrl.GetTargets)
		api.PUT("/targets", targetCtrl.UpdateTargets)

		api.GET("/daily-data", dailyCtrl.GetDailyData)
		api.GET("/daily-data/history", dailyCtrl.GetHistory)

		api.GET("/ws/summary", rtCtrl.SummaryWS)

		if push != nil {
			deviceCtrl := controllers.NewDeviceController(push)
			api.POST("/devices", deviceCtrl.RegisterDevice)
		}
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/rollup/run", adminCtrl.RunBulkRollup)
		admin.POST("/rollup/backfill", adminCtrl.Backfill)
	}

	return r
}
