package main

import (
	"os"

	"github.com/kaanx03/NutriTrack-sub001/config"
	"github.com/kaanx03/NutriTrack-sub001/routes"
	"github.com/kaanx03/NutriTrack-sub001/services"

	"github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()

	rt := services.NewRealtimeHub()

	// Push is optional; the hooks degrade to realtime-only without it.
	push, err := services.NewPushService(config.DB)
	if err != nil {
		logrus.WithError(err).Warn("push service unavailable, continuing without push")
		push = nil
	}

	r := routes.SetupRouter(config.DB, rt, push)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
