// @title Edu Tracker API
// @version 1.0
// @description Gamified course tracking backend: courses, study hours, XP leveling and achievement badges.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"edu_tracker_backend/internal/app"
	"edu_tracker_backend/internal/config"
	"edu_tracker_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
