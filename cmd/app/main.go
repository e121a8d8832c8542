package main

import (
	"context"
	"log"
	"time"

	"github.com/freshkeep/freshkeep-backend/cmd/config"
	migration "github.com/freshkeep/freshkeep-backend/cmd/database/migrate"
	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	// Daily expiry reminder loop.
	foodService := food.NewFoodService(food.NewFoodRepository(db))
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := foodService.SendExpiryReminders(context.Background()); err != nil {
				log.Printf("expiry reminders: %v", err)
			}
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
