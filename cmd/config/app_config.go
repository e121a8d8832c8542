package config

import (
	"os"
	"time"

	"github.com/freshkeep/freshkeep-backend/internal/api/handlers"
	"github.com/freshkeep/freshkeep-backend/internal/api/routes"
	"github.com/freshkeep/freshkeep-backend/internal/middleware"
	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/internal/utils/storage"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
	"github.com/freshkeep/freshkeep-backend/pkg/jwt"
	"github.com/freshkeep/freshkeep-backend/pkg/recipe"
	"github.com/freshkeep/freshkeep-backend/pkg/scan"
	"github.com/freshkeep/freshkeep-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	recognizer := scan.NewVisionRecognizer()
	generator := recipe.NewGeminiGenerator()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	scanRepository := scan.NewScanRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, foodRepository, jwtService)
	foodService := food.NewFoodService(foodRepository)
	scanService := scan.NewScanService(scanRepository, s3, recognizer)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, generator)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		FoodHandler:   foodHandler,
		ScanHandler:   scanHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
