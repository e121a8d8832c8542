package routes

import (
	"github.com/freshkeep/freshkeep-backend/internal/api/handlers"
	"github.com/freshkeep/freshkeep-backend/internal/middleware"
	"github.com/freshkeep/freshkeep-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FoodHandler   handlers.FoodHandler
	ScanHandler   handlers.ScanHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Scans()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Put("/location", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateLocation)
		user.Get("/nearby", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetNearbyUsers)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/stats", c.FoodHandler.GetStats)
	foodItems.Get("/shared", c.FoodHandler.GetSharedFood)
	foodItems.Get("/recents", c.FoodHandler.GetRecents)

	foodItems.Post("", c.FoodHandler.UpsertFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/label-scans", c.Middleware.AuthMiddleware(c.JWTService))
	scans.Post("", c.ScanHandler.UploadScan)
	scans.Get("", c.ScanHandler.GetScanHistory)
	scans.Get("/:id", c.ScanHandler.GetScanResult)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("", c.RecipeHandler.GenerateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
