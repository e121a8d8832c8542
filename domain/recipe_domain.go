package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipe = "recipe generated successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessDeleteRecipe   = "recipe deleted successfully"

	MessageFailedGenerateRecipe = "failed to generate recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedDeleteRecipe   = "failed to delete recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoIngredients  = errors.New("no ingredients available for recipe generation")
)

// GenerationFailedText is returned in place of recipe content when the
// upstream generation call errors or yields no usable text.
const GenerationFailedText = "Failed to generate recipe. Please check your API key and internet connection."

type (
	GenerateRecipeRequest struct {
		Ingredients []string `json:"ingredients" validate:"omitempty,dive,min=1"`
		Dietary     string   `json:"dietary" validate:"omitempty,max=200"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Ingredients string    `json:"ingredients"`
		Content     string    `json:"content"` // Markdown
		Dietary     string    `json:"dietary,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
