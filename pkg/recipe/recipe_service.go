package recipe

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/dates"
	"github.com/freshkeep/freshkeep-backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		// GenerateRecipe asks the generator for a recipe built from the
		// requested ingredients, falling back to the user's non-expired
		// inventory when none are given. A generation failure produces a
		// saved recipe carrying the failure text rather than an error, so
		// the client always has something to display.
		GenerateRecipe(ctx context.Context, userID string, req domain.GenerateRecipeRequest) (*domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, userID, recipeID string) (*domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, userID, recipeID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
		generator        Generator
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository, generator Generator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		generator:        generator,
	}
}

func (s *recipeService) GenerateRecipe(ctx context.Context, userID string, req domain.GenerateRecipeRequest) (*domain.RecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	ingredients := cleanIngredients(req.Ingredients)
	if len(ingredients) == 0 {
		ingredients, err = s.inventoryIngredients(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	if len(ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	content, err := s.generator.Generate(ctx, ingredients, req.Dietary)
	if err != nil {
		log.Printf("recipe generation for user %s failed: %v", userID, err)
		content = domain.GenerationFailedText
	}

	recipe := &entities.Recipe{
		UserID:      uid,
		Title:       recipeTitle(content, ingredients),
		Ingredients: strings.Join(ingredients, ", "),
		Content:     content,
		Dietary:     strings.TrimSpace(req.Dietary),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	res := toRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, userID, recipeID string) (*domain.RecipeResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID != uid {
		return nil, domain.ErrUnauthorizedAccess
	}

	res := toRecipeResponse(recipe)
	return &res, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.UserID != uid {
		return domain.ErrUnauthorizedAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

// inventoryIngredients lists the names of the user's non-expired items,
// soonest expiry first so the generator prioritizes them.
func (s *recipeService) inventoryIngredients(ctx context.Context, userID string) ([]string, error) {
	items, err := s.foodRepository.GetFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items = food.SortFoods(items)
	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		if dates.IsExpired(dates.ToYMD(item.ExpiryDate)) {
			continue
		}
		if name := strings.TrimSpace(item.Name); name != "" {
			ingredients = append(ingredients, name)
		}
	}
	return ingredients, nil
}

func cleanIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// recipeTitle takes the first markdown heading or non-empty line of the
// generated content, falling back to naming the lead ingredient.
func recipeTitle(content string, ingredients []string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" && line != domain.GenerationFailedText {
			return line
		}
	}
	if len(ingredients) > 0 {
		return "Recipe with " + ingredients[0]
	}
	return "Generated recipe"
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Content:     recipe.Content,
		Dietary:     recipe.Dietary,
		CreatedAt:   recipe.CreatedAt,
	}
}
