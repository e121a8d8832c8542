package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: map[string]*entities.Recipe{}}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.UserID.String() == userID {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

type fakeFoodRepository struct {
	items []*entities.FoodItem
}

func (f *fakeFoodRepository) AddFoodItem(context.Context, *entities.FoodItem) error { return nil }
func (f *fakeFoodRepository) GetFoodItemByID(context.Context, string) (*entities.FoodItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeFoodRepository) UpdateFoodItem(context.Context, *entities.FoodItem) error { return nil }
func (f *fakeFoodRepository) DeleteFoodItem(context.Context, string) error             { return nil }
func (f *fakeFoodRepository) GetFoodItems(context.Context, string) ([]*entities.FoodItem, error) {
	return f.items, nil
}
func (f *fakeFoodRepository) GetSharedFoodItems(context.Context, string, time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (f *fakeFoodRepository) CountSharedFoodItems(context.Context, string, time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeFoodRepository) GetExpiringItems(context.Context, time.Time, time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (f *fakeFoodRepository) GetRecentList(context.Context, string, string) (*entities.RecentList, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeFoodRepository) SaveRecentList(context.Context, *entities.RecentList) error { return nil }

type fakeGenerator struct {
	content string
	err     error
	gotIngs []string
}

func (g *fakeGenerator) Generate(_ context.Context, ingredients []string, _ string) (string, error) {
	g.gotIngs = ingredients
	return g.content, g.err
}

func TestGenerateRecipe(t *testing.T) {
	gen := &fakeGenerator{content: "# Tomato Pasta\n\n## Ingredients\n- Pasta\n- Tomato"}
	svc := NewRecipeService(newFakeRecipeRepository(), &fakeFoodRepository{}, gen)
	userID := uuid.NewString()

	res, err := svc.GenerateRecipe(context.Background(), userID, domain.GenerateRecipeRequest{
		Ingredients: []string{"Pasta", "Tomato"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tomato Pasta", res.Title)
	assert.Equal(t, "Pasta, Tomato", res.Ingredients)
	assert.Equal(t, gen.content, res.Content)
	assert.Equal(t, []string{"Pasta", "Tomato"}, gen.gotIngs)
}

func TestGenerateRecipeFailureKeepsSentinel(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	repo := newFakeRecipeRepository()
	svc := NewRecipeService(repo, &fakeFoodRepository{}, gen)
	userID := uuid.NewString()

	res, err := svc.GenerateRecipe(context.Background(), userID, domain.GenerateRecipeRequest{
		Ingredients: []string{"Rice"},
	})
	require.NoError(t, err, "generation failure is not a request failure")
	assert.Equal(t, domain.GenerationFailedText, res.Content)
	assert.Equal(t, "Recipe with Rice", res.Title)

	saved, err := svc.GetRecipes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, domain.GenerationFailedText, saved[0].Content)
}

func TestGenerateRecipeFromInventory(t *testing.T) {
	past := time.Now().AddDate(0, 0, -2)
	future := time.Now().AddDate(0, 0, 3)
	foodRepo := &fakeFoodRepository{items: []*entities.FoodItem{
		{Name: "Spoiled fish", ExpiryDate: &past},
		{Name: "Chicken", ExpiryDate: &future},
		{Name: "Rice"},
	}}
	gen := &fakeGenerator{content: "# Chicken Rice"}
	svc := NewRecipeService(newFakeRecipeRepository(), foodRepo, gen)

	_, err := svc.GenerateRecipe(context.Background(), uuid.NewString(), domain.GenerateRecipeRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chicken", "Rice"}, gen.gotIngs, "expired items excluded, soonest expiry first")
}

func TestGenerateRecipeNoIngredients(t *testing.T) {
	svc := NewRecipeService(newFakeRecipeRepository(), &fakeFoodRepository{}, &fakeGenerator{})

	_, err := svc.GenerateRecipe(context.Background(), uuid.NewString(), domain.GenerateRecipeRequest{})
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestRecipeOwnership(t *testing.T) {
	gen := &fakeGenerator{content: "# Soup"}
	svc := NewRecipeService(newFakeRecipeRepository(), &fakeFoodRepository{}, gen)
	owner := uuid.NewString()

	created, err := svc.GenerateRecipe(context.Background(), owner, domain.GenerateRecipeRequest{
		Ingredients: []string{"Beans"},
	})
	require.NoError(t, err)

	_, err = svc.GetRecipeByID(context.Background(), uuid.NewString(), created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = svc.DeleteRecipe(context.Background(), uuid.NewString(), created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	require.NoError(t, svc.DeleteRecipe(context.Background(), owner, created.ID))
	_, err = svc.GetRecipeByID(context.Background(), owner, created.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
