package food

import (
	"testing"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, category string, expiryDaysFromNow *int) *entities.FoodItem {
	it := &entities.FoodItem{Name: name, Category: category}
	if expiryDaysFromNow != nil {
		d := time.Now().AddDate(0, 0, *expiryDaysFromNow)
		exp := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
		it.ExpiryDate = &exp
	}
	return it
}

func days(n int) *int { return &n }

func names(items []*entities.FoodItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestSortFoodsExpiryOrder(t *testing.T) {
	got := SortFoods([]*entities.FoodItem{
		item("C", "", days(10)),
		item("B", "", days(2)),
		item("A", "", days(5)),
	})
	assert.Equal(t, []string{"B", "A", "C"}, names(got))
}

func TestSortFoodsExpiredLast(t *testing.T) {
	got := SortFoods([]*entities.FoodItem{
		item("Old milk", "", days(-3)),
		item("Bread", "", days(1)),
		item("Older cheese", "", days(-10)),
	})
	require.Len(t, got, 3)
	assert.Equal(t, "Bread", got[0].Name)
	// Inside the expired bucket the soonest-expired still sorts first.
	assert.Equal(t, []string{"Older cheese", "Old milk"}, names(got[1:]))
}

func TestSortFoodsNeverExpiresAfterDated(t *testing.T) {
	got := SortFoods([]*entities.FoodItem{
		item("Salt", "", nil),
		item("Yogurt", "", days(4)),
		item("Expired juice", "", days(-1)),
	})
	assert.Equal(t, []string{"Yogurt", "Salt", "Expired juice"}, names(got))
}

func TestSortFoodsNameTieBreak(t *testing.T) {
	got := SortFoods([]*entities.FoodItem{
		item("banana", "", days(3)),
		item("Apple", "", days(3)),
		item("", "", days(3)),
	})
	assert.Equal(t, []string{"Apple", "banana", ""}, names(got), "case-insensitive, unnamed last")
}

func TestSortFoodsStable(t *testing.T) {
	a := item("Same", "one", days(2))
	b := item("Same", "two", days(2))
	got := SortFoods([]*entities.FoodItem{a, b})
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}

func TestFilterFoods(t *testing.T) {
	items := []*entities.FoodItem{
		item("Orange Juice", "Juices", days(3)),
		item("Milk", "Dairy", days(2)),
		item("Apple", "Fruit", days(5)),
	}

	assert.Len(t, FilterFoods(items, ""), 3, "empty query matches everything")
	assert.Equal(t, []string{"Orange Juice"}, names(FilterFoods(items, "juice")))
	assert.Equal(t, []string{"Orange Juice"}, names(FilterFoods(items, "JUICES")), "category matches too")
	assert.Equal(t, []string{"Milk"}, names(FilterFoods(items, "dairy")))
	assert.Empty(t, FilterFoods(items, "fish"))
}
