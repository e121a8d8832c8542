package food

import (
	"sort"
	"strings"

	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/dates"
)

// FilterFoods keeps items whose name or category contains the query,
// case-insensitively. An empty query matches everything.
func FilterFoods(items []*entities.FoodItem, query string) []*entities.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]*entities.FoodItem, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(item.Name)
		category := strings.ToLower(item.Category)
		if strings.Contains(name, q) || strings.Contains(category, q) {
			out = append(out, item)
		}
	}
	return out
}

// SortFoods orders items for display: non-expired first (never-expiring
// items count as non-expired), then soonest expiry first with no-expiry
// items at the bottom of the non-expired bucket, then case-insensitive name
// with unnamed items last. The sort is stable, so equal-ranked items keep
// their incoming order.
func SortFoods(items []*entities.FoodItem) []*entities.FoodItem {
	sorted := make([]*entities.FoodItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aYMD := dates.ToYMD(a.ExpiryDate)
		bYMD := dates.ToYMD(b.ExpiryDate)

		aExpired := dates.IsExpired(aYMD)
		bExpired := dates.IsExpired(bYMD)
		if aExpired != bExpired {
			return !aExpired
		}

		aDays := dates.DaysLeft(aYMD)
		bDays := dates.DaysLeft(bYMD)
		if aDays != bDays {
			return aDays < bDays
		}

		aName := strings.TrimSpace(a.Name)
		bName := strings.TrimSpace(b.Name)
		switch {
		case aName != "" && bName != "":
			return strings.ToLower(aName) < strings.ToLower(bName)
		case aName != "" && bName == "":
			return true
		default:
			return false
		}
	})

	return sorted
}
