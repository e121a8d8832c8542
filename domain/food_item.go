package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUpsertFoodItem = "food item saved successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetSharedFood  = "shared food retrieved successfully"
	MessageSuccessGetStats       = "inventory statistics retrieved successfully"
	MessageSuccessGetRecents     = "recent values retrieved successfully"

	MessageFailedUpsertFoodItem = "failed to save food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedGetSharedFood  = "failed to retrieve shared food"
	MessageFailedGetStats       = "failed to retrieve inventory statistics"
	MessageFailedGetRecents     = "failed to retrieve recent values"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date, expected YYYY-MM-DD")
	ErrExpiredItemShared  = errors.New("expired items cannot be shared")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	UpsertFoodItemRequest struct {
		ID         string `json:"id" validate:"omitempty,uuid"`
		Name       string `json:"name" validate:"omitempty,max=120"`
		Category   string `json:"category" validate:"omitempty,max=60"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"` // YYYY-MM-DD, empty = never expires
		Shared     bool   `json:"shared"`
	}

	FoodItemResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Category   string    `json:"category,omitempty"`
		ExpiryDate string    `json:"expiry_date,omitempty"` // empty = never expires
		Shared     bool      `json:"shared"`
		DaysLeft   *int      `json:"days_left,omitempty"` // nil = never expires
		IsExpired  bool      `json:"is_expired"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UpsertFoodItemResponse struct {
		Item        FoodItemResponse `json:"item"`
		RecentNames []string         `json:"recent_names"`
		RecentCats  []string         `json:"recent_categories"`
	}

	RecentsResponse struct {
		Names      []string `json:"names"`
		Categories []string `json:"categories"`
	}

	InventoryStatsResponse struct {
		TotalItems    int `json:"total_items"`
		ExpiringItems int `json:"expiring_items"` // non-expired, 3 days or less left
		ExpiredItems  int `json:"expired_items"`
		SharedItems   int `json:"shared_items"`
	}
)
