package food

import (
	"context"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		// GetFoodItems returns all of a user's items ordered by expiry
		// ascending, never-expiring items last.
		GetFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		// GetSharedFoodItems returns a user's shared items that have not
		// expired (no expiry counts as not expired).
		GetSharedFoodItems(ctx context.Context, userID string, today time.Time) ([]*entities.FoodItem, error)
		CountSharedFoodItems(ctx context.Context, userID string, today time.Time) (int64, error)
		// GetExpiringItems returns items of all users expiring in
		// [start, end], owners preloaded, for reminder delivery.
		GetExpiringItems(ctx context.Context, start, end time.Time) ([]*entities.FoodItem, error)

		GetRecentList(ctx context.Context, userID, field string) (*entities.RecentList, error)
		SaveRecentList(ctx context.Context, list *entities.RecentList) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc nulls last").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetSharedFoodItems(ctx context.Context, userID string, today time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND shared = ? AND (expiry_date IS NULL OR expiry_date >= ?)",
			userID, true, today).
		Order("expiry_date asc nulls last").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CountSharedFoodItems(ctx context.Context, userID string, today time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND shared = ? AND (expiry_date IS NULL OR expiry_date >= ?)",
			userID, true, today).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) GetExpiringItems(ctx context.Context, start, end time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("expiry_date BETWEEN ? AND ?", start, end).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetRecentList(ctx context.Context, userID, field string) (*entities.RecentList, error) {
	var list entities.RecentList
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND field = ?", userID, field).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *foodRepository) SaveRecentList(ctx context.Context, list *entities.RecentList) error {
	return r.db.WithContext(ctx).Save(list).Error
}
