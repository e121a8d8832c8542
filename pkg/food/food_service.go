package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/dates"
	"github.com/freshkeep/freshkeep-backend/internal/utils/mailing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpiringWindowDays is how far ahead an item counts as "expiring soon".
const ExpiringWindowDays = 3

type (
	FoodService interface {
		UpsertFoodItem(ctx context.Context, userID string, req domain.UpsertFoodItemRequest) (*domain.UpsertFoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, userID, itemID string) error
		GetFoodItems(ctx context.Context, userID, query string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, userID, itemID string) (*domain.FoodItemResponse, error)
		GetSharedFood(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetStats(ctx context.Context, userID string) (*domain.InventoryStatsResponse, error)
		GetRecents(ctx context.Context, userID string) (*domain.RecentsResponse, error)
		SendExpiryReminders(ctx context.Context) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) UpsertFoodItem(ctx context.Context, userID string, req domain.UpsertFoodItemRequest) (*domain.UpsertFoodItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	expiryYMD := strings.TrimSpace(req.ExpiryDate)
	var expiry *time.Time
	if expiryYMD != "" {
		t, ok := dates.Parse(expiryYMD)
		if !ok {
			return nil, domain.ErrInvalidExpiryDate
		}
		expiry = &t
	}

	// Expired items cannot be offered to neighbors.
	if req.Shared && dates.IsExpired(expiryYMD) {
		return nil, domain.ErrExpiredItemShared
	}

	var item *entities.FoodItem
	if req.ID == "" {
		item = &entities.FoodItem{
			UserID:     uid,
			Name:       strings.TrimSpace(req.Name),
			Category:   strings.TrimSpace(req.Category),
			ExpiryDate: expiry,
			Shared:     req.Shared,
		}
		if err := s.foodRepository.AddFoodItem(ctx, item); err != nil {
			return nil, err
		}
	} else {
		item, err = s.foodRepository.GetFoodItemByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrFoodItemNotFound
			}
			return nil, err
		}
		if item.UserID != uid {
			return nil, domain.ErrUnauthorizedAccess
		}
		item.Name = strings.TrimSpace(req.Name)
		item.Category = strings.TrimSpace(req.Category)
		item.ExpiryDate = expiry
		item.Shared = req.Shared
		if err := s.foodRepository.UpdateFoodItem(ctx, item); err != nil {
			return nil, err
		}
	}

	recentNames, err := s.recordRecent(ctx, uid, RecentFieldName, item.Name)
	if err != nil {
		return nil, err
	}
	recentCats, err := s.recordRecent(ctx, uid, RecentFieldCategory, item.Category)
	if err != nil {
		return nil, err
	}

	return &domain.UpsertFoodItemResponse{
		Item:        toFoodItemResponse(item),
		RecentNames: recentNames,
		RecentCats:  recentCats,
	}, nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, userID, itemID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	if item.UserID != uid {
		return domain.ErrUnauthorizedAccess
	}

	return s.foodRepository.DeleteFoodItem(ctx, itemID)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID, query string) ([]domain.FoodItemResponse, error) {
	items, err := s.foodRepository.GetFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items = SortFoods(FilterFoods(items, query))

	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item))
	}
	return res, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, userID, itemID string) (*domain.FoodItemResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.foodRepository.GetFoodItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	if item.UserID != uid {
		return nil, domain.ErrUnauthorizedAccess
	}

	res := toFoodItemResponse(item)
	return &res, nil
}

func (s *foodService) GetSharedFood(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	today, _ := dates.Parse(dates.TodayYMD())
	items, err := s.foodRepository.GetSharedFoodItems(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	items = SortFoods(items)
	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item))
	}
	return res, nil
}

func (s *foodService) GetStats(ctx context.Context, userID string) (*domain.InventoryStatsResponse, error) {
	items, err := s.foodRepository.GetFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := domain.InventoryStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		ymd := dates.ToYMD(item.ExpiryDate)
		expired := dates.IsExpired(ymd)
		if expired {
			stats.ExpiredItems++
		} else if dates.DaysLeft(ymd) <= ExpiringWindowDays {
			stats.ExpiringItems++
		}
		if item.Shared && !expired {
			stats.SharedItems++
		}
	}
	return &stats, nil
}

func (s *foodService) GetRecents(ctx context.Context, userID string) (*domain.RecentsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	names, err := s.loadRecents(ctx, uid, RecentFieldName)
	if err != nil {
		return nil, err
	}
	cats, err := s.loadRecents(ctx, uid, RecentFieldCategory)
	if err != nil {
		return nil, err
	}

	return &domain.RecentsResponse{Names: names, Categories: cats}, nil
}

// SendExpiryReminders emails every push-enabled owner a digest of their
// items expiring within the reminder window. Intended to run from a daily
// scheduler; a failed send skips to the next user rather than aborting.
func (s *foodService) SendExpiryReminders(ctx context.Context) error {
	start, _ := dates.Parse(dates.TodayYMD())
	end := start.AddDate(0, 0, ExpiringWindowDays)

	items, err := s.foodRepository.GetExpiringItems(ctx, start, end)
	if err != nil {
		return err
	}

	byUser := map[uuid.UUID][]*entities.FoodItem{}
	for _, item := range items {
		if item.User == nil || !item.User.PushEnabled {
			continue
		}
		byUser[item.UserID] = append(byUser[item.UserID], item)
	}

	var lastErr error
	for _, userItems := range byUser {
		user := userItems[0].User
		if err := mailing.SendMail(user.Email, "Food expiring soon", reminderBody(userItems)); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (s *foodService) recordRecent(ctx context.Context, userID uuid.UUID, field, value string) ([]string, error) {
	list, err := s.foodRepository.GetRecentList(ctx, userID.String(), field)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if list == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		list = &entities.RecentList{UserID: userID, Field: field, Values: "[]"}
	}

	values := decodeRecents(list.Values)
	next := NextRecents(values, value)
	encoded, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	list.Values = string(encoded)

	if err := s.foodRepository.SaveRecentList(ctx, list); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *foodService) loadRecents(ctx context.Context, userID uuid.UUID, field string) ([]string, error) {
	list, err := s.foodRepository.GetRecentList(ctx, userID.String(), field)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return decodeRecents(list.Values), nil
}

func decodeRecents(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	ymd := dates.ToYMD(item.ExpiryDate)

	var daysLeft *int
	if d := dates.DaysLeft(ymd); !dates.IsNever(d) {
		n := int(d)
		daysLeft = &n
	}

	return domain.FoodItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Category:   item.Category,
		ExpiryDate: ymd,
		Shared:     item.Shared,
		DaysLeft:   daysLeft,
		IsExpired:  dates.IsExpired(ymd),
		CreatedAt:  item.CreatedAt,
	}
}

func reminderBody(items []*entities.FoodItem) string {
	var b strings.Builder
	b.WriteString("<p>These items in your inventory expire soon:</p><ul>")
	for _, item := range items {
		name := item.Name
		if name == "" {
			name = "Unnamed item"
		}
		fmt.Fprintf(&b, "<li>%s (%s)</li>", name, dates.ToYMD(item.ExpiryDate))
	}
	b.WriteString("</ul>")
	return b.String()
}
