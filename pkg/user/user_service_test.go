package user

import (
	"context"
	"testing"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/geo"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) RegisterUser(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) CheckEmailExist(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepository) GetUsersInLatBand(_ context.Context, minLat, maxLat float64) ([]*entities.User, error) {
	var out []*entities.User
	for _, user := range f.users {
		if user.Latitude == nil || user.Longitude == nil {
			continue
		}
		if *user.Latitude >= minLat && *user.Latitude <= maxLat {
			out = append(out, user)
		}
	}
	return out, nil
}

type fakeSharedCounts struct {
	counts map[string]int64
}

func (f *fakeSharedCounts) AddFoodItem(context.Context, *entities.FoodItem) error { return nil }
func (f *fakeSharedCounts) GetFoodItemByID(context.Context, string) (*entities.FoodItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSharedCounts) UpdateFoodItem(context.Context, *entities.FoodItem) error { return nil }
func (f *fakeSharedCounts) DeleteFoodItem(context.Context, string) error             { return nil }
func (f *fakeSharedCounts) GetFoodItems(context.Context, string) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (f *fakeSharedCounts) GetSharedFoodItems(context.Context, string, time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (f *fakeSharedCounts) CountSharedFoodItems(_ context.Context, userID string, _ time.Time) (int64, error) {
	return f.counts[userID], nil
}
func (f *fakeSharedCounts) GetExpiringItems(context.Context, time.Time, time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (f *fakeSharedCounts) GetRecentList(context.Context, string, string) (*entities.RecentList, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeSharedCounts) SaveRecentList(context.Context, *entities.RecentList) error { return nil }

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string { return "token-" + userId }
func (fakeJWTService) ValidateTokenUser(string) (*jwt.Token, error)        { return nil, nil }
func (fakeJWTService) GetUserIDByToken(string) (string, string, error)     { return "", "", nil }

func locatedUser(repo *fakeUserRepository, name string, lat, lng float64) *entities.User {
	u := &entities.User{
		ID:        uuid.New(),
		Username:  name,
		Email:     name + "@example.com",
		Latitude:  &lat,
		Longitude: &lng,
	}
	repo.users[u.ID.String()] = u
	return u
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, &fakeSharedCounts{}, fakeJWTService{})

	reg, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "Ana",
		Email:    "Ana@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", reg.Email, "email normalized to lowercase")

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Username: "Another",
		Email:    "ana@example.com",
		Password: "other-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+reg.ID, login.Token)
	assert.Equal(t, domain.RoleUser, login.Role)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateLocationValidates(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, &fakeSharedCounts{}, fakeJWTService{})
	u := locatedUser(repo, "bea", 0, 0)

	res, err := svc.UpdateLocation(context.Background(), u.ID.String(), domain.UpdateLocationRequest{
		Latitude:  -33.87,
		Longitude: 151.21,
		Address:   "Sydney",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Latitude)
	assert.Equal(t, -33.87, *res.Latitude)
	assert.Equal(t, "Sydney", res.Address)
}

func TestGetNearbyUsers(t *testing.T) {
	repo := newFakeUserRepository()
	self := locatedUser(repo, "self", -33.87, 151.21)
	near := locatedUser(repo, "near", -33.875, 151.215)
	sameLatFarLng := locatedUser(repo, "farlng", -33.87, 152.5)
	noShares := locatedUser(repo, "noshares", -33.872, 151.212)
	_ = locatedUser(repo, "farlat", -35.0, 151.21)

	counts := &fakeSharedCounts{counts: map[string]int64{
		near.ID.String():          3,
		sameLatFarLng.ID.String(): 2,
		noShares.ID.String():      0,
		self.ID.String():          5,
	}}
	svc := NewUserService(repo, counts, fakeJWTService{})

	res, err := svc.GetNearbyUsers(context.Background(), self.ID.String(), 5)
	require.NoError(t, err)

	require.Len(t, res.Users, 1, "only in-box users with shared items remain")
	assert.Equal(t, near.ID.String(), res.Users[0].ID)
	assert.Equal(t, 3, res.Users[0].SharedItems)

	assert.Equal(t, -33.87, res.Region.Latitude)
	assert.Equal(t, 151.21, res.Region.Longitude)
	assert.InDelta(t, 2*geo.LatDelta(5), res.Region.LatitudeDelta, 1e-9)
	assert.InDelta(t, 2*geo.LngDelta(5, -33.87), res.Region.LongitudeDelta, 1e-9)
}

func TestGetNearbyUsersNoLocation(t *testing.T) {
	repo := newFakeUserRepository()
	u := &entities.User{ID: uuid.New(), Username: "nowhere", Email: "n@example.com"}
	repo.users[u.ID.String()] = u
	svc := NewUserService(repo, &fakeSharedCounts{}, fakeJWTService{})

	_, err := svc.GetNearbyUsers(context.Background(), u.ID.String(), 5)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestUpdateUserPartial(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, &fakeSharedCounts{}, fakeJWTService{})
	u := locatedUser(repo, "carol", 1, 1)
	u.PushEnabled = true

	off := false
	res, err := svc.UpdateUser(context.Background(), u.ID.String(), domain.UpdateUserRequest{
		PushEnabled: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", res.Username, "unset fields untouched")
	assert.False(t, res.PushEnabled)
}
