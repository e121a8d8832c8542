package user

import (
	"context"
	"errors"
	"strings"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/dates"
	"github.com/freshkeep/freshkeep-backend/internal/utils/geo"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
	"github.com/freshkeep/freshkeep-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultRadiusKm is the nearby search radius when the client does not
// supply one.
const DefaultRadiusKm = 5.0

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.UserResponse, error)
		UpdateLocation(ctx context.Context, userID string, req domain.UpdateLocationRequest) (*domain.UserResponse, error)
		// GetNearbyUsers finds other users inside a rectangular box of
		// radiusKm around the caller who currently share at least one
		// non-expired item.
		GetNearbyUsers(ctx context.Context, userID string, radiusKm float64) (*domain.NearbyUsersResponse, error)
	}

	userService struct {
		userRepository UserRepository
		foodRepository food.FoodRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, foodRepository food.FoodRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		foodRepository: foodRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckEmailExist(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:    strings.TrimSpace(req.Username),
		Email:       email,
		Password:    string(hashed),
		PhoneNo:     strings.TrimSpace(req.PhoneNo),
		PushEnabled: true,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return nil, err
	}

	return &domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return &domain.LoginResponse{Token: token, Role: domain.RoleUser}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.Username); v != "" {
		user.Username = v
	}
	if v := strings.TrimSpace(req.PhoneNo); v != "" {
		user.PhoneNo = v
	}
	if req.PushEnabled != nil {
		user.PushEnabled = *req.PushEnabled
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID string, req domain.UpdateLocationRequest) (*domain.UserResponse, error) {
	if err := geo.Validate(geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lat, lng := req.Latitude, req.Longitude
	user.Latitude = &lat
	user.Longitude = &lng
	if v := strings.TrimSpace(req.Address); v != "" {
		user.Address = v
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) GetNearbyUsers(ctx context.Context, userID string, radiusKm float64) (*domain.NearbyUsersResponse, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	self, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if self.Latitude == nil || self.Longitude == nil {
		return nil, geo.ErrInvalidCoordinate
	}

	center := geo.Point{Latitude: *self.Latitude, Longitude: *self.Longitude}
	box, err := geo.NewBoundingBox(center, radiusKm)
	if err != nil {
		return nil, err
	}

	// The database narrows by latitude only; the longitude edge of the box
	// depends on latitude, so it is applied here per candidate.
	candidates, err := s.userRepository.GetUsersInLatBand(ctx, box.MinLat, box.MaxLat)
	if err != nil {
		return nil, err
	}

	today, _ := dates.Parse(dates.TodayYMD())
	nearby := make([]domain.NearbyUserResponse, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == self.ID {
			continue
		}
		p := geo.Point{Latitude: *candidate.Latitude, Longitude: *candidate.Longitude}
		if !box.Contains(p) {
			continue
		}

		shared, err := s.foodRepository.CountSharedFoodItems(ctx, candidate.ID.String(), today)
		if err != nil {
			return nil, err
		}
		if shared == 0 {
			continue
		}

		nearby = append(nearby, domain.NearbyUserResponse{
			ID:          candidate.ID.String(),
			Username:    candidate.Username,
			PhoneNo:     candidate.PhoneNo,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			SharedItems: int(shared),
		})
	}

	return &domain.NearbyUsersResponse{
		Users: nearby,
		Region: domain.MapRegion{
			Latitude:       center.Latitude,
			Longitude:      center.Longitude,
			LatitudeDelta:  2 * geo.LatDelta(radiusKm),
			LongitudeDelta: 2 * geo.LngDelta(radiusKm, center.Latitude),
		},
	}, nil
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		PhoneNo:     user.PhoneNo,
		Address:     user.Address,
		Latitude:    user.Latitude,
		Longitude:   user.Longitude,
		PushEnabled: user.PushEnabled,
	}
}
