package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessUpdateLocation = "location updated successfully"
	MessageSuccessGetNearby      = "nearby users retrieved successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedUpdateLocation = "failed to update location"
	MessageFailedGetNearby      = "failed to retrieve nearby users"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=2,max=60"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		PhoneNo  string `json:"phone_no" validate:"omitempty,max=20"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Username    string `json:"username" validate:"omitempty,min=2,max=60"`
		PhoneNo     string `json:"phone_no" validate:"omitempty,max=20"`
		PushEnabled *bool  `json:"push_enabled" validate:"omitempty"`
	}

	UpdateLocationRequest struct {
		Latitude  float64 `json:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" validate:"required"`
		Address   string  `json:"address" validate:"omitempty,max=240"`
	}

	UserResponse struct {
		ID          string   `json:"id"`
		Username    string   `json:"username"`
		Email       string   `json:"email"`
		PhoneNo     string   `json:"phone_no,omitempty"`
		Address     string   `json:"address,omitempty"`
		Latitude    *float64 `json:"latitude,omitempty"`
		Longitude   *float64 `json:"longitude,omitempty"`
		PushEnabled bool     `json:"push_enabled"`
	}

	NearbyUserResponse struct {
		ID          string  `json:"id"`
		Username    string  `json:"username"`
		PhoneNo     string  `json:"phone_no,omitempty"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		SharedItems int     `json:"shared_items"`
	}

	// MapRegion frames the searched area for a client map view: the center
	// plus the full width/height of the bounding box in degrees.
	MapRegion struct {
		Latitude       float64 `json:"latitude"`
		Longitude      float64 `json:"longitude"`
		LatitudeDelta  float64 `json:"latitude_delta"`
		LongitudeDelta float64 `json:"longitude_delta"`
	}

	NearbyUsersResponse struct {
		Users  []NearbyUserResponse `json:"users"`
		Region MapRegion            `json:"region"`
	}
)
