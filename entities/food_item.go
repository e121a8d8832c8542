package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	ExpiryDate  *time.Time `gorm:"type:date" json:"expiry_date,omitempty"` // nil = never expires
	Shared      bool       `json:"shared"`
	LabelScanID *uuid.UUID `gorm:"type:uuid" json:"label_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
