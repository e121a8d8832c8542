package entities

import (
	"github.com/google/uuid"
)

const (
	ScanStatusPending   = "Pending"
	ScanStatusProcessed = "Processed"
	ScanStatusFailed    = "Failed"
)

type LabelScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ImageURL    string    `json:"image_url"`
	Status      string    `json:"status"` // "Pending", "Processed", "Failed"
	OcrText     string    `json:"ocr_text,omitempty" gorm:"type:text"`
	GuessName   string    `json:"guess_name,omitempty"`
	GuessExpiry string    `json:"guess_expiry,omitempty"` // YYYY-MM-DD, empty when no date found

	User      *User       `gorm:"foreignKey:UserID"`
	FoodItems []*FoodItem `gorm:"foreignKey:LabelScanID"`
	Timestamp
}
