package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Ingredients string    `json:"ingredients" gorm:"type:text"`
	Content     string    `json:"content" gorm:"type:text"` // Markdown from the generation API
	Dietary     string    `json:"dietary,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
