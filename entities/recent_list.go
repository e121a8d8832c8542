package entities

import (
	"github.com/google/uuid"
)

// RecentList stores one bounded most-recently-used list per user and field
// ("name" or "category"). The list is serialized as a JSON array and always
// read and written as a whole.
type RecentList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_recent_user_field" json:"user_id"`
	Field  string    `gorm:"uniqueIndex:idx_recent_user_field" json:"field"`
	Values string    `gorm:"type:text" json:"values"`

	Timestamp
}
