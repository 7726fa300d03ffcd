package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Family is a named grouping owned by a user. The creation response
// exposes name and owner only: the storage-assigned id is cleared before
// the envelope is built, and the timestamps never serialize.
type Family struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,omitempty"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	UserID    string       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Family) TableName() string { return "families" }
