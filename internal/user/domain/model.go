// Package domain contains core types for user accounts and profiles.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// User mirrors a credentialed identity held by the external identity
// provider. The row's primary key is the provider's identity id; a User
// row never exists without a matching remote identity.
type User struct {
	ID               string            `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string            `gorm:"type:text;not null;uniqueIndex" json:"email"`
	IsSuperAdmin     bool              `gorm:"column:is_super_admin;not null;default:false" json:"is_super_admin"`
	EmailConfirmedAt *time.Time        `gorm:"column:email_confirmed_at" json:"email_confirmed_at"`
	Metadata         datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt        time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Profile *UserProfile `gorm:"-" json:"profile,omitempty"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// NewUser builds the local mirror of a freshly minted identity. A new
// identity is always unconfirmed and never an admin.
func NewUser(id, email string) *User {
	return &User{
		ID:       id,
		Email:    email,
		Metadata: datatypes.JSONMap{},
	}
}

// UserProfile holds the personal data attached to a user, at most one
// per user id.
type UserProfile struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Serial    string       `gorm:"type:text;not null;uniqueIndex" json:"serial"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Surname   string       `gorm:"type:text;not null" json:"surname"`
	BirthDate time.Time    `gorm:"column:birth_date;not null" json:"birth_date"`
	UserID    string       `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (UserProfile) TableName() string { return "user_profiles" }
