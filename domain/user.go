package domain

import (
	"errors"
	"time"
)

// Errors raised by the user service.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRole distinguishes who may call the admin-gated property routes.
type UserRole string

const (
	RoleViewer UserRole = "viewer" // regular caller, read-only access
	RoleAdmin  UserRole = "admin"  // may create/update/delete properties
)

// User is an API account. It exists only to gate the property write
// endpoints; there is no profile data beyond the credentials.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, hidden from JSON
	Role      UserRole  `gorm:"type:varchar(20);default:'viewer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name used by GORM.
func (User) TableName() string {
	return "users"
}
