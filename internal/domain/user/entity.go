package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognised by the permission layer. Only admins may manage
// item type definitions.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User represents the users table: an operator account able to sign in
// to the registry.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:viewer"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
