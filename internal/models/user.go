package models

import (
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

// Valid reports whether r is one of the closed role set.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleEditor || r == RoleAdmin
}

// CanEdit reports whether the role may enter edit mode and save invitations.
func (r UserRole) CanEdit() bool {
	return r == RoleEditor || r == RoleAdmin
}

// User is created or merged on every Google sign-in. Accounts are never
// deleted by the application.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GoogleID  string    `json:"google_id" gorm:"unique;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Picture   string    `json:"picture"`
	Role      UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=user editor admin"`
}
