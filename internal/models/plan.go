package models

import (
	"time"
)

// Plan is a pricing-page package. The catalog is seeded at startup and
// served publicly; checkout goes through Stripe.
type Plan struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`

	// Number of invitations the plan allows.
	InvitationLimit int       `json:"invitation_limit" gorm:"not null;default:1"`
	Price           float64   `json:"price" gorm:"not null"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
