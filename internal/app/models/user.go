package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table. Accounts are
// created lazily from the identity provider's token; there is no local
// password.
type User struct {
	ID         uuid.UUID `json:"id" db:"id" example:"5f7c5c14-9e2a-4a14-9a35-26d0e1d9b3c2"` // Unique identifier for the user
	ExternalID string    `json:"-" db:"external_id"`                                        // Identity-provider subject (excluded from JSON)
	Email      *string   `json:"email,omitempty" db:"email"`                                // User's email address (nullable)
	Name       *string   `json:"name,omitempty" db:"name"`                                  // Display name (nullable)
	AvatarURL  *string   `json:"avatarUrl,omitempty" db:"avatar_url"`                       // Profile picture URL (nullable)
	Role       RoleType  `json:"role" db:"role" example:"STUDENT"`                          // User's role
	IsVerified bool      `json:"isVerified" db:"is_verified"`                               // Whether the account passed identity verification
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`                                 // Timestamp when the user was created
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`                                 // Timestamp when the user was last updated
}
