package models

import (
	"time"

	"github.com/google/uuid"
)

// Department represents an academic department
type Department struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	School    *string   `json:"school,omitempty" db:"school"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
