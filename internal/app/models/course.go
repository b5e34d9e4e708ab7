package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course offered by a department.
type Course struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty" db:"department_id"` // Nullable
	Code         string     `json:"code" db:"code"`
	Name         string     `json:"name" db:"name"`
	Description  *string    `json:"description,omitempty" db:"description"` // Nullable
	Credits      *int       `json:"credits,omitempty" db:"credits"`         // Nullable
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// CourseStats is the read-time aggregate over a course's published reviews.
// Fields are zero when there are no published reviews, never absent.
type CourseStats struct {
	TotalReviews      int64   `json:"totalReviews"`
	AverageRating     float64 `json:"averageRating"`
	AverageDifficulty float64 `json:"averageDifficulty"`
}
