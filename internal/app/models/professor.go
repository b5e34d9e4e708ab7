package models

import (
	"time"

	"github.com/google/uuid"
)

// Professor defines the professor model based on the 'professors' table.
// Rows are created either by an admin or by the faculty-directory sync;
// sync-created rows carry the scraped profile fields.
type Professor struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Departments []string  `json:"departments" db:"departments"` // jsonb array of department names
	School      *string   `json:"school,omitempty" db:"school"`
	Email       *string   `json:"email,omitempty" db:"email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Office      *string   `json:"office,omitempty" db:"office"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	ProfileURL  *string   `json:"profileUrl,omitempty" db:"profile_url"`
	// ClaimedByUserID links a professor row to the account of the faculty
	// member who claimed it, set by an admin. The sync never touches it.
	ClaimedByUserID *uuid.UUID `json:"claimedByUserId,omitempty" db:"claimed_by_user_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// ProfessorStats is the read-time aggregate over a professor's published
// reviews. Every field is zero when there are no published reviews, never
// absent. Percentages run over all published reviews; an unanswered question
// counts as false.
type ProfessorStats struct {
	TotalReviews          int64   `json:"totalReviews"`
	AverageRating         float64 `json:"averageRating"`
	AverageDifficulty     float64 `json:"averageDifficulty"`
	WouldTakeAgainPercent float64 `json:"wouldTakeAgainPercent"`
	RecommendPercent      float64 `json:"recommendPercent"`
}
