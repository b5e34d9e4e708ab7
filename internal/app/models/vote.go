package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewVote is one user's helpfulness vote on one review. A repeat vote by
// the same user replaces the previous one.
type ReviewVote struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ReviewID  uuid.UUID `json:"reviewId" db:"review_id"`
	Vote      VoteType  `json:"vote" db:"vote"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Report is a user flagging a review for moderation.
type Report struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ReviewID  uuid.UUID `json:"reviewId" db:"review_id"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
