package models

import (
	"time"

	"github.com/google/uuid"
)

// Offering links a professor to a course for a given term. Offerings are
// derived from reviews, so the professor/course pages can list who taught
// what without a registrar feed.
type Offering struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProfessorID uuid.UUID `json:"professorId" db:"professor_id"`
	CourseID    uuid.UUID `json:"courseId" db:"course_id"`
	Semester    Semester  `json:"semester" db:"semester"`
	Year        int       `json:"year" db:"year"`
	Section     *string   `json:"section,omitempty" db:"section"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Professor *Professor `json:"professor,omitempty"`
	Course    *Course    `json:"course,omitempty"`
}
