package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a student's rating of a professor for one course section.
// Overall is the only required rating; the rest are optional survey answers.
type Review struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	UserID         uuid.UUID    `json:"userId" db:"user_id"`
	ProfessorID    uuid.UUID    `json:"professorId" db:"professor_id"`
	CourseID       uuid.UUID    `json:"courseId" db:"course_id"`
	Semester       Semester     `json:"semester" db:"semester"`
	Year           int          `json:"year" db:"year"`
	Section        *string      `json:"section,omitempty" db:"section"`
	Overall        int          `json:"overall" db:"overall"`
	Difficulty     *int         `json:"difficulty,omitempty" db:"difficulty"`
	Clarity        *int         `json:"clarity,omitempty" db:"clarity"`
	Helpfulness    *int         `json:"helpfulness,omitempty" db:"helpfulness"`
	Engagement     *int         `json:"engagement,omitempty" db:"engagement"`
	Fairness       *int         `json:"fairness,omitempty" db:"fairness"`
	Grading        *int         `json:"grading,omitempty" db:"grading"`
	Workload       *int         `json:"workload,omitempty" db:"workload"`
	WouldTakeAgain *bool        `json:"wouldTakeAgain,omitempty" db:"would_take_again"`
	Recommend      *bool        `json:"recommend,omitempty" db:"recommend"`
	Delivery       *string      `json:"delivery,omitempty" db:"delivery"`
	GradeReceived  *string      `json:"gradeReceived,omitempty" db:"grade_received"`
	Attendance     *bool        `json:"attendanceMandatory,omitempty" db:"attendance_mandatory"`
	HoursPerWeek   *int         `json:"hoursPerWeek,omitempty" db:"hours_per_week"`
	Tags           []string     `json:"tags" db:"tags"`
	Comment        *string      `json:"comment,omitempty" db:"comment"`
	Status         ReviewStatus `json:"status" db:"status"`
	EditedUntil    time.Time    `json:"editedUntil" db:"edited_until"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time    `json:"updatedAt" db:"updated_at"`

	// Aggregated vote counts (populated on read)
	HelpfulCount    int64 `json:"helpfulCount"`
	NotHelpfulCount int64 `json:"notHelpfulCount"`

	// Relations (populated when needed)
	Professor *Professor `json:"professor,omitempty"`
	Course    *Course    `json:"course,omitempty"`
}
