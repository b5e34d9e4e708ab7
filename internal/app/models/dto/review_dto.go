package dto

import "github.com/google/uuid"

// CreateReviewRequest represents review submission data. Overall is the only
// required rating; all 1-5 scales share the same bounds.
type CreateReviewRequest struct {
	ProfessorID    uuid.UUID `json:"professorId" binding:"required"`
	CourseID       uuid.UUID `json:"courseId" binding:"required"`
	Semester       string    `json:"semester" binding:"required,oneof=SPRING SUMMER AUTUMN"`
	Year           int       `json:"year" binding:"required,gte=2000,lte=2100"`
	Section        *string   `json:"section,omitempty"`
	Overall        int       `json:"overall" binding:"required,gte=1,lte=5"`
	Difficulty     *int      `json:"difficulty,omitempty" binding:"omitempty,gte=1,lte=5"`
	Clarity        *int      `json:"clarity,omitempty" binding:"omitempty,gte=1,lte=5"`
	Helpfulness    *int      `json:"helpfulness,omitempty" binding:"omitempty,gte=1,lte=5"`
	Engagement     *int      `json:"engagement,omitempty" binding:"omitempty,gte=1,lte=5"`
	Fairness       *int      `json:"fairness,omitempty" binding:"omitempty,gte=1,lte=5"`
	Grading        *int      `json:"grading,omitempty" binding:"omitempty,gte=1,lte=5"`
	Workload       *int      `json:"workload,omitempty" binding:"omitempty,gte=1,lte=5"`
	WouldTakeAgain *bool     `json:"wouldTakeAgain,omitempty"`
	Recommend      *bool     `json:"recommend,omitempty"`
	Delivery       *string   `json:"delivery,omitempty" binding:"omitempty,oneof=IN_PERSON ONLINE HYBRID"`
	GradeReceived  *string   `json:"gradeReceived,omitempty" binding:"omitempty,max=5"`
	Attendance     *bool     `json:"attendanceMandatory,omitempty"`
	HoursPerWeek   *int      `json:"hoursPerWeek,omitempty" binding:"omitempty,gte=0,lte=120"`
	Tags           []string  `json:"tags,omitempty" binding:"omitempty,max=10,dive,max=50"`
	Comment        *string   `json:"comment,omitempty" binding:"omitempty,max=5000"`
}

// UpdateReviewRequest represents review edit data. Identity fields
// (professor, course, term) are immutable after creation.
type UpdateReviewRequest struct {
	Overall        *int     `json:"overall,omitempty" binding:"omitempty,gte=1,lte=5"`
	Difficulty     *int     `json:"difficulty,omitempty" binding:"omitempty,gte=1,lte=5"`
	Clarity        *int     `json:"clarity,omitempty" binding:"omitempty,gte=1,lte=5"`
	Helpfulness    *int     `json:"helpfulness,omitempty" binding:"omitempty,gte=1,lte=5"`
	Engagement     *int     `json:"engagement,omitempty" binding:"omitempty,gte=1,lte=5"`
	Fairness       *int     `json:"fairness,omitempty" binding:"omitempty,gte=1,lte=5"`
	Grading        *int     `json:"grading,omitempty" binding:"omitempty,gte=1,lte=5"`
	Workload       *int     `json:"workload,omitempty" binding:"omitempty,gte=1,lte=5"`
	WouldTakeAgain *bool    `json:"wouldTakeAgain,omitempty"`
	Recommend      *bool    `json:"recommend,omitempty"`
	Delivery       *string  `json:"delivery,omitempty" binding:"omitempty,oneof=IN_PERSON ONLINE HYBRID"`
	GradeReceived  *string  `json:"gradeReceived,omitempty" binding:"omitempty,max=5"`
	Attendance     *bool    `json:"attendanceMandatory,omitempty"`
	HoursPerWeek   *int     `json:"hoursPerWeek,omitempty" binding:"omitempty,gte=0,lte=120"`
	Tags           []string `json:"tags,omitempty" binding:"omitempty,max=10,dive,max=50"`
	Comment        *string  `json:"comment,omitempty" binding:"omitempty,max=5000"`
}

// VoteRequest represents a helpfulness vote on a review
type VoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=HELPFUL NOT_HELPFUL"`
}

// ReportRequest represents flagging a review for moderation
type ReportRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}
