package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
	RoleAdmin   RoleType = "ADMIN"
)

// ReviewStatus defines the moderation state of a review
type ReviewStatus string

const (
	ReviewPublished ReviewStatus = "PUBLISHED"
	ReviewFlagged   ReviewStatus = "FLAGGED"
	ReviewRemoved   ReviewStatus = "REMOVED"
)

// VoteType defines a helpfulness vote on a review
type VoteType string

const (
	VoteHelpful    VoteType = "HELPFUL"
	VoteNotHelpful VoteType = "NOT_HELPFUL"
)

// Semester represents an academic term
type Semester string

const (
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
	SemesterAutumn Semester = "AUTUMN"
)
