package dto

import "github.com/google/uuid"

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name   string  `json:"name" binding:"required"`
	Code   string  `json:"code" binding:"required"`
	School *string `json:"school,omitempty"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code         string     `json:"code" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Credits      *int       `json:"credits,omitempty" binding:"omitempty,gt=0"`
}

// CreateProfessorRequest represents manual professor creation data
type CreateProfessorRequest struct {
	Name        string   `json:"name" binding:"required,min=3"`
	Title       *string  `json:"title,omitempty"`
	Departments []string `json:"departments,omitempty"`
	School      *string  `json:"school,omitempty"`
	Email       *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string  `json:"phone,omitempty"`
	Office      *string  `json:"office,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty" binding:"omitempty,url"`
	ProfileURL  *string  `json:"profileUrl,omitempty" binding:"omitempty,url"`
	// ClaimedByUserID lets an admin link the row to the faculty member's
	// own account at creation time.
	ClaimedByUserID *uuid.UUID `json:"claimedByUserId,omitempty"`
}
