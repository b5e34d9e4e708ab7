package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
	reviewRepo     *repositories.ReviewRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	departmentRepo *repositories.DepartmentRepository,
	reviewRepo *repositories.ReviewRepository,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		reviewRepo:     reviewRepo,
	}
}

// GetAll lists courses with optional department filtering
func (s *CourseService) GetAll(ctx context.Context, departmentID *uuid.UUID, limit, offset int) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, departmentID, limit, offset)
}

// GetByID retrieves a course together with its review aggregate
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, *models.CourseStats, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.courseRepo.GetStats(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return course, stats, nil
}

// GetReviews lists published reviews for a course
func (s *CourseService) GetReviews(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByCourse(ctx, courseID, limit, offset)
}

// Create validates and stores a new course. Codes are normalized to
// uppercase; the referenced department must exist.
func (s *CourseService) Create(ctx context.Context, course *models.Course) error {
	course.Code = strings.ToUpper(strings.TrimSpace(course.Code))
	course.Name = strings.TrimSpace(course.Name)

	if course.Code == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *course.DepartmentID); err != nil {
			return err
		}
	}

	return s.courseRepo.Create(ctx, course)
}
