package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (department_id, code, name, description, credits)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.DepartmentID,
		course.Code,
		course.Name,
		course.Description,
		course.Credits,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
		SELECT id, department_id, code, name, description, credits, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.DepartmentID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.Credits,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves courses, optionally filtered by department, ordered by code
func (r *CourseRepository) GetAll(ctx context.Context, departmentID *uuid.UUID, limit, offset int) ([]*models.Course, error) {
	query := `
		SELECT id, department_id, code, name, description, credits, created_at
		FROM courses
		WHERE ($1::uuid IS NULL OR department_id = $1)
		ORDER BY code
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, departmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.DepartmentID,
			&course.Code,
			&course.Name,
			&course.Description,
			&course.Credits,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetStats computes the published-review aggregate for a course. A course
// with no published reviews yields all zeros.
func (r *CourseRepository) GetStats(ctx context.Context, courseID uuid.UUID) (*models.CourseStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(overall), 0)::float8,
			COALESCE(AVG(difficulty), 0)::float8
		FROM reviews
		WHERE course_id = $1 AND status = 'PUBLISHED'
	`

	var stats models.CourseStats
	err := r.db.QueryRow(ctx, query, courseID).Scan(
		&stats.TotalReviews,
		&stats.AverageRating,
		&stats.AverageDifficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing course stats: %w", err)
	}

	return &stats, nil
}
