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

const professorColumns = `
	id, name, slug, title, departments, school, email, phone, office,
	bio, image_url, profile_url, claimed_by_user_id, created_at, updated_at`

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var p models.Professor
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Title,
		&p.Departments,
		&p.School,
		&p.Email,
		&p.Phone,
		&p.Office,
		&p.Bio,
		&p.ImageURL,
		&p.ProfileURL,
		&p.ClaimedByUserID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Departments == nil {
		p.Departments = []string{}
	}
	return &p, nil
}

// Create creates a new professor
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, slug, title, departments, school, email,
			phone, office, bio, image_url, profile_url, claimed_by_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	if professor.Departments == nil {
		professor.Departments = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		professor.Name,
		professor.Slug,
		professor.Title,
		professor.Departments,
		professor.School,
		professor.Email,
		professor.Phone,
		professor.Office,
		professor.Bio,
		professor.ImageURL,
		professor.ProfileURL,
		professor.ClaimedByUserID,
	).Scan(&professor.ID, &professor.CreatedAt, &professor.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "professors_slug_key") {
			return apperrors.ErrSlugAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugAlreadyExists
		}
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Professor, error) {
	query := `SELECT` + professorColumns + ` FROM professors WHERE id = $1`

	p, err := scanProfessor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return p, nil
}

// GetBySlug retrieves a professor by their URL slug
func (r *ProfessorRepository) GetBySlug(ctx context.Context, slug string) (*models.Professor, error) {
	query := `SELECT` + professorColumns + ` FROM professors WHERE slug = $1`

	p, err := scanProfessor(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return p, nil
}

// GetAll retrieves professors with an optional case-insensitive name search,
// ordered by name
func (r *ProfessorRepository) GetAll(ctx context.Context, search string, limit, offset int) ([]*models.Professor, error) {
	query := `
		SELECT` + professorColumns + `
		FROM professors
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	var professors []*models.Professor
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}

// Count returns the professor count for the same filter GetAll uses
func (r *ProfessorRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM professors
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting professors: %w", err)
	}
	return count, nil
}

// UpdateProfile overwrites the directory-sourced profile fields of an
// existing professor. Slug and review data are untouched.
func (r *ProfessorRepository) UpdateProfile(ctx context.Context, professor *models.Professor) error {
	query := `
		UPDATE professors
		SET name = $2, title = $3, departments = $4, school = $5, email = $6,
			phone = $7, office = $8, bio = $9, image_url = $10, profile_url = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	if professor.Departments == nil {
		professor.Departments = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		professor.ID,
		professor.Name,
		professor.Title,
		professor.Departments,
		professor.School,
		professor.Email,
		professor.Phone,
		professor.Office,
		professor.Bio,
		professor.ImageURL,
		professor.ProfileURL,
	).Scan(&professor.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrProfessorNotFound
		}
		return fmt.Errorf("error updating professor: %w", err)
	}

	return nil
}

// GetStats computes the published-review aggregate for a professor.
// Percentages run over all published reviews, counting an unanswered yes/no
// question as false; a professor with no published reviews yields all zeros.
func (r *ProfessorRepository) GetStats(ctx context.Context, professorID uuid.UUID) (*models.ProfessorStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(overall), 0)::float8,
			COALESCE(AVG(difficulty), 0)::float8,
			COALESCE(AVG(CASE WHEN would_take_again THEN 100.0 ELSE 0.0 END), 0)::float8,
			COALESCE(AVG(CASE WHEN recommend THEN 100.0 ELSE 0.0 END), 0)::float8
		FROM reviews
		WHERE professor_id = $1 AND status = 'PUBLISHED'
	`

	var stats models.ProfessorStats
	err := r.db.QueryRow(ctx, query, professorID).Scan(
		&stats.TotalReviews,
		&stats.AverageRating,
		&stats.AverageDifficulty,
		&stats.WouldTakeAgainPercent,
		&stats.RecommendPercent,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing professor stats: %w", err)
	}

	return &stats, nil
}

// GetOfferings lists the course offerings recorded for a professor, most
// recent term first
func (r *ProfessorRepository) GetOfferings(ctx context.Context, professorID uuid.UUID) ([]*models.Offering, error) {
	query := `
		SELECT o.id, o.professor_id, o.course_id, o.semester, o.year,
			o.section, o.created_at,
			c.id, c.department_id, c.code, c.name, c.description, c.credits,
			c.created_at
		FROM offerings o
		JOIN courses c ON c.id = o.course_id
		WHERE o.professor_id = $1
		ORDER BY o.year DESC, o.semester, c.code
	`

	rows, err := r.db.Query(ctx, query, professorID)
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.Offering
	for rows.Next() {
		var o models.Offering
		var c models.Course
		if err := rows.Scan(
			&o.ID, &o.ProfessorID, &o.CourseID, &o.Semester, &o.Year,
			&o.Section, &o.CreatedAt,
			&c.ID, &c.DepartmentID, &c.Code, &c.Name, &c.Description,
			&c.Credits, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Course = &c
		offerings = append(offerings, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}
