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

const reviewColumns = `
	r.id, r.user_id, r.professor_id, r.course_id, r.semester, r.year,
	r.section, r.overall, r.difficulty, r.clarity, r.helpfulness,
	r.engagement, r.fairness, r.grading, r.workload,
	r.would_take_again, r.recommend, r.delivery, r.grade_received,
	r.attendance_mandatory, r.hours_per_week, r.tags, r.comment,
	r.status, r.edited_until, r.created_at, r.updated_at,
	COUNT(v.id) FILTER (WHERE v.vote = 'HELPFUL'),
	COUNT(v.id) FILTER (WHERE v.vote = 'NOT_HELPFUL')`

const reviewGroupBy = `GROUP BY r.id`

// ReviewRepository handles database operations for reviews, votes and
// reports
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

func scanReview(row pgx.Row) (*models.Review, error) {
	var rv models.Review
	err := row.Scan(
		&rv.ID,
		&rv.UserID,
		&rv.ProfessorID,
		&rv.CourseID,
		&rv.Semester,
		&rv.Year,
		&rv.Section,
		&rv.Overall,
		&rv.Difficulty,
		&rv.Clarity,
		&rv.Helpfulness,
		&rv.Engagement,
		&rv.Fairness,
		&rv.Grading,
		&rv.Workload,
		&rv.WouldTakeAgain,
		&rv.Recommend,
		&rv.Delivery,
		&rv.GradeReceived,
		&rv.Attendance,
		&rv.HoursPerWeek,
		&rv.Tags,
		&rv.Comment,
		&rv.Status,
		&rv.EditedUntil,
		&rv.CreatedAt,
		&rv.UpdatedAt,
		&rv.HelpfulCount,
		&rv.NotHelpfulCount,
	)
	if err != nil {
		return nil, err
	}
	if rv.Tags == nil {
		rv.Tags = []string{}
	}
	return &rv, nil
}

// Create inserts a review and records the matching course offering in one
// transaction. A second review by the same user for the same section is a
// duplicate.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if review.Tags == nil {
		review.Tags = []string{}
	}

	insertReview := `
		INSERT INTO reviews (user_id, professor_id, course_id, semester, year,
			section, overall, difficulty, clarity, helpfulness,
			engagement, fairness, grading, workload,
			would_take_again, recommend, delivery, grade_received,
			attendance_mandatory, hours_per_week, tags, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, status, edited_until, created_at, updated_at
	`

	err = tx.QueryRow(ctx, insertReview,
		review.UserID,
		review.ProfessorID,
		review.CourseID,
		review.Semester,
		review.Year,
		review.Section,
		review.Overall,
		review.Difficulty,
		review.Clarity,
		review.Helpfulness,
		review.Engagement,
		review.Fairness,
		review.Grading,
		review.Workload,
		review.WouldTakeAgain,
		review.Recommend,
		review.Delivery,
		review.GradeReceived,
		review.Attendance,
		review.HoursPerWeek,
		review.Tags,
		review.Comment,
	).Scan(&review.ID, &review.Status, &review.EditedUntil, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "unique_review_idx") {
			return apperrors.ErrDuplicateReview
		}
		return fmt.Errorf("error creating review: %w", err)
	}

	insertOffering := `
		INSERT INTO offerings (professor_id, course_id, semester, year, section)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (professor_id, course_id, semester, year) DO NOTHING
	`

	if _, err := tx.Exec(ctx, insertOffering,
		review.ProfessorID,
		review.CourseID,
		review.Semester,
		review.Year,
		review.Section,
	); err != nil {
		return fmt.Errorf("error recording offering: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing review: %w", err)
	}

	return nil
}

// GetByID retrieves a review with its vote counts
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	query := `
		SELECT` + reviewColumns + `
		FROM reviews r
		LEFT JOIN review_votes v ON v.review_id = r.id
		WHERE r.id = $1
		` + reviewGroupBy

	rv, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}
	return rv, nil
}

// GetByProfessor lists published reviews for a professor, newest first
// ReviewFilter narrows the review listing. Nil fields match everything.
type ReviewFilter struct {
	ProfessorID *uuid.UUID
	CourseID    *uuid.UUID
	Semester    *models.Semester
	Year        *int
	Status      models.ReviewStatus
}

// List returns reviews matching the filter, newest first.
func (r *ReviewRepository) List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*models.Review, error) {
	query := `
		SELECT` + reviewColumns + `
		FROM reviews r
		LEFT JOIN review_votes v ON v.review_id = r.id
		WHERE r.status = $1
			AND ($2::uuid IS NULL OR r.professor_id = $2)
			AND ($3::uuid IS NULL OR r.course_id = $3)
			AND ($4::text IS NULL OR r.semester = $4)
			AND ($5::int IS NULL OR r.year = $5)
		` + reviewGroupBy + `
		ORDER BY r.created_at DESC
		LIMIT $6 OFFSET $7
	`

	return r.queryReviews(ctx, query,
		filter.Status, filter.ProfessorID, filter.CourseID, filter.Semester, filter.Year,
		limit, offset)
}

func (r *ReviewRepository) GetByProfessor(ctx context.Context, professorID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	query := `
		SELECT` + reviewColumns + `
		FROM reviews r
		LEFT JOIN review_votes v ON v.review_id = r.id
		WHERE r.professor_id = $1 AND r.status = 'PUBLISHED'
		` + reviewGroupBy + `
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryReviews(ctx, query, professorID, limit, offset)
}

// GetByCourse lists published reviews for a course, newest first
func (r *ReviewRepository) GetByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	query := `
		SELECT` + reviewColumns + `
		FROM reviews r
		LEFT JOIN review_votes v ON v.review_id = r.id
		WHERE r.course_id = $1 AND r.status = 'PUBLISHED'
		` + reviewGroupBy + `
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryReviews(ctx, query, courseID, limit, offset)
}

// GetByUser lists a user's own reviews regardless of status, newest first
func (r *ReviewRepository) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	query := `
		SELECT` + reviewColumns + `
		FROM reviews r
		LEFT JOIN review_votes v ON v.review_id = r.id
		WHERE r.user_id = $1
		` + reviewGroupBy + `
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryReviews(ctx, query, userID, limit, offset)
}

func (r *ReviewRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// Update overwrites the editable fields of a review
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	if review.Tags == nil {
		review.Tags = []string{}
	}

	query := `
		UPDATE reviews
		SET overall = $2, difficulty = $3, clarity = $4, helpfulness = $5,
			engagement = $6, fairness = $7, grading = $8, workload = $9,
			would_take_again = $10, recommend = $11, delivery = $12,
			grade_received = $13, attendance_mandatory = $14,
			hours_per_week = $15, tags = $16, comment = $17, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		review.ID,
		review.Overall,
		review.Difficulty,
		review.Clarity,
		review.Helpfulness,
		review.Engagement,
		review.Fairness,
		review.Grading,
		review.Workload,
		review.WouldTakeAgain,
		review.Recommend,
		review.Delivery,
		review.GradeReceived,
		review.Attendance,
		review.HoursPerWeek,
		review.Tags,
		review.Comment,
	).Scan(&review.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrReviewNotFound
		}
		return fmt.Errorf("error updating review: %w", err)
	}

	return nil
}

// Delete removes a review. Votes and reports go with it via cascade.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// SetStatus changes the moderation state of a review
func (r *ReviewRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ReviewStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reviews SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("error updating review status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// Vote records a helpfulness vote. A repeat vote by the same user replaces
// the previous one.
func (r *ReviewRepository) Vote(ctx context.Context, vote *models.ReviewVote) error {
	query := `
		INSERT INTO review_votes (user_id, review_id, vote)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, review_id) DO UPDATE SET vote = EXCLUDED.vote
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, vote.UserID, vote.ReviewID, vote.Vote).
		Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording vote: %w", err)
	}

	return nil
}

// Report flags a review for moderation. One report per user per review.
func (r *ReviewRepository) Report(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, review_id, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, review_id) DO UPDATE SET reason = EXCLUDED.reason
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, report.UserID, report.ReviewID, report.Reason).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording report: %w", err)
	}

	return nil
}
