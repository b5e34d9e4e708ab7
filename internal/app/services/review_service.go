package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/pkg/metrics"
)

// ReviewService handles review, vote and report operations
type ReviewService struct {
	reviewRepo    *repositories.ReviewRepository
	professorRepo *repositories.ProfessorRepository
	courseRepo    *repositories.CourseRepository
	now           func() time.Time
}

// NewReviewService creates a new review service instance
func NewReviewService(
	reviewRepo *repositories.ReviewRepository,
	professorRepo *repositories.ProfessorRepository,
	courseRepo *repositories.CourseRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		professorRepo: professorRepo,
		courseRepo:    courseRepo,
		now:           time.Now,
	}
}

// Create validates referenced entities and stores a new review
func (s *ReviewService) Create(ctx context.Context, review *models.Review) error {
	if _, err := s.professorRepo.GetByID(ctx, review.ProfessorID); err != nil {
		return err
	}
	if _, err := s.courseRepo.GetByID(ctx, review.CourseID); err != nil {
		return err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	metrics.ReviewsCreated.Inc()
	return nil
}

// List returns reviews matching the filter, published only unless the filter
// names another status.
func (s *ReviewService) List(ctx context.Context, filter repositories.ReviewFilter, limit, offset int) ([]*models.Review, error) {
	if filter.Status == "" {
		filter.Status = models.ReviewPublished
	}
	return s.reviewRepo.List(ctx, filter, limit, offset)
}

// GetByID retrieves a single review
func (s *ReviewService) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// GetByUser lists a user's own reviews
func (s *ReviewService) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	return s.reviewRepo.GetByUser(ctx, userID, limit, offset)
}

// Update applies an edit to the caller's own review. Edits are only allowed
// until the review's edit deadline, set 24 hours from creation.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uuid.UUID, apply func(*models.Review)) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	if s.now().After(review.EditedUntil) {
		return nil, fmt.Errorf("%w: edit window has closed", apperrors.ErrPermissionDenied)
	}

	apply(review)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes a review. Authors can delete their own reviews at any
// time; admins can delete anyone's.
func (s *ReviewService) Delete(ctx context.Context, user *models.User, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != user.ID && user.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

// Vote records a helpfulness vote on someone else's review
func (s *ReviewService) Vote(ctx context.Context, userID, reviewID uuid.UUID, vote models.VoteType) (*models.ReviewVote, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID == userID {
		return nil, fmt.Errorf("%w: cannot vote on your own review", apperrors.ErrInvalidVote)
	}

	rv := &models.ReviewVote{
		UserID:   userID,
		ReviewID: reviewID,
		Vote:     vote,
	}
	if err := s.reviewRepo.Vote(ctx, rv); err != nil {
		return nil, err
	}

	return rv, nil
}

// Report flags a review for moderation
func (s *ReviewService) Report(ctx context.Context, userID, reviewID uuid.UUID, reason string) error {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return err
	}

	report := &models.Report{
		UserID:   userID,
		ReviewID: reviewID,
		Reason:   reason,
	}
	return s.reviewRepo.Report(ctx, report)
}

// SetStatus changes a review's moderation state (admin only, enforced at
// the route level)
func (s *ReviewService) SetStatus(ctx context.Context, reviewID uuid.UUID, status models.ReviewStatus) error {
	return s.reviewRepo.SetStatus(ctx, reviewID, status)
}
