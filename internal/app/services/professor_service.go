package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/repositories"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/pkg/slug"
)

// ProfessorService handles professor-related operations
type ProfessorService struct {
	professorRepo *repositories.ProfessorRepository
	reviewRepo    *repositories.ReviewRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(
	professorRepo *repositories.ProfessorRepository,
	reviewRepo *repositories.ReviewRepository,
) *ProfessorService {
	return &ProfessorService{
		professorRepo: professorRepo,
		reviewRepo:    reviewRepo,
	}
}

// GetAll lists professors with an optional name search
func (s *ProfessorService) GetAll(ctx context.Context, search string, limit, offset int) ([]*models.Professor, int64, error) {
	professors, err := s.professorRepo.GetAll(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.professorRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return professors, total, nil
}

// Get retrieves a professor by ID or URL slug together with their review
// aggregate and recorded offerings
func (s *ProfessorService) Get(ctx context.Context, ref string) (*models.Professor, *models.ProfessorStats, []*models.Offering, error) {
	var professor *models.Professor
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		professor, err = s.professorRepo.GetByID(ctx, id)
	} else {
		professor, err = s.professorRepo.GetBySlug(ctx, ref)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	stats, err := s.professorRepo.GetStats(ctx, professor.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	offerings, err := s.professorRepo.GetOfferings(ctx, professor.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	return professor, stats, offerings, nil
}

// GetReviews lists published reviews for a professor
func (s *ProfessorService) GetReviews(ctx context.Context, professorID uuid.UUID, limit, offset int) ([]*models.Review, error) {
	if _, err := s.professorRepo.GetByID(ctx, professorID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByProfessor(ctx, professorID, limit, offset)
}

// Create validates and stores a manually entered professor. The slug is
// derived from the name the same way the directory sync derives it.
func (s *ProfessorService) Create(ctx context.Context, professor *models.Professor) error {
	professor.Name = strings.TrimSpace(professor.Name)
	if len(professor.Name) <= 2 {
		return fmt.Errorf("%w: name too short", apperrors.ErrValidationFailed)
	}

	professor.Slug = slug.Make(professor.Name)
	if professor.Slug == "" {
		return fmt.Errorf("%w: name yields an empty slug", apperrors.ErrValidationFailed)
	}
	if professor.Departments == nil {
		professor.Departments = []string{}
	}

	return s.professorRepo.Create(ctx, professor)
}
