package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rkabir/profscope/internal/app/models"
	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/pkg/apperrors"
	"github.com/rkabir/profscope/internal/pkg/logger"
	"github.com/rkabir/profscope/internal/pkg/metrics"
	"github.com/rkabir/profscope/internal/pkg/slug"
	"github.com/rkabir/profscope/internal/scraper"
)

// SyncMode selects how scraped faculty records are reconciled against the
// professor table.
type SyncMode string

const (
	// SyncModeFull creates missing professors and refreshes the profile
	// fields of existing ones.
	SyncModeFull SyncMode = "sync"
	// SyncModeAuto only creates missing professors; existing rows are
	// never touched.
	SyncModeAuto SyncMode = "auto-sync"
)

// FacultyScraper produces directory candidates. Satisfied by
// *scraper.Scraper.
type FacultyScraper interface {
	ScrapeFaculty(ctx context.Context) []scraper.FacultyMember
}

// ProfessorStore is the slice of the professor repository the reconciler
// needs.
type ProfessorStore interface {
	GetBySlug(ctx context.Context, professorSlug string) (*models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
	UpdateProfile(ctx context.Context, professor *models.Professor) error
}

// FacultySyncService scrapes the university directory and reconciles the
// result against stored professors.
type FacultySyncService struct {
	scraper FacultyScraper
	store   ProfessorStore
	log     zerolog.Logger
}

// NewFacultySyncService creates a new faculty sync service instance
func NewFacultySyncService(sc FacultyScraper, store ProfessorStore) *FacultySyncService {
	return &FacultySyncService{
		scraper: sc,
		store:   store,
		log:     logger.With("faculty_sync"),
	}
}

// Preview scrapes the directory without touching the database.
func (s *FacultySyncService) Preview(ctx context.Context) []scraper.FacultyMember {
	return s.scraper.ScrapeFaculty(ctx)
}

// Sync scrapes the directory and reconciles every record. Returns the
// scraped set alongside the run stats so callers can sample it.
func (s *FacultySyncService) Sync(ctx context.Context, mode SyncMode) ([]scraper.FacultyMember, dto.SyncStats) {
	members := s.scraper.ScrapeFaculty(ctx)
	stats := s.Reconcile(ctx, members, mode)
	return members, stats
}

// Reconcile applies a scraped faculty set to the professor table. One bad
// record never aborts the run; its error is recorded and the loop moves on.
func (s *FacultySyncService) Reconcile(ctx context.Context, members []scraper.FacultyMember, mode SyncMode) dto.SyncStats {
	stats := dto.SyncStats{Total: len(members)}

	for _, member := range members {
		outcome, err := s.reconcileOne(ctx, member, mode)
		if err != nil {
			stats.Errors++
			stats.ErrorDetails = append(stats.ErrorDetails,
				fmt.Sprintf("%s: %v", member.Name, err))
			metrics.SyncErrors.Inc()
			s.log.Warn().Err(err).Str("name", member.Name).Msg("Failed to reconcile faculty member")
			continue
		}

		switch outcome {
		case outcomeCreated:
			stats.Created++
			metrics.SyncCreated.Inc()
		case outcomeUpdated:
			stats.Updated++
			metrics.SyncUpdated.Inc()
		}
	}

	s.log.Info().
		Str("mode", string(mode)).
		Int("total", stats.Total).
		Int("created", stats.Created).
		Int("updated", stats.Updated).
		Int("errors", stats.Errors).
		Msg("Faculty reconciliation complete")

	return stats
}

type reconcileOutcome int

const (
	outcomeSkipped reconcileOutcome = iota
	outcomeCreated
	outcomeUpdated
)

func (s *FacultySyncService) reconcileOne(ctx context.Context, member scraper.FacultyMember, mode SyncMode) (reconcileOutcome, error) {
	existing, err := s.store.GetBySlug(ctx, slug.Make(member.Name))
	switch {
	case err == nil:
		if mode == SyncModeAuto {
			return outcomeSkipped, nil
		}
		applyProfile(existing, member)
		if err := s.store.UpdateProfile(ctx, existing); err != nil {
			return outcomeSkipped, err
		}
		return outcomeUpdated, nil

	case errors.Is(err, apperrors.ErrProfessorNotFound):
		professor := newProfessor(member)
		if err := s.store.Create(ctx, professor); err != nil {
			return outcomeSkipped, err
		}
		return outcomeCreated, nil

	default:
		return outcomeSkipped, err
	}
}

// newProfessor converts a scraped record into a professor row: slugged name,
// single-element department list and a synthesized bio when the directory
// had none.
func newProfessor(member scraper.FacultyMember) *models.Professor {
	departments := []string{}
	if member.Department != "" {
		departments = append(departments, member.Department)
	}

	return &models.Professor{
		Name:        member.Name,
		Slug:        slug.Make(member.Name),
		Title:       strPtr(member.Title),
		Departments: departments,
		School:      strPtr(member.School),
		Email:       strPtr(member.Email),
		Phone:       strPtr(member.Phone),
		Office:      strPtr(member.Office),
		Bio:         strPtr(synthesizeBio(member)),
		ImageURL:    strPtr(member.ImageURL),
		ProfileURL:  strPtr(member.ProfileURL),
	}
}

// applyProfile refreshes the directory-sourced fields of an existing row in
// place. The slug is identity and never changes; the display name follows the
// directory. A blank scraped value never clobbers stored data.
func applyProfile(p *models.Professor, member scraper.FacultyMember) {
	p.Name = member.Name
	// Bio is only replaced by real directory text. Synthesis from
	// title/department happens on create, never over a stored bio.
	if member.Bio != "" {
		p.Bio = strPtr(member.Bio)
	}
	if member.Title != "" {
		p.Title = strPtr(member.Title)
	}
	if member.Department != "" {
		p.Departments = []string{member.Department}
	}
	if member.School != "" {
		p.School = strPtr(member.School)
	}
	if member.Email != "" {
		p.Email = strPtr(member.Email)
	}
	if member.Phone != "" {
		p.Phone = strPtr(member.Phone)
	}
	if member.Office != "" {
		p.Office = strPtr(member.Office)
	}
	if member.ImageURL != "" {
		p.ImageURL = strPtr(member.ImageURL)
	}
	if member.ProfileURL != "" {
		p.ProfileURL = strPtr(member.ProfileURL)
	}
}

// synthesizeBio returns the scraped bio, or a one-liner assembled from
// title, department and school when the directory had no bio text.
func synthesizeBio(member scraper.FacultyMember) string {
	if member.Bio != "" {
		return member.Bio
	}

	var parts []string
	for _, part := range []string{member.Title, member.Department, member.School} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
