// Package scraper extracts faculty-directory candidates from the university
// site. Three strategies are tried in fixed priority order: structured API
// probing, rendered-DOM extraction and a static HTML fallback. The first
// strategy producing a non-empty result wins; a failing strategy is logged
// and treated as empty so the next one can run.
package scraper

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rkabir/profscope/internal/config"
	"github.com/rkabir/profscope/internal/pkg/logger"
)

// FacultyMember is a scraped, not-yet-persisted academic staff candidate.
// Only Name is required; everything else is best-effort.
type FacultyMember struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	School     string `json:"school,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Office     string `json:"office,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// Extractor is one extraction strategy. Extract returns a possibly empty
// candidate list; an error is treated by the orchestrator the same as an
// empty result.
type Extractor interface {
	Name() string
	Extract(ctx context.Context) ([]FacultyMember, error)
}

// Scraper runs extractors in priority order.
type Scraper struct {
	extractors []Extractor
	log        zerolog.Logger
}

// New builds the standard strategy chain: API probing, browser rendering,
// static HTML.
func New(cfg *config.Config) *Scraper {
	sel := DefaultSelectors()
	if cfg.Scraper.SelectorsFile != "" {
		loaded, err := LoadSelectors(cfg.Scraper.SelectorsFile)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Scraper.SelectorsFile).
				Msg("Failed to load selector overrides, using defaults")
		} else {
			sel = loaded
		}
	}

	return NewWithExtractors(
		NewAPIExtractor(cfg),
		NewBrowserExtractor(cfg, sel),
		NewStaticExtractor(cfg, sel),
	)
}

// NewWithExtractors builds a scraper over an explicit strategy chain.
func NewWithExtractors(extractors ...Extractor) *Scraper {
	return &Scraper{
		extractors: extractors,
		log:        logger.With("scraper"),
	}
}

// ScrapeFaculty runs the strategy chain and returns whatever the first
// non-empty strategy found. It never fails: absence of data is an empty
// slice, and strategy errors are contained here.
func (s *Scraper) ScrapeFaculty(ctx context.Context) []FacultyMember {
	for _, ex := range s.extractors {
		members, err := ex.Extract(ctx)
		if err != nil {
			s.log.Warn().Err(err).Str("strategy", ex.Name()).Msg("Extraction strategy failed, trying next")
			continue
		}
		if len(members) == 0 {
			s.log.Debug().Str("strategy", ex.Name()).Msg("Extraction strategy found nothing, trying next")
			continue
		}
		s.log.Info().Str("strategy", ex.Name()).Int("count", len(members)).Msg("Faculty extraction succeeded")
		return members
	}

	s.log.Info().Msg("No faculty data could be scraped")
	return []FacultyMember{}
}
