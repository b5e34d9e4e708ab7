package scraper

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/rkabir/profscope/internal/config"
	"github.com/rkabir/profscope/internal/pkg/logger"
)

// APIExtractor probes a fixed list of plausible structured endpoints and
// accepts the first one returning a JSON array of objects.
type APIExtractor struct {
	endpoints []string
	baseURL   string
	client    *resty.Client
	log       zerolog.Logger
}

// NewAPIExtractor creates the structured-source probing strategy.
func NewAPIExtractor(cfg *config.Config) *APIExtractor {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", browserUserAgent)

	return &APIExtractor{
		endpoints: cfg.Scraper.APIEndpoints,
		baseURL:   cfg.Scraper.BaseURL,
		client:    client,
		log:       logger.With("scraper.api"),
	}
}

func (e *APIExtractor) Name() string { return "api" }

// Extract tries each candidate endpoint in order. An endpoint is accepted
// only when its body decodes as a sequence of objects and at least one entry
// normalizes to a usable candidate.
func (e *APIExtractor) Extract(ctx context.Context) ([]FacultyMember, error) {
	for _, endpoint := range e.endpoints {
		resp, err := e.client.R().SetContext(ctx).Get(endpoint)
		if err != nil {
			e.log.Debug().Err(err).Str("endpoint", endpoint).Msg("Endpoint probe failed")
			continue
		}
		if resp.StatusCode() != http.StatusOK {
			e.log.Debug().Int("status", resp.StatusCode()).Str("endpoint", endpoint).Msg("Endpoint probe rejected")
			continue
		}

		var records []map[string]interface{}
		if err := json.Unmarshal(resp.Body(), &records); err != nil {
			// Not a sequence-of-objects shape; try the next endpoint.
			continue
		}
		if len(records) == 0 {
			continue
		}

		var members []FacultyMember
		for _, raw := range records {
			if m, ok := NormalizeRecord(raw, e.baseURL); ok {
				members = append(members, m)
			}
		}
		if len(members) > 0 {
			e.log.Info().Str("endpoint", endpoint).Int("count", len(members)).Msg("Structured endpoint accepted")
			return members, nil
		}
	}

	return nil, nil
}
