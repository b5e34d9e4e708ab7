package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/rkabir/profscope/internal/config"
	"github.com/rkabir/profscope/internal/pkg/logger"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// StaticExtractor fetches the directory page over plain HTTP and applies the
// selector tables without any rendering. Last-resort strategy for when the
// browser is unavailable or found nothing.
type StaticExtractor struct {
	url       string
	baseURL   string
	selectors Selectors
	client    *resty.Client
	log       zerolog.Logger
}

// NewStaticExtractor creates the static HTML fallback strategy.
func NewStaticExtractor(cfg *config.Config, sel Selectors) *StaticExtractor {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout()).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5").
		SetHeader("Connection", "keep-alive").
		SetHeader("Upgrade-Insecure-Requests", "1")

	return &StaticExtractor{
		url:       cfg.Scraper.FacultyURL,
		baseURL:   cfg.Scraper.BaseURL,
		selectors: sel,
		client:    client,
		log:       logger.With("scraper.static"),
	}
}

func (e *StaticExtractor) Name() string { return "static" }

// Extract performs a single GET and walks the selector tables over the
// response body.
func (e *StaticExtractor) Extract(ctx context.Context) ([]FacultyMember, error) {
	resp, err := e.client.R().SetContext(ctx).Get(e.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculty page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("faculty page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse faculty page: %w", err)
	}

	members := extractFromDocument(doc, e.selectors, e.baseURL)
	e.log.Debug().Int("count", len(members)).Msg("Static extraction complete")
	return members, nil
}
