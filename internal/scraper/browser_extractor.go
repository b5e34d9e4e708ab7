package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/rkabir/profscope/internal/config"
	"github.com/rkabir/profscope/internal/pkg/logger"
)

// BrowserExtractor renders the directory page with a headless browser so that
// script-populated listings are present in the DOM, then applies the same
// selector tables as the static strategy to the rendered content.
type BrowserExtractor struct {
	url       string
	baseURL   string
	timeoutMs float64
	selectors Selectors
	log       zerolog.Logger
}

// NewBrowserExtractor creates the rendered-DOM strategy.
func NewBrowserExtractor(cfg *config.Config, sel Selectors) *BrowserExtractor {
	return &BrowserExtractor{
		url:       cfg.Scraper.FacultyURL,
		baseURL:   cfg.Scraper.BaseURL,
		timeoutMs: float64(cfg.BrowserTimeout().Milliseconds()),
		selectors: sel,
		log:       logger.With("scraper.browser"),
	}
}

func (e *BrowserExtractor) Name() string { return "browser" }

// Extract launches a headless chromium, waits for the network to settle,
// attempts a single load-more click, and parses the rendered HTML.
func (e *BrowserExtractor) Extract(ctx context.Context) ([]FacultyMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start browser driver: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     []string{"--no-sandbox", "--disable-setuid-sandbox"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(browserUserAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	defer bctx.Close()

	page, err := bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if _, err := page.Goto(e.url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(e.timeoutMs),
	}); err != nil {
		return nil, fmt.Errorf("failed to load faculty page: %w", err)
	}

	// Give late scripts a chance to populate the listing.
	page.WaitForTimeout(5000)

	e.clickLoadMore(page)

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered page: %w", err)
	}

	members := extractFromDocument(doc, e.selectors, e.baseURL)
	e.log.Debug().Int("count", len(members)).Msg("Browser extraction complete")
	return members, nil
}

// clickLoadMore tries each pagination selector once and clicks the first
// visible match. Failures are logged and ignored; a partial listing is still
// useful.
func (e *BrowserExtractor) clickLoadMore(page playwright.Page) {
	for _, selector := range e.selectors.LoadMore {
		loc := page.Locator(selector).First()
		visible, err := loc.IsVisible()
		if err != nil || !visible {
			continue
		}
		if err := loc.Click(); err != nil {
			e.log.Debug().Err(err).Str("selector", selector).Msg("Load-more click failed")
			return
		}
		e.log.Debug().Str("selector", selector).Msg("Clicked load-more control")
		page.WaitForTimeout(3000)
		return
	}
}
