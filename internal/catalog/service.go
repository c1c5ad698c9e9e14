package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/pencylab/catalog-scraper/internal/browser"
	"github.com/pencylab/catalog-scraper/internal/config"
)

// browserSession is the slice of browser.Browser the run lifecycle needs.
type browserSession interface {
	NewPage() (playwright.Page, error)
	Close() error
}

// Service runs the extraction pipeline: acquire a browser, navigate, dismiss
// onboarding, stabilize, then expand and harvest every category sequentially.
// Each run launches and releases its own browser session, so the process is
// never left running between runs and concurrent runs never share a context.
// Categories are never processed in parallel because expansion mutates shared
// page state.
type Service struct {
	newSession func() (browserSession, error)
	cfg        config.ScraperConfig
	metrics    *Metrics
	logger     *slog.Logger
}

func NewService(opts *browser.Options, cfg config.ScraperConfig, metrics *Metrics, logger *slog.Logger) *Service {
	return &Service{
		newSession: func() (browserSession, error) { return browser.New(opts) },
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger.With("component", "catalog"),
	}
}

// Run performs one extraction and returns the aggregated catalog. An error is
// returned only for session-level failures (browser launch, page creation,
// navigation); per-category failures are recorded inside the result instead.
// The browser is released exactly once on every exit path, including the
// fatal ones. Cancellation mid-run is not supported: the browser interaction
// sequence completes or times out on its own bounded timeouts.
func (s *Service) Run(ctx context.Context) (*CatalogRun, error) {
	run := &CatalogRun{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		Categories: []CategoryResult{},
	}
	logger := s.logger.With("run_id", run.ID)
	start := time.Now()

	b, err := s.newSession()
	if err != nil {
		s.metrics.ObserveRun("error", time.Since(start))
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Warn("failed to close browser", "error", err)
		}
	}()

	page, err := b.NewPage()
	if err != nil {
		s.metrics.ObserveRun("error", time.Since(start))
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			logger.Warn("failed to close page", "error", err)
		}
	}()

	logger.Info("navigating to storefront", "url", s.cfg.TargetURL)
	if _, err := page.Goto(s.cfg.TargetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(s.cfg.NavigationTimeout.Milliseconds())),
	}); err != nil {
		s.metrics.ObserveRun("error", time.Since(start))
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	dismissOnboarding(page, s.cfg.OnboardingTimeout, logger)

	iterations, settled := newStabilizer(
		s.cfg.MaxScrollIterations, s.cfg.ScrollWait, s.cfg.ScrollWaitJitter, logger,
	).run(page)
	logger.Info("page stabilized", "iterations", iterations, "settled", settled)

	// Let the containers settle after the last scroll before querying them.
	time.Sleep(postScrollSettle)

	view := newLiveView(page, s.cfg.ClickTimeout, logger)
	categories, err := collectCatalog(view, logger)
	if err != nil {
		s.metrics.ObserveRun("error", time.Since(start))
		return nil, err
	}

	run.Categories = categories
	run.DurationMs = time.Since(start).Milliseconds()
	s.recordOutcomes(run, time.Since(start))

	logger.Info("extraction run finished",
		"categories", len(run.Categories),
		"duration_ms", run.DurationMs,
	)
	return run, nil
}

func (s *Service) recordOutcomes(run *CatalogRun, elapsed time.Duration) {
	s.metrics.ObserveRun("ok", elapsed)
	for _, c := range run.Categories {
		switch {
		case c.Error != "":
			s.metrics.IncCategory("error")
		case c.Note != "":
			s.metrics.IncCategory("empty")
		default:
			s.metrics.IncCategory("ok")
			s.metrics.AddProducts(len(c.Products))
		}
	}
}
