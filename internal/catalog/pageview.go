package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PageView is the capability surface the aggregator drives. Expansion and
// extraction communicate through live page state: VisibleProducts re-queries
// the whole document after each expansion, and the adapter's contract is that
// non-expanded categories do not contribute products. The pency storefront
// collapses sibling sections, which is what makes the global query workable.
type PageView interface {
	Categories() ([]Section, error)
	VisibleProducts() ([]ProductRecord, error)
}

// Section is one discovered category region, potentially collapsed.
type Section interface {
	Label() string
	Expand() error
}

// liveView adapts a playwright page to PageView.
type liveView struct {
	page         playwright.Page
	clickTimeout time.Duration
	sleep        func(time.Duration)
	logger       *slog.Logger
}

func newLiveView(page playwright.Page, clickTimeout time.Duration, logger *slog.Logger) *liveView {
	return &liveView{
		page:         page,
		clickTimeout: clickTimeout,
		sleep:        time.Sleep,
		logger:       logger.With("component", "pageview"),
	}
}

// Categories queries the category containers once, in document order. It is
// meant to run after stabilization so lazily-loaded sections are present.
func (v *liveView) Categories() ([]Section, error) {
	handles, err := v.page.QuerySelectorAll(selectorCategoryContainer)
	if err != nil {
		return nil, fmt.Errorf("failed to query category containers: %w", err)
	}

	sections := make([]Section, 0, len(handles))
	for i, h := range handles {
		sections = append(sections, &liveSection{handle: h, position: i + 1, view: v})
	}
	return sections, nil
}

type liveSection struct {
	handle   playwright.ElementHandle
	position int
	view     *liveView
}

// Label reads the category title, synthesizing a placeholder from the
// section's 1-based position when the label element is absent.
func (s *liveSection) Label() string {
	el, err := s.handle.QuerySelector(selectorCategoryLabel)
	if err != nil || el == nil {
		return fmt.Sprintf("Unknown Category %d", s.position)
	}
	text, err := el.TextContent()
	if err != nil || strings.TrimSpace(text) == "" {
		return fmt.Sprintf("Unknown Category %d", s.position)
	}
	return strings.TrimSpace(text)
}

// Expand reveals the section's products. A missing chevron means the section
// is already expanded and is not an error. Click failures from both strategy
// tiers propagate to the per-category boundary.
func (s *liveSection) Expand() error {
	icon, err := s.handle.QuerySelector(selectorExpandIcon)
	if err != nil {
		return fmt.Errorf("failed to locate expand icon: %w", err)
	}
	if icon == nil {
		s.view.logger.Debug("no expand icon, section already expanded", "position", s.position)
		return nil
	}

	if err := icon.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("failed to scroll expand icon into view: %w", err)
	}
	s.view.sleep(jittered(preClickWait, preClickJitter))

	if err := clickWithFallback(icon, expandStrategies(s.view.clickTimeout), s.view.logger); err != nil {
		return fmt.Errorf("failed to expand section: %w", err)
	}

	// Give the revealed products time to render before extraction.
	s.view.sleep(jittered(postExpandWait, postExpandJitter))
	return nil
}
