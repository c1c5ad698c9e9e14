package catalog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

// clickTarget is the element surface the expansion strategies drive.
// playwright.ElementHandle satisfies it.
type clickTarget interface {
	ScrollIntoViewIfNeeded(options ...playwright.ElementHandleScrollIntoViewIfNeededOptions) error
	Click(options ...playwright.ElementHandleClickOptions) error
	Evaluate(expression string, arg ...interface{}) (interface{}, error)
}

// clickStrategy is one way of delivering a click to an element.
type clickStrategy struct {
	name  string
	click func(target clickTarget) error
}

// expandStrategies returns the ordered fallback chain for expanding a
// category: a standard pointer-event click first, then a script-dispatched
// click. The script dispatch bypasses hit-testing, which matters when an
// overlapping element or an animation in flight blocks pointer delivery.
func expandStrategies(timeout time.Duration) []clickStrategy {
	return []clickStrategy{
		{
			name: "pointer",
			click: func(t clickTarget) error {
				return t.Click(playwright.ElementHandleClickOptions{
					Timeout: playwright.Float(float64(timeout.Milliseconds())),
				})
			},
		},
		{
			name: "script",
			click: func(t clickTarget) error {
				_, err := t.Evaluate(`el => el.click()`)
				return err
			},
		},
	}
}

// clickWithFallback attempts each strategy in order. The first success wins;
// when every strategy fails the last error propagates.
func clickWithFallback(target clickTarget, strategies []clickStrategy, logger *slog.Logger) error {
	var lastErr error
	for _, s := range strategies {
		if err := s.click(target); err != nil {
			logger.Warn("click strategy failed", "strategy", s.name, "error", err)
			lastErr = err
			continue
		}
		logger.Debug("click strategy succeeded", "strategy", s.name)
		return nil
	}
	return fmt.Errorf("all click strategies failed: %w", lastErr)
}
