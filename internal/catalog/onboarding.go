package catalog

import (
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

// dismissOnboarding closes the welcome modal when the storefront shows one.
// The modal is not guaranteed to appear, so every failure here is logged and
// swallowed; this step never fails the run.
func dismissOnboarding(page playwright.Page, timeout time.Duration, logger *slog.Logger) {
	if _, err := page.WaitForSelector(selectorOnboardingClose, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		logger.Debug("onboarding modal did not appear", "error", err)
		return
	}

	if err := page.Click(selectorOnboardingClose); err != nil {
		logger.Warn("failed to close onboarding modal", "error", err)
		return
	}

	logger.Info("onboarding modal closed")
}
