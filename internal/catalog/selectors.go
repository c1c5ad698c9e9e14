package catalog

import (
	"math/rand"
	"time"
)

// Selectors for the pency.app storefront markup. The generated class names are
// an external, versioned dependency: when the target page ships new markup
// these must be updated by hand, there is no self-healing.
const (
	selectorCategoryContainer = ".css-a6fk9l, .css-xyh1ff"
	selectorCategoryLabel     = "p.css-18v1jhz"
	selectorExpandIcon        = "svg.feather-chevron-down"
	selectorProduct           = ".css-xxs8cq"
	selectorProductInfo       = ".css-1nqnvtt"
	selectorPrice             = "p.css-lb7l61"
	selectorStockAvailable    = "p.css-11cvmn9"
	selectorStockOut          = "p.css-a8b72n"
	selectorBackgroundImage   = `div[style*="background-image"]`
	selectorOnboardingClose   = `button[data-test-id="product-onboarding-close"]`
)

// Interaction pacing. The jittered pauses let layout and animations settle
// between scrolling an affordance into view, clicking it, and reading the
// revealed products.
const (
	preClickWait     = 500 * time.Millisecond
	preClickJitter   = 500 * time.Millisecond
	postExpandWait   = 2000 * time.Millisecond
	postExpandJitter = 1500 * time.Millisecond
	postScrollSettle = time.Second
)

// jittered returns base plus a random duration in [0, jitter].
func jittered(base, jitter time.Duration) time.Duration {
	return base + time.Duration(rand.Int63n(int64(jitter)+1))
}
