package catalog

import "time"

// Documented fallback values. Every ProductRecord field carries either parsed
// text or one of these, never an empty placeholder.
const (
	DefaultName        = "No name"
	DefaultDescription = "No description"
	DefaultPrice       = "No price"
	DefaultStock       = "Availability not specified"
	DefaultImage       = "No image"

	// StockOutOfStock is the canonical value the out-of-stock element text is
	// normalized to when it matches known phrasing.
	StockOutOfStock = "Out of stock"

	// EmptyCategoryNote marks a category whose container existed but yielded
	// zero products.
	EmptyCategoryNote = "no products found or association failed"
)

// ProductRecord is one product entry parsed from the storefront markup.
// Price and stock are kept as displayed text; currency and availability
// formatting are source-specific.
type ProductRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Image       string `json:"image"`
}

// CategoryResult is the outcome for one discovered category section. Exactly
// one of non-empty Products, Note, or Error characterizes a clean outcome;
// Error always comes with empty Products.
type CategoryResult struct {
	Label    string          `json:"label"`
	Products []ProductRecord `json:"products"`
	Note     string          `json:"note,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// CatalogRun is the result of one extraction invocation. It is a value, not a
// persistent entity: nothing outlives the invocation and there is no cross-run
// state. ID and timing exist for logs and diagnostics.
type CatalogRun struct {
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	DurationMs int64            `json:"duration_ms"`
	Categories []CategoryResult `json:"categories"`
}
