package catalog

import (
	"fmt"
	"log/slog"
)

// collectCatalog walks every discovered section in document order, isolating
// failures so one bad category never aborts the run. Each section ends up as
// exactly one CategoryResult: products on success, a note when the container
// yielded nothing, or an error when expansion or extraction failed.
func collectCatalog(view PageView, logger *slog.Logger) ([]CategoryResult, error) {
	sections, err := view.Categories()
	if err != nil {
		return nil, fmt.Errorf("category discovery failed: %w", err)
	}
	logger.Info("discovered category containers", "count", len(sections))

	results := make([]CategoryResult, 0, len(sections))
	for i, section := range sections {
		label := section.Label()
		logger.Info("processing category", "position", i+1, "total", len(sections), "label", label)

		result := CategoryResult{Label: label, Products: []ProductRecord{}}

		if err := section.Expand(); err != nil {
			logger.Error("category expansion failed", "label", label, "error", err)
			result.Error = fmt.Sprintf("failed to process category: %v", err)
			results = append(results, result)
			continue
		}

		products, err := view.VisibleProducts()
		if err != nil {
			logger.Error("product extraction failed", "label", label, "error", err)
			result.Error = fmt.Sprintf("failed to process category: %v", err)
			results = append(results, result)
			continue
		}

		if len(products) == 0 {
			logger.Warn("no products found in category", "label", label)
			result.Note = EmptyCategoryNote
		} else {
			result.Products = products
			logger.Info("category processed", "label", label, "products", len(products))
		}
		results = append(results, result)
	}

	return results, nil
}
