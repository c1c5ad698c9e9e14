package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var backgroundImageURL = regexp.MustCompile(`url\(["']?(.*?)["']?\)`)

// Phrases the out-of-stock element may carry. The storefront mixes Spanish and
// English copy depending on the shop's locale.
var outOfStockPhrases = []string{"out of stock", "sin stock", "agotado", "sold out"}

// VisibleProducts collects the markup of every product element currently in
// the document and parses each into a ProductRecord. The query is global, not
// scoped to the just-expanded section; the PageView contract documents that
// limitation.
func (v *liveView) VisibleProducts() ([]ProductRecord, error) {
	raw, err := v.page.Evaluate(fmt.Sprintf(
		`() => Array.from(document.querySelectorAll(%q)).map(el => el.outerHTML)`, selectorProduct))
	if err != nil {
		return nil, fmt.Errorf("failed to collect product elements: %w", err)
	}

	fragments, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result type from product query")
	}

	products := make([]ProductRecord, 0, len(fragments))
	skipped := 0
	for _, f := range fragments {
		fragment, ok := f.(string)
		if !ok {
			continue
		}
		record, parsed, err := parseProduct(fragment)
		if err != nil {
			return nil, err
		}
		if !parsed {
			skipped++
			continue
		}
		products = append(products, record)
	}

	if skipped > 0 {
		v.logger.Debug("skipped unparseable product elements", "count", skipped)
	}
	return products, nil
}

// parseProduct turns one product element's markup into a ProductRecord. The
// second return value is false when the fragment carries no info block and
// should be skipped entirely. Every record field holds either parsed text or
// its documented default.
func parseProduct(fragment string) (ProductRecord, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ProductRecord{}, false, fmt.Errorf("failed to parse product markup: %w", err)
	}

	info := doc.Find(selectorProductInfo).First()
	if info.Length() == 0 {
		return ProductRecord{}, false, nil
	}

	record := ProductRecord{
		Name:        DefaultName,
		Description: DefaultDescription,
		Price:       DefaultPrice,
		Stock:       parseStock(doc),
		Image:       parseImage(doc),
	}

	paragraphs := info.Find("p")
	if text := strings.TrimSpace(paragraphs.Eq(0).Text()); text != "" {
		record.Name = text
	}
	if paragraphs.Length() > 1 {
		if text := strings.TrimSpace(paragraphs.Eq(1).Text()); text != "" {
			record.Description = text
		}
	}

	if price := strings.TrimSpace(doc.Find(selectorPrice).First().Text()); price != "" {
		record.Price = price
	}

	return record, true, nil
}

// parseStock resolves availability in priority order: the available-units text
// verbatim, then the out-of-stock element normalized to the canonical value
// when its phrasing matches, then the default.
func parseStock(doc *goquery.Document) string {
	if avail := strings.TrimSpace(doc.Find(selectorStockAvailable).First().Text()); avail != "" {
		return avail
	}

	out := doc.Find(selectorStockOut).First()
	if out.Length() > 0 {
		text := strings.TrimSpace(out.Text())
		if isOutOfStockText(text) {
			return StockOutOfStock
		}
		if text != "" {
			return text
		}
	}

	return DefaultStock
}

func isOutOfStockText(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range outOfStockPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// parseImage resolves the product image in priority order: an inline
// background-image style, then an img element's src, then the default.
func parseImage(doc *goquery.Document) string {
	styled := doc.Find(selectorBackgroundImage).First()
	if styled.Length() > 0 {
		if style, ok := styled.Attr("style"); ok {
			if m := backgroundImageURL.FindStringSubmatch(style); len(m) > 1 && m[1] != "" {
				return m[1]
			}
		}
	}

	if img := doc.Find("img").First(); img.Length() > 0 {
		if src, ok := img.Attr("src"); ok && src != "" {
			return src
		}
	}

	return DefaultImage
}
