package extract

import (
	"strings"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// LineItems finds simple line items: lines longer than 10 characters ending
// in a $amount token. The left side is the description. Returns 0.7 when any
// item is found.
func (e *Extractor) LineItems(text string) ([]entity.LineItem, float64) {
	var items []entity.LineItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || !priceToken.MatchString(line) {
			continue
		}
		m := simpleItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount, ok := parseMoney(m[2])
		if !ok {
			continue
		}
		items = append(items, entity.LineItem{
			ItemName:   strings.TrimSpace(m[1]),
			Quantity:   1.0,
			UnitPrice:  amount,
			TotalPrice: amount,
		})
	}
	if len(items) > 0 {
		return items, 0.7
	}
	return nil, 0.0
}

// DetailedLineItems finds qty (x|@) unit_price (=)? total_price lines at 0.8.
// When no detailed line matches it falls back to the simple matcher with
// quantity forced to 1.0 and unit price equal to the amount, at 0.5.
func (e *Extractor) DetailedLineItems(text string) ([]entity.LineItem, float64) {
	var items []entity.LineItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := detailItemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, okQ := parseMoney(m[2])
		unit, okU := parseMoney(m[3])
		total, okT := parseMoney(m[4])
		if !okQ || !okU || !okT {
			continue
		}
		items = append(items, entity.LineItem{
			ItemName:   strings.TrimSpace(m[1]),
			Quantity:   qty,
			UnitPrice:  unit,
			TotalPrice: total,
		})
	}
	if len(items) > 0 {
		return items, 0.8
	}

	simple, conf := e.LineItems(text)
	if conf == 0 {
		return nil, 0.0
	}
	return simple, 0.5
}
