// Package categorize assigns an expense category by keyword-scoring the
// merchant name first, then the full document text.
package categorize

import (
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
)

// categoryKeywords maps each category to its keyword table. Matching is
// substring containment; categories are tried in constants.Categories()
// order and the first match wins.
var categoryKeywords = map[constants.Category][]string{
	constants.FoodAndDining: {
		"restaurant", "cafe", "coffee", "diner", "bar", "grill", "pizza", "burger", "bakery",
	},
	constants.Transportation: {
		"gas", "fuel", "shell", "bp", "exxon", "chevron", "parking", "taxi", "transit",
	},
	constants.Groceries: {
		"grocery", "market", "supermarket", "walmart", "costco", "aldi", "kroger",
	},
	constants.OfficeSupplies: {
		"office", "staples", "paper", "ink", "toner", "supplies",
	},
	constants.Entertainment: {
		"cinema", "movie", "theater", "concert", "ticket", "arcade",
	},
	constants.Travel: {
		"hotel", "motel", "inn", "airline", "airfare", "flight", "lodging",
	},
}

const (
	merchantMatchConfidence = 0.9
	textMatchConfidence     = 0.8
	defaultConfidence       = 0.5
)

// Categorizer holds the category keyword tables as immutable configuration.
type Categorizer struct {
	order    []constants.Category
	keywords map[constants.Category][]string
}

func NewCategorizer() *Categorizer {
	return &Categorizer{order: constants.Categories(), keywords: categoryKeywords}
}

// Categorize checks the merchant name first (confidence 0.9 on a match);
// when the merchant name yields nothing it scans the full text (0.8).
// No match at all defaults to "Other" at 0.5.
func (c *Categorizer) Categorize(merchantName, text string) (constants.Category, float64) {
	if merchantName != "" {
		if cat, ok := c.match(strings.ToLower(merchantName)); ok {
			return cat, merchantMatchConfidence
		}
	}
	if cat, ok := c.match(strings.ToLower(text)); ok {
		return cat, textMatchConfidence
	}
	return constants.Other, defaultConfidence
}

func (c *Categorizer) match(lower string) (constants.Category, bool) {
	for _, cat := range c.order {
		for _, kw := range c.keywords[cat] {
			if strings.Contains(lower, kw) {
				return cat, true
			}
		}
	}
	return constants.Other, false
}
