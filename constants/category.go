package constants

import (
	"strings"
)

type Category string

const (
	FoodAndDining  Category = "Food & Dining"
	Transportation Category = "Transportation"
	Groceries      Category = "Groceries"
	OfficeSupplies Category = "Office Supplies"
	Entertainment  Category = "Entertainment"
	Travel         Category = "Travel"
	Other          Category = "Other"
)

// allCategories is the fixed iteration order used by the categorizer:
// the first category whose keyword table matches wins.
var allCategories = []Category{
	FoodAndDining,
	Transportation,
	Groceries,
	OfficeSupplies,
	Entertainment,
	Travel,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories)+1)
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	result[len(allCategories)] = string(Other)
	return result
}

// Categories returns the categorizer's iteration order (Other excluded).
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"food":        FoodAndDining,
		"dining":      FoodAndDining,
		"restaurant":  FoodAndDining,
		"gas":         Transportation,
		"fuel":        Transportation,
		"grocery":     Groceries,
		"supermarket": Groceries,
		"office":      OfficeSupplies,
		"stationery":  OfficeSupplies,
		"hotel":       Travel,
		"airline":     Travel,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range AsStringSlice() {
		if normalized == strings.ToLower(cat) {
			return Category(cat), true
		}
	}

	return Other, false
}
