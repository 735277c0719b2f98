package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		ok    bool
	}{
		{"synonym restaurant", "restaurant", FoodAndDining, true},
		{"synonym fuel", "Fuel", Transportation, true},
		{"synonym supermarket", " supermarket ", Groceries, true},
		{"exact label", "Office Supplies", OfficeSupplies, true},
		{"label case-insensitive", "food & dining", FoodAndDining, true},
		{"other label", "other", Other, true},
		{"unknown falls back", "consulting", Other, false},
		{"empty falls back", "", Other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonicalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	labels := AsStringSlice()
	assert.Len(t, labels, len(Categories())+1)
	// Other is always last, after the categorizer's iteration order
	assert.Equal(t, string(Other), labels[len(labels)-1])
	assert.Equal(t, string(FoodAndDining), labels[0])
}
