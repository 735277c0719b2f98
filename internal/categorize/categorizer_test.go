package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tobi-akande/expense-scanner/constants"
)

func TestCategorize(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		name     string
		merchant string
		text     string
		want     constants.Category
		wantConf float64
	}{
		{
			name:     "merchant match wins at high confidence",
			merchant: "Blue Door Cafe",
			text:     "irrelevant",
			want:     constants.FoodAndDining,
			wantConf: 0.9,
		},
		{
			name:     "gas brand in merchant name",
			merchant: "Shell Station 42",
			text:     "",
			want:     constants.Transportation,
			wantConf: 0.9,
		},
		{
			name:     "text fallback at reduced confidence",
			merchant: "Unknown Vendor",
			text:     "pump 4 regular fuel 10.2 gal",
			want:     constants.Transportation,
			wantConf: 0.8,
		},
		{
			name:     "empty merchant goes straight to text",
			merchant: "",
			text:     "ink cartridges and toner",
			want:     constants.OfficeSupplies,
			wantConf: 0.8,
		},
		{
			name:     "no keywords anywhere",
			merchant: "Acme",
			text:     "miscellaneous purchase",
			want:     constants.Other,
			wantConf: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := c.Categorize(tt.merchant, tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantConf, conf)
		})
	}
}

func TestCategorizeOrder(t *testing.T) {
	c := NewCategorizer()

	// both tables match; the earlier category in declaration order wins
	got, conf := c.Categorize("Grill and Gas Bar", "")
	assert.Equal(t, constants.FoodAndDining, got)
	assert.Equal(t, 0.9, conf)
}
