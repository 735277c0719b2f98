package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tobi-akande/expense-scanner/constants"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want constants.DocumentType
	}{
		{
			name: "receipt keywords dominate",
			text: "RECEIPT\nCASHIER: John\nSubtotal $5.00\nCash tendered\nThank you for shopping",
			want: constants.DocTypeReceipt,
		},
		{
			name: "invoice keywords dominate",
			text: "INVOICE\nBill To: Acme Corp\nDue Date: 01/15/2025\nNet 30\nBalance Due: $100.00",
			want: constants.DocTypeInvoice,
		},
		{
			name: "no keywords defaults to invoice",
			text: "hello world",
			want: constants.DocTypeInvoice,
		},
		{
			name: "tie goes to invoice",
			text: "receipt terms attached",
			want: constants.DocTypeInvoice,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.want, got.DocumentType)
			assert.GreaterOrEqual(t, got.Confidence, 0.5)
			assert.LessOrEqual(t, got.Confidence, 1.0)
		})
	}
}

func TestClassifyConfidenceFloor(t *testing.T) {
	c := NewClassifier()

	// a single keyword hit scores below 0.5 and is clamped up
	got := c.Classify("invoice")
	assert.Equal(t, constants.DocTypeInvoice, got.DocumentType)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestClassifySubstringContainment(t *testing.T) {
	c := NewClassifier()

	// "subtotal" contains "total" semantics do not apply here, but "subtotal"
	// itself is a receipt keyword even when embedded in a longer token
	got := c.Classify("SUBTOTAL $4.00\ncash register #2\nchange due $1.00")
	assert.Equal(t, constants.DocTypeReceipt, got.DocumentType)
}
