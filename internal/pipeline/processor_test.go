package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
)

const receiptText = `BLUE DOOR CAFE
123 Main Street
Springfield, IL 62704
Receipt #R-1001
Server: Dana
12/25/2024 6:45 PM
Coffee 2 x $3.50 = $7.00
Muffin 1 @ $2.25 $2.25
Subtotal: $9.25
Tax: $0.74
Tip: $1.85
Total: $11.84
Paid by VISA
Thank you`

func newTestProcessor() *Processor {
	return NewProcessor(nil, nil, nil, nil)
}

func TestProcessRejectsEmptyText(t *testing.T) {
	p := newTestProcessor()

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := p.Process(context.Background(), text)
		assert.ErrorIs(t, err, common.ErrEmptyDocument)
	}
}

func TestProcessReceiptBranch(t *testing.T) {
	p := newTestProcessor()

	res, err := p.Process(context.Background(), receiptText)
	require.NoError(t, err)
	assert.Equal(t, constants.DocTypeReceipt, res.Classification.DocumentType)

	// every branch key plus the classification pseudo-field is present
	for _, key := range ReceiptFields {
		assert.Contains(t, res.Fields, key, "missing field %s", key)
	}
	require.Contains(t, res.Fields, FieldDocumentType)
	require.NotNil(t, res.Fields[FieldDocumentType].Value)
	assert.Equal(t, string(constants.DocTypeReceipt), *res.Fields[FieldDocumentType].Value)

	require.NotNil(t, res.Fields[FieldMerchantName].Value)
	assert.Equal(t, "BLUE DOOR CAFE", *res.Fields[FieldMerchantName].Value)
	require.NotNil(t, res.Fields[FieldDate].Value)
	assert.Equal(t, "12/25/2024", *res.Fields[FieldDate].Value)
	require.NotNil(t, res.Fields[FieldTime].Value)
	assert.Equal(t, "6:45 PM", *res.Fields[FieldTime].Value)
	require.NotNil(t, res.Fields[FieldCategory].Value)
	assert.Equal(t, string(constants.FoodAndDining), *res.Fields[FieldCategory].Value)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "Coffee", res.Items[0].ItemName)

	require.NotNil(t, res.Details)
	require.NotNil(t, res.Details.MerchantName)
	assert.Equal(t, "BLUE DOOR CAFE", *res.Details.MerchantName)
	require.NotNil(t, res.Details.Subtotal)
	assert.Equal(t, "9.25", *res.Details.Subtotal)
}

func TestProcessInvoiceBranchKeysAlwaysPresent(t *testing.T) {
	p := newTestProcessor()

	// no keywords at all: classification defaults to invoice, and every
	// invoice field key is present even when every matcher misses
	res, err := p.Process(context.Background(), "0\n1\n2\n3\n4\n5")
	require.NoError(t, err)
	assert.Equal(t, constants.DocTypeInvoice, res.Classification.DocumentType)

	for _, key := range InvoiceFields {
		require.Contains(t, res.Fields, key, "missing field %s", key)
	}
	assert.Nil(t, res.Fields[FieldInvoiceNumber].Value)
	assert.Nil(t, res.Fields[FieldVendor].Value)
	assert.Nil(t, res.Fields[FieldLineItems].Value)
	assert.Nil(t, res.Details)
	assert.Empty(t, res.Items)
}

func TestProcessCancelledContext(t *testing.T) {
	p := newTestProcessor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Process(ctx, receiptText)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultMatchesSchema(t *testing.T) {
	p := newTestProcessor()
	schema := BuildResultJSONSchema(constants.DocumentTypes)

	for _, text := range []string{receiptText, "Invoice #INV-100\nAcme Corp\nTotal: $45.99"} {
		res, err := p.Process(context.Background(), text)
		require.NoError(t, err)

		data, err := res.JSON()
		require.NoError(t, err)
		require.NoError(t, ValidateJSONAgainstSchema(schema, data))
	}
}
