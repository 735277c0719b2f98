package pipeline

import (
	"encoding/json"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// Canonical field keys. Every key of the chosen branch is always present in
// the result mapping, with a nil value and 0.0 confidence when the matcher
// found nothing.
const (
	FieldInvoiceNumber = "invoice_number"
	FieldDate          = "date"
	FieldTime          = "time"
	FieldVendor        = "vendor"
	FieldMerchantName  = "merchant_name"
	FieldLocation      = "location"
	FieldReceiptNumber = "receipt_number"
	FieldPaymentMethod = "payment_method"
	FieldSubtotal      = "subtotal"
	FieldTax           = "tax"
	FieldTip           = "tip"
	FieldTotal         = "total"
	FieldCashierName   = "cashier_name"
	FieldLineItems     = "line_items"
	FieldCategory      = "category"

	// FieldDocumentType is the classification pseudo-field attached last.
	FieldDocumentType = "document_type"
)

// InvoiceFields is the invoice branch's field-key set, in extraction order.
var InvoiceFields = []string{
	FieldInvoiceNumber,
	FieldDate,
	FieldVendor,
	FieldTotal,
	FieldTax,
	FieldLineItems,
}

// ReceiptFields is the receipt branch's field-key set, in extraction order.
var ReceiptFields = []string{
	FieldMerchantName,
	FieldLocation,
	FieldReceiptNumber,
	FieldPaymentMethod,
	FieldDate,
	FieldTime,
	FieldSubtotal,
	FieldTax,
	FieldTip,
	FieldTotal,
	FieldCashierName,
	FieldLineItems,
	FieldCategory,
}

// Result is the assembled extraction output for one document, handed to the
// persistence collaborator verbatim.
type Result struct {
	Classification entity.Classification         `json:"classification"`
	Fields         map[string]entity.FieldResult `json:"fields"`
	Items          []entity.LineItem             `json:"line_items,omitempty"`
	Details        *entity.ReceiptDetails        `json:"details,omitempty"`
}

// JSON renders the result for schema validation and job persistence.
func (r *Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}
