package entity

import (
	"github.com/google/uuid"
)

// LineItem is one purchased item on a receipt, in order of appearance.
type LineItem struct {
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// ReceiptDetails aggregates the receipt-only fields for one document.
// Every field is independently nullable; each is populated by its own matcher.
type ReceiptDetails struct {
	DocumentID      uuid.UUID `json:"document_id"`
	MerchantName    *string   `json:"merchant_name"`
	Location        *string   `json:"location"`
	PaymentMethod   *string   `json:"payment_method"`
	TipAmount       *string   `json:"tip_amount"`
	Subtotal        *string   `json:"subtotal"`
	TaxAmount       *string   `json:"tax_amount"`
	TotalAmount     *string   `json:"total_amount"`
	CashierName     *string   `json:"cashier_name"`
	TransactionTime *string   `json:"transaction_time"`
	Category        *string   `json:"category"`
}
