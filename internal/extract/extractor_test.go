package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

func TestInvoiceNumber(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"hash prefix", "Invoice #INV-2024-001\nBill To: Acme", "INV-2024-001"},
		{"colon prefix", "invoice: 78912", "78912"},
		{"inv shorthand", "INV 4521 issued today", "4521"},
		{"no identifier", "hello world", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.InvoiceNumber(tt.text)
			if tt.want == "" {
				assert.Nil(t, got.Value)
				assert.Zero(t, got.Confidence)
				return
			}
			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, *got.Value)
			assert.Equal(t, 0.9, got.Confidence)
		})
	}
}

func TestDate(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"us slashes", "Date: 12/25/2024", "12/25/2024"},
		{"dashes", "Due 01-15-25", "01-15-25"},
		{"iso order", "issued 2024-12-25 by terminal 4", "2024-12-25"},
		{"no date", "no dates here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Date(tt.text)
			if tt.want == "" {
				assert.Nil(t, got.Value)
				return
			}
			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, *got.Value)
			assert.Equal(t, 0.8, got.Confidence)
		})
	}
}

func TestTime(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"am pm", "Time: 3:45 PM", "3:45 PM"},
		{"with seconds", "stamp 14:23:05 end", "14:23:05"},
		{"bare", "at 09:30 sharp", "09:30"},
		{"no time", "never", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Time(tt.text)
			if tt.want == "" {
				assert.Nil(t, got.Value)
				return
			}
			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, *got.Value)
		})
	}
}

func TestAmountMatchers(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name    string
		matcher func(string) entity.FieldResult
		text    string
		want    string
	}{
		{"labeled total", e.TotalAmount, "Total: $45.99", "45.99"},
		{"thousands separator stripped", e.TotalAmount, "Amount $1,234.56", "1234.56"},
		{"bare dollar amount", e.TotalAmount, "pay $12.00 now", "12.00"},
		{"total miss", e.TotalAmount, "nothing to pay", ""},
		{"subtotal", e.Subtotal, "Subtotal: $40.00", "40.00"},
		{"sub-total variant", e.Subtotal, "Sub-Total $18.50", "18.50"},
		{"subtotal miss", e.Subtotal, "Total: $40.00 only", ""},
		{"tax", e.TaxAmount, "Tax: $3.20", "3.20"},
		{"gst", e.TaxAmount, "GST 1.05", "1.05"},
		{"tip", e.TipAmount, "Gratuity: $5.00", "5.00"},
		{"tip miss", e.TipAmount, "Total $20.00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.matcher(tt.text)
			if tt.want == "" {
				assert.Nil(t, got.Value)
				assert.Zero(t, got.Confidence)
				return
			}
			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, *got.Value)
			assert.Greater(t, got.Confidence, 0.0)
		})
	}
}

func TestReceiptNumber(t *testing.T) {
	e := NewExtractor()

	got := e.ReceiptNumber("Receipt #R-12345\nThank you")
	require.NotNil(t, got.Value)
	assert.Equal(t, "R-12345", *got.Value)
	assert.Equal(t, 0.8, got.Confidence)

	got = e.ReceiptNumber("Transaction ID: TX99081")
	require.NotNil(t, got.Value)
	assert.Equal(t, "TX99081", *got.Value)
}

func TestCashierName(t *testing.T) {
	e := NewExtractor()

	got := e.CashierName("Cashier: John")
	require.NotNil(t, got.Value)
	assert.Equal(t, "John", *got.Value)
	assert.Equal(t, 0.7, got.Confidence)

	got = e.CashierName("no staff mentioned")
	assert.Nil(t, got.Value)
}

func TestPaymentMethod(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"visa maps to credit", "Paid by VISA ****1234", "credit"},
		{"interac maps to debit", "INTERAC approved", "debit"},
		{"cash outranks credit", "cash back on credit promo", "cash"},
		{"cheque spelling", "paid by cheque", "check"},
		{"no method", "thank you", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.PaymentMethod(tt.text)
			if tt.want == "" {
				assert.Nil(t, got.Value)
				return
			}
			require.NotNil(t, got.Value)
			assert.Equal(t, tt.want, *got.Value)
			assert.Equal(t, 0.9, got.Confidence)
		})
	}
}

func TestLocation(t *testing.T) {
	e := NewExtractor()

	got := e.Location("BLUE DOOR CAFE\n123 Main Street\nSpringfield")
	require.NotNil(t, got.Value)
	assert.Equal(t, "123 Main Street", *got.Value)
	assert.Equal(t, 0.8, got.Confidence)

	got = e.Location("no address lines\nat all")
	assert.Nil(t, got.Value)
}

func TestVendorName(t *testing.T) {
	e := NewExtractor()

	got := e.VendorName("Acme Supply Co\n123 Main St\nInvoice #100")
	require.NotNil(t, got.Value)
	assert.Equal(t, "Acme Supply Co", *got.Value)
	assert.Equal(t, 0.7, got.Confidence)

	// lines with digits are rejected; nothing qualifies in the first 5 lines
	got = e.VendorName("4711\n12/25/2024\n$5.00\nok\nno")
	assert.Nil(t, got.Value)
}

func TestMerchantName(t *testing.T) {
	e := NewExtractor()

	// all-caps line corroborated by an address on the next line
	got := e.MerchantName("BLUE DOOR CAFE\n123 Main Street\nSpringfield, IL 62704")
	require.NotNil(t, got.Value)
	assert.Equal(t, "BLUE DOOR CAFE", *got.Value)
	assert.Equal(t, 0.8, got.Confidence)

	// no corroborated caps line: falls back to the vendor heuristic
	got = e.MerchantName("Corner Bakery\nreceipt follows")
	require.NotNil(t, got.Value)
	assert.Equal(t, "Corner Bakery", *got.Value)
	assert.Equal(t, 0.7, got.Confidence)
}

func TestLineItems(t *testing.T) {
	e := NewExtractor()

	items, conf := e.LineItems("Widget assembly $19.99\nMounting kit $4.50\nshort $1\nno price line")
	require.Len(t, items, 2)
	assert.Equal(t, 0.7, conf)
	assert.Equal(t, entity.LineItem{ItemName: "Widget assembly", Quantity: 1, UnitPrice: 19.99, TotalPrice: 19.99}, items[0])
	assert.Equal(t, entity.LineItem{ItemName: "Mounting kit", Quantity: 1, UnitPrice: 4.50, TotalPrice: 4.50}, items[1])

	items, conf = e.LineItems("nothing priced here")
	assert.Nil(t, items)
	assert.Zero(t, conf)
}

func TestDetailedLineItems(t *testing.T) {
	e := NewExtractor()

	items, conf := e.DetailedLineItems("Coffee 2 x $3.50 = $7.00\nMuffin 1 @ $2.25 $2.25")
	require.Len(t, items, 2)
	assert.Equal(t, 0.8, conf)
	assert.Equal(t, entity.LineItem{ItemName: "Coffee", Quantity: 2, UnitPrice: 3.50, TotalPrice: 7.00}, items[0])
	assert.Equal(t, entity.LineItem{ItemName: "Muffin", Quantity: 1, UnitPrice: 2.25, TotalPrice: 2.25}, items[1])

	// no detailed lines: simple matcher fallback at reduced confidence
	items, conf = e.DetailedLineItems("House blend coffee $9.99")
	require.Len(t, items, 1)
	assert.Equal(t, 0.5, conf)
	assert.Equal(t, entity.LineItem{ItemName: "House blend coffee", Quantity: 1, UnitPrice: 9.99, TotalPrice: 9.99}, items[0])

	items, conf = e.DetailedLineItems("nothing here")
	assert.Nil(t, items)
	assert.Zero(t, conf)
}
