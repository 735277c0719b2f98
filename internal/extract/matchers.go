package extract

import (
	"strings"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// InvoiceNumber finds an invoice identifier.
func (e *Extractor) InvoiceNumber(text string) entity.FieldResult {
	return firstCapture(e.invoiceNumber, text)
}

// Date finds the first date-shaped token (slash or dash, either field order).
func (e *Extractor) Date(text string) entity.FieldResult {
	return firstCapture(e.date, text)
}

// Time finds a transaction time (HH:MM with optional am/pm, or HH:MM:SS).
func (e *Extractor) Time(text string) entity.FieldResult {
	return firstCapture(e.clock, text)
}

// TotalAmount finds the document total.
func (e *Extractor) TotalAmount(text string) entity.FieldResult {
	return firstAmount(e.total, text)
}

// Subtotal finds a labeled subtotal.
func (e *Extractor) Subtotal(text string) entity.FieldResult {
	return firstAmount(e.subtotal, text)
}

// TaxAmount finds a labeled tax/GST/HST amount.
func (e *Extractor) TaxAmount(text string) entity.FieldResult {
	return firstAmount(e.tax, text)
}

// TipAmount finds a labeled tip/gratuity amount.
func (e *Extractor) TipAmount(text string) entity.FieldResult {
	return firstAmount(e.tip, text)
}

// ReceiptNumber finds a receipt/transaction code.
func (e *Extractor) ReceiptNumber(text string) entity.FieldResult {
	return firstCapture(e.receiptNumber, text)
}

// CashierName finds a cashier/server name labeled before or after the token.
func (e *Extractor) CashierName(text string) entity.FieldResult {
	return firstCapture(e.cashier, text)
}

// PaymentMethod scans the method table in priority order; the first keyword
// hit wins.
func (e *Extractor) PaymentMethod(text string) entity.FieldResult {
	lower := strings.ToLower(text)
	for _, p := range e.payment {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return entity.Str(p.method, 0.9)
			}
		}
	}
	return entity.NoMatch()
}

// Location scans line by line for an address-shaped line (street number plus
// a street-type keyword) and returns the matched line.
func (e *Extractor) Location(text string) entity.FieldResult {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if res := firstCapture(e.location, line); res.Value != nil {
			return entity.Str(line, res.Confidence)
		}
	}
	return entity.NoMatch()
}

// VendorName takes the first non-empty line among the first 5 lines that
// contains no digit and is longer than 3 characters.
func (e *Extractor) VendorName(text string) entity.FieldResult {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line != "" && len(line) > 3 && !hasDigit.MatchString(line) {
			return entity.Str(line, 0.7)
		}
	}
	return entity.NoMatch()
}

// MerchantName looks for an all-caps line (no digits) among the first 10
// lines whose following line looks address-like; that corroboration earns
// 0.8. Without one it falls back to the vendor-name heuristic.
func (e *Extractor) MerchantName(text string) entity.FieldResult {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if !isAllCapsName(line) {
			continue
		}
		if i+1 < len(lines) && looksAddressLike(strings.TrimSpace(lines[i+1])) {
			return entity.Str(line, 0.8)
		}
	}
	return e.VendorName(text)
}

func isAllCapsName(line string) bool {
	if len(line) <= 3 || hasDigit.MatchString(line) {
		return false
	}
	if line != strings.ToUpper(line) {
		return false
	}
	// require at least one letter so separator lines don't qualify
	return strings.ContainsFunc(line, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

func looksAddressLike(line string) bool {
	if line == "" {
		return false
	}
	return locationLadder[0].re.MatchString(line) || addressCityStateZip.MatchString(line)
}
