// Package extract implements the heuristic field matchers: pure pattern-based
// functions turning raw document text into (value, confidence) pairs. Every
// matcher is total — a miss is a normal (nil, 0.0) result, never an error.
package extract

// Extractor holds the compiled pattern tables. The tables are immutable
// configuration; a single Extractor is safe for concurrent use across
// documents.
type Extractor struct {
	invoiceNumber []capturePattern
	date          []capturePattern
	clock         []capturePattern
	total         []capturePattern
	subtotal      []capturePattern
	tax           []capturePattern
	tip           []capturePattern
	receiptNumber []capturePattern
	cashier       []capturePattern
	location      []capturePattern
	payment       []paymentPattern
}

// NewExtractor builds an Extractor with the default pattern tables.
func NewExtractor() *Extractor {
	return &Extractor{
		invoiceNumber: invoiceNumberLadder,
		date:          dateLadder,
		clock:         timeLadder,
		total:         totalLadder,
		subtotal:      subtotalLadder,
		tax:           taxLadder,
		tip:           tipLadder,
		receiptNumber: receiptNumberLadder,
		cashier:       cashierLadder,
		location:      locationLadder,
		payment:       paymentMethods,
	}
}
