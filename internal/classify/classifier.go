// Package classify assigns a document to invoice or receipt by keyword
// dominance over the raw text.
package classify

import (
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// Keyword tables. Matching is substring containment over the lower-cased
// text ("total" inside "subtotal" counts), not tokenized.
var (
	receiptKeywords = []string{
		"receipt",
		"cash",
		"change",
		"register",
		"cashier",
		"store",
		"thank you",
		"card",
		"approved",
		"merchant",
		"terminal",
		"subtotal",
		"tender",
	}

	invoiceKeywords = []string{
		"invoice",
		"bill to",
		"due date",
		"payment terms",
		"po number",
		"net 30",
		"remit",
		"account number",
		"balance due",
		"terms",
	}
)

// Classifier scores text against the two keyword tables. The tables are
// immutable configuration; a single Classifier is safe for concurrent use.
type Classifier struct {
	receipt []string
	invoice []string
}

func NewClassifier() *Classifier {
	return &Classifier{receipt: receiptKeywords, invoice: invoiceKeywords}
}

// Classify picks the dominant class. Receipt wins only on a strictly greater
// keyword count; an exact tie defaults to invoice at confidence 0.5. The
// winning confidence is max(count/table_size, 0.5).
func (c *Classifier) Classify(text string) entity.Classification {
	lower := strings.ToLower(text)

	receiptCount := countPresent(c.receipt, lower)
	invoiceCount := countPresent(c.invoice, lower)

	if receiptCount > invoiceCount {
		return entity.Classification{
			DocumentType: constants.DocTypeReceipt,
			Confidence:   confidence(receiptCount, len(c.receipt)),
		}
	}
	return entity.Classification{
		DocumentType: constants.DocTypeInvoice,
		Confidence:   confidence(invoiceCount, len(c.invoice)),
	}
}

func countPresent(keywords []string, lower string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func confidence(count, tableSize int) float64 {
	conf := float64(count) / float64(tableSize)
	if conf < 0.5 {
		return 0.5
	}
	return conf
}
