// Package pipeline coordinates classification, branch dispatch and field
// assembly for a single document's text.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/categorize"
	"github.com/tobi-akande/expense-scanner/internal/classify"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/extract"
)

// Processor runs classify then the matcher set for the chosen branch.
type Processor struct {
	logger      *slog.Logger
	classifier  *classify.Classifier
	extractor   *extract.Extractor
	categorizer *categorize.Categorizer
}

func NewProcessor(logger *slog.Logger, classifier *classify.Classifier, extractor *extract.Extractor, categorizer *categorize.Categorizer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = classify.NewClassifier()
	}
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	if categorizer == nil {
		categorizer = categorize.NewCategorizer()
	}
	return &Processor{
		logger:      logger,
		classifier:  classifier,
		extractor:   extractor,
		categorizer: categorizer,
	}
}

// Process classifies text and runs the branch's matchers. Matcher misses are
// absorbed as nil results; the only failure is empty/whitespace text.
func (p *Processor) Process(ctx context.Context, text string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyDocument
	}

	cls := p.classifier.Classify(text)
	p.logger.Debug("document classified",
		"document_type", string(cls.DocumentType),
		"confidence", cls.Confidence,
	)

	var res *Result
	switch cls.DocumentType {
	case constants.DocTypeReceipt:
		res = p.extractReceipt(text, cls)
	default:
		res = p.extractInvoice(text, cls)
	}

	// classification pseudo-field, attached last
	res.Fields[FieldDocumentType] = entity.Str(string(cls.DocumentType), cls.Confidence)

	p.logger.Debug("extraction assembled",
		"document_type", string(cls.DocumentType),
		"fields", len(res.Fields),
		"line_items", len(res.Items),
	)
	return res, nil
}

func (p *Processor) extractInvoice(text string, cls entity.Classification) *Result {
	fields := make(map[string]entity.FieldResult, len(InvoiceFields)+1)

	fields[FieldInvoiceNumber] = p.extractor.InvoiceNumber(text)
	fields[FieldDate] = p.extractor.Date(text)
	fields[FieldVendor] = p.extractor.VendorName(text)
	fields[FieldTotal] = p.extractor.TotalAmount(text)
	fields[FieldTax] = p.extractor.TaxAmount(text)

	items, itemsConf := p.extractor.LineItems(text)
	fields[FieldLineItems] = lineItemsField(items, itemsConf)

	return &Result{Classification: cls, Fields: fields, Items: items}
}

func (p *Processor) extractReceipt(text string, cls entity.Classification) *Result {
	fields := make(map[string]entity.FieldResult, len(ReceiptFields)+1)

	fields[FieldMerchantName] = p.extractor.MerchantName(text)
	fields[FieldLocation] = p.extractor.Location(text)
	fields[FieldReceiptNumber] = p.extractor.ReceiptNumber(text)
	fields[FieldPaymentMethod] = p.extractor.PaymentMethod(text)
	fields[FieldDate] = p.extractor.Date(text)
	fields[FieldTime] = p.extractor.Time(text)
	fields[FieldSubtotal] = p.extractor.Subtotal(text)
	fields[FieldTax] = p.extractor.TaxAmount(text)
	fields[FieldTip] = p.extractor.TipAmount(text)
	fields[FieldTotal] = p.extractor.TotalAmount(text)
	fields[FieldCashierName] = p.extractor.CashierName(text)

	items, itemsConf := p.extractor.DetailedLineItems(text)
	fields[FieldLineItems] = lineItemsField(items, itemsConf)

	merchant := ""
	if v := fields[FieldMerchantName].Value; v != nil {
		merchant = *v
	}
	category, catConf := p.categorizer.Categorize(merchant, text)
	fields[FieldCategory] = entity.Str(string(category), catConf)

	details := &entity.ReceiptDetails{
		MerchantName:    fields[FieldMerchantName].Value,
		Location:        fields[FieldLocation].Value,
		PaymentMethod:   fields[FieldPaymentMethod].Value,
		TipAmount:       fields[FieldTip].Value,
		Subtotal:        fields[FieldSubtotal].Value,
		TaxAmount:       fields[FieldTax].Value,
		TotalAmount:     fields[FieldTotal].Value,
		CashierName:     fields[FieldCashierName].Value,
		TransactionTime: fields[FieldTime].Value,
		Category:        fields[FieldCategory].Value,
	}

	return &Result{Classification: cls, Fields: fields, Items: items, Details: details}
}

// lineItemsField summarizes the item list into the field mapping so the
// line_items key is always present for its branch.
func lineItemsField(items []entity.LineItem, conf float64) entity.FieldResult {
	if len(items) == 0 {
		return entity.NoMatch()
	}
	return entity.Str(fmt.Sprintf("%d items", len(items)), conf)
}
