package utils

import (
	"time"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBDocument(d *entity.Document) *scannerv1.Document {
	out := &scannerv1.Document{
		Id:           d.ID.String(),
		Filename:     d.Filename,
		Status:       string(d.Status),
		ErrorMessage: strOrEmpty(d.ErrorMessage),
		UploadedAt:   d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.DocumentType != nil {
		out.DocumentType = string(*d.DocumentType)
	}
	if d.TypeConfidence != nil {
		out.TypeConfidence = *d.TypeConfidence
	}
	if d.ProcessedAt != nil {
		out.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ToPBExtraction(e *entity.Extraction) *scannerv1.Extraction {
	return &scannerv1.Extraction{
		Id:              e.ID.String(),
		DocumentId:      e.DocumentID.String(),
		FieldName:       e.FieldName,
		FieldValue:      strOrEmpty(e.FieldValue),
		HasValue:        e.FieldValue != nil,
		ConfidenceScore: e.Confidence,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLineItem(i entity.LineItem) *scannerv1.LineItem {
	return &scannerv1.LineItem{
		ItemName:   i.ItemName,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}

func ToPBReceiptDetails(d *entity.ReceiptDetails) *scannerv1.ReceiptDetails {
	if d == nil {
		return nil
	}
	return &scannerv1.ReceiptDetails{
		DocumentId:      d.DocumentID.String(),
		MerchantName:    strOrEmpty(d.MerchantName),
		Location:        strOrEmpty(d.Location),
		PaymentMethod:   strOrEmpty(d.PaymentMethod),
		TipAmount:       strOrEmpty(d.TipAmount),
		Subtotal:        strOrEmpty(d.Subtotal),
		TaxAmount:       strOrEmpty(d.TaxAmount),
		TotalAmount:     strOrEmpty(d.TotalAmount),
		CashierName:     strOrEmpty(d.CashierName),
		TransactionTime: strOrEmpty(d.TransactionTime),
		Category:        strOrEmpty(d.Category),
	}
}

func ToPBValidationIssue(i *entity.ValidationIssue) *scannerv1.ValidationIssue {
	return &scannerv1.ValidationIssue{
		Id:           i.ID.String(),
		DocumentId:   i.DocumentID.String(),
		IssueType:    string(i.IssueType),
		Severity:     string(i.Severity),
		Description:  i.Description,
		Acknowledged: i.Acknowledged,
		CreatedAt:    i.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBValidationSummary(s entity.ValidationSummary) *scannerv1.ValidationSummary {
	byType := make(map[string]uint32, len(s.IssuesByType))
	for k, v := range s.IssuesByType {
		byType[k] = uint32(v)
	}
	return &scannerv1.ValidationSummary{
		TotalIssues:    uint32(s.TotalIssues),
		Errors:         uint32(s.Errors),
		Warnings:       uint32(s.Warnings),
		Info:           uint32(s.Info),
		Unacknowledged: uint32(s.Unacknowledged),
		IssuesByType:   byType,
	}
}

func ToPBCorrection(c *entity.Correction) *scannerv1.Correction {
	return &scannerv1.Correction{
		Id:             c.ID.String(),
		ExtractionId:   c.ExtractionID.String(),
		OriginalValue:  strOrEmpty(c.OriginalValue),
		CorrectedValue: c.CorrectedValue,
		CorrectedAt:    c.CorrectedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBHistoryEntry(h *entity.DocumentHistory) *scannerv1.HistoryEntry {
	return &scannerv1.HistoryEntry{
		DocumentId:      h.ID.String(),
		Filename:        h.Filename,
		Status:          string(h.Status),
		UploadedAt:      h.UploadedAt.UTC().Format(time.RFC3339),
		ExtractionCount: uint32(h.ExtractionCount),
		IssueCount:      uint32(h.IssueCount),
	}
}
