package utils

import (
	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

func ToDocument(e *ent.Document) *entity.Document {
	doc := &entity.Document{
		ID:           e.ID,
		Filename:     e.Filename,
		Status:       constants.DocumentStatus(e.Status),
		ErrorMessage: e.ErrorMessage,
		UploadedAt:   e.UploadedAt,
		ProcessedAt:  e.ProcessedAt,
	}
	if e.DocumentType != nil {
		dt := constants.DocumentType(*e.DocumentType)
		doc.DocumentType = &dt
	}
	doc.TypeConfidence = e.TypeConfidence
	return doc
}

func ToExtraction(e *ent.Extraction) *entity.Extraction {
	return &entity.Extraction{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		FieldName:  e.FieldName,
		FieldValue: e.FieldValue,
		Confidence: e.ConfidenceScore,
		CreatedAt:  e.CreatedAt,
	}
}

func ToCorrection(e *ent.Correction) *entity.Correction {
	return &entity.Correction{
		ID:             e.ID,
		ExtractionID:   e.ExtractionID,
		OriginalValue:  e.OriginalValue,
		CorrectedValue: e.CorrectedValue,
		CorrectedAt:    e.CorrectedAt,
	}
}

func ToLineItem(e *ent.ReceiptItem) entity.LineItem {
	return entity.LineItem{
		ItemName:   e.ItemName,
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice,
		TotalPrice: e.TotalPrice,
	}
}

func ToReceiptDetails(e *ent.ReceiptDetail) *entity.ReceiptDetails {
	return &entity.ReceiptDetails{
		DocumentID:      e.DocumentID,
		MerchantName:    e.MerchantName,
		Location:        e.Location,
		PaymentMethod:   e.PaymentMethod,
		TipAmount:       e.TipAmount,
		Subtotal:        e.Subtotal,
		TaxAmount:       e.TaxAmount,
		TotalAmount:     e.TotalAmount,
		CashierName:     e.CashierName,
		TransactionTime: e.TransactionTime,
		Category:        e.Category,
	}
}

func ToValidationIssue(e *ent.ValidationIssue) *entity.ValidationIssue {
	return &entity.ValidationIssue{
		ID:           e.ID,
		DocumentID:   e.DocumentID,
		IssueType:    constants.IssueType(e.IssueType),
		Severity:     constants.Severity(e.Severity),
		Description:  e.Description,
		Acknowledged: e.Acknowledged,
		CreatedAt:    e.CreatedAt,
	}
}

func ToBatch(e *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:         e.ID,
		SourcePath: e.SourcePath,
		Status:     constants.BatchStatus(e.Status),
		Total:      e.Total,
		Succeeded:  e.Succeeded,
		Failed:     e.Failed,
		StartedAt:  e.StartedAt,
		FinishedAt: e.FinishedAt,
	}
}
