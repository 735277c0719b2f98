package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
)

// Document represents a scanned document for data transfer between layers.
type Document struct {
	ID             uuid.UUID                `json:"id"`
	Filename       string                   `json:"filename"`
	Status         constants.DocumentStatus `json:"status"`
	DocumentType   *constants.DocumentType  `json:"document_type,omitempty"`
	TypeConfidence *float64                 `json:"type_confidence,omitempty"`
	ErrorMessage   *string                  `json:"error_message,omitempty"`
	UploadedAt     time.Time                `json:"uploaded_at"`
	ProcessedAt    *time.Time               `json:"processed_at,omitempty"`
}

// DocumentHistory is one row of the processing history listing.
type DocumentHistory struct {
	ID              uuid.UUID                `json:"id"`
	Filename        string                   `json:"filename"`
	Status          constants.DocumentStatus `json:"status"`
	UploadedAt      time.Time                `json:"uploaded_at"`
	ExtractionCount int                      `json:"extraction_count"`
	IssueCount      int                      `json:"issue_count"`
}

// Classification is the classifier's verdict for a document.
type Classification struct {
	DocumentType constants.DocumentType `json:"document_type"`
	Confidence   float64                `json:"confidence"`
}
