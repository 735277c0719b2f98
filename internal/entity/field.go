package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldResult is a single matcher outcome: the extracted value (nil when the
// matcher found nothing) and a heuristic confidence in [0,1]. Absence is a
// normal result, never an error.
type FieldResult struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Str builds a FieldResult from a found value.
func Str(value string, confidence float64) FieldResult {
	return FieldResult{Value: &value, Confidence: confidence}
}

// NoMatch is the canonical miss result.
func NoMatch() FieldResult {
	return FieldResult{Value: nil, Confidence: 0.0}
}

// Extraction is a stored field extraction for one document. Immutable once
// written; corrections create a new logical value and keep this row for audit.
type Extraction struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	FieldName  string    `json:"field_name"`
	FieldValue *string   `json:"field_value"`
	Confidence float64   `json:"confidence_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Correction records a reviewer's manual fix of one extraction.
type Correction struct {
	ID             uuid.UUID `json:"id"`
	ExtractionID   uuid.UUID `json:"extraction_id"`
	OriginalValue  *string   `json:"original_value"`
	CorrectedValue string    `json:"corrected_value"`
	CorrectedAt    time.Time `json:"corrected_at"`
}
