package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
)

// Batch is one sequential fan-out over the per-document pipeline.
type Batch struct {
	ID         uuid.UUID             `json:"id"`
	SourcePath string                `json:"source_path"`
	Status     constants.BatchStatus `json:"status"`
	Total      int                   `json:"total"`
	Succeeded  int                   `json:"succeeded"`
	Failed     int                   `json:"failed"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt *time.Time            `json:"finished_at,omitempty"`
}
