// Package ingest feeds documents into the processing service from the local
// filesystem: single files, directory walks, zip archives and a watcher.
package ingest

import (
	"context"
	"time"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath string
	DocumentID string
	Status     string
	UploadedAt time.Time
	Err        string
}

// DirStats summarizes a directory or archive ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Ingestor is the behavior the server, queue and CLI depend on.
type Ingestor interface {
	// IngestPath processes a single plain file; archives are rejected.
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	// IngestArchive expands a zip and processes each allowed entry.
	IngestArchive(ctx context.Context, path string) ([]IngestionResult, DirStats, error)
	// IngestDirectory processes all matching files under root, recording
	// the run as a batch.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, *entity.Batch, error)
}
