package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/documents"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/repository"
)

// FSIngestor reads from the local filesystem and feeds the document service.
type FSIngestor struct {
	logger  *slog.Logger
	svc     *documents.Service
	batches repository.BatchRepository
	source  TextSource
}

func NewFSIngestor(logger *slog.Logger, svc *documents.Service, batches repository.BatchRepository, source TextSource) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	if source == nil {
		source = PlainTextSource{}
	}
	return &FSIngestor{
		logger:  logger,
		svc:     svc,
		batches: batches,
		source:  source,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.logger.Error("abs path failed", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if IsArchive(abs) {
		return out, fmt.Errorf("archive %s must go through IngestArchive", abs)
	}
	if !AllowedExt(ext) {
		i.logger.Warn("unsupported or missing extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	text, err := i.source.ReadText(abs)
	if err != nil {
		return out, err
	}

	doc, err := i.svc.UploadText(ctx, filepath.Base(abs), text)
	if err != nil && doc == nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath: abs,
		DocumentID: doc.ID.String(),
		Status:     string(doc.Status),
		UploadedAt: doc.UploadedAt,
	}
	if doc.Status == constants.DocStatusFailed && doc.ErrorMessage != nil {
		out.Err = *doc.ErrorMessage
	}
	i.logger.Info("ingested file",
		"path", abs,
		"document_id", out.DocumentID,
		"status", out.Status,
		"batch_id", common.BatchIDFromContext(ctx),
	)
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each matching file. The whole run is recorded as one batch;
// a single bad file never aborts the walk.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, *entity.Batch, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, nil, errors.New("root_path is required")
	}

	batch, err := i.batches.Start(ctx, root)
	if err != nil {
		return nil, DirStats{}, nil, err
	}
	// per-file logs below carry the owning batch
	ctx = common.WithBatchID(ctx, batch.ID.String())

	var results []IngestionResult
	var stats DirStats

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if IsArchive(path) {
			archiveResults, archiveStats := i.ingestArchiveContents(ctx, path)
			results = append(results, archiveResults...)
			stats.Matched += archiveStats.Matched
			stats.Succeeded += archiveStats.Succeeded
			stats.Failed += archiveStats.Failed
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		if r.Err != "" {
			stats.Failed++
		} else {
			stats.Succeeded++
		}
		return nil
	})

	finished, err := i.batches.Finish(ctx, batch.ID, int(stats.Matched), int(stats.Succeeded), int(stats.Failed))
	if err != nil {
		return results, stats, batch, err
	}
	if walkErr != nil {
		return results, stats, finished, fmt.Errorf("walk: %w", walkErr)
	}

	i.logger.Info("directory ingest complete",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return results, stats, finished, nil
}
