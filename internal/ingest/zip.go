package ingest

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IngestArchive expands a zip into a temp directory and ingests each allowed
// entry. Nested archives are not descended into.
func (i *FSIngestor) IngestArchive(ctx context.Context, path string) ([]IngestionResult, DirStats, error) {
	if !IsArchive(path) {
		return nil, DirStats{}, fmt.Errorf("not a zip archive: %s", path)
	}
	results, stats := i.ingestArchiveContents(ctx, path)
	return results, stats, nil
}

func (i *FSIngestor) ingestArchiveContents(ctx context.Context, path string) ([]IngestionResult, DirStats) {
	var results []IngestionResult
	var stats DirStats

	reader, err := zip.OpenReader(path)
	if err != nil {
		i.logger.Error("failed to open archive", "path", path, "error", err)
		return []IngestionResult{{SourcePath: path, Err: err.Error()}}, DirStats{Failed: 1}
	}
	defer reader.Close()

	tmpDir, err := os.MkdirTemp("", "expense-scanner-zip-*")
	if err != nil {
		return []IngestionResult{{SourcePath: path, Err: err.Error()}}, DirStats{Failed: 1}
	}
	defer os.RemoveAll(tmpDir)

	for _, entry := range reader.File {
		stats.Scanned++
		if entry.FileInfo().IsDir() {
			continue
		}
		if IsHidden(entry.Name) {
			continue
		}
		if !AllowedExt(filepath.Ext(entry.Name)) {
			continue
		}
		stats.Matched++

		extracted, err := extractEntry(entry, tmpDir)
		if err != nil {
			i.logger.Warn("failed to extract archive entry", "archive", path, "entry", entry.Name, "error", err)
			results = append(results, IngestionResult{SourcePath: entry.Name, Err: err.Error()})
			stats.Failed++
			continue
		}

		r, err := i.IngestPath(ctx, extracted)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: entry.Name, Err: err.Error()})
			stats.Failed++
			continue
		}
		r.SourcePath = filepath.Join(path, entry.Name)
		results = append(results, r)
		if r.Err != "" {
			stats.Failed++
		} else {
			stats.Succeeded++
		}
	}

	return results, stats
}

// extractEntry writes one archive entry under dir, guarding against path
// traversal in entry names.
func extractEntry(entry *zip.File, dir string) (string, error) {
	name := filepath.Base(filepath.Clean(entry.Name))
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid entry name: %q", entry.Name)
	}
	dest := filepath.Join(dir, name)

	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", err
	}
	return dest, nil
}
