package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
)

// TextSource turns a file path into the raw text the pipeline consumes.
// Swappable so an OCR-backed source can replace the plain reader without
// touching the ingestor.
type TextSource interface {
	ReadText(path string) (string, error)
}

// PlainTextSource reads pre-extracted text files directly. PDF and image
// inputs need an OCR-backed source and are rejected here.
type PlainTextSource struct{}

func (PlainTextSource) ReadText(path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	if format != constants.TXT {
		return "", fmt.Errorf("%w: %s requires an OCR-backed source", common.ErrUnsupportedFormat, format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// AllowedExt checks if a file extension is in the allowed ingest set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsArchive reports whether the path carries a zip extension. Archive paths
// go through IngestArchive, never IngestPath.
func IsArchive(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	return constants.MapExtToFormat(ext) == constants.ZIP
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 0 && base[0] == '.'
}
