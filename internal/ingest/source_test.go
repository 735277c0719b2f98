package ingest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/internal/common"
)

func TestPlainTextSourceReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Total: $5.00\n"), 0o644))

	text, err := PlainTextSource{}.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "Total: $5.00\n", text)
}

func TestPlainTextSourceRejectsNonText(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"pdf needs ocr", "scan.pdf"},
		{"image needs ocr", "photo.JPG"},
		{"unknown extension", "notes.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlainTextSource{}.ReadText(filepath.Join(t.TempDir(), tt.file))
			assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
		})
	}
}

func TestPlainTextSourceMissingFile(t *testing.T) {
	_, err := PlainTextSource{}.ReadText(filepath.Join(t.TempDir(), "gone.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".txt"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("jpeg"))
	assert.False(t, AllowedExt(".zip"))
	assert.False(t, AllowedExt(".docx"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".DS_Store"))
	assert.True(t, IsHidden("/scans/.cache"))
	assert.False(t, IsHidden("receipt.txt"))
	assert.False(t, IsHidden("/scans/receipt.txt"))
}

func TestExtractEntryGuardsTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "docs.zip")
	f, err := os.Create(archive)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	entry, err := w.Create("../../escape.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	reader, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer reader.Close()
	require.Len(t, reader.File, 1)

	dir := t.TempDir()
	dest, err := extractEntry(reader.File[0], dir)
	require.NoError(t, err)

	// the traversal prefix is stripped; the file lands inside dir
	assert.Equal(t, filepath.Join(dir, "escape.txt"), dest)
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)
}
