package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/ingest"
)

type recordingIngestor struct {
	mu       sync.Mutex
	paths    []string
	archives []string
}

func (r *recordingIngestor) IngestPath(_ context.Context, path string) (ingest.IngestionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return ingest.IngestionResult{SourcePath: path, Status: "COMPLETED"}, nil
}

func (r *recordingIngestor) IngestArchive(_ context.Context, path string) ([]ingest.IngestionResult, ingest.DirStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archives = append(r.archives, path)
	return nil, ingest.DirStats{}, nil
}

func (r *recordingIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.IngestionResult, ingest.DirStats, *entity.Batch, error) {
	return nil, ingest.DirStats{}, nil, nil
}

func (r *recordingIngestor) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *recordingIngestor) seenArchives() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.archives...)
}

func TestQueueProcessesInSubmissionOrder(t *testing.T) {
	ing := &recordingIngestor{}
	q := NewIngestQueue(ing, nil)

	ctx := context.Background()
	for _, path := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, q.Enqueue(ctx, Job{Path: path, SubmittedAt: time.Now()}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	// single worker drains in order
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, ing.seen())
}

func TestQueueRoutesArchivesToArchiveIngest(t *testing.T) {
	ing := &recordingIngestor{}
	q := NewIngestQueue(ing, nil)

	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, Job{Path: "drop/batch.zip", SubmittedAt: time.Now()}))
	require.NoError(t, q.Enqueue(ctx, Job{Path: "drop/receipt.txt", SubmittedAt: time.Now()}))

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	// a watched zip must never reach the single-file path
	assert.Equal(t, []string{"drop/batch.zip"}, ing.seenArchives())
	assert.Equal(t, []string{"drop/receipt.txt"}, ing.seen())
}

func TestQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	ing := &recordingIngestor{}
	q := NewIngestQueue(ing, nil)

	ctx := context.Background()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(ctx, Job{Path: "late.txt"}))
	assert.Empty(t, ing.seen())
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewIngestQueue(&recordingIngestor{}, nil)

	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
