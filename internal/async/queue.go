package async

import (
	"context"
	"time"
)

// Job is the smallest useful unit: one file path to run through the
// pipeline. Extend as needed later (trace, retry, priority).
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
