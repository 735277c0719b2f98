// runextract runs the extraction pipeline on a single text file and prints
// the result as JSON. No database involved; handy for tuning matchers.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/tobi-akande/expense-scanner/internal/ingest"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <path-to-text-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	text, err := ingest.PlainTextSource{}.ReadText(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p := pipeline.NewProcessor(logger, nil, nil, nil)

	start := time.Now()
	res, err := p.Process(ctx, text)
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"path", path,
		"document_type", string(res.Classification.DocumentType),
		"fields", len(res.Fields),
		"line_items", len(res.Items),
		"duration_ms", dur.Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
