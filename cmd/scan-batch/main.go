// scan-batch ingests a directory of documents in one shot and optionally
// writes an export workbook per processed document. Useful for backfills
// and for running the pipeline without the daemon.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tobi-akande/expense-scanner/internal/categorize"
	"github.com/tobi-akande/expense-scanner/internal/classify"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/documents"
	"github.com/tobi-akande/expense-scanner/internal/export"
	"github.com/tobi-akande/expense-scanner/internal/extract"
	"github.com/tobi-akande/expense-scanner/internal/ingest"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
	repo "github.com/tobi-akande/expense-scanner/internal/repository"
	"github.com/tobi-akande/expense-scanner/internal/validate"
)

func main() {
	var (
		dir        string
		outDir     string
		format     string
		inmem      bool
		skipHidden bool
	)

	cmd := &cobra.Command{
		Use:          "scan-batch",
		Short:        "Ingest a directory of receipts and invoices",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			validator := common.NewValidator()
			validator.Field("format", format, common.OneOf("xlsx", "csv"))
			if err := validator.Error(); err != nil {
				return err
			}
			return run(cmd.Context(), dir, outDir, format, inmem, skipHidden)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to ingest (required)")
	cmd.Flags().StringVar(&outDir, "out", "", "write one export file per processed document into this directory")
	cmd.Flags().StringVar(&format, "format", "xlsx", "export format: xlsx or csv")
	cmd.Flags().BoolVar(&inmem, "inmem", false, "use an in-memory database instead of the configured one")
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", true, "skip hidden files and directories")
	_ = cmd.MarkFlagRequired("dir")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, outDir, format string, inmem, skipHidden bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if !inmem {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	db, err := repo.InitDatabase(ctx, cfg.Database, inmem, logger)
	if err != nil {
		return common.WrapError(err, "open database")
	}
	defer db.Cleanup()

	documentsRepo := repo.NewDocumentRepository(db.Client, logger)
	extractionsRepo := repo.NewExtractionRepository(db.Client, logger)
	receiptsRepo := repo.NewReceiptRepository(db.Client, logger)
	issuesRepo := repo.NewIssueRepository(db.Client, logger)
	batchesRepo := repo.NewBatchRepository(db.Client, logger)

	processor := pipeline.NewProcessor(logger, classify.NewClassifier(), extract.NewExtractor(), categorize.NewCategorizer())
	engine := validate.NewEngine(logger, validate.WithLowConfidenceThreshold(cfg.Pipeline.LowConfidenceThreshold))
	docSvc := documents.NewService(logger, processor, engine, documentsRepo, extractionsRepo, receiptsRepo, issuesRepo)
	ingestor := ingest.NewFSIngestor(logger, docSvc, batchesRepo, ingest.PlainTextSource{})

	results, stats, batch, err := ingestor.IngestDirectory(ctx, dir, skipHidden)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", dir, err)
	}
	if batch != nil {
		fmt.Printf("batch %s: scanned=%d matched=%d succeeded=%d failed=%d\n",
			batch.ID, stats.Scanned, stats.Matched, stats.Succeeded, stats.Failed)
	}
	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("  FAILED %s: %s\n", r.SourcePath, r.Err)
			continue
		}
		fmt.Printf("  %s %s -> %s\n", r.Status, r.SourcePath, r.DocumentID)
	}

	if outDir == "" {
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	exportSvc := export.NewService(documentsRepo, extractionsRepo, issuesRepo, logger)
	for _, r := range results {
		if r.DocumentID == "" || r.Err != "" {
			continue
		}
		id, err := uuid.Parse(r.DocumentID)
		if err != nil {
			continue
		}
		var data []byte
		if format == "csv" {
			data, err = exportSvc.ExportDocumentCSV(ctx, id)
		} else {
			data, err = exportSvc.ExportDocumentXLSX(ctx, id)
		}
		if err != nil {
			logger.Error("export failed", "document_id", r.DocumentID, "error", err)
			continue
		}
		path := filepath.Join(outDir, fmt.Sprintf("document-%s.%s", r.DocumentID, format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("  exported %s\n", path)
	}
	return nil
}
