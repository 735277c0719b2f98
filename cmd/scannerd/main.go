package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/async"
	"github.com/tobi-akande/expense-scanner/internal/categorize"
	"github.com/tobi-akande/expense-scanner/internal/classify"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/documents"
	"github.com/tobi-akande/expense-scanner/internal/export"
	"github.com/tobi-akande/expense-scanner/internal/extract"
	"github.com/tobi-akande/expense-scanner/internal/ingest"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
	repo "github.com/tobi-akande/expense-scanner/internal/repository"
	svc "github.com/tobi-akande/expense-scanner/internal/server"
	"github.com/tobi-akande/expense-scanner/internal/validate"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.InitDatabase(ctx, cfg.Database, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	// Ping DB to ensure connectivity
	if db.Pool != nil {
		if err := repo.HealthCheck(ctx, db.Pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsRepo := repo.NewDocumentRepository(db.Client, logger)
	extractionsRepo := repo.NewExtractionRepository(db.Client, logger)
	receiptsRepo := repo.NewReceiptRepository(db.Client, logger)
	issuesRepo := repo.NewIssueRepository(db.Client, logger)
	batchesRepo := repo.NewBatchRepository(db.Client, logger)

	processor := pipeline.NewProcessor(logger, classify.NewClassifier(), extract.NewExtractor(), categorize.NewCategorizer())
	engine := validate.NewEngine(logger, validate.WithLowConfidenceThreshold(cfg.Pipeline.LowConfidenceThreshold))
	docSvc := documents.NewService(logger, processor, engine, documentsRepo, extractionsRepo, receiptsRepo, issuesRepo)
	exportSvc := export.NewService(documentsRepo, extractionsRepo, issuesRepo, logger)
	ingestor := ingest.NewFSIngestor(logger, docSvc, batchesRepo, ingest.PlainTextSource{})

	scannerv1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(docSvc, logger))
	scannerv1.RegisterValidationServiceServer(grpcServer, svc.NewValidationService(docSvc, logger))
	scannerv1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, logger))
	scannerv1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exportSvc, logger))

	queue := async.NewIngestQueue(ingestor, logger,
		async.WithQueueSize(512),
		async.WithProcessTimeout(time.Minute),
	)

	// Watch mode: feed filesystem events into the same queue the RPCs use.
	if len(cfg.Ingest.WatchDirs) > 0 {
		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchDirs,
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "dirs", cfg.Ingest.WatchDirs, "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case path, ok := <-paths:
					if !ok {
						return
					}
					_ = queue.Enqueue(ctx, async.Job{
						Path:        path,
						SubmittedAt: time.Now(),
						TraceID:     uuid.NewString(),
					})
				case werr, ok := <-watchErrs:
					if !ok {
						return
					}
					logger.Warn("watcher error", "error", werr)
				}
			}
		}()
		logger.Info("watching directories", "dirs", cfg.Ingest.WatchDirs)
	}

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("expense-scanner listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
