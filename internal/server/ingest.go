package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/ingest"
)

type IngestionService struct {
	scannerv1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, logger *slog.Logger) *IngestionService {
	return &IngestionService{ingestor: ing, logger: logger}
}

func (s *IngestionService) IngestFile(ctx context.Context, req *scannerv1.IngestFileRequest) (*scannerv1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest finished", "path", path, "document_id", r.DocumentID, "status", r.Status)
	return toPBIngestResult(r), nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *scannerv1.IngestDirectoryRequest) (*scannerv1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, batch, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}

	out := &scannerv1.IngestDirectoryResponse{
		Scanned:   stats.Scanned,
		Matched:   stats.Matched,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
		Results:   make([]*scannerv1.IngestResponse, 0, len(results)),
	}
	if batch != nil {
		out.BatchId = batch.ID.String()
	}
	for _, r := range results {
		out.Results = append(out.Results, toPBIngestResult(r))
	}
	return out, nil
}

func toPBIngestResult(r ingest.IngestionResult) *scannerv1.IngestResponse {
	out := &scannerv1.IngestResponse{
		DocumentId: r.DocumentID,
		SourcePath: r.SourcePath,
		Status:     r.Status,
		Error:      r.Err,
	}
	if !r.UploadedAt.IsZero() {
		out.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return out
}
