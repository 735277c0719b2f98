// Package server exposes the document pipeline over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/documents"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type DocumentsService struct {
	scannerv1.UnimplementedDocumentsServiceServer
	svc    *documents.Service
	logger *slog.Logger
}

func NewDocumentsService(svc *documents.Service, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{svc: svc, logger: logger}
}

func (s *DocumentsService) UploadDocument(ctx context.Context, req *scannerv1.UploadDocumentRequest) (*scannerv1.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	validator := common.NewValidator()
	validator.Field("filename", filename, common.Required(), common.MaxLen(255))
	if err := validator.Error(); err != nil {
		s.logger.Error("invalid upload request", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	doc, err := s.svc.UploadText(ctx, filename, req.GetText())
	if err != nil && doc == nil {
		s.logger.Error("upload failed", "filename", filename, "error", err)
		return nil, status.Errorf(codes.Internal, "upload: %v", err)
	}
	// a FAILED document is still a stored document; the status carries the outcome
	return &scannerv1.UploadDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) GetResults(ctx context.Context, req *scannerv1.GetResultsRequest) (*scannerv1.GetResultsResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	res, err := s.svc.GetResults(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to load results", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "get results: %v", err)
	}

	out := &scannerv1.GetResultsResponse{
		Document: utils.ToPBDocument(res.Document),
		Details:  utils.ToPBReceiptDetails(res.Details),
	}
	for _, ex := range res.Extractions {
		out.Extractions = append(out.Extractions, utils.ToPBExtraction(ex))
	}
	for _, item := range res.Items {
		out.LineItems = append(out.LineItems, utils.ToPBLineItem(item))
	}
	for _, issue := range res.Issues {
		out.Issues = append(out.Issues, utils.ToPBValidationIssue(issue))
	}
	for _, corr := range res.Corrections {
		out.Corrections = append(out.Corrections, utils.ToPBCorrection(corr))
	}
	return out, nil
}

func (s *DocumentsService) SaveCorrection(ctx context.Context, req *scannerv1.SaveCorrectionRequest) (*scannerv1.SaveCorrectionResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	validator := common.NewValidator()
	validator.Field("extraction_id", strings.TrimSpace(req.GetExtractionId()), common.Required(), common.IsUUID())
	corrected := strings.TrimSpace(req.GetCorrectedValue())
	validator.Field("corrected_value", corrected, common.Required(), common.MaxLen(1000))
	if err := validator.Error(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	extractionID, err := uuid.Parse(strings.TrimSpace(req.GetExtractionId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "extraction_id must be a UUID")
	}

	corr, err := s.svc.SaveCorrection(ctx, documentID, extractionID, corrected)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "extraction not found")
		}
		s.logger.Error("failed to save correction", "extraction_id", extractionID, "error", err)
		return nil, status.Errorf(codes.Internal, "save correction: %v", err)
	}
	return &scannerv1.SaveCorrectionResponse{Correction: utils.ToPBCorrection(corr)}, nil
}

func (s *DocumentsService) GetHistory(ctx context.Context, _ *scannerv1.GetHistoryRequest) (*scannerv1.GetHistoryResponse, error) {
	entries, err := s.svc.History(ctx)
	if err != nil {
		s.logger.Error("failed to load history", "error", err)
		return nil, status.Errorf(codes.Internal, "get history: %v", err)
	}

	out := &scannerv1.GetHistoryResponse{Entries: make([]*scannerv1.HistoryEntry, 0, len(entries))}
	for _, h := range entries {
		out.Entries = append(out.Entries, utils.ToPBHistoryEntry(h))
	}
	return out, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return id, nil
}
