package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/export"
)

type ExportService struct {
	scannerv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportDocument(ctx context.Context, req *scannerv1.ExportDocumentRequest) (*scannerv1.ExportDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	var data []byte
	var ext string
	switch req.GetFormat() {
	case scannerv1.ExportFormat_EXPORT_FORMAT_CSV:
		data, err = s.svc.ExportDocumentCSV(ctx, documentID)
		ext = "csv"
	case scannerv1.ExportFormat_EXPORT_FORMAT_XLSX, scannerv1.ExportFormat_EXPORT_FORMAT_UNSPECIFIED:
		data, err = s.svc.ExportDocumentXLSX(ctx, documentID)
		ext = "xlsx"
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown export format")
	}
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("export failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("export: %v", err)
	}

	return &scannerv1.ExportDocumentResponse{
		Data:     data,
		Filename: fmt.Sprintf("document-%s.%s", documentID, ext),
	}, nil
}
