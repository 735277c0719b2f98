package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	scannerv1 "github.com/tobi-akande/expense-scanner/gen/proto/scanner/v1"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/documents"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type ValidationService struct {
	scannerv1.UnimplementedValidationServiceServer
	svc    *documents.Service
	logger *slog.Logger
}

func NewValidationService(svc *documents.Service, logger *slog.Logger) *ValidationService {
	return &ValidationService{svc: svc, logger: logger}
}

func (s *ValidationService) ValidateDocument(ctx context.Context, req *scannerv1.ValidateDocumentRequest) (*scannerv1.ValidateDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	s.logger.Info("validating document", "document_id", documentID)
	issues, err := s.svc.Validate(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("validation failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("validate: %v", err)
	}

	out := &scannerv1.ValidateDocumentResponse{Issues: make([]*scannerv1.ValidationIssue, 0, len(issues))}
	for _, issue := range issues {
		out.Issues = append(out.Issues, utils.ToPBValidationIssue(issue))
	}
	return out, nil
}

func (s *ValidationService) GetValidationSummary(ctx context.Context, req *scannerv1.GetValidationSummaryRequest) (*scannerv1.GetValidationSummaryResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	summary, err := s.svc.Summary(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("failed to build summary", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("summary: %v", err)
	}
	return &scannerv1.GetValidationSummaryResponse{Summary: utils.ToPBValidationSummary(summary)}, nil
}

func (s *ValidationService) AcknowledgeIssue(ctx context.Context, req *scannerv1.AcknowledgeIssueRequest) (*scannerv1.AcknowledgeIssueResponse, error) {
	raw := strings.TrimSpace(req.GetIssueId())
	if raw == "" {
		return nil, common.InvalidArgumentError("issue_id is required")
	}
	issueID, err := uuid.Parse(raw)
	if err != nil {
		return nil, common.InvalidArgumentError("issue_id must be a UUID")
	}

	issue, err := s.svc.AcknowledgeIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("issue not found")
		}
		s.logger.Error("failed to acknowledge issue", "issue_id", issueID, "error", err)
		return nil, common.InternalErrorf("acknowledge: %v", err)
	}
	return &scannerv1.AcknowledgeIssueResponse{Issue: utils.ToPBValidationIssue(issue)}, nil
}
