// Package documents orchestrates the per-document lifecycle: persist, run
// the extraction pipeline, store results, validate and roll up.
package documents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
	"github.com/tobi-akande/expense-scanner/internal/repository"
	"github.com/tobi-akande/expense-scanner/internal/validate"
)

// Service wires the pipeline, validation engine and repositories together.
type Service struct {
	logger      *slog.Logger
	processor   *pipeline.Processor
	engine      *validate.Engine
	documents   repository.DocumentRepository
	extractions repository.ExtractionRepository
	receipts    repository.ReceiptRepository
	issues      repository.IssueRepository

	resultSchema map[string]any
}

func NewService(
	logger *slog.Logger,
	processor *pipeline.Processor,
	engine *validate.Engine,
	documents repository.DocumentRepository,
	extractions repository.ExtractionRepository,
	receipts repository.ReceiptRepository,
	issues repository.IssueRepository,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:       logger,
		processor:    processor,
		engine:       engine,
		documents:    documents,
		extractions:  extractions,
		receipts:     receipts,
		issues:       issues,
		resultSchema: pipeline.BuildResultJSONSchema(constants.DocumentTypes),
	}
}

// Results bundles everything stored for one document. Extractions carry the
// latest corrected values; Corrections is the audit trail behind them.
type Results struct {
	Document    *entity.Document          `json:"document"`
	Extractions []*entity.Extraction      `json:"extractions"`
	Corrections []*entity.Correction      `json:"corrections,omitempty"`
	Items       []entity.LineItem         `json:"line_items,omitempty"`
	Details     *entity.ReceiptDetails    `json:"details,omitempty"`
	Issues      []*entity.ValidationIssue `json:"issues,omitempty"`
}

// UploadText registers a document and runs the full pipeline on its text.
// The document record survives a processing failure with status FAILED.
func (s *Service) UploadText(ctx context.Context, filename, text string) (*entity.Document, error) {
	doc, err := s.documents.Create(ctx, filename)
	if err != nil {
		return nil, err
	}
	if err := s.ProcessText(ctx, doc.ID, text); err != nil {
		return s.documents.Get(ctx, doc.ID)
	}
	return s.documents.Get(ctx, doc.ID)
}

// ProcessText runs extraction + validation for an already-registered document.
func (s *Service) ProcessText(ctx context.Context, documentID uuid.UUID, text string) error {
	if err := s.documents.MarkProcessing(ctx, documentID); err != nil {
		return err
	}

	res, err := s.processor.Process(ctx, text)
	if err != nil {
		s.logger.Warn("pipeline failed", "document_id", documentID, "error", err)
		if ferr := s.documents.MarkFailed(ctx, documentID, err.Error()); ferr != nil {
			return ferr
		}
		return err
	}

	if err := s.checkResult(res); err != nil {
		s.logger.Error("result failed schema check", "document_id", documentID, "error", err)
		if ferr := s.documents.MarkFailed(ctx, documentID, err.Error()); ferr != nil {
			return ferr
		}
		return err
	}

	if err := s.persistResult(ctx, documentID, res); err != nil {
		if ferr := s.documents.MarkFailed(ctx, documentID, err.Error()); ferr != nil {
			return ferr
		}
		return err
	}

	if _, err := s.revalidate(ctx, documentID, res.Fields, res.Items, res.Details); err != nil {
		if ferr := s.documents.MarkFailed(ctx, documentID, err.Error()); ferr != nil {
			return ferr
		}
		return err
	}

	if err := s.documents.MarkCompleted(ctx, documentID, res.Classification.DocumentType, res.Classification.Confidence); err != nil {
		return err
	}
	s.logger.Info("document processed",
		"document_id", documentID,
		"document_type", string(res.Classification.DocumentType),
		"trace_id", common.RequestIDFromContext(ctx),
	)
	return nil
}

// checkResult validates the serialized result against the JSON schema before
// anything reaches the database.
func (s *Service) checkResult(res *pipeline.Result) error {
	data, err := res.JSON()
	if err != nil {
		return fmt.Errorf("serialize result: %w", err)
	}
	return pipeline.ValidateJSONAgainstSchema(s.resultSchema, data)
}

func (s *Service) persistResult(ctx context.Context, documentID uuid.UUID, res *pipeline.Result) error {
	rows := extractionRows(res)
	if _, err := s.extractions.InsertBatch(ctx, documentID, rows); err != nil {
		return err
	}

	if res.Classification.DocumentType == constants.DocTypeReceipt {
		if err := s.receipts.ReplaceItems(ctx, documentID, res.Items); err != nil {
			return err
		}
		if res.Details != nil {
			details := *res.Details
			details.DocumentID = documentID
			if err := s.receipts.UpsertDetails(ctx, &details); err != nil {
				return err
			}
		}
	} else if len(res.Items) > 0 {
		if err := s.receipts.ReplaceItems(ctx, documentID, res.Items); err != nil {
			return err
		}
	}
	return nil
}

// Validate re-runs the rule engine against the stored state and replaces the
// document's issues. Safe to call repeatedly.
func (s *Service) Validate(ctx context.Context, documentID uuid.UUID) ([]*entity.ValidationIssue, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return nil, err
	}

	extractions, err := s.extractions.ListCurrent(ctx, documentID)
	if err != nil {
		return nil, err
	}
	items, err := s.receipts.ListItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	details, err := s.receipts.GetDetails(ctx, documentID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]entity.FieldResult, len(extractions))
	for _, ex := range extractions {
		fields[ex.FieldName] = entity.FieldResult{Value: ex.FieldValue, Confidence: ex.Confidence}
	}
	return s.revalidate(ctx, documentID, fields, items, details)
}

func (s *Service) revalidate(ctx context.Context, documentID uuid.UUID, fields map[string]entity.FieldResult, items []entity.LineItem, details *entity.ReceiptDetails) ([]*entity.ValidationIssue, error) {
	issues := s.engine.Validate(fields, items, details)
	return s.issues.Replace(ctx, documentID, issues)
}

// GetResults loads the stored state for a document with corrections applied.
func (s *Service) GetResults(ctx context.Context, documentID uuid.UUID) (*Results, error) {
	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	extractions, err := s.extractions.ListCurrent(ctx, documentID)
	if err != nil {
		return nil, err
	}
	items, err := s.receipts.ListItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	details, err := s.receipts.GetDetails(ctx, documentID)
	if err != nil {
		return nil, err
	}
	issues, err := s.issues.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// audit trail: original rows plus every correction made against them
	originals, err := s.extractions.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	var corrections []*entity.Correction
	for _, ex := range originals {
		rows, err := s.extractions.ListCorrections(ctx, ex.ID)
		if err != nil {
			return nil, err
		}
		corrections = append(corrections, rows...)
	}

	return &Results{
		Document:    doc,
		Extractions: extractions,
		Corrections: corrections,
		Items:       items,
		Details:     details,
		Issues:      issues,
	}, nil
}

// SaveCorrection records a reviewer's fix for one extraction and re-runs
// validation so downstream issue state stays consistent.
func (s *Service) SaveCorrection(ctx context.Context, documentID, extractionID uuid.UUID, correctedValue string) (*entity.Correction, error) {
	current, err := s.extractions.ListCurrent(ctx, documentID)
	if err != nil {
		return nil, err
	}
	for _, ex := range current {
		if ex.ID != extractionID {
			continue
		}
		// reviewer-entered category synonyms ("restaurant", "fuel") collapse
		// to the canonical label so the industry rules keep matching
		if ex.FieldName == pipeline.FieldCategory {
			if cat, ok := constants.Canonicalize(correctedValue); ok {
				correctedValue = string(cat)
			}
		}
		break
	}

	corr, err := s.extractions.Correct(ctx, extractionID, correctedValue)
	if err != nil {
		return nil, err
	}
	if _, err := s.Validate(ctx, documentID); err != nil {
		s.logger.Warn("revalidation after correction failed", "document_id", documentID, "error", err)
	}
	return corr, nil
}

// History lists every document with its extraction and issue counts.
func (s *Service) History(ctx context.Context) ([]*entity.DocumentHistory, error) {
	return s.documents.ListHistory(ctx)
}

// Summary aggregates the stored issues for one document.
func (s *Service) Summary(ctx context.Context, documentID uuid.UUID) (entity.ValidationSummary, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return entity.ValidationSummary{}, err
	}
	rows, err := s.issues.ListByDocument(ctx, documentID)
	if err != nil {
		return entity.ValidationSummary{}, err
	}
	issues := make([]entity.ValidationIssue, len(rows))
	for i, row := range rows {
		issues[i] = *row
	}
	return validate.Summarize(issues), nil
}

// AcknowledgeIssue marks one issue as reviewed.
func (s *Service) AcknowledgeIssue(ctx context.Context, issueID uuid.UUID) (*entity.ValidationIssue, error) {
	return s.issues.Acknowledge(ctx, issueID)
}

// extractionRows flattens the result mapping into rows in the branch's
// canonical field order, classification pseudo-field last.
func extractionRows(res *pipeline.Result) []entity.Extraction {
	order := pipeline.InvoiceFields
	if res.Classification.DocumentType == constants.DocTypeReceipt {
		order = pipeline.ReceiptFields
	}

	rows := make([]entity.Extraction, 0, len(order)+1)
	for _, name := range order {
		fr, ok := res.Fields[name]
		if !ok {
			continue
		}
		rows = append(rows, entity.Extraction{
			FieldName:  name,
			FieldValue: fr.Value,
			Confidence: fr.Confidence,
		})
	}
	if fr, ok := res.Fields[pipeline.FieldDocumentType]; ok {
		rows = append(rows, entity.Extraction{
			FieldName:  pipeline.FieldDocumentType,
			FieldValue: fr.Value,
			Confidence: fr.Confidence,
		})
	}
	return rows
}
