package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tobi-akande/expense-scanner/internal/repository"
)

// Service is a tiny façade over repositories that renders a document's
// stored results as XLSX or CSV. Corrections are applied before export.
type Service struct {
	documents   repository.DocumentRepository
	extractions repository.ExtractionRepository
	issues      repository.IssueRepository
	logger      *slog.Logger
}

func NewService(documents repository.DocumentRepository, extractions repository.ExtractionRepository, issues repository.IssueRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		documents:   documents,
		extractions: extractions,
		issues:      issues,
		logger:      logger,
	}
}

var extractionHeaders = []string{"Field Name", "Field Value", "Confidence Score"}

// ExportDocumentXLSX returns a workbook with one sheet of extractions and
// one of validation issues.
func (s *Service) ExportDocumentXLSX(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	extractions, err := s.extractions.ListCurrent(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}
	issues, err := s.issues.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}

	f := excelize.NewFile()

	const extractionsSheet = "Extractions"
	if err := f.SetSheetName("Sheet1", extractionsSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range extractionHeaders {
		write(extractionsSheet, i+1, 1, h)
	}
	row := 2
	for _, ex := range extractions {
		write(extractionsSheet, 1, row, ex.FieldName)
		value := ""
		if ex.FieldValue != nil {
			value = *ex.FieldValue
		}
		write(extractionsSheet, 2, row, value)
		write(extractionsSheet, 3, row, ex.Confidence)
		row++
	}

	const issuesSheet = "Validation Issues"
	if _, err := f.NewSheet(issuesSheet); err != nil {
		return nil, err
	}
	issueHeaders := []string{"Issue Type", "Severity", "Description", "Acknowledged"}
	for i, h := range issueHeaders {
		write(issuesSheet, i+1, 1, h)
	}
	row = 2
	for _, issue := range issues {
		write(issuesSheet, 1, row, string(issue.IssueType))
		write(issuesSheet, 2, row, string(issue.Severity))
		write(issuesSheet, 3, row, issue.Description)
		write(issuesSheet, 4, row, issue.Acknowledged)
		row++
	}

	_ = f.SetColWidth(extractionsSheet, "A", "A", 20)
	_ = f.SetColWidth(extractionsSheet, "B", "B", 40)
	_ = f.SetColWidth(extractionsSheet, "C", "C", 16)
	_ = f.SetColWidth(issuesSheet, "A", "B", 18)
	_ = f.SetColWidth(issuesSheet, "C", "C", 72)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", documentID.String(),
		"filename", doc.Filename,
		"rows", len(extractions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportDocumentCSV returns the extractions table as CSV.
func (s *Service) ExportDocumentCSV(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return nil, err
	}
	extractions, err := s.extractions.ListCurrent(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(extractionHeaders); err != nil {
		return nil, err
	}
	for _, ex := range extractions {
		value := ""
		if ex.FieldValue != nil {
			value = *ex.FieldValue
		}
		record := []string{
			ex.FieldName,
			value,
			strconv.FormatFloat(ex.Confidence, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok", "document_id", documentID.String(), "rows", len(extractions))
	return buf.Bytes(), nil
}
