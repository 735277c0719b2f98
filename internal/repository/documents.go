package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type DocumentRepository interface {
	Create(ctx context.Context, filename string) (*entity.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, docType constants.DocumentType, confidence float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ListHistory(ctx context.Context) ([]*entity.DocumentHistory, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, filename string) (*entity.Document, error) {
	doc, err := r.client.Document.Create().
		SetFilename(filename).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", doc.ID, "filename", filename)
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusProcessing)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to mark document processing", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, docType constants.DocumentType, confidence float64) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusCompleted)).
		SetDocumentType(string(docType)).
		SetTypeConfidence(confidence).
		SetProcessedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to mark document completed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document completed", "document_id", id, "document_type", docType)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusFailed)).
		SetErrorMessage(message).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to mark document failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document failed", "document_id", id, "error", message)
	return nil
}

// ListHistory returns every document newest-first with its extraction and
// issue counts.
func (r *documentRepository) ListHistory(ctx context.Context) ([]*entity.DocumentHistory, error) {
	docs, err := r.client.Document.Query().
		Order(ent.Desc(document.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}

	result := make([]*entity.DocumentHistory, len(docs))
	for i, doc := range docs {
		extractions, err := doc.QueryExtractions().Count(ctx)
		if err != nil {
			return nil, err
		}
		issues, err := doc.QueryIssues().Count(ctx)
		if err != nil {
			return nil, err
		}
		result[i] = &entity.DocumentHistory{
			ID:              doc.ID,
			Filename:        doc.Filename,
			Status:          constants.DocumentStatus(doc.Status),
			UploadedAt:      doc.UploadedAt,
			ExtractionCount: extractions,
			IssueCount:      issues,
		}
	}
	return result, nil
}
