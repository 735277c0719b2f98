package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type ExtractionRepository interface {
	// InsertBatch stores one row per field in the given order.
	InsertBatch(ctx context.Context, documentID uuid.UUID, rows []entity.Extraction) ([]*entity.Extraction, error)
	// ListByDocument returns raw extraction rows as first extracted.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Extraction, error)
	// ListCurrent overlays each extraction with its most recent correction.
	ListCurrent(ctx context.Context, documentID uuid.UUID) ([]*entity.Extraction, error)
	// Correct records a manual fix; the original row is never mutated.
	Correct(ctx context.Context, extractionID uuid.UUID, correctedValue string) (*entity.Correction, error)
	ListCorrections(ctx context.Context, extractionID uuid.UUID) ([]*entity.Correction, error)
}

type extractionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionRepository(client *ent.Client, logger *slog.Logger) ExtractionRepository {
	return &extractionRepository{client: client, logger: logger}
}

func (r *extractionRepository) InsertBatch(ctx context.Context, documentID uuid.UUID, rows []entity.Extraction) ([]*entity.Extraction, error) {
	builders := make([]*ent.ExtractionCreate, len(rows))
	for i, row := range rows {
		builders[i] = r.client.Extraction.Create().
			SetDocumentID(documentID).
			SetFieldName(row.FieldName).
			SetNillableFieldValue(row.FieldValue).
			SetConfidenceScore(row.Confidence)
	}
	created, err := r.client.Extraction.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert extractions", "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("extractions stored", "document_id", documentID, "count", len(created))

	result := make([]*entity.Extraction, len(created))
	for i, row := range created {
		result[i] = utils.ToExtraction(row)
	}
	return result, nil
}

func (r *extractionRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.client.Extraction.Query().
		Where(extraction.DocumentID(documentID)).
		Order(ent.Asc(extraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extractions", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]*entity.Extraction, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtraction(row)
	}
	return result, nil
}

func (r *extractionRepository) ListCurrent(ctx context.Context, documentID uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.client.Extraction.Query().
		Where(extraction.DocumentID(documentID)).
		Order(ent.Asc(extraction.FieldCreatedAt)).
		WithCorrections(func(q *ent.CorrectionQuery) {
			q.Order(ent.Desc(correction.FieldCorrectedAt))
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extractions", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]*entity.Extraction, len(rows))
	for i, row := range rows {
		e := utils.ToExtraction(row)
		if len(row.Edges.Corrections) > 0 {
			latest := row.Edges.Corrections[0].CorrectedValue
			e.FieldValue = &latest
		}
		result[i] = e
	}
	return result, nil
}

func (r *extractionRepository) Correct(ctx context.Context, extractionID uuid.UUID, correctedValue string) (*entity.Correction, error) {
	orig, err := r.client.Extraction.Get(ctx, extractionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to load extraction", "extraction_id", extractionID, "error", err)
		return nil, err
	}

	corr, err := r.client.Correction.Create().
		SetExtractionID(extractionID).
		SetNillableOriginalValue(orig.FieldValue).
		SetCorrectedValue(correctedValue).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store correction", "extraction_id", extractionID, "error", err)
		return nil, err
	}
	r.logger.Info("correction stored", "extraction_id", extractionID, "field_name", orig.FieldName)
	return utils.ToCorrection(corr), nil
}

func (r *extractionRepository) ListCorrections(ctx context.Context, extractionID uuid.UUID) ([]*entity.Correction, error) {
	rows, err := r.client.Correction.Query().
		Where(correction.ExtractionID(extractionID)).
		Order(ent.Asc(correction.FieldCorrectedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list corrections", "extraction_id", extractionID, "error", err)
		return nil, err
	}

	result := make([]*entity.Correction, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCorrection(row)
	}
	return result, nil
}
