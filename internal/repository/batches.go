package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type BatchRepository interface {
	Start(ctx context.Context, sourcePath string) (*entity.Batch, error)
	Finish(ctx context.Context, id uuid.UUID, total, succeeded, failed int) (*entity.Batch, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
}

type batchRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(client *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepository{client: client, logger: logger}
}

func (r *batchRepository) Start(ctx context.Context, sourcePath string) (*entity.Batch, error) {
	batch, err := r.client.Batch.Create().
		SetSourcePath(sourcePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start batch", "source_path", sourcePath, "error", err)
		return nil, err
	}
	r.logger.Info("batch started", "batch_id", batch.ID, "source_path", sourcePath)
	return utils.ToBatch(batch), nil
}

func (r *batchRepository) Finish(ctx context.Context, id uuid.UUID, total, succeeded, failed int) (*entity.Batch, error) {
	batch, err := r.client.Batch.UpdateOneID(id).
		SetStatus(string(constants.BatchStatusCompleted)).
		SetTotal(total).
		SetSucceeded(succeeded).
		SetFailed(failed).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to finish batch", "batch_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("batch finished", "batch_id", id, "total", total, "succeeded", succeeded, "failed", failed)
	return utils.ToBatch(batch), nil
}

func (r *batchRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	batch, err := r.client.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get batch", "batch_id", id, "error", err)
		return nil, err
	}
	return utils.ToBatch(batch), nil
}
