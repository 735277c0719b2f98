package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
	"github.com/tobi-akande/expense-scanner/internal/common"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type IssueRepository interface {
	// Replace swaps a document's stored issues so revalidation never
	// accumulates duplicates. Input order is recorded and survives read-back.
	Replace(ctx context.Context, documentID uuid.UUID, issues []entity.ValidationIssue) ([]*entity.ValidationIssue, error)
	// ListByDocument returns issues in the order the engine produced them.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ValidationIssue, error)
	// Acknowledge is idempotent; acknowledging twice is not an error.
	Acknowledge(ctx context.Context, issueID uuid.UUID) (*entity.ValidationIssue, error)
}

type issueRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIssueRepository(client *ent.Client, logger *slog.Logger) IssueRepository {
	return &issueRepository{client: client, logger: logger}
}

func (r *issueRepository) Replace(ctx context.Context, documentID uuid.UUID, issues []entity.ValidationIssue) ([]*entity.ValidationIssue, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ValidationIssue.Delete().
		Where(validationissue.DocumentID(documentID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear validation issues", "document_id", documentID, "error", err)
		return nil, rollback(tx, err)
	}

	var created []*ent.ValidationIssue
	if len(issues) > 0 {
		builders := make([]*ent.ValidationIssueCreate, len(issues))
		for i, issue := range issues {
			builders[i] = tx.ValidationIssue.Create().
				SetDocumentID(documentID).
				SetPosition(i).
				SetIssueType(string(issue.IssueType)).
				SetSeverity(string(issue.Severity)).
				SetDescription(issue.Description)
		}
		created, err = tx.ValidationIssue.CreateBulk(builders...).Save(ctx)
		if err != nil {
			r.logger.Error("failed to insert validation issues", "document_id", documentID, "error", err)
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("validation issues stored", "document_id", documentID, "count", len(created))

	result := make([]*entity.ValidationIssue, len(created))
	for i, row := range created {
		result[i] = utils.ToValidationIssue(row)
	}
	return result, nil
}

func (r *issueRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ValidationIssue, error) {
	rows, err := r.client.ValidationIssue.Query().
		Where(validationissue.DocumentID(documentID)).
		Order(ent.Asc(validationissue.FieldPosition)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list validation issues", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]*entity.ValidationIssue, len(rows))
	for i, row := range rows {
		result[i] = utils.ToValidationIssue(row)
	}
	return result, nil
}

func (r *issueRepository) Acknowledge(ctx context.Context, issueID uuid.UUID) (*entity.ValidationIssue, error) {
	row, err := r.client.ValidationIssue.UpdateOneID(issueID).
		SetAcknowledged(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to acknowledge issue", "issue_id", issueID, "error", err)
		return nil, err
	}
	r.logger.Info("issue acknowledged", "issue_id", issueID)
	return utils.ToValidationIssue(row), nil
}
