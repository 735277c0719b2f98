package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/gen/ent"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/utils"
)

type ReceiptRepository interface {
	// ReplaceItems swaps a document's line items for reprocessing runs.
	ReplaceItems(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error
	ListItems(ctx context.Context, documentID uuid.UUID) ([]entity.LineItem, error)
	// UpsertDetails writes the one details row per document.
	UpsertDetails(ctx context.Context, details *entity.ReceiptDetails) error
	// GetDetails returns nil without error when the document has no details row.
	GetDetails(ctx context.Context, documentID uuid.UUID) (*entity.ReceiptDetails, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{client: client, logger: logger}
}

func (r *receiptRepository) ReplaceItems(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.ReceiptItem.Delete().
		Where(receiptitem.DocumentID(documentID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear receipt items", "document_id", documentID, "error", err)
		return rollback(tx, err)
	}

	if len(items) > 0 {
		builders := make([]*ent.ReceiptItemCreate, len(items))
		for i, item := range items {
			builders[i] = tx.ReceiptItem.Create().
				SetDocumentID(documentID).
				SetPosition(i).
				SetItemName(item.ItemName).
				SetQuantity(item.Quantity).
				SetUnitPrice(item.UnitPrice).
				SetTotalPrice(item.TotalPrice)
		}
		if _, err := tx.ReceiptItem.CreateBulk(builders...).Save(ctx); err != nil {
			r.logger.Error("failed to insert receipt items", "document_id", documentID, "error", err)
			return rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("receipt items stored", "document_id", documentID, "count", len(items))
	return nil
}

func (r *receiptRepository) ListItems(ctx context.Context, documentID uuid.UUID) ([]entity.LineItem, error) {
	rows, err := r.client.ReceiptItem.Query().
		Where(receiptitem.DocumentID(documentID)).
		Order(ent.Asc(receiptitem.FieldPosition)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipt items", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]entity.LineItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLineItem(row)
	}
	return result, nil
}

func (r *receiptRepository) UpsertDetails(ctx context.Context, details *entity.ReceiptDetails) error {
	existing, err := r.client.ReceiptDetail.Query().
		Where(receiptdetail.DocumentID(details.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to load receipt details", "document_id", details.DocumentID, "error", err)
		return err
	}

	if existing != nil {
		err = existing.Update().
			SetNillableMerchantName(details.MerchantName).
			SetNillableLocation(details.Location).
			SetNillablePaymentMethod(details.PaymentMethod).
			SetNillableTipAmount(details.TipAmount).
			SetNillableSubtotal(details.Subtotal).
			SetNillableTaxAmount(details.TaxAmount).
			SetNillableTotalAmount(details.TotalAmount).
			SetNillableCashierName(details.CashierName).
			SetNillableTransactionTime(details.TransactionTime).
			SetNillableCategory(details.Category).
			Exec(ctx)
	} else {
		err = r.client.ReceiptDetail.Create().
			SetDocumentID(details.DocumentID).
			SetNillableMerchantName(details.MerchantName).
			SetNillableLocation(details.Location).
			SetNillablePaymentMethod(details.PaymentMethod).
			SetNillableTipAmount(details.TipAmount).
			SetNillableSubtotal(details.Subtotal).
			SetNillableTaxAmount(details.TaxAmount).
			SetNillableTotalAmount(details.TotalAmount).
			SetNillableCashierName(details.CashierName).
			SetNillableTransactionTime(details.TransactionTime).
			SetNillableCategory(details.Category).
			Exec(ctx)
	}
	if err != nil {
		r.logger.Error("failed to store receipt details", "document_id", details.DocumentID, "error", err)
		return err
	}
	return nil
}

func (r *receiptRepository) GetDetails(ctx context.Context, documentID uuid.UUID) (*entity.ReceiptDetails, error) {
	row, err := r.client.ReceiptDetail.Query().
		Where(receiptdetail.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get receipt details", "document_id", documentID, "error", err)
		return nil, err
	}
	return utils.ToReceiptDetails(row), nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
