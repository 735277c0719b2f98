// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
)

// ReceiptDetail is the model entity for the ReceiptDetail schema.
type ReceiptDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// MerchantName holds the value of the "merchant_name" field.
	MerchantName *string `json:"merchant_name,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod *string `json:"payment_method,omitempty"`
	// TipAmount holds the value of the "tip_amount" field.
	TipAmount *string `json:"tip_amount,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *string `json:"subtotal,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount *string `json:"tax_amount,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *string `json:"total_amount,omitempty"`
	// CashierName holds the value of the "cashier_name" field.
	CashierName *string `json:"cashier_name,omitempty"`
	// TransactionTime holds the value of the "transaction_time" field.
	TransactionTime *string `json:"transaction_time,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptDetailQuery when eager-loading is set.
	Edges        ReceiptDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptDetailEdges holds the relations/edges for other nodes in the graph.
type ReceiptDetailEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptDetailEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptdetail.FieldMerchantName, receiptdetail.FieldLocation, receiptdetail.FieldPaymentMethod, receiptdetail.FieldTipAmount, receiptdetail.FieldSubtotal, receiptdetail.FieldTaxAmount, receiptdetail.FieldTotalAmount, receiptdetail.FieldCashierName, receiptdetail.FieldTransactionTime, receiptdetail.FieldCategory:
			values[i] = new(sql.NullString)
		case receiptdetail.FieldID, receiptdetail.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptDetail fields.
func (_m *ReceiptDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptdetail.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case receiptdetail.FieldMerchantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merchant_name", values[i])
			} else if value.Valid {
				_m.MerchantName = new(string)
				*_m.MerchantName = value.String
			}
		case receiptdetail.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case receiptdetail.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = new(string)
				*_m.PaymentMethod = value.String
			}
		case receiptdetail.FieldTipAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tip_amount", values[i])
			} else if value.Valid {
				_m.TipAmount = new(string)
				*_m.TipAmount = value.String
			}
		case receiptdetail.FieldSubtotal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(string)
				*_m.Subtotal = value.String
			}
		case receiptdetail.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = new(string)
				*_m.TaxAmount = value.String
			}
		case receiptdetail.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(string)
				*_m.TotalAmount = value.String
			}
		case receiptdetail.FieldCashierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cashier_name", values[i])
			} else if value.Valid {
				_m.CashierName = new(string)
				*_m.CashierName = value.String
			}
		case receiptdetail.FieldTransactionTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_time", values[i])
			} else if value.Valid {
				_m.TransactionTime = new(string)
				*_m.TransactionTime = value.String
			}
		case receiptdetail.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptDetail.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ReceiptDetail entity.
func (_m *ReceiptDetail) QueryDocument() *DocumentQuery {
	return NewReceiptDetailClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ReceiptDetail.
// Note that you need to call ReceiptDetail.Unwrap() before calling this method if this ReceiptDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptDetail) Update() *ReceiptDetailUpdateOne {
	return NewReceiptDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptDetail) Unwrap() *ReceiptDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptDetail) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.MerchantName; v != nil {
		builder.WriteString("merchant_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentMethod; v != nil {
		builder.WriteString("payment_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TipAmount; v != nil {
		builder.WriteString("tip_amount=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaxAmount; v != nil {
		builder.WriteString("tax_amount=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CashierName; v != nil {
		builder.WriteString("cashier_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransactionTime; v != nil {
		builder.WriteString("transaction_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptDetails is a parsable slice of ReceiptDetail.
type ReceiptDetails []*ReceiptDetail
