// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
)

// ReceiptDetailCreate is the builder for creating a ReceiptDetail entity.
type ReceiptDetailCreate struct {
	config
	mutation *ReceiptDetailMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ReceiptDetailCreate) SetDocumentID(v uuid.UUID) *ReceiptDetailCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetMerchantName sets the "merchant_name" field.
func (_c *ReceiptDetailCreate) SetMerchantName(v string) *ReceiptDetailCreate {
	_c.mutation.SetMerchantName(v)
	return _c
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableMerchantName(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetMerchantName(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ReceiptDetailCreate) SetLocation(v string) *ReceiptDetailCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableLocation(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ReceiptDetailCreate) SetPaymentMethod(v string) *ReceiptDetailCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillablePaymentMethod(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetTipAmount sets the "tip_amount" field.
func (_c *ReceiptDetailCreate) SetTipAmount(v string) *ReceiptDetailCreate {
	_c.mutation.SetTipAmount(v)
	return _c
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableTipAmount(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetTipAmount(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *ReceiptDetailCreate) SetSubtotal(v string) *ReceiptDetailCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableSubtotal(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *ReceiptDetailCreate) SetTaxAmount(v string) *ReceiptDetailCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableTaxAmount(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *ReceiptDetailCreate) SetTotalAmount(v string) *ReceiptDetailCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableTotalAmount(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetCashierName sets the "cashier_name" field.
func (_c *ReceiptDetailCreate) SetCashierName(v string) *ReceiptDetailCreate {
	_c.mutation.SetCashierName(v)
	return _c
}

// SetNillableCashierName sets the "cashier_name" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableCashierName(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetCashierName(*v)
	}
	return _c
}

// SetTransactionTime sets the "transaction_time" field.
func (_c *ReceiptDetailCreate) SetTransactionTime(v string) *ReceiptDetailCreate {
	_c.mutation.SetTransactionTime(v)
	return _c
}

// SetNillableTransactionTime sets the "transaction_time" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableTransactionTime(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetTransactionTime(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ReceiptDetailCreate) SetCategory(v string) *ReceiptDetailCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableCategory(v *string) *ReceiptDetailCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptDetailCreate) SetID(v uuid.UUID) *ReceiptDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptDetailCreate) SetNillableID(v *uuid.UUID) *ReceiptDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ReceiptDetailCreate) SetDocument(v *Document) *ReceiptDetailCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptDetailMutation object of the builder.
func (_c *ReceiptDetailCreate) Mutation() *ReceiptDetailMutation {
	return _c.mutation
}

// Save creates the ReceiptDetail in the database.
func (_c *ReceiptDetailCreate) Save(ctx context.Context) (*ReceiptDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptDetailCreate) SaveX(ctx context.Context) *ReceiptDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptDetailCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ReceiptDetail.document_id"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ReceiptDetail.document"`)}
	}
	return nil
}

func (_c *ReceiptDetailCreate) sqlSave(ctx context.Context) (*ReceiptDetail, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptDetailCreate) createSpec() (*ReceiptDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptdetail.Table, sqlgraph.NewFieldSpec(receiptdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MerchantName(); ok {
		_spec.SetField(receiptdetail.FieldMerchantName, field.TypeString, value)
		_node.MerchantName = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(receiptdetail.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(receiptdetail.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.TipAmount(); ok {
		_spec.SetField(receiptdetail.FieldTipAmount, field.TypeString, value)
		_node.TipAmount = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(receiptdetail.FieldSubtotal, field.TypeString, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(receiptdetail.FieldTaxAmount, field.TypeString, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(receiptdetail.FieldTotalAmount, field.TypeString, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.CashierName(); ok {
		_spec.SetField(receiptdetail.FieldCashierName, field.TypeString, value)
		_node.CashierName = &value
	}
	if value, ok := _c.mutation.TransactionTime(); ok {
		_spec.SetField(receiptdetail.FieldTransactionTime, field.TypeString, value)
		_node.TransactionTime = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(receiptdetail.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receiptdetail.DocumentTable,
			Columns: []string{receiptdetail.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptDetailCreateBulk is the builder for creating many ReceiptDetail entities in bulk.
type ReceiptDetailCreateBulk struct {
	config
	err      error
	builders []*ReceiptDetailCreate
}

// Save creates the ReceiptDetail entities in the database.
func (_c *ReceiptDetailCreateBulk) Save(ctx context.Context) ([]*ReceiptDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptDetailMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReceiptDetailCreateBulk) SaveX(ctx context.Context) []*ReceiptDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
