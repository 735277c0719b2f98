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
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
)

// ReceiptItemCreate is the builder for creating a ReceiptItem entity.
type ReceiptItemCreate struct {
	config
	mutation *ReceiptItemMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ReceiptItemCreate) SetDocumentID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ReceiptItemCreate) SetPosition(v int) *ReceiptItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetItemName sets the "item_name" field.
func (_c *ReceiptItemCreate) SetItemName(v string) *ReceiptItemCreate {
	_c.mutation.SetItemName(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ReceiptItemCreate) SetQuantity(v float64) *ReceiptItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ReceiptItemCreate) SetUnitPrice(v float64) *ReceiptItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *ReceiptItemCreate) SetTotalPrice(v float64) *ReceiptItemCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptItemCreate) SetID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptItemCreate) SetNillableID(v *uuid.UUID) *ReceiptItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ReceiptItemCreate) SetDocument(v *Document) *ReceiptItemCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptItemMutation object of the builder.
func (_c *ReceiptItemCreate) Mutation() *ReceiptItemMutation {
	return _c.mutation
}

// Save creates the ReceiptItem in the database.
func (_c *ReceiptItemCreate) Save(ctx context.Context) (*ReceiptItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptItemCreate) SaveX(ctx context.Context) *ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptItemCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ReceiptItem.document_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ReceiptItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := receiptitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemName(); !ok {
		return &ValidationError{Name: "item_name", err: errors.New(`ent: missing required field "ReceiptItem.item_name"`)}
	}
	if v, ok := _c.mutation.ItemName(); ok {
		if err := receiptitem.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.item_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ReceiptItem.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "ReceiptItem.unit_price"`)}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "ReceiptItem.total_price"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ReceiptItem.document"`)}
	}
	return nil
}

func (_c *ReceiptItemCreate) sqlSave(ctx context.Context) (*ReceiptItem, error) {
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

func (_c *ReceiptItemCreate) createSpec() (*ReceiptItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptitem.Table, sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(receiptitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ItemName(); ok {
		_spec.SetField(receiptitem.FieldItemName, field.TypeString, value)
		_node.ItemName = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(receiptitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptitem.DocumentTable,
			Columns: []string{receiptitem.DocumentColumn},
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

// ReceiptItemCreateBulk is the builder for creating many ReceiptItem entities in bulk.
type ReceiptItemCreateBulk struct {
	config
	err      error
	builders []*ReceiptItemCreate
}

// Save creates the ReceiptItem entities in the database.
func (_c *ReceiptItemCreateBulk) Save(ctx context.Context) ([]*ReceiptItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptItemMutation)
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
func (_c *ReceiptItemCreateBulk) SaveX(ctx context.Context) []*ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
