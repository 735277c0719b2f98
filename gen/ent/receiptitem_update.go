// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
)

// ReceiptItemUpdate is the builder for updating ReceiptItem entities.
type ReceiptItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptItemMutation
}

// Where appends a list predicates to the ReceiptItemUpdate builder.
func (_u *ReceiptItemUpdate) Where(ps ...predicate.ReceiptItem) *ReceiptItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptItemUpdate) SetDocumentID(v uuid.UUID) *ReceiptItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillableDocumentID(v *uuid.UUID) *ReceiptItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ReceiptItemUpdate) SetPosition(v int) *ReceiptItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillablePosition(v *int) *ReceiptItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ReceiptItemUpdate) AddPosition(v int) *ReceiptItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *ReceiptItemUpdate) SetItemName(v string) *ReceiptItemUpdate {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillableItemName(v *string) *ReceiptItemUpdate {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReceiptItemUpdate) SetQuantity(v float64) *ReceiptItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillableQuantity(v *float64) *ReceiptItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReceiptItemUpdate) AddQuantity(v float64) *ReceiptItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ReceiptItemUpdate) SetUnitPrice(v float64) *ReceiptItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillableUnitPrice(v *float64) *ReceiptItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ReceiptItemUpdate) AddUnitPrice(v float64) *ReceiptItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *ReceiptItemUpdate) SetTotalPrice(v float64) *ReceiptItemUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *ReceiptItemUpdate) SetNillableTotalPrice(v *float64) *ReceiptItemUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *ReceiptItemUpdate) AddTotalPrice(v float64) *ReceiptItemUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptItemUpdate) SetDocument(v *Document) *ReceiptItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptItemMutation object of the builder.
func (_u *ReceiptItemUpdate) Mutation() *ReceiptItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptItemUpdate) ClearDocument() *ReceiptItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptItemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := receiptitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemName(); ok {
		if err := receiptitem.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.item_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptItem.document"`)
	}
	return nil
}

func (_u *ReceiptItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptitem.Table, receiptitem.Columns, sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(receiptitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(receiptitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(receiptitem.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(receiptitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(receiptitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptItemUpdateOne is the builder for updating a single ReceiptItem entity.
type ReceiptItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptItemUpdateOne) SetDocumentID(v uuid.UUID) *ReceiptItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ReceiptItemUpdateOne) SetPosition(v int) *ReceiptItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillablePosition(v *int) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ReceiptItemUpdateOne) AddPosition(v int) *ReceiptItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *ReceiptItemUpdateOne) SetItemName(v string) *ReceiptItemUpdateOne {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillableItemName(v *string) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ReceiptItemUpdateOne) SetQuantity(v float64) *ReceiptItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillableQuantity(v *float64) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ReceiptItemUpdateOne) AddQuantity(v float64) *ReceiptItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ReceiptItemUpdateOne) SetUnitPrice(v float64) *ReceiptItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillableUnitPrice(v *float64) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ReceiptItemUpdateOne) AddUnitPrice(v float64) *ReceiptItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *ReceiptItemUpdateOne) SetTotalPrice(v float64) *ReceiptItemUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *ReceiptItemUpdateOne) SetNillableTotalPrice(v *float64) *ReceiptItemUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *ReceiptItemUpdateOne) AddTotalPrice(v float64) *ReceiptItemUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptItemUpdateOne) SetDocument(v *Document) *ReceiptItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReceiptItemMutation object of the builder.
func (_u *ReceiptItemUpdateOne) Mutation() *ReceiptItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptItemUpdateOne) ClearDocument() *ReceiptItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ReceiptItemUpdate builder.
func (_u *ReceiptItemUpdateOne) Where(ps ...predicate.ReceiptItem) *ReceiptItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptItemUpdateOne) Select(field string, fields ...string) *ReceiptItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptItem entity.
func (_u *ReceiptItemUpdateOne) Save(ctx context.Context) (*ReceiptItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptItemUpdateOne) SaveX(ctx context.Context) *ReceiptItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptItemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := receiptitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemName(); ok {
		if err := receiptitem.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.item_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptItem.document"`)
	}
	return nil
}

func (_u *ReceiptItemUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptitem.Table, receiptitem.Columns, sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptitem.FieldID)
		for _, f := range fields {
			if !receiptitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(receiptitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(receiptitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(receiptitem.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(receiptitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(receiptitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(receiptitem.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
