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
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
)

// ValidationIssueUpdate is the builder for updating ValidationIssue entities.
type ValidationIssueUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationIssueMutation
}

// Where appends a list predicates to the ValidationIssueUpdate builder.
func (_u *ValidationIssueUpdate) Where(ps ...predicate.ValidationIssue) *ValidationIssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ValidationIssueUpdate) SetDocumentID(v uuid.UUID) *ValidationIssueUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ValidationIssueUpdate) SetNillableDocumentID(v *uuid.UUID) *ValidationIssueUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *ValidationIssueUpdate) SetAcknowledged(v bool) *ValidationIssueUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *ValidationIssueUpdate) SetNillableAcknowledged(v *bool) *ValidationIssueUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ValidationIssueUpdate) SetDocument(v *Document) *ValidationIssueUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ValidationIssueMutation object of the builder.
func (_u *ValidationIssueUpdate) Mutation() *ValidationIssueMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ValidationIssueUpdate) ClearDocument() *ValidationIssueUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationIssueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationIssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationIssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationIssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationIssueUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationIssue.document"`)
	}
	return nil
}

func (_u *ValidationIssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationissue.Table, validationissue.Columns, sqlgraph.NewFieldSpec(validationissue.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(validationissue.FieldAcknowledged, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationissue.DocumentTable,
			Columns: []string{validationissue.DocumentColumn},
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
			Table:   validationissue.DocumentTable,
			Columns: []string{validationissue.DocumentColumn},
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
			err = &NotFoundError{validationissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationIssueUpdateOne is the builder for updating a single ValidationIssue entity.
type ValidationIssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationIssueMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ValidationIssueUpdateOne) SetDocumentID(v uuid.UUID) *ValidationIssueUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ValidationIssueUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ValidationIssueUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *ValidationIssueUpdateOne) SetAcknowledged(v bool) *ValidationIssueUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *ValidationIssueUpdateOne) SetNillableAcknowledged(v *bool) *ValidationIssueUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ValidationIssueUpdateOne) SetDocument(v *Document) *ValidationIssueUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ValidationIssueMutation object of the builder.
func (_u *ValidationIssueUpdateOne) Mutation() *ValidationIssueMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ValidationIssueUpdateOne) ClearDocument() *ValidationIssueUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ValidationIssueUpdate builder.
func (_u *ValidationIssueUpdateOne) Where(ps ...predicate.ValidationIssue) *ValidationIssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationIssueUpdateOne) Select(field string, fields ...string) *ValidationIssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationIssue entity.
func (_u *ValidationIssueUpdateOne) Save(ctx context.Context) (*ValidationIssue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationIssueUpdateOne) SaveX(ctx context.Context) *ValidationIssue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationIssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationIssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationIssueUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationIssue.document"`)
	}
	return nil
}

func (_u *ValidationIssueUpdateOne) sqlSave(ctx context.Context) (_node *ValidationIssue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationissue.Table, validationissue.Columns, sqlgraph.NewFieldSpec(validationissue.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationIssue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationissue.FieldID)
		for _, f := range fields {
			if !validationissue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationissue.FieldID {
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
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(validationissue.FieldAcknowledged, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationissue.DocumentTable,
			Columns: []string{validationissue.DocumentColumn},
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
			Table:   validationissue.DocumentTable,
			Columns: []string{validationissue.DocumentColumn},
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
	_node = &ValidationIssue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
