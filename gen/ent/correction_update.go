// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
)

// CorrectionUpdate is the builder for updating Correction entities.
type CorrectionUpdate struct {
	config
	hooks    []Hook
	mutation *CorrectionMutation
}

// Where appends a list predicates to the CorrectionUpdate builder.
func (_u *CorrectionUpdate) Where(ps ...predicate.Correction) *CorrectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *CorrectionUpdate) SetExtractionID(v uuid.UUID) *CorrectionUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableExtractionID(v *uuid.UUID) *CorrectionUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *CorrectionUpdate) SetCorrectedValue(v string) *CorrectionUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableCorrectedValue(v *string) *CorrectionUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedAt sets the "corrected_at" field.
func (_u *CorrectionUpdate) SetCorrectedAt(v time.Time) *CorrectionUpdate {
	_u.mutation.SetCorrectedAt(v)
	return _u
}

// SetNillableCorrectedAt sets the "corrected_at" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableCorrectedAt(v *time.Time) *CorrectionUpdate {
	if v != nil {
		_u.SetCorrectedAt(*v)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *CorrectionUpdate) SetExtraction(v *Extraction) *CorrectionUpdate {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the CorrectionMutation object of the builder.
func (_u *CorrectionUpdate) Mutation() *CorrectionMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *CorrectionUpdate) ClearExtraction() *CorrectionUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorrectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorrectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionUpdate) check() error {
	if v, ok := _u.mutation.CorrectedValue(); ok {
		if err := correction.CorrectedValueValidator(v); err != nil {
			return &ValidationError{Name: "corrected_value", err: fmt.Errorf(`ent: validator failed for field "Correction.corrected_value": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Correction.extraction"`)
	}
	return nil
}

func (_u *CorrectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correction.Table, correction.Columns, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OriginalValueCleared() {
		_spec.ClearField(correction.FieldOriginalValue, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(correction.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedAt(); ok {
		_spec.SetField(correction.FieldCorrectedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correction.ExtractionTable,
			Columns: []string{correction.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correction.ExtractionTable,
			Columns: []string{correction.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorrectionUpdateOne is the builder for updating a single Correction entity.
type CorrectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorrectionMutation
}

// SetExtractionID sets the "extraction_id" field.
func (_u *CorrectionUpdateOne) SetExtractionID(v uuid.UUID) *CorrectionUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableExtractionID(v *uuid.UUID) *CorrectionUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *CorrectionUpdateOne) SetCorrectedValue(v string) *CorrectionUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableCorrectedValue(v *string) *CorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedAt sets the "corrected_at" field.
func (_u *CorrectionUpdateOne) SetCorrectedAt(v time.Time) *CorrectionUpdateOne {
	_u.mutation.SetCorrectedAt(v)
	return _u
}

// SetNillableCorrectedAt sets the "corrected_at" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableCorrectedAt(v *time.Time) *CorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedAt(*v)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *CorrectionUpdateOne) SetExtraction(v *Extraction) *CorrectionUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the CorrectionMutation object of the builder.
func (_u *CorrectionUpdateOne) Mutation() *CorrectionMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *CorrectionUpdateOne) ClearExtraction() *CorrectionUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// Where appends a list predicates to the CorrectionUpdate builder.
func (_u *CorrectionUpdateOne) Where(ps ...predicate.Correction) *CorrectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorrectionUpdateOne) Select(field string, fields ...string) *CorrectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Correction entity.
func (_u *CorrectionUpdateOne) Save(ctx context.Context) (*Correction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionUpdateOne) SaveX(ctx context.Context) *Correction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorrectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionUpdateOne) check() error {
	if v, ok := _u.mutation.CorrectedValue(); ok {
		if err := correction.CorrectedValueValidator(v); err != nil {
			return &ValidationError{Name: "corrected_value", err: fmt.Errorf(`ent: validator failed for field "Correction.corrected_value": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Correction.extraction"`)
	}
	return nil
}

func (_u *CorrectionUpdateOne) sqlSave(ctx context.Context) (_node *Correction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correction.Table, correction.Columns, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Correction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, correction.FieldID)
		for _, f := range fields {
			if !correction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != correction.FieldID {
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
	if _u.mutation.OriginalValueCleared() {
		_spec.ClearField(correction.FieldOriginalValue, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(correction.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedAt(); ok {
		_spec.SetField(correction.FieldCorrectedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correction.ExtractionTable,
			Columns: []string{correction.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correction.ExtractionTable,
			Columns: []string{correction.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Correction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
