// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
)

// ValidationIssueCreate is the builder for creating a ValidationIssue entity.
type ValidationIssueCreate struct {
	config
	mutation *ValidationIssueMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ValidationIssueCreate) SetDocumentID(v uuid.UUID) *ValidationIssueCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ValidationIssueCreate) SetPosition(v int) *ValidationIssueCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetIssueType sets the "issue_type" field.
func (_c *ValidationIssueCreate) SetIssueType(v string) *ValidationIssueCreate {
	_c.mutation.SetIssueType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ValidationIssueCreate) SetSeverity(v string) *ValidationIssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ValidationIssueCreate) SetDescription(v string) *ValidationIssueCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *ValidationIssueCreate) SetAcknowledged(v bool) *ValidationIssueCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *ValidationIssueCreate) SetNillableAcknowledged(v *bool) *ValidationIssueCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationIssueCreate) SetCreatedAt(v time.Time) *ValidationIssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationIssueCreate) SetNillableCreatedAt(v *time.Time) *ValidationIssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationIssueCreate) SetID(v uuid.UUID) *ValidationIssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationIssueCreate) SetNillableID(v *uuid.UUID) *ValidationIssueCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ValidationIssueCreate) SetDocument(v *Document) *ValidationIssueCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ValidationIssueMutation object of the builder.
func (_c *ValidationIssueCreate) Mutation() *ValidationIssueMutation {
	return _c.mutation
}

// Save creates the ValidationIssue in the database.
func (_c *ValidationIssueCreate) Save(ctx context.Context) (*ValidationIssue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationIssueCreate) SaveX(ctx context.Context) *ValidationIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationIssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationIssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationIssueCreate) defaults() {
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := validationissue.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationissue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationissue.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationIssueCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ValidationIssue.document_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ValidationIssue.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := validationissue.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ValidationIssue.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssueType(); !ok {
		return &ValidationError{Name: "issue_type", err: errors.New(`ent: missing required field "ValidationIssue.issue_type"`)}
	}
	if v, ok := _c.mutation.IssueType(); ok {
		if err := validationissue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "ValidationIssue.issue_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ValidationIssue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := validationissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ValidationIssue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ValidationIssue.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := validationissue.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "ValidationIssue.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "ValidationIssue.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationIssue.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ValidationIssue.document"`)}
	}
	return nil
}

func (_c *ValidationIssueCreate) sqlSave(ctx context.Context) (*ValidationIssue, error) {
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

func (_c *ValidationIssueCreate) createSpec() (*ValidationIssue, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationIssue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationissue.Table, sqlgraph.NewFieldSpec(validationissue.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(validationissue.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.IssueType(); ok {
		_spec.SetField(validationissue.FieldIssueType, field.TypeString, value)
		_node.IssueType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(validationissue.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(validationissue.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(validationissue.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationissue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationIssueCreateBulk is the builder for creating many ValidationIssue entities in bulk.
type ValidationIssueCreateBulk struct {
	config
	err      error
	builders []*ValidationIssueCreate
}

// Save creates the ValidationIssue entities in the database.
func (_c *ValidationIssueCreateBulk) Save(ctx context.Context) ([]*ValidationIssue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationIssue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationIssueMutation)
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
func (_c *ValidationIssueCreateBulk) SaveX(ctx context.Context) []*ValidationIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationIssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationIssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
