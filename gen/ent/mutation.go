// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/batch"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch           = "Batch"
	TypeCorrection      = "Correction"
	TypeDocument        = "Document"
	TypeExtraction      = "Extraction"
	TypeReceiptDetail   = "ReceiptDetail"
	TypeReceiptItem     = "ReceiptItem"
	TypeValidationIssue = "ValidationIssue"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	status        *string
	total         *int
	addtotal      *int
	succeeded     *int
	addsucceeded  *int
	failed        *int
	addfailed     *int
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Batch, error)
	predicates    []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *BatchMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *BatchMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *BatchMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetTotal sets the "total" field.
func (m *BatchMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *BatchMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *BatchMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *BatchMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *BatchMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *BatchMutation) SetSucceeded(i int) {
	m.succeeded = &i
	m.addsucceeded = nil
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *BatchMutation) Succeeded() (r int, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// AddSucceeded adds i to the "succeeded" field.
func (m *BatchMutation) AddSucceeded(i int) {
	if m.addsucceeded != nil {
		*m.addsucceeded += i
	} else {
		m.addsucceeded = &i
	}
}

// AddedSucceeded returns the value that was added to the "succeeded" field in this mutation.
func (m *BatchMutation) AddedSucceeded() (r int, exists bool) {
	v := m.addsucceeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *BatchMutation) ResetSucceeded() {
	m.succeeded = nil
	m.addsucceeded = nil
}

// SetFailed sets the "failed" field.
func (m *BatchMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *BatchMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *BatchMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *BatchMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *BatchMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *BatchMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *BatchMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *BatchMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[batch.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *BatchMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *BatchMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, batch.FieldFinishedAt)
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source_path != nil {
		fields = append(fields, batch.FieldSourcePath)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.total != nil {
		fields = append(fields, batch.FieldTotal)
	}
	if m.succeeded != nil {
		fields = append(fields, batch.FieldSucceeded)
	}
	if m.failed != nil {
		fields = append(fields, batch.FieldFailed)
	}
	if m.started_at != nil {
		fields = append(fields, batch.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, batch.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldSourcePath:
		return m.SourcePath()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldTotal:
		return m.Total()
	case batch.FieldSucceeded:
		return m.Succeeded()
	case batch.FieldFailed:
		return m.Failed()
	case batch.FieldStartedAt:
		return m.StartedAt()
	case batch.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldTotal:
		return m.OldTotal(ctx)
	case batch.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case batch.FieldFailed:
		return m.OldFailed(ctx)
	case batch.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batch.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case batch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case batch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case batch.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batch.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, batch.FieldTotal)
	}
	if m.addsucceeded != nil {
		fields = append(fields, batch.FieldSucceeded)
	}
	if m.addfailed != nil {
		fields = append(fields, batch.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotal:
		return m.AddedTotal()
	case batch.FieldSucceeded:
		return m.AddedSucceeded()
	case batch.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case batch.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceeded(v)
		return nil
	case batch.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batch.FieldFinishedAt) {
		fields = append(fields, batch.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	switch name {
	case batch.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldTotal:
		m.ResetTotal()
		return nil
	case batch.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case batch.FieldFailed:
		m.ResetFailed()
		return nil
	case batch.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batch.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Batch edge %s", name)
}

// CorrectionMutation represents an operation that mutates the Correction nodes in the graph.
type CorrectionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	original_value    *string
	corrected_value   *string
	corrected_at      *time.Time
	clearedFields     map[string]struct{}
	extraction        *uuid.UUID
	clearedextraction bool
	done              bool
	oldValue          func(context.Context) (*Correction, error)
	predicates        []predicate.Correction
}

var _ ent.Mutation = (*CorrectionMutation)(nil)

// correctionOption allows management of the mutation configuration using functional options.
type correctionOption func(*CorrectionMutation)

// newCorrectionMutation creates new mutation for the Correction entity.
func newCorrectionMutation(c config, op Op, opts ...correctionOption) *CorrectionMutation {
	m := &CorrectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrectionID sets the ID field of the mutation.
func withCorrectionID(id uuid.UUID) correctionOption {
	return func(m *CorrectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Correction
		)
		m.oldValue = func(ctx context.Context) (*Correction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Correction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrection sets the old Correction of the mutation.
func withCorrection(node *Correction) correctionOption {
	return func(m *CorrectionMutation) {
		m.oldValue = func(context.Context) (*Correction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Correction entities.
func (m *CorrectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Correction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExtractionID sets the "extraction_id" field.
func (m *CorrectionMutation) SetExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// ExtractionID returns the value of the "extraction_id" field in the mutation.
func (m *CorrectionMutation) ExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionID returns the old "extraction_id" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionID: %w", err)
	}
	return oldValue.ExtractionID, nil
}

// ResetExtractionID resets all changes to the "extraction_id" field.
func (m *CorrectionMutation) ResetExtractionID() {
	m.extraction = nil
}

// SetOriginalValue sets the "original_value" field.
func (m *CorrectionMutation) SetOriginalValue(s string) {
	m.original_value = &s
}

// OriginalValue returns the value of the "original_value" field in the mutation.
func (m *CorrectionMutation) OriginalValue() (r string, exists bool) {
	v := m.original_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalValue returns the old "original_value" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldOriginalValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalValue: %w", err)
	}
	return oldValue.OriginalValue, nil
}

// ClearOriginalValue clears the value of the "original_value" field.
func (m *CorrectionMutation) ClearOriginalValue() {
	m.original_value = nil
	m.clearedFields[correction.FieldOriginalValue] = struct{}{}
}

// OriginalValueCleared returns if the "original_value" field was cleared in this mutation.
func (m *CorrectionMutation) OriginalValueCleared() bool {
	_, ok := m.clearedFields[correction.FieldOriginalValue]
	return ok
}

// ResetOriginalValue resets all changes to the "original_value" field.
func (m *CorrectionMutation) ResetOriginalValue() {
	m.original_value = nil
	delete(m.clearedFields, correction.FieldOriginalValue)
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *CorrectionMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *CorrectionMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *CorrectionMutation) ResetCorrectedValue() {
	m.corrected_value = nil
}

// SetCorrectedAt sets the "corrected_at" field.
func (m *CorrectionMutation) SetCorrectedAt(t time.Time) {
	m.corrected_at = &t
}

// CorrectedAt returns the value of the "corrected_at" field in the mutation.
func (m *CorrectionMutation) CorrectedAt() (r time.Time, exists bool) {
	v := m.corrected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedAt returns the old "corrected_at" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedAt: %w", err)
	}
	return oldValue.CorrectedAt, nil
}

// ResetCorrectedAt resets all changes to the "corrected_at" field.
func (m *CorrectionMutation) ResetCorrectedAt() {
	m.corrected_at = nil
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (m *CorrectionMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[correction.FieldExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the Extraction entity was cleared.
func (m *CorrectionMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *CorrectionMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *CorrectionMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the CorrectionMutation builder.
func (m *CorrectionMutation) Where(ps ...predicate.Correction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Correction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Correction).
func (m *CorrectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrectionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.extraction != nil {
		fields = append(fields, correction.FieldExtractionID)
	}
	if m.original_value != nil {
		fields = append(fields, correction.FieldOriginalValue)
	}
	if m.corrected_value != nil {
		fields = append(fields, correction.FieldCorrectedValue)
	}
	if m.corrected_at != nil {
		fields = append(fields, correction.FieldCorrectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correction.FieldExtractionID:
		return m.ExtractionID()
	case correction.FieldOriginalValue:
		return m.OriginalValue()
	case correction.FieldCorrectedValue:
		return m.CorrectedValue()
	case correction.FieldCorrectedAt:
		return m.CorrectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correction.FieldExtractionID:
		return m.OldExtractionID(ctx)
	case correction.FieldOriginalValue:
		return m.OldOriginalValue(ctx)
	case correction.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case correction.FieldCorrectedAt:
		return m.OldCorrectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Correction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correction.FieldExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionID(v)
		return nil
	case correction.FieldOriginalValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalValue(v)
		return nil
	case correction.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case correction.FieldCorrectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Correction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(correction.FieldOriginalValue) {
		fields = append(fields, correction.FieldOriginalValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrectionMutation) ClearField(name string) error {
	switch name {
	case correction.FieldOriginalValue:
		m.ClearOriginalValue()
		return nil
	}
	return fmt.Errorf("unknown Correction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrectionMutation) ResetField(name string) error {
	switch name {
	case correction.FieldExtractionID:
		m.ResetExtractionID()
		return nil
	case correction.FieldOriginalValue:
		m.ResetOriginalValue()
		return nil
	case correction.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case correction.FieldCorrectedAt:
		m.ResetCorrectedAt()
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, correction.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case correction.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, correction.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrectionMutation) EdgeCleared(name string) bool {
	switch name {
	case correction.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrectionMutation) ClearEdge(name string) error {
	switch name {
	case correction.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown Correction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrectionMutation) ResetEdge(name string) error {
	switch name {
	case correction.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown Correction edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	status             *string
	document_type      *string
	type_confidence    *float64
	addtype_confidence *float64
	error_message      *string
	uploaded_at        *time.Time
	processed_at       *time.Time
	clearedFields      map[string]struct{}
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	details            *uuid.UUID
	cleareddetails     bool
	issues             map[uuid.UUID]struct{}
	removedissues      map[uuid.UUID]struct{}
	clearedissues      bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *DocumentMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[document.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *DocumentMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, document.FieldDocumentType)
}

// SetTypeConfidence sets the "type_confidence" field.
func (m *DocumentMutation) SetTypeConfidence(f float64) {
	m.type_confidence = &f
	m.addtype_confidence = nil
}

// TypeConfidence returns the value of the "type_confidence" field in the mutation.
func (m *DocumentMutation) TypeConfidence() (r float64, exists bool) {
	v := m.type_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeConfidence returns the old "type_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTypeConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeConfidence: %w", err)
	}
	return oldValue.TypeConfidence, nil
}

// AddTypeConfidence adds f to the "type_confidence" field.
func (m *DocumentMutation) AddTypeConfidence(f float64) {
	if m.addtype_confidence != nil {
		*m.addtype_confidence += f
	} else {
		m.addtype_confidence = &f
	}
}

// AddedTypeConfidence returns the value that was added to the "type_confidence" field in this mutation.
func (m *DocumentMutation) AddedTypeConfidence() (r float64, exists bool) {
	v := m.addtype_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearTypeConfidence clears the value of the "type_confidence" field.
func (m *DocumentMutation) ClearTypeConfidence() {
	m.type_confidence = nil
	m.addtype_confidence = nil
	m.clearedFields[document.FieldTypeConfidence] = struct{}{}
}

// TypeConfidenceCleared returns if the "type_confidence" field was cleared in this mutation.
func (m *DocumentMutation) TypeConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldTypeConfidence]
	return ok
}

// ResetTypeConfidence resets all changes to the "type_confidence" field.
func (m *DocumentMutation) ResetTypeConfidence() {
	m.type_confidence = nil
	m.addtype_confidence = nil
	delete(m.clearedFields, document.FieldTypeConfidence)
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *DocumentMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *DocumentMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *DocumentMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *DocumentMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *DocumentMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *DocumentMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *DocumentMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by ids.
func (m *DocumentMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ReceiptItem entity.
func (m *DocumentMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ReceiptItem entity was cleared.
func (m *DocumentMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ReceiptItem entity by IDs.
func (m *DocumentMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ReceiptItem entity.
func (m *DocumentMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *DocumentMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *DocumentMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// SetDetailsID sets the "details" edge to the ReceiptDetail entity by id.
func (m *DocumentMutation) SetDetailsID(id uuid.UUID) {
	m.details = &id
}

// ClearDetails clears the "details" edge to the ReceiptDetail entity.
func (m *DocumentMutation) ClearDetails() {
	m.cleareddetails = true
}

// DetailsCleared reports if the "details" edge to the ReceiptDetail entity was cleared.
func (m *DocumentMutation) DetailsCleared() bool {
	return m.cleareddetails
}

// DetailsID returns the "details" edge ID in the mutation.
func (m *DocumentMutation) DetailsID() (id uuid.UUID, exists bool) {
	if m.details != nil {
		return *m.details, true
	}
	return
}

// DetailsIDs returns the "details" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DetailsID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) DetailsIDs() (ids []uuid.UUID) {
	if id := m.details; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDetails resets all changes to the "details" edge.
func (m *DocumentMutation) ResetDetails() {
	m.details = nil
	m.cleareddetails = false
}

// AddIssueIDs adds the "issues" edge to the ValidationIssue entity by ids.
func (m *DocumentMutation) AddIssueIDs(ids ...uuid.UUID) {
	if m.issues == nil {
		m.issues = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the ValidationIssue entity.
func (m *DocumentMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the ValidationIssue entity was cleared.
func (m *DocumentMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the ValidationIssue entity by IDs.
func (m *DocumentMutation) RemoveIssueIDs(ids ...uuid.UUID) {
	if m.removedissues == nil {
		m.removedissues = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the ValidationIssue entity.
func (m *DocumentMutation) RemovedIssuesIDs() (ids []uuid.UUID) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *DocumentMutation) IssuesIDs() (ids []uuid.UUID) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *DocumentMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.type_confidence != nil {
		fields = append(fields, document.FieldTypeConfidence)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStatus:
		return m.Status()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldTypeConfidence:
		return m.TypeConfidence()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldTypeConfidence:
		return m.OldTypeConfidence(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldTypeConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeConfidence(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addtype_confidence != nil {
		fields = append(fields, document.FieldTypeConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTypeConfidence:
		return m.AddedTypeConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldTypeConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypeConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDocumentType) {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.FieldCleared(document.FieldTypeConfidence) {
		fields = append(fields, document.FieldTypeConfidence)
	}
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case document.FieldTypeConfidence:
		m.ClearTypeConfidence()
		return nil
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldTypeConfidence:
		m.ResetTypeConfidence()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.extractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	if m.items != nil {
		edges = append(edges, document.EdgeItems)
	}
	if m.details != nil {
		edges = append(edges, document.EdgeDetails)
	}
	if m.issues != nil {
		edges = append(edges, document.EdgeIssues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeDetails:
		if id := m.details; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedextractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	if m.removeditems != nil {
		edges = append(edges, document.EdgeItems)
	}
	if m.removedissues != nil {
		edges = append(edges, document.EdgeIssues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedextractions {
		edges = append(edges, document.EdgeExtractions)
	}
	if m.cleareditems {
		edges = append(edges, document.EdgeItems)
	}
	if m.cleareddetails {
		edges = append(edges, document.EdgeDetails)
	}
	if m.clearedissues {
		edges = append(edges, document.EdgeIssues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeExtractions:
		return m.clearedextractions
	case document.EdgeItems:
		return m.cleareditems
	case document.EdgeDetails:
		return m.cleareddetails
	case document.EdgeIssues:
		return m.clearedissues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeExtractions:
		m.ResetExtractions()
		return nil
	case document.EdgeItems:
		m.ResetItems()
		return nil
	case document.EdgeDetails:
		m.ResetDetails()
		return nil
	case document.EdgeIssues:
		m.ResetIssues()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	field_name          *string
	field_value         *string
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	corrections         map[uuid.UUID]struct{}
	removedcorrections  map[uuid.UUID]struct{}
	clearedcorrections  bool
	done                bool
	oldValue            func(context.Context) (*Extraction, error)
	predicates          []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id uuid.UUID) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionMutation) ResetDocumentID() {
	m.document = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractionMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractionMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractionMutation) ResetFieldName() {
	m.field_name = nil
}

// SetFieldValue sets the "field_value" field.
func (m *ExtractionMutation) SetFieldValue(s string) {
	m.field_value = &s
}

// FieldValue returns the value of the "field_value" field in the mutation.
func (m *ExtractionMutation) FieldValue() (r string, exists bool) {
	v := m.field_value
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldValue returns the old "field_value" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFieldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldValue: %w", err)
	}
	return oldValue.FieldValue, nil
}

// ClearFieldValue clears the value of the "field_value" field.
func (m *ExtractionMutation) ClearFieldValue() {
	m.field_value = nil
	m.clearedFields[extraction.FieldFieldValue] = struct{}{}
}

// FieldValueCleared returns if the "field_value" field was cleared in this mutation.
func (m *ExtractionMutation) FieldValueCleared() bool {
	_, ok := m.clearedFields[extraction.FieldFieldValue]
	return ok
}

// ResetFieldValue resets all changes to the "field_value" field.
func (m *ExtractionMutation) ResetFieldValue() {
	m.field_value = nil
	delete(m.clearedFields, extraction.FieldFieldValue)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractionMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractionMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractionMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractionMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractionMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extraction.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddCorrectionIDs adds the "corrections" edge to the Correction entity by ids.
func (m *ExtractionMutation) AddCorrectionIDs(ids ...uuid.UUID) {
	if m.corrections == nil {
		m.corrections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.corrections[ids[i]] = struct{}{}
	}
}

// ClearCorrections clears the "corrections" edge to the Correction entity.
func (m *ExtractionMutation) ClearCorrections() {
	m.clearedcorrections = true
}

// CorrectionsCleared reports if the "corrections" edge to the Correction entity was cleared.
func (m *ExtractionMutation) CorrectionsCleared() bool {
	return m.clearedcorrections
}

// RemoveCorrectionIDs removes the "corrections" edge to the Correction entity by IDs.
func (m *ExtractionMutation) RemoveCorrectionIDs(ids ...uuid.UUID) {
	if m.removedcorrections == nil {
		m.removedcorrections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.corrections, ids[i])
		m.removedcorrections[ids[i]] = struct{}{}
	}
}

// RemovedCorrections returns the removed IDs of the "corrections" edge to the Correction entity.
func (m *ExtractionMutation) RemovedCorrectionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcorrections {
		ids = append(ids, id)
	}
	return
}

// CorrectionsIDs returns the "corrections" edge IDs in the mutation.
func (m *ExtractionMutation) CorrectionsIDs() (ids []uuid.UUID) {
	for id := range m.corrections {
		ids = append(ids, id)
	}
	return
}

// ResetCorrections resets all changes to the "corrections" edge.
func (m *ExtractionMutation) ResetCorrections() {
	m.corrections = nil
	m.clearedcorrections = false
	m.removedcorrections = nil
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, extraction.FieldDocumentID)
	}
	if m.field_name != nil {
		fields = append(fields, extraction.FieldFieldName)
	}
	if m.field_value != nil {
		fields = append(fields, extraction.FieldFieldValue)
	}
	if m.confidence_score != nil {
		fields = append(fields, extraction.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldDocumentID:
		return m.DocumentID()
	case extraction.FieldFieldName:
		return m.FieldName()
	case extraction.FieldFieldValue:
		return m.FieldValue()
	case extraction.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extraction.FieldFieldName:
		return m.OldFieldName(ctx)
	case extraction.FieldFieldValue:
		return m.OldFieldValue(ctx)
	case extraction.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extraction.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extraction.FieldFieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldValue(v)
		return nil
	case extraction.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, extraction.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldFieldValue) {
		fields = append(fields, extraction.FieldFieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldFieldValue:
		m.ClearFieldValue()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extraction.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extraction.FieldFieldValue:
		m.ResetFieldValue()
		return nil
	case extraction.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extraction.EdgeDocument)
	}
	if m.corrections != nil {
		edges = append(edges, extraction.EdgeCorrections)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extraction.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.corrections))
		for id := range m.corrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcorrections != nil {
		edges = append(edges, extraction.EdgeCorrections)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.removedcorrections))
		for id := range m.removedcorrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extraction.EdgeDocument)
	}
	if m.clearedcorrections {
		edges = append(edges, extraction.EdgeCorrections)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeDocument:
		return m.cleareddocument
	case extraction.EdgeCorrections:
		return m.clearedcorrections
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeDocument:
		m.ResetDocument()
		return nil
	case extraction.EdgeCorrections:
		m.ResetCorrections()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// ReceiptDetailMutation represents an operation that mutates the ReceiptDetail nodes in the graph.
type ReceiptDetailMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	merchant_name    *string
	location         *string
	payment_method   *string
	tip_amount       *string
	subtotal         *string
	tax_amount       *string
	total_amount     *string
	cashier_name     *string
	transaction_time *string
	category         *string
	clearedFields    map[string]struct{}
	document         *uuid.UUID
	cleareddocument  bool
	done             bool
	oldValue         func(context.Context) (*ReceiptDetail, error)
	predicates       []predicate.ReceiptDetail
}

var _ ent.Mutation = (*ReceiptDetailMutation)(nil)

// receiptdetailOption allows management of the mutation configuration using functional options.
type receiptdetailOption func(*ReceiptDetailMutation)

// newReceiptDetailMutation creates new mutation for the ReceiptDetail entity.
func newReceiptDetailMutation(c config, op Op, opts ...receiptdetailOption) *ReceiptDetailMutation {
	m := &ReceiptDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptDetailID sets the ID field of the mutation.
func withReceiptDetailID(id uuid.UUID) receiptdetailOption {
	return func(m *ReceiptDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptDetail
		)
		m.oldValue = func(ctx context.Context) (*ReceiptDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptDetail sets the old ReceiptDetail of the mutation.
func withReceiptDetail(node *ReceiptDetail) receiptdetailOption {
	return func(m *ReceiptDetailMutation) {
		m.oldValue = func(context.Context) (*ReceiptDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptDetail entities.
func (m *ReceiptDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ReceiptDetailMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ReceiptDetailMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ReceiptDetailMutation) ResetDocumentID() {
	m.document = nil
}

// SetMerchantName sets the "merchant_name" field.
func (m *ReceiptDetailMutation) SetMerchantName(s string) {
	m.merchant_name = &s
}

// MerchantName returns the value of the "merchant_name" field in the mutation.
func (m *ReceiptDetailMutation) MerchantName() (r string, exists bool) {
	v := m.merchant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchantName returns the old "merchant_name" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldMerchantName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchantName: %w", err)
	}
	return oldValue.MerchantName, nil
}

// ClearMerchantName clears the value of the "merchant_name" field.
func (m *ReceiptDetailMutation) ClearMerchantName() {
	m.merchant_name = nil
	m.clearedFields[receiptdetail.FieldMerchantName] = struct{}{}
}

// MerchantNameCleared returns if the "merchant_name" field was cleared in this mutation.
func (m *ReceiptDetailMutation) MerchantNameCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldMerchantName]
	return ok
}

// ResetMerchantName resets all changes to the "merchant_name" field.
func (m *ReceiptDetailMutation) ResetMerchantName() {
	m.merchant_name = nil
	delete(m.clearedFields, receiptdetail.FieldMerchantName)
}

// SetLocation sets the "location" field.
func (m *ReceiptDetailMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ReceiptDetailMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *ReceiptDetailMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[receiptdetail.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *ReceiptDetailMutation) LocationCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *ReceiptDetailMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, receiptdetail.FieldLocation)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ReceiptDetailMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ReceiptDetailMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *ReceiptDetailMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[receiptdetail.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *ReceiptDetailMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ReceiptDetailMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, receiptdetail.FieldPaymentMethod)
}

// SetTipAmount sets the "tip_amount" field.
func (m *ReceiptDetailMutation) SetTipAmount(s string) {
	m.tip_amount = &s
}

// TipAmount returns the value of the "tip_amount" field in the mutation.
func (m *ReceiptDetailMutation) TipAmount() (r string, exists bool) {
	v := m.tip_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTipAmount returns the old "tip_amount" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldTipAmount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipAmount: %w", err)
	}
	return oldValue.TipAmount, nil
}

// ClearTipAmount clears the value of the "tip_amount" field.
func (m *ReceiptDetailMutation) ClearTipAmount() {
	m.tip_amount = nil
	m.clearedFields[receiptdetail.FieldTipAmount] = struct{}{}
}

// TipAmountCleared returns if the "tip_amount" field was cleared in this mutation.
func (m *ReceiptDetailMutation) TipAmountCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldTipAmount]
	return ok
}

// ResetTipAmount resets all changes to the "tip_amount" field.
func (m *ReceiptDetailMutation) ResetTipAmount() {
	m.tip_amount = nil
	delete(m.clearedFields, receiptdetail.FieldTipAmount)
}

// SetSubtotal sets the "subtotal" field.
func (m *ReceiptDetailMutation) SetSubtotal(s string) {
	m.subtotal = &s
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *ReceiptDetailMutation) Subtotal() (r string, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldSubtotal(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *ReceiptDetailMutation) ClearSubtotal() {
	m.subtotal = nil
	m.clearedFields[receiptdetail.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *ReceiptDetailMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *ReceiptDetailMutation) ResetSubtotal() {
	m.subtotal = nil
	delete(m.clearedFields, receiptdetail.FieldSubtotal)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *ReceiptDetailMutation) SetTaxAmount(s string) {
	m.tax_amount = &s
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *ReceiptDetailMutation) TaxAmount() (r string, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldTaxAmount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *ReceiptDetailMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.clearedFields[receiptdetail.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *ReceiptDetailMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *ReceiptDetailMutation) ResetTaxAmount() {
	m.tax_amount = nil
	delete(m.clearedFields, receiptdetail.FieldTaxAmount)
}

// SetTotalAmount sets the "total_amount" field.
func (m *ReceiptDetailMutation) SetTotalAmount(s string) {
	m.total_amount = &s
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *ReceiptDetailMutation) TotalAmount() (r string, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldTotalAmount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *ReceiptDetailMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.clearedFields[receiptdetail.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *ReceiptDetailMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *ReceiptDetailMutation) ResetTotalAmount() {
	m.total_amount = nil
	delete(m.clearedFields, receiptdetail.FieldTotalAmount)
}

// SetCashierName sets the "cashier_name" field.
func (m *ReceiptDetailMutation) SetCashierName(s string) {
	m.cashier_name = &s
}

// CashierName returns the value of the "cashier_name" field in the mutation.
func (m *ReceiptDetailMutation) CashierName() (r string, exists bool) {
	v := m.cashier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCashierName returns the old "cashier_name" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldCashierName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashierName: %w", err)
	}
	return oldValue.CashierName, nil
}

// ClearCashierName clears the value of the "cashier_name" field.
func (m *ReceiptDetailMutation) ClearCashierName() {
	m.cashier_name = nil
	m.clearedFields[receiptdetail.FieldCashierName] = struct{}{}
}

// CashierNameCleared returns if the "cashier_name" field was cleared in this mutation.
func (m *ReceiptDetailMutation) CashierNameCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldCashierName]
	return ok
}

// ResetCashierName resets all changes to the "cashier_name" field.
func (m *ReceiptDetailMutation) ResetCashierName() {
	m.cashier_name = nil
	delete(m.clearedFields, receiptdetail.FieldCashierName)
}

// SetTransactionTime sets the "transaction_time" field.
func (m *ReceiptDetailMutation) SetTransactionTime(s string) {
	m.transaction_time = &s
}

// TransactionTime returns the value of the "transaction_time" field in the mutation.
func (m *ReceiptDetailMutation) TransactionTime() (r string, exists bool) {
	v := m.transaction_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionTime returns the old "transaction_time" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldTransactionTime(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionTime: %w", err)
	}
	return oldValue.TransactionTime, nil
}

// ClearTransactionTime clears the value of the "transaction_time" field.
func (m *ReceiptDetailMutation) ClearTransactionTime() {
	m.transaction_time = nil
	m.clearedFields[receiptdetail.FieldTransactionTime] = struct{}{}
}

// TransactionTimeCleared returns if the "transaction_time" field was cleared in this mutation.
func (m *ReceiptDetailMutation) TransactionTimeCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldTransactionTime]
	return ok
}

// ResetTransactionTime resets all changes to the "transaction_time" field.
func (m *ReceiptDetailMutation) ResetTransactionTime() {
	m.transaction_time = nil
	delete(m.clearedFields, receiptdetail.FieldTransactionTime)
}

// SetCategory sets the "category" field.
func (m *ReceiptDetailMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ReceiptDetailMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ReceiptDetail entity.
// If the ReceiptDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptDetailMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ReceiptDetailMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[receiptdetail.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ReceiptDetailMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[receiptdetail.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ReceiptDetailMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, receiptdetail.FieldCategory)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ReceiptDetailMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[receiptdetail.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ReceiptDetailMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ReceiptDetailMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ReceiptDetailMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ReceiptDetailMutation builder.
func (m *ReceiptDetailMutation) Where(ps ...predicate.ReceiptDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptDetail).
func (m *ReceiptDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptDetailMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.document != nil {
		fields = append(fields, receiptdetail.FieldDocumentID)
	}
	if m.merchant_name != nil {
		fields = append(fields, receiptdetail.FieldMerchantName)
	}
	if m.location != nil {
		fields = append(fields, receiptdetail.FieldLocation)
	}
	if m.payment_method != nil {
		fields = append(fields, receiptdetail.FieldPaymentMethod)
	}
	if m.tip_amount != nil {
		fields = append(fields, receiptdetail.FieldTipAmount)
	}
	if m.subtotal != nil {
		fields = append(fields, receiptdetail.FieldSubtotal)
	}
	if m.tax_amount != nil {
		fields = append(fields, receiptdetail.FieldTaxAmount)
	}
	if m.total_amount != nil {
		fields = append(fields, receiptdetail.FieldTotalAmount)
	}
	if m.cashier_name != nil {
		fields = append(fields, receiptdetail.FieldCashierName)
	}
	if m.transaction_time != nil {
		fields = append(fields, receiptdetail.FieldTransactionTime)
	}
	if m.category != nil {
		fields = append(fields, receiptdetail.FieldCategory)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptdetail.FieldDocumentID:
		return m.DocumentID()
	case receiptdetail.FieldMerchantName:
		return m.MerchantName()
	case receiptdetail.FieldLocation:
		return m.Location()
	case receiptdetail.FieldPaymentMethod:
		return m.PaymentMethod()
	case receiptdetail.FieldTipAmount:
		return m.TipAmount()
	case receiptdetail.FieldSubtotal:
		return m.Subtotal()
	case receiptdetail.FieldTaxAmount:
		return m.TaxAmount()
	case receiptdetail.FieldTotalAmount:
		return m.TotalAmount()
	case receiptdetail.FieldCashierName:
		return m.CashierName()
	case receiptdetail.FieldTransactionTime:
		return m.TransactionTime()
	case receiptdetail.FieldCategory:
		return m.Category()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptdetail.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case receiptdetail.FieldMerchantName:
		return m.OldMerchantName(ctx)
	case receiptdetail.FieldLocation:
		return m.OldLocation(ctx)
	case receiptdetail.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case receiptdetail.FieldTipAmount:
		return m.OldTipAmount(ctx)
	case receiptdetail.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case receiptdetail.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case receiptdetail.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case receiptdetail.FieldCashierName:
		return m.OldCashierName(ctx)
	case receiptdetail.FieldTransactionTime:
		return m.OldTransactionTime(ctx)
	case receiptdetail.FieldCategory:
		return m.OldCategory(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptdetail.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case receiptdetail.FieldMerchantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchantName(v)
		return nil
	case receiptdetail.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case receiptdetail.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case receiptdetail.FieldTipAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipAmount(v)
		return nil
	case receiptdetail.FieldSubtotal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case receiptdetail.FieldTaxAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case receiptdetail.FieldTotalAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case receiptdetail.FieldCashierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashierName(v)
		return nil
	case receiptdetail.FieldTransactionTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionTime(v)
		return nil
	case receiptdetail.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptDetailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptDetailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReceiptDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receiptdetail.FieldMerchantName) {
		fields = append(fields, receiptdetail.FieldMerchantName)
	}
	if m.FieldCleared(receiptdetail.FieldLocation) {
		fields = append(fields, receiptdetail.FieldLocation)
	}
	if m.FieldCleared(receiptdetail.FieldPaymentMethod) {
		fields = append(fields, receiptdetail.FieldPaymentMethod)
	}
	if m.FieldCleared(receiptdetail.FieldTipAmount) {
		fields = append(fields, receiptdetail.FieldTipAmount)
	}
	if m.FieldCleared(receiptdetail.FieldSubtotal) {
		fields = append(fields, receiptdetail.FieldSubtotal)
	}
	if m.FieldCleared(receiptdetail.FieldTaxAmount) {
		fields = append(fields, receiptdetail.FieldTaxAmount)
	}
	if m.FieldCleared(receiptdetail.FieldTotalAmount) {
		fields = append(fields, receiptdetail.FieldTotalAmount)
	}
	if m.FieldCleared(receiptdetail.FieldCashierName) {
		fields = append(fields, receiptdetail.FieldCashierName)
	}
	if m.FieldCleared(receiptdetail.FieldTransactionTime) {
		fields = append(fields, receiptdetail.FieldTransactionTime)
	}
	if m.FieldCleared(receiptdetail.FieldCategory) {
		fields = append(fields, receiptdetail.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptDetailMutation) ClearField(name string) error {
	switch name {
	case receiptdetail.FieldMerchantName:
		m.ClearMerchantName()
		return nil
	case receiptdetail.FieldLocation:
		m.ClearLocation()
		return nil
	case receiptdetail.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case receiptdetail.FieldTipAmount:
		m.ClearTipAmount()
		return nil
	case receiptdetail.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case receiptdetail.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case receiptdetail.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case receiptdetail.FieldCashierName:
		m.ClearCashierName()
		return nil
	case receiptdetail.FieldTransactionTime:
		m.ClearTransactionTime()
		return nil
	case receiptdetail.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown ReceiptDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptDetailMutation) ResetField(name string) error {
	switch name {
	case receiptdetail.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case receiptdetail.FieldMerchantName:
		m.ResetMerchantName()
		return nil
	case receiptdetail.FieldLocation:
		m.ResetLocation()
		return nil
	case receiptdetail.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case receiptdetail.FieldTipAmount:
		m.ResetTipAmount()
		return nil
	case receiptdetail.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case receiptdetail.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case receiptdetail.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case receiptdetail.FieldCashierName:
		m.ResetCashierName()
		return nil
	case receiptdetail.FieldTransactionTime:
		m.ResetTransactionTime()
		return nil
	case receiptdetail.FieldCategory:
		m.ResetCategory()
		return nil
	}
	return fmt.Errorf("unknown ReceiptDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, receiptdetail.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptdetail.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, receiptdetail.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptdetail.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptDetailMutation) ClearEdge(name string) error {
	switch name {
	case receiptdetail.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ReceiptDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptDetailMutation) ResetEdge(name string) error {
	switch name {
	case receiptdetail.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ReceiptDetail edge %s", name)
}

// ReceiptItemMutation represents an operation that mutates the ReceiptItem nodes in the graph.
type ReceiptItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	position        *int
	addposition     *int
	item_name       *string
	quantity        *float64
	addquantity     *float64
	unit_price      *float64
	addunit_price   *float64
	total_price     *float64
	addtotal_price  *float64
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ReceiptItem, error)
	predicates      []predicate.ReceiptItem
}

var _ ent.Mutation = (*ReceiptItemMutation)(nil)

// receiptitemOption allows management of the mutation configuration using functional options.
type receiptitemOption func(*ReceiptItemMutation)

// newReceiptItemMutation creates new mutation for the ReceiptItem entity.
func newReceiptItemMutation(c config, op Op, opts ...receiptitemOption) *ReceiptItemMutation {
	m := &ReceiptItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptItemID sets the ID field of the mutation.
func withReceiptItemID(id uuid.UUID) receiptitemOption {
	return func(m *ReceiptItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptItem
		)
		m.oldValue = func(ctx context.Context) (*ReceiptItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptItem sets the old ReceiptItem of the mutation.
func withReceiptItem(node *ReceiptItem) receiptitemOption {
	return func(m *ReceiptItemMutation) {
		m.oldValue = func(context.Context) (*ReceiptItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptItem entities.
func (m *ReceiptItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ReceiptItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ReceiptItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ReceiptItemMutation) ResetDocumentID() {
	m.document = nil
}

// SetPosition sets the "position" field.
func (m *ReceiptItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ReceiptItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ReceiptItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ReceiptItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ReceiptItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetItemName sets the "item_name" field.
func (m *ReceiptItemMutation) SetItemName(s string) {
	m.item_name = &s
}

// ItemName returns the value of the "item_name" field in the mutation.
func (m *ReceiptItemMutation) ItemName() (r string, exists bool) {
	v := m.item_name
	if v == nil {
		return
	}
	return *v, true
}

// OldItemName returns the old "item_name" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldItemName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemName: %w", err)
	}
	return oldValue.ItemName, nil
}

// ResetItemName resets all changes to the "item_name" field.
func (m *ReceiptItemMutation) ResetItemName() {
	m.item_name = nil
}

// SetQuantity sets the "quantity" field.
func (m *ReceiptItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ReceiptItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *ReceiptItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ReceiptItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ReceiptItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *ReceiptItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *ReceiptItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *ReceiptItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *ReceiptItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *ReceiptItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *ReceiptItemMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *ReceiptItemMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the ReceiptItem entity.
// If the ReceiptItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptItemMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *ReceiptItemMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *ReceiptItemMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *ReceiptItemMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ReceiptItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[receiptitem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ReceiptItemMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ReceiptItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ReceiptItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ReceiptItemMutation builder.
func (m *ReceiptItemMutation) Where(ps ...predicate.ReceiptItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptItem).
func (m *ReceiptItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, receiptitem.FieldDocumentID)
	}
	if m.position != nil {
		fields = append(fields, receiptitem.FieldPosition)
	}
	if m.item_name != nil {
		fields = append(fields, receiptitem.FieldItemName)
	}
	if m.quantity != nil {
		fields = append(fields, receiptitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, receiptitem.FieldUnitPrice)
	}
	if m.total_price != nil {
		fields = append(fields, receiptitem.FieldTotalPrice)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptitem.FieldDocumentID:
		return m.DocumentID()
	case receiptitem.FieldPosition:
		return m.Position()
	case receiptitem.FieldItemName:
		return m.ItemName()
	case receiptitem.FieldQuantity:
		return m.Quantity()
	case receiptitem.FieldUnitPrice:
		return m.UnitPrice()
	case receiptitem.FieldTotalPrice:
		return m.TotalPrice()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptitem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case receiptitem.FieldPosition:
		return m.OldPosition(ctx)
	case receiptitem.FieldItemName:
		return m.OldItemName(ctx)
	case receiptitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case receiptitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case receiptitem.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptitem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case receiptitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case receiptitem.FieldItemName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemName(v)
		return nil
	case receiptitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case receiptitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case receiptitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, receiptitem.FieldPosition)
	}
	if m.addquantity != nil {
		fields = append(fields, receiptitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, receiptitem.FieldUnitPrice)
	}
	if m.addtotal_price != nil {
		fields = append(fields, receiptitem.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receiptitem.FieldPosition:
		return m.AddedPosition()
	case receiptitem.FieldQuantity:
		return m.AddedQuantity()
	case receiptitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case receiptitem.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receiptitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case receiptitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case receiptitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case receiptitem.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReceiptItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptItemMutation) ResetField(name string) error {
	switch name {
	case receiptitem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case receiptitem.FieldPosition:
		m.ResetPosition()
		return nil
	case receiptitem.FieldItemName:
		m.ResetItemName()
		return nil
	case receiptitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case receiptitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case receiptitem.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, receiptitem.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptitem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, receiptitem.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptItemMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptitem.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptItemMutation) ClearEdge(name string) error {
	switch name {
	case receiptitem.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptItemMutation) ResetEdge(name string) error {
	switch name {
	case receiptitem.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ReceiptItem edge %s", name)
}

// ValidationIssueMutation represents an operation that mutates the ValidationIssue nodes in the graph.
type ValidationIssueMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	position        *int
	addposition     *int
	issue_type      *string
	severity        *string
	description     *string
	acknowledged    *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ValidationIssue, error)
	predicates      []predicate.ValidationIssue
}

var _ ent.Mutation = (*ValidationIssueMutation)(nil)

// validationissueOption allows management of the mutation configuration using functional options.
type validationissueOption func(*ValidationIssueMutation)

// newValidationIssueMutation creates new mutation for the ValidationIssue entity.
func newValidationIssueMutation(c config, op Op, opts ...validationissueOption) *ValidationIssueMutation {
	m := &ValidationIssueMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationIssueID sets the ID field of the mutation.
func withValidationIssueID(id uuid.UUID) validationissueOption {
	return func(m *ValidationIssueMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationIssue
		)
		m.oldValue = func(ctx context.Context) (*ValidationIssue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationIssue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationIssue sets the old ValidationIssue of the mutation.
func withValidationIssue(node *ValidationIssue) validationissueOption {
	return func(m *ValidationIssueMutation) {
		m.oldValue = func(context.Context) (*ValidationIssue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationIssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationIssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationIssue entities.
func (m *ValidationIssueMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationIssueMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationIssueMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationIssue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ValidationIssueMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ValidationIssueMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ValidationIssueMutation) ResetDocumentID() {
	m.document = nil
}

// SetPosition sets the "position" field.
func (m *ValidationIssueMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ValidationIssueMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ValidationIssueMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ValidationIssueMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ValidationIssueMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetIssueType sets the "issue_type" field.
func (m *ValidationIssueMutation) SetIssueType(s string) {
	m.issue_type = &s
}

// IssueType returns the value of the "issue_type" field in the mutation.
func (m *ValidationIssueMutation) IssueType() (r string, exists bool) {
	v := m.issue_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueType returns the old "issue_type" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldIssueType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueType: %w", err)
	}
	return oldValue.IssueType, nil
}

// ResetIssueType resets all changes to the "issue_type" field.
func (m *ValidationIssueMutation) ResetIssueType() {
	m.issue_type = nil
}

// SetSeverity sets the "severity" field.
func (m *ValidationIssueMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ValidationIssueMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ValidationIssueMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *ValidationIssueMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ValidationIssueMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ValidationIssueMutation) ResetDescription() {
	m.description = nil
}

// SetAcknowledged sets the "acknowledged" field.
func (m *ValidationIssueMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *ValidationIssueMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *ValidationIssueMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationIssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationIssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationIssue entity.
// If the ValidationIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationIssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationIssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ValidationIssueMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[validationissue.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ValidationIssueMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ValidationIssueMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ValidationIssueMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ValidationIssueMutation builder.
func (m *ValidationIssueMutation) Where(ps ...predicate.ValidationIssue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationIssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationIssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationIssue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationIssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationIssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationIssue).
func (m *ValidationIssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationIssueMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document != nil {
		fields = append(fields, validationissue.FieldDocumentID)
	}
	if m.position != nil {
		fields = append(fields, validationissue.FieldPosition)
	}
	if m.issue_type != nil {
		fields = append(fields, validationissue.FieldIssueType)
	}
	if m.severity != nil {
		fields = append(fields, validationissue.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, validationissue.FieldDescription)
	}
	if m.acknowledged != nil {
		fields = append(fields, validationissue.FieldAcknowledged)
	}
	if m.created_at != nil {
		fields = append(fields, validationissue.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationIssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationissue.FieldDocumentID:
		return m.DocumentID()
	case validationissue.FieldPosition:
		return m.Position()
	case validationissue.FieldIssueType:
		return m.IssueType()
	case validationissue.FieldSeverity:
		return m.Severity()
	case validationissue.FieldDescription:
		return m.Description()
	case validationissue.FieldAcknowledged:
		return m.Acknowledged()
	case validationissue.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationIssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationissue.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case validationissue.FieldPosition:
		return m.OldPosition(ctx)
	case validationissue.FieldIssueType:
		return m.OldIssueType(ctx)
	case validationissue.FieldSeverity:
		return m.OldSeverity(ctx)
	case validationissue.FieldDescription:
		return m.OldDescription(ctx)
	case validationissue.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case validationissue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationIssue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationIssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationissue.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case validationissue.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case validationissue.FieldIssueType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueType(v)
		return nil
	case validationissue.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case validationissue.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case validationissue.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case validationissue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationIssue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationIssueMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, validationissue.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationIssueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationissue.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationIssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationissue.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationIssue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationIssueMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationIssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationIssueMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ValidationIssue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationIssueMutation) ResetField(name string) error {
	switch name {
	case validationissue.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case validationissue.FieldPosition:
		m.ResetPosition()
		return nil
	case validationissue.FieldIssueType:
		m.ResetIssueType()
		return nil
	case validationissue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case validationissue.FieldDescription:
		m.ResetDescription()
		return nil
	case validationissue.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case validationissue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationIssue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationIssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, validationissue.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationIssueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationissue.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationIssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationIssueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationIssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, validationissue.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationIssueMutation) EdgeCleared(name string) bool {
	switch name {
	case validationissue.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationIssueMutation) ClearEdge(name string) error {
	switch name {
	case validationissue.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ValidationIssue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationIssueMutation) ResetEdge(name string) error {
	switch name {
	case validationissue.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ValidationIssue edge %s", name)
}
