// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tobi-akande/expense-scanner/gen/ent/batch"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/document"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptdetail"
	"github.com/tobi-akande/expense-scanner/gen/ent/receiptitem"
	"github.com/tobi-akande/expense-scanner/gen/ent/validationissue"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Batch is the client for interacting with the Batch builders.
	Batch *BatchClient
	// Correction is the client for interacting with the Correction builders.
	Correction *CorrectionClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// ReceiptDetail is the client for interacting with the ReceiptDetail builders.
	ReceiptDetail *ReceiptDetailClient
	// ReceiptItem is the client for interacting with the ReceiptItem builders.
	ReceiptItem *ReceiptItemClient
	// ValidationIssue is the client for interacting with the ValidationIssue builders.
	ValidationIssue *ValidationIssueClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Batch = NewBatchClient(c.config)
	c.Correction = NewCorrectionClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.ReceiptDetail = NewReceiptDetailClient(c.config)
	c.ReceiptItem = NewReceiptItemClient(c.config)
	c.ValidationIssue = NewValidationIssueClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Batch:           NewBatchClient(cfg),
		Correction:      NewCorrectionClient(cfg),
		Document:        NewDocumentClient(cfg),
		Extraction:      NewExtractionClient(cfg),
		ReceiptDetail:   NewReceiptDetailClient(cfg),
		ReceiptItem:     NewReceiptItemClient(cfg),
		ValidationIssue: NewValidationIssueClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Batch:           NewBatchClient(cfg),
		Correction:      NewCorrectionClient(cfg),
		Document:        NewDocumentClient(cfg),
		Extraction:      NewExtractionClient(cfg),
		ReceiptDetail:   NewReceiptDetailClient(cfg),
		ReceiptItem:     NewReceiptItemClient(cfg),
		ValidationIssue: NewValidationIssueClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Batch.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Batch, c.Correction, c.Document, c.Extraction, c.ReceiptDetail, c.ReceiptItem,
		c.ValidationIssue,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Batch, c.Correction, c.Document, c.Extraction, c.ReceiptDetail, c.ReceiptItem,
		c.ValidationIssue,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BatchMutation:
		return c.Batch.mutate(ctx, m)
	case *CorrectionMutation:
		return c.Correction.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *ReceiptDetailMutation:
		return c.ReceiptDetail.mutate(ctx, m)
	case *ReceiptItemMutation:
		return c.ReceiptItem.mutate(ctx, m)
	case *ValidationIssueMutation:
		return c.ValidationIssue.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BatchClient is a client for the Batch schema.
type BatchClient struct {
	config
}

// NewBatchClient returns a client for the Batch from the given config.
func NewBatchClient(c config) *BatchClient {
	return &BatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batch.Hooks(f(g(h())))`.
func (c *BatchClient) Use(hooks ...Hook) {
	c.hooks.Batch = append(c.hooks.Batch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batch.Intercept(f(g(h())))`.
func (c *BatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Batch = append(c.inters.Batch, interceptors...)
}

// Create returns a builder for creating a Batch entity.
func (c *BatchClient) Create() *BatchCreate {
	mutation := newBatchMutation(c.config, OpCreate)
	return &BatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Batch entities.
func (c *BatchClient) CreateBulk(builders ...*BatchCreate) *BatchCreateBulk {
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchClient) MapCreateBulk(slice any, setFunc func(*BatchCreate, int)) *BatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchCreateBulk{err: fmt.Errorf("calling to BatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Batch.
func (c *BatchClient) Update() *BatchUpdate {
	mutation := newBatchMutation(c.config, OpUpdate)
	return &BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchClient) UpdateOne(_m *Batch) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatch(_m))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchClient) UpdateOneID(id uuid.UUID) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatchID(id))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Batch.
func (c *BatchClient) Delete() *BatchDelete {
	mutation := newBatchMutation(c.config, OpDelete)
	return &BatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchClient) DeleteOne(_m *Batch) *BatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchClient) DeleteOneID(id uuid.UUID) *BatchDeleteOne {
	builder := c.Delete().Where(batch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchDeleteOne{builder}
}

// Query returns a query builder for Batch.
func (c *BatchClient) Query() *BatchQuery {
	return &BatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Batch entity by its id.
func (c *BatchClient) Get(ctx context.Context, id uuid.UUID) (*Batch, error) {
	return c.Query().Where(batch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchClient) GetX(ctx context.Context, id uuid.UUID) *Batch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BatchClient) Hooks() []Hook {
	return c.hooks.Batch
}

// Interceptors returns the client interceptors.
func (c *BatchClient) Interceptors() []Interceptor {
	return c.inters.Batch
}

func (c *BatchClient) mutate(ctx context.Context, m *BatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Batch mutation op: %q", m.Op())
	}
}

// CorrectionClient is a client for the Correction schema.
type CorrectionClient struct {
	config
}

// NewCorrectionClient returns a client for the Correction from the given config.
func NewCorrectionClient(c config) *CorrectionClient {
	return &CorrectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `correction.Hooks(f(g(h())))`.
func (c *CorrectionClient) Use(hooks ...Hook) {
	c.hooks.Correction = append(c.hooks.Correction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `correction.Intercept(f(g(h())))`.
func (c *CorrectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Correction = append(c.inters.Correction, interceptors...)
}

// Create returns a builder for creating a Correction entity.
func (c *CorrectionClient) Create() *CorrectionCreate {
	mutation := newCorrectionMutation(c.config, OpCreate)
	return &CorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Correction entities.
func (c *CorrectionClient) CreateBulk(builders ...*CorrectionCreate) *CorrectionCreateBulk {
	return &CorrectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CorrectionClient) MapCreateBulk(slice any, setFunc func(*CorrectionCreate, int)) *CorrectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CorrectionCreateBulk{err: fmt.Errorf("calling to CorrectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CorrectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CorrectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Correction.
func (c *CorrectionClient) Update() *CorrectionUpdate {
	mutation := newCorrectionMutation(c.config, OpUpdate)
	return &CorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CorrectionClient) UpdateOne(_m *Correction) *CorrectionUpdateOne {
	mutation := newCorrectionMutation(c.config, OpUpdateOne, withCorrection(_m))
	return &CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CorrectionClient) UpdateOneID(id uuid.UUID) *CorrectionUpdateOne {
	mutation := newCorrectionMutation(c.config, OpUpdateOne, withCorrectionID(id))
	return &CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Correction.
func (c *CorrectionClient) Delete() *CorrectionDelete {
	mutation := newCorrectionMutation(c.config, OpDelete)
	return &CorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CorrectionClient) DeleteOne(_m *Correction) *CorrectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CorrectionClient) DeleteOneID(id uuid.UUID) *CorrectionDeleteOne {
	builder := c.Delete().Where(correction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CorrectionDeleteOne{builder}
}

// Query returns a query builder for Correction.
func (c *CorrectionClient) Query() *CorrectionQuery {
	return &CorrectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCorrection},
		inters: c.Interceptors(),
	}
}

// Get returns a Correction entity by its id.
func (c *CorrectionClient) Get(ctx context.Context, id uuid.UUID) (*Correction, error) {
	return c.Query().Where(correction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CorrectionClient) GetX(ctx context.Context, id uuid.UUID) *Correction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a Correction.
func (c *CorrectionClient) QueryExtraction(_m *Correction) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(correction.Table, correction.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, correction.ExtractionTable, correction.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CorrectionClient) Hooks() []Hook {
	return c.hooks.Correction
}

// Interceptors returns the client interceptors.
func (c *CorrectionClient) Interceptors() []Interceptor {
	return c.inters.Correction
}

func (c *CorrectionClient) mutate(ctx context.Context, m *CorrectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Correction mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtractions queries the extractions edge of a Document.
func (c *DocumentClient) QueryExtractions(_m *Document) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ExtractionsTable, document.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Document.
func (c *DocumentClient) QueryItems(_m *Document) *ReceiptItemQuery {
	query := (&ReceiptItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(receiptitem.Table, receiptitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ItemsTable, document.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDetails queries the details edge of a Document.
func (c *DocumentClient) QueryDetails(_m *Document) *ReceiptDetailQuery {
	query := (&ReceiptDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(receiptdetail.Table, receiptdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.DetailsTable, document.DetailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIssues queries the issues edge of a Document.
func (c *DocumentClient) QueryIssues(_m *Document) *ValidationIssueQuery {
	query := (&ValidationIssueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(validationissue.Table, validationissue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.IssuesTable, document.IssuesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id uuid.UUID) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id uuid.UUID) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id uuid.UUID) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Extraction.
func (c *ExtractionClient) QueryDocument(_m *Extraction) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.DocumentTable, extraction.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCorrections queries the corrections edge of a Extraction.
func (c *ExtractionClient) QueryCorrections(_m *Extraction) *CorrectionQuery {
	query := (&CorrectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(correction.Table, correction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extraction.CorrectionsTable, extraction.CorrectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
	}
}

// ReceiptDetailClient is a client for the ReceiptDetail schema.
type ReceiptDetailClient struct {
	config
}

// NewReceiptDetailClient returns a client for the ReceiptDetail from the given config.
func NewReceiptDetailClient(c config) *ReceiptDetailClient {
	return &ReceiptDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptdetail.Hooks(f(g(h())))`.
func (c *ReceiptDetailClient) Use(hooks ...Hook) {
	c.hooks.ReceiptDetail = append(c.hooks.ReceiptDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptdetail.Intercept(f(g(h())))`.
func (c *ReceiptDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptDetail = append(c.inters.ReceiptDetail, interceptors...)
}

// Create returns a builder for creating a ReceiptDetail entity.
func (c *ReceiptDetailClient) Create() *ReceiptDetailCreate {
	mutation := newReceiptDetailMutation(c.config, OpCreate)
	return &ReceiptDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptDetail entities.
func (c *ReceiptDetailClient) CreateBulk(builders ...*ReceiptDetailCreate) *ReceiptDetailCreateBulk {
	return &ReceiptDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptDetailClient) MapCreateBulk(slice any, setFunc func(*ReceiptDetailCreate, int)) *ReceiptDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptDetailCreateBulk{err: fmt.Errorf("calling to ReceiptDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptDetail.
func (c *ReceiptDetailClient) Update() *ReceiptDetailUpdate {
	mutation := newReceiptDetailMutation(c.config, OpUpdate)
	return &ReceiptDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptDetailClient) UpdateOne(_m *ReceiptDetail) *ReceiptDetailUpdateOne {
	mutation := newReceiptDetailMutation(c.config, OpUpdateOne, withReceiptDetail(_m))
	return &ReceiptDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptDetailClient) UpdateOneID(id uuid.UUID) *ReceiptDetailUpdateOne {
	mutation := newReceiptDetailMutation(c.config, OpUpdateOne, withReceiptDetailID(id))
	return &ReceiptDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptDetail.
func (c *ReceiptDetailClient) Delete() *ReceiptDetailDelete {
	mutation := newReceiptDetailMutation(c.config, OpDelete)
	return &ReceiptDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptDetailClient) DeleteOne(_m *ReceiptDetail) *ReceiptDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptDetailClient) DeleteOneID(id uuid.UUID) *ReceiptDetailDeleteOne {
	builder := c.Delete().Where(receiptdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDetailDeleteOne{builder}
}

// Query returns a query builder for ReceiptDetail.
func (c *ReceiptDetailClient) Query() *ReceiptDetailQuery {
	return &ReceiptDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptDetail entity by its id.
func (c *ReceiptDetailClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptDetail, error) {
	return c.Query().Where(receiptdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptDetailClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ReceiptDetail.
func (c *ReceiptDetailClient) QueryDocument(_m *ReceiptDetail) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptdetail.Table, receiptdetail.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, receiptdetail.DocumentTable, receiptdetail.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptDetailClient) Hooks() []Hook {
	return c.hooks.ReceiptDetail
}

// Interceptors returns the client interceptors.
func (c *ReceiptDetailClient) Interceptors() []Interceptor {
	return c.inters.ReceiptDetail
}

func (c *ReceiptDetailClient) mutate(ctx context.Context, m *ReceiptDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptDetail mutation op: %q", m.Op())
	}
}

// ReceiptItemClient is a client for the ReceiptItem schema.
type ReceiptItemClient struct {
	config
}

// NewReceiptItemClient returns a client for the ReceiptItem from the given config.
func NewReceiptItemClient(c config) *ReceiptItemClient {
	return &ReceiptItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptitem.Hooks(f(g(h())))`.
func (c *ReceiptItemClient) Use(hooks ...Hook) {
	c.hooks.ReceiptItem = append(c.hooks.ReceiptItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptitem.Intercept(f(g(h())))`.
func (c *ReceiptItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptItem = append(c.inters.ReceiptItem, interceptors...)
}

// Create returns a builder for creating a ReceiptItem entity.
func (c *ReceiptItemClient) Create() *ReceiptItemCreate {
	mutation := newReceiptItemMutation(c.config, OpCreate)
	return &ReceiptItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptItem entities.
func (c *ReceiptItemClient) CreateBulk(builders ...*ReceiptItemCreate) *ReceiptItemCreateBulk {
	return &ReceiptItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptItemClient) MapCreateBulk(slice any, setFunc func(*ReceiptItemCreate, int)) *ReceiptItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptItemCreateBulk{err: fmt.Errorf("calling to ReceiptItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptItem.
func (c *ReceiptItemClient) Update() *ReceiptItemUpdate {
	mutation := newReceiptItemMutation(c.config, OpUpdate)
	return &ReceiptItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptItemClient) UpdateOne(_m *ReceiptItem) *ReceiptItemUpdateOne {
	mutation := newReceiptItemMutation(c.config, OpUpdateOne, withReceiptItem(_m))
	return &ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptItemClient) UpdateOneID(id uuid.UUID) *ReceiptItemUpdateOne {
	mutation := newReceiptItemMutation(c.config, OpUpdateOne, withReceiptItemID(id))
	return &ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptItem.
func (c *ReceiptItemClient) Delete() *ReceiptItemDelete {
	mutation := newReceiptItemMutation(c.config, OpDelete)
	return &ReceiptItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptItemClient) DeleteOne(_m *ReceiptItem) *ReceiptItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptItemClient) DeleteOneID(id uuid.UUID) *ReceiptItemDeleteOne {
	builder := c.Delete().Where(receiptitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptItemDeleteOne{builder}
}

// Query returns a query builder for ReceiptItem.
func (c *ReceiptItemClient) Query() *ReceiptItemQuery {
	return &ReceiptItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptItem entity by its id.
func (c *ReceiptItemClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptItem, error) {
	return c.Query().Where(receiptitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptItemClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ReceiptItem.
func (c *ReceiptItemClient) QueryDocument(_m *ReceiptItem) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptitem.Table, receiptitem.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptitem.DocumentTable, receiptitem.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptItemClient) Hooks() []Hook {
	return c.hooks.ReceiptItem
}

// Interceptors returns the client interceptors.
func (c *ReceiptItemClient) Interceptors() []Interceptor {
	return c.inters.ReceiptItem
}

func (c *ReceiptItemClient) mutate(ctx context.Context, m *ReceiptItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptItem mutation op: %q", m.Op())
	}
}

// ValidationIssueClient is a client for the ValidationIssue schema.
type ValidationIssueClient struct {
	config
}

// NewValidationIssueClient returns a client for the ValidationIssue from the given config.
func NewValidationIssueClient(c config) *ValidationIssueClient {
	return &ValidationIssueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationissue.Hooks(f(g(h())))`.
func (c *ValidationIssueClient) Use(hooks ...Hook) {
	c.hooks.ValidationIssue = append(c.hooks.ValidationIssue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationissue.Intercept(f(g(h())))`.
func (c *ValidationIssueClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationIssue = append(c.inters.ValidationIssue, interceptors...)
}

// Create returns a builder for creating a ValidationIssue entity.
func (c *ValidationIssueClient) Create() *ValidationIssueCreate {
	mutation := newValidationIssueMutation(c.config, OpCreate)
	return &ValidationIssueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationIssue entities.
func (c *ValidationIssueClient) CreateBulk(builders ...*ValidationIssueCreate) *ValidationIssueCreateBulk {
	return &ValidationIssueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationIssueClient) MapCreateBulk(slice any, setFunc func(*ValidationIssueCreate, int)) *ValidationIssueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationIssueCreateBulk{err: fmt.Errorf("calling to ValidationIssueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationIssueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationIssueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationIssue.
func (c *ValidationIssueClient) Update() *ValidationIssueUpdate {
	mutation := newValidationIssueMutation(c.config, OpUpdate)
	return &ValidationIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationIssueClient) UpdateOne(_m *ValidationIssue) *ValidationIssueUpdateOne {
	mutation := newValidationIssueMutation(c.config, OpUpdateOne, withValidationIssue(_m))
	return &ValidationIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationIssueClient) UpdateOneID(id uuid.UUID) *ValidationIssueUpdateOne {
	mutation := newValidationIssueMutation(c.config, OpUpdateOne, withValidationIssueID(id))
	return &ValidationIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationIssue.
func (c *ValidationIssueClient) Delete() *ValidationIssueDelete {
	mutation := newValidationIssueMutation(c.config, OpDelete)
	return &ValidationIssueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationIssueClient) DeleteOne(_m *ValidationIssue) *ValidationIssueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationIssueClient) DeleteOneID(id uuid.UUID) *ValidationIssueDeleteOne {
	builder := c.Delete().Where(validationissue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationIssueDeleteOne{builder}
}

// Query returns a query builder for ValidationIssue.
func (c *ValidationIssueClient) Query() *ValidationIssueQuery {
	return &ValidationIssueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationIssue},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationIssue entity by its id.
func (c *ValidationIssueClient) Get(ctx context.Context, id uuid.UUID) (*ValidationIssue, error) {
	return c.Query().Where(validationissue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationIssueClient) GetX(ctx context.Context, id uuid.UUID) *ValidationIssue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ValidationIssue.
func (c *ValidationIssueClient) QueryDocument(_m *ValidationIssue) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationissue.Table, validationissue.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationissue.DocumentTable, validationissue.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationIssueClient) Hooks() []Hook {
	return c.hooks.ValidationIssue
}

// Interceptors returns the client interceptors.
func (c *ValidationIssueClient) Interceptors() []Interceptor {
	return c.inters.ValidationIssue
}

func (c *ValidationIssueClient) mutate(ctx context.Context, m *ValidationIssueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationIssueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationIssueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationIssue mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Batch, Correction, Document, Extraction, ReceiptDetail, ReceiptItem,
		ValidationIssue []ent.Hook
	}
	inters struct {
		Batch, Correction, Document, Extraction, ReceiptDetail, ReceiptItem,
		ValidationIssue []ent.Interceptor
	}
)
