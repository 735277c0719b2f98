// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the correction type in the database.
	Label = "correction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExtractionID holds the string denoting the extraction_id field in the database.
	FieldExtractionID = "extraction_id"
	// FieldOriginalValue holds the string denoting the original_value field in the database.
	FieldOriginalValue = "original_value"
	// FieldCorrectedValue holds the string denoting the corrected_value field in the database.
	FieldCorrectedValue = "corrected_value"
	// FieldCorrectedAt holds the string denoting the corrected_at field in the database.
	FieldCorrectedAt = "corrected_at"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// Table holds the table name of the correction in the database.
	Table = "corrections"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "corrections"
	// ExtractionInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionInverseTable = "extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "extraction_id"
)

// Columns holds all SQL columns for correction fields.
var Columns = []string{
	FieldID,
	FieldExtractionID,
	FieldOriginalValue,
	FieldCorrectedValue,
	FieldCorrectedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CorrectedValueValidator is a validator for the "corrected_value" field. It is called by the builders before save.
	CorrectedValueValidator func(string) error
	// DefaultCorrectedAt holds the default value on creation for the "corrected_at" field.
	DefaultCorrectedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Correction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExtractionID orders the results by the extraction_id field.
func ByExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionID, opts...).ToFunc()
}

// ByOriginalValue orders the results by the original_value field.
func ByOriginalValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalValue, opts...).ToFunc()
}

// ByCorrectedValue orders the results by the corrected_value field.
func ByCorrectedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedValue, opts...).ToFunc()
}

// ByCorrectedAt orders the results by the corrected_at field.
func ByCorrectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedAt, opts...).ToFunc()
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
	)
}
