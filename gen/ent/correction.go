// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/correction"
	"github.com/tobi-akande/expense-scanner/gen/ent/extraction"
)

// Correction is the model entity for the Correction schema.
type Correction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExtractionID holds the value of the "extraction_id" field.
	ExtractionID uuid.UUID `json:"extraction_id,omitempty"`
	// OriginalValue holds the value of the "original_value" field.
	OriginalValue *string `json:"original_value,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue string `json:"corrected_value,omitempty"`
	// CorrectedAt holds the value of the "corrected_at" field.
	CorrectedAt time.Time `json:"corrected_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CorrectionQuery when eager-loading is set.
	Edges        CorrectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CorrectionEdges holds the relations/edges for other nodes in the graph.
type CorrectionEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *Extraction `json:"extraction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CorrectionEdges) ExtractionOrErr() (*Extraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Correction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correction.FieldOriginalValue, correction.FieldCorrectedValue:
			values[i] = new(sql.NullString)
		case correction.FieldCorrectedAt:
			values[i] = new(sql.NullTime)
		case correction.FieldID, correction.FieldExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Correction fields.
func (_m *Correction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case correction.FieldExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_id", values[i])
			} else if value != nil {
				_m.ExtractionID = *value
			}
		case correction.FieldOriginalValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_value", values[i])
			} else if value.Valid {
				_m.OriginalValue = new(string)
				*_m.OriginalValue = value.String
			}
		case correction.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = value.String
			}
		case correction.FieldCorrectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_at", values[i])
			} else if value.Valid {
				_m.CorrectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Correction.
// This includes values selected through modifiers, order, etc.
func (_m *Correction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the Correction entity.
func (_m *Correction) QueryExtraction() *ExtractionQuery {
	return NewCorrectionClient(_m.config).QueryExtraction(_m)
}

// Update returns a builder for updating this Correction.
// Note that you need to call Correction.Unwrap() before calling this method if this Correction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Correction) Update() *CorrectionUpdateOne {
	return NewCorrectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Correction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Correction) Unwrap() *Correction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Correction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Correction) String() string {
	var builder strings.Builder
	builder.WriteString("Correction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionID))
	builder.WriteString(", ")
	if v := _m.OriginalValue; v != nil {
		builder.WriteString("original_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("corrected_value=")
	builder.WriteString(_m.CorrectedValue)
	builder.WriteString(", ")
	builder.WriteString("corrected_at=")
	builder.WriteString(_m.CorrectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Corrections is a parsable slice of Correction.
type Corrections []*Correction
