// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldID, id))
}

// ExtractionID applies equality check predicate on the "extraction_id" field. It's identical to ExtractionIDEQ.
func ExtractionID(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldExtractionID, v))
}

// OriginalValue applies equality check predicate on the "original_value" field. It's identical to OriginalValueEQ.
func OriginalValue(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldOriginalValue, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedAt applies equality check predicate on the "corrected_at" field. It's identical to CorrectedAtEQ.
func CorrectedAt(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedAt, v))
}

// ExtractionIDEQ applies the EQ predicate on the "extraction_id" field.
func ExtractionIDEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldExtractionID, v))
}

// ExtractionIDNEQ applies the NEQ predicate on the "extraction_id" field.
func ExtractionIDNEQ(v uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldExtractionID, v))
}

// ExtractionIDIn applies the In predicate on the "extraction_id" field.
func ExtractionIDIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldExtractionID, vs...))
}

// ExtractionIDNotIn applies the NotIn predicate on the "extraction_id" field.
func ExtractionIDNotIn(vs ...uuid.UUID) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldExtractionID, vs...))
}

// OriginalValueEQ applies the EQ predicate on the "original_value" field.
func OriginalValueEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldOriginalValue, v))
}

// OriginalValueNEQ applies the NEQ predicate on the "original_value" field.
func OriginalValueNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldOriginalValue, v))
}

// OriginalValueIn applies the In predicate on the "original_value" field.
func OriginalValueIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldOriginalValue, vs...))
}

// OriginalValueNotIn applies the NotIn predicate on the "original_value" field.
func OriginalValueNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldOriginalValue, vs...))
}

// OriginalValueGT applies the GT predicate on the "original_value" field.
func OriginalValueGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldOriginalValue, v))
}

// OriginalValueGTE applies the GTE predicate on the "original_value" field.
func OriginalValueGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldOriginalValue, v))
}

// OriginalValueLT applies the LT predicate on the "original_value" field.
func OriginalValueLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldOriginalValue, v))
}

// OriginalValueLTE applies the LTE predicate on the "original_value" field.
func OriginalValueLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldOriginalValue, v))
}

// OriginalValueContains applies the Contains predicate on the "original_value" field.
func OriginalValueContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldOriginalValue, v))
}

// OriginalValueHasPrefix applies the HasPrefix predicate on the "original_value" field.
func OriginalValueHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldOriginalValue, v))
}

// OriginalValueHasSuffix applies the HasSuffix predicate on the "original_value" field.
func OriginalValueHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldOriginalValue, v))
}

// OriginalValueIsNil applies the IsNil predicate on the "original_value" field.
func OriginalValueIsNil() predicate.Correction {
	return predicate.Correction(sql.FieldIsNull(FieldOriginalValue))
}

// OriginalValueNotNil applies the NotNil predicate on the "original_value" field.
func OriginalValueNotNil() predicate.Correction {
	return predicate.Correction(sql.FieldNotNull(FieldOriginalValue))
}

// OriginalValueEqualFold applies the EqualFold predicate on the "original_value" field.
func OriginalValueEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldOriginalValue, v))
}

// OriginalValueContainsFold applies the ContainsFold predicate on the "original_value" field.
func OriginalValueContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldOriginalValue, v))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.Correction {
	return predicate.Correction(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.Correction {
	return predicate.Correction(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CorrectedAtEQ applies the EQ predicate on the "corrected_at" field.
func CorrectedAtEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldEQ(FieldCorrectedAt, v))
}

// CorrectedAtNEQ applies the NEQ predicate on the "corrected_at" field.
func CorrectedAtNEQ(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNEQ(FieldCorrectedAt, v))
}

// CorrectedAtIn applies the In predicate on the "corrected_at" field.
func CorrectedAtIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldIn(FieldCorrectedAt, vs...))
}

// CorrectedAtNotIn applies the NotIn predicate on the "corrected_at" field.
func CorrectedAtNotIn(vs ...time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldNotIn(FieldCorrectedAt, vs...))
}

// CorrectedAtGT applies the GT predicate on the "corrected_at" field.
func CorrectedAtGT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGT(FieldCorrectedAt, v))
}

// CorrectedAtGTE applies the GTE predicate on the "corrected_at" field.
func CorrectedAtGTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldGTE(FieldCorrectedAt, v))
}

// CorrectedAtLT applies the LT predicate on the "corrected_at" field.
func CorrectedAtLT(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLT(FieldCorrectedAt, v))
}

// CorrectedAtLTE applies the LTE predicate on the "corrected_at" field.
func CorrectedAtLTE(v time.Time) predicate.Correction {
	return predicate.Correction(sql.FieldLTE(FieldCorrectedAt, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.Correction {
	return predicate.Correction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.Extraction) predicate.Correction {
	return predicate.Correction(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Correction) predicate.Correction {
	return predicate.Correction(sql.NotPredicates(p))
}
