// Code generated by ent, DO NOT EDIT.

package validationissue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tobi-akande/expense-scanner/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldDocumentID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldPosition, v))
}

// IssueType applies equality check predicate on the "issue_type" field. It's identical to IssueTypeEQ.
func IssueType(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldIssueType, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldSeverity, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldDescription, v))
}

// Acknowledged applies equality check predicate on the "acknowledged" field. It's identical to AcknowledgedEQ.
func Acknowledged(v bool) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldAcknowledged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldPosition, v))
}

// IssueTypeEQ applies the EQ predicate on the "issue_type" field.
func IssueTypeEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldIssueType, v))
}

// IssueTypeNEQ applies the NEQ predicate on the "issue_type" field.
func IssueTypeNEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldIssueType, v))
}

// IssueTypeIn applies the In predicate on the "issue_type" field.
func IssueTypeIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldIssueType, vs...))
}

// IssueTypeNotIn applies the NotIn predicate on the "issue_type" field.
func IssueTypeNotIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldIssueType, vs...))
}

// IssueTypeGT applies the GT predicate on the "issue_type" field.
func IssueTypeGT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldIssueType, v))
}

// IssueTypeGTE applies the GTE predicate on the "issue_type" field.
func IssueTypeGTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldIssueType, v))
}

// IssueTypeLT applies the LT predicate on the "issue_type" field.
func IssueTypeLT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldIssueType, v))
}

// IssueTypeLTE applies the LTE predicate on the "issue_type" field.
func IssueTypeLTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldIssueType, v))
}

// IssueTypeContains applies the Contains predicate on the "issue_type" field.
func IssueTypeContains(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContains(FieldIssueType, v))
}

// IssueTypeHasPrefix applies the HasPrefix predicate on the "issue_type" field.
func IssueTypeHasPrefix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasPrefix(FieldIssueType, v))
}

// IssueTypeHasSuffix applies the HasSuffix predicate on the "issue_type" field.
func IssueTypeHasSuffix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasSuffix(FieldIssueType, v))
}

// IssueTypeEqualFold applies the EqualFold predicate on the "issue_type" field.
func IssueTypeEqualFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEqualFold(FieldIssueType, v))
}

// IssueTypeContainsFold applies the ContainsFold predicate on the "issue_type" field.
func IssueTypeContainsFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContainsFold(FieldIssueType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContainsFold(FieldSeverity, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldContainsFold(FieldDescription, v))
}

// AcknowledgedEQ applies the EQ predicate on the "acknowledged" field.
func AcknowledgedEQ(v bool) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedNEQ applies the NEQ predicate on the "acknowledged" field.
func AcknowledgedNEQ(v bool) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldAcknowledged, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ValidationIssue {
	return predicate.ValidationIssue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ValidationIssue {
	return predicate.ValidationIssue(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationIssue) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationIssue) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationIssue) predicate.ValidationIssue {
	return predicate.ValidationIssue(sql.NotPredicates(p))
}
