package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// ReceiptDetail holds the receipt-only fields as raw extracted strings.
// Amounts stay strings here; they are parsed at validation time so an
// unparseable extraction is preserved as extracted.
type ReceiptDetail struct{ ent.Schema }

func (ReceiptDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_details"},
	}
}

func (ReceiptDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.String("merchant_name").Optional().Nillable(),
		field.String("location").Optional().Nillable(),
		field.String("payment_method").Optional().Nillable(),
		field.String("tip_amount").Optional().Nillable(),
		field.String("subtotal").Optional().Nillable(),
		field.String("tax_amount").Optional().Nillable(),
		field.String("total_amount").Optional().Nillable(),
		field.String("cashier_name").Optional().Nillable(),
		field.String("transaction_time").Optional().Nillable(),
		field.String("category").Optional().Nillable(),
	}
}

func (ReceiptDetail) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE details row -> ONE document
		edge.From("document", Document.Type).
			Ref("details").
			Field("document_id").
			Required().
			Unique(),
	}
}
