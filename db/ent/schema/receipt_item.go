package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReceiptItem struct{ ent.Schema }

func (ReceiptItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_items"},
	}
}

func (ReceiptItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		// position preserves the order items appeared in the source text
		field.Int("position").NonNegative(),
		field.String("item_name").NotEmpty(),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (ReceiptItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE document
		edge.From("document", Document.Type).
			Ref("items").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (ReceiptItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "position").Unique(),
	}
}
