package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Extraction rows are immutable; corrections reference them instead of
// overwriting field_value.
type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can index it
		field.UUID("document_id", uuid.UUID{}),
		field.String("field_name").NotEmpty().Immutable(),
		field.String("field_value").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence_score").
			Min(0).Max(1).
			Immutable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY extractions -> ONE document
		edge.From("document", Document.Type).
			Ref("extractions").
			Field("document_id").
			Required().
			Unique(),
		// ONE extraction -> MANY corrections
		edge.To("corrections", Correction.Type),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "field_name"),
	}
}
