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

// Correction is a reviewer's manual fix of one extraction. The original
// value is copied here so the audit trail survives even a re-extraction.
type Correction struct{ ent.Schema }

func (Correction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "corrections"},
	}
}

func (Correction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("extraction_id", uuid.UUID{}),
		field.String("original_value").Optional().Nillable().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected_value").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("corrected_at").Default(time.Now),
	}
}

func (Correction) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY corrections -> ONE extraction
		edge.From("extraction", Extraction.Type).
			Ref("corrections").
			Field("extraction_id").
			Required().
			Unique(),
	}
}

func (Correction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("extraction_id", "corrected_at"),
	}
}
