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

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/db/ent/schema/utils"
)

type ValidationIssue struct{ ent.Schema }

func (ValidationIssue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_issues"},
	}
}

func (ValidationIssue) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		// position preserves the rule engine's group-then-detection order;
		// created_at precision is too coarse for bulk inserts
		field.Int("position").NonNegative().Immutable(),
		field.String("issue_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.IssueTypes...)),
		field.String("severity").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.Severities...)),
		field.String("description").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// the only mutable column on this table
		field.Bool("acknowledged").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ValidationIssue) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY issues -> ONE document
		edge.From("document", Document.Type).
			Ref("issues").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (ValidationIssue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "position").Unique(),
		index.Fields("document_id", "severity"),
		index.Fields("document_id", "acknowledged"),
	}
}
