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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("status").
			Default(string(constants.DocStatusUploaded)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("document_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.Float("type_confidence").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.String("error_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY extractions
		edge.To("extractions", Extraction.Type),
		// ONE document -> MANY receipt items
		edge.To("items", ReceiptItem.Type),
		// ONE document -> AT MOST ONE details row
		edge.To("details", ReceiptDetail.Type).Unique(),
		// ONE document -> MANY validation issues
		edge.To("issues", ValidationIssue.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "uploaded_at"),
	}
}
