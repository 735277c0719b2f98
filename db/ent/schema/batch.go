package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/db/ent/schema/utils"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty().Immutable(),
		field.String("status").
			Default(string(constants.BatchStatusRunning)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.Int("total").NonNegative().Default(0),
		field.Int("succeeded").NonNegative().Default(0),
		field.Int("failed").NonNegative().Default(0),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
