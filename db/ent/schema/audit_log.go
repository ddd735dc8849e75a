package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/utils"
	"github.com/google/uuid"
)

type AuditLog struct{ ent.Schema }

func (AuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_logs"},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("entity_type").NotEmpty().
			Validate(utils.EnumValidator(constants.AuditEntityStrings()...)),
		field.UUID("entity_id", uuid.UUID{}),
		field.String("action").NotEmpty().
			Validate(utils.EnumValidator(constants.AuditActionStrings()...)),
		field.String("actor").Optional().Nillable(),
		field.JSON("detail", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id", "created_at"),
	}
}
