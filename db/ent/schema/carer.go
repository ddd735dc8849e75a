package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/utils"
	"github.com/google/uuid"
)

type Carer struct{ ent.Schema }

func (Carer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "carers"},
	}
}

func (Carer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.Int("min_age").NonNegative(),
		field.Int("max_age").NonNegative(),
		field.Bool("accepts_siblings").Default(false),
		field.Bool("allows_pets").Default(false),
		field.Bool("behavioural_experience").Default(false),
		field.Bool("sen_experience").Default(false),
		field.String("preferred_location").Optional().Nillable(),
		field.JSON("excluded_locations", []string{}).Optional(),
		field.String("gender_preference").Optional().Nillable().
			Validate(utils.EnumValidator(constants.GenderStrings()...)),
		field.Int("capacity").NonNegative(),
		field.String("status").Default(string(constants.CarerActive)).
			Validate(utils.EnumValidator(constants.CarerStatusStrings()...)),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.String("created_by").Optional().Nillable(),
		field.String("updated_by").Optional().Nillable(),
	}
}

func (Carer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("preferred_location"),
	}
}
