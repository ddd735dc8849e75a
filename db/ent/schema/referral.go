package schema

import (
	"encoding/json"
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

type Referral struct{ ent.Schema }

func (Referral) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "referrals"},
	}
}

func (Referral) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("child_name").Optional().Nillable(),
		field.Int("child_age").NonNegative().Max(18),
		field.String("gender").
			Validate(utils.EnumValidator(constants.GenderStrings()...)),
		field.String("ethnicity").NotEmpty(),
		field.String("cultural_background").NotEmpty(),
		field.JSON("disabilities", []string{}).Optional(),
		field.Bool("sen").Optional().Nillable(),
		field.Bool("behavioural_needs").Optional().Nillable(),
		field.String("behavioural_details").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("placement_type").
			Validate(utils.EnumValidator(constants.PlacementTypeStrings()...)),
		field.Bool("sibling_group").Optional().Nillable(),
		field.Int("sibling_count").Optional().Nillable().NonNegative(),
		field.Bool("solo_placement_required").Optional().Nillable(),
		field.Bool("pets_in_home_acceptable").Optional().Nillable(),
		field.JSON("preferred_locations", []string{}).Optional(),
		field.JSON("excluded_locations", []string{}).Optional(),
		field.String("carer_gender_preference").Optional().Nillable().
			Validate(utils.EnumValidator(constants.GenderStrings()...)),
		field.JSON("support_needs", []string{}).Optional(),
		field.JSON("medical_needs", []string{}).Optional(),
		field.JSON("educational_needs", []string{}).Optional(),
		field.String("urgency").Default(string(constants.UrgencyMedium)).
			Validate(utils.EnumValidator(constants.UrgencyStrings()...)),
		field.String("status").Default(string(constants.ReferralPending)).
			Validate(utils.EnumValidator(constants.ReferralStatusStrings()...)),
		field.String("source").NotEmpty(),
		field.String("attachment_path").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.JSON("matched_carers", json.RawMessage{}).Optional(),
		field.UUID("assigned_carer_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("assigned_at").Optional().Nillable(),
		field.String("assigned_by").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),
		field.JSON("status_history", json.RawMessage{}).Optional(),
		field.Time("received_at").Immutable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Referral) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "received_at"),
		index.Fields("assigned_carer_id"),
		index.Fields("urgency"),
	}
}
