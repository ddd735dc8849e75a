// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[2], AuditLogsColumns[6]},
			},
		},
	}
	// CarersColumns holds the columns for the "carers" table.
	CarersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "min_age", Type: field.TypeInt},
		{Name: "max_age", Type: field.TypeInt},
		{Name: "accepts_siblings", Type: field.TypeBool, Default: false},
		{Name: "allows_pets", Type: field.TypeBool, Default: false},
		{Name: "behavioural_experience", Type: field.TypeBool, Default: false},
		{Name: "sen_experience", Type: field.TypeBool, Default: false},
		{Name: "preferred_location", Type: field.TypeString, Nullable: true},
		{Name: "excluded_locations", Type: field.TypeJSON, Nullable: true},
		{Name: "gender_preference", Type: field.TypeString, Nullable: true},
		{Name: "capacity", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
	}
	// CarersTable holds the schema information for the "carers" table.
	CarersTable = &schema.Table{
		Name:       "carers",
		Columns:    CarersColumns,
		PrimaryKey: []*schema.Column{CarersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "carer_status",
				Unique:  false,
				Columns: []*schema.Column{CarersColumns[14]},
			},
			{
				Name:    "carer_preferred_location",
				Unique:  false,
				Columns: []*schema.Column{CarersColumns[10]},
			},
		},
	}
	// ReferralsColumns holds the columns for the "referrals" table.
	ReferralsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "child_name", Type: field.TypeString, Nullable: true},
		{Name: "child_age", Type: field.TypeInt},
		{Name: "gender", Type: field.TypeString},
		{Name: "ethnicity", Type: field.TypeString},
		{Name: "cultural_background", Type: field.TypeString},
		{Name: "disabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "sen", Type: field.TypeBool, Nullable: true},
		{Name: "behavioural_needs", Type: field.TypeBool, Nullable: true},
		{Name: "behavioural_details", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "placement_type", Type: field.TypeString},
		{Name: "sibling_group", Type: field.TypeBool, Nullable: true},
		{Name: "sibling_count", Type: field.TypeInt, Nullable: true},
		{Name: "solo_placement_required", Type: field.TypeBool, Nullable: true},
		{Name: "pets_in_home_acceptable", Type: field.TypeBool, Nullable: true},
		{Name: "preferred_locations", Type: field.TypeJSON, Nullable: true},
		{Name: "excluded_locations", Type: field.TypeJSON, Nullable: true},
		{Name: "carer_gender_preference", Type: field.TypeString, Nullable: true},
		{Name: "support_needs", Type: field.TypeJSON, Nullable: true},
		{Name: "medical_needs", Type: field.TypeJSON, Nullable: true},
		{Name: "educational_needs", Type: field.TypeJSON, Nullable: true},
		{Name: "urgency", Type: field.TypeString, Default: "medium"},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "source", Type: field.TypeString},
		{Name: "attachment_path", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "matched_carers", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_carer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "assigned_by", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "status_history", Type: field.TypeJSON, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReferralsTable holds the schema information for the "referrals" table.
	ReferralsTable = &schema.Table{
		Name:       "referrals",
		Columns:    ReferralsColumns,
		PrimaryKey: []*schema.Column{ReferralsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "referral_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{ReferralsColumns[22], ReferralsColumns[33]},
			},
			{
				Name:    "referral_assigned_carer_id",
				Unique:  false,
				Columns: []*schema.Column{ReferralsColumns[28]},
			},
			{
				Name:    "referral_urgency",
				Unique:  false,
				Columns: []*schema.Column{ReferralsColumns[21]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CarersTable,
		ReferralsTable,
	}
)

func init() {
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	CarersTable.Annotation = &entsql.Annotation{
		Table: "carers",
	}
	ReferralsTable.Annotation = &entsql.Annotation{
		Table: "referrals",
	}
}
