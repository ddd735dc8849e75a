// Code generated by ent, DO NOT EDIT.

package referral

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the referral type in the database.
	Label = "referral"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChildName holds the string denoting the child_name field in the database.
	FieldChildName = "child_name"
	// FieldChildAge holds the string denoting the child_age field in the database.
	FieldChildAge = "child_age"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldEthnicity holds the string denoting the ethnicity field in the database.
	FieldEthnicity = "ethnicity"
	// FieldCulturalBackground holds the string denoting the cultural_background field in the database.
	FieldCulturalBackground = "cultural_background"
	// FieldDisabilities holds the string denoting the disabilities field in the database.
	FieldDisabilities = "disabilities"
	// FieldSen holds the string denoting the sen field in the database.
	FieldSen = "sen"
	// FieldBehaviouralNeeds holds the string denoting the behavioural_needs field in the database.
	FieldBehaviouralNeeds = "behavioural_needs"
	// FieldBehaviouralDetails holds the string denoting the behavioural_details field in the database.
	FieldBehaviouralDetails = "behavioural_details"
	// FieldPlacementType holds the string denoting the placement_type field in the database.
	FieldPlacementType = "placement_type"
	// FieldSiblingGroup holds the string denoting the sibling_group field in the database.
	FieldSiblingGroup = "sibling_group"
	// FieldSiblingCount holds the string denoting the sibling_count field in the database.
	FieldSiblingCount = "sibling_count"
	// FieldSoloPlacementRequired holds the string denoting the solo_placement_required field in the database.
	FieldSoloPlacementRequired = "solo_placement_required"
	// FieldPetsInHomeAcceptable holds the string denoting the pets_in_home_acceptable field in the database.
	FieldPetsInHomeAcceptable = "pets_in_home_acceptable"
	// FieldPreferredLocations holds the string denoting the preferred_locations field in the database.
	FieldPreferredLocations = "preferred_locations"
	// FieldExcludedLocations holds the string denoting the excluded_locations field in the database.
	FieldExcludedLocations = "excluded_locations"
	// FieldCarerGenderPreference holds the string denoting the carer_gender_preference field in the database.
	FieldCarerGenderPreference = "carer_gender_preference"
	// FieldSupportNeeds holds the string denoting the support_needs field in the database.
	FieldSupportNeeds = "support_needs"
	// FieldMedicalNeeds holds the string denoting the medical_needs field in the database.
	FieldMedicalNeeds = "medical_needs"
	// FieldEducationalNeeds holds the string denoting the educational_needs field in the database.
	FieldEducationalNeeds = "educational_needs"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAttachmentPath holds the string denoting the attachment_path field in the database.
	FieldAttachmentPath = "attachment_path"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldMatchedCarers holds the string denoting the matched_carers field in the database.
	FieldMatchedCarers = "matched_carers"
	// FieldAssignedCarerID holds the string denoting the assigned_carer_id field in the database.
	FieldAssignedCarerID = "assigned_carer_id"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldAssignedBy holds the string denoting the assigned_by field in the database.
	FieldAssignedBy = "assigned_by"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldStatusHistory holds the string denoting the status_history field in the database.
	FieldStatusHistory = "status_history"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the referral in the database.
	Table = "referrals"
)

// Columns holds all SQL columns for referral fields.
var Columns = []string{
	FieldID,
	FieldChildName,
	FieldChildAge,
	FieldGender,
	FieldEthnicity,
	FieldCulturalBackground,
	FieldDisabilities,
	FieldSen,
	FieldBehaviouralNeeds,
	FieldBehaviouralDetails,
	FieldPlacementType,
	FieldSiblingGroup,
	FieldSiblingCount,
	FieldSoloPlacementRequired,
	FieldPetsInHomeAcceptable,
	FieldPreferredLocations,
	FieldExcludedLocations,
	FieldCarerGenderPreference,
	FieldSupportNeeds,
	FieldMedicalNeeds,
	FieldEducationalNeeds,
	FieldUrgency,
	FieldStatus,
	FieldSource,
	FieldAttachmentPath,
	FieldRawText,
	FieldExtractedData,
	FieldMatchedCarers,
	FieldAssignedCarerID,
	FieldAssignedAt,
	FieldAssignedBy,
	FieldProcessedAt,
	FieldStatusHistory,
	FieldReceivedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ChildAgeValidator is a validator for the "child_age" field. It is called by the builders before save.
	ChildAgeValidator func(int) error
	// GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	GenderValidator func(string) error
	// EthnicityValidator is a validator for the "ethnicity" field. It is called by the builders before save.
	EthnicityValidator func(string) error
	// CulturalBackgroundValidator is a validator for the "cultural_background" field. It is called by the builders before save.
	CulturalBackgroundValidator func(string) error
	// PlacementTypeValidator is a validator for the "placement_type" field. It is called by the builders before save.
	PlacementTypeValidator func(string) error
	// SiblingCountValidator is a validator for the "sibling_count" field. It is called by the builders before save.
	SiblingCountValidator func(int) error
	// CarerGenderPreferenceValidator is a validator for the "carer_gender_preference" field. It is called by the builders before save.
	CarerGenderPreferenceValidator func(string) error
	// DefaultUrgency holds the default value on creation for the "urgency" field.
	DefaultUrgency string
	// UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	UrgencyValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Referral queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChildName orders the results by the child_name field.
func ByChildName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildName, opts...).ToFunc()
}

// ByChildAge orders the results by the child_age field.
func ByChildAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildAge, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByEthnicity orders the results by the ethnicity field.
func ByEthnicity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEthnicity, opts...).ToFunc()
}

// ByCulturalBackground orders the results by the cultural_background field.
func ByCulturalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCulturalBackground, opts...).ToFunc()
}

// BySen orders the results by the sen field.
func BySen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSen, opts...).ToFunc()
}

// ByBehaviouralNeeds orders the results by the behavioural_needs field.
func ByBehaviouralNeeds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviouralNeeds, opts...).ToFunc()
}

// ByBehaviouralDetails orders the results by the behavioural_details field.
func ByBehaviouralDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviouralDetails, opts...).ToFunc()
}

// ByPlacementType orders the results by the placement_type field.
func ByPlacementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacementType, opts...).ToFunc()
}

// BySiblingGroup orders the results by the sibling_group field.
func BySiblingGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiblingGroup, opts...).ToFunc()
}

// BySiblingCount orders the results by the sibling_count field.
func BySiblingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiblingCount, opts...).ToFunc()
}

// BySoloPlacementRequired orders the results by the solo_placement_required field.
func BySoloPlacementRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoloPlacementRequired, opts...).ToFunc()
}

// ByPetsInHomeAcceptable orders the results by the pets_in_home_acceptable field.
func ByPetsInHomeAcceptable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPetsInHomeAcceptable, opts...).ToFunc()
}

// ByCarerGenderPreference orders the results by the carer_gender_preference field.
func ByCarerGenderPreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarerGenderPreference, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAttachmentPath orders the results by the attachment_path field.
func ByAttachmentPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentPath, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByAssignedCarerID orders the results by the assigned_carer_id field.
func ByAssignedCarerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedCarerID, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByAssignedBy orders the results by the assigned_by field.
func ByAssignedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedBy, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
