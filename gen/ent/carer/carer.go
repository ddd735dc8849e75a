// Code generated by ent, DO NOT EDIT.

package carer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the carer type in the database.
	Label = "carer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldMinAge holds the string denoting the min_age field in the database.
	FieldMinAge = "min_age"
	// FieldMaxAge holds the string denoting the max_age field in the database.
	FieldMaxAge = "max_age"
	// FieldAcceptsSiblings holds the string denoting the accepts_siblings field in the database.
	FieldAcceptsSiblings = "accepts_siblings"
	// FieldAllowsPets holds the string denoting the allows_pets field in the database.
	FieldAllowsPets = "allows_pets"
	// FieldBehaviouralExperience holds the string denoting the behavioural_experience field in the database.
	FieldBehaviouralExperience = "behavioural_experience"
	// FieldSenExperience holds the string denoting the sen_experience field in the database.
	FieldSenExperience = "sen_experience"
	// FieldPreferredLocation holds the string denoting the preferred_location field in the database.
	FieldPreferredLocation = "preferred_location"
	// FieldExcludedLocations holds the string denoting the excluded_locations field in the database.
	FieldExcludedLocations = "excluded_locations"
	// FieldGenderPreference holds the string denoting the gender_preference field in the database.
	FieldGenderPreference = "gender_preference"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// Table holds the table name of the carer in the database.
	Table = "carers"
)

// Columns holds all SQL columns for carer fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldMinAge,
	FieldMaxAge,
	FieldAcceptsSiblings,
	FieldAllowsPets,
	FieldBehaviouralExperience,
	FieldSenExperience,
	FieldPreferredLocation,
	FieldExcludedLocations,
	FieldGenderPreference,
	FieldCapacity,
	FieldStatus,
	FieldNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// MinAgeValidator is a validator for the "min_age" field. It is called by the builders before save.
	MinAgeValidator func(int) error
	// MaxAgeValidator is a validator for the "max_age" field. It is called by the builders before save.
	MaxAgeValidator func(int) error
	// DefaultAcceptsSiblings holds the default value on creation for the "accepts_siblings" field.
	DefaultAcceptsSiblings bool
	// DefaultAllowsPets holds the default value on creation for the "allows_pets" field.
	DefaultAllowsPets bool
	// DefaultBehaviouralExperience holds the default value on creation for the "behavioural_experience" field.
	DefaultBehaviouralExperience bool
	// DefaultSenExperience holds the default value on creation for the "sen_experience" field.
	DefaultSenExperience bool
	// GenderPreferenceValidator is a validator for the "gender_preference" field. It is called by the builders before save.
	GenderPreferenceValidator func(string) error
	// CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	CapacityValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Carer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByMinAge orders the results by the min_age field.
func ByMinAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinAge, opts...).ToFunc()
}

// ByMaxAge orders the results by the max_age field.
func ByMaxAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAge, opts...).ToFunc()
}

// ByAcceptsSiblings orders the results by the accepts_siblings field.
func ByAcceptsSiblings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptsSiblings, opts...).ToFunc()
}

// ByAllowsPets orders the results by the allows_pets field.
func ByAllowsPets(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowsPets, opts...).ToFunc()
}

// ByBehaviouralExperience orders the results by the behavioural_experience field.
func ByBehaviouralExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehaviouralExperience, opts...).ToFunc()
}

// BySenExperience orders the results by the sen_experience field.
func BySenExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenExperience, opts...).ToFunc()
}

// ByPreferredLocation orders the results by the preferred_location field.
func ByPreferredLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredLocation, opts...).ToFunc()
}

// ByGenderPreference orders the results by the gender_preference field.
func ByGenderPreference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenderPreference, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}
