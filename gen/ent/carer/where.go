// Code generated by ent, DO NOT EDIT.

package carer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careflow-uk/fostermatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldPhone, v))
}

// MinAge applies equality check predicate on the "min_age" field. It's identical to MinAgeEQ.
func MinAge(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldMinAge, v))
}

// MaxAge applies equality check predicate on the "max_age" field. It's identical to MaxAgeEQ.
func MaxAge(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldMaxAge, v))
}

// AcceptsSiblings applies equality check predicate on the "accepts_siblings" field. It's identical to AcceptsSiblingsEQ.
func AcceptsSiblings(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldAcceptsSiblings, v))
}

// AllowsPets applies equality check predicate on the "allows_pets" field. It's identical to AllowsPetsEQ.
func AllowsPets(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldAllowsPets, v))
}

// BehaviouralExperience applies equality check predicate on the "behavioural_experience" field. It's identical to BehaviouralExperienceEQ.
func BehaviouralExperience(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldBehaviouralExperience, v))
}

// SenExperience applies equality check predicate on the "sen_experience" field. It's identical to SenExperienceEQ.
func SenExperience(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldSenExperience, v))
}

// PreferredLocation applies equality check predicate on the "preferred_location" field. It's identical to PreferredLocationEQ.
func PreferredLocation(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldPreferredLocation, v))
}

// GenderPreference applies equality check predicate on the "gender_preference" field. It's identical to GenderPreferenceEQ.
func GenderPreference(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldGenderPreference, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCapacity, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldStatus, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldUpdatedBy, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldPhone, v))
}

// MinAgeEQ applies the EQ predicate on the "min_age" field.
func MinAgeEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldMinAge, v))
}

// MinAgeNEQ applies the NEQ predicate on the "min_age" field.
func MinAgeNEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldMinAge, v))
}

// MinAgeIn applies the In predicate on the "min_age" field.
func MinAgeIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldMinAge, vs...))
}

// MinAgeNotIn applies the NotIn predicate on the "min_age" field.
func MinAgeNotIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldMinAge, vs...))
}

// MinAgeGT applies the GT predicate on the "min_age" field.
func MinAgeGT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldMinAge, v))
}

// MinAgeGTE applies the GTE predicate on the "min_age" field.
func MinAgeGTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldMinAge, v))
}

// MinAgeLT applies the LT predicate on the "min_age" field.
func MinAgeLT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldMinAge, v))
}

// MinAgeLTE applies the LTE predicate on the "min_age" field.
func MinAgeLTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldMinAge, v))
}

// MaxAgeEQ applies the EQ predicate on the "max_age" field.
func MaxAgeEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldMaxAge, v))
}

// MaxAgeNEQ applies the NEQ predicate on the "max_age" field.
func MaxAgeNEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldMaxAge, v))
}

// MaxAgeIn applies the In predicate on the "max_age" field.
func MaxAgeIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldMaxAge, vs...))
}

// MaxAgeNotIn applies the NotIn predicate on the "max_age" field.
func MaxAgeNotIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldMaxAge, vs...))
}

// MaxAgeGT applies the GT predicate on the "max_age" field.
func MaxAgeGT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldMaxAge, v))
}

// MaxAgeGTE applies the GTE predicate on the "max_age" field.
func MaxAgeGTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldMaxAge, v))
}

// MaxAgeLT applies the LT predicate on the "max_age" field.
func MaxAgeLT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldMaxAge, v))
}

// MaxAgeLTE applies the LTE predicate on the "max_age" field.
func MaxAgeLTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldMaxAge, v))
}

// AcceptsSiblingsEQ applies the EQ predicate on the "accepts_siblings" field.
func AcceptsSiblingsEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldAcceptsSiblings, v))
}

// AcceptsSiblingsNEQ applies the NEQ predicate on the "accepts_siblings" field.
func AcceptsSiblingsNEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldAcceptsSiblings, v))
}

// AllowsPetsEQ applies the EQ predicate on the "allows_pets" field.
func AllowsPetsEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldAllowsPets, v))
}

// AllowsPetsNEQ applies the NEQ predicate on the "allows_pets" field.
func AllowsPetsNEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldAllowsPets, v))
}

// BehaviouralExperienceEQ applies the EQ predicate on the "behavioural_experience" field.
func BehaviouralExperienceEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldBehaviouralExperience, v))
}

// BehaviouralExperienceNEQ applies the NEQ predicate on the "behavioural_experience" field.
func BehaviouralExperienceNEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldBehaviouralExperience, v))
}

// SenExperienceEQ applies the EQ predicate on the "sen_experience" field.
func SenExperienceEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldSenExperience, v))
}

// SenExperienceNEQ applies the NEQ predicate on the "sen_experience" field.
func SenExperienceNEQ(v bool) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldSenExperience, v))
}

// PreferredLocationEQ applies the EQ predicate on the "preferred_location" field.
func PreferredLocationEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldPreferredLocation, v))
}

// PreferredLocationNEQ applies the NEQ predicate on the "preferred_location" field.
func PreferredLocationNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldPreferredLocation, v))
}

// PreferredLocationIn applies the In predicate on the "preferred_location" field.
func PreferredLocationIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldPreferredLocation, vs...))
}

// PreferredLocationNotIn applies the NotIn predicate on the "preferred_location" field.
func PreferredLocationNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldPreferredLocation, vs...))
}

// PreferredLocationGT applies the GT predicate on the "preferred_location" field.
func PreferredLocationGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldPreferredLocation, v))
}

// PreferredLocationGTE applies the GTE predicate on the "preferred_location" field.
func PreferredLocationGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldPreferredLocation, v))
}

// PreferredLocationLT applies the LT predicate on the "preferred_location" field.
func PreferredLocationLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldPreferredLocation, v))
}

// PreferredLocationLTE applies the LTE predicate on the "preferred_location" field.
func PreferredLocationLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldPreferredLocation, v))
}

// PreferredLocationContains applies the Contains predicate on the "preferred_location" field.
func PreferredLocationContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldPreferredLocation, v))
}

// PreferredLocationHasPrefix applies the HasPrefix predicate on the "preferred_location" field.
func PreferredLocationHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldPreferredLocation, v))
}

// PreferredLocationHasSuffix applies the HasSuffix predicate on the "preferred_location" field.
func PreferredLocationHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldPreferredLocation, v))
}

// PreferredLocationIsNil applies the IsNil predicate on the "preferred_location" field.
func PreferredLocationIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldPreferredLocation))
}

// PreferredLocationNotNil applies the NotNil predicate on the "preferred_location" field.
func PreferredLocationNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldPreferredLocation))
}

// PreferredLocationEqualFold applies the EqualFold predicate on the "preferred_location" field.
func PreferredLocationEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldPreferredLocation, v))
}

// PreferredLocationContainsFold applies the ContainsFold predicate on the "preferred_location" field.
func PreferredLocationContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldPreferredLocation, v))
}

// ExcludedLocationsIsNil applies the IsNil predicate on the "excluded_locations" field.
func ExcludedLocationsIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldExcludedLocations))
}

// ExcludedLocationsNotNil applies the NotNil predicate on the "excluded_locations" field.
func ExcludedLocationsNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldExcludedLocations))
}

// GenderPreferenceEQ applies the EQ predicate on the "gender_preference" field.
func GenderPreferenceEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldGenderPreference, v))
}

// GenderPreferenceNEQ applies the NEQ predicate on the "gender_preference" field.
func GenderPreferenceNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldGenderPreference, v))
}

// GenderPreferenceIn applies the In predicate on the "gender_preference" field.
func GenderPreferenceIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldGenderPreference, vs...))
}

// GenderPreferenceNotIn applies the NotIn predicate on the "gender_preference" field.
func GenderPreferenceNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldGenderPreference, vs...))
}

// GenderPreferenceGT applies the GT predicate on the "gender_preference" field.
func GenderPreferenceGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldGenderPreference, v))
}

// GenderPreferenceGTE applies the GTE predicate on the "gender_preference" field.
func GenderPreferenceGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldGenderPreference, v))
}

// GenderPreferenceLT applies the LT predicate on the "gender_preference" field.
func GenderPreferenceLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldGenderPreference, v))
}

// GenderPreferenceLTE applies the LTE predicate on the "gender_preference" field.
func GenderPreferenceLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldGenderPreference, v))
}

// GenderPreferenceContains applies the Contains predicate on the "gender_preference" field.
func GenderPreferenceContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldGenderPreference, v))
}

// GenderPreferenceHasPrefix applies the HasPrefix predicate on the "gender_preference" field.
func GenderPreferenceHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldGenderPreference, v))
}

// GenderPreferenceHasSuffix applies the HasSuffix predicate on the "gender_preference" field.
func GenderPreferenceHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldGenderPreference, v))
}

// GenderPreferenceIsNil applies the IsNil predicate on the "gender_preference" field.
func GenderPreferenceIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldGenderPreference))
}

// GenderPreferenceNotNil applies the NotNil predicate on the "gender_preference" field.
func GenderPreferenceNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldGenderPreference))
}

// GenderPreferenceEqualFold applies the EqualFold predicate on the "gender_preference" field.
func GenderPreferenceEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldGenderPreference, v))
}

// GenderPreferenceContainsFold applies the ContainsFold predicate on the "gender_preference" field.
func GenderPreferenceContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldGenderPreference, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldCapacity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldStatus, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Carer {
	return predicate.Carer(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Carer {
	return predicate.Carer(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Carer {
	return predicate.Carer(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Carer {
	return predicate.Carer(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Carer {
	return predicate.Carer(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Carer {
	return predicate.Carer(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Carer {
	return predicate.Carer(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Carer) predicate.Carer {
	return predicate.Carer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Carer) predicate.Carer {
	return predicate.Carer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Carer) predicate.Carer {
	return predicate.Carer(sql.NotPredicates(p))
}
