// Code generated by ent, DO NOT EDIT.

package referral

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/careflow-uk/fostermatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldID, id))
}

// ChildName applies equality check predicate on the "child_name" field. It's identical to ChildNameEQ.
func ChildName(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldChildName, v))
}

// ChildAge applies equality check predicate on the "child_age" field. It's identical to ChildAgeEQ.
func ChildAge(v int) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldChildAge, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldGender, v))
}

// Ethnicity applies equality check predicate on the "ethnicity" field. It's identical to EthnicityEQ.
func Ethnicity(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldEthnicity, v))
}

// CulturalBackground applies equality check predicate on the "cultural_background" field. It's identical to CulturalBackgroundEQ.
func CulturalBackground(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCulturalBackground, v))
}

// Sen applies equality check predicate on the "sen" field. It's identical to SenEQ.
func Sen(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSen, v))
}

// BehaviouralNeeds applies equality check predicate on the "behavioural_needs" field. It's identical to BehaviouralNeedsEQ.
func BehaviouralNeeds(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldBehaviouralNeeds, v))
}

// BehaviouralDetails applies equality check predicate on the "behavioural_details" field. It's identical to BehaviouralDetailsEQ.
func BehaviouralDetails(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldBehaviouralDetails, v))
}

// PlacementType applies equality check predicate on the "placement_type" field. It's identical to PlacementTypeEQ.
func PlacementType(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldPlacementType, v))
}

// SiblingGroup applies equality check predicate on the "sibling_group" field. It's identical to SiblingGroupEQ.
func SiblingGroup(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSiblingGroup, v))
}

// SiblingCount applies equality check predicate on the "sibling_count" field. It's identical to SiblingCountEQ.
func SiblingCount(v int) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSiblingCount, v))
}

// SoloPlacementRequired applies equality check predicate on the "solo_placement_required" field. It's identical to SoloPlacementRequiredEQ.
func SoloPlacementRequired(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSoloPlacementRequired, v))
}

// PetsInHomeAcceptable applies equality check predicate on the "pets_in_home_acceptable" field. It's identical to PetsInHomeAcceptableEQ.
func PetsInHomeAcceptable(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldPetsInHomeAcceptable, v))
}

// CarerGenderPreference applies equality check predicate on the "carer_gender_preference" field. It's identical to CarerGenderPreferenceEQ.
func CarerGenderPreference(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCarerGenderPreference, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUrgency, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldStatus, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSource, v))
}

// AttachmentPath applies equality check predicate on the "attachment_path" field. It's identical to AttachmentPathEQ.
func AttachmentPath(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAttachmentPath, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldRawText, v))
}

// AssignedCarerID applies equality check predicate on the "assigned_carer_id" field. It's identical to AssignedCarerIDEQ.
func AssignedCarerID(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedCarerID, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedBy applies equality check predicate on the "assigned_by" field. It's identical to AssignedByEQ.
func AssignedBy(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedBy, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldProcessedAt, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReceivedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChildNameEQ applies the EQ predicate on the "child_name" field.
func ChildNameEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldChildName, v))
}

// ChildNameNEQ applies the NEQ predicate on the "child_name" field.
func ChildNameNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldChildName, v))
}

// ChildNameIn applies the In predicate on the "child_name" field.
func ChildNameIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldChildName, vs...))
}

// ChildNameNotIn applies the NotIn predicate on the "child_name" field.
func ChildNameNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldChildName, vs...))
}

// ChildNameGT applies the GT predicate on the "child_name" field.
func ChildNameGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldChildName, v))
}

// ChildNameGTE applies the GTE predicate on the "child_name" field.
func ChildNameGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldChildName, v))
}

// ChildNameLT applies the LT predicate on the "child_name" field.
func ChildNameLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldChildName, v))
}

// ChildNameLTE applies the LTE predicate on the "child_name" field.
func ChildNameLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldChildName, v))
}

// ChildNameContains applies the Contains predicate on the "child_name" field.
func ChildNameContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldChildName, v))
}

// ChildNameHasPrefix applies the HasPrefix predicate on the "child_name" field.
func ChildNameHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldChildName, v))
}

// ChildNameHasSuffix applies the HasSuffix predicate on the "child_name" field.
func ChildNameHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldChildName, v))
}

// ChildNameIsNil applies the IsNil predicate on the "child_name" field.
func ChildNameIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldChildName))
}

// ChildNameNotNil applies the NotNil predicate on the "child_name" field.
func ChildNameNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldChildName))
}

// ChildNameEqualFold applies the EqualFold predicate on the "child_name" field.
func ChildNameEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldChildName, v))
}

// ChildNameContainsFold applies the ContainsFold predicate on the "child_name" field.
func ChildNameContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldChildName, v))
}

// ChildAgeEQ applies the EQ predicate on the "child_age" field.
func ChildAgeEQ(v int) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldChildAge, v))
}

// ChildAgeNEQ applies the NEQ predicate on the "child_age" field.
func ChildAgeNEQ(v int) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldChildAge, v))
}

// ChildAgeIn applies the In predicate on the "child_age" field.
func ChildAgeIn(vs ...int) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldChildAge, vs...))
}

// ChildAgeNotIn applies the NotIn predicate on the "child_age" field.
func ChildAgeNotIn(vs ...int) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldChildAge, vs...))
}

// ChildAgeGT applies the GT predicate on the "child_age" field.
func ChildAgeGT(v int) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldChildAge, v))
}

// ChildAgeGTE applies the GTE predicate on the "child_age" field.
func ChildAgeGTE(v int) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldChildAge, v))
}

// ChildAgeLT applies the LT predicate on the "child_age" field.
func ChildAgeLT(v int) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldChildAge, v))
}

// ChildAgeLTE applies the LTE predicate on the "child_age" field.
func ChildAgeLTE(v int) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldChildAge, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldGender, v))
}

// EthnicityEQ applies the EQ predicate on the "ethnicity" field.
func EthnicityEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldEthnicity, v))
}

// EthnicityNEQ applies the NEQ predicate on the "ethnicity" field.
func EthnicityNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldEthnicity, v))
}

// EthnicityIn applies the In predicate on the "ethnicity" field.
func EthnicityIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldEthnicity, vs...))
}

// EthnicityNotIn applies the NotIn predicate on the "ethnicity" field.
func EthnicityNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldEthnicity, vs...))
}

// EthnicityGT applies the GT predicate on the "ethnicity" field.
func EthnicityGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldEthnicity, v))
}

// EthnicityGTE applies the GTE predicate on the "ethnicity" field.
func EthnicityGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldEthnicity, v))
}

// EthnicityLT applies the LT predicate on the "ethnicity" field.
func EthnicityLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldEthnicity, v))
}

// EthnicityLTE applies the LTE predicate on the "ethnicity" field.
func EthnicityLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldEthnicity, v))
}

// EthnicityContains applies the Contains predicate on the "ethnicity" field.
func EthnicityContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldEthnicity, v))
}

// EthnicityHasPrefix applies the HasPrefix predicate on the "ethnicity" field.
func EthnicityHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldEthnicity, v))
}

// EthnicityHasSuffix applies the HasSuffix predicate on the "ethnicity" field.
func EthnicityHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldEthnicity, v))
}

// EthnicityEqualFold applies the EqualFold predicate on the "ethnicity" field.
func EthnicityEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldEthnicity, v))
}

// EthnicityContainsFold applies the ContainsFold predicate on the "ethnicity" field.
func EthnicityContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldEthnicity, v))
}

// CulturalBackgroundEQ applies the EQ predicate on the "cultural_background" field.
func CulturalBackgroundEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCulturalBackground, v))
}

// CulturalBackgroundNEQ applies the NEQ predicate on the "cultural_background" field.
func CulturalBackgroundNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldCulturalBackground, v))
}

// CulturalBackgroundIn applies the In predicate on the "cultural_background" field.
func CulturalBackgroundIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldCulturalBackground, vs...))
}

// CulturalBackgroundNotIn applies the NotIn predicate on the "cultural_background" field.
func CulturalBackgroundNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldCulturalBackground, vs...))
}

// CulturalBackgroundGT applies the GT predicate on the "cultural_background" field.
func CulturalBackgroundGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldCulturalBackground, v))
}

// CulturalBackgroundGTE applies the GTE predicate on the "cultural_background" field.
func CulturalBackgroundGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldCulturalBackground, v))
}

// CulturalBackgroundLT applies the LT predicate on the "cultural_background" field.
func CulturalBackgroundLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldCulturalBackground, v))
}

// CulturalBackgroundLTE applies the LTE predicate on the "cultural_background" field.
func CulturalBackgroundLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldCulturalBackground, v))
}

// CulturalBackgroundContains applies the Contains predicate on the "cultural_background" field.
func CulturalBackgroundContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldCulturalBackground, v))
}

// CulturalBackgroundHasPrefix applies the HasPrefix predicate on the "cultural_background" field.
func CulturalBackgroundHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldCulturalBackground, v))
}

// CulturalBackgroundHasSuffix applies the HasSuffix predicate on the "cultural_background" field.
func CulturalBackgroundHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldCulturalBackground, v))
}

// CulturalBackgroundEqualFold applies the EqualFold predicate on the "cultural_background" field.
func CulturalBackgroundEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldCulturalBackground, v))
}

// CulturalBackgroundContainsFold applies the ContainsFold predicate on the "cultural_background" field.
func CulturalBackgroundContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldCulturalBackground, v))
}

// DisabilitiesIsNil applies the IsNil predicate on the "disabilities" field.
func DisabilitiesIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldDisabilities))
}

// DisabilitiesNotNil applies the NotNil predicate on the "disabilities" field.
func DisabilitiesNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldDisabilities))
}

// SenEQ applies the EQ predicate on the "sen" field.
func SenEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSen, v))
}

// SenNEQ applies the NEQ predicate on the "sen" field.
func SenNEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSen, v))
}

// SenIsNil applies the IsNil predicate on the "sen" field.
func SenIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSen))
}

// SenNotNil applies the NotNil predicate on the "sen" field.
func SenNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSen))
}

// BehaviouralNeedsEQ applies the EQ predicate on the "behavioural_needs" field.
func BehaviouralNeedsEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldBehaviouralNeeds, v))
}

// BehaviouralNeedsNEQ applies the NEQ predicate on the "behavioural_needs" field.
func BehaviouralNeedsNEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldBehaviouralNeeds, v))
}

// BehaviouralNeedsIsNil applies the IsNil predicate on the "behavioural_needs" field.
func BehaviouralNeedsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldBehaviouralNeeds))
}

// BehaviouralNeedsNotNil applies the NotNil predicate on the "behavioural_needs" field.
func BehaviouralNeedsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldBehaviouralNeeds))
}

// BehaviouralDetailsEQ applies the EQ predicate on the "behavioural_details" field.
func BehaviouralDetailsEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsNEQ applies the NEQ predicate on the "behavioural_details" field.
func BehaviouralDetailsNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsIn applies the In predicate on the "behavioural_details" field.
func BehaviouralDetailsIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldBehaviouralDetails, vs...))
}

// BehaviouralDetailsNotIn applies the NotIn predicate on the "behavioural_details" field.
func BehaviouralDetailsNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldBehaviouralDetails, vs...))
}

// BehaviouralDetailsGT applies the GT predicate on the "behavioural_details" field.
func BehaviouralDetailsGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsGTE applies the GTE predicate on the "behavioural_details" field.
func BehaviouralDetailsGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsLT applies the LT predicate on the "behavioural_details" field.
func BehaviouralDetailsLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsLTE applies the LTE predicate on the "behavioural_details" field.
func BehaviouralDetailsLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsContains applies the Contains predicate on the "behavioural_details" field.
func BehaviouralDetailsContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsHasPrefix applies the HasPrefix predicate on the "behavioural_details" field.
func BehaviouralDetailsHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsHasSuffix applies the HasSuffix predicate on the "behavioural_details" field.
func BehaviouralDetailsHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsIsNil applies the IsNil predicate on the "behavioural_details" field.
func BehaviouralDetailsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldBehaviouralDetails))
}

// BehaviouralDetailsNotNil applies the NotNil predicate on the "behavioural_details" field.
func BehaviouralDetailsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldBehaviouralDetails))
}

// BehaviouralDetailsEqualFold applies the EqualFold predicate on the "behavioural_details" field.
func BehaviouralDetailsEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldBehaviouralDetails, v))
}

// BehaviouralDetailsContainsFold applies the ContainsFold predicate on the "behavioural_details" field.
func BehaviouralDetailsContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldBehaviouralDetails, v))
}

// PlacementTypeEQ applies the EQ predicate on the "placement_type" field.
func PlacementTypeEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldPlacementType, v))
}

// PlacementTypeNEQ applies the NEQ predicate on the "placement_type" field.
func PlacementTypeNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldPlacementType, v))
}

// PlacementTypeIn applies the In predicate on the "placement_type" field.
func PlacementTypeIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldPlacementType, vs...))
}

// PlacementTypeNotIn applies the NotIn predicate on the "placement_type" field.
func PlacementTypeNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldPlacementType, vs...))
}

// PlacementTypeGT applies the GT predicate on the "placement_type" field.
func PlacementTypeGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldPlacementType, v))
}

// PlacementTypeGTE applies the GTE predicate on the "placement_type" field.
func PlacementTypeGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldPlacementType, v))
}

// PlacementTypeLT applies the LT predicate on the "placement_type" field.
func PlacementTypeLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldPlacementType, v))
}

// PlacementTypeLTE applies the LTE predicate on the "placement_type" field.
func PlacementTypeLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldPlacementType, v))
}

// PlacementTypeContains applies the Contains predicate on the "placement_type" field.
func PlacementTypeContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldPlacementType, v))
}

// PlacementTypeHasPrefix applies the HasPrefix predicate on the "placement_type" field.
func PlacementTypeHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldPlacementType, v))
}

// PlacementTypeHasSuffix applies the HasSuffix predicate on the "placement_type" field.
func PlacementTypeHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldPlacementType, v))
}

// PlacementTypeEqualFold applies the EqualFold predicate on the "placement_type" field.
func PlacementTypeEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldPlacementType, v))
}

// PlacementTypeContainsFold applies the ContainsFold predicate on the "placement_type" field.
func PlacementTypeContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldPlacementType, v))
}

// SiblingGroupEQ applies the EQ predicate on the "sibling_group" field.
func SiblingGroupEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSiblingGroup, v))
}

// SiblingGroupNEQ applies the NEQ predicate on the "sibling_group" field.
func SiblingGroupNEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSiblingGroup, v))
}

// SiblingGroupIsNil applies the IsNil predicate on the "sibling_group" field.
func SiblingGroupIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSiblingGroup))
}

// SiblingGroupNotNil applies the NotNil predicate on the "sibling_group" field.
func SiblingGroupNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSiblingGroup))
}

// SiblingCountEQ applies the EQ predicate on the "sibling_count" field.
func SiblingCountEQ(v int) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSiblingCount, v))
}

// SiblingCountNEQ applies the NEQ predicate on the "sibling_count" field.
func SiblingCountNEQ(v int) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSiblingCount, v))
}

// SiblingCountIn applies the In predicate on the "sibling_count" field.
func SiblingCountIn(vs ...int) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldSiblingCount, vs...))
}

// SiblingCountNotIn applies the NotIn predicate on the "sibling_count" field.
func SiblingCountNotIn(vs ...int) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldSiblingCount, vs...))
}

// SiblingCountGT applies the GT predicate on the "sibling_count" field.
func SiblingCountGT(v int) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldSiblingCount, v))
}

// SiblingCountGTE applies the GTE predicate on the "sibling_count" field.
func SiblingCountGTE(v int) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldSiblingCount, v))
}

// SiblingCountLT applies the LT predicate on the "sibling_count" field.
func SiblingCountLT(v int) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldSiblingCount, v))
}

// SiblingCountLTE applies the LTE predicate on the "sibling_count" field.
func SiblingCountLTE(v int) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldSiblingCount, v))
}

// SiblingCountIsNil applies the IsNil predicate on the "sibling_count" field.
func SiblingCountIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSiblingCount))
}

// SiblingCountNotNil applies the NotNil predicate on the "sibling_count" field.
func SiblingCountNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSiblingCount))
}

// SoloPlacementRequiredEQ applies the EQ predicate on the "solo_placement_required" field.
func SoloPlacementRequiredEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSoloPlacementRequired, v))
}

// SoloPlacementRequiredNEQ applies the NEQ predicate on the "solo_placement_required" field.
func SoloPlacementRequiredNEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSoloPlacementRequired, v))
}

// SoloPlacementRequiredIsNil applies the IsNil predicate on the "solo_placement_required" field.
func SoloPlacementRequiredIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSoloPlacementRequired))
}

// SoloPlacementRequiredNotNil applies the NotNil predicate on the "solo_placement_required" field.
func SoloPlacementRequiredNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSoloPlacementRequired))
}

// PetsInHomeAcceptableEQ applies the EQ predicate on the "pets_in_home_acceptable" field.
func PetsInHomeAcceptableEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldPetsInHomeAcceptable, v))
}

// PetsInHomeAcceptableNEQ applies the NEQ predicate on the "pets_in_home_acceptable" field.
func PetsInHomeAcceptableNEQ(v bool) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldPetsInHomeAcceptable, v))
}

// PetsInHomeAcceptableIsNil applies the IsNil predicate on the "pets_in_home_acceptable" field.
func PetsInHomeAcceptableIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldPetsInHomeAcceptable))
}

// PetsInHomeAcceptableNotNil applies the NotNil predicate on the "pets_in_home_acceptable" field.
func PetsInHomeAcceptableNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldPetsInHomeAcceptable))
}

// PreferredLocationsIsNil applies the IsNil predicate on the "preferred_locations" field.
func PreferredLocationsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldPreferredLocations))
}

// PreferredLocationsNotNil applies the NotNil predicate on the "preferred_locations" field.
func PreferredLocationsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldPreferredLocations))
}

// ExcludedLocationsIsNil applies the IsNil predicate on the "excluded_locations" field.
func ExcludedLocationsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldExcludedLocations))
}

// ExcludedLocationsNotNil applies the NotNil predicate on the "excluded_locations" field.
func ExcludedLocationsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldExcludedLocations))
}

// CarerGenderPreferenceEQ applies the EQ predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceNEQ applies the NEQ predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceIn applies the In predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldCarerGenderPreference, vs...))
}

// CarerGenderPreferenceNotIn applies the NotIn predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldCarerGenderPreference, vs...))
}

// CarerGenderPreferenceGT applies the GT predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceGTE applies the GTE predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceLT applies the LT predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceLTE applies the LTE predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceContains applies the Contains predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceHasPrefix applies the HasPrefix predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceHasSuffix applies the HasSuffix predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceIsNil applies the IsNil predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldCarerGenderPreference))
}

// CarerGenderPreferenceNotNil applies the NotNil predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldCarerGenderPreference))
}

// CarerGenderPreferenceEqualFold applies the EqualFold predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldCarerGenderPreference, v))
}

// CarerGenderPreferenceContainsFold applies the ContainsFold predicate on the "carer_gender_preference" field.
func CarerGenderPreferenceContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldCarerGenderPreference, v))
}

// SupportNeedsIsNil applies the IsNil predicate on the "support_needs" field.
func SupportNeedsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldSupportNeeds))
}

// SupportNeedsNotNil applies the NotNil predicate on the "support_needs" field.
func SupportNeedsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldSupportNeeds))
}

// MedicalNeedsIsNil applies the IsNil predicate on the "medical_needs" field.
func MedicalNeedsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldMedicalNeeds))
}

// MedicalNeedsNotNil applies the NotNil predicate on the "medical_needs" field.
func MedicalNeedsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldMedicalNeeds))
}

// EducationalNeedsIsNil applies the IsNil predicate on the "educational_needs" field.
func EducationalNeedsIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldEducationalNeeds))
}

// EducationalNeedsNotNil applies the NotNil predicate on the "educational_needs" field.
func EducationalNeedsNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldEducationalNeeds))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldUrgency, v))
}

// UrgencyContains applies the Contains predicate on the "urgency" field.
func UrgencyContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldUrgency, v))
}

// UrgencyHasPrefix applies the HasPrefix predicate on the "urgency" field.
func UrgencyHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldUrgency, v))
}

// UrgencyHasSuffix applies the HasSuffix predicate on the "urgency" field.
func UrgencyHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldUrgency, v))
}

// UrgencyEqualFold applies the EqualFold predicate on the "urgency" field.
func UrgencyEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldUrgency, v))
}

// UrgencyContainsFold applies the ContainsFold predicate on the "urgency" field.
func UrgencyContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldUrgency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldStatus, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldSource, v))
}

// AttachmentPathEQ applies the EQ predicate on the "attachment_path" field.
func AttachmentPathEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAttachmentPath, v))
}

// AttachmentPathNEQ applies the NEQ predicate on the "attachment_path" field.
func AttachmentPathNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldAttachmentPath, v))
}

// AttachmentPathIn applies the In predicate on the "attachment_path" field.
func AttachmentPathIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldAttachmentPath, vs...))
}

// AttachmentPathNotIn applies the NotIn predicate on the "attachment_path" field.
func AttachmentPathNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldAttachmentPath, vs...))
}

// AttachmentPathGT applies the GT predicate on the "attachment_path" field.
func AttachmentPathGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldAttachmentPath, v))
}

// AttachmentPathGTE applies the GTE predicate on the "attachment_path" field.
func AttachmentPathGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldAttachmentPath, v))
}

// AttachmentPathLT applies the LT predicate on the "attachment_path" field.
func AttachmentPathLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldAttachmentPath, v))
}

// AttachmentPathLTE applies the LTE predicate on the "attachment_path" field.
func AttachmentPathLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldAttachmentPath, v))
}

// AttachmentPathContains applies the Contains predicate on the "attachment_path" field.
func AttachmentPathContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldAttachmentPath, v))
}

// AttachmentPathHasPrefix applies the HasPrefix predicate on the "attachment_path" field.
func AttachmentPathHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldAttachmentPath, v))
}

// AttachmentPathHasSuffix applies the HasSuffix predicate on the "attachment_path" field.
func AttachmentPathHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldAttachmentPath, v))
}

// AttachmentPathIsNil applies the IsNil predicate on the "attachment_path" field.
func AttachmentPathIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldAttachmentPath))
}

// AttachmentPathNotNil applies the NotNil predicate on the "attachment_path" field.
func AttachmentPathNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldAttachmentPath))
}

// AttachmentPathEqualFold applies the EqualFold predicate on the "attachment_path" field.
func AttachmentPathEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldAttachmentPath, v))
}

// AttachmentPathContainsFold applies the ContainsFold predicate on the "attachment_path" field.
func AttachmentPathContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldAttachmentPath, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldExtractedData))
}

// MatchedCarersIsNil applies the IsNil predicate on the "matched_carers" field.
func MatchedCarersIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldMatchedCarers))
}

// MatchedCarersNotNil applies the NotNil predicate on the "matched_carers" field.
func MatchedCarersNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldMatchedCarers))
}

// AssignedCarerIDEQ applies the EQ predicate on the "assigned_carer_id" field.
func AssignedCarerIDEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedCarerID, v))
}

// AssignedCarerIDNEQ applies the NEQ predicate on the "assigned_carer_id" field.
func AssignedCarerIDNEQ(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldAssignedCarerID, v))
}

// AssignedCarerIDIn applies the In predicate on the "assigned_carer_id" field.
func AssignedCarerIDIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldAssignedCarerID, vs...))
}

// AssignedCarerIDNotIn applies the NotIn predicate on the "assigned_carer_id" field.
func AssignedCarerIDNotIn(vs ...uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldAssignedCarerID, vs...))
}

// AssignedCarerIDGT applies the GT predicate on the "assigned_carer_id" field.
func AssignedCarerIDGT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldAssignedCarerID, v))
}

// AssignedCarerIDGTE applies the GTE predicate on the "assigned_carer_id" field.
func AssignedCarerIDGTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldAssignedCarerID, v))
}

// AssignedCarerIDLT applies the LT predicate on the "assigned_carer_id" field.
func AssignedCarerIDLT(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldAssignedCarerID, v))
}

// AssignedCarerIDLTE applies the LTE predicate on the "assigned_carer_id" field.
func AssignedCarerIDLTE(v uuid.UUID) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldAssignedCarerID, v))
}

// AssignedCarerIDIsNil applies the IsNil predicate on the "assigned_carer_id" field.
func AssignedCarerIDIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldAssignedCarerID))
}

// AssignedCarerIDNotNil applies the NotNil predicate on the "assigned_carer_id" field.
func AssignedCarerIDNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldAssignedCarerID))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldAssignedAt, v))
}

// AssignedAtIsNil applies the IsNil predicate on the "assigned_at" field.
func AssignedAtIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldAssignedAt))
}

// AssignedAtNotNil applies the NotNil predicate on the "assigned_at" field.
func AssignedAtNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldAssignedAt))
}

// AssignedByEQ applies the EQ predicate on the "assigned_by" field.
func AssignedByEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldAssignedBy, v))
}

// AssignedByNEQ applies the NEQ predicate on the "assigned_by" field.
func AssignedByNEQ(v string) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldAssignedBy, v))
}

// AssignedByIn applies the In predicate on the "assigned_by" field.
func AssignedByIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldAssignedBy, vs...))
}

// AssignedByNotIn applies the NotIn predicate on the "assigned_by" field.
func AssignedByNotIn(vs ...string) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldAssignedBy, vs...))
}

// AssignedByGT applies the GT predicate on the "assigned_by" field.
func AssignedByGT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldAssignedBy, v))
}

// AssignedByGTE applies the GTE predicate on the "assigned_by" field.
func AssignedByGTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldAssignedBy, v))
}

// AssignedByLT applies the LT predicate on the "assigned_by" field.
func AssignedByLT(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldAssignedBy, v))
}

// AssignedByLTE applies the LTE predicate on the "assigned_by" field.
func AssignedByLTE(v string) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldAssignedBy, v))
}

// AssignedByContains applies the Contains predicate on the "assigned_by" field.
func AssignedByContains(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContains(FieldAssignedBy, v))
}

// AssignedByHasPrefix applies the HasPrefix predicate on the "assigned_by" field.
func AssignedByHasPrefix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasPrefix(FieldAssignedBy, v))
}

// AssignedByHasSuffix applies the HasSuffix predicate on the "assigned_by" field.
func AssignedByHasSuffix(v string) predicate.Referral {
	return predicate.Referral(sql.FieldHasSuffix(FieldAssignedBy, v))
}

// AssignedByIsNil applies the IsNil predicate on the "assigned_by" field.
func AssignedByIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldAssignedBy))
}

// AssignedByNotNil applies the NotNil predicate on the "assigned_by" field.
func AssignedByNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldAssignedBy))
}

// AssignedByEqualFold applies the EqualFold predicate on the "assigned_by" field.
func AssignedByEqualFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldEqualFold(FieldAssignedBy, v))
}

// AssignedByContainsFold applies the ContainsFold predicate on the "assigned_by" field.
func AssignedByContainsFold(v string) predicate.Referral {
	return predicate.Referral(sql.FieldContainsFold(FieldAssignedBy, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldProcessedAt))
}

// StatusHistoryIsNil applies the IsNil predicate on the "status_history" field.
func StatusHistoryIsNil() predicate.Referral {
	return predicate.Referral(sql.FieldIsNull(FieldStatusHistory))
}

// StatusHistoryNotNil applies the NotNil predicate on the "status_history" field.
func StatusHistoryNotNil() predicate.Referral {
	return predicate.Referral(sql.FieldNotNull(FieldStatusHistory))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldReceivedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Referral {
	return predicate.Referral(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Referral) predicate.Referral {
	return predicate.Referral(sql.NotPredicates(p))
}
