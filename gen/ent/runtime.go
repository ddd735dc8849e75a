// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/careflow-uk/fostermatch/db/ent/schema"
	"github.com/careflow-uk/fostermatch/gen/ent/auditlog"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[1].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = func() func(string) error {
		validators := auditlogDescEntityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity_type string) error {
			for _, fn := range fns {
				if err := fn(entity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = func() func(string) error {
		validators := auditlogDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	carerFields := schema.Carer{}.Fields()
	_ = carerFields
	// carerDescName is the schema descriptor for name field.
	carerDescName := carerFields[1].Descriptor()
	// carer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	carer.NameValidator = carerDescName.Validators[0].(func(string) error)
	// carerDescMinAge is the schema descriptor for min_age field.
	carerDescMinAge := carerFields[4].Descriptor()
	// carer.MinAgeValidator is a validator for the "min_age" field. It is called by the builders before save.
	carer.MinAgeValidator = carerDescMinAge.Validators[0].(func(int) error)
	// carerDescMaxAge is the schema descriptor for max_age field.
	carerDescMaxAge := carerFields[5].Descriptor()
	// carer.MaxAgeValidator is a validator for the "max_age" field. It is called by the builders before save.
	carer.MaxAgeValidator = carerDescMaxAge.Validators[0].(func(int) error)
	// carerDescAcceptsSiblings is the schema descriptor for accepts_siblings field.
	carerDescAcceptsSiblings := carerFields[6].Descriptor()
	// carer.DefaultAcceptsSiblings holds the default value on creation for the accepts_siblings field.
	carer.DefaultAcceptsSiblings = carerDescAcceptsSiblings.Default.(bool)
	// carerDescAllowsPets is the schema descriptor for allows_pets field.
	carerDescAllowsPets := carerFields[7].Descriptor()
	// carer.DefaultAllowsPets holds the default value on creation for the allows_pets field.
	carer.DefaultAllowsPets = carerDescAllowsPets.Default.(bool)
	// carerDescBehaviouralExperience is the schema descriptor for behavioural_experience field.
	carerDescBehaviouralExperience := carerFields[8].Descriptor()
	// carer.DefaultBehaviouralExperience holds the default value on creation for the behavioural_experience field.
	carer.DefaultBehaviouralExperience = carerDescBehaviouralExperience.Default.(bool)
	// carerDescSenExperience is the schema descriptor for sen_experience field.
	carerDescSenExperience := carerFields[9].Descriptor()
	// carer.DefaultSenExperience holds the default value on creation for the sen_experience field.
	carer.DefaultSenExperience = carerDescSenExperience.Default.(bool)
	// carerDescGenderPreference is the schema descriptor for gender_preference field.
	carerDescGenderPreference := carerFields[12].Descriptor()
	// carer.GenderPreferenceValidator is a validator for the "gender_preference" field. It is called by the builders before save.
	carer.GenderPreferenceValidator = carerDescGenderPreference.Validators[0].(func(string) error)
	// carerDescCapacity is the schema descriptor for capacity field.
	carerDescCapacity := carerFields[13].Descriptor()
	// carer.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	carer.CapacityValidator = carerDescCapacity.Validators[0].(func(int) error)
	// carerDescStatus is the schema descriptor for status field.
	carerDescStatus := carerFields[14].Descriptor()
	// carer.DefaultStatus holds the default value on creation for the status field.
	carer.DefaultStatus = carerDescStatus.Default.(string)
	// carer.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	carer.StatusValidator = carerDescStatus.Validators[0].(func(string) error)
	// carerDescCreatedAt is the schema descriptor for created_at field.
	carerDescCreatedAt := carerFields[16].Descriptor()
	// carer.DefaultCreatedAt holds the default value on creation for the created_at field.
	carer.DefaultCreatedAt = carerDescCreatedAt.Default.(func() time.Time)
	// carerDescUpdatedAt is the schema descriptor for updated_at field.
	carerDescUpdatedAt := carerFields[17].Descriptor()
	// carer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	carer.DefaultUpdatedAt = carerDescUpdatedAt.Default.(func() time.Time)
	// carer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	carer.UpdateDefaultUpdatedAt = carerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// carerDescID is the schema descriptor for id field.
	carerDescID := carerFields[0].Descriptor()
	// carer.DefaultID holds the default value on creation for the id field.
	carer.DefaultID = carerDescID.Default.(func() uuid.UUID)
	referralFields := schema.Referral{}.Fields()
	_ = referralFields
	// referralDescChildAge is the schema descriptor for child_age field.
	referralDescChildAge := referralFields[2].Descriptor()
	// referral.ChildAgeValidator is a validator for the "child_age" field. It is called by the builders before save.
	referral.ChildAgeValidator = func() func(int) error {
		validators := referralDescChildAge.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(child_age int) error {
			for _, fn := range fns {
				if err := fn(child_age); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// referralDescGender is the schema descriptor for gender field.
	referralDescGender := referralFields[3].Descriptor()
	// referral.GenderValidator is a validator for the "gender" field. It is called by the builders before save.
	referral.GenderValidator = referralDescGender.Validators[0].(func(string) error)
	// referralDescEthnicity is the schema descriptor for ethnicity field.
	referralDescEthnicity := referralFields[4].Descriptor()
	// referral.EthnicityValidator is a validator for the "ethnicity" field. It is called by the builders before save.
	referral.EthnicityValidator = referralDescEthnicity.Validators[0].(func(string) error)
	// referralDescCulturalBackground is the schema descriptor for cultural_background field.
	referralDescCulturalBackground := referralFields[5].Descriptor()
	// referral.CulturalBackgroundValidator is a validator for the "cultural_background" field. It is called by the builders before save.
	referral.CulturalBackgroundValidator = referralDescCulturalBackground.Validators[0].(func(string) error)
	// referralDescPlacementType is the schema descriptor for placement_type field.
	referralDescPlacementType := referralFields[10].Descriptor()
	// referral.PlacementTypeValidator is a validator for the "placement_type" field. It is called by the builders before save.
	referral.PlacementTypeValidator = referralDescPlacementType.Validators[0].(func(string) error)
	// referralDescSiblingCount is the schema descriptor for sibling_count field.
	referralDescSiblingCount := referralFields[12].Descriptor()
	// referral.SiblingCountValidator is a validator for the "sibling_count" field. It is called by the builders before save.
	referral.SiblingCountValidator = referralDescSiblingCount.Validators[0].(func(int) error)
	// referralDescCarerGenderPreference is the schema descriptor for carer_gender_preference field.
	referralDescCarerGenderPreference := referralFields[17].Descriptor()
	// referral.CarerGenderPreferenceValidator is a validator for the "carer_gender_preference" field. It is called by the builders before save.
	referral.CarerGenderPreferenceValidator = referralDescCarerGenderPreference.Validators[0].(func(string) error)
	// referralDescUrgency is the schema descriptor for urgency field.
	referralDescUrgency := referralFields[21].Descriptor()
	// referral.DefaultUrgency holds the default value on creation for the urgency field.
	referral.DefaultUrgency = referralDescUrgency.Default.(string)
	// referral.UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	referral.UrgencyValidator = referralDescUrgency.Validators[0].(func(string) error)
	// referralDescStatus is the schema descriptor for status field.
	referralDescStatus := referralFields[22].Descriptor()
	// referral.DefaultStatus holds the default value on creation for the status field.
	referral.DefaultStatus = referralDescStatus.Default.(string)
	// referral.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	referral.StatusValidator = referralDescStatus.Validators[0].(func(string) error)
	// referralDescSource is the schema descriptor for source field.
	referralDescSource := referralFields[23].Descriptor()
	// referral.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	referral.SourceValidator = referralDescSource.Validators[0].(func(string) error)
	// referralDescCreatedAt is the schema descriptor for created_at field.
	referralDescCreatedAt := referralFields[34].Descriptor()
	// referral.DefaultCreatedAt holds the default value on creation for the created_at field.
	referral.DefaultCreatedAt = referralDescCreatedAt.Default.(func() time.Time)
	// referralDescUpdatedAt is the schema descriptor for updated_at field.
	referralDescUpdatedAt := referralFields[35].Descriptor()
	// referral.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	referral.DefaultUpdatedAt = referralDescUpdatedAt.Default.(func() time.Time)
	// referral.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	referral.UpdateDefaultUpdatedAt = referralDescUpdatedAt.UpdateDefault.(func() time.Time)
	// referralDescID is the schema descriptor for id field.
	referralDescID := referralFields[0].Descriptor()
	// referral.DefaultID holds the default value on creation for the id field.
	referral.DefaultID = referralDescID.Default.(func() uuid.UUID)
}
