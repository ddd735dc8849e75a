// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/careflow-uk/fostermatch/gen/ent/predicate"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/google/uuid"
)

// ReferralUpdate is the builder for updating Referral entities.
type ReferralUpdate struct {
	config
	hooks    []Hook
	mutation *ReferralMutation
}

// Where appends a list predicates to the ReferralUpdate builder.
func (_u *ReferralUpdate) Where(ps ...predicate.Referral) *ReferralUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildName sets the "child_name" field.
func (_u *ReferralUpdate) SetChildName(v string) *ReferralUpdate {
	_u.mutation.SetChildName(v)
	return _u
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableChildName(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetChildName(*v)
	}
	return _u
}

// ClearChildName clears the value of the "child_name" field.
func (_u *ReferralUpdate) ClearChildName() *ReferralUpdate {
	_u.mutation.ClearChildName()
	return _u
}

// SetChildAge sets the "child_age" field.
func (_u *ReferralUpdate) SetChildAge(v int) *ReferralUpdate {
	_u.mutation.ResetChildAge()
	_u.mutation.SetChildAge(v)
	return _u
}

// SetNillableChildAge sets the "child_age" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableChildAge(v *int) *ReferralUpdate {
	if v != nil {
		_u.SetChildAge(*v)
	}
	return _u
}

// AddChildAge adds value to the "child_age" field.
func (_u *ReferralUpdate) AddChildAge(v int) *ReferralUpdate {
	_u.mutation.AddChildAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *ReferralUpdate) SetGender(v string) *ReferralUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableGender(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetEthnicity sets the "ethnicity" field.
func (_u *ReferralUpdate) SetEthnicity(v string) *ReferralUpdate {
	_u.mutation.SetEthnicity(v)
	return _u
}

// SetNillableEthnicity sets the "ethnicity" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableEthnicity(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetEthnicity(*v)
	}
	return _u
}

// SetCulturalBackground sets the "cultural_background" field.
func (_u *ReferralUpdate) SetCulturalBackground(v string) *ReferralUpdate {
	_u.mutation.SetCulturalBackground(v)
	return _u
}

// SetNillableCulturalBackground sets the "cultural_background" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableCulturalBackground(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetCulturalBackground(*v)
	}
	return _u
}

// SetDisabilities sets the "disabilities" field.
func (_u *ReferralUpdate) SetDisabilities(v []string) *ReferralUpdate {
	_u.mutation.SetDisabilities(v)
	return _u
}

// AppendDisabilities appends value to the "disabilities" field.
func (_u *ReferralUpdate) AppendDisabilities(v []string) *ReferralUpdate {
	_u.mutation.AppendDisabilities(v)
	return _u
}

// ClearDisabilities clears the value of the "disabilities" field.
func (_u *ReferralUpdate) ClearDisabilities() *ReferralUpdate {
	_u.mutation.ClearDisabilities()
	return _u
}

// SetSen sets the "sen" field.
func (_u *ReferralUpdate) SetSen(v bool) *ReferralUpdate {
	_u.mutation.SetSen(v)
	return _u
}

// SetNillableSen sets the "sen" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableSen(v *bool) *ReferralUpdate {
	if v != nil {
		_u.SetSen(*v)
	}
	return _u
}

// ClearSen clears the value of the "sen" field.
func (_u *ReferralUpdate) ClearSen() *ReferralUpdate {
	_u.mutation.ClearSen()
	return _u
}

// SetBehaviouralNeeds sets the "behavioural_needs" field.
func (_u *ReferralUpdate) SetBehaviouralNeeds(v bool) *ReferralUpdate {
	_u.mutation.SetBehaviouralNeeds(v)
	return _u
}

// SetNillableBehaviouralNeeds sets the "behavioural_needs" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableBehaviouralNeeds(v *bool) *ReferralUpdate {
	if v != nil {
		_u.SetBehaviouralNeeds(*v)
	}
	return _u
}

// ClearBehaviouralNeeds clears the value of the "behavioural_needs" field.
func (_u *ReferralUpdate) ClearBehaviouralNeeds() *ReferralUpdate {
	_u.mutation.ClearBehaviouralNeeds()
	return _u
}

// SetBehaviouralDetails sets the "behavioural_details" field.
func (_u *ReferralUpdate) SetBehaviouralDetails(v string) *ReferralUpdate {
	_u.mutation.SetBehaviouralDetails(v)
	return _u
}

// SetNillableBehaviouralDetails sets the "behavioural_details" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableBehaviouralDetails(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetBehaviouralDetails(*v)
	}
	return _u
}

// ClearBehaviouralDetails clears the value of the "behavioural_details" field.
func (_u *ReferralUpdate) ClearBehaviouralDetails() *ReferralUpdate {
	_u.mutation.ClearBehaviouralDetails()
	return _u
}

// SetPlacementType sets the "placement_type" field.
func (_u *ReferralUpdate) SetPlacementType(v string) *ReferralUpdate {
	_u.mutation.SetPlacementType(v)
	return _u
}

// SetNillablePlacementType sets the "placement_type" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillablePlacementType(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetPlacementType(*v)
	}
	return _u
}

// SetSiblingGroup sets the "sibling_group" field.
func (_u *ReferralUpdate) SetSiblingGroup(v bool) *ReferralUpdate {
	_u.mutation.SetSiblingGroup(v)
	return _u
}

// SetNillableSiblingGroup sets the "sibling_group" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableSiblingGroup(v *bool) *ReferralUpdate {
	if v != nil {
		_u.SetSiblingGroup(*v)
	}
	return _u
}

// ClearSiblingGroup clears the value of the "sibling_group" field.
func (_u *ReferralUpdate) ClearSiblingGroup() *ReferralUpdate {
	_u.mutation.ClearSiblingGroup()
	return _u
}

// SetSiblingCount sets the "sibling_count" field.
func (_u *ReferralUpdate) SetSiblingCount(v int) *ReferralUpdate {
	_u.mutation.ResetSiblingCount()
	_u.mutation.SetSiblingCount(v)
	return _u
}

// SetNillableSiblingCount sets the "sibling_count" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableSiblingCount(v *int) *ReferralUpdate {
	if v != nil {
		_u.SetSiblingCount(*v)
	}
	return _u
}

// AddSiblingCount adds value to the "sibling_count" field.
func (_u *ReferralUpdate) AddSiblingCount(v int) *ReferralUpdate {
	_u.mutation.AddSiblingCount(v)
	return _u
}

// ClearSiblingCount clears the value of the "sibling_count" field.
func (_u *ReferralUpdate) ClearSiblingCount() *ReferralUpdate {
	_u.mutation.ClearSiblingCount()
	return _u
}

// SetSoloPlacementRequired sets the "solo_placement_required" field.
func (_u *ReferralUpdate) SetSoloPlacementRequired(v bool) *ReferralUpdate {
	_u.mutation.SetSoloPlacementRequired(v)
	return _u
}

// SetNillableSoloPlacementRequired sets the "solo_placement_required" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableSoloPlacementRequired(v *bool) *ReferralUpdate {
	if v != nil {
		_u.SetSoloPlacementRequired(*v)
	}
	return _u
}

// ClearSoloPlacementRequired clears the value of the "solo_placement_required" field.
func (_u *ReferralUpdate) ClearSoloPlacementRequired() *ReferralUpdate {
	_u.mutation.ClearSoloPlacementRequired()
	return _u
}

// SetPetsInHomeAcceptable sets the "pets_in_home_acceptable" field.
func (_u *ReferralUpdate) SetPetsInHomeAcceptable(v bool) *ReferralUpdate {
	_u.mutation.SetPetsInHomeAcceptable(v)
	return _u
}

// SetNillablePetsInHomeAcceptable sets the "pets_in_home_acceptable" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillablePetsInHomeAcceptable(v *bool) *ReferralUpdate {
	if v != nil {
		_u.SetPetsInHomeAcceptable(*v)
	}
	return _u
}

// ClearPetsInHomeAcceptable clears the value of the "pets_in_home_acceptable" field.
func (_u *ReferralUpdate) ClearPetsInHomeAcceptable() *ReferralUpdate {
	_u.mutation.ClearPetsInHomeAcceptable()
	return _u
}

// SetPreferredLocations sets the "preferred_locations" field.
func (_u *ReferralUpdate) SetPreferredLocations(v []string) *ReferralUpdate {
	_u.mutation.SetPreferredLocations(v)
	return _u
}

// AppendPreferredLocations appends value to the "preferred_locations" field.
func (_u *ReferralUpdate) AppendPreferredLocations(v []string) *ReferralUpdate {
	_u.mutation.AppendPreferredLocations(v)
	return _u
}

// ClearPreferredLocations clears the value of the "preferred_locations" field.
func (_u *ReferralUpdate) ClearPreferredLocations() *ReferralUpdate {
	_u.mutation.ClearPreferredLocations()
	return _u
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_u *ReferralUpdate) SetExcludedLocations(v []string) *ReferralUpdate {
	_u.mutation.SetExcludedLocations(v)
	return _u
}

// AppendExcludedLocations appends value to the "excluded_locations" field.
func (_u *ReferralUpdate) AppendExcludedLocations(v []string) *ReferralUpdate {
	_u.mutation.AppendExcludedLocations(v)
	return _u
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (_u *ReferralUpdate) ClearExcludedLocations() *ReferralUpdate {
	_u.mutation.ClearExcludedLocations()
	return _u
}

// SetCarerGenderPreference sets the "carer_gender_preference" field.
func (_u *ReferralUpdate) SetCarerGenderPreference(v string) *ReferralUpdate {
	_u.mutation.SetCarerGenderPreference(v)
	return _u
}

// SetNillableCarerGenderPreference sets the "carer_gender_preference" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableCarerGenderPreference(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetCarerGenderPreference(*v)
	}
	return _u
}

// ClearCarerGenderPreference clears the value of the "carer_gender_preference" field.
func (_u *ReferralUpdate) ClearCarerGenderPreference() *ReferralUpdate {
	_u.mutation.ClearCarerGenderPreference()
	return _u
}

// SetSupportNeeds sets the "support_needs" field.
func (_u *ReferralUpdate) SetSupportNeeds(v []string) *ReferralUpdate {
	_u.mutation.SetSupportNeeds(v)
	return _u
}

// AppendSupportNeeds appends value to the "support_needs" field.
func (_u *ReferralUpdate) AppendSupportNeeds(v []string) *ReferralUpdate {
	_u.mutation.AppendSupportNeeds(v)
	return _u
}

// ClearSupportNeeds clears the value of the "support_needs" field.
func (_u *ReferralUpdate) ClearSupportNeeds() *ReferralUpdate {
	_u.mutation.ClearSupportNeeds()
	return _u
}

// SetMedicalNeeds sets the "medical_needs" field.
func (_u *ReferralUpdate) SetMedicalNeeds(v []string) *ReferralUpdate {
	_u.mutation.SetMedicalNeeds(v)
	return _u
}

// AppendMedicalNeeds appends value to the "medical_needs" field.
func (_u *ReferralUpdate) AppendMedicalNeeds(v []string) *ReferralUpdate {
	_u.mutation.AppendMedicalNeeds(v)
	return _u
}

// ClearMedicalNeeds clears the value of the "medical_needs" field.
func (_u *ReferralUpdate) ClearMedicalNeeds() *ReferralUpdate {
	_u.mutation.ClearMedicalNeeds()
	return _u
}

// SetEducationalNeeds sets the "educational_needs" field.
func (_u *ReferralUpdate) SetEducationalNeeds(v []string) *ReferralUpdate {
	_u.mutation.SetEducationalNeeds(v)
	return _u
}

// AppendEducationalNeeds appends value to the "educational_needs" field.
func (_u *ReferralUpdate) AppendEducationalNeeds(v []string) *ReferralUpdate {
	_u.mutation.AppendEducationalNeeds(v)
	return _u
}

// ClearEducationalNeeds clears the value of the "educational_needs" field.
func (_u *ReferralUpdate) ClearEducationalNeeds() *ReferralUpdate {
	_u.mutation.ClearEducationalNeeds()
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ReferralUpdate) SetUrgency(v string) *ReferralUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableUrgency(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReferralUpdate) SetStatus(v string) *ReferralUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableStatus(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferralUpdate) SetSource(v string) *ReferralUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableSource(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAttachmentPath sets the "attachment_path" field.
func (_u *ReferralUpdate) SetAttachmentPath(v string) *ReferralUpdate {
	_u.mutation.SetAttachmentPath(v)
	return _u
}

// SetNillableAttachmentPath sets the "attachment_path" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableAttachmentPath(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetAttachmentPath(*v)
	}
	return _u
}

// ClearAttachmentPath clears the value of the "attachment_path" field.
func (_u *ReferralUpdate) ClearAttachmentPath() *ReferralUpdate {
	_u.mutation.ClearAttachmentPath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReferralUpdate) SetRawText(v string) *ReferralUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableRawText(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReferralUpdate) ClearRawText() *ReferralUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ReferralUpdate) SetExtractedData(v json.RawMessage) *ReferralUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *ReferralUpdate) AppendExtractedData(v json.RawMessage) *ReferralUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ReferralUpdate) ClearExtractedData() *ReferralUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetMatchedCarers sets the "matched_carers" field.
func (_u *ReferralUpdate) SetMatchedCarers(v json.RawMessage) *ReferralUpdate {
	_u.mutation.SetMatchedCarers(v)
	return _u
}

// AppendMatchedCarers appends value to the "matched_carers" field.
func (_u *ReferralUpdate) AppendMatchedCarers(v json.RawMessage) *ReferralUpdate {
	_u.mutation.AppendMatchedCarers(v)
	return _u
}

// ClearMatchedCarers clears the value of the "matched_carers" field.
func (_u *ReferralUpdate) ClearMatchedCarers() *ReferralUpdate {
	_u.mutation.ClearMatchedCarers()
	return _u
}

// SetAssignedCarerID sets the "assigned_carer_id" field.
func (_u *ReferralUpdate) SetAssignedCarerID(v uuid.UUID) *ReferralUpdate {
	_u.mutation.SetAssignedCarerID(v)
	return _u
}

// SetNillableAssignedCarerID sets the "assigned_carer_id" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableAssignedCarerID(v *uuid.UUID) *ReferralUpdate {
	if v != nil {
		_u.SetAssignedCarerID(*v)
	}
	return _u
}

// ClearAssignedCarerID clears the value of the "assigned_carer_id" field.
func (_u *ReferralUpdate) ClearAssignedCarerID() *ReferralUpdate {
	_u.mutation.ClearAssignedCarerID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ReferralUpdate) SetAssignedAt(v time.Time) *ReferralUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableAssignedAt(v *time.Time) *ReferralUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *ReferralUpdate) ClearAssignedAt() *ReferralUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ReferralUpdate) SetAssignedBy(v string) *ReferralUpdate {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableAssignedBy(v *string) *ReferralUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (_u *ReferralUpdate) ClearAssignedBy() *ReferralUpdate {
	_u.mutation.ClearAssignedBy()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReferralUpdate) SetProcessedAt(v time.Time) *ReferralUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableProcessedAt(v *time.Time) *ReferralUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReferralUpdate) ClearProcessedAt() *ReferralUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ReferralUpdate) SetStatusHistory(v json.RawMessage) *ReferralUpdate {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ReferralUpdate) AppendStatusHistory(v json.RawMessage) *ReferralUpdate {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *ReferralUpdate) ClearStatusHistory() *ReferralUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReferralUpdate) SetCreatedAt(v time.Time) *ReferralUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReferralUpdate) SetNillableCreatedAt(v *time.Time) *ReferralUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralUpdate) SetUpdatedAt(v time.Time) *ReferralUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReferralMutation object of the builder.
func (_u *ReferralUpdate) Mutation() *ReferralMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferralUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferralUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralUpdate) check() error {
	if v, ok := _u.mutation.ChildAge(); ok {
		if err := referral.ChildAgeValidator(v); err != nil {
			return &ValidationError{Name: "child_age", err: fmt.Errorf(`ent: validator failed for field "Referral.child_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := referral.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Referral.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ethnicity(); ok {
		if err := referral.EthnicityValidator(v); err != nil {
			return &ValidationError{Name: "ethnicity", err: fmt.Errorf(`ent: validator failed for field "Referral.ethnicity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CulturalBackground(); ok {
		if err := referral.CulturalBackgroundValidator(v); err != nil {
			return &ValidationError{Name: "cultural_background", err: fmt.Errorf(`ent: validator failed for field "Referral.cultural_background": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlacementType(); ok {
		if err := referral.PlacementTypeValidator(v); err != nil {
			return &ValidationError{Name: "placement_type", err: fmt.Errorf(`ent: validator failed for field "Referral.placement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiblingCount(); ok {
		if err := referral.SiblingCountValidator(v); err != nil {
			return &ValidationError{Name: "sibling_count", err: fmt.Errorf(`ent: validator failed for field "Referral.sibling_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarerGenderPreference(); ok {
		if err := referral.CarerGenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "carer_gender_preference", err: fmt.Errorf(`ent: validator failed for field "Referral.carer_gender_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := referral.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Referral.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := referral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Referral.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := referral.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Referral.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferralUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referral.Table, referral.Columns, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildName(); ok {
		_spec.SetField(referral.FieldChildName, field.TypeString, value)
	}
	if _u.mutation.ChildNameCleared() {
		_spec.ClearField(referral.FieldChildName, field.TypeString)
	}
	if value, ok := _u.mutation.ChildAge(); ok {
		_spec.SetField(referral.FieldChildAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChildAge(); ok {
		_spec.AddField(referral.FieldChildAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(referral.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ethnicity(); ok {
		_spec.SetField(referral.FieldEthnicity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalBackground(); ok {
		_spec.SetField(referral.FieldCulturalBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.Disabilities(); ok {
		_spec.SetField(referral.FieldDisabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldDisabilities, value)
		})
	}
	if _u.mutation.DisabilitiesCleared() {
		_spec.ClearField(referral.FieldDisabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sen(); ok {
		_spec.SetField(referral.FieldSen, field.TypeBool, value)
	}
	if _u.mutation.SenCleared() {
		_spec.ClearField(referral.FieldSen, field.TypeBool)
	}
	if value, ok := _u.mutation.BehaviouralNeeds(); ok {
		_spec.SetField(referral.FieldBehaviouralNeeds, field.TypeBool, value)
	}
	if _u.mutation.BehaviouralNeedsCleared() {
		_spec.ClearField(referral.FieldBehaviouralNeeds, field.TypeBool)
	}
	if value, ok := _u.mutation.BehaviouralDetails(); ok {
		_spec.SetField(referral.FieldBehaviouralDetails, field.TypeString, value)
	}
	if _u.mutation.BehaviouralDetailsCleared() {
		_spec.ClearField(referral.FieldBehaviouralDetails, field.TypeString)
	}
	if value, ok := _u.mutation.PlacementType(); ok {
		_spec.SetField(referral.FieldPlacementType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiblingGroup(); ok {
		_spec.SetField(referral.FieldSiblingGroup, field.TypeBool, value)
	}
	if _u.mutation.SiblingGroupCleared() {
		_spec.ClearField(referral.FieldSiblingGroup, field.TypeBool)
	}
	if value, ok := _u.mutation.SiblingCount(); ok {
		_spec.SetField(referral.FieldSiblingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSiblingCount(); ok {
		_spec.AddField(referral.FieldSiblingCount, field.TypeInt, value)
	}
	if _u.mutation.SiblingCountCleared() {
		_spec.ClearField(referral.FieldSiblingCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SoloPlacementRequired(); ok {
		_spec.SetField(referral.FieldSoloPlacementRequired, field.TypeBool, value)
	}
	if _u.mutation.SoloPlacementRequiredCleared() {
		_spec.ClearField(referral.FieldSoloPlacementRequired, field.TypeBool)
	}
	if value, ok := _u.mutation.PetsInHomeAcceptable(); ok {
		_spec.SetField(referral.FieldPetsInHomeAcceptable, field.TypeBool, value)
	}
	if _u.mutation.PetsInHomeAcceptableCleared() {
		_spec.ClearField(referral.FieldPetsInHomeAcceptable, field.TypeBool)
	}
	if value, ok := _u.mutation.PreferredLocations(); ok {
		_spec.SetField(referral.FieldPreferredLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldPreferredLocations, value)
		})
	}
	if _u.mutation.PreferredLocationsCleared() {
		_spec.ClearField(referral.FieldPreferredLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExcludedLocations(); ok {
		_spec.SetField(referral.FieldExcludedLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExcludedLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldExcludedLocations, value)
		})
	}
	if _u.mutation.ExcludedLocationsCleared() {
		_spec.ClearField(referral.FieldExcludedLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CarerGenderPreference(); ok {
		_spec.SetField(referral.FieldCarerGenderPreference, field.TypeString, value)
	}
	if _u.mutation.CarerGenderPreferenceCleared() {
		_spec.ClearField(referral.FieldCarerGenderPreference, field.TypeString)
	}
	if value, ok := _u.mutation.SupportNeeds(); ok {
		_spec.SetField(referral.FieldSupportNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldSupportNeeds, value)
		})
	}
	if _u.mutation.SupportNeedsCleared() {
		_spec.ClearField(referral.FieldSupportNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.MedicalNeeds(); ok {
		_spec.SetField(referral.FieldMedicalNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedicalNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldMedicalNeeds, value)
		})
	}
	if _u.mutation.MedicalNeedsCleared() {
		_spec.ClearField(referral.FieldMedicalNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.EducationalNeeds(); ok {
		_spec.SetField(referral.FieldEducationalNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducationalNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldEducationalNeeds, value)
		})
	}
	if _u.mutation.EducationalNeedsCleared() {
		_spec.ClearField(referral.FieldEducationalNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(referral.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(referral.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referral.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttachmentPath(); ok {
		_spec.SetField(referral.FieldAttachmentPath, field.TypeString, value)
	}
	if _u.mutation.AttachmentPathCleared() {
		_spec.ClearField(referral.FieldAttachmentPath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(referral.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(referral.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(referral.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(referral.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedCarers(); ok {
		_spec.SetField(referral.FieldMatchedCarers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedCarers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldMatchedCarers, value)
		})
	}
	if _u.mutation.MatchedCarersCleared() {
		_spec.ClearField(referral.FieldMatchedCarers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedCarerID(); ok {
		_spec.SetField(referral.FieldAssignedCarerID, field.TypeUUID, value)
	}
	if _u.mutation.AssignedCarerIDCleared() {
		_spec.ClearField(referral.FieldAssignedCarerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(referral.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(referral.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(referral.FieldAssignedBy, field.TypeString, value)
	}
	if _u.mutation.AssignedByCleared() {
		_spec.ClearField(referral.FieldAssignedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(referral.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(referral.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(referral.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(referral.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(referral.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferralUpdateOne is the builder for updating a single Referral entity.
type ReferralUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferralMutation
}

// SetChildName sets the "child_name" field.
func (_u *ReferralUpdateOne) SetChildName(v string) *ReferralUpdateOne {
	_u.mutation.SetChildName(v)
	return _u
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableChildName(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetChildName(*v)
	}
	return _u
}

// ClearChildName clears the value of the "child_name" field.
func (_u *ReferralUpdateOne) ClearChildName() *ReferralUpdateOne {
	_u.mutation.ClearChildName()
	return _u
}

// SetChildAge sets the "child_age" field.
func (_u *ReferralUpdateOne) SetChildAge(v int) *ReferralUpdateOne {
	_u.mutation.ResetChildAge()
	_u.mutation.SetChildAge(v)
	return _u
}

// SetNillableChildAge sets the "child_age" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableChildAge(v *int) *ReferralUpdateOne {
	if v != nil {
		_u.SetChildAge(*v)
	}
	return _u
}

// AddChildAge adds value to the "child_age" field.
func (_u *ReferralUpdateOne) AddChildAge(v int) *ReferralUpdateOne {
	_u.mutation.AddChildAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *ReferralUpdateOne) SetGender(v string) *ReferralUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableGender(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetEthnicity sets the "ethnicity" field.
func (_u *ReferralUpdateOne) SetEthnicity(v string) *ReferralUpdateOne {
	_u.mutation.SetEthnicity(v)
	return _u
}

// SetNillableEthnicity sets the "ethnicity" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableEthnicity(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetEthnicity(*v)
	}
	return _u
}

// SetCulturalBackground sets the "cultural_background" field.
func (_u *ReferralUpdateOne) SetCulturalBackground(v string) *ReferralUpdateOne {
	_u.mutation.SetCulturalBackground(v)
	return _u
}

// SetNillableCulturalBackground sets the "cultural_background" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableCulturalBackground(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetCulturalBackground(*v)
	}
	return _u
}

// SetDisabilities sets the "disabilities" field.
func (_u *ReferralUpdateOne) SetDisabilities(v []string) *ReferralUpdateOne {
	_u.mutation.SetDisabilities(v)
	return _u
}

// AppendDisabilities appends value to the "disabilities" field.
func (_u *ReferralUpdateOne) AppendDisabilities(v []string) *ReferralUpdateOne {
	_u.mutation.AppendDisabilities(v)
	return _u
}

// ClearDisabilities clears the value of the "disabilities" field.
func (_u *ReferralUpdateOne) ClearDisabilities() *ReferralUpdateOne {
	_u.mutation.ClearDisabilities()
	return _u
}

// SetSen sets the "sen" field.
func (_u *ReferralUpdateOne) SetSen(v bool) *ReferralUpdateOne {
	_u.mutation.SetSen(v)
	return _u
}

// SetNillableSen sets the "sen" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableSen(v *bool) *ReferralUpdateOne {
	if v != nil {
		_u.SetSen(*v)
	}
	return _u
}

// ClearSen clears the value of the "sen" field.
func (_u *ReferralUpdateOne) ClearSen() *ReferralUpdateOne {
	_u.mutation.ClearSen()
	return _u
}

// SetBehaviouralNeeds sets the "behavioural_needs" field.
func (_u *ReferralUpdateOne) SetBehaviouralNeeds(v bool) *ReferralUpdateOne {
	_u.mutation.SetBehaviouralNeeds(v)
	return _u
}

// SetNillableBehaviouralNeeds sets the "behavioural_needs" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableBehaviouralNeeds(v *bool) *ReferralUpdateOne {
	if v != nil {
		_u.SetBehaviouralNeeds(*v)
	}
	return _u
}

// ClearBehaviouralNeeds clears the value of the "behavioural_needs" field.
func (_u *ReferralUpdateOne) ClearBehaviouralNeeds() *ReferralUpdateOne {
	_u.mutation.ClearBehaviouralNeeds()
	return _u
}

// SetBehaviouralDetails sets the "behavioural_details" field.
func (_u *ReferralUpdateOne) SetBehaviouralDetails(v string) *ReferralUpdateOne {
	_u.mutation.SetBehaviouralDetails(v)
	return _u
}

// SetNillableBehaviouralDetails sets the "behavioural_details" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableBehaviouralDetails(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetBehaviouralDetails(*v)
	}
	return _u
}

// ClearBehaviouralDetails clears the value of the "behavioural_details" field.
func (_u *ReferralUpdateOne) ClearBehaviouralDetails() *ReferralUpdateOne {
	_u.mutation.ClearBehaviouralDetails()
	return _u
}

// SetPlacementType sets the "placement_type" field.
func (_u *ReferralUpdateOne) SetPlacementType(v string) *ReferralUpdateOne {
	_u.mutation.SetPlacementType(v)
	return _u
}

// SetNillablePlacementType sets the "placement_type" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillablePlacementType(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetPlacementType(*v)
	}
	return _u
}

// SetSiblingGroup sets the "sibling_group" field.
func (_u *ReferralUpdateOne) SetSiblingGroup(v bool) *ReferralUpdateOne {
	_u.mutation.SetSiblingGroup(v)
	return _u
}

// SetNillableSiblingGroup sets the "sibling_group" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableSiblingGroup(v *bool) *ReferralUpdateOne {
	if v != nil {
		_u.SetSiblingGroup(*v)
	}
	return _u
}

// ClearSiblingGroup clears the value of the "sibling_group" field.
func (_u *ReferralUpdateOne) ClearSiblingGroup() *ReferralUpdateOne {
	_u.mutation.ClearSiblingGroup()
	return _u
}

// SetSiblingCount sets the "sibling_count" field.
func (_u *ReferralUpdateOne) SetSiblingCount(v int) *ReferralUpdateOne {
	_u.mutation.ResetSiblingCount()
	_u.mutation.SetSiblingCount(v)
	return _u
}

// SetNillableSiblingCount sets the "sibling_count" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableSiblingCount(v *int) *ReferralUpdateOne {
	if v != nil {
		_u.SetSiblingCount(*v)
	}
	return _u
}

// AddSiblingCount adds value to the "sibling_count" field.
func (_u *ReferralUpdateOne) AddSiblingCount(v int) *ReferralUpdateOne {
	_u.mutation.AddSiblingCount(v)
	return _u
}

// ClearSiblingCount clears the value of the "sibling_count" field.
func (_u *ReferralUpdateOne) ClearSiblingCount() *ReferralUpdateOne {
	_u.mutation.ClearSiblingCount()
	return _u
}

// SetSoloPlacementRequired sets the "solo_placement_required" field.
func (_u *ReferralUpdateOne) SetSoloPlacementRequired(v bool) *ReferralUpdateOne {
	_u.mutation.SetSoloPlacementRequired(v)
	return _u
}

// SetNillableSoloPlacementRequired sets the "solo_placement_required" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableSoloPlacementRequired(v *bool) *ReferralUpdateOne {
	if v != nil {
		_u.SetSoloPlacementRequired(*v)
	}
	return _u
}

// ClearSoloPlacementRequired clears the value of the "solo_placement_required" field.
func (_u *ReferralUpdateOne) ClearSoloPlacementRequired() *ReferralUpdateOne {
	_u.mutation.ClearSoloPlacementRequired()
	return _u
}

// SetPetsInHomeAcceptable sets the "pets_in_home_acceptable" field.
func (_u *ReferralUpdateOne) SetPetsInHomeAcceptable(v bool) *ReferralUpdateOne {
	_u.mutation.SetPetsInHomeAcceptable(v)
	return _u
}

// SetNillablePetsInHomeAcceptable sets the "pets_in_home_acceptable" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillablePetsInHomeAcceptable(v *bool) *ReferralUpdateOne {
	if v != nil {
		_u.SetPetsInHomeAcceptable(*v)
	}
	return _u
}

// ClearPetsInHomeAcceptable clears the value of the "pets_in_home_acceptable" field.
func (_u *ReferralUpdateOne) ClearPetsInHomeAcceptable() *ReferralUpdateOne {
	_u.mutation.ClearPetsInHomeAcceptable()
	return _u
}

// SetPreferredLocations sets the "preferred_locations" field.
func (_u *ReferralUpdateOne) SetPreferredLocations(v []string) *ReferralUpdateOne {
	_u.mutation.SetPreferredLocations(v)
	return _u
}

// AppendPreferredLocations appends value to the "preferred_locations" field.
func (_u *ReferralUpdateOne) AppendPreferredLocations(v []string) *ReferralUpdateOne {
	_u.mutation.AppendPreferredLocations(v)
	return _u
}

// ClearPreferredLocations clears the value of the "preferred_locations" field.
func (_u *ReferralUpdateOne) ClearPreferredLocations() *ReferralUpdateOne {
	_u.mutation.ClearPreferredLocations()
	return _u
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_u *ReferralUpdateOne) SetExcludedLocations(v []string) *ReferralUpdateOne {
	_u.mutation.SetExcludedLocations(v)
	return _u
}

// AppendExcludedLocations appends value to the "excluded_locations" field.
func (_u *ReferralUpdateOne) AppendExcludedLocations(v []string) *ReferralUpdateOne {
	_u.mutation.AppendExcludedLocations(v)
	return _u
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (_u *ReferralUpdateOne) ClearExcludedLocations() *ReferralUpdateOne {
	_u.mutation.ClearExcludedLocations()
	return _u
}

// SetCarerGenderPreference sets the "carer_gender_preference" field.
func (_u *ReferralUpdateOne) SetCarerGenderPreference(v string) *ReferralUpdateOne {
	_u.mutation.SetCarerGenderPreference(v)
	return _u
}

// SetNillableCarerGenderPreference sets the "carer_gender_preference" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableCarerGenderPreference(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetCarerGenderPreference(*v)
	}
	return _u
}

// ClearCarerGenderPreference clears the value of the "carer_gender_preference" field.
func (_u *ReferralUpdateOne) ClearCarerGenderPreference() *ReferralUpdateOne {
	_u.mutation.ClearCarerGenderPreference()
	return _u
}

// SetSupportNeeds sets the "support_needs" field.
func (_u *ReferralUpdateOne) SetSupportNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.SetSupportNeeds(v)
	return _u
}

// AppendSupportNeeds appends value to the "support_needs" field.
func (_u *ReferralUpdateOne) AppendSupportNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.AppendSupportNeeds(v)
	return _u
}

// ClearSupportNeeds clears the value of the "support_needs" field.
func (_u *ReferralUpdateOne) ClearSupportNeeds() *ReferralUpdateOne {
	_u.mutation.ClearSupportNeeds()
	return _u
}

// SetMedicalNeeds sets the "medical_needs" field.
func (_u *ReferralUpdateOne) SetMedicalNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.SetMedicalNeeds(v)
	return _u
}

// AppendMedicalNeeds appends value to the "medical_needs" field.
func (_u *ReferralUpdateOne) AppendMedicalNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.AppendMedicalNeeds(v)
	return _u
}

// ClearMedicalNeeds clears the value of the "medical_needs" field.
func (_u *ReferralUpdateOne) ClearMedicalNeeds() *ReferralUpdateOne {
	_u.mutation.ClearMedicalNeeds()
	return _u
}

// SetEducationalNeeds sets the "educational_needs" field.
func (_u *ReferralUpdateOne) SetEducationalNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.SetEducationalNeeds(v)
	return _u
}

// AppendEducationalNeeds appends value to the "educational_needs" field.
func (_u *ReferralUpdateOne) AppendEducationalNeeds(v []string) *ReferralUpdateOne {
	_u.mutation.AppendEducationalNeeds(v)
	return _u
}

// ClearEducationalNeeds clears the value of the "educational_needs" field.
func (_u *ReferralUpdateOne) ClearEducationalNeeds() *ReferralUpdateOne {
	_u.mutation.ClearEducationalNeeds()
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ReferralUpdateOne) SetUrgency(v string) *ReferralUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableUrgency(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReferralUpdateOne) SetStatus(v string) *ReferralUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableStatus(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ReferralUpdateOne) SetSource(v string) *ReferralUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableSource(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAttachmentPath sets the "attachment_path" field.
func (_u *ReferralUpdateOne) SetAttachmentPath(v string) *ReferralUpdateOne {
	_u.mutation.SetAttachmentPath(v)
	return _u
}

// SetNillableAttachmentPath sets the "attachment_path" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableAttachmentPath(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetAttachmentPath(*v)
	}
	return _u
}

// ClearAttachmentPath clears the value of the "attachment_path" field.
func (_u *ReferralUpdateOne) ClearAttachmentPath() *ReferralUpdateOne {
	_u.mutation.ClearAttachmentPath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReferralUpdateOne) SetRawText(v string) *ReferralUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableRawText(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ReferralUpdateOne) ClearRawText() *ReferralUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *ReferralUpdateOne) SetExtractedData(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *ReferralUpdateOne) AppendExtractedData(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *ReferralUpdateOne) ClearExtractedData() *ReferralUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetMatchedCarers sets the "matched_carers" field.
func (_u *ReferralUpdateOne) SetMatchedCarers(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.SetMatchedCarers(v)
	return _u
}

// AppendMatchedCarers appends value to the "matched_carers" field.
func (_u *ReferralUpdateOne) AppendMatchedCarers(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.AppendMatchedCarers(v)
	return _u
}

// ClearMatchedCarers clears the value of the "matched_carers" field.
func (_u *ReferralUpdateOne) ClearMatchedCarers() *ReferralUpdateOne {
	_u.mutation.ClearMatchedCarers()
	return _u
}

// SetAssignedCarerID sets the "assigned_carer_id" field.
func (_u *ReferralUpdateOne) SetAssignedCarerID(v uuid.UUID) *ReferralUpdateOne {
	_u.mutation.SetAssignedCarerID(v)
	return _u
}

// SetNillableAssignedCarerID sets the "assigned_carer_id" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableAssignedCarerID(v *uuid.UUID) *ReferralUpdateOne {
	if v != nil {
		_u.SetAssignedCarerID(*v)
	}
	return _u
}

// ClearAssignedCarerID clears the value of the "assigned_carer_id" field.
func (_u *ReferralUpdateOne) ClearAssignedCarerID() *ReferralUpdateOne {
	_u.mutation.ClearAssignedCarerID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ReferralUpdateOne) SetAssignedAt(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableAssignedAt(v *time.Time) *ReferralUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *ReferralUpdateOne) ClearAssignedAt() *ReferralUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ReferralUpdateOne) SetAssignedBy(v string) *ReferralUpdateOne {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableAssignedBy(v *string) *ReferralUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (_u *ReferralUpdateOne) ClearAssignedBy() *ReferralUpdateOne {
	_u.mutation.ClearAssignedBy()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReferralUpdateOne) SetProcessedAt(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableProcessedAt(v *time.Time) *ReferralUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReferralUpdateOne) ClearProcessedAt() *ReferralUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ReferralUpdateOne) SetStatusHistory(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ReferralUpdateOne) AppendStatusHistory(v json.RawMessage) *ReferralUpdateOne {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *ReferralUpdateOne) ClearStatusHistory() *ReferralUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReferralUpdateOne) SetCreatedAt(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReferralUpdateOne) SetNillableCreatedAt(v *time.Time) *ReferralUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReferralUpdateOne) SetUpdatedAt(v time.Time) *ReferralUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReferralMutation object of the builder.
func (_u *ReferralUpdateOne) Mutation() *ReferralMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReferralUpdate builder.
func (_u *ReferralUpdateOne) Where(ps ...predicate.Referral) *ReferralUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferralUpdateOne) Select(field string, fields ...string) *ReferralUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Referral entity.
func (_u *ReferralUpdateOne) Save(ctx context.Context) (*Referral, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferralUpdateOne) SaveX(ctx context.Context) *Referral {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferralUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferralUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReferralUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := referral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferralUpdateOne) check() error {
	if v, ok := _u.mutation.ChildAge(); ok {
		if err := referral.ChildAgeValidator(v); err != nil {
			return &ValidationError{Name: "child_age", err: fmt.Errorf(`ent: validator failed for field "Referral.child_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := referral.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Referral.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ethnicity(); ok {
		if err := referral.EthnicityValidator(v); err != nil {
			return &ValidationError{Name: "ethnicity", err: fmt.Errorf(`ent: validator failed for field "Referral.ethnicity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CulturalBackground(); ok {
		if err := referral.CulturalBackgroundValidator(v); err != nil {
			return &ValidationError{Name: "cultural_background", err: fmt.Errorf(`ent: validator failed for field "Referral.cultural_background": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlacementType(); ok {
		if err := referral.PlacementTypeValidator(v); err != nil {
			return &ValidationError{Name: "placement_type", err: fmt.Errorf(`ent: validator failed for field "Referral.placement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SiblingCount(); ok {
		if err := referral.SiblingCountValidator(v); err != nil {
			return &ValidationError{Name: "sibling_count", err: fmt.Errorf(`ent: validator failed for field "Referral.sibling_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarerGenderPreference(); ok {
		if err := referral.CarerGenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "carer_gender_preference", err: fmt.Errorf(`ent: validator failed for field "Referral.carer_gender_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := referral.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Referral.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := referral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Referral.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := referral.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Referral.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ReferralUpdateOne) sqlSave(ctx context.Context) (_node *Referral, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referral.Table, referral.Columns, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Referral.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referral.FieldID)
		for _, f := range fields {
			if !referral.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referral.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChildName(); ok {
		_spec.SetField(referral.FieldChildName, field.TypeString, value)
	}
	if _u.mutation.ChildNameCleared() {
		_spec.ClearField(referral.FieldChildName, field.TypeString)
	}
	if value, ok := _u.mutation.ChildAge(); ok {
		_spec.SetField(referral.FieldChildAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChildAge(); ok {
		_spec.AddField(referral.FieldChildAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(referral.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ethnicity(); ok {
		_spec.SetField(referral.FieldEthnicity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalBackground(); ok {
		_spec.SetField(referral.FieldCulturalBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.Disabilities(); ok {
		_spec.SetField(referral.FieldDisabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDisabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldDisabilities, value)
		})
	}
	if _u.mutation.DisabilitiesCleared() {
		_spec.ClearField(referral.FieldDisabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sen(); ok {
		_spec.SetField(referral.FieldSen, field.TypeBool, value)
	}
	if _u.mutation.SenCleared() {
		_spec.ClearField(referral.FieldSen, field.TypeBool)
	}
	if value, ok := _u.mutation.BehaviouralNeeds(); ok {
		_spec.SetField(referral.FieldBehaviouralNeeds, field.TypeBool, value)
	}
	if _u.mutation.BehaviouralNeedsCleared() {
		_spec.ClearField(referral.FieldBehaviouralNeeds, field.TypeBool)
	}
	if value, ok := _u.mutation.BehaviouralDetails(); ok {
		_spec.SetField(referral.FieldBehaviouralDetails, field.TypeString, value)
	}
	if _u.mutation.BehaviouralDetailsCleared() {
		_spec.ClearField(referral.FieldBehaviouralDetails, field.TypeString)
	}
	if value, ok := _u.mutation.PlacementType(); ok {
		_spec.SetField(referral.FieldPlacementType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiblingGroup(); ok {
		_spec.SetField(referral.FieldSiblingGroup, field.TypeBool, value)
	}
	if _u.mutation.SiblingGroupCleared() {
		_spec.ClearField(referral.FieldSiblingGroup, field.TypeBool)
	}
	if value, ok := _u.mutation.SiblingCount(); ok {
		_spec.SetField(referral.FieldSiblingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSiblingCount(); ok {
		_spec.AddField(referral.FieldSiblingCount, field.TypeInt, value)
	}
	if _u.mutation.SiblingCountCleared() {
		_spec.ClearField(referral.FieldSiblingCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SoloPlacementRequired(); ok {
		_spec.SetField(referral.FieldSoloPlacementRequired, field.TypeBool, value)
	}
	if _u.mutation.SoloPlacementRequiredCleared() {
		_spec.ClearField(referral.FieldSoloPlacementRequired, field.TypeBool)
	}
	if value, ok := _u.mutation.PetsInHomeAcceptable(); ok {
		_spec.SetField(referral.FieldPetsInHomeAcceptable, field.TypeBool, value)
	}
	if _u.mutation.PetsInHomeAcceptableCleared() {
		_spec.ClearField(referral.FieldPetsInHomeAcceptable, field.TypeBool)
	}
	if value, ok := _u.mutation.PreferredLocations(); ok {
		_spec.SetField(referral.FieldPreferredLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldPreferredLocations, value)
		})
	}
	if _u.mutation.PreferredLocationsCleared() {
		_spec.ClearField(referral.FieldPreferredLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExcludedLocations(); ok {
		_spec.SetField(referral.FieldExcludedLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExcludedLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldExcludedLocations, value)
		})
	}
	if _u.mutation.ExcludedLocationsCleared() {
		_spec.ClearField(referral.FieldExcludedLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.CarerGenderPreference(); ok {
		_spec.SetField(referral.FieldCarerGenderPreference, field.TypeString, value)
	}
	if _u.mutation.CarerGenderPreferenceCleared() {
		_spec.ClearField(referral.FieldCarerGenderPreference, field.TypeString)
	}
	if value, ok := _u.mutation.SupportNeeds(); ok {
		_spec.SetField(referral.FieldSupportNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldSupportNeeds, value)
		})
	}
	if _u.mutation.SupportNeedsCleared() {
		_spec.ClearField(referral.FieldSupportNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.MedicalNeeds(); ok {
		_spec.SetField(referral.FieldMedicalNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedicalNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldMedicalNeeds, value)
		})
	}
	if _u.mutation.MedicalNeedsCleared() {
		_spec.ClearField(referral.FieldMedicalNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.EducationalNeeds(); ok {
		_spec.SetField(referral.FieldEducationalNeeds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducationalNeeds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldEducationalNeeds, value)
		})
	}
	if _u.mutation.EducationalNeedsCleared() {
		_spec.ClearField(referral.FieldEducationalNeeds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(referral.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(referral.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(referral.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttachmentPath(); ok {
		_spec.SetField(referral.FieldAttachmentPath, field.TypeString, value)
	}
	if _u.mutation.AttachmentPathCleared() {
		_spec.ClearField(referral.FieldAttachmentPath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(referral.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(referral.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(referral.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(referral.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.MatchedCarers(); ok {
		_spec.SetField(referral.FieldMatchedCarers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedCarers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldMatchedCarers, value)
		})
	}
	if _u.mutation.MatchedCarersCleared() {
		_spec.ClearField(referral.FieldMatchedCarers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedCarerID(); ok {
		_spec.SetField(referral.FieldAssignedCarerID, field.TypeUUID, value)
	}
	if _u.mutation.AssignedCarerIDCleared() {
		_spec.ClearField(referral.FieldAssignedCarerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(referral.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(referral.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(referral.FieldAssignedBy, field.TypeString, value)
	}
	if _u.mutation.AssignedByCleared() {
		_spec.ClearField(referral.FieldAssignedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(referral.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(referral.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(referral.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referral.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(referral.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(referral.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Referral{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
