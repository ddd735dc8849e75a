// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/google/uuid"
)

// ReferralCreate is the builder for creating a Referral entity.
type ReferralCreate struct {
	config
	mutation *ReferralMutation
	hooks    []Hook
}

// SetChildName sets the "child_name" field.
func (_c *ReferralCreate) SetChildName(v string) *ReferralCreate {
	_c.mutation.SetChildName(v)
	return _c
}

// SetNillableChildName sets the "child_name" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableChildName(v *string) *ReferralCreate {
	if v != nil {
		_c.SetChildName(*v)
	}
	return _c
}

// SetChildAge sets the "child_age" field.
func (_c *ReferralCreate) SetChildAge(v int) *ReferralCreate {
	_c.mutation.SetChildAge(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *ReferralCreate) SetGender(v string) *ReferralCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetEthnicity sets the "ethnicity" field.
func (_c *ReferralCreate) SetEthnicity(v string) *ReferralCreate {
	_c.mutation.SetEthnicity(v)
	return _c
}

// SetCulturalBackground sets the "cultural_background" field.
func (_c *ReferralCreate) SetCulturalBackground(v string) *ReferralCreate {
	_c.mutation.SetCulturalBackground(v)
	return _c
}

// SetDisabilities sets the "disabilities" field.
func (_c *ReferralCreate) SetDisabilities(v []string) *ReferralCreate {
	_c.mutation.SetDisabilities(v)
	return _c
}

// SetSen sets the "sen" field.
func (_c *ReferralCreate) SetSen(v bool) *ReferralCreate {
	_c.mutation.SetSen(v)
	return _c
}

// SetNillableSen sets the "sen" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableSen(v *bool) *ReferralCreate {
	if v != nil {
		_c.SetSen(*v)
	}
	return _c
}

// SetBehaviouralNeeds sets the "behavioural_needs" field.
func (_c *ReferralCreate) SetBehaviouralNeeds(v bool) *ReferralCreate {
	_c.mutation.SetBehaviouralNeeds(v)
	return _c
}

// SetNillableBehaviouralNeeds sets the "behavioural_needs" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableBehaviouralNeeds(v *bool) *ReferralCreate {
	if v != nil {
		_c.SetBehaviouralNeeds(*v)
	}
	return _c
}

// SetBehaviouralDetails sets the "behavioural_details" field.
func (_c *ReferralCreate) SetBehaviouralDetails(v string) *ReferralCreate {
	_c.mutation.SetBehaviouralDetails(v)
	return _c
}

// SetNillableBehaviouralDetails sets the "behavioural_details" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableBehaviouralDetails(v *string) *ReferralCreate {
	if v != nil {
		_c.SetBehaviouralDetails(*v)
	}
	return _c
}

// SetPlacementType sets the "placement_type" field.
func (_c *ReferralCreate) SetPlacementType(v string) *ReferralCreate {
	_c.mutation.SetPlacementType(v)
	return _c
}

// SetSiblingGroup sets the "sibling_group" field.
func (_c *ReferralCreate) SetSiblingGroup(v bool) *ReferralCreate {
	_c.mutation.SetSiblingGroup(v)
	return _c
}

// SetNillableSiblingGroup sets the "sibling_group" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableSiblingGroup(v *bool) *ReferralCreate {
	if v != nil {
		_c.SetSiblingGroup(*v)
	}
	return _c
}

// SetSiblingCount sets the "sibling_count" field.
func (_c *ReferralCreate) SetSiblingCount(v int) *ReferralCreate {
	_c.mutation.SetSiblingCount(v)
	return _c
}

// SetNillableSiblingCount sets the "sibling_count" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableSiblingCount(v *int) *ReferralCreate {
	if v != nil {
		_c.SetSiblingCount(*v)
	}
	return _c
}

// SetSoloPlacementRequired sets the "solo_placement_required" field.
func (_c *ReferralCreate) SetSoloPlacementRequired(v bool) *ReferralCreate {
	_c.mutation.SetSoloPlacementRequired(v)
	return _c
}

// SetNillableSoloPlacementRequired sets the "solo_placement_required" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableSoloPlacementRequired(v *bool) *ReferralCreate {
	if v != nil {
		_c.SetSoloPlacementRequired(*v)
	}
	return _c
}

// SetPetsInHomeAcceptable sets the "pets_in_home_acceptable" field.
func (_c *ReferralCreate) SetPetsInHomeAcceptable(v bool) *ReferralCreate {
	_c.mutation.SetPetsInHomeAcceptable(v)
	return _c
}

// SetNillablePetsInHomeAcceptable sets the "pets_in_home_acceptable" field if the given value is not nil.
func (_c *ReferralCreate) SetNillablePetsInHomeAcceptable(v *bool) *ReferralCreate {
	if v != nil {
		_c.SetPetsInHomeAcceptable(*v)
	}
	return _c
}

// SetPreferredLocations sets the "preferred_locations" field.
func (_c *ReferralCreate) SetPreferredLocations(v []string) *ReferralCreate {
	_c.mutation.SetPreferredLocations(v)
	return _c
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_c *ReferralCreate) SetExcludedLocations(v []string) *ReferralCreate {
	_c.mutation.SetExcludedLocations(v)
	return _c
}

// SetCarerGenderPreference sets the "carer_gender_preference" field.
func (_c *ReferralCreate) SetCarerGenderPreference(v string) *ReferralCreate {
	_c.mutation.SetCarerGenderPreference(v)
	return _c
}

// SetNillableCarerGenderPreference sets the "carer_gender_preference" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableCarerGenderPreference(v *string) *ReferralCreate {
	if v != nil {
		_c.SetCarerGenderPreference(*v)
	}
	return _c
}

// SetSupportNeeds sets the "support_needs" field.
func (_c *ReferralCreate) SetSupportNeeds(v []string) *ReferralCreate {
	_c.mutation.SetSupportNeeds(v)
	return _c
}

// SetMedicalNeeds sets the "medical_needs" field.
func (_c *ReferralCreate) SetMedicalNeeds(v []string) *ReferralCreate {
	_c.mutation.SetMedicalNeeds(v)
	return _c
}

// SetEducationalNeeds sets the "educational_needs" field.
func (_c *ReferralCreate) SetEducationalNeeds(v []string) *ReferralCreate {
	_c.mutation.SetEducationalNeeds(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *ReferralCreate) SetUrgency(v string) *ReferralCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableUrgency(v *string) *ReferralCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReferralCreate) SetStatus(v string) *ReferralCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableStatus(v *string) *ReferralCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ReferralCreate) SetSource(v string) *ReferralCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetAttachmentPath sets the "attachment_path" field.
func (_c *ReferralCreate) SetAttachmentPath(v string) *ReferralCreate {
	_c.mutation.SetAttachmentPath(v)
	return _c
}

// SetNillableAttachmentPath sets the "attachment_path" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableAttachmentPath(v *string) *ReferralCreate {
	if v != nil {
		_c.SetAttachmentPath(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ReferralCreate) SetRawText(v string) *ReferralCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableRawText(v *string) *ReferralCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *ReferralCreate) SetExtractedData(v json.RawMessage) *ReferralCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetMatchedCarers sets the "matched_carers" field.
func (_c *ReferralCreate) SetMatchedCarers(v json.RawMessage) *ReferralCreate {
	_c.mutation.SetMatchedCarers(v)
	return _c
}

// SetAssignedCarerID sets the "assigned_carer_id" field.
func (_c *ReferralCreate) SetAssignedCarerID(v uuid.UUID) *ReferralCreate {
	_c.mutation.SetAssignedCarerID(v)
	return _c
}

// SetNillableAssignedCarerID sets the "assigned_carer_id" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableAssignedCarerID(v *uuid.UUID) *ReferralCreate {
	if v != nil {
		_c.SetAssignedCarerID(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *ReferralCreate) SetAssignedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableAssignedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetAssignedBy sets the "assigned_by" field.
func (_c *ReferralCreate) SetAssignedBy(v string) *ReferralCreate {
	_c.mutation.SetAssignedBy(v)
	return _c
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableAssignedBy(v *string) *ReferralCreate {
	if v != nil {
		_c.SetAssignedBy(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ReferralCreate) SetProcessedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableProcessedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetStatusHistory sets the "status_history" field.
func (_c *ReferralCreate) SetStatusHistory(v json.RawMessage) *ReferralCreate {
	_c.mutation.SetStatusHistory(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ReferralCreate) SetReceivedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReferralCreate) SetCreatedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableCreatedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReferralCreate) SetUpdatedAt(v time.Time) *ReferralCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableUpdatedAt(v *time.Time) *ReferralCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReferralCreate) SetID(v uuid.UUID) *ReferralCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReferralCreate) SetNillableID(v *uuid.UUID) *ReferralCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReferralMutation object of the builder.
func (_c *ReferralCreate) Mutation() *ReferralMutation {
	return _c.mutation
}

// Save creates the Referral in the database.
func (_c *ReferralCreate) Save(ctx context.Context) (*Referral, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReferralCreate) SaveX(ctx context.Context) *Referral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReferralCreate) defaults() {
	if _, ok := _c.mutation.Urgency(); !ok {
		v := referral.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := referral.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := referral.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := referral.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := referral.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReferralCreate) check() error {
	if _, ok := _c.mutation.ChildAge(); !ok {
		return &ValidationError{Name: "child_age", err: errors.New(`ent: missing required field "Referral.child_age"`)}
	}
	if v, ok := _c.mutation.ChildAge(); ok {
		if err := referral.ChildAgeValidator(v); err != nil {
			return &ValidationError{Name: "child_age", err: fmt.Errorf(`ent: validator failed for field "Referral.child_age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Referral.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := referral.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Referral.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ethnicity(); !ok {
		return &ValidationError{Name: "ethnicity", err: errors.New(`ent: missing required field "Referral.ethnicity"`)}
	}
	if v, ok := _c.mutation.Ethnicity(); ok {
		if err := referral.EthnicityValidator(v); err != nil {
			return &ValidationError{Name: "ethnicity", err: fmt.Errorf(`ent: validator failed for field "Referral.ethnicity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CulturalBackground(); !ok {
		return &ValidationError{Name: "cultural_background", err: errors.New(`ent: missing required field "Referral.cultural_background"`)}
	}
	if v, ok := _c.mutation.CulturalBackground(); ok {
		if err := referral.CulturalBackgroundValidator(v); err != nil {
			return &ValidationError{Name: "cultural_background", err: fmt.Errorf(`ent: validator failed for field "Referral.cultural_background": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlacementType(); !ok {
		return &ValidationError{Name: "placement_type", err: errors.New(`ent: missing required field "Referral.placement_type"`)}
	}
	if v, ok := _c.mutation.PlacementType(); ok {
		if err := referral.PlacementTypeValidator(v); err != nil {
			return &ValidationError{Name: "placement_type", err: fmt.Errorf(`ent: validator failed for field "Referral.placement_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SiblingCount(); ok {
		if err := referral.SiblingCountValidator(v); err != nil {
			return &ValidationError{Name: "sibling_count", err: fmt.Errorf(`ent: validator failed for field "Referral.sibling_count": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CarerGenderPreference(); ok {
		if err := referral.CarerGenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "carer_gender_preference", err: fmt.Errorf(`ent: validator failed for field "Referral.carer_gender_preference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "Referral.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := referral.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Referral.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Referral.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := referral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Referral.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Referral.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := referral.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Referral.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "Referral.received_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Referral.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Referral.updated_at"`)}
	}
	return nil
}

func (_c *ReferralCreate) sqlSave(ctx context.Context) (*Referral, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReferralCreate) createSpec() (*Referral, *sqlgraph.CreateSpec) {
	var (
		_node = &Referral{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(referral.Table, sqlgraph.NewFieldSpec(referral.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ChildName(); ok {
		_spec.SetField(referral.FieldChildName, field.TypeString, value)
		_node.ChildName = &value
	}
	if value, ok := _c.mutation.ChildAge(); ok {
		_spec.SetField(referral.FieldChildAge, field.TypeInt, value)
		_node.ChildAge = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(referral.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Ethnicity(); ok {
		_spec.SetField(referral.FieldEthnicity, field.TypeString, value)
		_node.Ethnicity = value
	}
	if value, ok := _c.mutation.CulturalBackground(); ok {
		_spec.SetField(referral.FieldCulturalBackground, field.TypeString, value)
		_node.CulturalBackground = value
	}
	if value, ok := _c.mutation.Disabilities(); ok {
		_spec.SetField(referral.FieldDisabilities, field.TypeJSON, value)
		_node.Disabilities = value
	}
	if value, ok := _c.mutation.Sen(); ok {
		_spec.SetField(referral.FieldSen, field.TypeBool, value)
		_node.Sen = &value
	}
	if value, ok := _c.mutation.BehaviouralNeeds(); ok {
		_spec.SetField(referral.FieldBehaviouralNeeds, field.TypeBool, value)
		_node.BehaviouralNeeds = &value
	}
	if value, ok := _c.mutation.BehaviouralDetails(); ok {
		_spec.SetField(referral.FieldBehaviouralDetails, field.TypeString, value)
		_node.BehaviouralDetails = &value
	}
	if value, ok := _c.mutation.PlacementType(); ok {
		_spec.SetField(referral.FieldPlacementType, field.TypeString, value)
		_node.PlacementType = value
	}
	if value, ok := _c.mutation.SiblingGroup(); ok {
		_spec.SetField(referral.FieldSiblingGroup, field.TypeBool, value)
		_node.SiblingGroup = &value
	}
	if value, ok := _c.mutation.SiblingCount(); ok {
		_spec.SetField(referral.FieldSiblingCount, field.TypeInt, value)
		_node.SiblingCount = &value
	}
	if value, ok := _c.mutation.SoloPlacementRequired(); ok {
		_spec.SetField(referral.FieldSoloPlacementRequired, field.TypeBool, value)
		_node.SoloPlacementRequired = &value
	}
	if value, ok := _c.mutation.PetsInHomeAcceptable(); ok {
		_spec.SetField(referral.FieldPetsInHomeAcceptable, field.TypeBool, value)
		_node.PetsInHomeAcceptable = &value
	}
	if value, ok := _c.mutation.PreferredLocations(); ok {
		_spec.SetField(referral.FieldPreferredLocations, field.TypeJSON, value)
		_node.PreferredLocations = value
	}
	if value, ok := _c.mutation.ExcludedLocations(); ok {
		_spec.SetField(referral.FieldExcludedLocations, field.TypeJSON, value)
		_node.ExcludedLocations = value
	}
	if value, ok := _c.mutation.CarerGenderPreference(); ok {
		_spec.SetField(referral.FieldCarerGenderPreference, field.TypeString, value)
		_node.CarerGenderPreference = &value
	}
	if value, ok := _c.mutation.SupportNeeds(); ok {
		_spec.SetField(referral.FieldSupportNeeds, field.TypeJSON, value)
		_node.SupportNeeds = value
	}
	if value, ok := _c.mutation.MedicalNeeds(); ok {
		_spec.SetField(referral.FieldMedicalNeeds, field.TypeJSON, value)
		_node.MedicalNeeds = value
	}
	if value, ok := _c.mutation.EducationalNeeds(); ok {
		_spec.SetField(referral.FieldEducationalNeeds, field.TypeJSON, value)
		_node.EducationalNeeds = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(referral.FieldUrgency, field.TypeString, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(referral.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(referral.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.AttachmentPath(); ok {
		_spec.SetField(referral.FieldAttachmentPath, field.TypeString, value)
		_node.AttachmentPath = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(referral.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(referral.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.MatchedCarers(); ok {
		_spec.SetField(referral.FieldMatchedCarers, field.TypeJSON, value)
		_node.MatchedCarers = value
	}
	if value, ok := _c.mutation.AssignedCarerID(); ok {
		_spec.SetField(referral.FieldAssignedCarerID, field.TypeUUID, value)
		_node.AssignedCarerID = &value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(referral.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.AssignedBy(); ok {
		_spec.SetField(referral.FieldAssignedBy, field.TypeString, value)
		_node.AssignedBy = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(referral.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.StatusHistory(); ok {
		_spec.SetField(referral.FieldStatusHistory, field.TypeJSON, value)
		_node.StatusHistory = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(referral.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(referral.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(referral.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReferralCreateBulk is the builder for creating many Referral entities in bulk.
type ReferralCreateBulk struct {
	config
	err      error
	builders []*ReferralCreate
}

// Save creates the Referral entities in the database.
func (_c *ReferralCreateBulk) Save(ctx context.Context) ([]*Referral, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Referral, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReferralMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReferralCreateBulk) SaveX(ctx context.Context) []*Referral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReferralCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReferralCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
