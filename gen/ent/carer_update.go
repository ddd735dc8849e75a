// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/careflow-uk/fostermatch/gen/ent/predicate"
)

// CarerUpdate is the builder for updating Carer entities.
type CarerUpdate struct {
	config
	hooks    []Hook
	mutation *CarerMutation
}

// Where appends a list predicates to the CarerUpdate builder.
func (_u *CarerUpdate) Where(ps ...predicate.Carer) *CarerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CarerUpdate) SetName(v string) *CarerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableName(v *string) *CarerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CarerUpdate) SetEmail(v string) *CarerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableEmail(v *string) *CarerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CarerUpdate) ClearEmail() *CarerUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CarerUpdate) SetPhone(v string) *CarerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CarerUpdate) SetNillablePhone(v *string) *CarerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CarerUpdate) ClearPhone() *CarerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *CarerUpdate) SetMinAge(v int) *CarerUpdate {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableMinAge(v *int) *CarerUpdate {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *CarerUpdate) AddMinAge(v int) *CarerUpdate {
	_u.mutation.AddMinAge(v)
	return _u
}

// SetMaxAge sets the "max_age" field.
func (_u *CarerUpdate) SetMaxAge(v int) *CarerUpdate {
	_u.mutation.ResetMaxAge()
	_u.mutation.SetMaxAge(v)
	return _u
}

// SetNillableMaxAge sets the "max_age" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableMaxAge(v *int) *CarerUpdate {
	if v != nil {
		_u.SetMaxAge(*v)
	}
	return _u
}

// AddMaxAge adds value to the "max_age" field.
func (_u *CarerUpdate) AddMaxAge(v int) *CarerUpdate {
	_u.mutation.AddMaxAge(v)
	return _u
}

// SetAcceptsSiblings sets the "accepts_siblings" field.
func (_u *CarerUpdate) SetAcceptsSiblings(v bool) *CarerUpdate {
	_u.mutation.SetAcceptsSiblings(v)
	return _u
}

// SetNillableAcceptsSiblings sets the "accepts_siblings" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableAcceptsSiblings(v *bool) *CarerUpdate {
	if v != nil {
		_u.SetAcceptsSiblings(*v)
	}
	return _u
}

// SetAllowsPets sets the "allows_pets" field.
func (_u *CarerUpdate) SetAllowsPets(v bool) *CarerUpdate {
	_u.mutation.SetAllowsPets(v)
	return _u
}

// SetNillableAllowsPets sets the "allows_pets" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableAllowsPets(v *bool) *CarerUpdate {
	if v != nil {
		_u.SetAllowsPets(*v)
	}
	return _u
}

// SetBehaviouralExperience sets the "behavioural_experience" field.
func (_u *CarerUpdate) SetBehaviouralExperience(v bool) *CarerUpdate {
	_u.mutation.SetBehaviouralExperience(v)
	return _u
}

// SetNillableBehaviouralExperience sets the "behavioural_experience" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableBehaviouralExperience(v *bool) *CarerUpdate {
	if v != nil {
		_u.SetBehaviouralExperience(*v)
	}
	return _u
}

// SetSenExperience sets the "sen_experience" field.
func (_u *CarerUpdate) SetSenExperience(v bool) *CarerUpdate {
	_u.mutation.SetSenExperience(v)
	return _u
}

// SetNillableSenExperience sets the "sen_experience" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableSenExperience(v *bool) *CarerUpdate {
	if v != nil {
		_u.SetSenExperience(*v)
	}
	return _u
}

// SetPreferredLocation sets the "preferred_location" field.
func (_u *CarerUpdate) SetPreferredLocation(v string) *CarerUpdate {
	_u.mutation.SetPreferredLocation(v)
	return _u
}

// SetNillablePreferredLocation sets the "preferred_location" field if the given value is not nil.
func (_u *CarerUpdate) SetNillablePreferredLocation(v *string) *CarerUpdate {
	if v != nil {
		_u.SetPreferredLocation(*v)
	}
	return _u
}

// ClearPreferredLocation clears the value of the "preferred_location" field.
func (_u *CarerUpdate) ClearPreferredLocation() *CarerUpdate {
	_u.mutation.ClearPreferredLocation()
	return _u
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_u *CarerUpdate) SetExcludedLocations(v []string) *CarerUpdate {
	_u.mutation.SetExcludedLocations(v)
	return _u
}

// AppendExcludedLocations appends value to the "excluded_locations" field.
func (_u *CarerUpdate) AppendExcludedLocations(v []string) *CarerUpdate {
	_u.mutation.AppendExcludedLocations(v)
	return _u
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (_u *CarerUpdate) ClearExcludedLocations() *CarerUpdate {
	_u.mutation.ClearExcludedLocations()
	return _u
}

// SetGenderPreference sets the "gender_preference" field.
func (_u *CarerUpdate) SetGenderPreference(v string) *CarerUpdate {
	_u.mutation.SetGenderPreference(v)
	return _u
}

// SetNillableGenderPreference sets the "gender_preference" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableGenderPreference(v *string) *CarerUpdate {
	if v != nil {
		_u.SetGenderPreference(*v)
	}
	return _u
}

// ClearGenderPreference clears the value of the "gender_preference" field.
func (_u *CarerUpdate) ClearGenderPreference() *CarerUpdate {
	_u.mutation.ClearGenderPreference()
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *CarerUpdate) SetCapacity(v int) *CarerUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableCapacity(v *int) *CarerUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *CarerUpdate) AddCapacity(v int) *CarerUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CarerUpdate) SetStatus(v string) *CarerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableStatus(v *string) *CarerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CarerUpdate) SetNotes(v string) *CarerUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableNotes(v *string) *CarerUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CarerUpdate) ClearNotes() *CarerUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CarerUpdate) SetCreatedAt(v time.Time) *CarerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableCreatedAt(v *time.Time) *CarerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CarerUpdate) SetUpdatedAt(v time.Time) *CarerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CarerUpdate) SetCreatedBy(v string) *CarerUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableCreatedBy(v *string) *CarerUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CarerUpdate) ClearCreatedBy() *CarerUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *CarerUpdate) SetUpdatedBy(v string) *CarerUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *CarerUpdate) SetNillableUpdatedBy(v *string) *CarerUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *CarerUpdate) ClearUpdatedBy() *CarerUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the CarerMutation object of the builder.
func (_u *CarerUpdate) Mutation() *CarerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CarerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CarerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CarerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := carer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Carer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAge(); ok {
		if err := carer.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Carer.min_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAge(); ok {
		if err := carer.MaxAgeValidator(v); err != nil {
			return &ValidationError{Name: "max_age", err: fmt.Errorf(`ent: validator failed for field "Carer.max_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenderPreference(); ok {
		if err := carer.GenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "gender_preference", err: fmt.Errorf(`ent: validator failed for field "Carer.gender_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := carer.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Carer.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := carer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Carer.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CarerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carer.Table, carer.Columns, sqlgraph.NewFieldSpec(carer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(carer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(carer.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(carer.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(carer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(carer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(carer.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(carer.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAge(); ok {
		_spec.SetField(carer.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAge(); ok {
		_spec.AddField(carer.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptsSiblings(); ok {
		_spec.SetField(carer.FieldAcceptsSiblings, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsPets(); ok {
		_spec.SetField(carer.FieldAllowsPets, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BehaviouralExperience(); ok {
		_spec.SetField(carer.FieldBehaviouralExperience, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SenExperience(); ok {
		_spec.SetField(carer.FieldSenExperience, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreferredLocation(); ok {
		_spec.SetField(carer.FieldPreferredLocation, field.TypeString, value)
	}
	if _u.mutation.PreferredLocationCleared() {
		_spec.ClearField(carer.FieldPreferredLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ExcludedLocations(); ok {
		_spec.SetField(carer.FieldExcludedLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExcludedLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carer.FieldExcludedLocations, value)
		})
	}
	if _u.mutation.ExcludedLocationsCleared() {
		_spec.ClearField(carer.FieldExcludedLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenderPreference(); ok {
		_spec.SetField(carer.FieldGenderPreference, field.TypeString, value)
	}
	if _u.mutation.GenderPreferenceCleared() {
		_spec.ClearField(carer.FieldGenderPreference, field.TypeString)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(carer.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(carer.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(carer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(carer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(carer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(carer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(carer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(carer.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(carer.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(carer.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(carer.FieldUpdatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CarerUpdateOne is the builder for updating a single Carer entity.
type CarerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CarerMutation
}

// SetName sets the "name" field.
func (_u *CarerUpdateOne) SetName(v string) *CarerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableName(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CarerUpdateOne) SetEmail(v string) *CarerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableEmail(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CarerUpdateOne) ClearEmail() *CarerUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CarerUpdateOne) SetPhone(v string) *CarerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillablePhone(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CarerUpdateOne) ClearPhone() *CarerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetMinAge sets the "min_age" field.
func (_u *CarerUpdateOne) SetMinAge(v int) *CarerUpdateOne {
	_u.mutation.ResetMinAge()
	_u.mutation.SetMinAge(v)
	return _u
}

// SetNillableMinAge sets the "min_age" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableMinAge(v *int) *CarerUpdateOne {
	if v != nil {
		_u.SetMinAge(*v)
	}
	return _u
}

// AddMinAge adds value to the "min_age" field.
func (_u *CarerUpdateOne) AddMinAge(v int) *CarerUpdateOne {
	_u.mutation.AddMinAge(v)
	return _u
}

// SetMaxAge sets the "max_age" field.
func (_u *CarerUpdateOne) SetMaxAge(v int) *CarerUpdateOne {
	_u.mutation.ResetMaxAge()
	_u.mutation.SetMaxAge(v)
	return _u
}

// SetNillableMaxAge sets the "max_age" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableMaxAge(v *int) *CarerUpdateOne {
	if v != nil {
		_u.SetMaxAge(*v)
	}
	return _u
}

// AddMaxAge adds value to the "max_age" field.
func (_u *CarerUpdateOne) AddMaxAge(v int) *CarerUpdateOne {
	_u.mutation.AddMaxAge(v)
	return _u
}

// SetAcceptsSiblings sets the "accepts_siblings" field.
func (_u *CarerUpdateOne) SetAcceptsSiblings(v bool) *CarerUpdateOne {
	_u.mutation.SetAcceptsSiblings(v)
	return _u
}

// SetNillableAcceptsSiblings sets the "accepts_siblings" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableAcceptsSiblings(v *bool) *CarerUpdateOne {
	if v != nil {
		_u.SetAcceptsSiblings(*v)
	}
	return _u
}

// SetAllowsPets sets the "allows_pets" field.
func (_u *CarerUpdateOne) SetAllowsPets(v bool) *CarerUpdateOne {
	_u.mutation.SetAllowsPets(v)
	return _u
}

// SetNillableAllowsPets sets the "allows_pets" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableAllowsPets(v *bool) *CarerUpdateOne {
	if v != nil {
		_u.SetAllowsPets(*v)
	}
	return _u
}

// SetBehaviouralExperience sets the "behavioural_experience" field.
func (_u *CarerUpdateOne) SetBehaviouralExperience(v bool) *CarerUpdateOne {
	_u.mutation.SetBehaviouralExperience(v)
	return _u
}

// SetNillableBehaviouralExperience sets the "behavioural_experience" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableBehaviouralExperience(v *bool) *CarerUpdateOne {
	if v != nil {
		_u.SetBehaviouralExperience(*v)
	}
	return _u
}

// SetSenExperience sets the "sen_experience" field.
func (_u *CarerUpdateOne) SetSenExperience(v bool) *CarerUpdateOne {
	_u.mutation.SetSenExperience(v)
	return _u
}

// SetNillableSenExperience sets the "sen_experience" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableSenExperience(v *bool) *CarerUpdateOne {
	if v != nil {
		_u.SetSenExperience(*v)
	}
	return _u
}

// SetPreferredLocation sets the "preferred_location" field.
func (_u *CarerUpdateOne) SetPreferredLocation(v string) *CarerUpdateOne {
	_u.mutation.SetPreferredLocation(v)
	return _u
}

// SetNillablePreferredLocation sets the "preferred_location" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillablePreferredLocation(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetPreferredLocation(*v)
	}
	return _u
}

// ClearPreferredLocation clears the value of the "preferred_location" field.
func (_u *CarerUpdateOne) ClearPreferredLocation() *CarerUpdateOne {
	_u.mutation.ClearPreferredLocation()
	return _u
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_u *CarerUpdateOne) SetExcludedLocations(v []string) *CarerUpdateOne {
	_u.mutation.SetExcludedLocations(v)
	return _u
}

// AppendExcludedLocations appends value to the "excluded_locations" field.
func (_u *CarerUpdateOne) AppendExcludedLocations(v []string) *CarerUpdateOne {
	_u.mutation.AppendExcludedLocations(v)
	return _u
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (_u *CarerUpdateOne) ClearExcludedLocations() *CarerUpdateOne {
	_u.mutation.ClearExcludedLocations()
	return _u
}

// SetGenderPreference sets the "gender_preference" field.
func (_u *CarerUpdateOne) SetGenderPreference(v string) *CarerUpdateOne {
	_u.mutation.SetGenderPreference(v)
	return _u
}

// SetNillableGenderPreference sets the "gender_preference" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableGenderPreference(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetGenderPreference(*v)
	}
	return _u
}

// ClearGenderPreference clears the value of the "gender_preference" field.
func (_u *CarerUpdateOne) ClearGenderPreference() *CarerUpdateOne {
	_u.mutation.ClearGenderPreference()
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *CarerUpdateOne) SetCapacity(v int) *CarerUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableCapacity(v *int) *CarerUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *CarerUpdateOne) AddCapacity(v int) *CarerUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CarerUpdateOne) SetStatus(v string) *CarerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableStatus(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CarerUpdateOne) SetNotes(v string) *CarerUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableNotes(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CarerUpdateOne) ClearNotes() *CarerUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CarerUpdateOne) SetCreatedAt(v time.Time) *CarerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableCreatedAt(v *time.Time) *CarerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CarerUpdateOne) SetUpdatedAt(v time.Time) *CarerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *CarerUpdateOne) SetCreatedBy(v string) *CarerUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableCreatedBy(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *CarerUpdateOne) ClearCreatedBy() *CarerUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *CarerUpdateOne) SetUpdatedBy(v string) *CarerUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *CarerUpdateOne) SetNillableUpdatedBy(v *string) *CarerUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *CarerUpdateOne) ClearUpdatedBy() *CarerUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// Mutation returns the CarerMutation object of the builder.
func (_u *CarerUpdateOne) Mutation() *CarerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CarerUpdate builder.
func (_u *CarerUpdateOne) Where(ps ...predicate.Carer) *CarerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CarerUpdateOne) Select(field string, fields ...string) *CarerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Carer entity.
func (_u *CarerUpdateOne) Save(ctx context.Context) (*Carer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CarerUpdateOne) SaveX(ctx context.Context) *Carer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CarerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CarerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CarerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CarerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := carer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Carer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinAge(); ok {
		if err := carer.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Carer.min_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAge(); ok {
		if err := carer.MaxAgeValidator(v); err != nil {
			return &ValidationError{Name: "max_age", err: fmt.Errorf(`ent: validator failed for field "Carer.max_age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GenderPreference(); ok {
		if err := carer.GenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "gender_preference", err: fmt.Errorf(`ent: validator failed for field "Carer.gender_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := carer.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Carer.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := carer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Carer.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CarerUpdateOne) sqlSave(ctx context.Context) (_node *Carer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carer.Table, carer.Columns, sqlgraph.NewFieldSpec(carer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Carer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carer.FieldID)
		for _, f := range fields {
			if !carer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != carer.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(carer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(carer.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(carer.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(carer.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(carer.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MinAge(); ok {
		_spec.SetField(carer.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAge(); ok {
		_spec.AddField(carer.FieldMinAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAge(); ok {
		_spec.SetField(carer.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAge(); ok {
		_spec.AddField(carer.FieldMaxAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptsSiblings(); ok {
		_spec.SetField(carer.FieldAcceptsSiblings, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowsPets(); ok {
		_spec.SetField(carer.FieldAllowsPets, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BehaviouralExperience(); ok {
		_spec.SetField(carer.FieldBehaviouralExperience, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SenExperience(); ok {
		_spec.SetField(carer.FieldSenExperience, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreferredLocation(); ok {
		_spec.SetField(carer.FieldPreferredLocation, field.TypeString, value)
	}
	if _u.mutation.PreferredLocationCleared() {
		_spec.ClearField(carer.FieldPreferredLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ExcludedLocations(); ok {
		_spec.SetField(carer.FieldExcludedLocations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExcludedLocations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, carer.FieldExcludedLocations, value)
		})
	}
	if _u.mutation.ExcludedLocationsCleared() {
		_spec.ClearField(carer.FieldExcludedLocations, field.TypeJSON)
	}
	if value, ok := _u.mutation.GenderPreference(); ok {
		_spec.SetField(carer.FieldGenderPreference, field.TypeString, value)
	}
	if _u.mutation.GenderPreferenceCleared() {
		_spec.ClearField(carer.FieldGenderPreference, field.TypeString)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(carer.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(carer.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(carer.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(carer.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(carer.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(carer.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(carer.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(carer.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(carer.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(carer.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(carer.FieldUpdatedBy, field.TypeString)
	}
	_node = &Carer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
