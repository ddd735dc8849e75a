// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/google/uuid"
)

// CarerCreate is the builder for creating a Carer entity.
type CarerCreate struct {
	config
	mutation *CarerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CarerCreate) SetName(v string) *CarerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *CarerCreate) SetEmail(v string) *CarerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CarerCreate) SetNillableEmail(v *string) *CarerCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CarerCreate) SetPhone(v string) *CarerCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CarerCreate) SetNillablePhone(v *string) *CarerCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetMinAge sets the "min_age" field.
func (_c *CarerCreate) SetMinAge(v int) *CarerCreate {
	_c.mutation.SetMinAge(v)
	return _c
}

// SetMaxAge sets the "max_age" field.
func (_c *CarerCreate) SetMaxAge(v int) *CarerCreate {
	_c.mutation.SetMaxAge(v)
	return _c
}

// SetAcceptsSiblings sets the "accepts_siblings" field.
func (_c *CarerCreate) SetAcceptsSiblings(v bool) *CarerCreate {
	_c.mutation.SetAcceptsSiblings(v)
	return _c
}

// SetNillableAcceptsSiblings sets the "accepts_siblings" field if the given value is not nil.
func (_c *CarerCreate) SetNillableAcceptsSiblings(v *bool) *CarerCreate {
	if v != nil {
		_c.SetAcceptsSiblings(*v)
	}
	return _c
}

// SetAllowsPets sets the "allows_pets" field.
func (_c *CarerCreate) SetAllowsPets(v bool) *CarerCreate {
	_c.mutation.SetAllowsPets(v)
	return _c
}

// SetNillableAllowsPets sets the "allows_pets" field if the given value is not nil.
func (_c *CarerCreate) SetNillableAllowsPets(v *bool) *CarerCreate {
	if v != nil {
		_c.SetAllowsPets(*v)
	}
	return _c
}

// SetBehaviouralExperience sets the "behavioural_experience" field.
func (_c *CarerCreate) SetBehaviouralExperience(v bool) *CarerCreate {
	_c.mutation.SetBehaviouralExperience(v)
	return _c
}

// SetNillableBehaviouralExperience sets the "behavioural_experience" field if the given value is not nil.
func (_c *CarerCreate) SetNillableBehaviouralExperience(v *bool) *CarerCreate {
	if v != nil {
		_c.SetBehaviouralExperience(*v)
	}
	return _c
}

// SetSenExperience sets the "sen_experience" field.
func (_c *CarerCreate) SetSenExperience(v bool) *CarerCreate {
	_c.mutation.SetSenExperience(v)
	return _c
}

// SetNillableSenExperience sets the "sen_experience" field if the given value is not nil.
func (_c *CarerCreate) SetNillableSenExperience(v *bool) *CarerCreate {
	if v != nil {
		_c.SetSenExperience(*v)
	}
	return _c
}

// SetPreferredLocation sets the "preferred_location" field.
func (_c *CarerCreate) SetPreferredLocation(v string) *CarerCreate {
	_c.mutation.SetPreferredLocation(v)
	return _c
}

// SetNillablePreferredLocation sets the "preferred_location" field if the given value is not nil.
func (_c *CarerCreate) SetNillablePreferredLocation(v *string) *CarerCreate {
	if v != nil {
		_c.SetPreferredLocation(*v)
	}
	return _c
}

// SetExcludedLocations sets the "excluded_locations" field.
func (_c *CarerCreate) SetExcludedLocations(v []string) *CarerCreate {
	_c.mutation.SetExcludedLocations(v)
	return _c
}

// SetGenderPreference sets the "gender_preference" field.
func (_c *CarerCreate) SetGenderPreference(v string) *CarerCreate {
	_c.mutation.SetGenderPreference(v)
	return _c
}

// SetNillableGenderPreference sets the "gender_preference" field if the given value is not nil.
func (_c *CarerCreate) SetNillableGenderPreference(v *string) *CarerCreate {
	if v != nil {
		_c.SetGenderPreference(*v)
	}
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *CarerCreate) SetCapacity(v int) *CarerCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CarerCreate) SetStatus(v string) *CarerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CarerCreate) SetNillableStatus(v *string) *CarerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CarerCreate) SetNotes(v string) *CarerCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CarerCreate) SetNillableNotes(v *string) *CarerCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CarerCreate) SetCreatedAt(v time.Time) *CarerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CarerCreate) SetNillableCreatedAt(v *time.Time) *CarerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CarerCreate) SetUpdatedAt(v time.Time) *CarerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CarerCreate) SetNillableUpdatedAt(v *time.Time) *CarerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *CarerCreate) SetCreatedBy(v string) *CarerCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *CarerCreate) SetNillableCreatedBy(v *string) *CarerCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *CarerCreate) SetUpdatedBy(v string) *CarerCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *CarerCreate) SetNillableUpdatedBy(v *string) *CarerCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CarerCreate) SetID(v uuid.UUID) *CarerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CarerCreate) SetNillableID(v *uuid.UUID) *CarerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CarerMutation object of the builder.
func (_c *CarerCreate) Mutation() *CarerMutation {
	return _c.mutation
}

// Save creates the Carer in the database.
func (_c *CarerCreate) Save(ctx context.Context) (*Carer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CarerCreate) SaveX(ctx context.Context) *Carer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CarerCreate) defaults() {
	if _, ok := _c.mutation.AcceptsSiblings(); !ok {
		v := carer.DefaultAcceptsSiblings
		_c.mutation.SetAcceptsSiblings(v)
	}
	if _, ok := _c.mutation.AllowsPets(); !ok {
		v := carer.DefaultAllowsPets
		_c.mutation.SetAllowsPets(v)
	}
	if _, ok := _c.mutation.BehaviouralExperience(); !ok {
		v := carer.DefaultBehaviouralExperience
		_c.mutation.SetBehaviouralExperience(v)
	}
	if _, ok := _c.mutation.SenExperience(); !ok {
		v := carer.DefaultSenExperience
		_c.mutation.SetSenExperience(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := carer.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := carer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := carer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := carer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CarerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Carer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := carer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Carer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinAge(); !ok {
		return &ValidationError{Name: "min_age", err: errors.New(`ent: missing required field "Carer.min_age"`)}
	}
	if v, ok := _c.mutation.MinAge(); ok {
		if err := carer.MinAgeValidator(v); err != nil {
			return &ValidationError{Name: "min_age", err: fmt.Errorf(`ent: validator failed for field "Carer.min_age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxAge(); !ok {
		return &ValidationError{Name: "max_age", err: errors.New(`ent: missing required field "Carer.max_age"`)}
	}
	if v, ok := _c.mutation.MaxAge(); ok {
		if err := carer.MaxAgeValidator(v); err != nil {
			return &ValidationError{Name: "max_age", err: fmt.Errorf(`ent: validator failed for field "Carer.max_age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcceptsSiblings(); !ok {
		return &ValidationError{Name: "accepts_siblings", err: errors.New(`ent: missing required field "Carer.accepts_siblings"`)}
	}
	if _, ok := _c.mutation.AllowsPets(); !ok {
		return &ValidationError{Name: "allows_pets", err: errors.New(`ent: missing required field "Carer.allows_pets"`)}
	}
	if _, ok := _c.mutation.BehaviouralExperience(); !ok {
		return &ValidationError{Name: "behavioural_experience", err: errors.New(`ent: missing required field "Carer.behavioural_experience"`)}
	}
	if _, ok := _c.mutation.SenExperience(); !ok {
		return &ValidationError{Name: "sen_experience", err: errors.New(`ent: missing required field "Carer.sen_experience"`)}
	}
	if v, ok := _c.mutation.GenderPreference(); ok {
		if err := carer.GenderPreferenceValidator(v); err != nil {
			return &ValidationError{Name: "gender_preference", err: fmt.Errorf(`ent: validator failed for field "Carer.gender_preference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`ent: missing required field "Carer.capacity"`)}
	}
	if v, ok := _c.mutation.Capacity(); ok {
		if err := carer.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Carer.capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Carer.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := carer.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Carer.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Carer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Carer.updated_at"`)}
	}
	return nil
}

func (_c *CarerCreate) sqlSave(ctx context.Context) (*Carer, error) {
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

func (_c *CarerCreate) createSpec() (*Carer, *sqlgraph.CreateSpec) {
	var (
		_node = &Carer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(carer.Table, sqlgraph.NewFieldSpec(carer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(carer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(carer.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(carer.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.MinAge(); ok {
		_spec.SetField(carer.FieldMinAge, field.TypeInt, value)
		_node.MinAge = value
	}
	if value, ok := _c.mutation.MaxAge(); ok {
		_spec.SetField(carer.FieldMaxAge, field.TypeInt, value)
		_node.MaxAge = value
	}
	if value, ok := _c.mutation.AcceptsSiblings(); ok {
		_spec.SetField(carer.FieldAcceptsSiblings, field.TypeBool, value)
		_node.AcceptsSiblings = value
	}
	if value, ok := _c.mutation.AllowsPets(); ok {
		_spec.SetField(carer.FieldAllowsPets, field.TypeBool, value)
		_node.AllowsPets = value
	}
	if value, ok := _c.mutation.BehaviouralExperience(); ok {
		_spec.SetField(carer.FieldBehaviouralExperience, field.TypeBool, value)
		_node.BehaviouralExperience = value
	}
	if value, ok := _c.mutation.SenExperience(); ok {
		_spec.SetField(carer.FieldSenExperience, field.TypeBool, value)
		_node.SenExperience = value
	}
	if value, ok := _c.mutation.PreferredLocation(); ok {
		_spec.SetField(carer.FieldPreferredLocation, field.TypeString, value)
		_node.PreferredLocation = &value
	}
	if value, ok := _c.mutation.ExcludedLocations(); ok {
		_spec.SetField(carer.FieldExcludedLocations, field.TypeJSON, value)
		_node.ExcludedLocations = value
	}
	if value, ok := _c.mutation.GenderPreference(); ok {
		_spec.SetField(carer.FieldGenderPreference, field.TypeString, value)
		_node.GenderPreference = &value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(carer.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(carer.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(carer.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(carer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(carer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(carer.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(carer.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = &value
	}
	return _node, _spec
}

// CarerCreateBulk is the builder for creating many Carer entities in bulk.
type CarerCreateBulk struct {
	config
	err      error
	builders []*CarerCreate
}

// Save creates the Carer entities in the database.
func (_c *CarerCreateBulk) Save(ctx context.Context) ([]*Carer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Carer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CarerMutation)
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
func (_c *CarerCreateBulk) SaveX(ctx context.Context) []*Carer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CarerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CarerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
