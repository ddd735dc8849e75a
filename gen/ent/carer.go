// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/google/uuid"
)

// Carer is the model entity for the Carer schema.
type Carer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// MinAge holds the value of the "min_age" field.
	MinAge int `json:"min_age,omitempty"`
	// MaxAge holds the value of the "max_age" field.
	MaxAge int `json:"max_age,omitempty"`
	// AcceptsSiblings holds the value of the "accepts_siblings" field.
	AcceptsSiblings bool `json:"accepts_siblings,omitempty"`
	// AllowsPets holds the value of the "allows_pets" field.
	AllowsPets bool `json:"allows_pets,omitempty"`
	// BehaviouralExperience holds the value of the "behavioural_experience" field.
	BehaviouralExperience bool `json:"behavioural_experience,omitempty"`
	// SenExperience holds the value of the "sen_experience" field.
	SenExperience bool `json:"sen_experience,omitempty"`
	// PreferredLocation holds the value of the "preferred_location" field.
	PreferredLocation *string `json:"preferred_location,omitempty"`
	// ExcludedLocations holds the value of the "excluded_locations" field.
	ExcludedLocations []string `json:"excluded_locations,omitempty"`
	// GenderPreference holds the value of the "gender_preference" field.
	GenderPreference *string `json:"gender_preference,omitempty"`
	// Capacity holds the value of the "capacity" field.
	Capacity int `json:"capacity,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy    *string `json:"updated_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Carer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case carer.FieldExcludedLocations:
			values[i] = new([]byte)
		case carer.FieldAcceptsSiblings, carer.FieldAllowsPets, carer.FieldBehaviouralExperience, carer.FieldSenExperience:
			values[i] = new(sql.NullBool)
		case carer.FieldMinAge, carer.FieldMaxAge, carer.FieldCapacity:
			values[i] = new(sql.NullInt64)
		case carer.FieldName, carer.FieldEmail, carer.FieldPhone, carer.FieldPreferredLocation, carer.FieldGenderPreference, carer.FieldStatus, carer.FieldNotes, carer.FieldCreatedBy, carer.FieldUpdatedBy:
			values[i] = new(sql.NullString)
		case carer.FieldCreatedAt, carer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case carer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Carer fields.
func (_m *Carer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case carer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case carer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case carer.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case carer.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case carer.FieldMinAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_age", values[i])
			} else if value.Valid {
				_m.MinAge = int(value.Int64)
			}
		case carer.FieldMaxAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_age", values[i])
			} else if value.Valid {
				_m.MaxAge = int(value.Int64)
			}
		case carer.FieldAcceptsSiblings:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepts_siblings", values[i])
			} else if value.Valid {
				_m.AcceptsSiblings = value.Bool
			}
		case carer.FieldAllowsPets:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allows_pets", values[i])
			} else if value.Valid {
				_m.AllowsPets = value.Bool
			}
		case carer.FieldBehaviouralExperience:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field behavioural_experience", values[i])
			} else if value.Valid {
				_m.BehaviouralExperience = value.Bool
			}
		case carer.FieldSenExperience:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sen_experience", values[i])
			} else if value.Valid {
				_m.SenExperience = value.Bool
			}
		case carer.FieldPreferredLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_location", values[i])
			} else if value.Valid {
				_m.PreferredLocation = new(string)
				*_m.PreferredLocation = value.String
			}
		case carer.FieldExcludedLocations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field excluded_locations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExcludedLocations); err != nil {
					return fmt.Errorf("unmarshal field excluded_locations: %w", err)
				}
			}
		case carer.FieldGenderPreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender_preference", values[i])
			} else if value.Valid {
				_m.GenderPreference = new(string)
				*_m.GenderPreference = value.String
			}
		case carer.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = int(value.Int64)
			}
		case carer.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case carer.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case carer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case carer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case carer.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case carer.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = new(string)
				*_m.UpdatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Carer.
// This includes values selected through modifiers, order, etc.
func (_m *Carer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Carer.
// Note that you need to call Carer.Unwrap() before calling this method if this Carer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Carer) Update() *CarerUpdateOne {
	return NewCarerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Carer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Carer) Unwrap() *Carer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Carer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Carer) String() string {
	var builder strings.Builder
	builder.WriteString("Carer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("min_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinAge))
	builder.WriteString(", ")
	builder.WriteString("max_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAge))
	builder.WriteString(", ")
	builder.WriteString("accepts_siblings=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptsSiblings))
	builder.WriteString(", ")
	builder.WriteString("allows_pets=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowsPets))
	builder.WriteString(", ")
	builder.WriteString("behavioural_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.BehaviouralExperience))
	builder.WriteString(", ")
	builder.WriteString("sen_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.SenExperience))
	builder.WriteString(", ")
	if v := _m.PreferredLocation; v != nil {
		builder.WriteString("preferred_location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("excluded_locations=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcludedLocations))
	builder.WriteString(", ")
	if v := _m.GenderPreference; v != nil {
		builder.WriteString("gender_preference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UpdatedBy; v != nil {
		builder.WriteString("updated_by=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Carers is a parsable slice of Carer.
type Carers []*Carer
