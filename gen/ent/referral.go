// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/google/uuid"
)

// Referral is the model entity for the Referral schema.
type Referral struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ChildName holds the value of the "child_name" field.
	ChildName *string `json:"child_name,omitempty"`
	// ChildAge holds the value of the "child_age" field.
	ChildAge int `json:"child_age,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender string `json:"gender,omitempty"`
	// Ethnicity holds the value of the "ethnicity" field.
	Ethnicity string `json:"ethnicity,omitempty"`
	// CulturalBackground holds the value of the "cultural_background" field.
	CulturalBackground string `json:"cultural_background,omitempty"`
	// Disabilities holds the value of the "disabilities" field.
	Disabilities []string `json:"disabilities,omitempty"`
	// Sen holds the value of the "sen" field.
	Sen *bool `json:"sen,omitempty"`
	// BehaviouralNeeds holds the value of the "behavioural_needs" field.
	BehaviouralNeeds *bool `json:"behavioural_needs,omitempty"`
	// BehaviouralDetails holds the value of the "behavioural_details" field.
	BehaviouralDetails *string `json:"behavioural_details,omitempty"`
	// PlacementType holds the value of the "placement_type" field.
	PlacementType string `json:"placement_type,omitempty"`
	// SiblingGroup holds the value of the "sibling_group" field.
	SiblingGroup *bool `json:"sibling_group,omitempty"`
	// SiblingCount holds the value of the "sibling_count" field.
	SiblingCount *int `json:"sibling_count,omitempty"`
	// SoloPlacementRequired holds the value of the "solo_placement_required" field.
	SoloPlacementRequired *bool `json:"solo_placement_required,omitempty"`
	// PetsInHomeAcceptable holds the value of the "pets_in_home_acceptable" field.
	PetsInHomeAcceptable *bool `json:"pets_in_home_acceptable,omitempty"`
	// PreferredLocations holds the value of the "preferred_locations" field.
	PreferredLocations []string `json:"preferred_locations,omitempty"`
	// ExcludedLocations holds the value of the "excluded_locations" field.
	ExcludedLocations []string `json:"excluded_locations,omitempty"`
	// CarerGenderPreference holds the value of the "carer_gender_preference" field.
	CarerGenderPreference *string `json:"carer_gender_preference,omitempty"`
	// SupportNeeds holds the value of the "support_needs" field.
	SupportNeeds []string `json:"support_needs,omitempty"`
	// MedicalNeeds holds the value of the "medical_needs" field.
	MedicalNeeds []string `json:"medical_needs,omitempty"`
	// EducationalNeeds holds the value of the "educational_needs" field.
	EducationalNeeds []string `json:"educational_needs,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency string `json:"urgency,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// AttachmentPath holds the value of the "attachment_path" field.
	AttachmentPath *string `json:"attachment_path,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// MatchedCarers holds the value of the "matched_carers" field.
	MatchedCarers json.RawMessage `json:"matched_carers,omitempty"`
	// AssignedCarerID holds the value of the "assigned_carer_id" field.
	AssignedCarerID *uuid.UUID `json:"assigned_carer_id,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	// AssignedBy holds the value of the "assigned_by" field.
	AssignedBy *string `json:"assigned_by,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// StatusHistory holds the value of the "status_history" field.
	StatusHistory json.RawMessage `json:"status_history,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Referral) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case referral.FieldAssignedCarerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case referral.FieldDisabilities, referral.FieldPreferredLocations, referral.FieldExcludedLocations, referral.FieldSupportNeeds, referral.FieldMedicalNeeds, referral.FieldEducationalNeeds, referral.FieldExtractedData, referral.FieldMatchedCarers, referral.FieldStatusHistory:
			values[i] = new([]byte)
		case referral.FieldSen, referral.FieldBehaviouralNeeds, referral.FieldSiblingGroup, referral.FieldSoloPlacementRequired, referral.FieldPetsInHomeAcceptable:
			values[i] = new(sql.NullBool)
		case referral.FieldChildAge, referral.FieldSiblingCount:
			values[i] = new(sql.NullInt64)
		case referral.FieldChildName, referral.FieldGender, referral.FieldEthnicity, referral.FieldCulturalBackground, referral.FieldBehaviouralDetails, referral.FieldPlacementType, referral.FieldCarerGenderPreference, referral.FieldUrgency, referral.FieldStatus, referral.FieldSource, referral.FieldAttachmentPath, referral.FieldRawText, referral.FieldAssignedBy:
			values[i] = new(sql.NullString)
		case referral.FieldAssignedAt, referral.FieldProcessedAt, referral.FieldReceivedAt, referral.FieldCreatedAt, referral.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case referral.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Referral fields.
func (_m *Referral) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case referral.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case referral.FieldChildName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_name", values[i])
			} else if value.Valid {
				_m.ChildName = new(string)
				*_m.ChildName = value.String
			}
		case referral.FieldChildAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field child_age", values[i])
			} else if value.Valid {
				_m.ChildAge = int(value.Int64)
			}
		case referral.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case referral.FieldEthnicity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ethnicity", values[i])
			} else if value.Valid {
				_m.Ethnicity = value.String
			}
		case referral.FieldCulturalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cultural_background", values[i])
			} else if value.Valid {
				_m.CulturalBackground = value.String
			}
		case referral.FieldDisabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field disabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Disabilities); err != nil {
					return fmt.Errorf("unmarshal field disabilities: %w", err)
				}
			}
		case referral.FieldSen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sen", values[i])
			} else if value.Valid {
				_m.Sen = new(bool)
				*_m.Sen = value.Bool
			}
		case referral.FieldBehaviouralNeeds:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field behavioural_needs", values[i])
			} else if value.Valid {
				_m.BehaviouralNeeds = new(bool)
				*_m.BehaviouralNeeds = value.Bool
			}
		case referral.FieldBehaviouralDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field behavioural_details", values[i])
			} else if value.Valid {
				_m.BehaviouralDetails = new(string)
				*_m.BehaviouralDetails = value.String
			}
		case referral.FieldPlacementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field placement_type", values[i])
			} else if value.Valid {
				_m.PlacementType = value.String
			}
		case referral.FieldSiblingGroup:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sibling_group", values[i])
			} else if value.Valid {
				_m.SiblingGroup = new(bool)
				*_m.SiblingGroup = value.Bool
			}
		case referral.FieldSiblingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sibling_count", values[i])
			} else if value.Valid {
				_m.SiblingCount = new(int)
				*_m.SiblingCount = int(value.Int64)
			}
		case referral.FieldSoloPlacementRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field solo_placement_required", values[i])
			} else if value.Valid {
				_m.SoloPlacementRequired = new(bool)
				*_m.SoloPlacementRequired = value.Bool
			}
		case referral.FieldPetsInHomeAcceptable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pets_in_home_acceptable", values[i])
			} else if value.Valid {
				_m.PetsInHomeAcceptable = new(bool)
				*_m.PetsInHomeAcceptable = value.Bool
			}
		case referral.FieldPreferredLocations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_locations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredLocations); err != nil {
					return fmt.Errorf("unmarshal field preferred_locations: %w", err)
				}
			}
		case referral.FieldExcludedLocations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field excluded_locations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExcludedLocations); err != nil {
					return fmt.Errorf("unmarshal field excluded_locations: %w", err)
				}
			}
		case referral.FieldCarerGenderPreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carer_gender_preference", values[i])
			} else if value.Valid {
				_m.CarerGenderPreference = new(string)
				*_m.CarerGenderPreference = value.String
			}
		case referral.FieldSupportNeeds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field support_needs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupportNeeds); err != nil {
					return fmt.Errorf("unmarshal field support_needs: %w", err)
				}
			}
		case referral.FieldMedicalNeeds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medical_needs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MedicalNeeds); err != nil {
					return fmt.Errorf("unmarshal field medical_needs: %w", err)
				}
			}
		case referral.FieldEducationalNeeds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field educational_needs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EducationalNeeds); err != nil {
					return fmt.Errorf("unmarshal field educational_needs: %w", err)
				}
			}
		case referral.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = value.String
			}
		case referral.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case referral.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case referral.FieldAttachmentPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_path", values[i])
			} else if value.Valid {
				_m.AttachmentPath = new(string)
				*_m.AttachmentPath = value.String
			}
		case referral.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case referral.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case referral.FieldMatchedCarers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field matched_carers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MatchedCarers); err != nil {
					return fmt.Errorf("unmarshal field matched_carers: %w", err)
				}
			}
		case referral.FieldAssignedCarerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_carer_id", values[i])
			} else if value.Valid {
				_m.AssignedCarerID = new(uuid.UUID)
				*_m.AssignedCarerID = *value.S.(*uuid.UUID)
			}
		case referral.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = new(time.Time)
				*_m.AssignedAt = value.Time
			}
		case referral.FieldAssignedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_by", values[i])
			} else if value.Valid {
				_m.AssignedBy = new(string)
				*_m.AssignedBy = value.String
			}
		case referral.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case referral.FieldStatusHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusHistory); err != nil {
					return fmt.Errorf("unmarshal field status_history: %w", err)
				}
			}
		case referral.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case referral.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case referral.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Referral.
// This includes values selected through modifiers, order, etc.
func (_m *Referral) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Referral.
// Note that you need to call Referral.Unwrap() before calling this method if this Referral
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Referral) Update() *ReferralUpdateOne {
	return NewReferralClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Referral entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Referral) Unwrap() *Referral {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Referral is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Referral) String() string {
	var builder strings.Builder
	builder.WriteString("Referral(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ChildName; v != nil {
		builder.WriteString("child_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("child_age=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildAge))
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	builder.WriteString("ethnicity=")
	builder.WriteString(_m.Ethnicity)
	builder.WriteString(", ")
	builder.WriteString("cultural_background=")
	builder.WriteString(_m.CulturalBackground)
	builder.WriteString(", ")
	builder.WriteString("disabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Disabilities))
	builder.WriteString(", ")
	if v := _m.Sen; v != nil {
		builder.WriteString("sen=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BehaviouralNeeds; v != nil {
		builder.WriteString("behavioural_needs=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BehaviouralDetails; v != nil {
		builder.WriteString("behavioural_details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("placement_type=")
	builder.WriteString(_m.PlacementType)
	builder.WriteString(", ")
	if v := _m.SiblingGroup; v != nil {
		builder.WriteString("sibling_group=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SiblingCount; v != nil {
		builder.WriteString("sibling_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SoloPlacementRequired; v != nil {
		builder.WriteString("solo_placement_required=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PetsInHomeAcceptable; v != nil {
		builder.WriteString("pets_in_home_acceptable=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("preferred_locations=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredLocations))
	builder.WriteString(", ")
	builder.WriteString("excluded_locations=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcludedLocations))
	builder.WriteString(", ")
	if v := _m.CarerGenderPreference; v != nil {
		builder.WriteString("carer_gender_preference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("support_needs=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportNeeds))
	builder.WriteString(", ")
	builder.WriteString("medical_needs=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicalNeeds))
	builder.WriteString(", ")
	builder.WriteString("educational_needs=")
	builder.WriteString(fmt.Sprintf("%v", _m.EducationalNeeds))
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(_m.Urgency)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.AttachmentPath; v != nil {
		builder.WriteString("attachment_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("matched_carers=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchedCarers))
	builder.WriteString(", ")
	if v := _m.AssignedCarerID; v != nil {
		builder.WriteString("assigned_carer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AssignedAt; v != nil {
		builder.WriteString("assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AssignedBy; v != nil {
		builder.WriteString("assigned_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusHistory))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Referrals is a parsable slice of Referral.
type Referrals []*Referral
