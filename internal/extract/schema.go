package extract

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/careflow-uk/fostermatch/constants"
)

// BuildReferralFieldsSchema returns a JSON-Schema (draft 2020-12 subset) for
// the serialized partial referral. It is the persistence gate: a fields
// document that fails here never reaches the referral record.
func BuildReferralFieldsSchema() map[string]any {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	props := map[string]any{
		"age":                   map[string]any{"type": "integer", "minimum": 0, "maximum": 18},
		"gender":                map[string]any{"type": "string", "enum": constants.GenderStrings()},
		"ethnicity":             map[string]any{"type": "string", "minLength": 1},
		"culturalBackground":    map[string]any{"type": "string", "minLength": 1},
		"senNeeds":              map[string]any{"type": "boolean"},
		"disabilities":          stringList,
		"behaviouralNeeds":      map[string]any{"type": "boolean"},
		"behaviouralDetails":    map[string]any{"type": "string"},
		"placementType":         map[string]any{"type": "string", "enum": constants.PlacementTypeStrings()},
		"siblingGroup":          map[string]any{"type": "boolean"},
		"siblingCount":          map[string]any{"type": "integer", "minimum": 0},
		"petsAllowed":           map[string]any{"type": "boolean"},
		"preferredLocations":    stringList,
		"excludedLocations":     stringList,
		"carerGenderPreference": map[string]any{"type": "string", "enum": constants.GenderStrings()},
		"supportNeeds":          stringList,
		"medicalNeeds":          stringList,
		"educationalNeeds":      stringList,
		"urgency":               map[string]any{"type": "string", "enum": constants.UrgencyStrings()},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// Urgency is the only field extraction always produces.
		"required": []string{"urgency"},
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(BuildReferralFieldsSchema())
		if err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = jsonschema.CompileString("referral_fields.json", string(raw))
	})
	return schema, schemaErr
}

// FieldsJSON serializes the partial referral for persistence and audit.
func FieldsJSON(f ReferralFields) ([]byte, error) {
	return json.Marshal(f)
}

// ValidateFields checks a serialized fields document against the schema.
func ValidateFields(doc []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile fields schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode fields document: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("fields document invalid: %w", err)
	}
	return nil
}
