package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFields_ExtractedOutputAlwaysValidates(t *testing.T) {
	texts := []string{
		"Age: 12, gender: female, sibling group, prefer london, EHCP, urgent",
		"",
		"3 children, avoid manchester",
	}
	for _, text := range texts {
		fields := newTestExtractor().Extract(text)
		doc, err := FieldsJSON(fields)
		require.NoError(t, err)
		assert.NoError(t, ValidateFields(doc), "text: %q", text)
	}
}

func TestValidateFields_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"age out of range", `{"age": 19, "urgency": "medium"}`},
		{"unknown urgency", `{"urgency": "whenever"}`},
		{"missing urgency", `{"age": 4}`},
		{"unknown field", `{"urgency": "low", "shoeSize": 7}`},
		{"wrong type", `{"urgency": "low", "senNeeds": "yes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateFields([]byte(tt.doc)))
		})
	}
}
