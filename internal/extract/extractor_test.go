package extract

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return NewWithClock(fixedClock)
}

func TestExtract_Age(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"labelled age", "Age: 12", intPtr(12)},
		{"years old phrasing", "the child is 7 years old", intPtr(7)},
		{"one year old", "1 year old", intPtr(1)},
		{"upper bound accepted", "age: 18", intPtr(18)},
		{"out of range rejected", "age: 19", nil},
		{"negative impossible via pattern, adult rejected", "age: 42", nil},
		{"dob fallback", "DOB: 14/05/2015", intPtr(11)},
		{"date of birth fallback", "date of birth: 01-01-2020", intPtr(6)},
		{"future birth year rejected", "dob: 01/01/2030", nil},
		{"no cue", "a quiet child who enjoys reading", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := newTestExtractor().Extract(tt.text)
			if tt.want == nil {
				assert.Nil(t, fields.Age)
			} else {
				require.NotNil(t, fields.Age)
				assert.Equal(t, *tt.want, *fields.Age)
			}
		})
	}
}

func TestExtract_Gender(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled male", "Gender: Male", "male"},
		{"labelled female", "gender: female", "female"},
		{"boy cue", "a young boy aged ten", "male"},
		{"girl cue", "the girl attends school locally", "female"},
		{"pronoun she", "she is settled", "female"},
		{"female not caught by male patterns", "a female child", "female"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := newTestExtractor().Extract(tt.text)
			require.NotNil(t, fields.Gender)
			assert.Equal(t, tt.want, *fields.Gender)
		})
	}

	t.Run("no cue leaves gender unset", func(t *testing.T) {
		fields := newTestExtractor().Extract("placement requested for a child")
		assert.Nil(t, fields.Gender)
	})
}

func TestExtract_EthnicityNormalization(t *testing.T) {
	fields := newTestExtractor().Extract("Ethnicity: White British and settled")
	require.NotNil(t, fields.Ethnicity)
	assert.Equal(t, "white british", *fields.Ethnicity)

	fields = newTestExtractor().Extract("ethnicity: romani traveller")
	require.NotNil(t, fields.Ethnicity)
	assert.Equal(t, "romani traveller", *fields.Ethnicity)
}

func TestExtract_CulturalBackground(t *testing.T) {
	fields := newTestExtractor().Extract("Cultural background: irish catholic family")
	require.NotNil(t, fields.CulturalBackground)
	assert.Equal(t, "irish catholic family", *fields.CulturalBackground)
}

func TestExtract_SENAndDisabilities(t *testing.T) {
	fields := newTestExtractor().Extract("Has an EHCP in place. Diagnosed with autism and epilepsy.")

	require.NotNil(t, fields.SENNeeds)
	assert.True(t, *fields.SENNeeds)
	// vocabulary order, not text order
	assert.Equal(t, []string{"autism", "epilepsy"}, fields.Disabilities)
}

func TestExtract_BehaviouralDetails(t *testing.T) {
	fields := newTestExtractor().Extract("Behavioural: struggles with anger at school. Otherwise settled.")

	require.NotNil(t, fields.BehaviouralNeeds)
	assert.True(t, *fields.BehaviouralNeeds)
	require.NotNil(t, fields.BehaviouralDetails)
	assert.Equal(t, "struggles with anger at school", *fields.BehaviouralDetails)
}

func TestExtract_PlacementTypePriority(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"emergency placement needed, ideally long-term", "emergency"},
		{"permanent home sought", "long-term"},
		{"respite cover while assessments complete", "respite"},
		{"temporary placement", "short-term"},
	}
	for _, tt := range tests {
		fields := newTestExtractor().Extract(tt.text)
		require.NotNil(t, fields.PlacementType, tt.text)
		assert.Equal(t, tt.want, *fields.PlacementType)
	}

	fields := newTestExtractor().Extract("no placement wording at all")
	assert.Nil(t, fields.PlacementType)
}

// Sibling count and sibling group are independent: a count pattern alone must
// not imply a group.
func TestExtract_SiblingCountIndependentOfGroup(t *testing.T) {
	fields := newTestExtractor().Extract("3 children in the family home")

	require.NotNil(t, fields.SiblingCount)
	assert.Equal(t, 3, *fields.SiblingCount)
	assert.Nil(t, fields.SiblingGroup)
}

func TestExtract_SiblingGroupCues(t *testing.T) {
	fields := newTestExtractor().Extract("part of a sibling group of 2 children")

	require.NotNil(t, fields.SiblingGroup)
	assert.True(t, *fields.SiblingGroup)
	require.NotNil(t, fields.SiblingCount)
	assert.Equal(t, 2, *fields.SiblingCount)
}

func TestExtract_Pets(t *testing.T) {
	fields := newTestExtractor().Extract("placement must be pet friendly, family dog")
	require.NotNil(t, fields.PetsAllowed)
	assert.True(t, *fields.PetsAllowed)

	fields = newTestExtractor().Extract("no mention of animals")
	assert.Nil(t, fields.PetsAllowed)
}

func TestExtract_Locations(t *testing.T) {
	fields := newTestExtractor().Extract("Preferred: London. Would also prefer Leeds. Avoid Manchester, not Bristol.")

	assert.Equal(t, []string{"london", "leeds"}, fields.PreferredLocations)
	assert.Equal(t, []string{"manchester", "bristol"}, fields.ExcludedLocations)
}

func TestExtract_CarerGenderPreference(t *testing.T) {
	fields := newTestExtractor().Extract("requires a female carer")
	require.NotNil(t, fields.CarerGenderPreference)
	assert.Equal(t, "female", *fields.CarerGenderPreference)

	fields = newTestExtractor().Extract("male foster placement preferred")
	require.NotNil(t, fields.CarerGenderPreference)
	assert.Equal(t, "male", *fields.CarerGenderPreference)
}

func TestExtract_NeedsVocabularies(t *testing.T) {
	fields := newTestExtractor().Extract(
		"receiving speech therapy and counselling; on medication; attends a special school")

	assert.Contains(t, fields.SupportNeeds, "counselling")
	assert.Contains(t, fields.SupportNeeds, "speech therapy")
	assert.Contains(t, fields.MedicalNeeds, "medication")
	assert.Equal(t, []string{"special school"}, fields.EducationalNeeds)
}

func TestExtract_UrgencyDefaultsToMedium(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"urgent placement", "emergency"},
		{"this is an emergency referral", "emergency"},
		{"high priority case", "high"},
		{"low priority, planned move", "low"},
		{"nothing about timing", "medium"},
	}
	for _, tt := range tests {
		fields := newTestExtractor().Extract(tt.text)
		assert.Equal(t, tt.want, fields.Urgency, tt.text)
	}
}

// Extraction never fails; hostile or empty input just produces an empty
// record (with the urgency default).
func TestExtract_MalformedInput(t *testing.T) {
	for _, text := range []string{"", "   \t\n  ", "%%%%%$$$$####", "0xdeadbeef"} {
		fields := newTestExtractor().Extract(text)
		assert.Nil(t, fields.Age)
		assert.Nil(t, fields.Gender)
		assert.Equal(t, string(constants.UrgencyMedium), fields.Urgency)
	}
}

func TestApply_MergesOntoDefaults(t *testing.T) {
	referral := entity.NewReferral(uuid.New(), "referrals@example.org", fixedClock())
	referral.Status = constants.ReferralPending

	fields := newTestExtractor().Extract(
		"Age: 9. Gender: female. Part of a sibling group. Urgent. Prefer Oxford. EHCP in place.")
	fields.Apply(referral)

	assert.Equal(t, 9, referral.Age)
	assert.Equal(t, constants.GenderFemale, referral.Gender)
	assert.True(t, referral.SiblingGroup)
	assert.True(t, referral.SENNeeds)
	assert.Equal(t, constants.UrgencyEmergency, referral.Urgency)
	assert.Equal(t, []string{"oxford"}, referral.PreferredLocations)
	// untouched defaults survive
	assert.Equal(t, "Unknown", referral.Ethnicity)
	assert.Equal(t, constants.PlacementShortTerm, referral.PlacementType)
}

func intPtr(n int) *int { return &n }
