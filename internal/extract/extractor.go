// Package extract turns the plain text of a referral form into a partial
// ChildReferral. Every field is searched for independently with an ordered
// set of case-insensitive patterns, first match wins; there is no conflict
// resolution across patterns or across fields. Extraction itself never
// fails — a field whose cues are absent is simply left unset.
package extract

import (
	"strings"
	"time"
)

// Extractor holds the clock used for date-of-birth age fallback. The zero
// value is not usable; construct with New.
type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// NewWithClock pins the clock, for deterministic tests of the DOB fallback.
func NewWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Extract runs every field rule over the normalized text.
func (e *Extractor) Extract(text string) ReferralFields {
	t := Normalize(text)

	fields := ReferralFields{}

	fields.Age = extractAge(t, e.now())
	fields.Gender = extractGender(t)
	fields.Ethnicity = extractEthnicity(t)
	fields.CulturalBackground = extractCulturalBackground(t)

	if matchesAny(t, senPatterns) {
		fields.SENNeeds = boolPtr(true)
	}
	fields.Disabilities = collectVocabulary(t, disabilityVocabulary)

	if matchesAny(t, behaviouralPatterns) {
		fields.BehaviouralNeeds = boolPtr(true)
		if m := reBehaviouralDetail.FindStringSubmatch(t); m != nil {
			fields.BehaviouralDetails = strPtr(strings.TrimSpace(m[1]))
		}
	}

	fields.PlacementType = extractPlacementType(t)

	if matchesAny(t, siblingGroupPatterns) {
		fields.SiblingGroup = boolPtr(true)
	}
	// Sibling count is extracted independently of the group flag.
	if m := reSiblingCount.FindStringSubmatch(t); m != nil {
		if n, err := atoi(m[1]); err == nil {
			fields.SiblingCount = &n
		}
	}

	if matchesAny(t, petPatterns) {
		fields.PetsAllowed = boolPtr(true)
	}

	fields.PreferredLocations, fields.ExcludedLocations = extractLocations(t)
	fields.CarerGenderPreference = extractCarerGenderPreference(t)

	fields.SupportNeeds = collectVocabulary(t, supportVocabulary)
	fields.MedicalNeeds = collectVocabulary(t, medicalVocabulary)
	fields.EducationalNeeds = collectVocabulary(t, educationalVocabulary)

	fields.Urgency = extractUrgency(t)

	return fields
}

func boolPtr(b bool) *bool      { return &b }
func strPtr(s string) *string   { return &s }
