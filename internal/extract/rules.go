package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/careflow-uk/fostermatch/constants"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize lower-cases and collapses whitespace so the per-field patterns
// can assume single-spaced text.
func Normalize(text string) string {
	return reWhitespace.ReplaceAllString(strings.ToLower(text), " ")
}

// ageRule pairs a pattern with its interpretation of the captured group.
// Rules run in order; a rule that matches but produces an out-of-range age
// does not claim the field, the next rule still gets a chance.
type ageRule struct {
	re  *regexp.Regexp
	age func(capture string, now time.Time) (int, bool)
}

func directAge(capture string, _ time.Time) (int, bool) {
	n, err := strconv.Atoi(capture)
	return n, err == nil
}

func ageFromBirthYear(capture string, now time.Time) (int, bool) {
	year, err := strconv.Atoi(capture)
	if err != nil {
		return 0, false
	}
	return now.Year() - year, true
}

var ageRules = []ageRule{
	{regexp.MustCompile(`age[:\s]+(\d+)`), directAge},
	{regexp.MustCompile(`(\d+)\s+years?\s+old`), directAge},
	{regexp.MustCompile(`dob[:\s]+\d+[/\-]\d+[/\-](\d{4})`), ageFromBirthYear},
	{regexp.MustCompile(`date of birth[:\s]+\d+[/\-]\d+[/\-](\d{4})`), ageFromBirthYear},
}

func extractAge(text string, now time.Time) *int {
	for _, rule := range ageRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		age, ok := rule.age(m[1], now)
		if !ok {
			continue
		}
		// Reject out-of-range before accepting; leave unset rather than
		// defaulting.
		if age >= 0 && age <= 18 {
			return &age
		}
	}
	return nil
}

var malePatterns = []*regexp.Regexp{
	regexp.MustCompile(`gender[:\s]+male`),
	regexp.MustCompile(`sex[:\s]+male`),
	regexp.MustCompile(`\bmale\b`),
	regexp.MustCompile(`\bboy\b`),
	regexp.MustCompile(`\bhe\b`),
	regexp.MustCompile(`\bhim\b`),
	regexp.MustCompile(`\bhis\b`),
}

var femalePatterns = []*regexp.Regexp{
	regexp.MustCompile(`gender[:\s]+female`),
	regexp.MustCompile(`sex[:\s]+female`),
	regexp.MustCompile(`\bfemale\b`),
	regexp.MustCompile(`\bgirl\b`),
	regexp.MustCompile(`\bshe\b`),
	regexp.MustCompile(`\bher\b`),
}

// extractGender tries the male cue set, then the female cue set; the first
// set with any hit wins.
func extractGender(text string) *string {
	if matchesAny(text, malePatterns) {
		return strPtr(string(constants.GenderMale))
	}
	if matchesAny(text, femalePatterns) {
		return strPtr(string(constants.GenderFemale))
	}
	return nil
}

var ethnicityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ethnicity[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`ethnic[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`race[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`background[:\s]+([a-z\s]+)`),
}

// extractEthnicity captures the text after a labelled marker and normalizes
// it to the canonical UK vocabulary entry it contains, if any; otherwise the
// raw capture stands.
func extractEthnicity(text string) *string {
	for _, re := range ethnicityPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(m[1])
		for _, known := range ukEthnicities {
			if strings.Contains(captured, known) {
				return strPtr(known)
			}
		}
		return strPtr(captured)
	}
	return nil
}

var culturalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`cultural background[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`culture[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`heritage[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`religion[:\s]+([a-z\s]+)`),
}

func extractCulturalBackground(text string) *string {
	for _, re := range culturalPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strPtr(strings.TrimSpace(m[1]))
		}
	}
	return nil
}

var senPatterns = []*regexp.Regexp{
	regexp.MustCompile(`special educational needs`),
	regexp.MustCompile(`\bsen\b`),
	regexp.MustCompile(`learning difficulties`),
	regexp.MustCompile(`learning disability`),
	regexp.MustCompile(`special needs`),
	regexp.MustCompile(`educational support`),
	regexp.MustCompile(`statement of needs`),
	regexp.MustCompile(`ehcp`),
	regexp.MustCompile(`education health care plan`),
}

var behaviouralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`behavioural`),
	regexp.MustCompile(`challenging behaviour`),
	regexp.MustCompile(`conduct disorder`),
	regexp.MustCompile(`oppositional defiant`),
	regexp.MustCompile(`anger management`),
	regexp.MustCompile(`aggressive`),
	regexp.MustCompile(`disruptive`),
	regexp.MustCompile(`attachment issues`),
	regexp.MustCompile(`trauma`),
}

var reBehaviouralDetail = regexp.MustCompile(`behavioural[:\s]+([^.]+)`)

// Sibling-group cues. The numeric "N children" pattern is deliberately not
// here: the count is a separate field and must not imply a group.
var siblingGroupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sibling group`),
	regexp.MustCompile(`siblings`),
	regexp.MustCompile(`brother`),
	regexp.MustCompile(`sister`),
}

var reSiblingCount = regexp.MustCompile(`(\d+)\s+children`)

var petPatterns = []*regexp.Regexp{
	regexp.MustCompile(`pets allowed`),
	regexp.MustCompile(`pet friendly`),
	regexp.MustCompile(`animals allowed`),
	regexp.MustCompile(`dog friendly`),
	regexp.MustCompile(`cat friendly`),
}

// extractPlacementType picks the first literal hit in priority order;
// emergency outranks everything, long-term outranks respite and short-term.
func extractPlacementType(text string) *string {
	switch {
	case strings.Contains(text, "emergency"):
		return strPtr(string(constants.PlacementEmergency))
	case strings.Contains(text, "long-term"), strings.Contains(text, "permanent"):
		return strPtr(string(constants.PlacementLongTerm))
	case strings.Contains(text, "respite"):
		return strPtr(string(constants.PlacementRespite))
	case strings.Contains(text, "short-term"), strings.Contains(text, "temporary"):
		return strPtr(string(constants.PlacementShortTerm))
	}
	return nil
}

// extractLocations scans the fixed UK city list. A city counts as preferred
// when preceded by a "preferred:"/"prefer " marker and excluded when preceded
// by "not "/"avoid ".
func extractLocations(text string) (preferred, excluded []string) {
	for _, city := range ukCities {
		if strings.Contains(text, "preferred: "+city) || strings.Contains(text, "prefer "+city) {
			preferred = append(preferred, city)
		}
		if strings.Contains(text, "not "+city) || strings.Contains(text, "avoid "+city) {
			excluded = append(excluded, city)
		}
	}
	return preferred, excluded
}

var (
	reMaleCarer   = regexp.MustCompile(`\bmale (?:carer|foster)`)
	reFemaleCarer = regexp.MustCompile(`\bfemale (?:carer|foster)`)
)

func extractCarerGenderPreference(text string) *string {
	if reMaleCarer.MatchString(text) {
		return strPtr(string(constants.GenderMale))
	}
	if reFemaleCarer.MatchString(text) {
		return strPtr(string(constants.GenderFemale))
	}
	return nil
}

// extractUrgency is the one rule with a non-absent default: a referral with
// no urgency cue is medium, because downstream prioritisation always needs a
// value.
func extractUrgency(text string) string {
	switch {
	case strings.Contains(text, "emergency"), strings.Contains(text, "urgent"):
		return string(constants.UrgencyEmergency)
	case strings.Contains(text, "high priority"):
		return string(constants.UrgencyHigh)
	case strings.Contains(text, "low priority"):
		return string(constants.UrgencyLow)
	}
	return string(constants.UrgencyMedium)
}

// collectVocabulary appends every vocabulary phrase literally present in the
// text, preserving vocabulary order.
func collectVocabulary(text string, vocabulary []string) []string {
	var found []string
	for _, phrase := range vocabulary {
		if strings.Contains(text, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func atoi(s string) (int, error) {
	return strconv.Atoi(s)
}
