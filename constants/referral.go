package constants

// PlacementType is the kind of placement a referral asks for.
type PlacementType string

const (
	PlacementEmergency PlacementType = "emergency"
	PlacementShortTerm PlacementType = "short-term"
	PlacementLongTerm  PlacementType = "long-term"
	PlacementRespite   PlacementType = "respite"
)

var PlacementTypes = []PlacementType{
	PlacementEmergency,
	PlacementShortTerm,
	PlacementLongTerm,
	PlacementRespite,
}

// Urgency is the referral priority band.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}

// Gender values used for both children and carer gender preferences.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var Genders = []Gender{GenderMale, GenderFemale}

func PlacementTypeStrings() []string {
	out := make([]string, len(PlacementTypes))
	for i, p := range PlacementTypes {
		out[i] = string(p)
	}
	return out
}

func UrgencyStrings() []string {
	out := make([]string, len(Urgencies))
	for i, u := range Urgencies {
		out[i] = string(u)
	}
	return out
}

func GenderStrings() []string {
	out := make([]string, len(Genders))
	for i, g := range Genders {
		out[i] = string(g)
	}
	return out
}
