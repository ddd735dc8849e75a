package extract

import (
	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

// ReferralFields is the partial referral produced by extraction. Scalar
// fields are pointers: nil means the field was not confidently identified,
// never a zero-value stand-in. Urgency is the one exception — it always
// carries a value (default medium) because every downstream consumer needs
// one.
type ReferralFields struct {
	Age                *int    `json:"age,omitempty"`
	Gender             *string `json:"gender,omitempty"`
	Ethnicity          *string `json:"ethnicity,omitempty"`
	CulturalBackground *string `json:"culturalBackground,omitempty"`

	SENNeeds           *bool    `json:"senNeeds,omitempty"`
	Disabilities       []string `json:"disabilities,omitempty"`
	BehaviouralNeeds   *bool    `json:"behaviouralNeeds,omitempty"`
	BehaviouralDetails *string  `json:"behaviouralDetails,omitempty"`

	PlacementType *string `json:"placementType,omitempty"`
	SiblingGroup  *bool   `json:"siblingGroup,omitempty"`
	SiblingCount  *int    `json:"siblingCount,omitempty"`
	PetsAllowed   *bool   `json:"petsAllowed,omitempty"`

	PreferredLocations    []string `json:"preferredLocations,omitempty"`
	ExcludedLocations     []string `json:"excludedLocations,omitempty"`
	CarerGenderPreference *string  `json:"carerGenderPreference,omitempty"`

	SupportNeeds     []string `json:"supportNeeds,omitempty"`
	MedicalNeeds     []string `json:"medicalNeeds,omitempty"`
	EducationalNeeds []string `json:"educationalNeeds,omitempty"`

	Urgency string `json:"urgency"`
}

// Apply merges the present fields onto a referral, leaving caller defaults in
// place wherever extraction was silent.
func (f ReferralFields) Apply(r *entity.ChildReferral) {
	if f.Age != nil {
		r.Age = *f.Age
	}
	if f.Gender != nil {
		r.Gender = constants.Gender(*f.Gender)
	}
	if f.Ethnicity != nil {
		r.Ethnicity = *f.Ethnicity
	}
	if f.CulturalBackground != nil {
		r.CulturalBackground = *f.CulturalBackground
	}
	if f.SENNeeds != nil {
		r.SENNeeds = *f.SENNeeds
	}
	if len(f.Disabilities) > 0 {
		r.Disabilities = f.Disabilities
	}
	if f.BehaviouralNeeds != nil {
		r.BehaviouralNeeds = *f.BehaviouralNeeds
	}
	if f.BehaviouralDetails != nil {
		r.BehaviouralDetails = *f.BehaviouralDetails
	}
	if f.PlacementType != nil {
		r.PlacementType = constants.PlacementType(*f.PlacementType)
	}
	if f.SiblingGroup != nil {
		r.SiblingGroup = *f.SiblingGroup
	}
	if f.SiblingCount != nil {
		count := *f.SiblingCount
		r.SiblingCount = &count
	}
	if f.PetsAllowed != nil {
		r.PetsAllowed = *f.PetsAllowed
	}
	if len(f.PreferredLocations) > 0 {
		r.PreferredLocations = f.PreferredLocations
	}
	if len(f.ExcludedLocations) > 0 {
		r.ExcludedLocations = f.ExcludedLocations
	}
	if f.CarerGenderPreference != nil {
		pref := constants.Gender(*f.CarerGenderPreference)
		r.CarerGenderPreference = &pref
	}
	if len(f.SupportNeeds) > 0 {
		r.SupportNeeds = f.SupportNeeds
	}
	if len(f.MedicalNeeds) > 0 {
		r.MedicalNeeds = f.MedicalNeeds
	}
	if len(f.EducationalNeeds) > 0 {
		r.EducationalNeeds = f.EducationalNeeds
	}
	if f.Urgency != "" {
		r.Urgency = constants.Urgency(f.Urgency)
	}
}
