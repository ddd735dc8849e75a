package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
)

// ChildReferral is a request to place a child, either entered manually or
// built from an ingested referral form.
type ChildReferral struct {
	ID uuid.UUID `json:"id"`

	Age                int              `json:"age"`
	Gender             constants.Gender `json:"gender"`
	Ethnicity          string           `json:"ethnicity"`
	CulturalBackground string           `json:"culturalBackground"`

	SENNeeds           bool     `json:"senNeeds"`
	Disabilities       []string `json:"disabilities"`
	BehaviouralNeeds   bool     `json:"behaviouralNeeds"`
	BehaviouralDetails string   `json:"behaviouralDetails"`

	PlacementType         constants.PlacementType `json:"placementType"`
	SoloPlacementRequired bool                    `json:"soloPlacementRequired"`
	SiblingGroup          bool                    `json:"siblingGroup"`
	SiblingCount          *int                    `json:"siblingCount,omitempty"`
	// PetsAllowed means the child requires a pet-friendly home.
	PetsAllowed bool `json:"petsAllowed"`

	PreferredLocations    []string          `json:"preferredLocations"`
	ExcludedLocations     []string          `json:"excludedLocations"`
	CarerGenderPreference *constants.Gender `json:"carerGenderPreference,omitempty"`

	SupportNeeds     []string `json:"supportNeeds"`
	MedicalNeeds     []string `json:"medicalNeeds"`
	EducationalNeeds []string `json:"educationalNeeds"`

	ReferralSource string            `json:"referralSource"`
	ReferralDate   time.Time         `json:"referralDate"`
	Urgency        constants.Urgency `json:"urgency"`

	Status constants.ReferralStatus `json:"status"`
	// AttachmentPath points at the stored referral form, when one exists.
	AttachmentPath string `json:"attachmentPath,omitempty"`
	// ExtractedData records whether form extraction succeeded.
	ExtractedData bool `json:"extractedData"`

	MatchedCarers   []MatchedCarer `json:"matchedCarers"`
	AssignedCarerID *uuid.UUID     `json:"assignedCarerId,omitempty"`
	AssignedAt      *time.Time     `json:"assignedAt,omitempty"`
	AssignedBy      string         `json:"assignedBy,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	// StatusHistory is append-only; entries are never rewritten.
	StatusHistory []StatusChange `json:"statusHistory"`
}

// StatusChange is one recorded lifecycle transition.
type StatusChange struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
	ChangedBy string    `json:"changedBy"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// NewReferral returns a referral with the caller-side defaults the matching
// engine expects when extraction leaves fields untouched.
func NewReferral(id uuid.UUID, source string, receivedAt time.Time) *ChildReferral {
	return &ChildReferral{
		ID:                 id,
		Gender:             constants.GenderMale,
		Ethnicity:          "Unknown",
		CulturalBackground: "Unknown",
		Disabilities:       []string{},
		PlacementType:      constants.PlacementShortTerm,
		PreferredLocations: []string{},
		ExcludedLocations:  []string{},
		SupportNeeds:       []string{},
		MedicalNeeds:       []string{},
		EducationalNeeds:   []string{},
		ReferralSource:     source,
		ReferralDate:       receivedAt,
		Urgency:            constants.UrgencyMedium,
		MatchedCarers:      []MatchedCarer{},
		StatusHistory:      []StatusChange{},
	}
}
