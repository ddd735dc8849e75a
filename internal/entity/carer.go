package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
)

// CarerProfile is a foster-care provider: capacity, experience and placement
// preferences. Only active carers with spare capacity score full marks on the
// capacity criterion.
type CarerProfile struct {
	ID uuid.UUID `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	MinAge          int  `json:"minAge"`
	MaxAge          int  `json:"maxAge"`
	AcceptsSiblings bool `json:"acceptsSiblings"`
	AllowsPets      bool `json:"allowsPets"`

	ExperienceWithBehaviouralNeeds bool `json:"experienceWithBehaviouralNeeds"`
	ExperienceWithSEN              bool `json:"experienceWithSEN"`

	PreferredLocation string   `json:"preferredLocation"`
	ExcludedLocations []string `json:"excludedLocations"`

	// nil means no preference
	GenderPreference *constants.Gender `json:"genderPreference,omitempty"`
	Capacity         int               `json:"capacity"`

	Status    constants.CarerStatus `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	CreatedBy string                `json:"createdBy"`
	UpdatedBy string                `json:"updatedBy"`
}
