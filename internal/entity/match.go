package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchDetail is one evaluated criterion within a match. Matched is tri-state
// in spirit: true is also used for "not applicable", with zero points, so a
// neutral criterion never drags a result down.
type MatchDetail struct {
	Criterion string  `json:"criterion"`
	Points    float64 `json:"points"`
	Matched   bool    `json:"matched"`
	Details   string  `json:"details"`
}

// MatchingResult is the scored compatibility of one referral/carer pair.
type MatchingResult struct {
	CarerID          uuid.UUID     `json:"carerId"`
	Score            float64       `json:"score"`
	MaxPossibleScore float64       `json:"maxPossibleScore"`
	MatchDetails     []MatchDetail `json:"matchDetails"`
	Recommended      bool          `json:"recommended"`
}

// MatchedCarer is a MatchingResult enriched for persistence on the referral:
// carer name plus contact tracking. The whole list is replaced on every
// matching pass.
type MatchedCarer struct {
	CarerID      uuid.UUID     `json:"carerId"`
	CarerName    string        `json:"carerName"`
	Score        float64       `json:"score"`
	MatchDetails []MatchDetail `json:"matchDetails"`
	Recommended  bool          `json:"recommended"`
	Contacted    bool          `json:"contacted"`
	ContactedAt  *time.Time    `json:"contactedAt,omitempty"`
	Response     string        `json:"response,omitempty"`
	ResponseAt   *time.Time    `json:"responseAt,omitempty"`
	Notes        string        `json:"notes,omitempty"`
}
