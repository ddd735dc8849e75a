package constants

// ReferralStatus is the canonical lifecycle status for a child referral.
type ReferralStatus string

// Stable values (store these exact strings in DB).
const (
	ReferralPending    ReferralStatus = "pending"    // created, extraction succeeded, awaiting matching
	ReferralProcessing ReferralStatus = "processing" // extraction or matching failed, manual review required
	ReferralMatched    ReferralStatus = "matched"    // matching pass completed, match list populated
	ReferralPlaced     ReferralStatus = "placed"     // assigned to a carer
	ReferralDeclined   ReferralStatus = "declined"   // manually declined
	ReferralClosed     ReferralStatus = "closed"     // manually closed
)

var ReferralStatuses = []ReferralStatus{
	ReferralPending,
	ReferralProcessing,
	ReferralMatched,
	ReferralPlaced,
	ReferralDeclined,
	ReferralClosed,
}

// referralTransitions encodes the referral state machine. Manual overrides to
// declined/closed are allowed from any state and handled in ValidTransition.
var referralTransitions = map[ReferralStatus][]ReferralStatus{
	ReferralPending:    {ReferralMatched, ReferralProcessing},
	ReferralProcessing: {ReferralMatched, ReferralPending},
	ReferralMatched:    {ReferralPlaced, ReferralProcessing},
	ReferralPlaced:     {},
	ReferralDeclined:   {},
	ReferralClosed:     {},
}

// ValidTransition reports whether a referral may move from one status to
// another. The empty "from" covers initial creation.
func ValidTransition(from, to ReferralStatus) bool {
	if to == ReferralDeclined || to == ReferralClosed {
		return true
	}
	if from == "" {
		return to == ReferralPending || to == ReferralProcessing
	}
	for _, next := range referralTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CarerStatus is the canonical status for a carer profile.
type CarerStatus string

const (
	CarerActive   CarerStatus = "active"
	CarerInactive CarerStatus = "inactive"
)

var CarerStatuses = []CarerStatus{CarerActive, CarerInactive}

func ReferralStatusStrings() []string {
	out := make([]string, len(ReferralStatuses))
	for i, s := range ReferralStatuses {
		out[i] = string(s)
	}
	return out
}

func CarerStatusStrings() []string {
	out := make([]string, len(CarerStatuses))
	for i, s := range CarerStatuses {
		out[i] = string(s)
	}
	return out
}
