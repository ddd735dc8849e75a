// Package matching scores child referrals against carer profiles with a
// deterministic weighted-sum model. Score and Rank are pure functions; every
// consumer (the gRPC API, the email pipeline's automatic trigger, rematch)
// goes through this package so there is exactly one scoring model.
package matching

// Criterion is one weighted scoring dimension.
type Criterion struct {
	Weight float64 `json:"weight"`
	Points float64 `json:"points"`
}

// Criteria holds the seven fixed criteria, in evaluation order.
type Criteria struct {
	AgeRange    Criterion `json:"ageRange"`
	Siblings    Criterion `json:"siblings"`
	Behavioural Criterion `json:"behavioural"`
	Location    Criterion `json:"location"`
	SEN         Criterion `json:"sen"`
	Pets        Criterion `json:"pets"`
	Capacity    Criterion `json:"capacity"`
}

// DefaultCriteria returns the standard weighting. Points sum to 100.
func DefaultCriteria() Criteria {
	return Criteria{
		AgeRange:    Criterion{Weight: 1.0, Points: 30},
		Siblings:    Criterion{Weight: 1.0, Points: 20},
		Behavioural: Criterion{Weight: 1.0, Points: 15},
		Location:    Criterion{Weight: 1.0, Points: 15},
		SEN:         Criterion{Weight: 1.0, Points: 10},
		Pets:        Criterion{Weight: 1.0, Points: 5},
		Capacity:    Criterion{Weight: 1.0, Points: 5},
	}
}

// MaxPossibleScore is the denominator for the recommended threshold. It is
// computed from the full criteria set before applicability is known, so
// criteria that later evaluate as not-applicable still count toward it.
func (c Criteria) MaxPossibleScore() float64 {
	total := 0.0
	for _, cr := range c.all() {
		total += cr.Points * cr.Weight
	}
	return total
}

func (c Criteria) all() []Criterion {
	return []Criterion{c.AgeRange, c.Siblings, c.Behavioural, c.Location, c.SEN, c.Pets, c.Capacity}
}

// RecommendedThreshold is the score fraction at or above which a match is
// flagged as recommended.
const RecommendedThreshold = 0.70
