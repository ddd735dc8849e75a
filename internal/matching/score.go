package matching

import (
	"fmt"
	"strings"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

// Score evaluates one referral against one carer and returns the per-criterion
// breakdown. The seven criteria are evaluated in fixed order and each decides
// matched/points/details independently; a criterion that does not apply to the
// referral reports matched=true with zero points.
//
// MaxPossibleScore is always Criteria.MaxPossibleScore(), regardless of how
// many criteria were applicable; not-applicable criteria therefore shrink the
// achievable percentage. That mirrors the production scoring this model was
// lifted from and is pinned by the tests.
func Score(referral *entity.ChildReferral, carer *entity.CarerProfile, criteria Criteria) entity.MatchingResult {
	details := make([]entity.MatchDetail, 0, 7)
	totalScore := 0.0
	maxPossibleScore := criteria.MaxPossibleScore()

	checks := []entity.MatchDetail{
		checkAgeRange(referral, carer, criteria.AgeRange),
		checkSiblings(referral, carer, criteria.Siblings),
		checkBehavioural(referral, carer, criteria.Behavioural),
		checkLocation(referral, carer, criteria.Location),
		checkSEN(referral, carer, criteria.SEN),
		checkPets(referral, carer, criteria.Pets),
		checkCapacity(carer, criteria.Capacity),
	}
	for _, d := range checks {
		details = append(details, d)
		if d.Matched {
			totalScore += d.Points
		}
	}

	return entity.MatchingResult{
		CarerID:          carer.ID,
		Score:            totalScore,
		MaxPossibleScore: maxPossibleScore,
		MatchDetails:     details,
		Recommended:      totalScore/maxPossibleScore >= RecommendedThreshold,
	}
}

func checkAgeRange(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	// An inverted carer range (minAge > maxAge) simply never matches.
	matched := referral.Age >= carer.MinAge && referral.Age <= carer.MaxAge

	details := fmt.Sprintf("Child age %d is within carer's range (%d-%d)", referral.Age, carer.MinAge, carer.MaxAge)
	if !matched {
		details = fmt.Sprintf("Child age %d is outside carer's range (%d-%d)", referral.Age, carer.MinAge, carer.MaxAge)
	}

	return entity.MatchDetail{
		Criterion: "Age Range",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

func checkSiblings(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	if !referral.SiblingGroup {
		return neutral("Sibling Group", "Child is not part of a sibling group")
	}

	matched := carer.AcceptsSiblings
	details := "Carer accepts sibling groups and child is part of sibling group"
	if !matched {
		details = "Carer does not accept sibling groups but child is part of sibling group"
	}

	return entity.MatchDetail{
		Criterion: "Sibling Group",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

func checkBehavioural(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	if !referral.BehaviouralNeeds {
		return neutral("Behavioural Needs", "Child does not have behavioural needs")
	}

	matched := carer.ExperienceWithBehaviouralNeeds
	details := "Carer has experience with behavioural needs and child has behavioural needs"
	if !matched {
		details = "Carer lacks experience with behavioural needs but child has behavioural needs"
	}

	return entity.MatchDetail{
		Criterion: "Behavioural Needs",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

// checkLocation applies exclusions before any positive match: a carer whose
// location is excluded by the child, or a child preference excluded by the
// carer, can never score, even when a preferred-location match also holds.
func checkLocation(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	preferredMatch := false
	for _, loc := range referral.PreferredLocations {
		if strings.EqualFold(loc, carer.PreferredLocation) {
			preferredMatch = true
			break
		}
	}

	carerExcluded := false
	for _, loc := range referral.ExcludedLocations {
		if strings.EqualFold(loc, carer.PreferredLocation) {
			carerExcluded = true
			break
		}
	}

	childExcluded := false
	for _, childLoc := range referral.PreferredLocations {
		for _, carerLoc := range carer.ExcludedLocations {
			if strings.EqualFold(carerLoc, childLoc) {
				childExcluded = true
				break
			}
		}
	}

	var matched bool
	var details string
	switch {
	case carerExcluded:
		matched = false
		details = fmt.Sprintf("Carer's location (%s) is in child's excluded locations", carer.PreferredLocation)
	case childExcluded:
		matched = false
		details = "Child's preferred locations conflict with carer's excluded locations"
	case preferredMatch:
		matched = true
		details = fmt.Sprintf("Location match found: %s", carer.PreferredLocation)
	default:
		matched = false
		details = fmt.Sprintf("No location match between child preferences (%s) and carer location (%s)",
			strings.Join(referral.PreferredLocations, ", "), carer.PreferredLocation)
	}

	return entity.MatchDetail{
		Criterion: "Location",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

func checkSEN(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	if !referral.SENNeeds {
		return neutral("SEN Experience", "Child does not have SEN needs")
	}

	matched := carer.ExperienceWithSEN
	details := "Carer has SEN experience and child has SEN needs"
	if !matched {
		details = "Carer lacks SEN experience but child has SEN needs"
	}

	return entity.MatchDetail{
		Criterion: "SEN Experience",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

func checkPets(referral *entity.ChildReferral, carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	if !referral.PetsAllowed {
		return neutral("Pet Compatibility", "Child does not require pets to be allowed")
	}

	matched := carer.AllowsPets
	details := "Carer allows pets and child requires pets to be allowed"
	if !matched {
		details = "Carer does not allow pets but child requires pets to be allowed"
	}

	return entity.MatchDetail{
		Criterion: "Pet Compatibility",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

// checkCapacity is a simplified availability proxy: it does not track live
// placements, only profile status and declared capacity.
func checkCapacity(carer *entity.CarerProfile, c Criterion) entity.MatchDetail {
	matched := carer.Status == constants.CarerActive && carer.Capacity > 0

	details := fmt.Sprintf("Carer has available capacity (%d)", carer.Capacity)
	if !matched {
		details = "Carer does not have available capacity or is inactive"
	}

	return entity.MatchDetail{
		Criterion: "Available Capacity",
		Points:    award(matched, c),
		Matched:   matched,
		Details:   details,
	}
}

func award(matched bool, c Criterion) float64 {
	if matched {
		return c.Points * c.Weight
	}
	return 0
}

func neutral(criterion, details string) entity.MatchDetail {
	return entity.MatchDetail{
		Criterion: criterion,
		Points:    0,
		Matched:   true,
		Details:   details,
	}
}
