package matching

import (
	"sort"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

// Rank scores a referral against every active carer in the pool and returns
// results in descending score order. Equal scores are ordered recommended
// first; this is a single comparison, not a stable multi-key sort. An empty
// pool, or a pool with no active carers, yields an empty slice. Ranking never
// fails: a malformed carer profile just scores zero on the affected criteria.
func Rank(referral *entity.ChildReferral, carers []*entity.CarerProfile, criteria Criteria) []entity.MatchingResult {
	results := make([]entity.MatchingResult, 0, len(carers))
	for _, carer := range carers {
		if carer.Status != constants.CarerActive {
			continue
		}
		results = append(results, Score(referral, carer, criteria))
	}

	sortResults(results)
	return results
}

func sortResults(results []entity.MatchingResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Recommended && !results[j].Recommended
	})
}

// TopN returns the best n ranked matches.
func TopN(referral *entity.ChildReferral, carers []*entity.CarerProfile, n int, criteria Criteria) []entity.MatchingResult {
	results := Rank(referral, carers, criteria)
	if n < len(results) {
		results = results[:n]
	}
	return results
}

// FilterByScore keeps matches at or above the given score.
func FilterByScore(results []entity.MatchingResult, minScore float64) []entity.MatchingResult {
	out := make([]entity.MatchingResult, 0, len(results))
	for _, r := range results {
		if r.Score >= minScore {
			out = append(out, r)
		}
	}
	return out
}

// Recommended keeps only matches flagged as recommended.
func Recommended(results []entity.MatchingResult) []entity.MatchingResult {
	out := make([]entity.MatchingResult, 0, len(results))
	for _, r := range results {
		if r.Recommended {
			out = append(out, r)
		}
	}
	return out
}
