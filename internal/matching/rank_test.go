package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

func TestRank_EmptyPool(t *testing.T) {
	results := Rank(testReferral(), nil, DefaultCriteria())
	assert.Empty(t, results)

	results = Rank(testReferral(), []*entity.CarerProfile{}, DefaultCriteria())
	assert.Empty(t, results)
}

func TestRank_SkipsInactiveCarers(t *testing.T) {
	active := testCarer()
	inactive := testCarer(func(c *entity.CarerProfile) { c.Status = constants.CarerInactive })

	results := Rank(testReferral(), []*entity.CarerProfile{inactive, active}, DefaultCriteria())

	require.Len(t, results, 1)
	assert.Equal(t, active.ID, results[0].CarerID)
}

func TestRank_OnlyInactiveCarersYieldsEmptyResult(t *testing.T) {
	pool := []*entity.CarerProfile{
		testCarer(func(c *entity.CarerProfile) { c.Status = constants.CarerInactive }),
		testCarer(func(c *entity.CarerProfile) { c.Status = constants.CarerInactive }),
	}
	assert.Empty(t, Rank(testReferral(), pool, DefaultCriteria()))
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	referral := testReferral(func(r *entity.ChildReferral) {
		r.Age = 12
		r.SENNeeds = true
		r.PreferredLocations = []string{"Leeds"}
	})

	// 30 (age) + 5 (capacity) only.
	weak := testCarer(func(c *entity.CarerProfile) {
		c.PreferredLocation = "Bristol"
	})
	// age + location + sen + capacity = 60.
	strong := testCarer(func(c *entity.CarerProfile) {
		c.PreferredLocation = "Leeds"
		c.ExperienceWithSEN = true
	})

	results := Rank(referral, []*entity.CarerProfile{weak, strong}, DefaultCriteria())

	require.Len(t, results, 2)
	assert.Equal(t, strong.ID, results[0].CarerID)
	assert.Equal(t, 60.0, results[0].Score)
	assert.Equal(t, weak.ID, results[1].CarerID)
	assert.Equal(t, 35.0, results[1].Score)
}

// Tie-break: equal scores are ordered recommended first, in a single
// comparison, with higher scores still ahead of both.
func TestRank_TieBreakPlacesRecommendedFirst(t *testing.T) {
	ninety := entity.MatchingResult{CarerID: uuid.New(), Score: 90, MaxPossibleScore: 100, Recommended: true}
	sixtyRec := entity.MatchingResult{CarerID: uuid.New(), Score: 60, MaxPossibleScore: 80, Recommended: true}
	sixtyNot := entity.MatchingResult{CarerID: uuid.New(), Score: 60, MaxPossibleScore: 100, Recommended: false}

	results := []entity.MatchingResult{sixtyNot, ninety, sixtyRec}
	sortResults(results)

	assert.Equal(t, ninety.CarerID, results[0].CarerID)
	assert.Equal(t, sixtyRec.CarerID, results[1].CarerID)
	assert.Equal(t, sixtyNot.CarerID, results[2].CarerID)
}

// Identical inputs must produce deeply identical output, match details
// included. The matcher has no randomness or time dependence.
func TestRank_Idempotent(t *testing.T) {
	referral := testReferral(func(r *entity.ChildReferral) {
		r.Age = 7
		r.SiblingGroup = true
		r.BehaviouralNeeds = true
		r.PreferredLocations = []string{"Manchester", "Leeds"}
		r.ExcludedLocations = []string{"Bristol"}
	})
	pool := []*entity.CarerProfile{
		testCarer(func(c *entity.CarerProfile) { c.PreferredLocation = "Manchester"; c.AcceptsSiblings = true }),
		testCarer(func(c *entity.CarerProfile) { c.PreferredLocation = "Bristol" }),
		testCarer(func(c *entity.CarerProfile) { c.MinAge = 10; c.MaxAge = 15 }),
	}

	first := Rank(referral, pool, DefaultCriteria())
	second := Rank(referral, pool, DefaultCriteria())

	assert.Equal(t, first, second)
}

// A carer with an inverted age range must not abort the pass; the other
// carers still rank.
func TestRank_MalformedCarerIsAbsorbed(t *testing.T) {
	referral := testReferral(func(r *entity.ChildReferral) { r.Age = 10 })
	inverted := testCarer(func(c *entity.CarerProfile) { c.MinAge = 15; c.MaxAge = 3 })
	healthy := testCarer()

	results := Rank(referral, []*entity.CarerProfile{inverted, healthy}, DefaultCriteria())

	require.Len(t, results, 2)
	assert.Equal(t, healthy.ID, results[0].CarerID)
	assert.Equal(t, inverted.ID, results[1].CarerID)
	assert.False(t, detailFor(t, results[1], "Age Range").Matched)
}

func TestTopN(t *testing.T) {
	referral := testReferral()
	pool := []*entity.CarerProfile{testCarer(), testCarer(), testCarer()}

	assert.Len(t, TopN(referral, pool, 2, DefaultCriteria()), 2)
	assert.Len(t, TopN(referral, pool, 5, DefaultCriteria()), 3)
}

func TestFilterByScoreAndRecommended(t *testing.T) {
	results := []entity.MatchingResult{
		{Score: 80, Recommended: true},
		{Score: 60, Recommended: false},
		{Score: 40, Recommended: false},
	}

	filtered := FilterByScore(results, 60)
	require.Len(t, filtered, 2)
	assert.Equal(t, 80.0, filtered[0].Score)

	rec := Recommended(results)
	require.Len(t, rec, 1)
	assert.Equal(t, 80.0, rec[0].Score)
}
