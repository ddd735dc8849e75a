package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

type fakeReferralStore struct {
	referral *entity.ChildReferral

	replaced    []entity.MatchedCarer
	transitions []constants.ReferralStatus

	getErr     error
	replaceErr error
}

func (f *fakeReferralStore) GetByID(_ context.Context, _ uuid.UUID) (*entity.ChildReferral, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.referral, nil
}

func (f *fakeReferralStore) ReplaceMatches(_ context.Context, _ uuid.UUID, matches []entity.MatchedCarer) (*entity.ChildReferral, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.replaced = matches
	f.referral.MatchedCarers = matches
	return f.referral, nil
}

func (f *fakeReferralStore) TransitionStatus(_ context.Context, _ uuid.UUID, to constants.ReferralStatus, _, _, _ string) (*entity.ChildReferral, error) {
	f.transitions = append(f.transitions, to)
	f.referral.Status = to
	return f.referral, nil
}

type fakeCarerStore struct {
	pool []*entity.CarerProfile
	err  error
}

func (f *fakeCarerStore) ListActive(_ context.Context) ([]*entity.CarerProfile, error) {
	return f.pool, f.err
}

func serviceReferral() *entity.ChildReferral {
	r := entity.NewReferral(uuid.New(), "email", time.Now())
	r.Age = 9
	r.Status = constants.ReferralPending
	return r
}

func poolCarer(name string) *entity.CarerProfile {
	return &entity.CarerProfile{
		ID:       uuid.New(),
		Name:     name,
		MinAge:   0,
		MaxAge:   18,
		Capacity: 1,
		Status:   constants.CarerActive,
	}
}

func TestRunForReferral_StoresMatchesAndTransitions(t *testing.T) {
	referrals := &fakeReferralStore{referral: serviceReferral()}
	carers := &fakeCarerStore{pool: []*entity.CarerProfile{poolCarer("Smith"), poolCarer("Jones")}}
	svc := NewService(referrals, carers, nil, nil)

	updated, err := svc.RunForReferral(context.Background(), referrals.referral.ID, "worker@test")

	require.NoError(t, err)
	require.Len(t, referrals.replaced, 2)
	assert.Equal(t, constants.ReferralMatched, updated.Status)
	assert.Equal(t, []constants.ReferralStatus{constants.ReferralMatched}, referrals.transitions)
	for _, m := range referrals.replaced {
		assert.NotEmpty(t, m.CarerName)
		assert.Len(t, m.MatchDetails, 7)
	}
}

func TestRunForReferral_EmptyPoolStaysPending(t *testing.T) {
	referrals := &fakeReferralStore{referral: serviceReferral()}
	svc := NewService(referrals, &fakeCarerStore{}, nil, nil)

	updated, err := svc.RunForReferral(context.Background(), referrals.referral.ID, "worker@test")

	require.NoError(t, err)
	assert.Empty(t, referrals.replaced)
	assert.Equal(t, constants.ReferralPending, updated.Status)
	assert.Empty(t, referrals.transitions)
}

func TestRunForReferral_RerunReplacesWholesale(t *testing.T) {
	stale := entity.MatchedCarer{CarerID: uuid.New(), CarerName: "Gone", Score: 99}
	referral := serviceReferral()
	referral.Status = constants.ReferralMatched
	referral.MatchedCarers = []entity.MatchedCarer{stale}

	referrals := &fakeReferralStore{referral: referral}
	carers := &fakeCarerStore{pool: []*entity.CarerProfile{poolCarer("Smith")}}
	svc := NewService(referrals, carers, nil, nil)

	_, err := svc.RunForReferral(context.Background(), referral.ID, "worker@test")

	require.NoError(t, err)
	require.Len(t, referrals.replaced, 1)
	assert.NotEqual(t, stale.CarerID, referrals.replaced[0].CarerID)
	// already matched; no second transition
	assert.Empty(t, referrals.transitions)
}

func TestRunForReferral_CarriesContactTrackingForward(t *testing.T) {
	carer := poolCarer("Smith")
	contactedAt := time.Now().Add(-time.Hour)
	referral := serviceReferral()
	referral.Status = constants.ReferralMatched
	referral.MatchedCarers = []entity.MatchedCarer{{
		CarerID:     carer.ID,
		CarerName:   "Smith",
		Contacted:   true,
		ContactedAt: &contactedAt,
		Response:    "interested",
	}}

	referrals := &fakeReferralStore{referral: referral}
	svc := NewService(referrals, &fakeCarerStore{pool: []*entity.CarerProfile{carer}}, nil, nil)

	_, err := svc.RunForReferral(context.Background(), referral.ID, "worker@test")

	require.NoError(t, err)
	require.Len(t, referrals.replaced, 1)
	assert.True(t, referrals.replaced[0].Contacted)
	assert.Equal(t, "interested", referrals.replaced[0].Response)
	require.NotNil(t, referrals.replaced[0].ContactedAt)
}

func TestRunForReferral_PoolErrorPropagates(t *testing.T) {
	referrals := &fakeReferralStore{referral: serviceReferral()}
	svc := NewService(referrals, &fakeCarerStore{err: errors.New("db down")}, nil, nil)

	_, err := svc.RunForReferral(context.Background(), referrals.referral.ID, "worker@test")

	require.Error(t, err)
	assert.Empty(t, referrals.replaced)
}

func TestPreview_DoesNotPersist(t *testing.T) {
	referrals := &fakeReferralStore{referral: serviceReferral()}
	carers := &fakeCarerStore{pool: []*entity.CarerProfile{poolCarer("Smith")}}
	svc := NewService(referrals, carers, nil, nil)

	results, err := svc.Preview(context.Background(), referrals.referral, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, referrals.replaced)
	assert.Empty(t, referrals.transitions)
}

func TestPreview_CriteriaOverride(t *testing.T) {
	referral := serviceReferral()
	criteria := DefaultCriteria()
	criteria.AgeRange.Points = 60

	svc := NewService(&fakeReferralStore{referral: referral}, &fakeCarerStore{pool: []*entity.CarerProfile{poolCarer("Smith")}}, nil, nil)

	results, err := svc.Preview(context.Background(), referral, &criteria)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, criteria.MaxPossibleScore(), results[0].MaxPossibleScore)
}
