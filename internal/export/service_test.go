package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/repository"
)

type fakeReferralSource struct {
	referral *entity.ChildReferral
	list     []*entity.ChildReferral
	err      error
}

func (f *fakeReferralSource) GetByID(_ context.Context, _ uuid.UUID) (*entity.ChildReferral, error) {
	return f.referral, f.err
}

func (f *fakeReferralSource) List(_ context.Context, _ repository.ListReferralsFilter) ([]*entity.ChildReferral, error) {
	return f.list, f.err
}

func openSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExportMatchesXLSX(t *testing.T) {
	referral := entity.NewReferral(uuid.New(), "email", time.Now())
	referral.MatchedCarers = []entity.MatchedCarer{
		{
			CarerName:   "The Smiths",
			Score:       85,
			Recommended: true,
			Contacted:   true,
			Response:    "interested",
			MatchDetails: []entity.MatchDetail{
				{Criterion: "ageRange", Points: 30, Matched: true, Details: "Child age 9 is within carer's range 0-18"},
			},
		},
		{CarerName: "The Joneses", Score: 40},
	}

	svc := NewService(&fakeReferralSource{referral: referral}, nil)
	data, err := svc.ExportMatchesXLSX(context.Background(), referral.ID)

	require.NoError(t, err)
	rows := openSheet(t, data, "Matches")
	require.Len(t, rows, 3)
	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, "The Smiths", rows[1][1])
	assert.Equal(t, "85", rows[1][2])
	assert.Equal(t, "TRUE", rows[1][3])
	assert.Contains(t, rows[1][6], "ageRange: 30")
	assert.Equal(t, "The Joneses", rows[2][1])
}

func TestExportMatchesXLSX_EmptyMatchList(t *testing.T) {
	referral := entity.NewReferral(uuid.New(), "manual", time.Now())
	svc := NewService(&fakeReferralSource{referral: referral}, nil)

	data, err := svc.ExportMatchesXLSX(context.Background(), referral.ID)

	require.NoError(t, err)
	rows := openSheet(t, data, "Matches")
	assert.Len(t, rows, 1) // headers only
}

func TestExportMatchesXLSX_LoadError(t *testing.T) {
	svc := NewService(&fakeReferralSource{err: errors.New("not found")}, nil)

	_, err := svc.ExportMatchesXLSX(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestExportReferralsXLSX(t *testing.T) {
	placed := entity.NewReferral(uuid.New(), "email:a@b.c", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	placed.Age = 7
	placed.Status = constants.ReferralPlaced
	carerID := uuid.New()
	placed.AssignedCarerID = &carerID

	pending := entity.NewReferral(uuid.New(), "manual", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	pending.Age = 14
	pending.Status = constants.ReferralPending

	svc := NewService(&fakeReferralSource{list: []*entity.ChildReferral{placed, pending}}, nil)
	data, err := svc.ExportReferralsXLSX(context.Background(), repository.ListReferralsFilter{})

	require.NoError(t, err)
	rows := openSheet(t, data, "Referrals")
	require.Len(t, rows, 3)
	assert.Equal(t, "2026-02-10", rows[1][0])
	assert.Equal(t, "7", rows[1][1])
	assert.Equal(t, "placed", rows[1][5])
	assert.Equal(t, carerID.String(), rows[1][8])
	assert.Equal(t, "pending", rows[2][5])
}
