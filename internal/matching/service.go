package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

// ReferralStore is the slice of the referral repository the service needs.
type ReferralStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChildReferral, error)
	ReplaceMatches(ctx context.Context, id uuid.UUID, matches []entity.MatchedCarer) (*entity.ChildReferral, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to constants.ReferralStatus, changedBy, reason, notes string) (*entity.ChildReferral, error)
}

// CarerStore supplies the candidate pool.
type CarerStore interface {
	ListActive(ctx context.Context) ([]*entity.CarerProfile, error)
}

// Auditor records matching runs. May be nil.
type Auditor interface {
	Record(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID, action constants.AuditAction, actor string, detail any) error
}

// Service runs the matcher against the stored carer pool and persists the
// outcome on the referral.
type Service struct {
	referrals ReferralStore
	carers    CarerStore
	audit     Auditor
	criteria  Criteria
	logger    *slog.Logger
}

func NewService(referrals ReferralStore, carers CarerStore, audit Auditor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		referrals: referrals,
		carers:    carers,
		audit:     audit,
		criteria:  DefaultCriteria(),
		logger:    logger,
	}
}

// RunForReferral scores the referral against every active carer, replaces the
// stored match list wholesale, and moves a pending referral to matched when
// at least one carer scored. The same pass is used for automatic runs after
// ingestion and for manual re-runs.
func (s *Service) RunForReferral(ctx context.Context, referralID uuid.UUID, actor string) (*entity.ChildReferral, error) {
	referral, err := s.referrals.GetByID(ctx, referralID)
	if err != nil {
		return nil, fmt.Errorf("load referral: %w", err)
	}

	pool, err := s.carers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load carer pool: %w", err)
	}

	results := Rank(referral, pool, s.criteria)
	matches := s.toMatchedCarers(results, pool, referral.MatchedCarers)

	updated, err := s.referrals.ReplaceMatches(ctx, referralID, matches)
	if err != nil {
		return nil, fmt.Errorf("store matches: %w", err)
	}

	if updated.Status == constants.ReferralPending && len(matches) > 0 {
		updated, err = s.referrals.TransitionStatus(ctx, referralID, constants.ReferralMatched, actor, "matching completed", "")
		if err != nil {
			return nil, fmt.Errorf("transition to matched: %w", err)
		}
	}

	s.logger.Info("matching run complete",
		"referral_id", referralID,
		"pool_size", len(pool),
		"matches", len(matches),
		"recommended", len(Recommended(results)),
	)
	if s.audit != nil {
		_ = s.audit.Record(ctx, constants.AuditEntityReferral, referralID, constants.AuditUpdated, actor, map[string]any{
			"event":   "matching_run",
			"matches": len(matches),
		})
	}
	return updated, nil
}

// Preview scores a referral against the live pool without persisting
// anything. A criteria override, when non-nil, replaces the default weights
// for this call only.
func (s *Service) Preview(ctx context.Context, referral *entity.ChildReferral, override *Criteria) ([]entity.MatchingResult, error) {
	pool, err := s.carers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load carer pool: %w", err)
	}
	criteria := s.criteria
	if override != nil {
		criteria = *override
	}
	return Rank(referral, pool, criteria), nil
}

// toMatchedCarers enriches ranked results with carer names and carries
// contact tracking forward from the previous match list, keyed by carer.
func (s *Service) toMatchedCarers(results []entity.MatchingResult, pool []*entity.CarerProfile, previous []entity.MatchedCarer) []entity.MatchedCarer {
	names := make(map[uuid.UUID]string, len(pool))
	for _, c := range pool {
		names[c.ID] = c.Name
	}
	prior := make(map[uuid.UUID]entity.MatchedCarer, len(previous))
	for _, m := range previous {
		prior[m.CarerID] = m
	}

	matches := make([]entity.MatchedCarer, 0, len(results))
	for _, res := range results {
		m := entity.MatchedCarer{
			CarerID:      res.CarerID,
			CarerName:    names[res.CarerID],
			Score:        res.Score,
			MatchDetails: res.MatchDetails,
			Recommended:  res.Recommended,
		}
		if p, ok := prior[res.CarerID]; ok {
			m.Contacted = p.Contacted
			m.ContactedAt = p.ContactedAt
			m.Response = p.Response
			m.ResponseAt = p.ResponseAt
			m.Notes = p.Notes
		}
		matches = append(matches, m)
	}
	return matches
}
