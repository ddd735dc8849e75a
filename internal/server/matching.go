package server

import (
	"context"
	"log/slog"

	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
	"github.com/careflow-uk/fostermatch/internal/common"
	"github.com/careflow-uk/fostermatch/internal/matching"
	"github.com/careflow-uk/fostermatch/internal/repository"
	"github.com/careflow-uk/fostermatch/internal/utils"
)

type MatchingServer struct {
	fostercarepb.UnimplementedMatchingServiceServer
	svc       *matching.Service
	referrals repository.ReferralRepository
	logger    *slog.Logger
}

func NewMatchingServer(svc *matching.Service, referrals repository.ReferralRepository, logger *slog.Logger) *MatchingServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchingServer{svc: svc, referrals: referrals, logger: logger}
}

// MatchReferral runs a full matching pass for the referral and persists the
// result; re-running replaces the previous match list.
func (s *MatchingServer) MatchReferral(ctx context.Context, req *fostercarepb.MatchReferralRequest) (*fostercarepb.MatchReferralResponse, error) {
	id, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}

	r, err := s.svc.RunForReferral(ctx, id, actorFromContext(ctx))
	if err != nil {
		s.logger.Error("matching run failed", "referral_id", id, "error", err)
		return nil, common.InternalError("matching run failed")
	}
	return &fostercarepb.MatchReferralResponse{Referral: utils.ToPBReferral(r)}, nil
}

// PreviewMatching scores without persisting, optionally with overridden
// criteria weights.
func (s *MatchingServer) PreviewMatching(ctx context.Context, req *fostercarepb.PreviewMatchingRequest) (*fostercarepb.PreviewMatchingResponse, error) {
	id, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}

	referral, err := s.referrals.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("referral not found")
	}

	var override *matching.Criteria
	if c := req.GetCriteria(); c != nil {
		criteria := matching.Criteria{
			AgeRange:    toCriterion(c.GetAgeRange()),
			Siblings:    toCriterion(c.GetSiblings()),
			Behavioural: toCriterion(c.GetBehavioural()),
			Location:    toCriterion(c.GetLocation()),
			SEN:         toCriterion(c.GetSen()),
			Pets:        toCriterion(c.GetPets()),
			Capacity:    toCriterion(c.GetCapacity()),
		}
		override = &criteria
	}

	results, err := s.svc.Preview(ctx, referral, override)
	if err != nil {
		s.logger.Error("matching preview failed", "referral_id", id, "error", err)
		return nil, common.InternalError("matching preview failed")
	}

	out := make([]*fostercarepb.MatchingResult, 0, len(results))
	for _, res := range results {
		out = append(out, utils.ToPBMatchingResult(res))
	}
	return &fostercarepb.PreviewMatchingResponse{Results: out}, nil
}

func toCriterion(c *fostercarepb.CriterionWeight) matching.Criterion {
	if c == nil {
		return matching.Criterion{}
	}
	return matching.Criterion{Weight: c.GetWeight(), Points: c.GetPoints()}
}
