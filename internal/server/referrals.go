package server

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
	"github.com/careflow-uk/fostermatch/internal/common"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/repository"
	"github.com/careflow-uk/fostermatch/internal/utils"
)

type ReferralsServer struct {
	fostercarepb.UnimplementedReferralsServiceServer
	repo   repository.ReferralRepository
	carers repository.CarerRepository
	audit  repository.AuditRepository
	logger *slog.Logger
}

func NewReferralsServer(repo repository.ReferralRepository, carers repository.CarerRepository, audit repository.AuditRepository, logger *slog.Logger) *ReferralsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferralsServer{repo: repo, carers: carers, audit: audit, logger: logger}
}

// CreateReferral registers a manually entered referral. Fields left empty in
// the request get the same defaults the extraction pipeline uses.
func (s *ReferralsServer) CreateReferral(ctx context.Context, req *fostercarepb.CreateReferralRequest) (*fostercarepb.CreateReferralResponse, error) {
	if req.GetAge() < 0 || req.GetAge() > 18 {
		return nil, common.InvalidArgumentError("age must be between 0 and 18")
	}

	source := strings.TrimSpace(req.GetSource())
	if source == "" {
		source = "manual"
	}
	referral := entity.NewReferral(uuid.New(), source, time.Now().UTC())
	referral.Age = int(req.GetAge())

	if g := req.GetGender(); g != "" {
		gender, err := parseGender(g)
		if err != nil {
			return nil, err
		}
		referral.Gender = *gender
	}
	if v := req.GetEthnicity(); v != "" {
		referral.Ethnicity = v
	}
	if v := req.GetCulturalBackground(); v != "" {
		referral.CulturalBackground = v
	}
	referral.SENNeeds = req.GetSenNeeds()
	if v := req.GetDisabilities(); len(v) > 0 {
		referral.Disabilities = v
	}
	referral.BehaviouralNeeds = req.GetBehaviouralNeeds()
	referral.BehaviouralDetails = req.GetBehaviouralDetails()
	if pt := req.GetPlacementType(); pt != "" {
		p := constants.PlacementType(pt)
		if !slices.Contains(constants.PlacementTypes, p) {
			return nil, common.InvalidArgumentErrorf("unknown placement type %q", pt)
		}
		referral.PlacementType = p
	}
	referral.SiblingGroup = req.GetSiblingGroup()
	if n := req.GetSiblingCount(); n > 0 {
		count := int(n)
		referral.SiblingCount = &count
	}
	referral.SoloPlacementRequired = req.GetSoloPlacementRequired()
	referral.PetsAllowed = req.GetPetsAllowed()
	if v := req.GetPreferredLocations(); len(v) > 0 {
		referral.PreferredLocations = v
	}
	if v := req.GetExcludedLocations(); len(v) > 0 {
		referral.ExcludedLocations = v
	}
	if g := req.GetCarerGenderPreference(); g != "" {
		gender, err := parseGender(g)
		if err != nil {
			return nil, err
		}
		referral.CarerGenderPreference = gender
	}
	if v := req.GetSupportNeeds(); len(v) > 0 {
		referral.SupportNeeds = v
	}
	if v := req.GetMedicalNeeds(); len(v) > 0 {
		referral.MedicalNeeds = v
	}
	if v := req.GetEducationalNeeds(); len(v) > 0 {
		referral.EducationalNeeds = v
	}
	if u := req.GetUrgency(); u != "" {
		urg := constants.Urgency(u)
		if !slices.Contains(constants.Urgencies, urg) {
			return nil, common.InvalidArgumentErrorf("unknown urgency %q", u)
		}
		referral.Urgency = urg
	}

	actor := actorFromContext(ctx)
	created, err := s.repo.Create(ctx, &repository.CreateReferralRequest{
		Referral: referral,
		Status:   constants.ReferralPending,
	})
	if err != nil {
		s.logger.Error("create referral failed", "error", err)
		return nil, common.InternalError("create referral failed")
	}

	_ = s.audit.Record(ctx, constants.AuditEntityReferral, created.ID, constants.AuditCreated, actor, nil)
	return &fostercarepb.CreateReferralResponse{Referral: utils.ToPBReferral(created)}, nil
}

func (s *ReferralsServer) GetReferral(ctx context.Context, req *fostercarepb.GetReferralRequest) (*fostercarepb.GetReferralResponse, error) {
	id, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("referral not found")
	}
	return &fostercarepb.GetReferralResponse{Referral: utils.ToPBReferral(r)}, nil
}

func (s *ReferralsServer) ListReferrals(ctx context.Context, req *fostercarepb.ListReferralsRequest) (*fostercarepb.ListReferralsResponse, error) {
	var filter repository.ListReferralsFilter
	if st := req.GetStatus(); st != "" {
		rs := constants.ReferralStatus(st)
		if !slices.Contains(constants.ReferralStatuses, rs) {
			return nil, common.InvalidArgumentErrorf("unknown referral status %q", st)
		}
		filter.Status = &rs
	}
	if u := req.GetUrgency(); u != "" {
		urg := constants.Urgency(u)
		if !slices.Contains(constants.Urgencies, urg) {
			return nil, common.InvalidArgumentErrorf("unknown urgency %q", u)
		}
		filter.Urgency = &urg
	}
	var err error
	if filter.From, err = parseDate(req.GetFromDate()); err != nil {
		return nil, err
	}
	if filter.To, err = parseDate(req.GetToDate()); err != nil {
		return nil, err
	}

	referrals, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list referrals failed", "error", err)
		return nil, common.InternalError("list referrals failed")
	}

	out := make([]*fostercarepb.Referral, 0, len(referrals))
	for _, r := range referrals {
		out = append(out, utils.ToPBReferral(r))
	}
	return &fostercarepb.ListReferralsResponse{Referrals: out}, nil
}

func (s *ReferralsServer) TransitionReferral(ctx context.Context, req *fostercarepb.TransitionReferralRequest) (*fostercarepb.TransitionReferralResponse, error) {
	id, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}
	to := constants.ReferralStatus(req.GetStatus())
	if !slices.Contains(constants.ReferralStatuses, to) {
		return nil, common.InvalidArgumentErrorf("unknown referral status %q", req.GetStatus())
	}

	actor := actorFromContext(ctx)
	r, err := s.repo.TransitionStatus(ctx, id, to, actor, req.GetReason(), req.GetNotes())
	if err != nil {
		s.logger.Warn("transition referral failed", "referral_id", id, "to", to, "error", err)
		return nil, common.InvalidArgumentError(err.Error())
	}

	_ = s.audit.Record(ctx, constants.AuditEntityReferral, id, constants.AuditStatusChanged, actor, map[string]any{
		"to":     string(to),
		"reason": req.GetReason(),
	})
	return &fostercarepb.TransitionReferralResponse{Referral: utils.ToPBReferral(r)}, nil
}

func (s *ReferralsServer) AssignCarer(ctx context.Context, req *fostercarepb.AssignCarerRequest) (*fostercarepb.AssignCarerResponse, error) {
	referralID, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}
	carerID, err := parseUUID(req.GetCarerId(), "carer_id")
	if err != nil {
		return nil, err
	}

	exists, err := s.carers.Exists(ctx, carerID)
	if err != nil {
		return nil, common.InternalError("assign carer failed")
	}
	if !exists {
		return nil, common.NotFoundError("carer not found")
	}

	actor := actorFromContext(ctx)
	r, err := s.repo.Assign(ctx, referralID, carerID, actor)
	if err != nil {
		s.logger.Warn("assign carer failed", "referral_id", referralID, "carer_id", carerID, "error", err)
		return nil, common.InvalidArgumentError(err.Error())
	}

	_ = s.audit.Record(ctx, constants.AuditEntityReferral, referralID, constants.AuditAssigned, actor, map[string]any{
		"carer_id": carerID.String(),
	})
	return &fostercarepb.AssignCarerResponse{Referral: utils.ToPBReferral(r)}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
