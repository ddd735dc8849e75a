package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
	"github.com/careflow-uk/fostermatch/internal/common"
	"github.com/careflow-uk/fostermatch/internal/repository"
	"github.com/careflow-uk/fostermatch/internal/utils"
)

type CarersServer struct {
	fostercarepb.UnimplementedCarersServiceServer
	repo   repository.CarerRepository
	audit  repository.AuditRepository
	logger *slog.Logger
}

func NewCarersServer(repo repository.CarerRepository, audit repository.AuditRepository, logger *slog.Logger) *CarersServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CarersServer{repo: repo, audit: audit, logger: logger}
}

func (s *CarersServer) CreateCarer(ctx context.Context, req *fostercarepb.CreateCarerRequest) (*fostercarepb.CreateCarerResponse, error) {
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if req.GetMinAge() < 0 || req.GetMaxAge() < req.GetMinAge() {
		return nil, common.InvalidArgumentError("age range is invalid")
	}
	if req.GetCapacity() < 0 {
		return nil, common.InvalidArgumentError("capacity must be non-negative")
	}
	genderPref, err := parseGender(req.GetGenderPreference())
	if err != nil {
		return nil, err
	}

	actor := actorFromContext(ctx)
	c, err := s.repo.Create(ctx, &repository.CreateCarerRequest{
		Name:                           req.GetName(),
		Email:                          req.GetEmail(),
		Phone:                          req.GetPhone(),
		MinAge:                         int(req.GetMinAge()),
		MaxAge:                         int(req.GetMaxAge()),
		AcceptsSiblings:                req.GetAcceptsSiblings(),
		AllowsPets:                     req.GetAllowsPets(),
		ExperienceWithBehaviouralNeeds: req.GetBehaviouralExperience(),
		ExperienceWithSEN:              req.GetSenExperience(),
		PreferredLocation:              req.GetPreferredLocation(),
		ExcludedLocations:              req.GetExcludedLocations(),
		GenderPreference:               genderPref,
		Capacity:                       int(req.GetCapacity()),
		Notes:                          req.GetNotes(),
		CreatedBy:                      actor,
	})
	if err != nil {
		s.logger.Error("create carer failed", "error", err)
		return nil, common.InternalError("create carer failed")
	}

	_ = s.audit.Record(ctx, constants.AuditEntityCarer, c.ID, constants.AuditCreated, actor, nil)
	return &fostercarepb.CreateCarerResponse{Carer: utils.ToPBCarer(c)}, nil
}

func (s *CarersServer) UpdateCarer(ctx context.Context, req *fostercarepb.UpdateCarerRequest) (*fostercarepb.UpdateCarerResponse, error) {
	id, err := parseUUID(req.GetCarerId(), "carer_id")
	if err != nil {
		return nil, err
	}

	update := &repository.UpdateCarerRequest{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		PreferredLocation: req.PreferredLocation,
		ExcludedLocations: req.GetExcludedLocations(),
		UpdatedBy:         actorFromContext(ctx),
	}
	if req.MinAge != nil {
		v := int(*req.MinAge)
		update.MinAge = &v
	}
	if req.MaxAge != nil {
		v := int(*req.MaxAge)
		update.MaxAge = &v
	}
	if req.Capacity != nil {
		v := int(*req.Capacity)
		update.Capacity = &v
	}
	update.AcceptsSiblings = req.AcceptsSiblings
	update.AllowsPets = req.AllowsPets
	update.ExperienceWithBehaviouralNeeds = req.BehaviouralExperience
	update.ExperienceWithSEN = req.SenExperience
	if req.GenderPreference != nil {
		gp, err := parseGender(*req.GenderPreference)
		if err != nil {
			return nil, err
		}
		update.GenderPreference = gp
	}
	if req.Status != nil {
		st := constants.CarerStatus(*req.Status)
		if st != constants.CarerActive && st != constants.CarerInactive {
			return nil, common.InvalidArgumentErrorf("unknown carer status %q", *req.Status)
		}
		update.Status = &st
	}

	c, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("update carer failed", "carer_id", id, "error", err)
		return nil, common.InternalError("update carer failed")
	}

	_ = s.audit.Record(ctx, constants.AuditEntityCarer, c.ID, constants.AuditUpdated, update.UpdatedBy, nil)
	return &fostercarepb.UpdateCarerResponse{Carer: utils.ToPBCarer(c)}, nil
}

func (s *CarersServer) GetCarer(ctx context.Context, req *fostercarepb.GetCarerRequest) (*fostercarepb.GetCarerResponse, error) {
	id, err := parseUUID(req.GetCarerId(), "carer_id")
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("carer not found")
	}
	return &fostercarepb.GetCarerResponse{Carer: utils.ToPBCarer(c)}, nil
}

func (s *CarersServer) ListCarers(ctx context.Context, req *fostercarepb.ListCarersRequest) (*fostercarepb.ListCarersResponse, error) {
	var status *constants.CarerStatus
	if st := req.GetStatus(); st != "" {
		cs := constants.CarerStatus(st)
		if cs != constants.CarerActive && cs != constants.CarerInactive {
			return nil, common.InvalidArgumentErrorf("unknown carer status %q", st)
		}
		status = &cs
	}

	carers, err := s.repo.List(ctx, status)
	if err != nil {
		s.logger.Error("list carers failed", "error", err)
		return nil, common.InternalError("list carers failed")
	}

	out := make([]*fostercarepb.Carer, 0, len(carers))
	for _, c := range carers {
		out = append(out, utils.ToPBCarer(c))
	}
	return &fostercarepb.ListCarersResponse{Carers: out}, nil
}

// SetCarerStatus flips a carer between active and inactive. Inactive carers
// are excluded from matching runs.
func (s *CarersServer) SetCarerStatus(ctx context.Context, req *fostercarepb.SetCarerStatusRequest) (*fostercarepb.SetCarerStatusResponse, error) {
	id, err := parseUUID(req.GetCarerId(), "carer_id")
	if err != nil {
		return nil, err
	}
	st := constants.CarerStatus(req.GetStatus())
	if st != constants.CarerActive && st != constants.CarerInactive {
		return nil, common.InvalidArgumentErrorf("unknown carer status %q", req.GetStatus())
	}

	actor := actorFromContext(ctx)
	c, err := s.repo.SetStatus(ctx, id, st, actor)
	if err != nil {
		s.logger.Error("set carer status failed", "carer_id", id, "error", err)
		return nil, common.InternalError("set carer status failed")
	}

	_ = s.audit.Record(ctx, constants.AuditEntityCarer, c.ID, constants.AuditUpdated, actor, map[string]any{"status": string(st)})
	return &fostercarepb.SetCarerStatusResponse{Carer: utils.ToPBCarer(c)}, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseGender(s string) (*constants.Gender, error) {
	if s == "" {
		return nil, nil
	}
	g := constants.Gender(s)
	if g != constants.GenderMale && g != constants.GenderFemale {
		return nil, common.InvalidArgumentErrorf("unknown gender %q", s)
	}
	return &g, nil
}
