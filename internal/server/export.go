package server

import (
	"context"
	"log/slog"
	"slices"

	"github.com/careflow-uk/fostermatch/constants"
	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
	"github.com/careflow-uk/fostermatch/internal/common"
	"github.com/careflow-uk/fostermatch/internal/export"
	"github.com/careflow-uk/fostermatch/internal/repository"
)

type ExportServer struct {
	fostercarepb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportMatches(ctx context.Context, req *fostercarepb.ExportMatchesRequest) (*fostercarepb.ExportMatchesResponse, error) {
	id, err := parseUUID(req.GetReferralId(), "referral_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportMatchesXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export matches failed", "referral_id", id, "error", err)
		return nil, common.InternalError("export matches failed")
	}
	return &fostercarepb.ExportMatchesResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportReferrals(ctx context.Context, req *fostercarepb.ExportReferralsRequest) (*fostercarepb.ExportReferralsResponse, error) {
	var filter repository.ListReferralsFilter
	if st := req.GetStatus(); st != "" {
		rs := constants.ReferralStatus(st)
		if !slices.Contains(constants.ReferralStatuses, rs) {
			return nil, common.InvalidArgumentErrorf("unknown referral status %q", st)
		}
		filter.Status = &rs
	}
	var err error
	if filter.From, err = parseDate(req.GetFromDate()); err != nil {
		return nil, err
	}
	if filter.To, err = parseDate(req.GetToDate()); err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportReferralsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export referrals failed", "error", err)
		return nil, common.InternalError("export referrals failed")
	}
	return &fostercarepb.ExportReferralsResponse{Xlsx: xlsx}, nil
}
