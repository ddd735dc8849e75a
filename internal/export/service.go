package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/repository"
)

// ReferralSource is the slice of the referral repository exports read from.
type ReferralSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChildReferral, error)
	List(ctx context.Context, filter repository.ListReferralsFilter) ([]*entity.ChildReferral, error)
}

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	referrals ReferralSource
	logger    *slog.Logger
}

func NewService(referrals ReferralSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{referrals: referrals, logger: logger}
}

// ExportMatchesXLSX returns a workbook listing the stored match results for
// one referral, in stored (ranked) order.
func (s *Service) ExportMatchesXLSX(ctx context.Context, referralID uuid.UUID) ([]byte, error) {
	start := time.Now()

	referral, err := s.referrals.GetByID(ctx, referralID)
	if err != nil {
		return nil, fmt.Errorf("load referral: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Matches"
	if err := ensureSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Rank",
		"Carer",
		"Score",
		"Recommended",
		"Contacted",
		"Response",
		"Criteria Detail",
	})

	row := 2
	for i, m := range referral.MatchedCarers {
		details := make([]string, 0, len(m.MatchDetails))
		for _, d := range m.MatchDetails {
			details = append(details, fmt.Sprintf("%s: %.0f (%s)", d.Criterion, d.Points, d.Details))
		}

		write := cellWriter(f, sheet, row)
		write(1, i+1)
		write(2, m.CarerName)
		write(3, m.Score)
		write(4, m.Recommended)
		write(5, m.Contacted)
		write(6, m.Response)
		write(7, strings.Join(details, "; "))
		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "G", "G", 80)

	out, err := writeWorkbook(f)
	if err != nil {
		return nil, err
	}
	s.logger.Info("exported matches", "referral_id", referralID, "rows", row-2, "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

// ExportReferralsXLSX returns a workbook listing referrals matching the
// filter, one row per referral.
func (s *Service) ExportReferralsXLSX(ctx context.Context, filter repository.ListReferralsFilter) ([]byte, error) {
	start := time.Now()

	referrals, err := s.referrals.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query referrals: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Referrals"
	if err := ensureSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeaders(f, sheet, []string{
		"Received",
		"Age",
		"Gender",
		"Placement Type",
		"Urgency",
		"Status",
		"Source",
		"Matches",
		"Assigned Carer",
	})

	row := 2
	for _, r := range referrals {
		assigned := ""
		if r.AssignedCarerID != nil {
			assigned = r.AssignedCarerID.String()
		}

		write := cellWriter(f, sheet, row)
		write(1, r.ReferralDate.Format("2006-01-02"))
		write(2, r.Age)
		write(3, string(r.Gender))
		write(4, string(r.PlacementType))
		write(5, string(r.Urgency))
		write(6, string(r.Status))
		write(7, r.ReferralSource)
		write(8, len(r.MatchedCarers))
		write(9, assigned)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "G", "G", 30)
	_ = f.SetColWidth(sheet, "I", "I", 38)

	out, err := writeWorkbook(f)
	if err != nil {
		return nil, err
	}
	s.logger.Info("exported referrals", "rows", row-2, "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

func ensureSheet(f *excelize.File, sheet string) error {
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet if unused
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}
	return nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func cellWriter(f *excelize.File, sheet string, row int) func(col int, v any) {
	return func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
