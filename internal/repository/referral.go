package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/gen/ent"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/utils"
)

// CreateReferralRequest wraps parameters for persisting a referral, whether
// entered manually or produced by the ingestion pipeline.
type CreateReferralRequest struct {
	Referral *entity.ChildReferral
	// RawText is the converted document text, kept for re-extraction.
	RawText string
	// ExtractedFields is the raw extractor output, kept for audit.
	ExtractedFields json.RawMessage
	Status          constants.ReferralStatus
}

// ListReferralsFilter narrows List.
type ListReferralsFilter struct {
	Status  *constants.ReferralStatus
	Urgency *constants.Urgency
	From    *time.Time
	To      *time.Time
}

type ReferralRepository interface {
	Create(ctx context.Context, req *CreateReferralRequest) (*entity.ChildReferral, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChildReferral, error)
	List(ctx context.Context, filter ListReferralsFilter) ([]*entity.ChildReferral, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to constants.ReferralStatus, changedBy, reason, notes string) (*entity.ChildReferral, error)
	ReplaceMatches(ctx context.Context, id uuid.UUID, matches []entity.MatchedCarer) (*entity.ChildReferral, error)
	Assign(ctx context.Context, id, carerID uuid.UUID, assignedBy string) (*entity.ChildReferral, error)
	RawText(ctx context.Context, id uuid.UUID) (string, error)
}

type referralRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReferralRepository(client *ent.Client, logger *slog.Logger) ReferralRepository {
	return &referralRepository{
		client: client,
		logger: logger,
	}
}

func (r *referralRepository) Create(ctx context.Context, req *CreateReferralRequest) (*entity.ChildReferral, error) {
	ref := req.Referral
	status := req.Status
	if status == "" {
		status = constants.ReferralPending
	}
	if !constants.ValidTransition("", status) {
		return nil, fmt.Errorf("referral cannot be created in status %q", status)
	}

	history := []entity.StatusChange{{
		From:      "",
		To:        string(status),
		Timestamp: time.Now().UTC(),
		ChangedBy: "system",
	}}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}

	builder := r.client.Referral.Create().
		SetID(ref.ID).
		SetChildAge(ref.Age).
		SetGender(string(ref.Gender)).
		SetEthnicity(ref.Ethnicity).
		SetCulturalBackground(ref.CulturalBackground).
		SetSen(ref.SENNeeds).
		SetDisabilities(ref.Disabilities).
		SetBehaviouralNeeds(ref.BehaviouralNeeds).
		SetPlacementType(string(ref.PlacementType)).
		SetSiblingGroup(ref.SiblingGroup).
		SetSoloPlacementRequired(ref.SoloPlacementRequired).
		SetPetsInHomeAcceptable(ref.PetsAllowed).
		SetPreferredLocations(ref.PreferredLocations).
		SetExcludedLocations(ref.ExcludedLocations).
		SetSupportNeeds(ref.SupportNeeds).
		SetMedicalNeeds(ref.MedicalNeeds).
		SetEducationalNeeds(ref.EducationalNeeds).
		SetUrgency(string(ref.Urgency)).
		SetStatus(string(status)).
		SetSource(ref.ReferralSource).
		SetReceivedAt(ref.ReferralDate).
		SetStatusHistory(historyJSON)

	if ref.BehaviouralDetails != "" {
		builder = builder.SetBehaviouralDetails(ref.BehaviouralDetails)
	}
	if ref.SiblingCount != nil {
		builder = builder.SetSiblingCount(*ref.SiblingCount)
	}
	if ref.CarerGenderPreference != nil {
		builder = builder.SetCarerGenderPreference(string(*ref.CarerGenderPreference))
	}
	if ref.AttachmentPath != "" {
		builder = builder.SetAttachmentPath(ref.AttachmentPath)
	}
	if req.RawText != "" {
		builder = builder.SetRawText(req.RawText)
	}
	if len(req.ExtractedFields) > 0 {
		builder = builder.SetExtractedData(req.ExtractedFields)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create referral", "referral_id", ref.ID, "error", err)
		return nil, err
	}
	return utils.ToReferral(row), nil
}

func (r *referralRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChildReferral, error) {
	row, err := r.client.Referral.Query().Where(referral.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToReferral(row), nil
}

func (r *referralRepository) List(ctx context.Context, filter ListReferralsFilter) ([]*entity.ChildReferral, error) {
	q := r.client.Referral.Query()
	if filter.Status != nil {
		q = q.Where(referral.Status(string(*filter.Status)))
	}
	if filter.Urgency != nil {
		q = q.Where(referral.Urgency(string(*filter.Urgency)))
	}
	if filter.From != nil {
		q = q.Where(referral.ReceivedAtGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(referral.ReceivedAtLTE(*filter.To))
	}
	rows, err := q.Order(referral.ByReceivedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list referrals", "error", err)
		return nil, err
	}

	result := make([]*entity.ChildReferral, len(rows))
	for i, row := range rows {
		result[i] = utils.ToReferral(row)
	}
	return result, nil
}

// TransitionStatus validates the lifecycle edge, appends to status_history
// and updates the status column in one write. History entries are never
// rewritten.
func (r *referralRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to constants.ReferralStatus, changedBy, reason, notes string) (*entity.ChildReferral, error) {
	row, err := r.client.Referral.Query().Where(referral.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}

	from := constants.ReferralStatus(row.Status)
	if !constants.ValidTransition(from, to) {
		return nil, fmt.Errorf("invalid status transition %q -> %q", from, to)
	}

	var history []entity.StatusChange
	if len(row.StatusHistory) > 0 {
		if err := json.Unmarshal(row.StatusHistory, &history); err != nil {
			r.logger.Warn("resetting corrupt status_history", "referral_id", id, "error", err)
			history = nil
		}
	}
	history = append(history, entity.StatusChange{
		From:      string(from),
		To:        string(to),
		Timestamp: time.Now().UTC(),
		ChangedBy: changedBy,
		Reason:    reason,
		Notes:     notes,
	})
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.Referral.UpdateOneID(id).
		SetStatus(string(to)).
		SetStatusHistory(historyJSON).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to transition referral", "referral_id", id, "to", to, "error", err)
		return nil, err
	}
	r.logger.Info("referral status changed", "referral_id", id, "from", from, "to", to, "changed_by", changedBy)
	return utils.ToReferral(updated), nil
}

// ReplaceMatches overwrites the stored match list wholesale. A re-run never
// merges with stale results.
func (r *referralRepository) ReplaceMatches(ctx context.Context, id uuid.UUID, matches []entity.MatchedCarer) (*entity.ChildReferral, error) {
	if matches == nil {
		matches = []entity.MatchedCarer{}
	}
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.Referral.UpdateOneID(id).
		SetMatchedCarers(matchesJSON).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store matches", "referral_id", id, "error", err)
		return nil, err
	}
	return utils.ToReferral(updated), nil
}

// Assign records carer selection and moves the referral to placed.
func (r *referralRepository) Assign(ctx context.Context, id, carerID uuid.UUID, assignedBy string) (*entity.ChildReferral, error) {
	row, err := r.client.Referral.Query().Where(referral.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}

	from := constants.ReferralStatus(row.Status)
	if !constants.ValidTransition(from, constants.ReferralPlaced) {
		return nil, fmt.Errorf("referral in status %q cannot be placed", from)
	}

	if _, err := r.client.Referral.UpdateOneID(id).
		SetAssignedCarerID(carerID).
		SetAssignedAt(time.Now().UTC()).
		SetAssignedBy(assignedBy).
		Save(ctx); err != nil {
		r.logger.Error("failed to assign carer", "referral_id", id, "carer_id", carerID, "error", err)
		return nil, err
	}

	return r.TransitionStatus(ctx, id, constants.ReferralPlaced, assignedBy, "carer assigned", "")
}

// RawText returns the stored document text for re-extraction.
func (r *referralRepository) RawText(ctx context.Context, id uuid.UUID) (string, error) {
	row, err := r.client.Referral.Query().
		Where(referral.ID(id)).
		Select(referral.FieldRawText).
		Only(ctx)
	if err != nil {
		return "", err
	}
	if row.RawText == nil {
		return "", nil
	}
	return *row.RawText, nil
}
