package utils

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/gen/ent"
	fostercarepb "github.com/careflow-uk/fostermatch/gen/proto/fostercare/v1"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolOrFalse(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func genderPtr(p *string) *constants.Gender {
	if p == nil {
		return nil
	}
	g := constants.Gender(*p)
	return &g
}

// ToCarer converts an ent row to the domain type.
func ToCarer(e *ent.Carer) *entity.CarerProfile {
	return &entity.CarerProfile{
		ID:                             e.ID,
		Name:                           e.Name,
		Email:                          strOrEmpty(e.Email),
		Phone:                          strOrEmpty(e.Phone),
		MinAge:                         e.MinAge,
		MaxAge:                         e.MaxAge,
		AcceptsSiblings:                e.AcceptsSiblings,
		AllowsPets:                     e.AllowsPets,
		ExperienceWithBehaviouralNeeds: e.BehaviouralExperience,
		ExperienceWithSEN:              e.SenExperience,
		PreferredLocation:              strOrEmpty(e.PreferredLocation),
		ExcludedLocations:              e.ExcludedLocations,
		GenderPreference:               genderPtr(e.GenderPreference),
		Capacity:                       e.Capacity,
		Status:                         constants.CarerStatus(e.Status),
		CreatedAt:                      e.CreatedAt,
		UpdatedAt:                      e.UpdatedAt,
		CreatedBy:                      strOrEmpty(e.CreatedBy),
		UpdatedBy:                      strOrEmpty(e.UpdatedBy),
	}
}

// ToReferral converts an ent row to the domain type. The JSON columns are
// decoded best-effort: a corrupt matched_carers or status_history blob is
// logged and surfaced as empty rather than failing the whole read.
func ToReferral(e *ent.Referral) *entity.ChildReferral {
	r := &entity.ChildReferral{
		ID:                    e.ID,
		Age:                   e.ChildAge,
		Gender:                constants.Gender(e.Gender),
		Ethnicity:             e.Ethnicity,
		CulturalBackground:    e.CulturalBackground,
		SENNeeds:              boolOrFalse(e.Sen),
		Disabilities:          e.Disabilities,
		BehaviouralNeeds:      boolOrFalse(e.BehaviouralNeeds),
		BehaviouralDetails:    strOrEmpty(e.BehaviouralDetails),
		PlacementType:         constants.PlacementType(e.PlacementType),
		SoloPlacementRequired: boolOrFalse(e.SoloPlacementRequired),
		SiblingGroup:          boolOrFalse(e.SiblingGroup),
		SiblingCount:          e.SiblingCount,
		PetsAllowed:           boolOrFalse(e.PetsInHomeAcceptable),
		PreferredLocations:    e.PreferredLocations,
		ExcludedLocations:     e.ExcludedLocations,
		CarerGenderPreference: genderPtr(e.CarerGenderPreference),
		SupportNeeds:          e.SupportNeeds,
		MedicalNeeds:          e.MedicalNeeds,
		EducationalNeeds:      e.EducationalNeeds,
		ReferralSource:        e.Source,
		ReferralDate:          e.ReceivedAt,
		Urgency:               constants.Urgency(e.Urgency),
		Status:                constants.ReferralStatus(e.Status),
		AttachmentPath:        strOrEmpty(e.AttachmentPath),
		ExtractedData:         len(e.ExtractedData) > 0,
		AssignedCarerID:       e.AssignedCarerID,
		AssignedAt:            e.AssignedAt,
		AssignedBy:            strOrEmpty(e.AssignedBy),
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
		ProcessedAt:           e.ProcessedAt,
		MatchedCarers:         []entity.MatchedCarer{},
		StatusHistory:         []entity.StatusChange{},
	}

	if len(e.MatchedCarers) > 0 {
		if err := json.Unmarshal(e.MatchedCarers, &r.MatchedCarers); err != nil {
			slog.Warn("failed to decode matched_carers", "referral_id", e.ID, "error", err)
			r.MatchedCarers = []entity.MatchedCarer{}
		}
	}
	if len(e.StatusHistory) > 0 {
		if err := json.Unmarshal(e.StatusHistory, &r.StatusHistory); err != nil {
			slog.Warn("failed to decode status_history", "referral_id", e.ID, "error", err)
			r.StatusHistory = []entity.StatusChange{}
		}
	}
	return r
}

func ToPBCarer(c *entity.CarerProfile) *fostercarepb.Carer {
	genderPref := ""
	if c.GenderPreference != nil {
		genderPref = string(*c.GenderPreference)
	}
	return &fostercarepb.Carer{
		Id:                    c.ID.String(),
		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		MinAge:                int32(c.MinAge),
		MaxAge:                int32(c.MaxAge),
		AcceptsSiblings:       c.AcceptsSiblings,
		AllowsPets:            c.AllowsPets,
		BehaviouralExperience: c.ExperienceWithBehaviouralNeeds,
		SenExperience:         c.ExperienceWithSEN,
		PreferredLocation:     c.PreferredLocation,
		ExcludedLocations:     c.ExcludedLocations,
		GenderPreference:      genderPref,
		Capacity:              int32(c.Capacity),
		Status:                string(c.Status),
		CreatedAt:             c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBReferral(r *entity.ChildReferral) *fostercarepb.Referral {
	carerGenderPref := ""
	if r.CarerGenderPreference != nil {
		carerGenderPref = string(*r.CarerGenderPreference)
	}
	siblingCount := int32(0)
	if r.SiblingCount != nil {
		siblingCount = int32(*r.SiblingCount)
	}
	assignedCarer := ""
	if r.AssignedCarerID != nil {
		assignedCarer = r.AssignedCarerID.String()
	}
	assignedAt := ""
	if r.AssignedAt != nil {
		assignedAt = r.AssignedAt.UTC().Format(time.RFC3339)
	}

	matched := make([]*fostercarepb.MatchedCarer, 0, len(r.MatchedCarers))
	for _, m := range r.MatchedCarers {
		matched = append(matched, &fostercarepb.MatchedCarer{
			CarerId:      m.CarerID.String(),
			CarerName:    m.CarerName,
			Score:        m.Score,
			MatchDetails: toPBMatchDetails(m.MatchDetails),
			Recommended:  m.Recommended,
			Contacted:    m.Contacted,
			Response:     m.Response,
		})
	}
	history := make([]*fostercarepb.StatusChange, 0, len(r.StatusHistory))
	for _, h := range r.StatusHistory {
		history = append(history, &fostercarepb.StatusChange{
			From:      h.From,
			To:        h.To,
			Timestamp: h.Timestamp.UTC().Format(time.RFC3339),
			ChangedBy: h.ChangedBy,
			Reason:    h.Reason,
			Notes:     h.Notes,
		})
	}

	return &fostercarepb.Referral{
		Id:                    r.ID.String(),
		Age:                   int32(r.Age),
		Gender:                string(r.Gender),
		Ethnicity:             r.Ethnicity,
		CulturalBackground:    r.CulturalBackground,
		SenNeeds:              r.SENNeeds,
		Disabilities:          r.Disabilities,
		BehaviouralNeeds:      r.BehaviouralNeeds,
		BehaviouralDetails:    r.BehaviouralDetails,
		PlacementType:         string(r.PlacementType),
		SiblingGroup:          r.SiblingGroup,
		SiblingCount:          siblingCount,
		SoloPlacementRequired: r.SoloPlacementRequired,
		PetsAllowed:           r.PetsAllowed,
		PreferredLocations:    r.PreferredLocations,
		ExcludedLocations:     r.ExcludedLocations,
		CarerGenderPreference: carerGenderPref,
		SupportNeeds:          r.SupportNeeds,
		MedicalNeeds:          r.MedicalNeeds,
		EducationalNeeds:      r.EducationalNeeds,
		Urgency:               string(r.Urgency),
		Status:                string(r.Status),
		Source:                r.ReferralSource,
		ReceivedAt:            r.ReferralDate.UTC().Format(time.RFC3339),
		MatchedCarers:         matched,
		AssignedCarerId:       assignedCarer,
		AssignedAt:            assignedAt,
		StatusHistory:         history,
		AttachmentPath:        r.AttachmentPath,
		ExtractedData:         r.ExtractedData,
	}
}

func ToPBMatchingResult(res entity.MatchingResult) *fostercarepb.MatchingResult {
	return &fostercarepb.MatchingResult{
		CarerId:          res.CarerID.String(),
		Score:            res.Score,
		MaxPossibleScore: res.MaxPossibleScore,
		MatchDetails:     toPBMatchDetails(res.MatchDetails),
		Recommended:      res.Recommended,
	}
}

func toPBMatchDetails(details []entity.MatchDetail) []*fostercarepb.MatchDetail {
	out := make([]*fostercarepb.MatchDetail, 0, len(details))
	for _, d := range details {
		out = append(out, &fostercarepb.MatchDetail{
			Criterion: d.Criterion,
			Points:    d.Points,
			Matched:   d.Matched,
			Details:   d.Details,
		})
	}
	return out
}
