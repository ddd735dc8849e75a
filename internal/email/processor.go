package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/extract"
	"github.com/careflow-uk/fostermatch/internal/pdftext"
	"github.com/careflow-uk/fostermatch/internal/repository"
)

// ErrNoPDFAttachment marks an inbound email carrying no referral form.
var ErrNoPDFAttachment = errors.New("email has no pdf attachment")

// PDFConverter is the slice of the pdf-to-text extractor the processor needs.
type PDFConverter interface {
	Extract(ctx context.Context, path string) (pdftext.Result, error)
}

// ReferralStore persists new referrals and records lifecycle failures.
type ReferralStore interface {
	Create(ctx context.Context, req *repository.CreateReferralRequest) (*entity.ChildReferral, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to constants.ReferralStatus, changedBy, reason, notes string) (*entity.ChildReferral, error)
}

// Matcher triggers a matching run after successful ingestion.
type Matcher interface {
	RunForReferral(ctx context.Context, referralID uuid.UUID, actor string) (*entity.ChildReferral, error)
}

// Auditor records ingestion events. May be nil.
type Auditor interface {
	Record(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID, action constants.AuditAction, actor string, detail any) error
}

// ProcessResult summarises one ingestion attempt.
type ProcessResult struct {
	ReferralID uuid.UUID
	Status     constants.ReferralStatus
	Duplicate  bool
	// NeedsReview is set when conversion or extraction could not produce
	// usable fields and the referral was stored for manual handling.
	NeedsReview bool
}

// Processor drives the ingestion pipeline for one parsed email.
type Processor struct {
	deduper       Deduper
	converter     PDFConverter
	extractor     *extract.Extractor
	referrals     ReferralStore
	matcher       Matcher
	audit         Auditor
	attachmentDir string
	logger        *slog.Logger
}

type ProcessorConfig struct {
	AttachmentDir string
}

func NewProcessor(cfg ProcessorConfig, deduper Deduper, converter PDFConverter, referrals ReferralStore, matcher Matcher, audit Auditor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		deduper:       deduper,
		converter:     converter,
		extractor:     extract.New(),
		referrals:     referrals,
		matcher:       matcher,
		audit:         audit,
		attachmentDir: cfg.AttachmentDir,
		logger:        logger,
	}
}

// Process ingests one inbound email end to end. Redelivered messages are
// dropped. A missing PDF is the sender's error and is returned as
// ErrNoPDFAttachment. A PDF that cannot be converted still produces a
// referral, in processing status, so nothing is silently lost.
func (p *Processor) Process(ctx context.Context, mail *entity.ParsedEmail) (ProcessResult, error) {
	log := p.logger.With("message_id", mail.MessageID, "from", mail.From)

	seen, recordedID, err := p.deduper.Seen(ctx, mail.MessageID)
	if err != nil {
		return ProcessResult{}, err
	}
	if seen {
		res := ProcessResult{Duplicate: true}
		if id, err := uuid.Parse(recordedID); err == nil {
			res.ReferralID = id
		}
		log.Info("duplicate email dropped", "referral_id", recordedID)
		return res, nil
	}

	var pdf *entity.EmailAttachment
	for i := range mail.Attachments {
		if IsPDF(mail.Attachments[i]) {
			pdf = &mail.Attachments[i]
			break
		}
	}
	if pdf == nil {
		log.Warn("no pdf attachment", "attachments", len(mail.Attachments))
		return ProcessResult{}, ErrNoPDFAttachment
	}

	referralID := uuid.New()
	path, err := p.saveAttachment(referralID, pdf)
	if err != nil {
		return ProcessResult{}, err
	}

	conv, err := p.converter.Extract(ctx, path)
	if err != nil {
		log.Warn("pdf conversion failed, storing for manual review", "error", err)
		return p.storeForReview(ctx, referralID, mail, path)
	}

	fields := p.extractor.Extract(conv.Text)
	fieldsJSON, err := extract.FieldsJSON(fields)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("encode extracted fields: %w", err)
	}
	if err := extract.ValidateFields(fieldsJSON); err != nil {
		log.Warn("extracted fields failed validation, storing for manual review", "error", err)
		return p.storeForReview(ctx, referralID, mail, path)
	}

	referral := entity.NewReferral(referralID, "email:"+mail.From, mail.ReceivedAt)
	referral.AttachmentPath = path
	fields.Apply(referral)

	created, err := p.referrals.Create(ctx, &repository.CreateReferralRequest{
		Referral:        referral,
		RawText:         conv.Text,
		ExtractedFields: fieldsJSON,
		Status:          constants.ReferralPending,
	})
	if err != nil {
		return ProcessResult{}, fmt.Errorf("store referral: %w", err)
	}
	p.recordAudit(ctx, created.ID, mail)
	if err := p.deduper.Record(ctx, mail.MessageID, created.ID.String()); err != nil {
		log.Warn("failed to record referral id for dedupe", "error", err)
	}

	finalStatus := created.Status
	if p.matcher != nil {
		matched, err := p.matcher.RunForReferral(ctx, created.ID, "system")
		if err != nil {
			// Ingestion succeeded; park the referral for manual re-run
			// rather than leaving it looking ready to match.
			log.Error("automatic matching failed", "referral_id", created.ID, "error", err)
			if r, terr := p.referrals.TransitionStatus(ctx, created.ID, constants.ReferralProcessing, "system", "matching failed", err.Error()); terr != nil {
				log.Error("failed to park referral after matching failure", "referral_id", created.ID, "error", terr)
			} else {
				finalStatus = r.Status
			}
		} else {
			finalStatus = matched.Status
		}
	}

	log.Info("email ingested", "referral_id", created.ID, "status", finalStatus, "pages", conv.Pages)
	return ProcessResult{ReferralID: created.ID, Status: finalStatus}, nil
}

// storeForReview persists a defaults-only referral in processing status.
func (p *Processor) storeForReview(ctx context.Context, referralID uuid.UUID, mail *entity.ParsedEmail, path string) (ProcessResult, error) {
	referral := entity.NewReferral(referralID, "email:"+mail.From, mail.ReceivedAt)
	referral.AttachmentPath = path

	created, err := p.referrals.Create(ctx, &repository.CreateReferralRequest{
		Referral: referral,
		Status:   constants.ReferralProcessing,
	})
	if err != nil {
		return ProcessResult{}, fmt.Errorf("store referral for review: %w", err)
	}
	p.recordAudit(ctx, created.ID, mail)
	if err := p.deduper.Record(ctx, mail.MessageID, created.ID.String()); err != nil {
		p.logger.Warn("failed to record referral id for dedupe", "message_id", mail.MessageID, "error", err)
	}
	return ProcessResult{ReferralID: created.ID, Status: created.Status, NeedsReview: true}, nil
}

func (p *Processor) saveAttachment(referralID uuid.UUID, att *entity.EmailAttachment) (string, error) {
	if err := os.MkdirAll(p.attachmentDir, 0o755); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}
	path := filepath.Join(p.attachmentDir, referralID.String()+".pdf")
	if err := os.WriteFile(path, att.Content, 0o644); err != nil {
		return "", fmt.Errorf("save attachment: %w", err)
	}
	return path, nil
}

func (p *Processor) recordAudit(ctx context.Context, referralID uuid.UUID, mail *entity.ParsedEmail) {
	if p.audit == nil {
		return
	}
	_ = p.audit.Record(ctx, constants.AuditEntityReferral, referralID, constants.AuditCreated, "system", map[string]any{
		"event":       "email_ingested",
		"message_id":  mail.MessageID,
		"from":        mail.From,
		"subject":     mail.Subject,
		"received_at": mail.ReceivedAt.Format(time.RFC3339),
	})
}
