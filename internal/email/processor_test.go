package email

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/pdftext"
	"github.com/careflow-uk/fostermatch/internal/repository"
)

type memDeduper struct {
	seen map[string]string
	err  error
}

func (d *memDeduper) Seen(_ context.Context, id string) (bool, string, error) {
	if d.err != nil {
		return false, "", d.err
	}
	if d.seen == nil {
		d.seen = map[string]string{}
	}
	recorded, was := d.seen[id]
	if !was {
		d.seen[id] = ""
	}
	return was, recorded, nil
}

func (d *memDeduper) Record(_ context.Context, id, referralID string) error {
	if d.seen == nil {
		d.seen = map[string]string{}
	}
	d.seen[id] = referralID
	return nil
}

type stubConverter struct {
	text string
	err  error

	gotPath string
}

func (c *stubConverter) Extract(_ context.Context, path string) (pdftext.Result, error) {
	c.gotPath = path
	if c.err != nil {
		return pdftext.Result{}, c.err
	}
	return pdftext.Result{Text: c.text, Pages: 1}, nil
}

type capturingStore struct {
	created     *repository.CreateReferralRequest
	transitions []constants.ReferralStatus
	err         error
}

func (s *capturingStore) Create(_ context.Context, req *repository.CreateReferralRequest) (*entity.ChildReferral, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = req
	out := *req.Referral
	out.Status = req.Status
	return &out, nil
}

func (s *capturingStore) TransitionStatus(_ context.Context, id uuid.UUID, to constants.ReferralStatus, _, _, _ string) (*entity.ChildReferral, error) {
	s.transitions = append(s.transitions, to)
	return &entity.ChildReferral{ID: id, Status: to}, nil
}

type stubMatcher struct {
	ran []uuid.UUID
	err error
}

func (m *stubMatcher) RunForReferral(_ context.Context, id uuid.UUID, _ string) (*entity.ChildReferral, error) {
	m.ran = append(m.ran, id)
	if m.err != nil {
		return nil, m.err
	}
	return &entity.ChildReferral{ID: id, Status: constants.ReferralMatched}, nil
}

func inboundEmail(attachments ...entity.EmailAttachment) *entity.ParsedEmail {
	return &entity.ParsedEmail{
		MessageID:   "msg-1@council.gov.uk",
		From:        "referrals@council.gov.uk",
		Subject:     "New referral",
		Attachments: attachments,
		ReceivedAt:  time.Now().UTC(),
	}
}

func pdfWithContent(content string) entity.EmailAttachment {
	return entity.EmailAttachment{
		Filename:    "referral.pdf",
		Content:     []byte(content),
		ContentType: "application/pdf",
		Size:        len(content),
	}
}

func newTestProcessor(t *testing.T, conv *stubConverter, store *capturingStore, matcher *stubMatcher) *Processor {
	t.Helper()
	var m Matcher
	if matcher != nil {
		m = matcher
	}
	return NewProcessor(ProcessorConfig{AttachmentDir: t.TempDir()}, &memDeduper{}, conv, store, m, nil, nil)
}

func TestProcess_HappyPath(t *testing.T) {
	conv := &stubConverter{text: "age: 9 the child enjoys school"}
	store := &capturingStore{}
	matcher := &stubMatcher{}
	p := newTestProcessor(t, conv, store, matcher)

	res, err := p.Process(context.Background(), inboundEmail(pdfWithContent("%PDF-1.4")))

	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.False(t, res.NeedsReview)
	assert.Equal(t, constants.ReferralMatched, res.Status)

	require.NotNil(t, store.created)
	assert.Equal(t, constants.ReferralPending, store.created.Status)
	assert.Equal(t, 9, store.created.Referral.Age)
	assert.Equal(t, "email:referrals@council.gov.uk", store.created.Referral.ReferralSource)
	assert.NotEmpty(t, store.created.RawText)
	assert.NotEmpty(t, store.created.ExtractedFields)
	assert.Len(t, matcher.ran, 1)

	// attachment persisted where the converter was pointed
	data, err := os.ReadFile(conv.gotPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestProcess_DuplicateDropped(t *testing.T) {
	conv := &stubConverter{text: "age: 9"}
	store := &capturingStore{}
	p := newTestProcessor(t, conv, store, nil)

	mail := inboundEmail(pdfWithContent("%PDF-1.4"))
	first, err := p.Process(context.Background(), mail)
	require.NoError(t, err)

	res, err := p.Process(context.Background(), mail)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	// replay reports the referral the first delivery created
	assert.Equal(t, first.ReferralID, res.ReferralID)
}

func TestProcess_NoPDFAttachment(t *testing.T) {
	store := &capturingStore{}
	p := newTestProcessor(t, &stubConverter{}, store, nil)

	_, err := p.Process(context.Background(), inboundEmail(entity.EmailAttachment{
		Filename:    "notes.docx",
		ContentType: "application/msword",
	}))

	require.ErrorIs(t, err, ErrNoPDFAttachment)
	assert.Nil(t, store.created)
}

func TestProcess_ConversionFailureStoresForReview(t *testing.T) {
	conv := &stubConverter{err: errors.New("no text layer")}
	store := &capturingStore{}
	matcher := &stubMatcher{}
	p := newTestProcessor(t, conv, store, matcher)

	res, err := p.Process(context.Background(), inboundEmail(pdfWithContent("scanned")))

	require.NoError(t, err)
	assert.True(t, res.NeedsReview)
	assert.Equal(t, constants.ReferralProcessing, res.Status)

	require.NotNil(t, store.created)
	assert.Equal(t, constants.ReferralProcessing, store.created.Status)
	assert.NotEmpty(t, store.created.Referral.AttachmentPath)
	// no matching on a referral awaiting manual review
	assert.Empty(t, matcher.ran)
}

func TestProcess_MatchingFailureParksReferral(t *testing.T) {
	conv := &stubConverter{text: "age: 9"}
	store := &capturingStore{}
	matcher := &stubMatcher{err: errors.New("pool unavailable")}
	p := newTestProcessor(t, conv, store, matcher)

	res, err := p.Process(context.Background(), inboundEmail(pdfWithContent("%PDF-1.4")))

	require.NoError(t, err)
	assert.Equal(t, constants.ReferralProcessing, res.Status)
	require.NotNil(t, store.created)
	assert.Equal(t, []constants.ReferralStatus{constants.ReferralProcessing}, store.transitions)
}

func TestProcess_StoreErrorPropagates(t *testing.T) {
	conv := &stubConverter{text: "age: 9"}
	store := &capturingStore{err: errors.New("db down")}
	p := newTestProcessor(t, conv, store, nil)

	_, err := p.Process(context.Background(), inboundEmail(pdfWithContent("%PDF-1.4")))
	require.Error(t, err)
}

func TestProcess_PicksFirstPDFAmongAttachments(t *testing.T) {
	conv := &stubConverter{text: "age: 9"}
	store := &capturingStore{}
	p := newTestProcessor(t, conv, store, nil)

	png := entity.EmailAttachment{Filename: "logo.png", ContentType: "image/png", Content: []byte("png")}
	res, err := p.Process(context.Background(), inboundEmail(png, pdfWithContent("the form")))

	require.NoError(t, err)
	assert.False(t, res.NeedsReview)
	data, err := os.ReadFile(conv.gotPath)
	require.NoError(t, err)
	assert.Equal(t, "the form", string(data))
}
