package webhook

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

type fakeQueue struct {
	mails []*entity.ParsedEmail
	err   error
}

func (q *fakeQueue) Enqueue(mail *entity.ParsedEmail) error {
	if q.err != nil {
		return q.err
	}
	q.mails = append(q.mails, mail)
	return nil
}

func sendgridBody(t *testing.T, withPDF bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("from", "referrals@council.gov.uk"))
	require.NoError(t, w.WriteField("subject", "New referral"))
	require.NoError(t, w.WriteField("text", "see attached"))
	require.NoError(t, w.WriteField("headers", "Message-ID: <msg-1@council.gov.uk>"))
	if withPDF {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="attachment1"; filename="referral.pdf"`)
		h.Set("Content-Type", "application/pdf")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestSendgridWebhook_Accepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	queue := &fakeQueue{}
	r := NewRouter(nil, queue, nil)

	body, contentType := sendgridBody(t, true)
	req := httptest.NewRequest(http.MethodPost, "/webhook/sendgrid", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, queue.mails, 1)
	assert.Equal(t, "msg-1@council.gov.uk", queue.mails[0].MessageID)
	require.Len(t, queue.mails[0].Attachments, 1)
}

func TestSendgridWebhook_NoPDFRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	queue := &fakeQueue{}
	r := NewRouter(nil, queue, nil)

	body, contentType := sendgridBody(t, false)
	req := httptest.NewRequest(http.MethodPost, "/webhook/sendgrid", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, queue.mails)
}

func TestSendgridWebhook_MalformedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	queue := &fakeQueue{}
	r := NewRouter(nil, queue, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhook/sendgrid", bytes.NewBufferString("not multipart"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, queue.mails)
}

func TestSendgridWebhook_QueueFull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	queue := &fakeQueue{err: errors.New("queue full")}
	r := NewRouter(nil, queue, nil)

	body, contentType := sendgridBody(t, true)
	req := httptest.NewRequest(http.MethodPost, "/webhook/sendgrid", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMailgunWebhook_Accepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	queue := &fakeQueue{}
	r := NewRouter(nil, queue, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("sender", "referrals@council.gov.uk"))
	require.NoError(t, w.WriteField("body-plain", "attached"))
	require.NoError(t, w.WriteField("Message-Id", "<msg-2@council.gov.uk>"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="attachment-1"; filename="form.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/webhook/mailgun", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, queue.mails, 1)
	assert.Equal(t, "msg-2@council.gov.uk", queue.mails[0].MessageID)
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(nil, &fakeQueue{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz_Unhealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(nil, &fakeQueue{}, func(*gin.Context) error { return errors.New("db down") })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
