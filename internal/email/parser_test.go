package email

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

func pdfAttachment(name, contentType string) entity.EmailAttachment {
	return entity.EmailAttachment{Filename: name, ContentType: contentType}
}

type formPart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func multipartRequest(t *testing.T, values map[string]string, files []formPart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/webhook", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestParseSendGrid(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"from":    "referrals@council.gov.uk",
			"to":      "intake@fostermatch.example",
			"subject": "Urgent referral",
			"text":    "Please see attached referral form.",
			"headers": "Received: by mx.sendgrid.net\r\nMessage-ID: <abc123@council.gov.uk>\r\nSubject: Urgent referral",
		},
		[]formPart{{field: "attachment1", filename: "referral.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4 test")}},
	)

	p, err := ParseSendGrid(req)

	require.NoError(t, err)
	assert.Equal(t, "abc123@council.gov.uk", p.MessageID)
	assert.Equal(t, "referrals@council.gov.uk", p.From)
	assert.Equal(t, "Urgent referral", p.Subject)
	assert.Equal(t, "Please see attached referral form.", p.Body)
	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "referral.pdf", p.Attachments[0].Filename)
	assert.Equal(t, len("%PDF-1.4 test"), p.Attachments[0].Size)
}

func TestParseSendGrid_MissingMessageID(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"from":    "referrals@council.gov.uk",
		"text":    "no headers here",
		"headers": "Received: by mx.sendgrid.net",
	}, nil)

	_, err := ParseSendGrid(req)
	assert.Error(t, err)
}

func TestParseSendGrid_FallsBackToHTMLBody(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"from":    "a@b.c",
		"html":    "<p>referral</p>",
		"headers": "Message-ID: <x@y>",
	}, nil)

	p, err := ParseSendGrid(req)

	require.NoError(t, err)
	assert.Equal(t, "<p>referral</p>", p.Body)
}

func TestParseMailgun(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"sender":     "referrals@council.gov.uk",
			"recipient":  "intake@fostermatch.example",
			"subject":    "New referral",
			"body-plain": "Referral form attached.",
			"Message-Id": "<def456@council.gov.uk>",
		},
		[]formPart{{field: "attachment-1", filename: "form.pdf", contentType: "application/pdf", content: []byte("%PDF-1.7")}},
	)

	p, err := ParseMailgun(req)

	require.NoError(t, err)
	assert.Equal(t, "def456@council.gov.uk", p.MessageID)
	assert.Equal(t, "referrals@council.gov.uk", p.From)
	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "form.pdf", p.Attachments[0].Filename)
}

func TestParseMailgun_MissingMessageID(t *testing.T) {
	req := multipartRequest(t, map[string]string{"sender": "a@b.c", "body-plain": "hi"}, nil)

	_, err := ParseMailgun(req)
	assert.Error(t, err)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF(pdfAttachment("referral.pdf", "application/pdf")))
	assert.True(t, IsPDF(pdfAttachment("REFERRAL.PDF", "application/octet-stream")))
	assert.True(t, IsPDF(pdfAttachment("scan.bin", "application/pdf")))
	assert.False(t, IsPDF(pdfAttachment("notes.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")))
	assert.False(t, IsPDF(pdfAttachment("image.png", "image/png")))
}
