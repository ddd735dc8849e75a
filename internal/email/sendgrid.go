package email

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

// maxInboundSize caps webhook payload parsing at 32 MiB.
const maxInboundSize = 32 << 20

var reMessageID = regexp.MustCompile(`(?im)^message-id:\s*<?([^>\r\n]+)>?`)

// ParseSendGrid decodes a SendGrid Inbound Parse webhook payload. SendGrid
// posts multipart/form-data with the email fields flattened and attachments
// as file parts named attachment1..attachmentN.
func ParseSendGrid(r *http.Request) (*entity.ParsedEmail, error) {
	if err := r.ParseMultipartForm(maxInboundSize); err != nil {
		return nil, fmt.Errorf("parse sendgrid payload: %w", err)
	}

	form := r.MultipartForm
	value := func(key string) string {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	p := &entity.ParsedEmail{
		From:       value("from"),
		To:         value("to"),
		Subject:    value("subject"),
		Body:       value("text"),
		ReceivedAt: time.Now().UTC(),
	}
	if p.Body == "" {
		p.Body = value("html")
	}
	p.MessageID = messageIDFromHeaders(value("headers"))
	if p.MessageID == "" {
		return nil, fmt.Errorf("sendgrid payload has no message id")
	}

	for name, headers := range form.File {
		if !strings.HasPrefix(name, "attachment") {
			continue
		}
		for _, fh := range headers {
			att, err := readAttachment(fh)
			if err != nil {
				return nil, err
			}
			p.Attachments = append(p.Attachments, att)
		}
	}
	return p, nil
}

func messageIDFromHeaders(headers string) string {
	m := reMessageID.FindStringSubmatch(headers)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
