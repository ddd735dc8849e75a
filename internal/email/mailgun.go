package email

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

// ParseMailgun decodes a Mailgun routes webhook payload. Mailgun posts
// multipart/form-data with sender/recipient/subject/body-plain fields and
// attachments as file parts named attachment-1..attachment-N.
func ParseMailgun(r *http.Request) (*entity.ParsedEmail, error) {
	if err := r.ParseMultipartForm(maxInboundSize); err != nil {
		return nil, fmt.Errorf("parse mailgun payload: %w", err)
	}

	form := r.MultipartForm
	value := func(key string) string {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	p := &entity.ParsedEmail{
		From:       value("sender"),
		To:         value("recipient"),
		Subject:    value("subject"),
		Body:       value("body-plain"),
		MessageID:  strings.Trim(value("Message-Id"), "<>"),
		ReceivedAt: time.Now().UTC(),
	}
	if p.MessageID == "" {
		p.MessageID = strings.Trim(value("message-id"), "<>")
	}
	if p.MessageID == "" {
		return nil, fmt.Errorf("mailgun payload has no message id")
	}

	for name, headers := range form.File {
		if !strings.HasPrefix(name, "attachment-") {
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
