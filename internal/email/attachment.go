package email

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/careflow-uk/fostermatch/internal/entity"
)

func readAttachment(fh *multipart.FileHeader) (entity.EmailAttachment, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.EmailAttachment{}, fmt.Errorf("open attachment %s: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return entity.EmailAttachment{}, fmt.Errorf("read attachment %s: %w", fh.Filename, err)
	}
	return entity.EmailAttachment{
		Filename:    fh.Filename,
		Content:     content,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        len(content),
	}, nil
}

// IsPDF reports whether the attachment looks like a PDF, by content type or
// extension.
func IsPDF(att entity.EmailAttachment) bool {
	if strings.EqualFold(att.ContentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(att.Filename), ".pdf")
}
