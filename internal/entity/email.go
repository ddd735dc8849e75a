package entity

import "time"

// EmailAttachment is a decoded attachment from an inbound email webhook.
type EmailAttachment struct {
	Filename    string
	Content     []byte
	ContentType string
	Size        int
}

// ParsedEmail is provider-neutral inbound email data.
type ParsedEmail struct {
	MessageID   string
	From        string
	To          string
	Subject     string
	Body        string
	Attachments []EmailAttachment
	ReceivedAt  time.Time
}
