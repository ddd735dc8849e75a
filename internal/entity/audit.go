package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
)

// AuditLog is one immutable append-only log entry.
type AuditLog struct {
	ID         uuid.UUID             `json:"id"`
	EntityType constants.AuditEntity `json:"entityType"`
	EntityID   string                `json:"entityId"`
	Action     constants.AuditAction `json:"action"`
	UserID     string                `json:"userId"`
	UserName   string                `json:"userName"`
	Timestamp  time.Time             `json:"timestamp"`
	Changes    map[string]any        `json:"changes"`
	Notes      string                `json:"notes,omitempty"`
}
