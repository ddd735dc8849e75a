package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/gen/ent"
	"github.com/careflow-uk/fostermatch/gen/ent/auditlog"
	"github.com/careflow-uk/fostermatch/internal/entity"
)

type AuditRepository interface {
	Record(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID, action constants.AuditAction, actor string, detail any) error
	ListForEntity(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID) ([]*entity.AuditLog, error)
	ListForUser(ctx context.Context, actor string) ([]*entity.AuditLog, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}

type auditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepository{
		client: client,
		logger: logger,
	}
}

// Record writes one audit row. Audit failures are logged but never propagate;
// a lost audit entry must not fail the operation it describes.
func (r *auditRepository) Record(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID, action constants.AuditAction, actor string, detail any) error {
	builder := r.client.AuditLog.Create().
		SetEntityType(string(entityType)).
		SetEntityID(entityID).
		SetAction(string(action))

	if actor != "" {
		builder = builder.SetActor(actor)
	}
	if detail != nil {
		payload, err := json.Marshal(detail)
		if err != nil {
			r.logger.Warn("failed to encode audit detail", "entity_id", entityID, "error", err)
		} else {
			builder = builder.SetDetail(payload)
		}
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to write audit log", "entity_type", entityType, "entity_id", entityID, "action", action, "error", err)
	}
	return nil
}

func (r *auditRepository) ListForEntity(ctx context.Context, entityType constants.AuditEntity, entityID uuid.UUID) ([]*entity.AuditLog, error) {
	rows, err := r.client.AuditLog.Query().
		Where(auditlog.EntityType(string(entityType)), auditlog.EntityID(entityID)).
		Order(auditlog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit logs", "entity_id", entityID, "error", err)
		return nil, err
	}

	result := make([]*entity.AuditLog, len(rows))
	for i, row := range rows {
		result[i] = toAuditLog(row)
	}
	return result, nil
}

func (r *auditRepository) ListForUser(ctx context.Context, actor string) ([]*entity.AuditLog, error) {
	rows, err := r.client.AuditLog.Query().
		Where(auditlog.Actor(actor)).
		Order(auditlog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit logs by actor", "actor", actor, "error", err)
		return nil, err
	}
	return toAuditLogs(rows), nil
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.client.AuditLog.Query().
		Order(auditlog.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent audit logs", "error", err)
		return nil, err
	}
	return toAuditLogs(rows), nil
}

func toAuditLogs(rows []*ent.AuditLog) []*entity.AuditLog {
	result := make([]*entity.AuditLog, len(rows))
	for i, row := range rows {
		result[i] = toAuditLog(row)
	}
	return result
}

func toAuditLog(e *ent.AuditLog) *entity.AuditLog {
	a := &entity.AuditLog{
		ID:         e.ID,
		EntityType: constants.AuditEntity(e.EntityType),
		EntityID:   e.EntityID.String(),
		Action:     constants.AuditAction(e.Action),
		Timestamp:  e.CreatedAt,
	}
	if e.Actor != nil {
		a.UserID = *e.Actor
	}
	if len(e.Detail) > 0 {
		if err := json.Unmarshal(e.Detail, &a.Changes); err != nil {
			a.Changes = nil
		}
	}
	return a
}
