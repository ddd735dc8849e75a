package constants

// AuditEntity identifies the record kind an audit log entry refers to.
type AuditEntity string

const (
	AuditEntityCarer    AuditEntity = "carer"
	AuditEntityReferral AuditEntity = "referral"
)

// AuditAction identifies what happened to the entity.
type AuditAction string

const (
	AuditCreated       AuditAction = "created"
	AuditUpdated       AuditAction = "updated"
	AuditDeleted       AuditAction = "deleted"
	AuditAssigned      AuditAction = "assigned"
	AuditStatusChanged AuditAction = "status_changed"
)

var AuditEntities = []AuditEntity{AuditEntityCarer, AuditEntityReferral}

var AuditActions = []AuditAction{
	AuditCreated,
	AuditUpdated,
	AuditDeleted,
	AuditAssigned,
	AuditStatusChanged,
}

func AuditEntityStrings() []string {
	out := make([]string, len(AuditEntities))
	for i, e := range AuditEntities {
		out[i] = string(e)
	}
	return out
}

func AuditActionStrings() []string {
	out := make([]string, len(AuditActions))
	for i, a := range AuditActions {
		out[i] = string(a)
	}
	return out
}
