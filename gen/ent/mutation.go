// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/careflow-uk/fostermatch/gen/ent/auditlog"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/careflow-uk/fostermatch/gen/ent/predicate"
	"github.com/careflow-uk/fostermatch/gen/ent/referral"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog = "AuditLog"
	TypeCarer    = "Carer"
	TypeReferral = "Referral"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	entity_type   *string
	entity_id     *uuid.UUID
	action        *string
	actor         *string
	detail        *json.RawMessage
	appenddetail  json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id uuid.UUID) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *AuditLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[auditlog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *AuditLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, auditlog.FieldActor)
}

// SetDetail sets the "detail" field.
func (m *AuditLogMutation) SetDetail(jm json.RawMessage) {
	m.detail = &jm
	m.appenddetail = nil
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditLogMutation) Detail() (r json.RawMessage, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetail(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// AppendDetail adds jm to the "detail" field.
func (m *AuditLogMutation) AppendDetail(jm json.RawMessage) {
	m.appenddetail = append(m.appenddetail, jm...)
}

// AppendedDetail returns the list of values that were appended to the "detail" field in this mutation.
func (m *AuditLogMutation) AppendedDetail() (json.RawMessage, bool) {
	if len(m.appenddetail) == 0 {
		return nil, false
	}
	return m.appenddetail, true
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditLogMutation) ClearDetail() {
	m.detail = nil
	m.appenddetail = nil
	m.clearedFields[auditlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditLogMutation) ResetDetail() {
	m.detail = nil
	m.appenddetail = nil
	delete(m.clearedFields, auditlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.detail != nil {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetail:
		return m.Detail()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetail:
		return m.OldDetail(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetail:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActor) {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.FieldCleared(auditlog.FieldDetail) {
		fields = append(fields, auditlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ClearActor()
		return nil
	case auditlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetail:
		m.ResetDetail()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CarerMutation represents an operation that mutates the Carer nodes in the graph.
type CarerMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	name                     *string
	email                    *string
	phone                    *string
	min_age                  *int
	addmin_age               *int
	max_age                  *int
	addmax_age               *int
	accepts_siblings         *bool
	allows_pets              *bool
	behavioural_experience   *bool
	sen_experience           *bool
	preferred_location       *string
	excluded_locations       *[]string
	appendexcluded_locations []string
	gender_preference        *string
	capacity                 *int
	addcapacity              *int
	status                   *string
	notes                    *string
	created_at               *time.Time
	updated_at               *time.Time
	created_by               *string
	updated_by               *string
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Carer, error)
	predicates               []predicate.Carer
}

var _ ent.Mutation = (*CarerMutation)(nil)

// carerOption allows management of the mutation configuration using functional options.
type carerOption func(*CarerMutation)

// newCarerMutation creates new mutation for the Carer entity.
func newCarerMutation(c config, op Op, opts ...carerOption) *CarerMutation {
	m := &CarerMutation{
		config:        c,
		op:            op,
		typ:           TypeCarer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCarerID sets the ID field of the mutation.
func withCarerID(id uuid.UUID) carerOption {
	return func(m *CarerMutation) {
		var (
			err   error
			once  sync.Once
			value *Carer
		)
		m.oldValue = func(ctx context.Context) (*Carer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Carer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCarer sets the old Carer of the mutation.
func withCarer(node *Carer) carerOption {
	return func(m *CarerMutation) {
		m.oldValue = func(context.Context) (*Carer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CarerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CarerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Carer entities.
func (m *CarerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CarerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CarerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Carer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CarerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CarerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CarerMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *CarerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CarerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CarerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[carer.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CarerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[carer.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CarerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, carer.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *CarerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CarerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CarerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[carer.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CarerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[carer.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CarerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, carer.FieldPhone)
}

// SetMinAge sets the "min_age" field.
func (m *CarerMutation) SetMinAge(i int) {
	m.min_age = &i
	m.addmin_age = nil
}

// MinAge returns the value of the "min_age" field in the mutation.
func (m *CarerMutation) MinAge() (r int, exists bool) {
	v := m.min_age
	if v == nil {
		return
	}
	return *v, true
}

// OldMinAge returns the old "min_age" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldMinAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinAge: %w", err)
	}
	return oldValue.MinAge, nil
}

// AddMinAge adds i to the "min_age" field.
func (m *CarerMutation) AddMinAge(i int) {
	if m.addmin_age != nil {
		*m.addmin_age += i
	} else {
		m.addmin_age = &i
	}
}

// AddedMinAge returns the value that was added to the "min_age" field in this mutation.
func (m *CarerMutation) AddedMinAge() (r int, exists bool) {
	v := m.addmin_age
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinAge resets all changes to the "min_age" field.
func (m *CarerMutation) ResetMinAge() {
	m.min_age = nil
	m.addmin_age = nil
}

// SetMaxAge sets the "max_age" field.
func (m *CarerMutation) SetMaxAge(i int) {
	m.max_age = &i
	m.addmax_age = nil
}

// MaxAge returns the value of the "max_age" field in the mutation.
func (m *CarerMutation) MaxAge() (r int, exists bool) {
	v := m.max_age
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAge returns the old "max_age" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldMaxAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAge: %w", err)
	}
	return oldValue.MaxAge, nil
}

// AddMaxAge adds i to the "max_age" field.
func (m *CarerMutation) AddMaxAge(i int) {
	if m.addmax_age != nil {
		*m.addmax_age += i
	} else {
		m.addmax_age = &i
	}
}

// AddedMaxAge returns the value that was added to the "max_age" field in this mutation.
func (m *CarerMutation) AddedMaxAge() (r int, exists bool) {
	v := m.addmax_age
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAge resets all changes to the "max_age" field.
func (m *CarerMutation) ResetMaxAge() {
	m.max_age = nil
	m.addmax_age = nil
}

// SetAcceptsSiblings sets the "accepts_siblings" field.
func (m *CarerMutation) SetAcceptsSiblings(b bool) {
	m.accepts_siblings = &b
}

// AcceptsSiblings returns the value of the "accepts_siblings" field in the mutation.
func (m *CarerMutation) AcceptsSiblings() (r bool, exists bool) {
	v := m.accepts_siblings
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptsSiblings returns the old "accepts_siblings" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldAcceptsSiblings(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptsSiblings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptsSiblings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptsSiblings: %w", err)
	}
	return oldValue.AcceptsSiblings, nil
}

// ResetAcceptsSiblings resets all changes to the "accepts_siblings" field.
func (m *CarerMutation) ResetAcceptsSiblings() {
	m.accepts_siblings = nil
}

// SetAllowsPets sets the "allows_pets" field.
func (m *CarerMutation) SetAllowsPets(b bool) {
	m.allows_pets = &b
}

// AllowsPets returns the value of the "allows_pets" field in the mutation.
func (m *CarerMutation) AllowsPets() (r bool, exists bool) {
	v := m.allows_pets
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowsPets returns the old "allows_pets" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldAllowsPets(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowsPets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowsPets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowsPets: %w", err)
	}
	return oldValue.AllowsPets, nil
}

// ResetAllowsPets resets all changes to the "allows_pets" field.
func (m *CarerMutation) ResetAllowsPets() {
	m.allows_pets = nil
}

// SetBehaviouralExperience sets the "behavioural_experience" field.
func (m *CarerMutation) SetBehaviouralExperience(b bool) {
	m.behavioural_experience = &b
}

// BehaviouralExperience returns the value of the "behavioural_experience" field in the mutation.
func (m *CarerMutation) BehaviouralExperience() (r bool, exists bool) {
	v := m.behavioural_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviouralExperience returns the old "behavioural_experience" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldBehaviouralExperience(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviouralExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviouralExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviouralExperience: %w", err)
	}
	return oldValue.BehaviouralExperience, nil
}

// ResetBehaviouralExperience resets all changes to the "behavioural_experience" field.
func (m *CarerMutation) ResetBehaviouralExperience() {
	m.behavioural_experience = nil
}

// SetSenExperience sets the "sen_experience" field.
func (m *CarerMutation) SetSenExperience(b bool) {
	m.sen_experience = &b
}

// SenExperience returns the value of the "sen_experience" field in the mutation.
func (m *CarerMutation) SenExperience() (r bool, exists bool) {
	v := m.sen_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldSenExperience returns the old "sen_experience" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldSenExperience(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenExperience: %w", err)
	}
	return oldValue.SenExperience, nil
}

// ResetSenExperience resets all changes to the "sen_experience" field.
func (m *CarerMutation) ResetSenExperience() {
	m.sen_experience = nil
}

// SetPreferredLocation sets the "preferred_location" field.
func (m *CarerMutation) SetPreferredLocation(s string) {
	m.preferred_location = &s
}

// PreferredLocation returns the value of the "preferred_location" field in the mutation.
func (m *CarerMutation) PreferredLocation() (r string, exists bool) {
	v := m.preferred_location
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLocation returns the old "preferred_location" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldPreferredLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLocation: %w", err)
	}
	return oldValue.PreferredLocation, nil
}

// ClearPreferredLocation clears the value of the "preferred_location" field.
func (m *CarerMutation) ClearPreferredLocation() {
	m.preferred_location = nil
	m.clearedFields[carer.FieldPreferredLocation] = struct{}{}
}

// PreferredLocationCleared returns if the "preferred_location" field was cleared in this mutation.
func (m *CarerMutation) PreferredLocationCleared() bool {
	_, ok := m.clearedFields[carer.FieldPreferredLocation]
	return ok
}

// ResetPreferredLocation resets all changes to the "preferred_location" field.
func (m *CarerMutation) ResetPreferredLocation() {
	m.preferred_location = nil
	delete(m.clearedFields, carer.FieldPreferredLocation)
}

// SetExcludedLocations sets the "excluded_locations" field.
func (m *CarerMutation) SetExcludedLocations(s []string) {
	m.excluded_locations = &s
	m.appendexcluded_locations = nil
}

// ExcludedLocations returns the value of the "excluded_locations" field in the mutation.
func (m *CarerMutation) ExcludedLocations() (r []string, exists bool) {
	v := m.excluded_locations
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludedLocations returns the old "excluded_locations" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldExcludedLocations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludedLocations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludedLocations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludedLocations: %w", err)
	}
	return oldValue.ExcludedLocations, nil
}

// AppendExcludedLocations adds s to the "excluded_locations" field.
func (m *CarerMutation) AppendExcludedLocations(s []string) {
	m.appendexcluded_locations = append(m.appendexcluded_locations, s...)
}

// AppendedExcludedLocations returns the list of values that were appended to the "excluded_locations" field in this mutation.
func (m *CarerMutation) AppendedExcludedLocations() ([]string, bool) {
	if len(m.appendexcluded_locations) == 0 {
		return nil, false
	}
	return m.appendexcluded_locations, true
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (m *CarerMutation) ClearExcludedLocations() {
	m.excluded_locations = nil
	m.appendexcluded_locations = nil
	m.clearedFields[carer.FieldExcludedLocations] = struct{}{}
}

// ExcludedLocationsCleared returns if the "excluded_locations" field was cleared in this mutation.
func (m *CarerMutation) ExcludedLocationsCleared() bool {
	_, ok := m.clearedFields[carer.FieldExcludedLocations]
	return ok
}

// ResetExcludedLocations resets all changes to the "excluded_locations" field.
func (m *CarerMutation) ResetExcludedLocations() {
	m.excluded_locations = nil
	m.appendexcluded_locations = nil
	delete(m.clearedFields, carer.FieldExcludedLocations)
}

// SetGenderPreference sets the "gender_preference" field.
func (m *CarerMutation) SetGenderPreference(s string) {
	m.gender_preference = &s
}

// GenderPreference returns the value of the "gender_preference" field in the mutation.
func (m *CarerMutation) GenderPreference() (r string, exists bool) {
	v := m.gender_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldGenderPreference returns the old "gender_preference" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldGenderPreference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenderPreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenderPreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenderPreference: %w", err)
	}
	return oldValue.GenderPreference, nil
}

// ClearGenderPreference clears the value of the "gender_preference" field.
func (m *CarerMutation) ClearGenderPreference() {
	m.gender_preference = nil
	m.clearedFields[carer.FieldGenderPreference] = struct{}{}
}

// GenderPreferenceCleared returns if the "gender_preference" field was cleared in this mutation.
func (m *CarerMutation) GenderPreferenceCleared() bool {
	_, ok := m.clearedFields[carer.FieldGenderPreference]
	return ok
}

// ResetGenderPreference resets all changes to the "gender_preference" field.
func (m *CarerMutation) ResetGenderPreference() {
	m.gender_preference = nil
	delete(m.clearedFields, carer.FieldGenderPreference)
}

// SetCapacity sets the "capacity" field.
func (m *CarerMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *CarerMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *CarerMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *CarerMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *CarerMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetStatus sets the "status" field.
func (m *CarerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CarerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CarerMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *CarerMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CarerMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CarerMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[carer.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CarerMutation) NotesCleared() bool {
	_, ok := m.clearedFields[carer.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CarerMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, carer.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *CarerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CarerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CarerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CarerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CarerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CarerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CarerMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CarerMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CarerMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[carer.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CarerMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[carer.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CarerMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, carer.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CarerMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CarerMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Carer entity.
// If the Carer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CarerMutation) OldUpdatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CarerMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[carer.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CarerMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[carer.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CarerMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, carer.FieldUpdatedBy)
}

// Where appends a list predicates to the CarerMutation builder.
func (m *CarerMutation) Where(ps ...predicate.Carer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CarerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CarerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Carer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CarerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CarerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Carer).
func (m *CarerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CarerMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.name != nil {
		fields = append(fields, carer.FieldName)
	}
	if m.email != nil {
		fields = append(fields, carer.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, carer.FieldPhone)
	}
	if m.min_age != nil {
		fields = append(fields, carer.FieldMinAge)
	}
	if m.max_age != nil {
		fields = append(fields, carer.FieldMaxAge)
	}
	if m.accepts_siblings != nil {
		fields = append(fields, carer.FieldAcceptsSiblings)
	}
	if m.allows_pets != nil {
		fields = append(fields, carer.FieldAllowsPets)
	}
	if m.behavioural_experience != nil {
		fields = append(fields, carer.FieldBehaviouralExperience)
	}
	if m.sen_experience != nil {
		fields = append(fields, carer.FieldSenExperience)
	}
	if m.preferred_location != nil {
		fields = append(fields, carer.FieldPreferredLocation)
	}
	if m.excluded_locations != nil {
		fields = append(fields, carer.FieldExcludedLocations)
	}
	if m.gender_preference != nil {
		fields = append(fields, carer.FieldGenderPreference)
	}
	if m.capacity != nil {
		fields = append(fields, carer.FieldCapacity)
	}
	if m.status != nil {
		fields = append(fields, carer.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, carer.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, carer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, carer.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, carer.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, carer.FieldUpdatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CarerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case carer.FieldName:
		return m.Name()
	case carer.FieldEmail:
		return m.Email()
	case carer.FieldPhone:
		return m.Phone()
	case carer.FieldMinAge:
		return m.MinAge()
	case carer.FieldMaxAge:
		return m.MaxAge()
	case carer.FieldAcceptsSiblings:
		return m.AcceptsSiblings()
	case carer.FieldAllowsPets:
		return m.AllowsPets()
	case carer.FieldBehaviouralExperience:
		return m.BehaviouralExperience()
	case carer.FieldSenExperience:
		return m.SenExperience()
	case carer.FieldPreferredLocation:
		return m.PreferredLocation()
	case carer.FieldExcludedLocations:
		return m.ExcludedLocations()
	case carer.FieldGenderPreference:
		return m.GenderPreference()
	case carer.FieldCapacity:
		return m.Capacity()
	case carer.FieldStatus:
		return m.Status()
	case carer.FieldNotes:
		return m.Notes()
	case carer.FieldCreatedAt:
		return m.CreatedAt()
	case carer.FieldUpdatedAt:
		return m.UpdatedAt()
	case carer.FieldCreatedBy:
		return m.CreatedBy()
	case carer.FieldUpdatedBy:
		return m.UpdatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CarerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case carer.FieldName:
		return m.OldName(ctx)
	case carer.FieldEmail:
		return m.OldEmail(ctx)
	case carer.FieldPhone:
		return m.OldPhone(ctx)
	case carer.FieldMinAge:
		return m.OldMinAge(ctx)
	case carer.FieldMaxAge:
		return m.OldMaxAge(ctx)
	case carer.FieldAcceptsSiblings:
		return m.OldAcceptsSiblings(ctx)
	case carer.FieldAllowsPets:
		return m.OldAllowsPets(ctx)
	case carer.FieldBehaviouralExperience:
		return m.OldBehaviouralExperience(ctx)
	case carer.FieldSenExperience:
		return m.OldSenExperience(ctx)
	case carer.FieldPreferredLocation:
		return m.OldPreferredLocation(ctx)
	case carer.FieldExcludedLocations:
		return m.OldExcludedLocations(ctx)
	case carer.FieldGenderPreference:
		return m.OldGenderPreference(ctx)
	case carer.FieldCapacity:
		return m.OldCapacity(ctx)
	case carer.FieldStatus:
		return m.OldStatus(ctx)
	case carer.FieldNotes:
		return m.OldNotes(ctx)
	case carer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case carer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case carer.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case carer.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Carer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case carer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case carer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case carer.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case carer.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinAge(v)
		return nil
	case carer.FieldMaxAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAge(v)
		return nil
	case carer.FieldAcceptsSiblings:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptsSiblings(v)
		return nil
	case carer.FieldAllowsPets:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowsPets(v)
		return nil
	case carer.FieldBehaviouralExperience:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviouralExperience(v)
		return nil
	case carer.FieldSenExperience:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenExperience(v)
		return nil
	case carer.FieldPreferredLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLocation(v)
		return nil
	case carer.FieldExcludedLocations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludedLocations(v)
		return nil
	case carer.FieldGenderPreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenderPreference(v)
		return nil
	case carer.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case carer.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case carer.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case carer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case carer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case carer.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case carer.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Carer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CarerMutation) AddedFields() []string {
	var fields []string
	if m.addmin_age != nil {
		fields = append(fields, carer.FieldMinAge)
	}
	if m.addmax_age != nil {
		fields = append(fields, carer.FieldMaxAge)
	}
	if m.addcapacity != nil {
		fields = append(fields, carer.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CarerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case carer.FieldMinAge:
		return m.AddedMinAge()
	case carer.FieldMaxAge:
		return m.AddedMaxAge()
	case carer.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CarerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case carer.FieldMinAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinAge(v)
		return nil
	case carer.FieldMaxAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAge(v)
		return nil
	case carer.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Carer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CarerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(carer.FieldEmail) {
		fields = append(fields, carer.FieldEmail)
	}
	if m.FieldCleared(carer.FieldPhone) {
		fields = append(fields, carer.FieldPhone)
	}
	if m.FieldCleared(carer.FieldPreferredLocation) {
		fields = append(fields, carer.FieldPreferredLocation)
	}
	if m.FieldCleared(carer.FieldExcludedLocations) {
		fields = append(fields, carer.FieldExcludedLocations)
	}
	if m.FieldCleared(carer.FieldGenderPreference) {
		fields = append(fields, carer.FieldGenderPreference)
	}
	if m.FieldCleared(carer.FieldNotes) {
		fields = append(fields, carer.FieldNotes)
	}
	if m.FieldCleared(carer.FieldCreatedBy) {
		fields = append(fields, carer.FieldCreatedBy)
	}
	if m.FieldCleared(carer.FieldUpdatedBy) {
		fields = append(fields, carer.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CarerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CarerMutation) ClearField(name string) error {
	switch name {
	case carer.FieldEmail:
		m.ClearEmail()
		return nil
	case carer.FieldPhone:
		m.ClearPhone()
		return nil
	case carer.FieldPreferredLocation:
		m.ClearPreferredLocation()
		return nil
	case carer.FieldExcludedLocations:
		m.ClearExcludedLocations()
		return nil
	case carer.FieldGenderPreference:
		m.ClearGenderPreference()
		return nil
	case carer.FieldNotes:
		m.ClearNotes()
		return nil
	case carer.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case carer.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown Carer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CarerMutation) ResetField(name string) error {
	switch name {
	case carer.FieldName:
		m.ResetName()
		return nil
	case carer.FieldEmail:
		m.ResetEmail()
		return nil
	case carer.FieldPhone:
		m.ResetPhone()
		return nil
	case carer.FieldMinAge:
		m.ResetMinAge()
		return nil
	case carer.FieldMaxAge:
		m.ResetMaxAge()
		return nil
	case carer.FieldAcceptsSiblings:
		m.ResetAcceptsSiblings()
		return nil
	case carer.FieldAllowsPets:
		m.ResetAllowsPets()
		return nil
	case carer.FieldBehaviouralExperience:
		m.ResetBehaviouralExperience()
		return nil
	case carer.FieldSenExperience:
		m.ResetSenExperience()
		return nil
	case carer.FieldPreferredLocation:
		m.ResetPreferredLocation()
		return nil
	case carer.FieldExcludedLocations:
		m.ResetExcludedLocations()
		return nil
	case carer.FieldGenderPreference:
		m.ResetGenderPreference()
		return nil
	case carer.FieldCapacity:
		m.ResetCapacity()
		return nil
	case carer.FieldStatus:
		m.ResetStatus()
		return nil
	case carer.FieldNotes:
		m.ResetNotes()
		return nil
	case carer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case carer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case carer.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case carer.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown Carer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CarerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CarerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CarerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CarerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CarerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CarerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CarerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Carer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CarerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Carer edge %s", name)
}

// ReferralMutation represents an operation that mutates the Referral nodes in the graph.
type ReferralMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	child_name                *string
	child_age                 *int
	addchild_age              *int
	gender                    *string
	ethnicity                 *string
	cultural_background       *string
	disabilities              *[]string
	appenddisabilities        []string
	sen                       *bool
	behavioural_needs         *bool
	behavioural_details       *string
	placement_type            *string
	sibling_group             *bool
	sibling_count             *int
	addsibling_count          *int
	solo_placement_required   *bool
	pets_in_home_acceptable   *bool
	preferred_locations       *[]string
	appendpreferred_locations []string
	excluded_locations        *[]string
	appendexcluded_locations  []string
	carer_gender_preference   *string
	support_needs             *[]string
	appendsupport_needs       []string
	medical_needs             *[]string
	appendmedical_needs       []string
	educational_needs         *[]string
	appendeducational_needs   []string
	urgency                   *string
	status                    *string
	source                    *string
	attachment_path           *string
	raw_text                  *string
	extracted_data            *json.RawMessage
	appendextracted_data      json.RawMessage
	matched_carers            *json.RawMessage
	appendmatched_carers      json.RawMessage
	assigned_carer_id         *uuid.UUID
	assigned_at               *time.Time
	assigned_by               *string
	processed_at              *time.Time
	status_history            *json.RawMessage
	appendstatus_history      json.RawMessage
	received_at               *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Referral, error)
	predicates                []predicate.Referral
}

var _ ent.Mutation = (*ReferralMutation)(nil)

// referralOption allows management of the mutation configuration using functional options.
type referralOption func(*ReferralMutation)

// newReferralMutation creates new mutation for the Referral entity.
func newReferralMutation(c config, op Op, opts ...referralOption) *ReferralMutation {
	m := &ReferralMutation{
		config:        c,
		op:            op,
		typ:           TypeReferral,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReferralID sets the ID field of the mutation.
func withReferralID(id uuid.UUID) referralOption {
	return func(m *ReferralMutation) {
		var (
			err   error
			once  sync.Once
			value *Referral
		)
		m.oldValue = func(ctx context.Context) (*Referral, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Referral.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReferral sets the old Referral of the mutation.
func withReferral(node *Referral) referralOption {
	return func(m *ReferralMutation) {
		m.oldValue = func(context.Context) (*Referral, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReferralMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReferralMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Referral entities.
func (m *ReferralMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReferralMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReferralMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Referral.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChildName sets the "child_name" field.
func (m *ReferralMutation) SetChildName(s string) {
	m.child_name = &s
}

// ChildName returns the value of the "child_name" field in the mutation.
func (m *ReferralMutation) ChildName() (r string, exists bool) {
	v := m.child_name
	if v == nil {
		return
	}
	return *v, true
}

// OldChildName returns the old "child_name" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldChildName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildName: %w", err)
	}
	return oldValue.ChildName, nil
}

// ClearChildName clears the value of the "child_name" field.
func (m *ReferralMutation) ClearChildName() {
	m.child_name = nil
	m.clearedFields[referral.FieldChildName] = struct{}{}
}

// ChildNameCleared returns if the "child_name" field was cleared in this mutation.
func (m *ReferralMutation) ChildNameCleared() bool {
	_, ok := m.clearedFields[referral.FieldChildName]
	return ok
}

// ResetChildName resets all changes to the "child_name" field.
func (m *ReferralMutation) ResetChildName() {
	m.child_name = nil
	delete(m.clearedFields, referral.FieldChildName)
}

// SetChildAge sets the "child_age" field.
func (m *ReferralMutation) SetChildAge(i int) {
	m.child_age = &i
	m.addchild_age = nil
}

// ChildAge returns the value of the "child_age" field in the mutation.
func (m *ReferralMutation) ChildAge() (r int, exists bool) {
	v := m.child_age
	if v == nil {
		return
	}
	return *v, true
}

// OldChildAge returns the old "child_age" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldChildAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildAge: %w", err)
	}
	return oldValue.ChildAge, nil
}

// AddChildAge adds i to the "child_age" field.
func (m *ReferralMutation) AddChildAge(i int) {
	if m.addchild_age != nil {
		*m.addchild_age += i
	} else {
		m.addchild_age = &i
	}
}

// AddedChildAge returns the value that was added to the "child_age" field in this mutation.
func (m *ReferralMutation) AddedChildAge() (r int, exists bool) {
	v := m.addchild_age
	if v == nil {
		return
	}
	return *v, true
}

// ResetChildAge resets all changes to the "child_age" field.
func (m *ReferralMutation) ResetChildAge() {
	m.child_age = nil
	m.addchild_age = nil
}

// SetGender sets the "gender" field.
func (m *ReferralMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *ReferralMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *ReferralMutation) ResetGender() {
	m.gender = nil
}

// SetEthnicity sets the "ethnicity" field.
func (m *ReferralMutation) SetEthnicity(s string) {
	m.ethnicity = &s
}

// Ethnicity returns the value of the "ethnicity" field in the mutation.
func (m *ReferralMutation) Ethnicity() (r string, exists bool) {
	v := m.ethnicity
	if v == nil {
		return
	}
	return *v, true
}

// OldEthnicity returns the old "ethnicity" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldEthnicity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEthnicity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEthnicity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEthnicity: %w", err)
	}
	return oldValue.Ethnicity, nil
}

// ResetEthnicity resets all changes to the "ethnicity" field.
func (m *ReferralMutation) ResetEthnicity() {
	m.ethnicity = nil
}

// SetCulturalBackground sets the "cultural_background" field.
func (m *ReferralMutation) SetCulturalBackground(s string) {
	m.cultural_background = &s
}

// CulturalBackground returns the value of the "cultural_background" field in the mutation.
func (m *ReferralMutation) CulturalBackground() (r string, exists bool) {
	v := m.cultural_background
	if v == nil {
		return
	}
	return *v, true
}

// OldCulturalBackground returns the old "cultural_background" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldCulturalBackground(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCulturalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCulturalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCulturalBackground: %w", err)
	}
	return oldValue.CulturalBackground, nil
}

// ResetCulturalBackground resets all changes to the "cultural_background" field.
func (m *ReferralMutation) ResetCulturalBackground() {
	m.cultural_background = nil
}

// SetDisabilities sets the "disabilities" field.
func (m *ReferralMutation) SetDisabilities(s []string) {
	m.disabilities = &s
	m.appenddisabilities = nil
}

// Disabilities returns the value of the "disabilities" field in the mutation.
func (m *ReferralMutation) Disabilities() (r []string, exists bool) {
	v := m.disabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabilities returns the old "disabilities" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldDisabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabilities: %w", err)
	}
	return oldValue.Disabilities, nil
}

// AppendDisabilities adds s to the "disabilities" field.
func (m *ReferralMutation) AppendDisabilities(s []string) {
	m.appenddisabilities = append(m.appenddisabilities, s...)
}

// AppendedDisabilities returns the list of values that were appended to the "disabilities" field in this mutation.
func (m *ReferralMutation) AppendedDisabilities() ([]string, bool) {
	if len(m.appenddisabilities) == 0 {
		return nil, false
	}
	return m.appenddisabilities, true
}

// ClearDisabilities clears the value of the "disabilities" field.
func (m *ReferralMutation) ClearDisabilities() {
	m.disabilities = nil
	m.appenddisabilities = nil
	m.clearedFields[referral.FieldDisabilities] = struct{}{}
}

// DisabilitiesCleared returns if the "disabilities" field was cleared in this mutation.
func (m *ReferralMutation) DisabilitiesCleared() bool {
	_, ok := m.clearedFields[referral.FieldDisabilities]
	return ok
}

// ResetDisabilities resets all changes to the "disabilities" field.
func (m *ReferralMutation) ResetDisabilities() {
	m.disabilities = nil
	m.appenddisabilities = nil
	delete(m.clearedFields, referral.FieldDisabilities)
}

// SetSen sets the "sen" field.
func (m *ReferralMutation) SetSen(b bool) {
	m.sen = &b
}

// Sen returns the value of the "sen" field in the mutation.
func (m *ReferralMutation) Sen() (r bool, exists bool) {
	v := m.sen
	if v == nil {
		return
	}
	return *v, true
}

// OldSen returns the old "sen" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSen(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSen: %w", err)
	}
	return oldValue.Sen, nil
}

// ClearSen clears the value of the "sen" field.
func (m *ReferralMutation) ClearSen() {
	m.sen = nil
	m.clearedFields[referral.FieldSen] = struct{}{}
}

// SenCleared returns if the "sen" field was cleared in this mutation.
func (m *ReferralMutation) SenCleared() bool {
	_, ok := m.clearedFields[referral.FieldSen]
	return ok
}

// ResetSen resets all changes to the "sen" field.
func (m *ReferralMutation) ResetSen() {
	m.sen = nil
	delete(m.clearedFields, referral.FieldSen)
}

// SetBehaviouralNeeds sets the "behavioural_needs" field.
func (m *ReferralMutation) SetBehaviouralNeeds(b bool) {
	m.behavioural_needs = &b
}

// BehaviouralNeeds returns the value of the "behavioural_needs" field in the mutation.
func (m *ReferralMutation) BehaviouralNeeds() (r bool, exists bool) {
	v := m.behavioural_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviouralNeeds returns the old "behavioural_needs" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldBehaviouralNeeds(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviouralNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviouralNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviouralNeeds: %w", err)
	}
	return oldValue.BehaviouralNeeds, nil
}

// ClearBehaviouralNeeds clears the value of the "behavioural_needs" field.
func (m *ReferralMutation) ClearBehaviouralNeeds() {
	m.behavioural_needs = nil
	m.clearedFields[referral.FieldBehaviouralNeeds] = struct{}{}
}

// BehaviouralNeedsCleared returns if the "behavioural_needs" field was cleared in this mutation.
func (m *ReferralMutation) BehaviouralNeedsCleared() bool {
	_, ok := m.clearedFields[referral.FieldBehaviouralNeeds]
	return ok
}

// ResetBehaviouralNeeds resets all changes to the "behavioural_needs" field.
func (m *ReferralMutation) ResetBehaviouralNeeds() {
	m.behavioural_needs = nil
	delete(m.clearedFields, referral.FieldBehaviouralNeeds)
}

// SetBehaviouralDetails sets the "behavioural_details" field.
func (m *ReferralMutation) SetBehaviouralDetails(s string) {
	m.behavioural_details = &s
}

// BehaviouralDetails returns the value of the "behavioural_details" field in the mutation.
func (m *ReferralMutation) BehaviouralDetails() (r string, exists bool) {
	v := m.behavioural_details
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviouralDetails returns the old "behavioural_details" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldBehaviouralDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviouralDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviouralDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviouralDetails: %w", err)
	}
	return oldValue.BehaviouralDetails, nil
}

// ClearBehaviouralDetails clears the value of the "behavioural_details" field.
func (m *ReferralMutation) ClearBehaviouralDetails() {
	m.behavioural_details = nil
	m.clearedFields[referral.FieldBehaviouralDetails] = struct{}{}
}

// BehaviouralDetailsCleared returns if the "behavioural_details" field was cleared in this mutation.
func (m *ReferralMutation) BehaviouralDetailsCleared() bool {
	_, ok := m.clearedFields[referral.FieldBehaviouralDetails]
	return ok
}

// ResetBehaviouralDetails resets all changes to the "behavioural_details" field.
func (m *ReferralMutation) ResetBehaviouralDetails() {
	m.behavioural_details = nil
	delete(m.clearedFields, referral.FieldBehaviouralDetails)
}

// SetPlacementType sets the "placement_type" field.
func (m *ReferralMutation) SetPlacementType(s string) {
	m.placement_type = &s
}

// PlacementType returns the value of the "placement_type" field in the mutation.
func (m *ReferralMutation) PlacementType() (r string, exists bool) {
	v := m.placement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacementType returns the old "placement_type" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldPlacementType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacementType: %w", err)
	}
	return oldValue.PlacementType, nil
}

// ResetPlacementType resets all changes to the "placement_type" field.
func (m *ReferralMutation) ResetPlacementType() {
	m.placement_type = nil
}

// SetSiblingGroup sets the "sibling_group" field.
func (m *ReferralMutation) SetSiblingGroup(b bool) {
	m.sibling_group = &b
}

// SiblingGroup returns the value of the "sibling_group" field in the mutation.
func (m *ReferralMutation) SiblingGroup() (r bool, exists bool) {
	v := m.sibling_group
	if v == nil {
		return
	}
	return *v, true
}

// OldSiblingGroup returns the old "sibling_group" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSiblingGroup(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiblingGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiblingGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiblingGroup: %w", err)
	}
	return oldValue.SiblingGroup, nil
}

// ClearSiblingGroup clears the value of the "sibling_group" field.
func (m *ReferralMutation) ClearSiblingGroup() {
	m.sibling_group = nil
	m.clearedFields[referral.FieldSiblingGroup] = struct{}{}
}

// SiblingGroupCleared returns if the "sibling_group" field was cleared in this mutation.
func (m *ReferralMutation) SiblingGroupCleared() bool {
	_, ok := m.clearedFields[referral.FieldSiblingGroup]
	return ok
}

// ResetSiblingGroup resets all changes to the "sibling_group" field.
func (m *ReferralMutation) ResetSiblingGroup() {
	m.sibling_group = nil
	delete(m.clearedFields, referral.FieldSiblingGroup)
}

// SetSiblingCount sets the "sibling_count" field.
func (m *ReferralMutation) SetSiblingCount(i int) {
	m.sibling_count = &i
	m.addsibling_count = nil
}

// SiblingCount returns the value of the "sibling_count" field in the mutation.
func (m *ReferralMutation) SiblingCount() (r int, exists bool) {
	v := m.sibling_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSiblingCount returns the old "sibling_count" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSiblingCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiblingCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiblingCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiblingCount: %w", err)
	}
	return oldValue.SiblingCount, nil
}

// AddSiblingCount adds i to the "sibling_count" field.
func (m *ReferralMutation) AddSiblingCount(i int) {
	if m.addsibling_count != nil {
		*m.addsibling_count += i
	} else {
		m.addsibling_count = &i
	}
}

// AddedSiblingCount returns the value that was added to the "sibling_count" field in this mutation.
func (m *ReferralMutation) AddedSiblingCount() (r int, exists bool) {
	v := m.addsibling_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearSiblingCount clears the value of the "sibling_count" field.
func (m *ReferralMutation) ClearSiblingCount() {
	m.sibling_count = nil
	m.addsibling_count = nil
	m.clearedFields[referral.FieldSiblingCount] = struct{}{}
}

// SiblingCountCleared returns if the "sibling_count" field was cleared in this mutation.
func (m *ReferralMutation) SiblingCountCleared() bool {
	_, ok := m.clearedFields[referral.FieldSiblingCount]
	return ok
}

// ResetSiblingCount resets all changes to the "sibling_count" field.
func (m *ReferralMutation) ResetSiblingCount() {
	m.sibling_count = nil
	m.addsibling_count = nil
	delete(m.clearedFields, referral.FieldSiblingCount)
}

// SetSoloPlacementRequired sets the "solo_placement_required" field.
func (m *ReferralMutation) SetSoloPlacementRequired(b bool) {
	m.solo_placement_required = &b
}

// SoloPlacementRequired returns the value of the "solo_placement_required" field in the mutation.
func (m *ReferralMutation) SoloPlacementRequired() (r bool, exists bool) {
	v := m.solo_placement_required
	if v == nil {
		return
	}
	return *v, true
}

// OldSoloPlacementRequired returns the old "solo_placement_required" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSoloPlacementRequired(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoloPlacementRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoloPlacementRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoloPlacementRequired: %w", err)
	}
	return oldValue.SoloPlacementRequired, nil
}

// ClearSoloPlacementRequired clears the value of the "solo_placement_required" field.
func (m *ReferralMutation) ClearSoloPlacementRequired() {
	m.solo_placement_required = nil
	m.clearedFields[referral.FieldSoloPlacementRequired] = struct{}{}
}

// SoloPlacementRequiredCleared returns if the "solo_placement_required" field was cleared in this mutation.
func (m *ReferralMutation) SoloPlacementRequiredCleared() bool {
	_, ok := m.clearedFields[referral.FieldSoloPlacementRequired]
	return ok
}

// ResetSoloPlacementRequired resets all changes to the "solo_placement_required" field.
func (m *ReferralMutation) ResetSoloPlacementRequired() {
	m.solo_placement_required = nil
	delete(m.clearedFields, referral.FieldSoloPlacementRequired)
}

// SetPetsInHomeAcceptable sets the "pets_in_home_acceptable" field.
func (m *ReferralMutation) SetPetsInHomeAcceptable(b bool) {
	m.pets_in_home_acceptable = &b
}

// PetsInHomeAcceptable returns the value of the "pets_in_home_acceptable" field in the mutation.
func (m *ReferralMutation) PetsInHomeAcceptable() (r bool, exists bool) {
	v := m.pets_in_home_acceptable
	if v == nil {
		return
	}
	return *v, true
}

// OldPetsInHomeAcceptable returns the old "pets_in_home_acceptable" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldPetsInHomeAcceptable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPetsInHomeAcceptable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPetsInHomeAcceptable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPetsInHomeAcceptable: %w", err)
	}
	return oldValue.PetsInHomeAcceptable, nil
}

// ClearPetsInHomeAcceptable clears the value of the "pets_in_home_acceptable" field.
func (m *ReferralMutation) ClearPetsInHomeAcceptable() {
	m.pets_in_home_acceptable = nil
	m.clearedFields[referral.FieldPetsInHomeAcceptable] = struct{}{}
}

// PetsInHomeAcceptableCleared returns if the "pets_in_home_acceptable" field was cleared in this mutation.
func (m *ReferralMutation) PetsInHomeAcceptableCleared() bool {
	_, ok := m.clearedFields[referral.FieldPetsInHomeAcceptable]
	return ok
}

// ResetPetsInHomeAcceptable resets all changes to the "pets_in_home_acceptable" field.
func (m *ReferralMutation) ResetPetsInHomeAcceptable() {
	m.pets_in_home_acceptable = nil
	delete(m.clearedFields, referral.FieldPetsInHomeAcceptable)
}

// SetPreferredLocations sets the "preferred_locations" field.
func (m *ReferralMutation) SetPreferredLocations(s []string) {
	m.preferred_locations = &s
	m.appendpreferred_locations = nil
}

// PreferredLocations returns the value of the "preferred_locations" field in the mutation.
func (m *ReferralMutation) PreferredLocations() (r []string, exists bool) {
	v := m.preferred_locations
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLocations returns the old "preferred_locations" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldPreferredLocations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLocations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLocations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLocations: %w", err)
	}
	return oldValue.PreferredLocations, nil
}

// AppendPreferredLocations adds s to the "preferred_locations" field.
func (m *ReferralMutation) AppendPreferredLocations(s []string) {
	m.appendpreferred_locations = append(m.appendpreferred_locations, s...)
}

// AppendedPreferredLocations returns the list of values that were appended to the "preferred_locations" field in this mutation.
func (m *ReferralMutation) AppendedPreferredLocations() ([]string, bool) {
	if len(m.appendpreferred_locations) == 0 {
		return nil, false
	}
	return m.appendpreferred_locations, true
}

// ClearPreferredLocations clears the value of the "preferred_locations" field.
func (m *ReferralMutation) ClearPreferredLocations() {
	m.preferred_locations = nil
	m.appendpreferred_locations = nil
	m.clearedFields[referral.FieldPreferredLocations] = struct{}{}
}

// PreferredLocationsCleared returns if the "preferred_locations" field was cleared in this mutation.
func (m *ReferralMutation) PreferredLocationsCleared() bool {
	_, ok := m.clearedFields[referral.FieldPreferredLocations]
	return ok
}

// ResetPreferredLocations resets all changes to the "preferred_locations" field.
func (m *ReferralMutation) ResetPreferredLocations() {
	m.preferred_locations = nil
	m.appendpreferred_locations = nil
	delete(m.clearedFields, referral.FieldPreferredLocations)
}

// SetExcludedLocations sets the "excluded_locations" field.
func (m *ReferralMutation) SetExcludedLocations(s []string) {
	m.excluded_locations = &s
	m.appendexcluded_locations = nil
}

// ExcludedLocations returns the value of the "excluded_locations" field in the mutation.
func (m *ReferralMutation) ExcludedLocations() (r []string, exists bool) {
	v := m.excluded_locations
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludedLocations returns the old "excluded_locations" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldExcludedLocations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludedLocations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludedLocations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludedLocations: %w", err)
	}
	return oldValue.ExcludedLocations, nil
}

// AppendExcludedLocations adds s to the "excluded_locations" field.
func (m *ReferralMutation) AppendExcludedLocations(s []string) {
	m.appendexcluded_locations = append(m.appendexcluded_locations, s...)
}

// AppendedExcludedLocations returns the list of values that were appended to the "excluded_locations" field in this mutation.
func (m *ReferralMutation) AppendedExcludedLocations() ([]string, bool) {
	if len(m.appendexcluded_locations) == 0 {
		return nil, false
	}
	return m.appendexcluded_locations, true
}

// ClearExcludedLocations clears the value of the "excluded_locations" field.
func (m *ReferralMutation) ClearExcludedLocations() {
	m.excluded_locations = nil
	m.appendexcluded_locations = nil
	m.clearedFields[referral.FieldExcludedLocations] = struct{}{}
}

// ExcludedLocationsCleared returns if the "excluded_locations" field was cleared in this mutation.
func (m *ReferralMutation) ExcludedLocationsCleared() bool {
	_, ok := m.clearedFields[referral.FieldExcludedLocations]
	return ok
}

// ResetExcludedLocations resets all changes to the "excluded_locations" field.
func (m *ReferralMutation) ResetExcludedLocations() {
	m.excluded_locations = nil
	m.appendexcluded_locations = nil
	delete(m.clearedFields, referral.FieldExcludedLocations)
}

// SetCarerGenderPreference sets the "carer_gender_preference" field.
func (m *ReferralMutation) SetCarerGenderPreference(s string) {
	m.carer_gender_preference = &s
}

// CarerGenderPreference returns the value of the "carer_gender_preference" field in the mutation.
func (m *ReferralMutation) CarerGenderPreference() (r string, exists bool) {
	v := m.carer_gender_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldCarerGenderPreference returns the old "carer_gender_preference" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldCarerGenderPreference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarerGenderPreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarerGenderPreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarerGenderPreference: %w", err)
	}
	return oldValue.CarerGenderPreference, nil
}

// ClearCarerGenderPreference clears the value of the "carer_gender_preference" field.
func (m *ReferralMutation) ClearCarerGenderPreference() {
	m.carer_gender_preference = nil
	m.clearedFields[referral.FieldCarerGenderPreference] = struct{}{}
}

// CarerGenderPreferenceCleared returns if the "carer_gender_preference" field was cleared in this mutation.
func (m *ReferralMutation) CarerGenderPreferenceCleared() bool {
	_, ok := m.clearedFields[referral.FieldCarerGenderPreference]
	return ok
}

// ResetCarerGenderPreference resets all changes to the "carer_gender_preference" field.
func (m *ReferralMutation) ResetCarerGenderPreference() {
	m.carer_gender_preference = nil
	delete(m.clearedFields, referral.FieldCarerGenderPreference)
}

// SetSupportNeeds sets the "support_needs" field.
func (m *ReferralMutation) SetSupportNeeds(s []string) {
	m.support_needs = &s
	m.appendsupport_needs = nil
}

// SupportNeeds returns the value of the "support_needs" field in the mutation.
func (m *ReferralMutation) SupportNeeds() (r []string, exists bool) {
	v := m.support_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportNeeds returns the old "support_needs" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSupportNeeds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportNeeds: %w", err)
	}
	return oldValue.SupportNeeds, nil
}

// AppendSupportNeeds adds s to the "support_needs" field.
func (m *ReferralMutation) AppendSupportNeeds(s []string) {
	m.appendsupport_needs = append(m.appendsupport_needs, s...)
}

// AppendedSupportNeeds returns the list of values that were appended to the "support_needs" field in this mutation.
func (m *ReferralMutation) AppendedSupportNeeds() ([]string, bool) {
	if len(m.appendsupport_needs) == 0 {
		return nil, false
	}
	return m.appendsupport_needs, true
}

// ClearSupportNeeds clears the value of the "support_needs" field.
func (m *ReferralMutation) ClearSupportNeeds() {
	m.support_needs = nil
	m.appendsupport_needs = nil
	m.clearedFields[referral.FieldSupportNeeds] = struct{}{}
}

// SupportNeedsCleared returns if the "support_needs" field was cleared in this mutation.
func (m *ReferralMutation) SupportNeedsCleared() bool {
	_, ok := m.clearedFields[referral.FieldSupportNeeds]
	return ok
}

// ResetSupportNeeds resets all changes to the "support_needs" field.
func (m *ReferralMutation) ResetSupportNeeds() {
	m.support_needs = nil
	m.appendsupport_needs = nil
	delete(m.clearedFields, referral.FieldSupportNeeds)
}

// SetMedicalNeeds sets the "medical_needs" field.
func (m *ReferralMutation) SetMedicalNeeds(s []string) {
	m.medical_needs = &s
	m.appendmedical_needs = nil
}

// MedicalNeeds returns the value of the "medical_needs" field in the mutation.
func (m *ReferralMutation) MedicalNeeds() (r []string, exists bool) {
	v := m.medical_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalNeeds returns the old "medical_needs" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldMedicalNeeds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalNeeds: %w", err)
	}
	return oldValue.MedicalNeeds, nil
}

// AppendMedicalNeeds adds s to the "medical_needs" field.
func (m *ReferralMutation) AppendMedicalNeeds(s []string) {
	m.appendmedical_needs = append(m.appendmedical_needs, s...)
}

// AppendedMedicalNeeds returns the list of values that were appended to the "medical_needs" field in this mutation.
func (m *ReferralMutation) AppendedMedicalNeeds() ([]string, bool) {
	if len(m.appendmedical_needs) == 0 {
		return nil, false
	}
	return m.appendmedical_needs, true
}

// ClearMedicalNeeds clears the value of the "medical_needs" field.
func (m *ReferralMutation) ClearMedicalNeeds() {
	m.medical_needs = nil
	m.appendmedical_needs = nil
	m.clearedFields[referral.FieldMedicalNeeds] = struct{}{}
}

// MedicalNeedsCleared returns if the "medical_needs" field was cleared in this mutation.
func (m *ReferralMutation) MedicalNeedsCleared() bool {
	_, ok := m.clearedFields[referral.FieldMedicalNeeds]
	return ok
}

// ResetMedicalNeeds resets all changes to the "medical_needs" field.
func (m *ReferralMutation) ResetMedicalNeeds() {
	m.medical_needs = nil
	m.appendmedical_needs = nil
	delete(m.clearedFields, referral.FieldMedicalNeeds)
}

// SetEducationalNeeds sets the "educational_needs" field.
func (m *ReferralMutation) SetEducationalNeeds(s []string) {
	m.educational_needs = &s
	m.appendeducational_needs = nil
}

// EducationalNeeds returns the value of the "educational_needs" field in the mutation.
func (m *ReferralMutation) EducationalNeeds() (r []string, exists bool) {
	v := m.educational_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldEducationalNeeds returns the old "educational_needs" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldEducationalNeeds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducationalNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducationalNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducationalNeeds: %w", err)
	}
	return oldValue.EducationalNeeds, nil
}

// AppendEducationalNeeds adds s to the "educational_needs" field.
func (m *ReferralMutation) AppendEducationalNeeds(s []string) {
	m.appendeducational_needs = append(m.appendeducational_needs, s...)
}

// AppendedEducationalNeeds returns the list of values that were appended to the "educational_needs" field in this mutation.
func (m *ReferralMutation) AppendedEducationalNeeds() ([]string, bool) {
	if len(m.appendeducational_needs) == 0 {
		return nil, false
	}
	return m.appendeducational_needs, true
}

// ClearEducationalNeeds clears the value of the "educational_needs" field.
func (m *ReferralMutation) ClearEducationalNeeds() {
	m.educational_needs = nil
	m.appendeducational_needs = nil
	m.clearedFields[referral.FieldEducationalNeeds] = struct{}{}
}

// EducationalNeedsCleared returns if the "educational_needs" field was cleared in this mutation.
func (m *ReferralMutation) EducationalNeedsCleared() bool {
	_, ok := m.clearedFields[referral.FieldEducationalNeeds]
	return ok
}

// ResetEducationalNeeds resets all changes to the "educational_needs" field.
func (m *ReferralMutation) ResetEducationalNeeds() {
	m.educational_needs = nil
	m.appendeducational_needs = nil
	delete(m.clearedFields, referral.FieldEducationalNeeds)
}

// SetUrgency sets the "urgency" field.
func (m *ReferralMutation) SetUrgency(s string) {
	m.urgency = &s
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *ReferralMutation) Urgency() (r string, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldUrgency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *ReferralMutation) ResetUrgency() {
	m.urgency = nil
}

// SetStatus sets the "status" field.
func (m *ReferralMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReferralMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReferralMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *ReferralMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ReferralMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReferralMutation) ResetSource() {
	m.source = nil
}

// SetAttachmentPath sets the "attachment_path" field.
func (m *ReferralMutation) SetAttachmentPath(s string) {
	m.attachment_path = &s
}

// AttachmentPath returns the value of the "attachment_path" field in the mutation.
func (m *ReferralMutation) AttachmentPath() (r string, exists bool) {
	v := m.attachment_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentPath returns the old "attachment_path" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldAttachmentPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentPath: %w", err)
	}
	return oldValue.AttachmentPath, nil
}

// ClearAttachmentPath clears the value of the "attachment_path" field.
func (m *ReferralMutation) ClearAttachmentPath() {
	m.attachment_path = nil
	m.clearedFields[referral.FieldAttachmentPath] = struct{}{}
}

// AttachmentPathCleared returns if the "attachment_path" field was cleared in this mutation.
func (m *ReferralMutation) AttachmentPathCleared() bool {
	_, ok := m.clearedFields[referral.FieldAttachmentPath]
	return ok
}

// ResetAttachmentPath resets all changes to the "attachment_path" field.
func (m *ReferralMutation) ResetAttachmentPath() {
	m.attachment_path = nil
	delete(m.clearedFields, referral.FieldAttachmentPath)
}

// SetRawText sets the "raw_text" field.
func (m *ReferralMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ReferralMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ReferralMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[referral.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ReferralMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[referral.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ReferralMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, referral.FieldRawText)
}

// SetExtractedData sets the "extracted_data" field.
func (m *ReferralMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *ReferralMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *ReferralMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *ReferralMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *ReferralMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[referral.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *ReferralMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[referral.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *ReferralMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, referral.FieldExtractedData)
}

// SetMatchedCarers sets the "matched_carers" field.
func (m *ReferralMutation) SetMatchedCarers(jm json.RawMessage) {
	m.matched_carers = &jm
	m.appendmatched_carers = nil
}

// MatchedCarers returns the value of the "matched_carers" field in the mutation.
func (m *ReferralMutation) MatchedCarers() (r json.RawMessage, exists bool) {
	v := m.matched_carers
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedCarers returns the old "matched_carers" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldMatchedCarers(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedCarers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedCarers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedCarers: %w", err)
	}
	return oldValue.MatchedCarers, nil
}

// AppendMatchedCarers adds jm to the "matched_carers" field.
func (m *ReferralMutation) AppendMatchedCarers(jm json.RawMessage) {
	m.appendmatched_carers = append(m.appendmatched_carers, jm...)
}

// AppendedMatchedCarers returns the list of values that were appended to the "matched_carers" field in this mutation.
func (m *ReferralMutation) AppendedMatchedCarers() (json.RawMessage, bool) {
	if len(m.appendmatched_carers) == 0 {
		return nil, false
	}
	return m.appendmatched_carers, true
}

// ClearMatchedCarers clears the value of the "matched_carers" field.
func (m *ReferralMutation) ClearMatchedCarers() {
	m.matched_carers = nil
	m.appendmatched_carers = nil
	m.clearedFields[referral.FieldMatchedCarers] = struct{}{}
}

// MatchedCarersCleared returns if the "matched_carers" field was cleared in this mutation.
func (m *ReferralMutation) MatchedCarersCleared() bool {
	_, ok := m.clearedFields[referral.FieldMatchedCarers]
	return ok
}

// ResetMatchedCarers resets all changes to the "matched_carers" field.
func (m *ReferralMutation) ResetMatchedCarers() {
	m.matched_carers = nil
	m.appendmatched_carers = nil
	delete(m.clearedFields, referral.FieldMatchedCarers)
}

// SetAssignedCarerID sets the "assigned_carer_id" field.
func (m *ReferralMutation) SetAssignedCarerID(u uuid.UUID) {
	m.assigned_carer_id = &u
}

// AssignedCarerID returns the value of the "assigned_carer_id" field in the mutation.
func (m *ReferralMutation) AssignedCarerID() (r uuid.UUID, exists bool) {
	v := m.assigned_carer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedCarerID returns the old "assigned_carer_id" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldAssignedCarerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedCarerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedCarerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedCarerID: %w", err)
	}
	return oldValue.AssignedCarerID, nil
}

// ClearAssignedCarerID clears the value of the "assigned_carer_id" field.
func (m *ReferralMutation) ClearAssignedCarerID() {
	m.assigned_carer_id = nil
	m.clearedFields[referral.FieldAssignedCarerID] = struct{}{}
}

// AssignedCarerIDCleared returns if the "assigned_carer_id" field was cleared in this mutation.
func (m *ReferralMutation) AssignedCarerIDCleared() bool {
	_, ok := m.clearedFields[referral.FieldAssignedCarerID]
	return ok
}

// ResetAssignedCarerID resets all changes to the "assigned_carer_id" field.
func (m *ReferralMutation) ResetAssignedCarerID() {
	m.assigned_carer_id = nil
	delete(m.clearedFields, referral.FieldAssignedCarerID)
}

// SetAssignedAt sets the "assigned_at" field.
func (m *ReferralMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *ReferralMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *ReferralMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[referral.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *ReferralMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[referral.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *ReferralMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, referral.FieldAssignedAt)
}

// SetAssignedBy sets the "assigned_by" field.
func (m *ReferralMutation) SetAssignedBy(s string) {
	m.assigned_by = &s
}

// AssignedBy returns the value of the "assigned_by" field in the mutation.
func (m *ReferralMutation) AssignedBy() (r string, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedBy returns the old "assigned_by" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldAssignedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedBy: %w", err)
	}
	return oldValue.AssignedBy, nil
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (m *ReferralMutation) ClearAssignedBy() {
	m.assigned_by = nil
	m.clearedFields[referral.FieldAssignedBy] = struct{}{}
}

// AssignedByCleared returns if the "assigned_by" field was cleared in this mutation.
func (m *ReferralMutation) AssignedByCleared() bool {
	_, ok := m.clearedFields[referral.FieldAssignedBy]
	return ok
}

// ResetAssignedBy resets all changes to the "assigned_by" field.
func (m *ReferralMutation) ResetAssignedBy() {
	m.assigned_by = nil
	delete(m.clearedFields, referral.FieldAssignedBy)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ReferralMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ReferralMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ReferralMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[referral.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ReferralMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[referral.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ReferralMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, referral.FieldProcessedAt)
}

// SetStatusHistory sets the "status_history" field.
func (m *ReferralMutation) SetStatusHistory(jm json.RawMessage) {
	m.status_history = &jm
	m.appendstatus_history = nil
}

// StatusHistory returns the value of the "status_history" field in the mutation.
func (m *ReferralMutation) StatusHistory() (r json.RawMessage, exists bool) {
	v := m.status_history
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusHistory returns the old "status_history" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldStatusHistory(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusHistory: %w", err)
	}
	return oldValue.StatusHistory, nil
}

// AppendStatusHistory adds jm to the "status_history" field.
func (m *ReferralMutation) AppendStatusHistory(jm json.RawMessage) {
	m.appendstatus_history = append(m.appendstatus_history, jm...)
}

// AppendedStatusHistory returns the list of values that were appended to the "status_history" field in this mutation.
func (m *ReferralMutation) AppendedStatusHistory() (json.RawMessage, bool) {
	if len(m.appendstatus_history) == 0 {
		return nil, false
	}
	return m.appendstatus_history, true
}

// ClearStatusHistory clears the value of the "status_history" field.
func (m *ReferralMutation) ClearStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	m.clearedFields[referral.FieldStatusHistory] = struct{}{}
}

// StatusHistoryCleared returns if the "status_history" field was cleared in this mutation.
func (m *ReferralMutation) StatusHistoryCleared() bool {
	_, ok := m.clearedFields[referral.FieldStatusHistory]
	return ok
}

// ResetStatusHistory resets all changes to the "status_history" field.
func (m *ReferralMutation) ResetStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
	delete(m.clearedFields, referral.FieldStatusHistory)
}

// SetReceivedAt sets the "received_at" field.
func (m *ReferralMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ReferralMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ReferralMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReferralMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReferralMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReferralMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReferralMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReferralMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Referral entity.
// If the Referral object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReferralMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReferralMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReferralMutation builder.
func (m *ReferralMutation) Where(ps ...predicate.Referral) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReferralMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReferralMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Referral, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReferralMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReferralMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Referral).
func (m *ReferralMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReferralMutation) Fields() []string {
	fields := make([]string, 0, 35)
	if m.child_name != nil {
		fields = append(fields, referral.FieldChildName)
	}
	if m.child_age != nil {
		fields = append(fields, referral.FieldChildAge)
	}
	if m.gender != nil {
		fields = append(fields, referral.FieldGender)
	}
	if m.ethnicity != nil {
		fields = append(fields, referral.FieldEthnicity)
	}
	if m.cultural_background != nil {
		fields = append(fields, referral.FieldCulturalBackground)
	}
	if m.disabilities != nil {
		fields = append(fields, referral.FieldDisabilities)
	}
	if m.sen != nil {
		fields = append(fields, referral.FieldSen)
	}
	if m.behavioural_needs != nil {
		fields = append(fields, referral.FieldBehaviouralNeeds)
	}
	if m.behavioural_details != nil {
		fields = append(fields, referral.FieldBehaviouralDetails)
	}
	if m.placement_type != nil {
		fields = append(fields, referral.FieldPlacementType)
	}
	if m.sibling_group != nil {
		fields = append(fields, referral.FieldSiblingGroup)
	}
	if m.sibling_count != nil {
		fields = append(fields, referral.FieldSiblingCount)
	}
	if m.solo_placement_required != nil {
		fields = append(fields, referral.FieldSoloPlacementRequired)
	}
	if m.pets_in_home_acceptable != nil {
		fields = append(fields, referral.FieldPetsInHomeAcceptable)
	}
	if m.preferred_locations != nil {
		fields = append(fields, referral.FieldPreferredLocations)
	}
	if m.excluded_locations != nil {
		fields = append(fields, referral.FieldExcludedLocations)
	}
	if m.carer_gender_preference != nil {
		fields = append(fields, referral.FieldCarerGenderPreference)
	}
	if m.support_needs != nil {
		fields = append(fields, referral.FieldSupportNeeds)
	}
	if m.medical_needs != nil {
		fields = append(fields, referral.FieldMedicalNeeds)
	}
	if m.educational_needs != nil {
		fields = append(fields, referral.FieldEducationalNeeds)
	}
	if m.urgency != nil {
		fields = append(fields, referral.FieldUrgency)
	}
	if m.status != nil {
		fields = append(fields, referral.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, referral.FieldSource)
	}
	if m.attachment_path != nil {
		fields = append(fields, referral.FieldAttachmentPath)
	}
	if m.raw_text != nil {
		fields = append(fields, referral.FieldRawText)
	}
	if m.extracted_data != nil {
		fields = append(fields, referral.FieldExtractedData)
	}
	if m.matched_carers != nil {
		fields = append(fields, referral.FieldMatchedCarers)
	}
	if m.assigned_carer_id != nil {
		fields = append(fields, referral.FieldAssignedCarerID)
	}
	if m.assigned_at != nil {
		fields = append(fields, referral.FieldAssignedAt)
	}
	if m.assigned_by != nil {
		fields = append(fields, referral.FieldAssignedBy)
	}
	if m.processed_at != nil {
		fields = append(fields, referral.FieldProcessedAt)
	}
	if m.status_history != nil {
		fields = append(fields, referral.FieldStatusHistory)
	}
	if m.received_at != nil {
		fields = append(fields, referral.FieldReceivedAt)
	}
	if m.created_at != nil {
		fields = append(fields, referral.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, referral.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReferralMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case referral.FieldChildName:
		return m.ChildName()
	case referral.FieldChildAge:
		return m.ChildAge()
	case referral.FieldGender:
		return m.Gender()
	case referral.FieldEthnicity:
		return m.Ethnicity()
	case referral.FieldCulturalBackground:
		return m.CulturalBackground()
	case referral.FieldDisabilities:
		return m.Disabilities()
	case referral.FieldSen:
		return m.Sen()
	case referral.FieldBehaviouralNeeds:
		return m.BehaviouralNeeds()
	case referral.FieldBehaviouralDetails:
		return m.BehaviouralDetails()
	case referral.FieldPlacementType:
		return m.PlacementType()
	case referral.FieldSiblingGroup:
		return m.SiblingGroup()
	case referral.FieldSiblingCount:
		return m.SiblingCount()
	case referral.FieldSoloPlacementRequired:
		return m.SoloPlacementRequired()
	case referral.FieldPetsInHomeAcceptable:
		return m.PetsInHomeAcceptable()
	case referral.FieldPreferredLocations:
		return m.PreferredLocations()
	case referral.FieldExcludedLocations:
		return m.ExcludedLocations()
	case referral.FieldCarerGenderPreference:
		return m.CarerGenderPreference()
	case referral.FieldSupportNeeds:
		return m.SupportNeeds()
	case referral.FieldMedicalNeeds:
		return m.MedicalNeeds()
	case referral.FieldEducationalNeeds:
		return m.EducationalNeeds()
	case referral.FieldUrgency:
		return m.Urgency()
	case referral.FieldStatus:
		return m.Status()
	case referral.FieldSource:
		return m.Source()
	case referral.FieldAttachmentPath:
		return m.AttachmentPath()
	case referral.FieldRawText:
		return m.RawText()
	case referral.FieldExtractedData:
		return m.ExtractedData()
	case referral.FieldMatchedCarers:
		return m.MatchedCarers()
	case referral.FieldAssignedCarerID:
		return m.AssignedCarerID()
	case referral.FieldAssignedAt:
		return m.AssignedAt()
	case referral.FieldAssignedBy:
		return m.AssignedBy()
	case referral.FieldProcessedAt:
		return m.ProcessedAt()
	case referral.FieldStatusHistory:
		return m.StatusHistory()
	case referral.FieldReceivedAt:
		return m.ReceivedAt()
	case referral.FieldCreatedAt:
		return m.CreatedAt()
	case referral.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReferralMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case referral.FieldChildName:
		return m.OldChildName(ctx)
	case referral.FieldChildAge:
		return m.OldChildAge(ctx)
	case referral.FieldGender:
		return m.OldGender(ctx)
	case referral.FieldEthnicity:
		return m.OldEthnicity(ctx)
	case referral.FieldCulturalBackground:
		return m.OldCulturalBackground(ctx)
	case referral.FieldDisabilities:
		return m.OldDisabilities(ctx)
	case referral.FieldSen:
		return m.OldSen(ctx)
	case referral.FieldBehaviouralNeeds:
		return m.OldBehaviouralNeeds(ctx)
	case referral.FieldBehaviouralDetails:
		return m.OldBehaviouralDetails(ctx)
	case referral.FieldPlacementType:
		return m.OldPlacementType(ctx)
	case referral.FieldSiblingGroup:
		return m.OldSiblingGroup(ctx)
	case referral.FieldSiblingCount:
		return m.OldSiblingCount(ctx)
	case referral.FieldSoloPlacementRequired:
		return m.OldSoloPlacementRequired(ctx)
	case referral.FieldPetsInHomeAcceptable:
		return m.OldPetsInHomeAcceptable(ctx)
	case referral.FieldPreferredLocations:
		return m.OldPreferredLocations(ctx)
	case referral.FieldExcludedLocations:
		return m.OldExcludedLocations(ctx)
	case referral.FieldCarerGenderPreference:
		return m.OldCarerGenderPreference(ctx)
	case referral.FieldSupportNeeds:
		return m.OldSupportNeeds(ctx)
	case referral.FieldMedicalNeeds:
		return m.OldMedicalNeeds(ctx)
	case referral.FieldEducationalNeeds:
		return m.OldEducationalNeeds(ctx)
	case referral.FieldUrgency:
		return m.OldUrgency(ctx)
	case referral.FieldStatus:
		return m.OldStatus(ctx)
	case referral.FieldSource:
		return m.OldSource(ctx)
	case referral.FieldAttachmentPath:
		return m.OldAttachmentPath(ctx)
	case referral.FieldRawText:
		return m.OldRawText(ctx)
	case referral.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case referral.FieldMatchedCarers:
		return m.OldMatchedCarers(ctx)
	case referral.FieldAssignedCarerID:
		return m.OldAssignedCarerID(ctx)
	case referral.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case referral.FieldAssignedBy:
		return m.OldAssignedBy(ctx)
	case referral.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case referral.FieldStatusHistory:
		return m.OldStatusHistory(ctx)
	case referral.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case referral.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case referral.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Referral field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralMutation) SetField(name string, value ent.Value) error {
	switch name {
	case referral.FieldChildName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildName(v)
		return nil
	case referral.FieldChildAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildAge(v)
		return nil
	case referral.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case referral.FieldEthnicity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEthnicity(v)
		return nil
	case referral.FieldCulturalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCulturalBackground(v)
		return nil
	case referral.FieldDisabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabilities(v)
		return nil
	case referral.FieldSen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSen(v)
		return nil
	case referral.FieldBehaviouralNeeds:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviouralNeeds(v)
		return nil
	case referral.FieldBehaviouralDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviouralDetails(v)
		return nil
	case referral.FieldPlacementType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacementType(v)
		return nil
	case referral.FieldSiblingGroup:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiblingGroup(v)
		return nil
	case referral.FieldSiblingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiblingCount(v)
		return nil
	case referral.FieldSoloPlacementRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoloPlacementRequired(v)
		return nil
	case referral.FieldPetsInHomeAcceptable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPetsInHomeAcceptable(v)
		return nil
	case referral.FieldPreferredLocations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLocations(v)
		return nil
	case referral.FieldExcludedLocations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludedLocations(v)
		return nil
	case referral.FieldCarerGenderPreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarerGenderPreference(v)
		return nil
	case referral.FieldSupportNeeds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportNeeds(v)
		return nil
	case referral.FieldMedicalNeeds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalNeeds(v)
		return nil
	case referral.FieldEducationalNeeds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducationalNeeds(v)
		return nil
	case referral.FieldUrgency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case referral.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case referral.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case referral.FieldAttachmentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentPath(v)
		return nil
	case referral.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case referral.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case referral.FieldMatchedCarers:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedCarers(v)
		return nil
	case referral.FieldAssignedCarerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedCarerID(v)
		return nil
	case referral.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case referral.FieldAssignedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedBy(v)
		return nil
	case referral.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case referral.FieldStatusHistory:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusHistory(v)
		return nil
	case referral.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case referral.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case referral.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Referral field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReferralMutation) AddedFields() []string {
	var fields []string
	if m.addchild_age != nil {
		fields = append(fields, referral.FieldChildAge)
	}
	if m.addsibling_count != nil {
		fields = append(fields, referral.FieldSiblingCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReferralMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case referral.FieldChildAge:
		return m.AddedChildAge()
	case referral.FieldSiblingCount:
		return m.AddedSiblingCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReferralMutation) AddField(name string, value ent.Value) error {
	switch name {
	case referral.FieldChildAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChildAge(v)
		return nil
	case referral.FieldSiblingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSiblingCount(v)
		return nil
	}
	return fmt.Errorf("unknown Referral numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReferralMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(referral.FieldChildName) {
		fields = append(fields, referral.FieldChildName)
	}
	if m.FieldCleared(referral.FieldDisabilities) {
		fields = append(fields, referral.FieldDisabilities)
	}
	if m.FieldCleared(referral.FieldSen) {
		fields = append(fields, referral.FieldSen)
	}
	if m.FieldCleared(referral.FieldBehaviouralNeeds) {
		fields = append(fields, referral.FieldBehaviouralNeeds)
	}
	if m.FieldCleared(referral.FieldBehaviouralDetails) {
		fields = append(fields, referral.FieldBehaviouralDetails)
	}
	if m.FieldCleared(referral.FieldSiblingGroup) {
		fields = append(fields, referral.FieldSiblingGroup)
	}
	if m.FieldCleared(referral.FieldSiblingCount) {
		fields = append(fields, referral.FieldSiblingCount)
	}
	if m.FieldCleared(referral.FieldSoloPlacementRequired) {
		fields = append(fields, referral.FieldSoloPlacementRequired)
	}
	if m.FieldCleared(referral.FieldPetsInHomeAcceptable) {
		fields = append(fields, referral.FieldPetsInHomeAcceptable)
	}
	if m.FieldCleared(referral.FieldPreferredLocations) {
		fields = append(fields, referral.FieldPreferredLocations)
	}
	if m.FieldCleared(referral.FieldExcludedLocations) {
		fields = append(fields, referral.FieldExcludedLocations)
	}
	if m.FieldCleared(referral.FieldCarerGenderPreference) {
		fields = append(fields, referral.FieldCarerGenderPreference)
	}
	if m.FieldCleared(referral.FieldSupportNeeds) {
		fields = append(fields, referral.FieldSupportNeeds)
	}
	if m.FieldCleared(referral.FieldMedicalNeeds) {
		fields = append(fields, referral.FieldMedicalNeeds)
	}
	if m.FieldCleared(referral.FieldEducationalNeeds) {
		fields = append(fields, referral.FieldEducationalNeeds)
	}
	if m.FieldCleared(referral.FieldAttachmentPath) {
		fields = append(fields, referral.FieldAttachmentPath)
	}
	if m.FieldCleared(referral.FieldRawText) {
		fields = append(fields, referral.FieldRawText)
	}
	if m.FieldCleared(referral.FieldExtractedData) {
		fields = append(fields, referral.FieldExtractedData)
	}
	if m.FieldCleared(referral.FieldMatchedCarers) {
		fields = append(fields, referral.FieldMatchedCarers)
	}
	if m.FieldCleared(referral.FieldAssignedCarerID) {
		fields = append(fields, referral.FieldAssignedCarerID)
	}
	if m.FieldCleared(referral.FieldAssignedAt) {
		fields = append(fields, referral.FieldAssignedAt)
	}
	if m.FieldCleared(referral.FieldAssignedBy) {
		fields = append(fields, referral.FieldAssignedBy)
	}
	if m.FieldCleared(referral.FieldProcessedAt) {
		fields = append(fields, referral.FieldProcessedAt)
	}
	if m.FieldCleared(referral.FieldStatusHistory) {
		fields = append(fields, referral.FieldStatusHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReferralMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReferralMutation) ClearField(name string) error {
	switch name {
	case referral.FieldChildName:
		m.ClearChildName()
		return nil
	case referral.FieldDisabilities:
		m.ClearDisabilities()
		return nil
	case referral.FieldSen:
		m.ClearSen()
		return nil
	case referral.FieldBehaviouralNeeds:
		m.ClearBehaviouralNeeds()
		return nil
	case referral.FieldBehaviouralDetails:
		m.ClearBehaviouralDetails()
		return nil
	case referral.FieldSiblingGroup:
		m.ClearSiblingGroup()
		return nil
	case referral.FieldSiblingCount:
		m.ClearSiblingCount()
		return nil
	case referral.FieldSoloPlacementRequired:
		m.ClearSoloPlacementRequired()
		return nil
	case referral.FieldPetsInHomeAcceptable:
		m.ClearPetsInHomeAcceptable()
		return nil
	case referral.FieldPreferredLocations:
		m.ClearPreferredLocations()
		return nil
	case referral.FieldExcludedLocations:
		m.ClearExcludedLocations()
		return nil
	case referral.FieldCarerGenderPreference:
		m.ClearCarerGenderPreference()
		return nil
	case referral.FieldSupportNeeds:
		m.ClearSupportNeeds()
		return nil
	case referral.FieldMedicalNeeds:
		m.ClearMedicalNeeds()
		return nil
	case referral.FieldEducationalNeeds:
		m.ClearEducationalNeeds()
		return nil
	case referral.FieldAttachmentPath:
		m.ClearAttachmentPath()
		return nil
	case referral.FieldRawText:
		m.ClearRawText()
		return nil
	case referral.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case referral.FieldMatchedCarers:
		m.ClearMatchedCarers()
		return nil
	case referral.FieldAssignedCarerID:
		m.ClearAssignedCarerID()
		return nil
	case referral.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case referral.FieldAssignedBy:
		m.ClearAssignedBy()
		return nil
	case referral.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case referral.FieldStatusHistory:
		m.ClearStatusHistory()
		return nil
	}
	return fmt.Errorf("unknown Referral nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReferralMutation) ResetField(name string) error {
	switch name {
	case referral.FieldChildName:
		m.ResetChildName()
		return nil
	case referral.FieldChildAge:
		m.ResetChildAge()
		return nil
	case referral.FieldGender:
		m.ResetGender()
		return nil
	case referral.FieldEthnicity:
		m.ResetEthnicity()
		return nil
	case referral.FieldCulturalBackground:
		m.ResetCulturalBackground()
		return nil
	case referral.FieldDisabilities:
		m.ResetDisabilities()
		return nil
	case referral.FieldSen:
		m.ResetSen()
		return nil
	case referral.FieldBehaviouralNeeds:
		m.ResetBehaviouralNeeds()
		return nil
	case referral.FieldBehaviouralDetails:
		m.ResetBehaviouralDetails()
		return nil
	case referral.FieldPlacementType:
		m.ResetPlacementType()
		return nil
	case referral.FieldSiblingGroup:
		m.ResetSiblingGroup()
		return nil
	case referral.FieldSiblingCount:
		m.ResetSiblingCount()
		return nil
	case referral.FieldSoloPlacementRequired:
		m.ResetSoloPlacementRequired()
		return nil
	case referral.FieldPetsInHomeAcceptable:
		m.ResetPetsInHomeAcceptable()
		return nil
	case referral.FieldPreferredLocations:
		m.ResetPreferredLocations()
		return nil
	case referral.FieldExcludedLocations:
		m.ResetExcludedLocations()
		return nil
	case referral.FieldCarerGenderPreference:
		m.ResetCarerGenderPreference()
		return nil
	case referral.FieldSupportNeeds:
		m.ResetSupportNeeds()
		return nil
	case referral.FieldMedicalNeeds:
		m.ResetMedicalNeeds()
		return nil
	case referral.FieldEducationalNeeds:
		m.ResetEducationalNeeds()
		return nil
	case referral.FieldUrgency:
		m.ResetUrgency()
		return nil
	case referral.FieldStatus:
		m.ResetStatus()
		return nil
	case referral.FieldSource:
		m.ResetSource()
		return nil
	case referral.FieldAttachmentPath:
		m.ResetAttachmentPath()
		return nil
	case referral.FieldRawText:
		m.ResetRawText()
		return nil
	case referral.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case referral.FieldMatchedCarers:
		m.ResetMatchedCarers()
		return nil
	case referral.FieldAssignedCarerID:
		m.ResetAssignedCarerID()
		return nil
	case referral.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case referral.FieldAssignedBy:
		m.ResetAssignedBy()
		return nil
	case referral.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case referral.FieldStatusHistory:
		m.ResetStatusHistory()
		return nil
	case referral.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case referral.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case referral.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Referral field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReferralMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReferralMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReferralMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReferralMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReferralMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReferralMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReferralMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Referral unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReferralMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Referral edge %s", name)
}
