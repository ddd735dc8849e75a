package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careflow-uk/fostermatch/constants"
	"github.com/careflow-uk/fostermatch/gen/ent"
	"github.com/careflow-uk/fostermatch/gen/ent/carer"
	"github.com/careflow-uk/fostermatch/internal/entity"
	"github.com/careflow-uk/fostermatch/internal/utils"
)

// CreateCarerRequest wraps parameters for registering a carer.
type CreateCarerRequest struct {
	Name                           string
	Email                          string
	Phone                          string
	MinAge                         int
	MaxAge                         int
	AcceptsSiblings                bool
	AllowsPets                     bool
	ExperienceWithBehaviouralNeeds bool
	ExperienceWithSEN              bool
	PreferredLocation              string
	ExcludedLocations              []string
	GenderPreference               *constants.Gender
	Capacity                       int
	Notes                          string
	CreatedBy                      string
}

// UpdateCarerRequest carries a partial update; nil fields are left untouched.
type UpdateCarerRequest struct {
	Name                           *string
	Email                          *string
	Phone                          *string
	MinAge                         *int
	MaxAge                         *int
	AcceptsSiblings                *bool
	AllowsPets                     *bool
	ExperienceWithBehaviouralNeeds *bool
	ExperienceWithSEN              *bool
	PreferredLocation              *string
	ExcludedLocations              []string
	GenderPreference               *constants.Gender
	Capacity                       *int
	Status                         *constants.CarerStatus
	UpdatedBy                      string
}

type CarerRepository interface {
	Create(ctx context.Context, req *CreateCarerRequest) (*entity.CarerProfile, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCarerRequest) (*entity.CarerProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CarerProfile, error)
	List(ctx context.Context, status *constants.CarerStatus) ([]*entity.CarerProfile, error)
	ListActive(ctx context.Context) ([]*entity.CarerProfile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.CarerStatus, updatedBy string) (*entity.CarerProfile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type carerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCarerRepository(client *ent.Client, logger *slog.Logger) CarerRepository {
	return &carerRepository{
		client: client,
		logger: logger,
	}
}

func (r *carerRepository) Create(ctx context.Context, req *CreateCarerRequest) (*entity.CarerProfile, error) {
	builder := r.client.Carer.Create().
		SetName(req.Name).
		SetMinAge(req.MinAge).
		SetMaxAge(req.MaxAge).
		SetAcceptsSiblings(req.AcceptsSiblings).
		SetAllowsPets(req.AllowsPets).
		SetBehaviouralExperience(req.ExperienceWithBehaviouralNeeds).
		SetSenExperience(req.ExperienceWithSEN).
		SetCapacity(req.Capacity).
		SetStatus(string(constants.CarerActive))

	if req.Email != "" {
		builder = builder.SetEmail(req.Email)
	}
	if req.Phone != "" {
		builder = builder.SetPhone(req.Phone)
	}
	if req.PreferredLocation != "" {
		builder = builder.SetPreferredLocation(req.PreferredLocation)
	}
	if len(req.ExcludedLocations) > 0 {
		builder = builder.SetExcludedLocations(req.ExcludedLocations)
	}
	if req.GenderPreference != nil {
		builder = builder.SetGenderPreference(string(*req.GenderPreference))
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}
	if req.CreatedBy != "" {
		builder = builder.SetCreatedBy(req.CreatedBy)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create carer", "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToCarer(c), nil
}

func (r *carerRepository) Update(ctx context.Context, id uuid.UUID, req *UpdateCarerRequest) (*entity.CarerProfile, error) {
	builder := r.client.Carer.UpdateOneID(id).
		SetNillableName(req.Name).
		SetNillableEmail(req.Email).
		SetNillablePhone(req.Phone).
		SetNillableMinAge(req.MinAge).
		SetNillableMaxAge(req.MaxAge).
		SetNillableAcceptsSiblings(req.AcceptsSiblings).
		SetNillableAllowsPets(req.AllowsPets).
		SetNillableBehaviouralExperience(req.ExperienceWithBehaviouralNeeds).
		SetNillableSenExperience(req.ExperienceWithSEN).
		SetNillablePreferredLocation(req.PreferredLocation).
		SetNillableCapacity(req.Capacity)

	if req.ExcludedLocations != nil {
		builder = builder.SetExcludedLocations(req.ExcludedLocations)
	}
	if req.GenderPreference != nil {
		builder = builder.SetGenderPreference(string(*req.GenderPreference))
	}
	if req.Status != nil {
		builder = builder.SetStatus(string(*req.Status))
	}
	if req.UpdatedBy != "" {
		builder = builder.SetUpdatedBy(req.UpdatedBy)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update carer", "carer_id", id, "error", err)
		return nil, err
	}
	return utils.ToCarer(c), nil
}

func (r *carerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CarerProfile, error) {
	c, err := r.client.Carer.Query().Where(carer.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCarer(c), nil
}

func (r *carerRepository) List(ctx context.Context, status *constants.CarerStatus) ([]*entity.CarerProfile, error) {
	q := r.client.Carer.Query()
	if status != nil {
		q = q.Where(carer.Status(string(*status)))
	}
	rows, err := q.Order(carer.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list carers", "error", err)
		return nil, err
	}

	result := make([]*entity.CarerProfile, len(rows))
	for i, row := range rows {
		result[i] = utils.ToCarer(row)
	}
	return result, nil
}

func (r *carerRepository) ListActive(ctx context.Context) ([]*entity.CarerProfile, error) {
	active := constants.CarerActive
	return r.List(ctx, &active)
}

// SetStatus is the activate/deactivate path; deactivated carers drop out of
// the matching pool but keep their history.
func (r *carerRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.CarerStatus, updatedBy string) (*entity.CarerProfile, error) {
	builder := r.client.Carer.UpdateOneID(id).SetStatus(string(status))
	if updatedBy != "" {
		builder = builder.SetUpdatedBy(updatedBy)
	}
	c, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to set carer status", "carer_id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToCarer(c), nil
}

func (r *carerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Carer.Query().Where(carer.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check carer existence", "carer_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
