package agentrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements ports.AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new agent. A taken name is reported as errs.ConflictError.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if columns.IsUniqueViolation(err) {
			return errs.NewConflictError("agent", dto.Name, "already exists")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetByName retrieves an agent by its unique name.
func (r *GormAgentRepository) GetByName(ctx context.Context, name string) (*agent.Agent, error) {
	return r.first(r.db.WithContext(ctx), "name = ?", name, strings.TrimSpace(name))
}

// GetByNameForUpdate retrieves an agent and locks its row until the transaction ends.
func (r *GormAgentRepository) GetByNameForUpdate(ctx context.Context, name string) (*agent.Agent, error) {
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(db, "name = ?", name, strings.TrimSpace(name))
}

// GetByActiveOrder retrieves the agent currently holding orderID.
func (r *GormAgentRepository) GetByActiveOrder(ctx context.Context, orderID kernel.UUID) (*agent.Agent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "active_order_id = ?", orderID.String(), orderID.Bytes())
}

// Update writes the agent's assignment record. Nil fields are written as NULL.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AgentDTO{}).
		Where("id = ?", dto.ID).
		Select("phone", "delivery_status", "active_order_id", "order_sheet", "pending_otp").
		Updates(&dto)
	if result.Error != nil {
		if columns.IsUniqueViolation(result.Error) {
			return errs.NewConflictError("order", aggregate.ActiveOrderID(), "is held by another agent")
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agent", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormAgentRepository) first(db *gorm.DB, where string, id any, arg any) (*agent.Agent, error) {
	var dto AgentDTO
	if err := db.First(&dto, where, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
