package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByStatus returns the orders in status, oldest first.
func (r *GormOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("delivery_status = ?", int(status)).Order("order_date ASC, id"))
}

// ListByBuyer returns the buyer's orders, newest first.
func (r *GormOrderRepository) ListByBuyer(ctx context.Context, buyer kernel.Email) ([]*order.Order, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("email = ?", buyer.String()).Order("order_date DESC, id"))
}

// ListFanOutIncomplete returns up to limit undelivered orders with unrouted
// items, least recently attempted first, so orders that never resolve rotate
// to the back of the queue.
func (r *GormOrderRepository) ListFanOutIncomplete(ctx context.Context, limit int) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).
		Where("fan_out_incomplete = ? AND delivery_status <> ?", true, int(order.Delivered)).
		Order("fan_out_attempted_at ASC NULLS FIRST, order_date ASC, id").
		Limit(limit))
}

// RecordFanOutAttempt stamps the order's last reconciliation attempt.
func (r *GormOrderRepository) RecordFanOutAttempt(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("fan_out_attempted_at", at.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// TransitionStatus moves the order from one status to the next with a single
// conditional write and returns the number of rows changed. Zero means the
// order is missing or no longer in from.
func (r *GormOrderRepository) TransitionStatus(ctx context.Context, id kernel.UUID, from, to order.Status) (int64, error) {
	if err := errors.Join(id.Validate(), from.ValidateTransition(to)); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND delivery_status = ?", id.Bytes(), int(from)).
		Update("delivery_status", int(to))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateFanOut writes the order's dropped items and fan-out flag.
func (r *GormOrderRepository) UpdateFanOut(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"fan_out_incomplete": aggregate.FanOutIncomplete(),
			"dropped_items":      columns.StringArray(aggregate.DroppedItems()),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
