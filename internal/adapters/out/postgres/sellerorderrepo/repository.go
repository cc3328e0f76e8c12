package sellerorderrepo

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSellerOrderRepository implements ports.SellerOrderRepository using GORM.
type GormSellerOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormSellerOrderRepository creates a new GORM seller order repository.
func NewGormSellerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerOrderRepository {
	return &GormSellerOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll inserts seller orders, skipping any (order, item) pair that already
// has one, and returns the number of rows inserted.
func (r *GormSellerOrderRepository) AddAll(ctx context.Context, sellerOrders []*sellerorder.SellerOrder) (int64, error) {
	if len(sellerOrders) == 0 {
		return 0, nil
	}

	dtos := make([]SellerOrderDTO, 0, len(sellerOrders))
	for _, so := range sellerOrders {
		if err := so.Validate(); err != nil {
			return 0, err
		}
		dtos = append(dtos, fromDomain(so))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "item_name"}},
			DoNothing: true,
		}).
		Create(&dtos)
	if result.Error != nil {
		return 0, result.Error
	}

	for _, so := range sellerOrders {
		r.tracker.TrackAggregate(so.ID().String(), so)
	}
	return result.RowsAffected, nil
}

// TransitionAll moves every seller order of the order that is currently in
// from to to, and returns the number of rows changed.
func (r *GormSellerOrderRepository) TransitionAll(
	ctx context.Context,
	orderID kernel.UUID,
	from, to order.Status,
) (int64, error) {
	if err := errors.Join(orderID.Validate(), from.ValidateTransition(to)); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&SellerOrderDTO{}).
		Where("order_id = ? AND delivery_status = ?", orderID.Bytes(), int(from)).
		Update("delivery_status", int(to))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListByOrder returns the seller orders of an order.
func (r *GormSellerOrderRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*sellerorder.SellerOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Order("item_name"))
}

// ListBySeller returns the seller orders routed to a seller, newest first.
func (r *GormSellerOrderRepository) ListBySeller(ctx context.Context, sellerID kernel.UUID) ([]*sellerorder.SellerOrder, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx).Where("seller_id = ?", sellerID.Bytes()).Order("created_at DESC, order_id, item_name"))
}

func (r *GormSellerOrderRepository) find(query *gorm.DB) ([]*sellerorder.SellerOrder, error) {
	var dtos []SellerOrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*sellerorder.SellerOrder, 0, len(dtos))
	for _, dto := range dtos {
		so, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, so)
	}
	return out, nil
}
