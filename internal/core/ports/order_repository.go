package ports

import (
	"context"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"
)

// OrderRepository persists Order aggregates. Items and total are written once;
// afterwards only the status and the fan-out bookkeeping change.
type OrderRepository interface {
	// Add inserts a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByStatus returns orders in status, oldest first.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ListByBuyer returns the buyer's orders, newest first.
	ListByBuyer(ctx context.Context, buyer kernel.Email) ([]*order.Order, error)

	// ListFanOutIncomplete returns up to limit undelivered orders that still have
	// dropped items. Orders never attempted come first, then the least recently attempted.
	ListFanOutIncomplete(ctx context.Context, limit int) ([]*order.Order, error)

	// RecordFanOutAttempt stamps the order as examined by reconciliation at `at`.
	RecordFanOutAttempt(ctx context.Context, id kernel.UUID, at time.Time) error

	// TransitionStatus sets the status to `to` only where it currently equals `from`
	// and returns the number of rows changed (0 or 1). It is the compare-and-set
	// primitive that arbitrates concurrent claims.
	TransitionStatus(ctx context.Context, id kernel.UUID, from, to order.Status) (int64, error)

	// UpdateFanOut writes the dropped items and the derived incomplete flag.
	UpdateFanOut(ctx context.Context, aggregate *order.Order) error
}

// SellerOrderRepository persists SellerOrders.
type SellerOrderRepository interface {
	// AddAll inserts seller orders, skipping any whose (order ID, item name) already
	// exists, and returns how many rows were inserted.
	AddAll(ctx context.Context, sellerOrders []*sellerorder.SellerOrder) (int64, error)

	// TransitionAll moves every seller order of orderID from `from` to `to` and
	// returns the number of rows changed.
	TransitionAll(ctx context.Context, orderID kernel.UUID, from, to order.Status) (int64, error)

	// ListByOrder returns the seller orders of one order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*sellerorder.SellerOrder, error)

	// ListBySeller returns a seller's orders, newest first.
	ListBySeller(ctx context.Context, sellerID kernel.UUID) ([]*sellerorder.SellerOrder, error)
}
