package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"
	"github.com/lax56237/Daily-Drop/internal/core/domain/services"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// PartialFanOutWarning lists cart items that could not be routed to a seller
// when the order was placed. The order is still created; the items stay on the
// order's dropped list until reconciliation routes them.
type PartialFanOutWarning struct {
	OrderID kernel.UUID
	Dropped []string
}

func (w *PartialFanOutWarning) Error() string {
	return fmt.Sprintf("order %s placed without a seller for: %s", w.OrderID, strings.Join(w.Dropped, ", "))
}

// PlaceOrderResult is returned by PlaceOrderCommandHandler.
type PlaceOrderResult struct {
	OrderID kernel.UUID
	// Warning is nil when every item was routed.
	Warning *PartialFanOutWarning
}

// PlaceOrderCommandHandler places orders.
//
// Address save, order creation, seller-order fan-out and cart removal run in a
// single transaction, so a failure at any step leaves the cart intact and no
// order behind. Items whose product cannot be resolved do not fail placement.
// An empty cart still commits the address before ErrCartIsEmpty is returned.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	planner    services.FanOutPlanner
	now        func() time.Time
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a PlaceOrderCommandHandler.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewFanOutPlanner(),
		now:        time.Now,
		logger:     logger.With("component", "place-order"),
	}
}

// Handle places the order and returns its ID.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := saveBuyerAddress(ctx, uow.BuyerRepository(), cmd.Buyer(), cmd.Address()); err != nil {
		return PlaceOrderResult{}, err
	}

	c, err := uow.CartRepository().GetForUpdate(ctx, cmd.Buyer())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return PlaceOrderResult{}, err
	}
	if err != nil || c.IsEmpty() {
		if err = uow.Commit(ctx); err != nil {
			return PlaceOrderResult{}, err
		}
		return PlaceOrderResult{}, cart.ErrCartIsEmpty
	}

	items, err := orderItems(c)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Buyer(), cmd.Address(), items, c.Total(), h.now())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	resolution, err := uow.Catalog().Resolve(ctx, h.planner.Refs(items))
	if err != nil {
		return PlaceOrderResult{}, err
	}

	customer := sellerorder.Customer{Email: cmd.Buyer(), Address: cmd.Address()}
	plan, err := h.planner.Plan(o, items, customer, resolution)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	// The order row carries the dropped list, so it is written after planning.
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}
	if _, err = uow.SellerOrderRepository().AddAll(ctx, plan.SellerOrders); err != nil {
		return PlaceOrderResult{}, err
	}
	if err = uow.CartRepository().Delete(ctx, cmd.Buyer()); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	result := PlaceOrderResult{OrderID: o.ID()}
	if len(plan.Dropped) > 0 {
		result.Warning = &PartialFanOutWarning{OrderID: o.ID(), Dropped: plan.Dropped}
		h.logger.WarnContext(ctx, "order placed with unrouted items",
			"order_id", o.ID().String(),
			"dropped", plan.Dropped,
		)
	}
	return result, nil
}

func orderItems(c *cart.Cart) ([]order.Item, error) {
	lines := c.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		item, err := order.NewItem(l.Name(), l.Quantity(), l.UnitPrice(), l.ProductID())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// saveBuyerAddress stores address as the buyer's default, creating the profile if needed.
func saveBuyerAddress(ctx context.Context, repo ports.BuyerRepository, email kernel.Email, address kernel.Address) error {
	b, err := repo.Get(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		b, err = buyer.NewBuyer(email, "")
	}
	if err != nil {
		return err
	}

	if err = b.SaveAddress(address); err != nil {
		return err
	}
	return repo.Save(ctx, b)
}
