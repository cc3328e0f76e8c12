package commands

import (
	"context"
	"errors"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"
	"github.com/lax56237/Daily-Drop/internal/core/domain/services"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// DefaultReconcileBatch is the number of incomplete orders examined per run.
const DefaultReconcileBatch = 50

var ErrReconcileFanOutCommandIsNotConstructed = errors.New(
	"ReconcileFanOutCommand must be created via NewReconcileFanOutCommand constructor",
)

// ReconcileFanOutCommand retries seller routing for orders whose fan-out is incomplete.
type ReconcileFanOutCommand struct { //nolint:recvcheck //using for validation
	limit int
	guard guard.ConstructorGuard
}

// NewReconcileFanOutCommand creates a command that examines at most limit orders.
func NewReconcileFanOutCommand(limit int) (ReconcileFanOutCommand, error) {
	if limit <= 0 {
		return ReconcileFanOutCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}
	return ReconcileFanOutCommand{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileFanOutCommand) Validate() error {
	return c.guard.Validate(ErrReconcileFanOutCommandIsNotConstructed)
}

func (c ReconcileFanOutCommand) Limit() int { return c.limit }

// ReconcileFanOutResult summarises one reconciliation pass.
type ReconcileFanOutResult struct {
	Examined        int
	SellerOrders    int64
	StillIncomplete int
}

// ReconcileFanOutCommandHandler routes previously dropped items to sellers.
//
// Only the dropped items of each order are resolved again. New seller orders
// take the order's current status and the ship-to snapshot recorded at
// placement. Delivered orders are left alone. Every examined order is stamped
// with the attempt time, which moves it behind orders not yet retried.
type ReconcileFanOutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	planner    services.FanOutPlanner
	now        func() time.Time
}

// NewReconcileFanOutCommandHandler creates a ReconcileFanOutCommandHandler.
func NewReconcileFanOutCommandHandler(uowFactory CheckoutUoWFactory) ReconcileFanOutCommandHandler {
	return ReconcileFanOutCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewFanOutPlanner(),
		now:        time.Now,
	}
}

// Handle runs one reconciliation pass in a single transaction.
func (h ReconcileFanOutCommandHandler) Handle(ctx context.Context, cmd ReconcileFanOutCommand) (ReconcileFanOutResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileFanOutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReconcileFanOutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().ListFanOutIncomplete(ctx, cmd.Limit())
	if err != nil {
		return ReconcileFanOutResult{}, err
	}

	attemptedAt := h.now()
	var result ReconcileFanOutResult
	for _, o := range orders {
		if o.Status().IsTerminal() {
			continue
		}
		result.Examined++
		if err = uow.OrderRepository().RecordFanOutAttempt(ctx, o.ID(), attemptedAt); err != nil {
			return ReconcileFanOutResult{}, err
		}

		items := droppedItems(o)
		resolution, resolveErr := uow.Catalog().Resolve(ctx, h.planner.Refs(items))
		if resolveErr != nil {
			return ReconcileFanOutResult{}, resolveErr
		}
		if len(resolution.Resolved) == 0 {
			result.StillIncomplete++
			continue
		}

		customer := sellerorder.Customer{Email: o.Buyer(), Address: o.ShipTo()}
		plan, planErr := h.planner.Plan(o, items, customer, resolution)
		if planErr != nil {
			return ReconcileFanOutResult{}, planErr
		}

		n, addErr := uow.SellerOrderRepository().AddAll(ctx, plan.SellerOrders)
		if addErr != nil {
			return ReconcileFanOutResult{}, addErr
		}
		if err = uow.OrderRepository().UpdateFanOut(ctx, o); err != nil {
			return ReconcileFanOutResult{}, err
		}

		result.SellerOrders += n
		if o.FanOutIncomplete() {
			result.StillIncomplete++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcileFanOutResult{}, err
	}
	return result, nil
}

func droppedItems(o *order.Order) []order.Item {
	var items []order.Item
	for _, name := range o.DroppedItems() {
		if item, ok := o.Item(name); ok {
			items = append(items, item)
		}
	}
	return items
}
