package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// TakeOrderCommandHandler arbitrates claims on ready orders.
//
// The claim is a single conditional write on the order status. When it
// modifies nothing the order was taken by someone else and the handler fails
// with errs.ConflictError without touching the agent or the seller orders.
// The agent row is locked first, so one agent cannot hold two orders.
// The order sheet is built and cached in the same transaction as the claim.
type TakeOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewTakeOrderCommandHandler creates a TakeOrderCommandHandler.
func NewTakeOrderCommandHandler(uowFactory DeliveryUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{uowFactory: uowFactory}
}

// Handle claims the order for the agent.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd AgentOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	to, err := order.Ready.Take()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agents := uow.AgentRepository()
	a, err := agents.GetByNameForUpdate(ctx, cmd.AgentName())
	if err != nil {
		return err
	}
	if a.Status() != agent.Ready {
		return agent.ErrAgentIsBusy
	}

	orders := uow.OrderRepository()
	claimed, err := orders.TransitionStatus(ctx, cmd.OrderID(), order.Ready, to)
	if err != nil {
		return err
	}
	if claimed == 0 {
		// Distinguish a missing order from a lost race.
		if _, err = orders.Get(ctx, cmd.OrderID()); err != nil {
			return err
		}
		return errs.NewConflictError("order", cmd.OrderID(), "is no longer ready")
	}

	if _, err = uow.SellerOrderRepository().TransitionAll(ctx, cmd.OrderID(), order.Ready, to); err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	sheets, err := assembleOrderSheets(ctx, uow, []*order.Order{o})
	if err != nil {
		return err
	}

	if err = a.Claim(o.ID()); err != nil {
		return err
	}
	if err = a.StoreOrderSheet(sheets[0]); err != nil {
		return err
	}
	if err = agents.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
