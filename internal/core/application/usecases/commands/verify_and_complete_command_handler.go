package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// VerifyAndCompleteCommandHandler checks a completion code and finalizes the delivery.
//
// The agent row is locked for the whole operation. A wrong code returns
// agent.ErrInvalidCode and changes nothing; retries are unlimited. A correct
// code resets the agent and moves the order and all its seller orders from
// OnDelivery to Delivered in the same transaction.
type VerifyAndCompleteCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewVerifyAndCompleteCommandHandler creates a VerifyAndCompleteCommandHandler.
func NewVerifyAndCompleteCommandHandler(uowFactory DeliveryUoWFactory) VerifyAndCompleteCommandHandler {
	return VerifyAndCompleteCommandHandler{uowFactory: uowFactory}
}

// Handle verifies the code and completes the delivery.
func (h VerifyAndCompleteCommandHandler) Handle(ctx context.Context, cmd VerifyAndCompleteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	to, err := order.OnDelivery.Deliver()
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

	orderID, err := a.CompleteWithCode(cmd.Code())
	if err != nil {
		return err
	}

	orders := uow.OrderRepository()
	moved, err := orders.TransitionStatus(ctx, orderID, order.OnDelivery, to)
	if err != nil {
		return err
	}
	if moved == 0 {
		o, getErr := orders.Get(ctx, orderID)
		if getErr != nil {
			return getErr
		}
		if o.Status() != order.Delivered {
			return errs.NewConflictError("order", orderID, "is "+o.Status().String()+", not ondelivery")
		}
	}

	if _, err = uow.SellerOrderRepository().TransitionAll(ctx, orderID, order.OnDelivery, to); err != nil {
		return err
	}
	if err = agents.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
