package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
)

// StoreOrderSheetCommandHandler recomputes the order sheet of the agent's
// active order and caches it on the agent. Repeated calls overwrite the cache
// with a fresh copy.
type StoreOrderSheetCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStoreOrderSheetCommandHandler creates a StoreOrderSheetCommandHandler.
func NewStoreOrderSheetCommandHandler(uowFactory DeliveryUoWFactory) StoreOrderSheetCommandHandler {
	return StoreOrderSheetCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds and stores the sheet.
func (h StoreOrderSheetCommandHandler) Handle(ctx context.Context, cmd AgentOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	sheets, err := assembleOrderSheets(ctx, uow, []*order.Order{o})
	if err != nil {
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
