package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
)

// ListReadyOrdersResult is what an agent sees when asking for work.
type ListReadyOrdersResult struct {
	// Redirect is set when the agent already has a delivery in progress; Orders is then empty.
	Redirect bool
	// Healed is set when a busy agent without assignment artifacts was reset to ready.
	Healed bool
	Orders []agent.OrderSheet
}

// ListReadyOrdersCommandHandler lists unclaimed orders for an agent.
//
// It is a command because it repairs the agent's record when the record says
// the agent is busy but holds no order or no order sheet.
type ListReadyOrdersCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewListReadyOrdersCommandHandler creates a ListReadyOrdersCommandHandler.
func NewListReadyOrdersCommandHandler(uowFactory DeliveryUoWFactory) ListReadyOrdersCommandHandler {
	return ListReadyOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the ready orders joined with buyer, product and seller detail.
func (h ListReadyOrdersCommandHandler) Handle(ctx context.Context, cmd AgentCommand) (ListReadyOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ListReadyOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ListReadyOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agents := uow.AgentRepository()
	a, err := agents.GetByNameForUpdate(ctx, cmd.AgentName())
	if err != nil {
		return ListReadyOrdersResult{}, err
	}

	if a.HasDeliveryInProgress() {
		return ListReadyOrdersResult{Redirect: true, Orders: []agent.OrderSheet{}}, nil
	}

	var result ListReadyOrdersResult
	if a.NeedsHealing() {
		a.Reset()
		if err = agents.Update(ctx, a); err != nil {
			return ListReadyOrdersResult{}, err
		}
		result.Healed = true
	}

	orders, err := uow.OrderRepository().ListByStatus(ctx, order.Ready)
	if err != nil {
		return ListReadyOrdersResult{}, err
	}

	if result.Orders, err = assembleOrderSheets(ctx, uow, orders); err != nil {
		return ListReadyOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ListReadyOrdersResult{}, err
	}
	return result, nil
}
