package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler confirms that an agent has nothing left to
// complete. Verification already finalizes the delivery, so this succeeds
// whenever the agent is ready and fails with a conflict while an unverified
// delivery is still active.
type CompleteDeliveryCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a CompleteDeliveryCommandHandler.
func NewCompleteDeliveryCommandHandler(uowFactory AgentUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle checks the agent's assignment record.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd AgentCommand) error {
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

	a, err := uow.AgentRepository().GetByName(ctx, cmd.AgentName())
	if err != nil {
		return err
	}

	if a.Status() != agent.Ready || a.ActiveOrderID() != nil {
		return errs.NewConflictError("agent", a.Name(), "has a delivery awaiting verification")
	}

	return uow.Commit(ctx)
}
