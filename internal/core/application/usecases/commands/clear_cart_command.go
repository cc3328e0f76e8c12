package commands

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand deletes the buyer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	buyer kernel.Email
	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a ClearCartCommand.
func NewClearCartCommand(buyer kernel.Email) (ClearCartCommand, error) {
	if err := buyer.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Buyer() kernel.Email { return c.buyer }

// ClearCartCommandHandler deletes carts. Clearing a missing cart succeeds.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a ClearCartCommandHandler.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the cart.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if err := uow.CartRepository().Delete(ctx, cmd.Buyer()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
