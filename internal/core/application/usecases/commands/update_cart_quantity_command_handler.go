package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
)

// UpdateCartQuantityCommandHandler adjusts one line of a locked cart. A cart
// whose last line is removed is deleted, which is the same as never having one.
type UpdateCartQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateCartQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the change and returns the resulting cart, which may be empty.
func (h UpdateCartQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	c, err := repo.GetForUpdate(ctx, cmd.Buyer())
	if err != nil {
		return nil, err
	}

	if err = c.UpdateQuantity(cmd.ItemName(), cmd.Delta()); err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		err = repo.Delete(ctx, cmd.Buyer())
	} else {
		err = repo.Update(ctx, c)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
