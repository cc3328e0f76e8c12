package commands

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// AddCartItemsCommandHandler merges items into a cart, creating it on first use.
// Items that arrive without a unit price are priced from the catalog.
//
// The cart row is locked while it is merged. When two first additions race,
// the loser's insert conflicts and the whole merge is retried once against
// the row the winner created.
type AddCartItemsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemsCommandHandler creates a handler for cart additions.
func NewAddCartItemsCommandHandler(uowFactory CartUoWFactory) AddCartItemsCommandHandler {
	return AddCartItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle merges the command's lines and returns the updated cart.
func (h AddCartItemsCommandHandler) Handle(ctx context.Context, cmd AddCartItemsCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.merge(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		return h.merge(ctx, cmd)
	}
	return c, err
}

func (h AddCartItemsCommandHandler) merge(ctx context.Context, cmd AddCartItemsCommand) (*cart.Cart, error) {
	uow := h.uowFactory.Create()
	err := uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prices := catalog.NewResolution()
	if refs := cmd.UnpricedRefs(); len(refs) > 0 {
		if prices, err = uow.Catalog().Resolve(ctx, refs); err != nil {
			return nil, err
		}
	}
	lines, err := cmd.Lines(prices)
	if err != nil {
		return nil, err
	}

	repo := uow.CartRepository()

	existing, err := repo.GetForUpdate(ctx, cmd.Buyer())
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	if err != nil && !isNew {
		return nil, err
	}

	if isNew {
		if existing, err = cart.NewCart(cmd.Buyer()); err != nil {
			return nil, err
		}
	}

	if err = existing.AddLines(lines...); err != nil {
		return nil, err
	}

	if isNew {
		err = repo.Add(ctx, existing)
	} else {
		err = repo.Update(ctx, existing)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
