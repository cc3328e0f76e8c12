package ports

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// CartRepository persists one cart per buyer.
type CartRepository interface {
	// Get returns the buyer's cart or an errs.ObjectNotFoundError.
	Get(ctx context.Context, buyer kernel.Email) (*cart.Cart, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, buyer kernel.Email) (*cart.Cart, error)

	// Add inserts a new cart. A concurrent insert for the same buyer fails with an errs.ConflictError.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update overwrites the lines and total of an existing cart.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the buyer's cart. Deleting a missing cart is not an error.
	Delete(ctx context.Context, buyer kernel.Email) error
}
