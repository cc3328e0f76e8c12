package ports

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// BuyerRepository persists the buyer profile fields owned by fulfilment.
type BuyerRepository interface {
	// Get returns the buyer or an errs.ObjectNotFoundError.
	Get(ctx context.Context, email kernel.Email) (*buyer.Buyer, error)

	// Save inserts or updates the buyer.
	Save(ctx context.Context, aggregate *buyer.Buyer) error
}
