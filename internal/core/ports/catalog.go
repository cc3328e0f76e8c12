package ports

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// Catalog resolves order items to products and sellers. Lookups never fail
// because something is missing: unresolved refs are reported in the result.
type Catalog interface {
	// Resolve looks refs up by product ID when present, falling back to name.
	Resolve(ctx context.Context, refs []catalog.Ref) (catalog.Resolution, error)

	// Sellers returns the sellers that exist among ids.
	Sellers(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Seller, error)
}
