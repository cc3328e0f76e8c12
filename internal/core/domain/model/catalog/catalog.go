// Package catalog holds the read-only product and seller references the
// fulfilment core resolves order items against. Catalog maintenance is owned
// elsewhere; this package only describes what a lookup can return.
package catalog

import (
	"slices"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// Product is a catalog entry owned by exactly one seller.
type Product struct {
	ID          kernel.UUID
	Name        string
	SellerID    kernel.UUID
	Price       kernel.Money
	ImageURL    string
	Category    string
	Weight      string
	Description string
}

// Seller is the shop detail shown to delivery agents.
type Seller struct {
	ID       kernel.UUID
	ShopName string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
	Landmark string
}

// Ref identifies an order item for resolution. ProductID is preferred when the
// cart captured it; Name is the fallback for lines added by name only.
type Ref struct {
	Name      string
	ProductID *kernel.UUID
}

// Resolution is the outcome of resolving a batch of refs. Every ref name ends up
// either in Resolved or in Missing, never both.
type Resolution struct {
	Resolved map[string]Product
	Missing  []string
}

// NewResolution creates an empty resolution.
func NewResolution() Resolution {
	return Resolution{Resolved: make(map[string]Product)}
}

// Add records a resolved product for the item name.
func (r *Resolution) Add(name string, p Product) {
	r.Resolved[key(name)] = p
	r.Missing = slices.DeleteFunc(r.Missing, func(m string) bool { return key(m) == key(name) })
}

// AddMissing records an item name that could not be resolved.
func (r *Resolution) AddMissing(name string) {
	if _, ok := r.Resolved[key(name)]; ok {
		return
	}
	if slices.ContainsFunc(r.Missing, func(m string) bool { return key(m) == key(name) }) {
		return
	}
	r.Missing = append(r.Missing, name)
}

// Lookup returns the product resolved for an item name.
func (r Resolution) Lookup(name string) (Product, bool) {
	p, ok := r.Resolved[key(name)]
	return p, ok
}

// IsComplete reports whether nothing is missing.
func (r Resolution) IsComplete() bool {
	return len(r.Missing) == 0
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
