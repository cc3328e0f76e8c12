package services

import (
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"
)

// FanOutPlan is the outcome of routing order items to sellers.
type FanOutPlan struct {
	SellerOrders []*sellerorder.SellerOrder
	Dropped      []string
}

// FanOutPlanner routes order items to the sellers that own the resolved products.
type FanOutPlanner struct {
	newID func() kernel.UUID
}

// NewFanOutPlanner creates a planner that assigns random seller order IDs.
func NewFanOutPlanner() FanOutPlanner {
	return FanOutPlanner{newID: kernel.NewUUID}
}

// Refs returns the catalog references for the given items.
func (p FanOutPlanner) Refs(items []order.Item) []catalog.Ref {
	refs := make([]catalog.Ref, 0, len(items))
	for _, i := range items {
		refs = append(refs, catalog.Ref{Name: i.Name(), ProductID: i.ProductID()})
	}
	return refs
}

// Plan creates one SellerOrder per resolved item, in the order's current status,
// and marks unresolved items as dropped on the order. Items already routed are
// cleared from the order's dropped list.
//
// Parameters:
//   - o: the order being fanned out
//   - items: the subset of o's items to route (all items at placement, dropped ones on reconciliation)
//   - customer: the address snapshot copied onto every seller order
//   - resolution: the catalog lookup for items
//
// Returns:
//   - the seller orders to persist and the names that were dropped
func (p FanOutPlanner) Plan(
	o *order.Order,
	items []order.Item,
	customer sellerorder.Customer,
	resolution catalog.Resolution,
) (FanOutPlan, error) {
	if err := o.Validate(); err != nil {
		return FanOutPlan{}, err
	}

	var plan FanOutPlan
	var routed []string
	for _, item := range items {
		product, ok := resolution.Lookup(item.Name())
		if !ok {
			plan.Dropped = append(plan.Dropped, item.Name())
			continue
		}

		so, err := sellerorder.RestoreSellerOrder(
			p.newID(),
			o.ID(),
			product.SellerID,
			item.Name(),
			item.Quantity(),
			customer,
			o.Status(),
		)
		if err != nil {
			return FanOutPlan{}, err
		}
		plan.SellerOrders = append(plan.SellerOrders, so)
		routed = append(routed, item.Name())
	}

	o.MarkRouted(routed...)
	o.MarkDropped(plan.Dropped...)
	return plan, nil
}
