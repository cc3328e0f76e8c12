package services

import (
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
)

// OrderSheetBuilder joins an order with buyer, product and seller detail.
// Missing joins become nil placeholders instead of failing the build.
type OrderSheetBuilder struct{}

// NewOrderSheetBuilder creates an OrderSheetBuilder.
func NewOrderSheetBuilder() OrderSheetBuilder {
	return OrderSheetBuilder{}
}

// Build returns the sheet for o. buyerAddress is the buyer's saved address; when it
// is nil the address captured at placement is used.
func (OrderSheetBuilder) Build(
	o *order.Order,
	buyerAddress *kernel.Address,
	resolution catalog.Resolution,
	sellers map[kernel.UUID]catalog.Seller,
) agent.OrderSheet {
	sheet := agent.OrderSheet{
		OrderID: o.ID(),
		Buyer:   agent.SheetBuyer{Email: o.Buyer().String()},
	}
	address := o.ShipTo()
	if buyerAddress != nil && buyerAddress.Validate() == nil {
		address = *buyerAddress
	}
	if address.Validate() == nil {
		fields := address.Fields()
		sheet.Buyer.Address = &fields
	}

	for _, item := range o.Items() {
		line := agent.SheetItem{ItemName: item.Name(), Quantity: item.Quantity()}
		if product, ok := resolution.Lookup(item.Name()); ok {
			line.Product = &product
			if seller, found := sellers[product.SellerID]; found {
				line.Seller = &seller
			}
		}
		sheet.Items = append(sheet.Items, line)
	}
	return sheet
}

// SellerIDs returns the distinct sellers referenced by a resolution.
func (OrderSheetBuilder) SellerIDs(resolution catalog.Resolution) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(resolution.Resolved))
	ids := make([]kernel.UUID, 0, len(resolution.Resolved))
	for _, p := range resolution.Resolved {
		if _, ok := seen[p.SellerID]; ok {
			continue
		}
		seen[p.SellerID] = struct{}{}
		ids = append(ids, p.SellerID)
	}
	return ids
}
