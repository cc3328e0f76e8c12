package agent

import (
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// OrderSheet is the denormalized view of an order an agent carries on the road:
// the buyer with the delivery address and, per item, the product and its seller.
// It is derived data and can be rebuilt at any time from the source records.
type OrderSheet struct {
	OrderID kernel.UUID
	Buyer   SheetBuyer
	Items   []SheetItem
}

// SheetBuyer is the recipient section of an order sheet.
type SheetBuyer struct {
	Email   string
	Address *kernel.AddressFields
}

// SheetItem is one line of an order sheet. Product and Seller are nil when the
// catalog no longer knows them.
type SheetItem struct {
	ItemName string
	Quantity int
	Product  *catalog.Product
	Seller   *catalog.Seller
}
