package queries

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery lists the items routed to one seller.
type GetSellerOrdersQuery struct {
	sellerID kernel.UUID
	guard    guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a GetSellerOrdersQuery.
func NewGetSellerOrdersQuery(sellerID kernel.UUID) (GetSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}
	return GetSellerOrdersQuery{sellerID: sellerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

func (q GetSellerOrdersQuery) SellerID() kernel.UUID { return q.sellerID }

// SellerOrderResponse is one routed item with the address to ship it to.
type SellerOrderResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"orderId"`
	ItemName       string          `json:"itemName"`
	Quantity       int             `json:"quantity"`
	CustomerEmail  string          `json:"customerEmail"`
	Customer       AddressResponse `json:"customer"`
	DeliveryStatus string          `json:"deliveryStatus"`
}
