package queries

import (
	"errors"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
	)
	ErrGetBuyerOrderQueryIsNotConstructed = errors.New(
		"GetBuyerOrderQuery must be created via NewGetBuyerOrderQuery constructor",
	)
)

// GetBuyerOrdersQuery lists the buyer's orders, newest first.
type GetBuyerOrdersQuery struct {
	buyer kernel.Email
	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a GetBuyerOrdersQuery.
func NewGetBuyerOrdersQuery(buyer kernel.Email) (GetBuyerOrdersQuery, error) {
	if err := buyer.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	return GetBuyerOrdersQuery{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

func (q GetBuyerOrdersQuery) Buyer() kernel.Email { return q.buyer }

// GetBuyerOrderQuery reads one order owned by the buyer. Orders of other
// buyers are reported as not found.
type GetBuyerOrderQuery struct {
	buyer   kernel.Email
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetBuyerOrderQuery creates a GetBuyerOrderQuery.
func NewGetBuyerOrderQuery(buyer kernel.Email, orderID kernel.UUID) (GetBuyerOrderQuery, error) {
	if err := errors.Join(buyer.Validate(), orderID.Validate()); err != nil {
		return GetBuyerOrderQuery{}, err
	}
	return GetBuyerOrderQuery{buyer: buyer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrderQueryIsNotConstructed)
}

func (q GetBuyerOrderQuery) Buyer() kernel.Email  { return q.buyer }
func (q GetBuyerOrderQuery) OrderID() kernel.UUID { return q.orderID }

// BuyerOrderResponse is an order as the buyer sees it.
type BuyerOrderResponse struct {
	ID             uuid.UUID       `json:"id"`
	Items          []ItemResponse  `json:"items"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DeliveryStatus string          `json:"deliveryStatus"`
	OrderDate      time.Time       `json:"orderDate"`
	ShipTo         AddressResponse `json:"shipTo"`
	PendingItems   []string        `json:"pendingItems,omitempty"`
}
