// Package sellerorder provides the per-seller slice of a placed order.
//
// One SellerOrder exists per routed order item, keyed by (order ID, item name).
// It carries a copy of the delivery address so sellers can prepare the parcel
// without reading the buyer's profile, and its own status, which is moved in
// the same unit of work as the parent order.
package sellerorder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// ErrSellerOrderIsNotConstructed is returned by Validate for a struct literal.
var ErrSellerOrderIsNotConstructed = errors.New("SellerOrder must be created via NewSellerOrder constructor")

// Customer is the seller-facing snapshot of who receives the parcel.
type Customer struct {
	Email   kernel.Email
	Address kernel.Address
}

// SellerOrder is one order item routed to the seller that owns the product.
type SellerOrder struct {
	id       kernel.UUID
	orderID  kernel.UUID
	sellerID kernel.UUID
	itemName string
	quantity int
	customer Customer
	status   order.Status
	guard    guard.ConstructorGuard
}

// NewSellerOrder creates a seller order in Ready.
func NewSellerOrder(
	id, orderID, sellerID kernel.UUID,
	itemName string,
	quantity int,
	customer Customer,
) (*SellerOrder, error) {
	return RestoreSellerOrder(id, orderID, sellerID, itemName, quantity, customer, order.Ready)
}

// RestoreSellerOrder rebuilds a seller order from persistence.
func RestoreSellerOrder(
	id, orderID, sellerID kernel.UUID,
	itemName string,
	quantity int,
	customer Customer,
	status order.Status,
) (*SellerOrder, error) {
	itemName = strings.TrimSpace(itemName)

	var errList []error
	for _, ref := range []kernel.UUID{id, orderID, sellerID} {
		if err := ref.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if itemName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := customer.Email.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := customer.Address.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &SellerOrder{
		id:       id,
		orderID:  orderID,
		sellerID: sellerID,
		itemName: itemName,
		quantity: quantity,
		customer: customer,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the seller order was built by a constructor.
func (s *SellerOrder) Validate() error {
	if s == nil {
		return ErrSellerOrderIsNotConstructed
	}
	return s.guard.Validate(ErrSellerOrderIsNotConstructed)
}

func (s *SellerOrder) ID() kernel.UUID       { return s.id }
func (s *SellerOrder) OrderID() kernel.UUID  { return s.orderID }
func (s *SellerOrder) SellerID() kernel.UUID { return s.sellerID }
func (s *SellerOrder) ItemName() string      { return s.itemName }
func (s *SellerOrder) Quantity() int         { return s.quantity }
func (s *SellerOrder) Customer() Customer    { return s.customer }
func (s *SellerOrder) Status() order.Status  { return s.status }

// Take mirrors order.Order.Take.
func (s *SellerOrder) Take() error {
	next, err := s.status.Take()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// Deliver mirrors order.Order.Deliver.
func (s *SellerOrder) Deliver() error {
	next, err := s.status.Deliver()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}
