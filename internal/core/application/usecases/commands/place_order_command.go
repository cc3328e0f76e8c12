package commands

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns the buyer's cart into an order shipped to address.
//
// The address is validated before anything is read: every missing required
// field is reported in one errs.MissingFieldsError.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(buyer, kernel.AddressFields{
//		Name: "Asha", Phone: "9876543210", Pincode: "560001",
//		Street: "12 MG Road", City: "Bengaluru", State: "KA",
//	})
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyer   kernel.Email
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the buyer and the delivery address.
func NewPlaceOrderCommand(buyer kernel.Email, address kernel.AddressFields) (PlaceOrderCommand, error) {
	addr, addrErr := kernel.NewAddress(address)
	if err := errors.Join(buyer.Validate(), addrErr); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		buyer:   buyer,
		address: addr,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Buyer() kernel.Email     { return c.buyer }
func (c PlaceOrderCommand) Address() kernel.Address { return c.address }
