package commands

import (
	"context"
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrSaveAddressCommandIsNotConstructed = errors.New(
	"SaveAddressCommand must be created via NewSaveAddressCommand constructor",
)

// SaveAddressCommand replaces the buyer's default delivery address.
type SaveAddressCommand struct { //nolint:recvcheck //using for validation
	buyer   kernel.Email
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewSaveAddressCommand validates the address the same way order placement does.
func NewSaveAddressCommand(buyer kernel.Email, address kernel.AddressFields) (SaveAddressCommand, error) {
	addr, addrErr := kernel.NewAddress(address)
	if err := errors.Join(buyer.Validate(), addrErr); err != nil {
		return SaveAddressCommand{}, err
	}
	return SaveAddressCommand{buyer: buyer, address: addr, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveAddressCommand) Validate() error {
	return c.guard.Validate(ErrSaveAddressCommandIsNotConstructed)
}

func (c SaveAddressCommand) Buyer() kernel.Email     { return c.buyer }
func (c SaveAddressCommand) Address() kernel.Address { return c.address }

// SaveAddressCommandHandler stores default addresses.
type SaveAddressCommandHandler struct {
	uowFactory BuyerUoWFactory
}

// NewSaveAddressCommandHandler creates a SaveAddressCommandHandler.
func NewSaveAddressCommandHandler(uowFactory BuyerUoWFactory) SaveAddressCommandHandler {
	return SaveAddressCommandHandler{uowFactory: uowFactory}
}

// Handle saves the address, creating the buyer profile on first use.
func (h SaveAddressCommandHandler) Handle(ctx context.Context, cmd SaveAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := saveBuyerAddress(ctx, uow.BuyerRepository(), cmd.Buyer(), cmd.Address()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
