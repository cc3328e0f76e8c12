package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
)

// UpdateCartQuantityCommand adds delta to one cart line.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	buyer    kernel.Email
	itemName string
	delta    int

	guard guard.ConstructorGuard
}

// NewUpdateCartQuantityCommand validates a quantity change. Delta may be negative but not zero.
func NewUpdateCartQuantityCommand(buyer kernel.Email, itemName string, delta int) (UpdateCartQuantityCommand, error) {
	cmd := UpdateCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if err := buyer.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(itemName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if delta == 0 {
		errList = append(errList, errs.NewValueIsInvalidError("delta"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateCartQuantityCommand{}, err
	}

	cmd.buyer = buyer
	cmd.itemName = strings.TrimSpace(itemName)
	cmd.delta = delta
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

func (c UpdateCartQuantityCommand) Buyer() kernel.Email { return c.buyer }
func (c UpdateCartQuantityCommand) ItemName() string    { return c.itemName }
func (c UpdateCartQuantityCommand) Delta() int          { return c.delta }
