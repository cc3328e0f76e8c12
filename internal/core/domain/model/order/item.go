package order

import (
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// Item is the placement-time snapshot of a cart line.
type Item struct {
	name      string
	quantity  int
	unitPrice kernel.Money
	productID *kernel.UUID
}

// NewItem validates an order item.
func NewItem(name string, quantity int, unitPrice kernel.Money, productID *kernel.UUID) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	return Item{name: name, quantity: quantity, unitPrice: unitPrice, productID: productID}, nil
}

func (i Item) Name() string            { return i.name }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// ProductID returns the catalog reference captured in the cart, if any.
func (i Item) ProductID() *kernel.UUID {
	return i.productID
}
