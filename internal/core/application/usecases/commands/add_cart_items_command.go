package commands

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrAddCartItemsCommandIsNotConstructed = errors.New(
	"AddCartItemsCommand must be created via NewAddCartItemsCommand constructor",
)

// CartItemInput is one item of a cart addition as received from a client.
// UnitPrice and ProductID are optional.
type CartItemInput struct {
	Name      string
	Quantity  int
	UnitPrice *kernel.Money
	ProductID *kernel.UUID
}

// AddCartItemsCommand merges items into the buyer's cart.
//
// Items without a unit price are priced from the catalog. The addition's
// total price is only used for items the catalog cannot resolve: it is the
// unit price of a single-item addition, and otherwise whatever the priced
// items leave of it is split across the unresolved quantity.
//
// Example:
//
//	buyer, _ := kernel.NewEmail("asha@example.com")
//	price, _ := kernel.MoneyFromString("25")
//	cmd, err := NewAddCartItemsCommand(buyer, []CartItemInput{{Name: "Milk", Quantity: 2}}, &price)
type AddCartItemsCommand struct { //nolint:recvcheck //using for validation
	buyer      kernel.Email
	items      []CartItemInput
	totalPrice *kernel.Money

	guard guard.ConstructorGuard
}

// NewAddCartItemsCommand validates the addition.
func NewAddCartItemsCommand(buyer kernel.Email, items []CartItemInput, totalPrice *kernel.Money) (AddCartItemsCommand, error) {
	cmd := AddCartItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyer(buyer),
		cmd.setItems(items),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return AddCartItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemsCommandIsNotConstructed)
}

func (c AddCartItemsCommand) Buyer() kernel.Email { return c.buyer }

// UnpricedRefs returns the catalog refs of items that arrived without a unit price.
func (c AddCartItemsCommand) UnpricedRefs() []catalog.Ref {
	var refs []catalog.Ref
	for _, item := range c.items {
		if item.UnitPrice == nil {
			refs = append(refs, catalog.Ref{Name: item.Name, ProductID: item.ProductID})
		}
	}
	return refs
}

// Lines prices the items and returns the cart lines to merge. Prices come from
// the client first, then from prices, then from the addition's total.
func (c AddCartItemsCommand) Lines(prices catalog.Resolution) ([]cart.Line, error) {
	unitPrices := make([]*kernel.Money, len(c.items))
	var unresolved []int
	priced := kernel.ZeroMoney()
	for i, item := range c.items {
		unitPrices[i] = item.UnitPrice
		if p, ok := prices.Lookup(item.Name); item.UnitPrice == nil && ok && p.Price.Validate() == nil && !p.Price.IsZero() {
			price := p.Price
			unitPrices[i] = &price
		}
		if unitPrices[i] == nil {
			unresolved = append(unresolved, i)
			continue
		}
		priced = priced.Add(unitPrices[i].Times(item.Quantity))
	}

	if len(unresolved) > 0 && c.totalPrice != nil {
		share := *c.totalPrice
		if len(c.items) > 1 {
			quantity := 0
			for _, i := range unresolved {
				quantity += c.items[i].Quantity
			}
			share = c.totalPrice.Sub(priced).DividedBy(quantity)
		}
		for _, i := range unresolved {
			unitPrices[i] = &share
		}
	}

	lines := make([]cart.Line, 0, len(c.items))
	for i, item := range c.items {
		unitPrice := kernel.ZeroMoney()
		if unitPrices[i] != nil {
			unitPrice = *unitPrices[i]
		}
		line, err := cart.NewLine(item.Name, item.Quantity, unitPrice, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *AddCartItemsCommand) setBuyer(buyer kernel.Email) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	c.buyer = buyer
	return nil
}

func (c *AddCartItemsCommand) setItems(items []CartItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	out := make([]CartItemInput, 0, len(items))
	var errList []error
	for _, item := range items {
		unitPrice := kernel.ZeroMoney()
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		if _, err := cart.NewLine(item.Name, item.Quantity, unitPrice, item.ProductID); err != nil {
			errList = append(errList, err)
			continue
		}
		item.Name = strings.TrimSpace(item.Name)
		out = append(out, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = out
	return nil
}

func (c *AddCartItemsCommand) setTotalPrice(totalPrice *kernel.Money) error {
	if totalPrice == nil {
		return nil
	}
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	c.totalPrice = totalPrice
	return nil
}
