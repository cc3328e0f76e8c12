package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned by Validate for a Cart built as a struct literal.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrCartIsEmpty is returned when an order is placed from a missing or empty cart.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Cart is the buyer's basket aggregate.
type Cart struct {
	buyer kernel.Email
	lines []Line
	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for buyer.
func NewCart(buyer kernel.Email) (*Cart, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		buyer: buyer,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart rebuilds a cart from persistence. Duplicate names are merged
// so a cart written by an older client still satisfies the uniqueness rule.
func RestoreCart(buyer kernel.Email, lines []Line) (*Cart, error) {
	c, err := NewCart(buyer)
	if err != nil {
		return nil, err
	}
	if err = c.AddLines(lines...); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns ErrCartIsNotConstructed for an unconstructed cart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Buyer returns the owning buyer.
func (c *Cart) Buyer() kernel.Email {
	return c.buyer
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalQuantity returns the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}

// Total recomputes the cart total from the current lines.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// AddLines merges lines into the cart. A line whose name already exists
// increases that line's quantity; the newer unit price wins when it is non-zero,
// and a known product ID is never replaced by an unknown one.
func (c *Cart) AddLines(lines ...Line) error {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	for _, l := range lines {
		idx := c.indexOf(l)
		if idx < 0 {
			c.lines = append(c.lines, l)
			continue
		}

		existing := c.lines[idx]
		existing.quantity += l.quantity
		if !l.unitPrice.IsZero() {
			existing.unitPrice = l.unitPrice
		}
		if l.productID != nil {
			existing.productID = l.productID
		}
		c.lines[idx] = existing
	}
	return nil
}

// UpdateQuantity adds delta (which may be negative) to the line named name.
// The line is removed when its quantity drops to zero or below.
func (c *Cart) UpdateQuantity(name string, delta int) error {
	idx := -1
	for i, l := range c.lines {
		if strings.EqualFold(l.name, strings.TrimSpace(name)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.NewObjectNotFoundError("cart item", name)
	}
	if delta == 0 {
		return errs.NewValueIsInvalidErrorWithCause("delta", fmt.Errorf("delta must not be zero"))
	}

	c.lines[idx].quantity += delta
	if c.lines[idx].quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	}
	return nil
}

func (c *Cart) indexOf(line Line) int {
	for i, l := range c.lines {
		if l.sameItem(line) {
			return i
		}
	}
	return -1
}
