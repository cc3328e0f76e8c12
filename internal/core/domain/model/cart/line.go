package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned by Line.Validate for a struct literal.
var ErrLineIsNotConstructed = errors.New("cart line must be created via NewLine")

// Line is one item of a cart. The optional product ID is the stable catalog
// reference captured when the buyer added the item; the name is what the buyer saw.
type Line struct {
	name      string
	quantity  int
	unitPrice kernel.Money
	productID *kernel.UUID
	guard     guard.ConstructorGuard
}

// NewLine validates a cart line. Quantity must be positive.
func NewLine(name string, quantity int, unitPrice kernel.Money, productID *kernel.UUID) (Line, error) {
	name = strings.TrimSpace(name)

	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := unitPrice.Validate(); err != nil {
		errList = append(errList, err)
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Name() string            { return l.name }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }

// ProductID returns the catalog reference, or nil when the line was added by name only.
func (l Line) ProductID() *kernel.UUID {
	return l.productID
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

// Validate returns ErrLineIsNotConstructed for a zero-value Line.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// sameItem matches lines case-insensitively by name, the way buyers type them.
func (l Line) sameItem(other Line) bool {
	return strings.EqualFold(l.name, other.name)
}
