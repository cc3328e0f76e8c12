package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned by Validate for an Order built as a struct literal.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - It has a valid identifier, buyer, ship-to address and at least one item
//   - Items, address and total never change after placement
//   - Status only moves forward through the Status state machine
//   - FanOutIncomplete is true exactly when DroppedItems is non-empty
type Order struct {
	id       kernel.UUID
	buyer    kernel.Email
	shipTo   kernel.Address
	items    []Item
	total    kernel.Money
	status   Status
	placedAt time.Time
	dropped  []string
	guard    guard.ConstructorGuard
}

// NewOrder creates an order in Ready.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyer, address, items, c.Total(), time.Now())
func NewOrder(
	id kernel.UUID,
	buyer kernel.Email,
	shipTo kernel.Address,
	items []Item,
	total kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Ready,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyer),
		o.setShipTo(shipTo),
		o.setItems(items),
		o.setTotal(total),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence with its current status and dropped items.
func RestoreOrder(
	id kernel.UUID,
	buyer kernel.Email,
	shipTo kernel.Address,
	items []Item,
	total kernel.Money,
	status Status,
	placedAt time.Time,
	dropped []string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyer),
		o.setShipTo(shipTo),
		o.setItems(items),
		o.setTotal(total),
		o.setStatus(status),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}
	o.MarkDropped(dropped...)

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) Buyer() kernel.Email    { return o.buyer }
func (o *Order) ShipTo() kernel.Address { return o.shipTo }
func (o *Order) Total() kernel.Money    { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) PlacedAt() time.Time    { return o.placedAt }

// Items returns a copy of the placement snapshot.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalQuantity returns the sum of item quantities.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, i := range o.items {
		total += i.quantity
	}
	return total
}

// Item looks an item up by name, ignoring case.
func (o *Order) Item(name string) (Item, bool) {
	for _, i := range o.items {
		if strings.EqualFold(i.name, name) {
			return i, true
		}
	}
	return Item{}, false
}

// Take moves the order from Ready to OnDelivery.
func (o *Order) Take() error {
	next, err := o.status.Take()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Deliver moves the order from OnDelivery to Delivered.
func (o *Order) Deliver() error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// FanOutIncomplete reports whether some items still lack a seller order.
func (o *Order) FanOutIncomplete() bool {
	return len(o.dropped) > 0
}

// DroppedItems returns the names of items that could not be routed to a seller.
func (o *Order) DroppedItems() []string {
	return slices.Clone(o.dropped)
}

// MarkDropped records item names that could not be routed. Unknown names and
// duplicates are ignored.
func (o *Order) MarkDropped(names ...string) {
	for _, name := range names {
		item, ok := o.Item(name)
		if !ok || o.isDropped(item.name) {
			continue
		}
		o.dropped = append(o.dropped, item.name)
	}
}

// MarkRouted clears item names from the dropped list once a seller order exists for them.
func (o *Order) MarkRouted(names ...string) {
	o.dropped = slices.DeleteFunc(o.dropped, func(d string) bool {
		return slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, d) })
	})
}

func (o *Order) isDropped(name string) bool {
	return slices.ContainsFunc(o.dropped, func(d string) bool { return strings.EqualFold(d, name) })
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(buyer kernel.Email) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

func (o *Order) setShipTo(shipTo kernel.Address) error {
	if err := shipTo.Validate(); err != nil {
		return err
	}
	o.shipTo = shipTo
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, i := range items {
		if i.quantity <= 0 || i.name == "" {
			return errs.NewValueIsInvalidError("items")
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.placedAt = placedAt.UTC()
	return nil
}
