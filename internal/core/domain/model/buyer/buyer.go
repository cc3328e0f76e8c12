// Package buyer provides the slice of the buyer profile the fulfilment core
// owns: the default delivery address saved at placement.
package buyer

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// ErrBuyerIsNotConstructed is returned by Validate for a struct literal.
var ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer constructor")

// Buyer is identified by email. The address is nil until the first order or save.
type Buyer struct {
	email   kernel.Email
	name    string
	address *kernel.Address
	guard   guard.ConstructorGuard
}

// NewBuyer creates a buyer without a saved address.
func NewBuyer(email kernel.Email, name string) (*Buyer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return &Buyer{
		email: email,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreBuyer rebuilds a buyer from persistence.
func RestoreBuyer(email kernel.Email, name string, address *kernel.Address) (*Buyer, error) {
	b, err := NewBuyer(email, name)
	if err != nil {
		return nil, err
	}
	if address != nil {
		if err = b.SaveAddress(*address); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Validate ensures the buyer was built by a constructor.
func (b *Buyer) Validate() error {
	if b == nil {
		return ErrBuyerIsNotConstructed
	}
	return b.guard.Validate(ErrBuyerIsNotConstructed)
}

func (b *Buyer) Email() kernel.Email { return b.email }
func (b *Buyer) Name() string        { return b.name }

// Address returns the saved default address, or nil.
func (b *Buyer) Address() *kernel.Address {
	return b.address
}

// SaveAddress replaces the default address.
func (b *Buyer) SaveAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	b.address = &address
	if b.name == "" {
		b.name = address.Name()
	}
	return nil
}
