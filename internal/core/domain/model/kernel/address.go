package kernel

import (
	"errors"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned by Validate for an Address built as a struct literal.
var ErrAddressIsNotConstructed = errors.New("address must be created via NewAddress")

// AddressFields is the raw form of an address as submitted by a buyer.
type AddressFields struct {
	Name     string
	Phone    string
	Pincode  string
	Street   string
	City     string
	State    string
	Landmark string
}

// Address is the delivery address value object. Name, phone, pincode, street,
// city and state are required; landmark is optional.
type Address struct {
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress trims every field and fails with an errs.MissingFieldsError that
// names all absent required fields in a fixed order.
//
// Example:
//
//	addr, err := kernel.NewAddress(kernel.AddressFields{Name: "Asha", Phone: "98450"})
//	// err: value is required: address is missing pincode, street, city, state
func NewAddress(in AddressFields) (Address, error) {
	f := AddressFields{
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		Pincode:  strings.TrimSpace(in.Pincode),
		Street:   strings.TrimSpace(in.Street),
		City:     strings.TrimSpace(in.City),
		State:    strings.TrimSpace(in.State),
		Landmark: strings.TrimSpace(in.Landmark),
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"phone", f.Phone},
		{"pincode", f.Pincode},
		{"street", f.Street},
		{"city", f.City},
		{"state", f.State},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return Address{}, errs.NewMissingFieldsError("address", missing...)
	}

	return Address{fields: f, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Name() string     { return a.fields.Name }
func (a Address) Phone() string    { return a.fields.Phone }
func (a Address) Pincode() string  { return a.fields.Pincode }
func (a Address) Street() string   { return a.fields.Street }
func (a Address) City() string     { return a.fields.City }
func (a Address) State() string    { return a.fields.State }
func (a Address) Landmark() string { return a.fields.Landmark }

// Fields returns a copy of the address components.
func (a Address) Fields() AddressFields {
	return a.fields
}

// IsEqual compares all components.
func (a Address) IsEqual(other Address) bool {
	return a.fields == other.fields
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
