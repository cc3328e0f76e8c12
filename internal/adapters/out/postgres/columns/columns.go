// Package columns holds column types shared by several tables and the
// classification of postgres errors the repositories care about.
package columns

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE of a unique constraint violation.
const uniqueViolation = "23505"

// AddressDTO is an address stored as embedded columns.
type AddressDTO struct {
	Name     string
	Phone    string
	Pincode  string
	Street   string
	City     string
	State    string
	Landmark string
}

// FromAddress maps a domain address to its columns.
func FromAddress(a kernel.Address) AddressDTO {
	f := a.Fields()
	return AddressDTO{
		Name:     f.Name,
		Phone:    f.Phone,
		Pincode:  f.Pincode,
		Street:   f.Street,
		City:     f.City,
		State:    f.State,
		Landmark: f.Landmark,
	}
}

// Fields returns the columns as address fields.
func (d AddressDTO) Fields() kernel.AddressFields {
	return kernel.AddressFields{
		Name:     d.Name,
		Phone:    d.Phone,
		Pincode:  d.Pincode,
		Street:   d.Street,
		City:     d.City,
		State:    d.State,
		Landmark: d.Landmark,
	}
}

// ToDomain validates the columns as an address.
func (d AddressDTO) ToDomain() (kernel.Address, error) {
	return kernel.NewAddress(d.Fields())
}

// UUIDPtr maps an optional domain UUID to its column value.
func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// DomainUUIDPtr maps an optional column value to a domain UUID.
func DomainUUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// StringArray returns names as a text[] value that is never NULL.
func StringArray(names []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(names))
	return append(out, names...)
}

// IsUniqueViolation reports whether err is a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
