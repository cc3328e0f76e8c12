package queries

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"
)

var ErrGetAddressQueryIsNotConstructed = errors.New(
	"GetAddressQuery must be created via NewGetAddressQuery constructor",
)

// GetAddressQuery reads the buyer's saved default address.
type GetAddressQuery struct {
	buyer kernel.Email
	guard guard.ConstructorGuard
}

// NewGetAddressQuery creates a GetAddressQuery.
func NewGetAddressQuery(buyer kernel.Email) (GetAddressQuery, error) {
	if err := buyer.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	return GetAddressQuery{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

func (q GetAddressQuery) Buyer() kernel.Email { return q.buyer }
