package queries

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads the buyer's cart.
//
// Example:
//
//	query, err := NewGetCartQuery(buyer)
//	if err != nil {
//	    return err
//	}
//	cart, err := handler.Handle(ctx, query)
type GetCartQuery struct {
	buyer kernel.Email
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a GetCartQuery.
func NewGetCartQuery(buyer kernel.Email) (GetCartQuery, error) {
	if err := buyer.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{buyer: buyer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Buyer() kernel.Email { return q.buyer }

// GetCartQueryResponse is the buyer's cart. A buyer without a cart gets an
// empty item list and a zero total.
type GetCartQueryResponse struct {
	Items      []ItemResponse  `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
