package queries

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAddressQueryHandler reads the address columns of the buyers table.
type GetAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressQueryHandler creates a GetAddressQueryHandler.
func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

// Handle returns the saved address. A buyer who never saved one gets an
// errs.ObjectNotFoundError.
func (h GetAddressQueryHandler) Handle(ctx context.Context, query GetAddressQuery) (AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return AddressResponse{}, err
	}

	var found []AddressResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			address_name AS name,
			address_phone AS phone,
			address_pincode AS pincode,
			address_street AS street,
			address_city AS city,
			address_state AS state,
			address_landmark AS landmark
		FROM buyers
		WHERE email = ? AND address_set
	`, query.Buyer().String()).Scan(&found).Error
	if err != nil {
		return AddressResponse{}, err
	}

	if len(found) == 0 {
		return AddressResponse{}, errs.NewObjectNotFoundError("address", query.Buyer().String())
	}
	return found[0], nil
}
