package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads carts straight from the carts table.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a GetCartQueryHandler.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the cart, or an empty one when the buyer has none.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var row struct {
		Lines []byte
		Total decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT lines, total
		FROM carts
		WHERE email = ?
	`, query.Buyer().String()).Row().Scan(&row.Lines, &row.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCartQueryResponse{Items: make([]ItemResponse, 0), TotalPrice: decimal.Zero}, nil
		}
		return GetCartQueryResponse{}, err
	}

	items, err := decodeItems(row.Lines)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	return GetCartQueryResponse{Items: items, TotalPrice: row.Total}, nil
}
