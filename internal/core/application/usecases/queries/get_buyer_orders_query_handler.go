package queries

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const buyerOrderColumns = `
	id,
	lines,
	total,
	delivery_status,
	order_date,
	ship_name,
	ship_phone,
	ship_pincode,
	ship_street,
	ship_city,
	ship_state,
	ship_landmark,
	dropped_items
`

// GetBuyerOrdersQueryHandler serves the buyer's order history.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a GetBuyerOrdersQueryHandler.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle lists the buyer's orders, newest first.
func (h GetBuyerOrdersQueryHandler) Handle(ctx context.Context, query GetBuyerOrdersQuery) ([]BuyerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+buyerOrderColumns+`
		FROM orders
		WHERE email = ?
		ORDER BY order_date DESC, id
	`, query.Buyer().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]BuyerOrderResponse, 0)
	for rows.Next() {
		o, scanErr := scanBuyerOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetBuyerOrderQueryHandler serves a single buyer-owned order.
type GetBuyerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrderQueryHandler creates a GetBuyerOrderQueryHandler.
func NewGetBuyerOrderQueryHandler(db *gorm.DB) GetBuyerOrderQueryHandler {
	return GetBuyerOrderQueryHandler{db: db}
}

// Handle returns the order or an errs.ObjectNotFoundError.
func (h GetBuyerOrderQueryHandler) Handle(ctx context.Context, query GetBuyerOrderQuery) (BuyerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return BuyerOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+buyerOrderColumns+`
		FROM orders
		WHERE id = ? AND email = ?
	`, query.OrderID().Bytes(), query.Buyer().String()).Rows()
	if err != nil {
		return BuyerOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BuyerOrderResponse{}, err
		}
		return BuyerOrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanBuyerOrder(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuyerOrder(rows rowScanner) (BuyerOrderResponse, error) {
	var (
		o       BuyerOrderResponse
		id      uuid.UUID
		lines   []byte
		total   decimal.Decimal
		status  int
		dropped pq.StringArray
	)

	err := rows.Scan(
		&id,
		&lines,
		&total,
		&status,
		&o.OrderDate,
		&o.ShipTo.Name,
		&o.ShipTo.Phone,
		&o.ShipTo.Pincode,
		&o.ShipTo.Street,
		&o.ShipTo.City,
		&o.ShipTo.State,
		&o.ShipTo.Landmark,
		&dropped,
	)
	if err != nil {
		return BuyerOrderResponse{}, err
	}

	items, err := decodeItems(lines)
	if err != nil {
		return BuyerOrderResponse{}, err
	}

	o.ID = id
	o.Items = items
	o.TotalPrice = total
	o.DeliveryStatus = order.Status(status).String()
	o.PendingItems = dropped
	return o, nil
}
