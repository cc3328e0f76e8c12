package queries

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler serves the seller's incoming items.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a GetSellerOrdersQueryHandler.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle lists the seller orders, newest first.
func (h GetSellerOrdersQueryHandler) Handle(ctx context.Context, query GetSellerOrdersQuery) ([]SellerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_name,
			quantity,
			customer_email,
			customer_name,
			customer_phone,
			customer_pincode,
			customer_street,
			customer_city,
			customer_state,
			customer_landmark,
			delivery_status
		FROM seller_orders
		WHERE seller_id = ?
		ORDER BY created_at DESC, order_id, item_name
	`, query.SellerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sellerOrders := make([]SellerOrderResponse, 0)
	for rows.Next() {
		var (
			so     SellerOrderResponse
			status int
		)
		err = rows.Scan(
			&so.ID,
			&so.OrderID,
			&so.ItemName,
			&so.Quantity,
			&so.CustomerEmail,
			&so.Customer.Name,
			&so.Customer.Phone,
			&so.Customer.Pincode,
			&so.Customer.Street,
			&so.Customer.City,
			&so.Customer.State,
			&so.Customer.Landmark,
			&status,
		)
		if err != nil {
			return nil, err
		}
		so.DeliveryStatus = order.Status(status).String()
		sellerOrders = append(sellerOrders, so)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sellerOrders, nil
}
