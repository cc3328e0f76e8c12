// Package sellerorderrepo persists seller orders. (order_id, item_name) is
// unique so that repeated fan-out of the same item inserts nothing.
package sellerorderrepo

import (
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"

	"github.com/google/uuid"
)

// SellerOrderDTO is the seller_orders table row.
type SellerOrderDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	SellerID       uuid.UUID          `gorm:"type:uuid;index;not null"`
	OrderID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_seller_orders_order_item,priority:1"`
	ItemName       string             `gorm:"not null;uniqueIndex:idx_seller_orders_order_item,priority:2"`
	Quantity       int                `gorm:"not null"`
	CustomerEmail  string             `gorm:"not null"`
	Customer       columns.AddressDTO `gorm:"embedded;embeddedPrefix:customer_"`
	DeliveryStatus int                `gorm:"type:smallint;not null"`
	CreatedAt      time.Time          `gorm:"index"`
}

// TableName specifies the database table name for seller orders.
func (SellerOrderDTO) TableName() string {
	return "seller_orders"
}

func fromDomain(so *sellerorder.SellerOrder) SellerOrderDTO {
	return SellerOrderDTO{
		ID:             so.ID().Bytes(),
		SellerID:       so.SellerID().Bytes(),
		OrderID:        so.OrderID().Bytes(),
		ItemName:       so.ItemName(),
		Quantity:       so.Quantity(),
		CustomerEmail:  so.Customer().Email.String(),
		Customer:       columns.FromAddress(so.Customer().Address),
		DeliveryStatus: int(so.Status()),
	}
}

func toDomain(dto SellerOrderDTO) (*sellerorder.SellerOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}
	address, err := dto.Customer.ToDomain()
	if err != nil {
		return nil, err
	}

	return sellerorder.RestoreSellerOrder(
		id, orderID, sellerID,
		dto.ItemName, dto.Quantity,
		sellerorder.Customer{Email: email, Address: address},
		order.Status(dto.DeliveryStatus),
	)
}
