// Package orderrepo persists orders. Items are a jsonb snapshot; the status is
// a smallint written only through guarded transitions.
package orderrepo

import (
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row.
type OrderDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Email            string             `gorm:"index;not null"`
	ShipTo           columns.AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`
	Lines            []ItemDTO          `gorm:"type:jsonb;serializer:json;not null"`
	Total            decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	DeliveryStatus   int                `gorm:"type:smallint;index;not null"`
	OrderDate        time.Time          `gorm:"index;not null"`
	FanOutIncomplete bool               `gorm:"index;not null;default:false"`
	DroppedItems     pq.StringArray     `gorm:"type:text[];not null;default:'{}'"`
	FanOutAttempted  *time.Time         `gorm:"column:fan_out_attempted_at"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the lines column.
type ItemDTO struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ProductID *uuid.UUID      `json:"productId,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		ID:               o.ID().Bytes(),
		Email:            o.Buyer().String(),
		ShipTo:           columns.FromAddress(o.ShipTo()),
		Lines:            make([]ItemDTO, 0, len(items)),
		Total:            o.Total().Decimal(),
		DeliveryStatus:   int(o.Status()),
		OrderDate:        o.PlacedAt(),
		FanOutIncomplete: o.FanOutIncomplete(),
		DroppedItems:     columns.StringArray(o.DroppedItems()),
	}
	for _, i := range items {
		dto.Lines = append(dto.Lines, ItemDTO{
			Name:      i.Name(),
			Quantity:  i.Quantity(),
			UnitPrice: i.UnitPrice().Decimal(),
			ProductID: columns.UUIDPtr(i.ProductID()),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyer, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	shipTo, err := dto.ShipTo.ToDomain()
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		productID, idErr := columns.DomainUUIDPtr(l.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(l.Name, l.Quantity, price, productID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, buyer, shipTo, items, total, order.Status(dto.DeliveryStatus), dto.OrderDate, dto.DroppedItems)
}
