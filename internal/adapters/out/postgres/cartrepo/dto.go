// Package cartrepo persists carts. A cart is one row keyed by buyer email with
// its lines in a jsonb column.
package cartrepo

import (
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is the carts table row.
type CartDTO struct {
	Email     string          `gorm:"primaryKey"`
	Lines     []LineDTO       `gorm:"type:jsonb;serializer:json;not null"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for carts.
func (CartDTO) TableName() string {
	return "carts"
}

// LineDTO is one element of the lines column.
type LineDTO struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ProductID *uuid.UUID      `json:"productId,omitempty"`
}

func fromDomain(c *cart.Cart) CartDTO {
	lines := c.Lines()
	dto := CartDTO{
		Email: c.Buyer().String(),
		Lines: make([]LineDTO, 0, len(lines)),
		Total: c.Total().Decimal(),
	}
	for _, l := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
			ProductID: columns.UUIDPtr(l.ProductID()),
		})
	}
	return dto
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	buyer, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		productID, idErr := columns.DomainUUIDPtr(l.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		line, lineErr := cart.NewLine(l.Name, l.Quantity, price, productID)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(buyer, lines)
}
