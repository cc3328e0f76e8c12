package buyerrepo

import (
	"time"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
)

// BuyerDTO is the buyers table row. AddressSet distinguishes a saved address
// from the zero columns of a buyer who never placed an order.
type BuyerDTO struct {
	Email      string             `gorm:"primaryKey"`
	Name       string             `gorm:"not null;default:''"`
	Address    columns.AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	AddressSet bool               `gorm:"not null;default:false"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for buyers.
func (BuyerDTO) TableName() string {
	return "buyers"
}

func fromDomain(b *buyer.Buyer) BuyerDTO {
	dto := BuyerDTO{
		Email: b.Email().String(),
		Name:  b.Name(),
	}
	if a := b.Address(); a != nil {
		dto.Address = columns.FromAddress(*a)
		dto.AddressSet = true
	}
	return dto
}

func toDomain(dto BuyerDTO) (*buyer.Buyer, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.AddressSet {
		a, addrErr := dto.Address.ToDomain()
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	return buyer.RestoreBuyer(email, dto.Name, address)
}
