// Package catalogrepo reads products and seller details. The tables are owned by
// the catalog service; this package never writes them outside of tests.
package catalogrepo

import (
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products table row.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"uniqueIndex;not null"`
	SellerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL    string
	Category    string
	Weight      string
	Description string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// SellerDTO is the seller_details table row.
type SellerDTO struct {
	SellerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopName string    `gorm:"not null"`
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
	Landmark string
}

// TableName specifies the database table name for seller details.
func (SellerDTO) TableName() string {
	return "seller_details"
}

func productToDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}

	return catalog.Product{
		ID:          id,
		Name:        dto.Name,
		SellerID:    sellerID,
		Price:       price,
		ImageURL:    dto.ImageURL,
		Category:    dto.Category,
		Weight:      dto.Weight,
		Description: dto.Description,
	}, nil
}

func sellerToDomain(dto SellerDTO) (catalog.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return catalog.Seller{}, err
	}

	return catalog.Seller{
		ID:       id,
		ShopName: dto.ShopName,
		Phone:    dto.Phone,
		Address:  dto.Address,
		City:     dto.City,
		State:    dto.State,
		Pincode:  dto.Pincode,
		Landmark: dto.Landmark,
	}, nil
}
