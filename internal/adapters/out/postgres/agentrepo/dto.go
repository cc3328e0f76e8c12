// Package agentrepo persists delivery agents. The cached order sheet is stored
// as jsonb in the shape the delivery app renders.
package agentrepo

import (
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/columns"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentDTO is the delivery_agents table row. The unique index on
// active_order_id keeps two agents from holding the same order.
type AgentDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"uniqueIndex;not null"`
	Phone          string         `gorm:"not null"`
	DeliveryStatus int            `gorm:"type:smallint;not null"`
	ActiveOrderID  *uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	OrderSheet     *OrderSheetDTO `gorm:"type:jsonb;serializer:json"`
	PendingOtp     *string        `gorm:"type:varchar(4)"`
}

// TableName specifies the database table name for agents.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

// OrderSheetDTO is the order_sheet column.
type OrderSheetDTO struct {
	OrderID uuid.UUID      `json:"orderId"`
	User    SheetUserDTO   `json:"user"`
	Items   []SheetItemDTO `json:"items"`
}

// SheetUserDTO is the buyer section of a stored order sheet.
type SheetUserDTO struct {
	Email   string      `json:"email"`
	Address *AddressDTO `json:"address"`
}

// AddressDTO is an address inside a stored order sheet.
type AddressDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark,omitempty"`
}

// SheetItemDTO is one item of a stored order sheet.
type SheetItemDTO struct {
	ItemName string      `json:"itemName"`
	Quantity int         `json:"quantity"`
	Product  *ProductDTO `json:"product"`
	Seller   *SellerDTO  `json:"seller"`
}

// ProductDTO is the product detail of a sheet item.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
	Weight      string          `json:"weight,omitempty"`
	Description string          `json:"description,omitempty"`
}

// SellerDTO is the seller detail of a sheet item.
type SellerDTO struct {
	SellerID uuid.UUID `json:"sellerId"`
	ShopName string    `json:"shopName"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Pincode  string    `json:"pincode"`
	Landmark string    `json:"landmark,omitempty"`
}

func fromDomain(a *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:             a.ID().Bytes(),
		Name:           a.Name(),
		Phone:          a.Phone(),
		DeliveryStatus: int(a.Status()),
		ActiveOrderID:  columns.UUIDPtr(a.ActiveOrderID()),
	}
	if sheet, err := a.OrderSheet(); err == nil {
		s := sheetFromDomain(*sheet)
		dto.OrderSheet = &s
	}
	if code := a.PendingCode(); code != "" {
		dto.PendingOtp = &code
	}
	return dto
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	activeOrderID, err := columns.DomainUUIDPtr(dto.ActiveOrderID)
	if err != nil {
		return nil, err
	}

	var sheet *agent.OrderSheet
	if dto.OrderSheet != nil {
		s, sheetErr := sheetToDomain(*dto.OrderSheet)
		if sheetErr != nil {
			return nil, sheetErr
		}
		sheet = &s
	}

	var code string
	if dto.PendingOtp != nil {
		code = *dto.PendingOtp
	}

	return agent.RestoreAgent(id, dto.Name, dto.Phone, agent.Status(dto.DeliveryStatus), activeOrderID, sheet, code)
}

func sheetFromDomain(s agent.OrderSheet) OrderSheetDTO {
	dto := OrderSheetDTO{
		OrderID: s.OrderID.Bytes(),
		User:    SheetUserDTO{Email: s.Buyer.Email},
		Items:   make([]SheetItemDTO, 0, len(s.Items)),
	}
	if f := s.Buyer.Address; f != nil {
		dto.User.Address = &AddressDTO{
			Name: f.Name, Phone: f.Phone, Pincode: f.Pincode,
			Street: f.Street, City: f.City, State: f.State, Landmark: f.Landmark,
		}
	}
	for _, item := range s.Items {
		line := SheetItemDTO{ItemName: item.ItemName, Quantity: item.Quantity}
		if p := item.Product; p != nil {
			line.Product = &ProductDTO{
				ID: p.ID.Bytes(), Name: p.Name, SellerID: p.SellerID.Bytes(), Price: p.Price.Decimal(),
				ImageURL: p.ImageURL, Category: p.Category, Weight: p.Weight, Description: p.Description,
			}
		}
		if sl := item.Seller; sl != nil {
			line.Seller = &SellerDTO{
				SellerID: sl.ID.Bytes(), ShopName: sl.ShopName, Phone: sl.Phone, Address: sl.Address,
				City: sl.City, State: sl.State, Pincode: sl.Pincode, Landmark: sl.Landmark,
			}
		}
		dto.Items = append(dto.Items, line)
	}
	return dto
}

func sheetToDomain(dto OrderSheetDTO) (agent.OrderSheet, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return agent.OrderSheet{}, err
	}

	sheet := agent.OrderSheet{
		OrderID: orderID,
		Buyer:   agent.SheetBuyer{Email: dto.User.Email},
		Items:   make([]agent.SheetItem, 0, len(dto.Items)),
	}
	if a := dto.User.Address; a != nil {
		sheet.Buyer.Address = &kernel.AddressFields{
			Name: a.Name, Phone: a.Phone, Pincode: a.Pincode,
			Street: a.Street, City: a.City, State: a.State, Landmark: a.Landmark,
		}
	}

	for _, item := range dto.Items {
		line := agent.SheetItem{ItemName: item.ItemName, Quantity: item.Quantity}
		if p := item.Product; p != nil {
			product, productErr := productToDomain(*p)
			if productErr != nil {
				return agent.OrderSheet{}, productErr
			}
			line.Product = &product
		}
		if s := item.Seller; s != nil {
			sellerID, idErr := kernel.UUIDFromBytes(s.SellerID[:])
			if idErr != nil {
				return agent.OrderSheet{}, idErr
			}
			line.Seller = &catalog.Seller{
				ID: sellerID, ShopName: s.ShopName, Phone: s.Phone, Address: s.Address,
				City: s.City, State: s.State, Pincode: s.Pincode, Landmark: s.Landmark,
			}
		}
		sheet.Items = append(sheet.Items, line)
	}
	return sheet, nil
}

func productToDomain(p ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(p.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(p.SellerID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.NewMoney(p.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.Product{
		ID: id, Name: p.Name, SellerID: sellerID, Price: price,
		ImageURL: p.ImageURL, Category: p.Category, Weight: p.Weight, Description: p.Description,
	}, nil
}
