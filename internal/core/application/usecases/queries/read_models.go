package queries

import (
	"encoding/json"
	"fmt"

	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemResponse is a cart or order line.
type ItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ProductID *uuid.UUID      `json:"productId,omitempty"`
}

// AddressResponse is a delivery address.
type AddressResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark,omitempty"`
}

// OrderSheetResponse is the order sheet a delivery agent works from. The JSON
// shape is the one stored in delivery_agents.order_sheet.
type OrderSheetResponse struct {
	OrderID uuid.UUID           `json:"orderId"`
	User    SheetUserResponse   `json:"user"`
	Items   []SheetItemResponse `json:"items"`
}

type SheetUserResponse struct {
	Email   string           `json:"email"`
	Address *AddressResponse `json:"address"`
}

type SheetItemResponse struct {
	ItemName string           `json:"itemName"`
	Quantity int              `json:"quantity"`
	Product  *ProductResponse `json:"product"`
	Seller   *SellerResponse  `json:"seller"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
	Weight      string          `json:"weight,omitempty"`
	Description string          `json:"description,omitempty"`
}

type SellerResponse struct {
	SellerID uuid.UUID `json:"sellerId"`
	ShopName string    `json:"shopName"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Pincode  string    `json:"pincode"`
	Landmark string    `json:"landmark,omitempty"`
}

// NewOrderSheetResponse maps a domain order sheet to its read model.
func NewOrderSheetResponse(s agent.OrderSheet) OrderSheetResponse {
	resp := OrderSheetResponse{
		OrderID: s.OrderID.Bytes(),
		User:    SheetUserResponse{Email: s.Buyer.Email},
		Items:   make([]SheetItemResponse, 0, len(s.Items)),
	}
	if f := s.Buyer.Address; f != nil {
		addr := addressFromFields(*f)
		resp.User.Address = &addr
	}

	for _, item := range s.Items {
		line := SheetItemResponse{ItemName: item.ItemName, Quantity: item.Quantity}
		if p := item.Product; p != nil {
			line.Product = &ProductResponse{
				ID:          p.ID.Bytes(),
				Name:        p.Name,
				SellerID:    p.SellerID.Bytes(),
				Price:       p.Price.Decimal(),
				ImageURL:    p.ImageURL,
				Category:    p.Category,
				Weight:      p.Weight,
				Description: p.Description,
			}
		}
		if sl := item.Seller; sl != nil {
			line.Seller = &SellerResponse{
				SellerID: sl.ID.Bytes(),
				ShopName: sl.ShopName,
				Phone:    sl.Phone,
				Address:  sl.Address,
				City:     sl.City,
				State:    sl.State,
				Pincode:  sl.Pincode,
				Landmark: sl.Landmark,
			}
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

func addressFromFields(f kernel.AddressFields) AddressResponse {
	return AddressResponse{
		Name:     f.Name,
		Phone:    f.Phone,
		Pincode:  f.Pincode,
		Street:   f.Street,
		City:     f.City,
		State:    f.State,
		Landmark: f.Landmark,
	}
}

// decodeItems reads a jsonb lines column.
func decodeItems(raw []byte) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode lines: %w", err)
	}
	return items, nil
}
