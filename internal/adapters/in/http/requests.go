package http

import (
	"errors"
	"fmt"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AddressRequest is a delivery address as sent by the buyer app.
type AddressRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark"`
}

func (r *AddressRequest) fields() kernel.AddressFields {
	if r == nil {
		return kernel.AddressFields{}
	}
	return kernel.AddressFields{
		Name:     r.Name,
		Phone:    r.Phone,
		Pincode:  r.Pincode,
		Street:   r.Street,
		City:     r.City,
		State:    r.State,
		Landmark: r.Landmark,
	}
}

type CartItemRequest struct {
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	ProductID *uuid.UUID       `json:"productId,omitempty"`
}

// AddCartItemsRequest is the body of POST /user/cart/add. Email is optional
// and must match the authenticated buyer when present.
type AddCartItemsRequest struct {
	Email      string            `json:"email"`
	Items      []CartItemRequest `json:"items"`
	TotalPrice *decimal.Decimal  `json:"totalPrice,omitempty"`
}

func (r AddCartItemsRequest) toCommand(buyer kernel.Email) (commands.AddCartItemsCommand, error) {
	if r.Email != "" {
		claimed, err := kernel.NewEmail(r.Email)
		if err != nil {
			return commands.AddCartItemsCommand{}, err
		}
		if !claimed.IsEqual(buyer) {
			return commands.AddCartItemsCommand{}, fmt.Errorf("%w: cart of %s", ErrForbidden, claimed)
		}
	}

	var errList []error
	items := make([]commands.CartItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		input := commands.CartItemInput{Name: item.Name, Quantity: item.Quantity}
		if item.UnitPrice != nil {
			price, err := kernel.NewMoney(*item.UnitPrice)
			if err != nil {
				errList = append(errList, err)
				continue
			}
			input.UnitPrice = &price
		}
		if item.ProductID != nil {
			id, err := kernel.UUIDFromString(item.ProductID.String())
			if err != nil {
				errList = append(errList, err)
				continue
			}
			input.ProductID = &id
		}
		items = append(items, input)
	}

	var total *kernel.Money
	if r.TotalPrice != nil {
		money, err := kernel.NewMoney(*r.TotalPrice)
		if err != nil {
			errList = append(errList, err)
		} else {
			total = &money
		}
	}
	if err := errors.Join(errList...); err != nil {
		return commands.AddCartItemsCommand{}, err
	}

	return commands.NewAddCartItemsCommand(buyer, items, total)
}

type UpdateCartQuantityRequest struct {
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

type AddressBody struct {
	Address *AddressRequest `json:"address"`
}

type OrderRefRequest struct {
	OrderID string `json:"orderId"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

type CreateAgentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type VerifyAccountOtpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// CartResponse is the wire form of a cart.
type CartResponse struct {
	Email      string                 `json:"email"`
	Items      []queries.ItemResponse `json:"items"`
	TotalPrice decimal.Decimal        `json:"totalPrice"`
}

func newCartResponse(c *cart.Cart) CartResponse {
	resp := CartResponse{
		Email:      c.Buyer().String(),
		Items:      make([]queries.ItemResponse, 0, len(c.Lines())),
		TotalPrice: c.Total().Decimal(),
	}
	for _, line := range c.Lines() {
		item := queries.ItemResponse{
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		}
		if id := line.ProductID(); id != nil {
			b := id.Bytes()
			item.ProductID = &b
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

type ReadyOrderBuyer struct {
	Name    string                   `json:"name"`
	Phone   string                   `json:"phone"`
	Address *queries.AddressResponse `json:"address"`
}

// ReadyOrderResponse is one entry of the delivery agent's work list.
type ReadyOrderResponse struct {
	OrderID uuid.UUID                   `json:"orderId"`
	Buyer   ReadyOrderBuyer             `json:"buyer"`
	Items   []queries.SheetItemResponse `json:"items"`
}

func newReadyOrderResponse(sheet queries.OrderSheetResponse) ReadyOrderResponse {
	resp := ReadyOrderResponse{
		OrderID: sheet.OrderID,
		Buyer:   ReadyOrderBuyer{Address: sheet.User.Address},
		Items:   sheet.Items,
	}
	if addr := sheet.User.Address; addr != nil {
		resp.Buyer.Name = addr.Name
		resp.Buyer.Phone = addr.Phone
	}
	return resp
}

type PlaceOrderResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	UnroutedItems []string  `json:"unroutedItems,omitempty"`
}

type CreateAgentResponse struct {
	ID uuid.UUID `json:"id"`
}

// bind decodes the request body into dst.
func bind(ctx echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}
