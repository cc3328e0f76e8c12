package http

import (
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetCart handles GET /user/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCartQuery(buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, c)
}

// AddCartItems handles POST /user/cart/add.
func (s *Server) AddCartItems(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddCartItemsRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := req.toCommand(buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.AddCartItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]CartResponse{"cart": newCartResponse(c)})
}

// UpdateCartQuantity handles PATCH /user/cart/items.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdateCartQuantityRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateCartQuantityCommand(buyer, req.Name, req.Delta)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.UpdateCartQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]CartResponse{"cart": newCartResponse(c)})
}

// ClearCart handles DELETE /user/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}

// PlaceOrder handles POST /user/place-order. Items that could not be routed
// to a seller are listed in the response; the order is placed regardless.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddressBody
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(buyer, req.Address.fields())
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := PlaceOrderResponse{OrderID: result.OrderID.Bytes()}
	if result.Warning != nil {
		resp.UnroutedItems = result.Warning.Dropped
	}
	return ctx.JSON(http.StatusCreated, resp)
}

// GetBuyerOrders handles GET /user/orders.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.GetBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetBuyerOrder handles GET /user/orders/{orderId}.
func (s *Server) GetBuyerOrder(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var orderID uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	id, err := kernel.UUIDFromString(orderID.String())
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetBuyerOrderQuery(buyer, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetBuyerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, o)
}

// GetAddress handles GET /user/address.
func (s *Server) GetAddress(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetAddressQuery(buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	addr, err := s.h.GetAddress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, addr)
}

// SaveAddress handles POST /user/address.
func (s *Server) SaveAddress(ctx echo.Context) error {
	buyer, err := buyerEmail(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AddressBody
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSaveAddressCommand(buyer, req.Address.fields())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SaveAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}
