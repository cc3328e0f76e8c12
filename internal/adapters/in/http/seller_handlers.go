package http

import (
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetSellerOrders handles GET /seller/orders.
func (s *Server) GetSellerOrders(ctx echo.Context) error {
	id, err := sellerID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetSellerOrdersQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.GetSellerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}
