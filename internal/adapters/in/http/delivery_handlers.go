package http

import (
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListReadyOrders handles GET /delivery/orders. An agent that is already
// delivering gets a redirect to its order sheet instead of the list.
func (s *Server) ListReadyOrders(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAgentCommand(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ListReadyOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	if result.Redirect {
		return ctx.JSON(http.StatusOK, RedirectResponse{
			Redirect: "delivery",
			Status:   "redirect",
			Message:  "already on delivery",
		})
	}
	if result.Healed {
		s.logger.InfoContext(ctx.Request().Context(), "agent reset to ready", "agent", name)
	}

	response := make([]ReadyOrderResponse, len(result.Orders))
	for i, sheet := range result.Orders {
		response[i] = newReadyOrderResponse(queries.NewOrderSheetResponse(sheet))
	}
	return ctx.JSON(http.StatusOK, response)
}

// TakeOrder handles PUT /delivery/take-order. Losing the claim race yields
// 409 so the client can refresh its list.
func (s *Server) TakeOrder(ctx echo.Context) error {
	return s.agentOrder(ctx, s.h.TakeOrder)
}

// StoreOrderSheet handles POST /delivery/store-ordersheet.
func (s *Server) StoreOrderSheet(ctx echo.Context) error {
	return s.agentOrder(ctx, s.h.StoreOrderSheet)
}

func (s *Server) agentOrder(ctx echo.Context, handler AgentOrderHandler) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req OrderRefRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAgentOrderCommand(name, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}

// GetOrderSheet handles GET /delivery/get-ordersheet.
func (s *Server) GetOrderSheet(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderSheetQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	sheet, err := s.h.GetOrderSheet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, sheet)
}

// SendCompletionOtp handles POST /delivery/send-otp. The code reaches the
// buyer through the notifier, never through the response.
func (s *Server) SendCompletionOtp(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req EmailRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	buyer, err := kernel.NewEmail(req.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSendCompletionOtpCommand(name, buyer)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SendCompletionOtp.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}

// VerifyAndComplete handles POST /delivery/verify-otp. A matching code
// completes the delivery in the same request.
func (s *Server) VerifyAndComplete(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req VerifyCodeRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyAndCompleteCommand(name, req.Code)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.VerifyAndComplete.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CodeResponse{Success: true})
}

// CompleteDelivery handles POST /delivery/success_delivery.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAgentCommand(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return empty(ctx)
}

// CreateAgent handles POST /delivery/agents. Agents register their own
// profile, so the name must match the token subject.
func (s *Server) CreateAgent(ctx echo.Context) error {
	name, err := agentName(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CreateAgentRequest
	if err = bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}
	if req.Name != name {
		return s.fail(ctx, ErrForbidden)
	}

	cmd, err := commands.NewCreateAgentCommand(req.Name, req.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.CreateAgent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateAgentResponse{ID: id.Bytes()})
}
