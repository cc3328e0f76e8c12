package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Use case contracts the server depends on. The handlers in commands and
// queries satisfy them.
type (
	AddCartItemsHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemsCommand) (*cart.Cart, error)
	}
	UpdateCartQuantityHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCartQuantityCommand) (*cart.Cart, error)
	}
	ClearCartHandler interface {
		Handle(ctx context.Context, cmd commands.ClearCartCommand) error
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}
	SaveAddressHandler interface {
		Handle(ctx context.Context, cmd commands.SaveAddressCommand) error
	}
	ListReadyOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.AgentCommand) (commands.ListReadyOrdersResult, error)
	}
	AgentOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AgentOrderCommand) error
	}
	SendCompletionOtpHandler interface {
		Handle(ctx context.Context, cmd commands.SendCompletionOtpCommand) error
	}
	VerifyAndCompleteHandler interface {
		Handle(ctx context.Context, cmd commands.VerifyAndCompleteCommand) error
	}
	CompleteDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.AgentCommand) error
	}
	CreateAgentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateAgentCommand) (kernel.UUID, error)
	}
	SendAccountOtpHandler interface {
		Handle(ctx context.Context, cmd commands.SendAccountOtpCommand) error
	}
	VerifyAccountOtpHandler interface {
		Handle(ctx context.Context, cmd commands.VerifyAccountOtpCommand) error
	}

	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.GetCartQueryResponse, error)
	}
	GetBuyerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetBuyerOrdersQuery) ([]queries.BuyerOrderResponse, error)
	}
	GetBuyerOrderHandler interface {
		Handle(ctx context.Context, query queries.GetBuyerOrderQuery) (queries.BuyerOrderResponse, error)
	}
	GetAddressHandler interface {
		Handle(ctx context.Context, query queries.GetAddressQuery) (queries.AddressResponse, error)
	}
	GetOrderSheetHandler interface {
		Handle(ctx context.Context, query queries.GetOrderSheetQuery) (queries.OrderSheetResponse, error)
	}
	GetSellerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetSellerOrdersQuery) ([]queries.SellerOrderResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	AddCartItems       AddCartItemsHandler
	UpdateCartQuantity UpdateCartQuantityHandler
	ClearCart          ClearCartHandler
	PlaceOrder         PlaceOrderHandler
	SaveAddress        SaveAddressHandler
	ListReadyOrders    ListReadyOrdersHandler
	TakeOrder          AgentOrderHandler
	StoreOrderSheet    AgentOrderHandler
	SendCompletionOtp  SendCompletionOtpHandler
	VerifyAndComplete  VerifyAndCompleteHandler
	CompleteDelivery   CompleteDeliveryHandler
	CreateAgent        CreateAgentHandler
	SendAccountOtp     SendAccountOtpHandler
	VerifyAccountOtp   VerifyAccountOtpHandler

	// Query handlers
	GetCart         GetCartHandler
	GetBuyerOrders  GetBuyerOrdersHandler
	GetBuyerOrder   GetBuyerOrderHandler
	GetAddress      GetAddressHandler
	GetOrderSheet   GetOrderSheetHandler
	GetSellerOrders GetSellerOrdersHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// fail logs unexpected errors and renders err.
func (s *Server) fail(ctx echo.Context, err error) error {
	if statusOf(err) == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return writeError(ctx, err)
}

func empty(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, struct{}{})
}
