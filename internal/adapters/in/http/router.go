package http

import (
	"log/slog"
	"net/http"

	_ "github.com/lax56237/Daily-Drop/api/docs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what NewRouter needs besides the server itself.
type RouterConfig struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

// NewRouter builds the echo instance: CORS, request logging, panic
// recovery, OpenAPI request validation, bearer authentication and the routes.
func NewRouter(s *Server, doc *openapi3.T, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	requestLogger := logger.With("component", "http")
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.Any("error", v.Error))
			}
			requestLogger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	account := e.Group("/account", validate)
	account.POST("/otp", s.SendAccountOtp)
	account.POST("/otp/verify", s.VerifyAccountOtp)

	authenticate := Authenticate(cfg.JWTSecret)

	user := e.Group("/user", authenticate, RequireRole(RoleBuyer), validate)
	user.GET("/cart", s.GetCart)
	user.DELETE("/cart", s.ClearCart)
	user.POST("/cart/add", s.AddCartItems)
	user.PATCH("/cart/items", s.UpdateCartQuantity)
	user.POST("/place-order", s.PlaceOrder)
	user.GET("/orders", s.GetBuyerOrders)
	user.GET("/orders/:orderId", s.GetBuyerOrder)
	user.GET("/address", s.GetAddress)
	user.POST("/address", s.SaveAddress)

	delivery := e.Group("/delivery", authenticate, RequireRole(RoleAgent), validate)
	delivery.GET("/orders", s.ListReadyOrders)
	delivery.PUT("/take-order", s.TakeOrder)
	delivery.POST("/store-ordersheet", s.StoreOrderSheet)
	delivery.GET("/get-ordersheet", s.GetOrderSheet)
	delivery.POST("/send-otp", s.SendCompletionOtp)
	delivery.POST("/verify-otp", s.VerifyAndComplete)
	delivery.POST("/success_delivery", s.CompleteDelivery)
	delivery.POST("/agents", s.CreateAgent)

	seller := e.Group("/seller", authenticate, RequireRole(RoleSeller), validate)
	seller.GET("/orders", s.GetSellerOrders)

	return e, nil
}
