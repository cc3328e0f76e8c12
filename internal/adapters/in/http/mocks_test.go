package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lax56237/Daily-Drop/api"
	httpin "github.com/lax56237/Daily-Drop/internal/adapters/in/http"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/queries"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/ports"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type MockAddCartItemsHandler struct{ mock.Mock }

func (m *MockAddCartItemsHandler) Handle(ctx context.Context, cmd commands.AddCartItemsCommand) (*cart.Cart, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockListReadyOrdersHandler struct{ mock.Mock }

func (m *MockListReadyOrdersHandler) Handle(ctx context.Context, cmd commands.AgentCommand) (commands.ListReadyOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ListReadyOrdersResult), args.Error(1)
}

type MockAgentOrderHandler struct{ mock.Mock }

func (m *MockAgentOrderHandler) Handle(ctx context.Context, cmd commands.AgentOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVerifyAndCompleteHandler struct{ mock.Mock }

func (m *MockVerifyAndCompleteHandler) Handle(ctx context.Context, cmd commands.VerifyAndCompleteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVerifyAccountOtpHandler struct{ mock.Mock }

func (m *MockVerifyAccountOtpHandler) Handle(ctx context.Context, cmd commands.VerifyAccountOtpCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderSheetHandler struct{ mock.Mock }

func (m *MockGetOrderSheetHandler) Handle(ctx context.Context, query queries.GetOrderSheetQuery) (queries.OrderSheetResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderSheetResponse), args.Error(1)
}

type MockGetBuyerOrderHandler struct{ mock.Mock }

func (m *MockGetBuyerOrderHandler) Handle(ctx context.Context, query queries.GetBuyerOrderQuery) (queries.BuyerOrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.BuyerOrderResponse), args.Error(1)
}

type MockGetSellerOrdersHandler struct{ mock.Mock }

func (m *MockGetSellerOrdersHandler) Handle(ctx context.Context, query queries.GetSellerOrdersQuery) ([]queries.SellerOrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.SellerOrderResponse), args.Error(1)
}

// cartStore runs the real cart handler behind the router: it is the unit of
// work, the cart repository and the catalog at once, all kept in memory.
type cartStore struct {
	carts  map[string]*cart.Cart
	prices catalog.Resolution
}

func newCartStore(products ...catalog.Product) *cartStore {
	prices := catalog.NewResolution()
	for _, p := range products {
		prices.Add(p.Name, p)
	}
	return &cartStore{carts: make(map[string]*cart.Cart), prices: prices}
}

func (s *cartStore) Create() commands.CartUoW { return s }

func (s *cartStore) Begin(context.Context) error    { return nil }
func (s *cartStore) Commit(context.Context) error   { return nil }
func (s *cartStore) Rollback(context.Context) error { return nil }

func (s *cartStore) CartRepository() ports.CartRepository { return s }
func (s *cartStore) Catalog() ports.Catalog               { return s }

func (s *cartStore) Get(_ context.Context, buyer kernel.Email) (*cart.Cart, error) {
	c, ok := s.carts[buyer.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", buyer)
	}
	return c, nil
}

func (s *cartStore) GetForUpdate(ctx context.Context, buyer kernel.Email) (*cart.Cart, error) {
	return s.Get(ctx, buyer)
}

func (s *cartStore) Add(_ context.Context, c *cart.Cart) error {
	s.carts[c.Buyer().String()] = c
	return nil
}

func (s *cartStore) Update(_ context.Context, c *cart.Cart) error {
	s.carts[c.Buyer().String()] = c
	return nil
}

func (s *cartStore) Delete(_ context.Context, buyer kernel.Email) error {
	delete(s.carts, buyer.String())
	return nil
}

func (s *cartStore) Resolve(_ context.Context, refs []catalog.Ref) (catalog.Resolution, error) {
	out := catalog.NewResolution()
	for _, ref := range refs {
		if p, ok := s.prices.Lookup(ref.Name); ok {
			out.Add(ref.Name, p)
			continue
		}
		out.AddMissing(ref.Name)
	}
	return out, nil
}

func (s *cartStore) Sellers(context.Context, []kernel.UUID) (map[kernel.UUID]catalog.Seller, error) {
	return map[kernel.UUID]catalog.Seller{}, nil
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, h httpin.Handlers) *echo.Echo {
	t.Helper()

	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	e, err := httpin.NewRouter(httpin.NewServer(h, discardLogger()), doc, httpin.RouterConfig{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
	}, discardLogger())
	require.NoError(t, err)
	return e
}

func tokenFor(t *testing.T, p httpin.Principal) string {
	t.Helper()

	token, err := httpin.IssueToken(testSecret, p, time.Hour)
	require.NoError(t, err)
	return token
}

func buyerToken(t *testing.T) string {
	return tokenFor(t, httpin.Principal{Subject: "asha", Email: "asha@example.com", Role: httpin.RoleBuyer})
}

func agentToken(t *testing.T) string {
	return tokenFor(t, httpin.Principal{Subject: "ravi", Role: httpin.RoleAgent})
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return serve(e, req)
}
