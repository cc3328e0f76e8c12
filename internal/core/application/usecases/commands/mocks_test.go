package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/agent"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/cart"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/catalog"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/order"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/sellerorder"
	"github.com/lax56237/Daily-Drop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, email kernel.Email) (*cart.Cart, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetForUpdate(ctx context.Context, email kernel.Email) (*cart.Cart, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, email kernel.Email) error {
	return m.Called(ctx, email).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, email kernel.Email) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListFanOutIncomplete(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) RecordFanOutAttempt(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockOrderRepository) TransitionStatus(ctx context.Context, id kernel.UUID, from, to order.Status) (int64, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateFanOut(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockSellerOrderRepository struct{ mock.Mock }

func (m *MockSellerOrderRepository) AddAll(ctx context.Context, sos []*sellerorder.SellerOrder) (int64, error) {
	args := m.Called(ctx, sos)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerOrderRepository) TransitionAll(
	ctx context.Context,
	orderID kernel.UUID,
	from, to order.Status,
) (int64, error) {
	args := m.Called(ctx, orderID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerOrderRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*sellerorder.SellerOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sellerorder.SellerOrder), args.Error(1)
}

func (m *MockSellerOrderRepository) ListBySeller(ctx context.Context, sellerID kernel.UUID) ([]*sellerorder.SellerOrder, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sellerorder.SellerOrder), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgentRepository) GetByName(ctx context.Context, name string) (*agent.Agent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetByNameForUpdate(ctx context.Context, name string) (*agent.Agent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetByActiveOrder(ctx context.Context, orderID kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	return m.Called(ctx, a).Error(0)
}

type MockBuyerRepository struct{ mock.Mock }

func (m *MockBuyerRepository) Get(ctx context.Context, email kernel.Email) (*buyer.Buyer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*buyer.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) Save(ctx context.Context, b *buyer.Buyer) error {
	return m.Called(ctx, b).Error(0)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Resolve(ctx context.Context, refs []catalog.Ref) (catalog.Resolution, error) {
	args := m.Called(ctx, refs)
	return args.Get(0).(catalog.Resolution), args.Error(1)
}

func (m *MockCatalog) Sellers(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Seller, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]catalog.Seller), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockOtpStore struct{ mock.Mock }

func (m *MockOtpStore) Save(ctx context.Context, key, code string, expiresAt time.Time) error {
	return m.Called(ctx, key, code, expiresAt).Error(0)
}

func (m *MockOtpStore) Consume(ctx context.Context, key, code string, now time.Time) error {
	return m.Called(ctx, key, code, now).Error(0)
}

type fixedCode string

func (c fixedCode) Generate() (string, error) { return string(c), nil }

// MockUoW implements every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SellerOrderRepository() ports.SellerOrderRepository {
	return m.Called().Get(0).(ports.SellerOrderRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	return m.Called().Get(0).(ports.AgentRepository)
}

func (m *MockUoW) BuyerRepository() ports.BuyerRepository {
	return m.Called().Get(0).(ports.BuyerRepository)
}

func (m *MockUoW) Catalog() ports.Catalog {
	return m.Called().Get(0).(ports.Catalog)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockBuyerUoWFactory struct{ mock.Mock }

func (m *MockBuyerUoWFactory) Create() commands.BuyerUoW {
	return m.Called().Get(0).(commands.BuyerUoW)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	return m.Called().Get(0).(commands.AgentUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

// repos bundles a unit of work with one mock per repository. Repository
// getters may be called any number of times.
type repos struct {
	uow     *MockUoW
	carts   *MockCartRepository
	orders  *MockOrderRepository
	sellers *MockSellerOrderRepository
	agents  *MockAgentRepository
	buyers  *MockBuyerRepository
	catalog *MockCatalog
}

func newRepos() repos {
	r := repos{
		uow:     new(MockUoW),
		carts:   new(MockCartRepository),
		orders:  new(MockOrderRepository),
		sellers: new(MockSellerOrderRepository),
		agents:  new(MockAgentRepository),
		buyers:  new(MockBuyerRepository),
		catalog: new(MockCatalog),
	}
	r.uow.On("CartRepository").Return(r.carts).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("SellerOrderRepository").Return(r.sellers).Maybe()
	r.uow.On("AgentRepository").Return(r.agents).Maybe()
	r.uow.On("BuyerRepository").Return(r.buyers).Maybe()
	r.uow.On("Catalog").Return(r.catalog).Maybe()
	return r
}

func (r repos) assert(t *testing.T) {
	t.Helper()
	r.uow.AssertExpectations(t)
	r.carts.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.sellers.AssertExpectations(t)
	r.agents.AssertExpectations(t)
	r.buyers.AssertExpectations(t)
	r.catalog.AssertExpectations(t)
}

func email(t *testing.T, raw string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func addressFields() kernel.AddressFields {
	return kernel.AddressFields{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Pincode: "560001",
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
	}
}

func address(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(addressFields())
	require.NoError(t, err)
	return a
}

func cartWith(t *testing.T, buyerEmail kernel.Email, lines ...cart.Line) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(buyerEmail)
	require.NoError(t, err)
	if len(lines) > 0 {
		require.NoError(t, c.AddLines(lines...))
	}
	return c
}

func line(t *testing.T, name string, qty int, price string) cart.Line {
	t.Helper()
	l, err := cart.NewLine(name, qty, money(t, price), nil)
	require.NoError(t, err)
	return l
}

func orderIn(t *testing.T, buyerEmail kernel.Email, status order.Status, names ...string) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(names))
	for _, n := range names {
		item, err := order.NewItem(n, 1, money(t, "10"), nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerEmail, address(t), items, money(t, "10").Times(len(names)),
		status, time.Now(), nil,
	)
	require.NoError(t, err)
	return o
}

func orderWithProduct(t *testing.T, buyerEmail kernel.Email, name string, productID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(name, 1, money(t, "10"), &productID)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerEmail, address(t), []order.Item{item}, money(t, "10"),
		order.Ready, time.Now(), nil,
	)
	require.NoError(t, err)
	return o
}

func readyAgent(t *testing.T, name string) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), name, "9000000000")
	require.NoError(t, err)
	return a
}

// deliveringAgent returns an agent holding orderID with a cached sheet and the given pending code.
func deliveringAgent(t *testing.T, name string, orderID kernel.UUID, code string) *agent.Agent {
	t.Helper()
	sheet := agent.OrderSheet{OrderID: orderID}
	a, err := agent.RestoreAgent(kernel.NewUUID(), name, "9000000000", agent.OnDelivery, &orderID, &sheet, code)
	require.NoError(t, err)
	return a
}

func product(name string) catalog.Product {
	return catalog.Product{ID: kernel.NewUUID(), Name: name, SellerID: kernel.NewUUID()}
}

func resolutionOf(products ...catalog.Product) catalog.Resolution {
	r := catalog.NewResolution()
	for _, p := range products {
		r.Add(p.Name, p)
	}
	return r
}
