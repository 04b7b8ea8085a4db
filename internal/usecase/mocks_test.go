package usecase_test

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/payment"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByCategory(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error) {
	args := m.Called(ctx, category, excludeID, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListTopRated(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) FindForUpdate(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *InventoryRepoMock) Decrement(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) AttachPaymentSession(ctx context.Context, orderID int64, sessionID string) error {
	args := m.Called(ctx, orderID, sessionID)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByPaymentSessionID(ctx context.Context, sessionID string) (model.Order, bool, error) {
	args := m.Called(ctx, sessionID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type AnalyticsRepoMock struct{ mock.Mock }

func (m *AnalyticsRepoMock) Create(ctx context.Context, ev model.AnalyticsEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) CreateSession(ctx context.Context, items []payment.LineItem, successURL, cancelURL string, metadata map[string]string) (payment.Session, error) {
	args := m.Called(ctx, items, successURL, cancelURL, metadata)
	s, _ := args.Get(0).(payment.Session)
	return s, args.Error(1)
}

func (m *GatewayMock) VerifyAndParse(payload []byte, sigHeader string) (payment.Event, error) {
	args := m.Called(payload, sigHeader)
	ev, _ := args.Get(0).(payment.Event)
	return ev, args.Error(1)
}

// =====================
// Tx stubs（トランザクションをそのまま実行するだけ）
// =====================

type stubTxRepos struct {
	products   repo.ProductRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	inventory  repo.InventoryRepository
	analytics  repo.AnalyticsRepository
}

func (r *stubTxRepos) Products() repo.ProductRepository     { return r.products }
func (r *stubTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *stubTxRepos) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *stubTxRepos) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *stubTxRepos) Analytics() repo.AnalyticsRepository  { return r.analytics }

type stubTxManager struct {
	repos repo.TxRepos
}

func (s *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s.repos)
}
