package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
)

// mockRepository bundles the per-entity mocks behind the aggregate
// repository interface used by the services.
type mockRepository struct {
	restaurant *MockRestaurantRepository
	config     *MockConfigRepository
	license    *MockLicenseRepository
	user       *MockUserRepository
	category   *MockCategoryRepository
	menuItem   *MockMenuItemRepository
	table      *MockTableRepository
	order      *MockOrderRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		restaurant: new(MockRestaurantRepository),
		config:     new(MockConfigRepository),
		license:    new(MockLicenseRepository),
		user:       new(MockUserRepository),
		category:   new(MockCategoryRepository),
		menuItem:   new(MockMenuItemRepository),
		table:      new(MockTableRepository),
		order:      new(MockOrderRepository),
	}
}

func (r *mockRepository) Restaurant() repository.RestaurantRepository { return r.restaurant }
func (r *mockRepository) Config() repository.ConfigRepository         { return r.config }
func (r *mockRepository) License() repository.LicenseRepository       { return r.license }
func (r *mockRepository) User() repository.UserRepository             { return r.user }
func (r *mockRepository) Category() repository.CategoryRepository     { return r.category }
func (r *mockRepository) MenuItem() repository.MenuItemRepository     { return r.menuItem }
func (r *mockRepository) Table() repository.TableRepository           { return r.table }
func (r *mockRepository) Order() repository.OrderRepository           { return r.order }

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) CreateWithOwner(ctx context.Context, restaurant *domain.Restaurant, owner *domain.User, license *domain.License) error {
	args := m.Called(ctx, restaurant, owner, license)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) GetByRestaurantID(ctx context.Context, restaurantID string) (*domain.RestaurantConfig, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantConfig), args.Error(1)
}

func (m *MockConfigRepository) Upsert(ctx context.Context, config *domain.RestaurantConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) GetByUserID(ctx context.Context, userID string) (*domain.License, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.License), args.Error(1)
}

func (m *MockLicenseRepository) Upsert(ctx context.Context, license *domain.License) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListActive(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ListAvailable(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, ids)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) IsReferenced(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) FindByCode(ctx context.Context, code string) ([]domain.Table, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]domain.Table), args.Error(1)
}

func (m *MockTableRepository) Update(ctx context.Context, table *domain.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTableRepository) List(ctx context.Context) ([]domain.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Table), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByTable(ctx context.Context, tableID string) ([]domain.Order, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusGuard(ctx context.Context, id string, from, to domain.OrderStatus) (int64, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListPaidBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, start, end)
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastOrder(restaurantID string, order *dto.OrderResponse) {
	m.Called(restaurantID, order)
}

type MockQRStore struct {
	mock.Mock
}

func (m *MockQRStore) Put(ctx context.Context, key string, png []byte) error {
	args := m.Called(ctx, key, png)
	return args.Error(0)
}
