package repository

import (
	"context"
	"time"

	"github.com/qrorder/qr-order-api/internal/domain"
)

//go:generate mockery --name RestaurantRepository --output ../mocks
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	// CreateWithOwner persists the owner, the restaurant, and the owner's
	// license in one transaction, writing the owner's restaurant binding
	// once the restaurant row exists.
	CreateWithOwner(ctx context.Context, restaurant *domain.Restaurant, owner *domain.User, license *domain.License) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Restaurant, error)
}

//go:generate mockery --name ConfigRepository --output ../mocks
type ConfigRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID string) (*domain.RestaurantConfig, error)
	Upsert(ctx context.Context, config *domain.RestaurantConfig) error
}

//go:generate mockery --name LicenseRepository --output ../mocks
type LicenseRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.License, error)
	Upsert(ctx context.Context, license *domain.License) error
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

//go:generate mockery --name CategoryRepository --output ../mocks
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Category, error)
	ListActive(ctx context.Context, restaurantID string) ([]domain.Category, error)
}

//go:generate mockery --name MenuItemRepository --output ../mocks
type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]domain.MenuItem, error)
	IsReferenced(ctx context.Context, id string) (bool, error)
}

//go:generate mockery --name TableRepository --output ../mocks
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id string) (*domain.Table, error)
	FindByCode(ctx context.Context, code string) ([]domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Table, error)
}

//go:generate mockery --name OrderRepository --output ../mocks
type OrderRepository interface {
	// CreateWithItems persists the order and all its items in one transaction.
	CreateWithItems(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	ListByTable(ctx context.Context, tableID string) ([]domain.Order, error)
	// UpdateStatus writes the status unconditionally (lenient mode).
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// UpdateStatusGuard writes the status only when the current status still
	// matches from; returns the number of rows affected.
	UpdateStatusGuard(ctx context.Context, id string, from, to domain.OrderStatus) (int64, error)
	ListPaidBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]domain.Order, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Restaurant() RestaurantRepository
	Config() ConfigRepository
	License() LicenseRepository
	User() UserRepository
	Category() CategoryRepository
	MenuItem() MenuItemRepository
	Table() TableRepository
	Order() OrderRepository
}
