package postgres

import (
	"github.com/qrorder/qr-order-api/internal/config"
	"github.com/qrorder/qr-order-api/internal/repository"
)

type postgresRepository struct {
	restaurantRepo repository.RestaurantRepository
	configRepo     repository.ConfigRepository
	licenseRepo    repository.LicenseRepository
	userRepo       repository.UserRepository
	categoryRepo   repository.CategoryRepository
	menuItemRepo   repository.MenuItemRepository
	tableRepo      repository.TableRepository
	orderRepo      repository.OrderRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		restaurantRepo: NewRestaurantRepository(dbConnections.Writer, dbConnections.Reader),
		configRepo:     NewConfigRepository(dbConnections.Writer, dbConnections.Reader),
		licenseRepo:    NewLicenseRepository(dbConnections.Writer, dbConnections.Reader),
		userRepo:       NewUserRepository(dbConnections.Writer, dbConnections.Reader),
		categoryRepo:   NewCategoryRepository(dbConnections.Writer, dbConnections.Reader),
		menuItemRepo:   NewMenuItemRepository(dbConnections.Writer, dbConnections.Reader),
		tableRepo:      NewTableRepository(dbConnections.Writer, dbConnections.Reader),
		orderRepo:      NewOrderRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Restaurant() repository.RestaurantRepository {
	return r.restaurantRepo
}

func (r *postgresRepository) Config() repository.ConfigRepository {
	return r.configRepo
}

func (r *postgresRepository) License() repository.LicenseRepository {
	return r.licenseRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Category() repository.CategoryRepository {
	return r.categoryRepo
}

func (r *postgresRepository) MenuItem() repository.MenuItemRepository {
	return r.menuItemRepo
}

func (r *postgresRepository) Table() repository.TableRepository {
	return r.tableRepo
}

func (r *postgresRepository) Order() repository.OrderRepository {
	return r.orderRepo
}
