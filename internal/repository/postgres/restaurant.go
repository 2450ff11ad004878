package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type RestaurantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRestaurantRepository(writerDB, readerDB *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if err := r.writerDB.WithContext(ctx).Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// CreateWithOwner provisions the owner account, the restaurant, and the
// owner's license atomically. The owner row must exist before the
// restaurant (owner_id FK), so the restaurant binding is written back to
// the owner inside the same transaction once the restaurant ID is known.
func (r *RestaurantRepository) CreateWithOwner(ctx context.Context, restaurant *domain.Restaurant, owner *domain.User, license *domain.License) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		restaurant.OwnerID = owner.ID
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}

		owner.RestaurantID = &restaurant.ID
		if err := tx.Model(&domain.User{}).Where("id = ?", owner.ID).
			Update("restaurant_id", restaurant.ID).Error; err != nil {
			return err
		}

		license.UserID = owner.ID
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expiry_date", "updated_at"}),
		}).Create(license).Error
	})
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := r.readerDB.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.writerDB.WithContext(ctx).Save(restaurant).Error
}

// Delete removes the restaurant and, through FK cascades, everything it
// owns (categories, menu items, tables, orders).
func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Restaurant{}, "id = ?", id).Error
}

func (r *RestaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := r.readerDB.WithContext(ctx).Order("name").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

type ConfigRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewConfigRepository(writerDB, readerDB *gorm.DB) *ConfigRepository {
	return &ConfigRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// GetByRestaurantID looks the config up by its owning restaurant. There is
// deliberately no "first row" fallback.
func (r *ConfigRepository) GetByRestaurantID(ctx context.Context, restaurantID string) (*domain.RestaurantConfig, error) {
	var config domain.RestaurantConfig
	if err := r.readerDB.WithContext(ctx).First(&config, "restaurant_id = ?", restaurantID).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *ConfigRepository) Upsert(ctx context.Context, config *domain.RestaurantConfig) error {
	return r.writerDB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"server_ip", "site_name", "scheme", "updated_at"}),
		}).
		Create(config).Error
}
