package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type CategoryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCategoryRepository(writerDB, readerDB *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.writerDB.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return r.writerDB.WithContext(ctx).Save(category).Error
}

// Delete removes the category and detaches its menu items; items survive
// with a null category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.MenuItem{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Category{}, "id = ?", id).Error
	})
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListActive serves the public menu, which carries no identity; the
// restaurant is resolved from the table code instead of the caller's claims.
func (r *CategoryRepository) ListActive(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.readerDB.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

type MenuItemRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewMenuItemRepository(writerDB, readerDB *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := r.writerDB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var item domain.MenuItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	return r.writerDB.WithContext(ctx).Save(item).Error
}

func (r *MenuItemRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.MenuItem{}, "id = ?", id).Error
}

func (r *MenuItemRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.MenuItem
	if err := db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemRepository) ListAvailable(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.readerDB.WithContext(ctx).
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDs resolves the requested item ids within one restaurant; ids that
// do not exist there are simply absent from the result.
func (r *MenuItemRepository) FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var items []domain.MenuItem
	err := r.readerDB.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// IsReferenced reports whether any order item points at the menu item;
// referenced items are protected from deletion.
func (r *MenuItemRepository) IsReferenced(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Where("menu_item_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
