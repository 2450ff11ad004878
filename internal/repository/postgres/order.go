package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type OrderRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOrderRepository(writerDB, readerDB *gorm.DB) *OrderRepository {
	return &OrderRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// CreateWithItems persists the order and its items atomically: either the
// order and every resolved item land, or nothing does.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			order.Items = items
			return err
		}
		order.Items = items

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := db.Preload("Items").Preload("Items.MenuItem").Preload("Table").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.TableID != "" {
		db = db.Where("table_id = ?", filter.TableID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var orders []domain.Order
	err = db.Preload("Items").Preload("Items.MenuItem").Preload("Table").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByTable serves the public customer view; the table was already
// resolved unambiguously, so scoping rides on the table id.
func (r *OrderRepository) ListByTable(ctx context.Context, tableID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.readerDB.WithContext(ctx).
		Where("table_id = ?", tableID).
		Preload("Items").Preload("Items.MenuItem").Preload("Table").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// UpdateStatusGuard performs a compare-and-set on the status column so two
// staff members cannot race an order past a terminal state.
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, id string, from, to domain.OrderStatus) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *OrderRepository) ListPaidBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.readerDB.WithContext(ctx).
		Where("restaurant_id = ? AND status = ? AND created_at >= ? AND created_at <= ?",
			restaurantID, domain.StatusPaid, start, end).
		Preload("Items").Preload("Table").
		Order("created_at").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
