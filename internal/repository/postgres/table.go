package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type TableRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTableRepository(writerDB, readerDB *gorm.DB) *TableRepository {
	return &TableRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TableRepository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	if err := r.writerDB.WithContext(ctx).Create(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

func (r *TableRepository) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var table domain.Table
	if err := db.First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// FindByCode resolves a public table code. Codes are only unique per
// restaurant, so the caller must treat multiple matches as ambiguous rather
// than picking one.
func (r *TableRepository) FindByCode(ctx context.Context, code string) ([]domain.Table, error) {
	var tables []domain.Table
	if err := r.readerDB.WithContext(ctx).Where("code = ?", code).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) Update(ctx context.Context, table *domain.Table) error {
	return r.writerDB.WithContext(ctx).Save(table).Error
}

// Delete nulls the table reference on its orders rather than cascading.
func (r *TableRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Order{}).
			Where("table_id = ?", id).
			Update("table_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Table{}, "id = ?", id).Error
	})
}

func (r *TableRepository) List(ctx context.Context) ([]domain.Table, error) {
	db, err := tenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var tables []domain.Table
	if err := db.Order("name").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
