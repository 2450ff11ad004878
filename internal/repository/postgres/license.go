package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type LicenseRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewLicenseRepository(writerDB, readerDB *gorm.DB) *LicenseRepository {
	return &LicenseRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *LicenseRepository) GetByUserID(ctx context.Context, userID string) (*domain.License, error) {
	var license domain.License
	if err := r.readerDB.WithContext(ctx).First(&license, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *LicenseRepository) Upsert(ctx context.Context, license *domain.License) error {
	return r.writerDB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expiry_date", "updated_at"}),
		}).
		Create(license).Error
}

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.writerDB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.readerDB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
