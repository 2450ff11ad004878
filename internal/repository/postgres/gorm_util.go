package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/utils"
)

// tenantScope restricts a query over restaurant-owned rows to the caller's
// restaurant. Super-admins get an unrestricted query; a non-admin identity
// without a restaurant gets a predicate that matches zero rows, never an
// unscoped one.
func tenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	roles := utils.GetRolesFromContext(ctx)
	if domain.HasRole(roles, domain.RoleAdmin) {
		return db.WithContext(ctx), nil
	}

	restaurantID, err := utils.GetRestaurantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if restaurantID == "" {
		return db.WithContext(ctx).Where("1 = 0"), nil
	}

	return db.WithContext(ctx).Where("restaurant_id = ?", restaurantID), nil
}
