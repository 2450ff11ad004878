package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
)

// AccessService centralizes the license/expiry gate so no endpoint can
// forget it. Staff operations require both an active license and, when the
// user belongs to a restaurant, an active restaurant. Public operations
// gate on the resolved table's restaurant instead.
type AccessService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewAccessService(repo repository.Repository) *AccessService {
	return &AccessService{repo: repo, now: time.Now}
}

// AuthorizeStaff verifies the caller's license and restaurant. A missing
// license row fails closed; a missing restaurant only passes for licensed
// users with no restaurant association (super-admins).
func (s *AccessService) AuthorizeStaff(ctx context.Context, userID string) error {
	license, err := s.repo.License().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLicense
		}
		return err
	}

	now := s.now()
	if !license.IsActiveNow(now) {
		return ErrLicenseExpired
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLicense
		}
		return err
	}
	if user.RestaurantID == nil {
		return nil
	}

	restaurant, err := s.repo.Restaurant().GetByID(ctx, *user.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantInactive
		}
		return err
	}
	if !restaurant.IsActiveNow(now) {
		return ErrRestaurantInactive
	}

	return nil
}

// AuthorizePublic resolves a table code to its table and verifies the
// owning restaurant is active. Codes are unique per restaurant only; a code
// matching tables in more than one restaurant is rejected rather than
// resolved arbitrarily.
func (s *AccessService) AuthorizePublic(ctx context.Context, tableCode string) (*domain.Table, error) {
	if tableCode == "" {
		return nil, ErrUnknownTable
	}

	tables, err := s.repo.Table().FindByCode(ctx, tableCode)
	if err != nil {
		return nil, err
	}
	switch len(tables) {
	case 0:
		return nil, ErrUnknownTable
	case 1:
	default:
		return nil, ErrAmbiguousTable
	}
	table := &tables[0]

	restaurant, err := s.repo.Restaurant().GetByID(ctx, table.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantInactive
		}
		return nil, err
	}
	if !restaurant.IsActiveNow(s.now()) {
		return nil, ErrRestaurantInactive
	}

	return table, nil
}
