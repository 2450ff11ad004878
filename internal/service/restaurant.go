package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
	"github.com/qrorder/qr-order-api/pkg/utils"
)

// RestaurantService covers super-admin provisioning: restaurants, their
// owner accounts, per-restaurant config, and licenses.
type RestaurantService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewRestaurantService(repo repository.Repository) *RestaurantService {
	return &RestaurantService{repo: repo, now: time.Now}
}

// Create provisions a restaurant together with its owner account. The
// owner gets the owner role and a license with the same expiry as the
// restaurant, so a freshly provisioned tenant is immediately usable.
func (s *RestaurantService) Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if _, err := s.repo.User().GetByEmail(ctx, req.OwnerEmail); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	owner := &domain.User{
		Email: req.OwnerEmail,
		Name:  req.OwnerName,
		Roles: []string{string(domain.RoleOwner)},
	}
	restaurant := &domain.Restaurant{
		Name:       req.Name,
		ExpiryDate: expiry,
		IsActive:   true,
	}
	license := &domain.License{
		ExpiryDate: expiry,
	}
	// Single transaction: the owner's restaurant binding must land with the
	// restaurant row, or AuthorizeStaff would skip the restaurant gate for
	// this owner.
	if err := s.repo.Restaurant().CreateWithOwner(ctx, restaurant, owner, license); err != nil {
		return nil, fmt.Errorf("failed to provision restaurant: %w", err)
	}

	resp := dto.FromRestaurant(restaurant, s.now())
	return &resp, nil
}

func (s *RestaurantService) GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	resp := dto.FromRestaurant(restaurant, s.now())
	return &resp, nil
}

func (s *RestaurantService) Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}
	if req.ExpiryDate != nil {
		expiry, err := parseExpiryDate(req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		restaurant.ExpiryDate = expiry
	}
	restaurant.UpdatedAt = s.now()

	if err := s.repo.Restaurant().Update(ctx, restaurant); err != nil {
		return nil, err
	}
	resp := dto.FromRestaurant(restaurant, s.now())
	return &resp, nil
}

// Delete cascades to everything the restaurant owns.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	return s.repo.Restaurant().Delete(ctx, id)
}

func (s *RestaurantService) List(ctx context.Context) ([]dto.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromRestaurants(restaurants, s.now()), nil
}

func (s *RestaurantService) UpsertConfig(ctx context.Context, restaurantID string, req dto.UpsertConfigRequest) (*dto.ConfigResponse, error) {
	if _, err := s.repo.Restaurant().GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	config := &domain.RestaurantConfig{
		RestaurantID: restaurantID,
		ServerIP:     req.ServerIP,
		SiteName:     req.SiteName,
		Scheme:       req.Scheme,
	}
	if config.SiteName == "" {
		config.SiteName = "QR Order"
	}
	if config.Scheme == "" {
		config.Scheme = "http"
	}

	if err := s.repo.Config().Upsert(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to upsert config: %w", err)
	}
	resp := dto.FromConfig(config)
	return &resp, nil
}

// UpsertLicense sets or extends a user's license; a nil expiry means
// unlimited.
func (s *RestaurantService) UpsertLicense(ctx context.Context, userID string, req dto.UpsertLicenseRequest) (*dto.LicenseResponse, error) {
	if _, err := s.repo.User().GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	expiry, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	license := &domain.License{
		UserID:     userID,
		ExpiryDate: expiry,
	}
	if err := s.repo.License().Upsert(ctx, license); err != nil {
		return nil, fmt.Errorf("failed to upsert license: %w", err)
	}
	resp := dto.FromLicense(license, s.now())
	return &resp, nil
}

func parseExpiryDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := utils.ParseUserTime(*value, false)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
