package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
	"github.com/qrorder/qr-order-api/internal/utils"
)

// CatalogService manages the staff-facing catalog: categories and menu
// items. Reads and writes are tenant-scoped by the repository layer; only
// create operations need the caller's restaurant explicitly.
type CatalogService struct {
	repo repository.Repository
}

func NewCatalogService(repo repository.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) callerRestaurantID(ctx context.Context) (string, error) {
	restaurantID, err := utils.GetRestaurantIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if restaurantID == "" {
		return "", ErrRestaurantNotFound
	}
	return restaurantID, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	restaurantID, err := s.callerRestaurantID(ctx)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		RestaurantID: restaurantID,
		Name:         req.Name,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if _, err := s.repo.Category().Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := s.repo.Category().Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

// DeleteCategory removes the category and detaches its items, which stay on
// the menu uncategorized.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.repo.Category().GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Category().Delete(ctx, id)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := s.repo.Category().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	resp := dto.FromCategory(category)
	return &resp, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCategories(categories), nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.CatalogItemResponse, error) {
	restaurantID, err := s.callerRestaurantID(ctx)
	if err != nil {
		return nil, err
	}

	itemType := req.Type
	if itemType == "" {
		itemType = string(domain.ItemTypeOther)
	}
	if !domain.IsValidItemType(itemType) {
		return nil, ErrInvalidItemType
	}

	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Type:         itemType,
		Price:        req.Price,
		IsAvailable:  true,
		Description:  req.Description,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if _, err := s.repo.MenuItem().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	resp := dto.FromCatalogItem(item)
	return &resp, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := s.repo.MenuItem().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.CategoryID != nil {
		// An empty string detaches the item from its category.
		if *req.CategoryID == "" {
			item.CategoryID = nil
		} else {
			if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
				return nil, err
			}
			item.CategoryID = req.CategoryID
		}
	}
	if req.Type != nil {
		if !domain.IsValidItemType(*req.Type) {
			return nil, ErrInvalidItemType
		}
		item.Type = *req.Type
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.repo.MenuItem().Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	resp := dto.FromCatalogItem(item)
	return &resp, nil
}

// DeleteMenuItem refuses to delete items referenced by existing orders;
// marking them unavailable keeps historical order lines intact.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := s.repo.MenuItem().GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	referenced, err := s.repo.MenuItem().IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrMenuItemReferenced
	}
	return s.repo.MenuItem().Delete(ctx, id)
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*dto.CatalogItemResponse, error) {
	item, err := s.repo.MenuItem().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	resp := dto.FromCatalogItem(item)
	return &resp, nil
}

func (s *CatalogService) ListMenuItems(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	items, err := s.repo.MenuItem().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromCatalogItems(items), nil
}

// checkCategory verifies the category exists within the caller's scope, so
// an item can never be attached to another restaurant's category.
func (s *CatalogService) checkCategory(ctx context.Context, categoryID string) error {
	if _, err := s.repo.Category().GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
