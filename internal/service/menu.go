package service

import (
	"context"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/repository"
)

type MenuService struct {
	repo repository.Repository
}

func NewMenuService(repo repository.Repository) *MenuService {
	return &MenuService{repo: repo}
}

// PublicMenu returns the customer-facing menu: active categories with their
// available items, both ordered by name. Inactive categories and
// unavailable items never appear, whatever the catalog state.
func (s *MenuService) PublicMenu(ctx context.Context, restaurantID string) ([]dto.MenuCategoryResponse, error) {
	categories, err := s.repo.Category().ListActive(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.MenuItem().ListAvailable(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	menu := make([]dto.MenuCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		entry := dto.MenuCategoryResponse{
			Category: cat.Name,
			Items:    []dto.MenuItemResponse{},
		}
		for i := range items {
			if items[i].CategoryID != nil && *items[i].CategoryID == cat.ID {
				entry.Items = append(entry.Items, dto.FromMenuItem(&items[i]))
			}
		}
		menu = append(menu, entry)
	}

	return menu, nil
}
