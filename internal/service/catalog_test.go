package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/utils"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	repo    *mockRepository
	service *CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.repo = newMockRepository()
	s.service = NewCatalogService(s.repo)
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) staffCtx() context.Context {
	claims := jwt.MapClaims{
		"user_id":       "user1",
		"restaurant_id": "rest1",
	}
	return context.WithValue(context.Background(), utils.ClaimsKey, claims)
}

func (s *CatalogServiceTestSuite) TestCreateCategory_ScopedToCaller() {
	s.repo.category.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.RestaurantID == "rest1" && c.Name == "Starters" && c.IsActive
	})).Return(&domain.Category{}, nil)

	resp, err := s.service.CreateCategory(s.staffCtx(), dto.CreateCategoryRequest{Name: "Starters"})

	s.NoError(err)
	s.Equal("Starters", resp.Name)
	s.repo.category.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateCategory_NoRestaurantScope() {
	claims := jwt.MapClaims{"user_id": "admin1"}
	ctx := context.WithValue(context.Background(), utils.ClaimsKey, claims)

	_, err := s.service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Starters"})

	s.ErrorIs(err, ErrRestaurantNotFound)
}

func (s *CatalogServiceTestSuite) TestCreateMenuItem_InvalidType() {
	_, err := s.service.CreateMenuItem(s.staffCtx(), dto.CreateMenuItemRequest{
		Name:  "Paneer Tikka",
		Type:  "VEGAN",
		Price: decimal.RequireFromString("249.50"),
	})

	s.ErrorIs(err, ErrInvalidItemType)
}

func (s *CatalogServiceTestSuite) TestCreateMenuItem_DefaultsTypeToOther() {
	s.repo.menuItem.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.MenuItem) bool {
		return i.Type == string(domain.ItemTypeOther) && i.IsAvailable
	})).Return(&domain.MenuItem{}, nil)

	resp, err := s.service.CreateMenuItem(s.staffCtx(), dto.CreateMenuItemRequest{
		Name:  "Paneer Tikka",
		Price: decimal.RequireFromString("249.50"),
	})

	s.NoError(err)
	s.Equal(string(domain.ItemTypeOther), resp.Type)
}

func (s *CatalogServiceTestSuite) TestCreateMenuItem_UnknownCategory() {
	catID := "ghost"
	s.repo.category.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.CreateMenuItem(s.staffCtx(), dto.CreateMenuItemRequest{
		Name:       "Paneer Tikka",
		CategoryID: &catID,
		Price:      decimal.RequireFromString("249.50"),
	})

	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CatalogServiceTestSuite) TestUpdateMenuItem_DetachCategory() {
	catID := "cat1"
	item := &domain.MenuItem{ID: "item1", RestaurantID: "rest1", CategoryID: &catID, Name: "Biryani"}
	s.repo.menuItem.On("GetByID", mock.Anything, "item1").Return(item, nil)
	s.repo.menuItem.On("Update", mock.Anything, mock.MatchedBy(func(i *domain.MenuItem) bool {
		return i.CategoryID == nil
	})).Return(nil)

	empty := ""
	resp, err := s.service.UpdateMenuItem(s.staffCtx(), "item1", dto.UpdateMenuItemRequest{CategoryID: &empty})

	s.NoError(err)
	s.Nil(resp.CategoryID)
}

func (s *CatalogServiceTestSuite) TestDeleteMenuItem_ReferencedByOrders() {
	item := &domain.MenuItem{ID: "item1", RestaurantID: "rest1"}
	s.repo.menuItem.On("GetByID", mock.Anything, "item1").Return(item, nil)
	s.repo.menuItem.On("IsReferenced", mock.Anything, "item1").Return(true, nil)

	err := s.service.DeleteMenuItem(s.staffCtx(), "item1")

	s.ErrorIs(err, ErrMenuItemReferenced)
	s.repo.menuItem.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestDeleteMenuItem_Unreferenced() {
	item := &domain.MenuItem{ID: "item1", RestaurantID: "rest1"}
	s.repo.menuItem.On("GetByID", mock.Anything, "item1").Return(item, nil)
	s.repo.menuItem.On("IsReferenced", mock.Anything, "item1").Return(false, nil)
	s.repo.menuItem.On("Delete", mock.Anything, "item1").Return(nil)

	err := s.service.DeleteMenuItem(s.staffCtx(), "item1")

	s.NoError(err)
	s.repo.menuItem.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestDeleteCategory() {
	category := &domain.Category{ID: "cat1", RestaurantID: "rest1"}
	s.repo.category.On("GetByID", mock.Anything, "cat1").Return(category, nil)
	s.repo.category.On("Delete", mock.Anything, "cat1").Return(nil)

	err := s.service.DeleteCategory(s.staffCtx(), "cat1")

	s.NoError(err)
	s.repo.category.AssertExpectations(s.T())
}
