package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type MenuServiceTestSuite struct {
	suite.Suite
	repo    *mockRepository
	service *MenuService
}

func (s *MenuServiceTestSuite) SetupTest() {
	s.repo = newMockRepository()
	s.service = NewMenuService(s.repo)
}

func TestMenuService(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}

func (s *MenuServiceTestSuite) TestPublicMenu_GroupsItemsByCategory() {
	starters := "cat1"
	mains := "cat2"
	categories := []domain.Category{
		{ID: starters, Name: "Mains"},
		{ID: mains, Name: "Starters"},
	}
	items := []domain.MenuItem{
		{ID: "i1", Name: "Paneer Tikka", CategoryID: &mains, Price: decimal.RequireFromString("249.50")},
		{ID: "i2", Name: "Biryani", CategoryID: &starters, Price: decimal.RequireFromString("320.00")},
	}
	s.repo.category.On("ListActive", mock.Anything, "rest1").Return(categories, nil)
	s.repo.menuItem.On("ListAvailable", mock.Anything, "rest1").Return(items, nil)

	menu, err := s.service.PublicMenu(context.Background(), "rest1")

	s.NoError(err)
	s.Len(menu, 2)
	s.Equal("Mains", menu[0].Category)
	s.Len(menu[0].Items, 1)
	s.Equal("Biryani", menu[0].Items[0].Name)
	s.Equal("Starters", menu[1].Category)
	s.Equal("Paneer Tikka", menu[1].Items[0].Name)
}

func (s *MenuServiceTestSuite) TestPublicMenu_UncategorizedItemsHidden() {
	catID := "cat1"
	categories := []domain.Category{{ID: catID, Name: "Starters"}}
	items := []domain.MenuItem{
		{ID: "i1", Name: "Orphan", CategoryID: nil},
		{ID: "i2", Name: "Listed", CategoryID: &catID},
	}
	s.repo.category.On("ListActive", mock.Anything, "rest1").Return(categories, nil)
	s.repo.menuItem.On("ListAvailable", mock.Anything, "rest1").Return(items, nil)

	menu, err := s.service.PublicMenu(context.Background(), "rest1")

	s.NoError(err)
	s.Len(menu, 1)
	s.Len(menu[0].Items, 1)
	s.Equal("Listed", menu[0].Items[0].Name)
}

func (s *MenuServiceTestSuite) TestPublicMenu_EmptyCategoryStillListed() {
	categories := []domain.Category{{ID: "cat1", Name: "Desserts"}}
	s.repo.category.On("ListActive", mock.Anything, "rest1").Return(categories, nil)
	s.repo.menuItem.On("ListAvailable", mock.Anything, "rest1").Return([]domain.MenuItem{}, nil)

	menu, err := s.service.PublicMenu(context.Background(), "rest1")

	s.NoError(err)
	s.Len(menu, 1)
	s.Empty(menu[0].Items)
}
