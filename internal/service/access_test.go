package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type AccessServiceTestSuite struct {
	suite.Suite
	repo    *mockRepository
	service *AccessService
	now     time.Time
}

func (s *AccessServiceTestSuite) SetupTest() {
	s.repo = newMockRepository()
	s.service = NewAccessService(s.repo)
	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func TestAccessService(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}

func (s *AccessServiceTestSuite) TestAuthorizeStaff_NoLicenseRow() {
	s.repo.license.On("GetByUserID", mock.Anything, "user1").Return(nil, gorm.ErrRecordNotFound)

	err := s.service.AuthorizeStaff(context.Background(), "user1")

	s.ErrorIs(err, ErrNoLicense)
}

func (s *AccessServiceTestSuite) TestAuthorizeStaff_ExpiredLicense() {
	yesterday := s.now.AddDate(0, 0, -1)
	s.repo.license.On("GetByUserID", mock.Anything, "user1").
		Return(&domain.License{UserID: "user1", ExpiryDate: &yesterday}, nil)

	err := s.service.AuthorizeStaff(context.Background(), "user1")

	s.ErrorIs(err, ErrLicenseExpired)
}

func (s *AccessServiceTestSuite) TestAuthorizeStaff_ActiveLicenseAndRestaurant() {
	restaurantID := "rest1"
	s.repo.license.On("GetByUserID", mock.Anything, "user1").
		Return(&domain.License{UserID: "user1"}, nil)
	s.repo.user.On("GetByID", mock.Anything, "user1").
		Return(&domain.User{ID: "user1", RestaurantID: &restaurantID}, nil)
	s.repo.restaurant.On("GetByID", mock.Anything, restaurantID).
		Return(&domain.Restaurant{ID: restaurantID, IsActive: true}, nil)

	err := s.service.AuthorizeStaff(context.Background(), "user1")

	s.NoError(err)
}

func (s *AccessServiceTestSuite) TestAuthorizeStaff_ExpiredRestaurant() {
	restaurantID := "rest1"
	yesterday := s.now.AddDate(0, 0, -1)
	s.repo.license.On("GetByUserID", mock.Anything, "user1").
		Return(&domain.License{UserID: "user1"}, nil)
	s.repo.user.On("GetByID", mock.Anything, "user1").
		Return(&domain.User{ID: "user1", RestaurantID: &restaurantID}, nil)
	s.repo.restaurant.On("GetByID", mock.Anything, restaurantID).
		Return(&domain.Restaurant{ID: restaurantID, IsActive: true, ExpiryDate: &yesterday}, nil)

	err := s.service.AuthorizeStaff(context.Background(), "user1")

	s.ErrorIs(err, ErrRestaurantInactive)
}

func (s *AccessServiceTestSuite) TestAuthorizeStaff_AdminWithoutRestaurant() {
	s.repo.license.On("GetByUserID", mock.Anything, "admin1").
		Return(&domain.License{UserID: "admin1"}, nil)
	s.repo.user.On("GetByID", mock.Anything, "admin1").
		Return(&domain.User{ID: "admin1", Roles: []string{"admin"}}, nil)

	err := s.service.AuthorizeStaff(context.Background(), "admin1")

	s.NoError(err)
	s.repo.restaurant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *AccessServiceTestSuite) TestAuthorizePublic_EmptyCode() {
	_, err := s.service.AuthorizePublic(context.Background(), "")

	s.ErrorIs(err, ErrUnknownTable)
}

func (s *AccessServiceTestSuite) TestAuthorizePublic_ResolvesTable() {
	table := domain.Table{ID: "table1", RestaurantID: "rest1", Code: "T1"}
	s.repo.table.On("FindByCode", mock.Anything, "T1").Return([]domain.Table{table}, nil)
	s.repo.restaurant.On("GetByID", mock.Anything, "rest1").
		Return(&domain.Restaurant{ID: "rest1", IsActive: true}, nil)

	resolved, err := s.service.AuthorizePublic(context.Background(), "T1")

	s.NoError(err)
	s.Equal("table1", resolved.ID)
}

func (s *AccessServiceTestSuite) TestAuthorizePublic_CrossRestaurantCollision() {
	tables := []domain.Table{
		{ID: "t1", RestaurantID: "rest1", Code: "T1"},
		{ID: "t2", RestaurantID: "rest2", Code: "T1"},
	}
	s.repo.table.On("FindByCode", mock.Anything, "T1").Return(tables, nil)

	_, err := s.service.AuthorizePublic(context.Background(), "T1")

	s.ErrorIs(err, ErrAmbiguousTable)
	s.repo.restaurant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}
