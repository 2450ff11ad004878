package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/service"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	mockService  *MockMenuService
	mockResolver *MockTableResolver
	handler      *MenuHandler
}

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) PublicMenu(ctx context.Context, restaurantID string) ([]dto.MenuCategoryResponse, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MenuCategoryResponse), args.Error(1)
}

type MockTableResolver struct {
	mock.Mock
}

func (m *MockTableResolver) AuthorizePublic(ctx context.Context, tableCode string) (*domain.Table, error) {
	args := m.Called(ctx, tableCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockMenuService)
	s.mockResolver = new(MockTableResolver)
	s.handler = NewMenuHandler(s.mockService, s.mockResolver)
}

func TestMenuHandler(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestGetMenu_Success() {
	table := &domain.Table{ID: "table1", RestaurantID: "rest1", Code: "T1"}
	menu := []dto.MenuCategoryResponse{
		{
			Category: "Starters",
			Items: []dto.MenuItemResponse{
				{ID: "item1", Name: "Paneer Tikka", Price: decimal.RequireFromString("249.50"), Type: "VEG"},
			},
		},
	}
	s.mockResolver.On("AuthorizePublic", mock.Anything, "T1").Return(table, nil)
	s.mockService.On("PublicMenu", mock.Anything, "rest1").Return(menu, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/menu?table=T1", nil)

	s.handler.GetMenu(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.MenuCategoryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 1)
	s.Equal("Starters", response[0].Category)
	s.Equal("Paneer Tikka", response[0].Items[0].Name)
	s.mockResolver.AssertExpectations(s.T())
	s.mockService.AssertExpectations(s.T())
}

func (s *MenuHandlerTestSuite) TestGetMenu_UnknownTable() {
	s.mockResolver.On("AuthorizePublic", mock.Anything, "NOPE").Return(nil, service.ErrUnknownTable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/menu?table=NOPE", nil)

	s.handler.GetMenu(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("UNKNOWN_TABLE", response.Reason)
	s.mockService.AssertNotCalled(s.T(), "PublicMenu", mock.Anything, mock.Anything)
}

func (s *MenuHandlerTestSuite) TestGetMenu_AmbiguousTable() {
	s.mockResolver.On("AuthorizePublic", mock.Anything, "T1").Return(nil, service.ErrAmbiguousTable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/menu?table=T1", nil)

	s.handler.GetMenu(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("AMBIGUOUS_TABLE", response.Reason)
}

func (s *MenuHandlerTestSuite) TestGetMenu_ExpiredLicense() {
	s.mockResolver.On("AuthorizePublic", mock.Anything, "T1").Return(nil, service.ErrLicenseExpired)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/menu?table=T1", nil)

	s.handler.GetMenu(c)

	s.Equal(http.StatusForbidden, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("LICENSE_EXPIRED", response.Reason)
}
