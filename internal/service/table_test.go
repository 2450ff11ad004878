package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/config"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/utils"
)

type TableServiceTestSuite struct {
	suite.Suite
	repo    *mockRepository
	qrStore *MockQRStore
	service *TableService
}

func (s *TableServiceTestSuite) SetupTest() {
	s.repo = newMockRepository()
	s.qrStore = new(MockQRStore)
	cfg := &config.Config{SiteScheme: "http", Debug: false}
	s.service = NewTableService(s.repo, s.qrStore, cfg)
}

func TestTableService(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}

func (s *TableServiceTestSuite) staffCtx(restaurantID string) context.Context {
	claims := jwt.MapClaims{
		"user_id":       "user1",
		"restaurant_id": restaurantID,
	}
	return context.WithValue(context.Background(), utils.ClaimsKey, claims)
}

func (s *TableServiceTestSuite) TestCreate_GeneratesQRFromTenantConfig() {
	ctx := s.staffCtx("rest1")

	s.repo.table.On("Create", mock.Anything, mock.MatchedBy(func(t *domain.Table) bool {
		return t.RestaurantID == "rest1" && t.Code == "T1"
	})).Return(&domain.Table{}, nil)
	s.repo.config.On("GetByRestaurantID", mock.Anything, "rest1").
		Return(&domain.RestaurantConfig{RestaurantID: "rest1", ServerIP: "spicegarden.example", Scheme: "https"}, nil)
	s.qrStore.On("Put", mock.Anything, "qrcodes/qr_rest1_T1.png", mock.Anything).Return(nil)
	s.repo.table.On("Update", mock.Anything, mock.MatchedBy(func(t *domain.Table) bool {
		return t.QRImageKey == "qrcodes/qr_rest1_T1.png"
	})).Return(nil)

	resp, err := s.service.Create(ctx, dto.CreateTableRequest{Name: "Window 1", Code: "T1"})

	s.NoError(err)
	s.Equal("https://spicegarden.example/menu/?table=T1", resp.QRTargetURL)
	s.Equal("qrcodes/qr_rest1_T1.png", resp.QRImageKey)
	s.qrStore.AssertExpectations(s.T())
}

func (s *TableServiceTestSuite) TestTargetURL_FallsBackWithoutConfig() {
	s.repo.config.On("GetByRestaurantID", mock.Anything, "rest1").
		Return(nil, gorm.ErrRecordNotFound)

	url, err := s.service.TargetURL(context.Background(), &domain.Table{RestaurantID: "rest1", Code: "T1"})

	s.NoError(err)
	s.Equal("http://localhost/menu/?table=T1", url)
}

func (s *TableServiceTestSuite) TestUpdate_UnchangedSkipsRegeneration() {
	table := &domain.Table{ID: "table1", RestaurantID: "rest1", Name: "Window 1", Code: "T1"}
	s.repo.table.On("GetByID", mock.Anything, "table1").Return(table, nil)
	s.repo.table.On("Update", mock.Anything, table).Return(nil)
	s.repo.config.On("GetByRestaurantID", mock.Anything, "rest1").
		Return(nil, gorm.ErrRecordNotFound)

	name := "Window 1"
	resp, err := s.service.Update(context.Background(), "table1", dto.UpdateTableRequest{Name: &name})

	s.NoError(err)
	s.Equal("T1", resp.Code)
	s.qrStore.AssertNotCalled(s.T(), "Put", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TableServiceTestSuite) TestUpdate_CodeChangeRegeneratesQR() {
	table := &domain.Table{ID: "table1", RestaurantID: "rest1", Name: "Window 1", Code: "T1"}
	s.repo.table.On("GetByID", mock.Anything, "table1").Return(table, nil)
	s.repo.table.On("Update", mock.Anything, mock.Anything).Return(nil)
	s.repo.config.On("GetByRestaurantID", mock.Anything, "rest1").
		Return(nil, gorm.ErrRecordNotFound)
	s.qrStore.On("Put", mock.Anything, "qrcodes/qr_rest1_T9.png", mock.Anything).Return(nil)

	code := "T9"
	resp, err := s.service.Update(context.Background(), "table1", dto.UpdateTableRequest{Code: &code})

	s.NoError(err)
	s.Equal("T9", resp.Code)
	s.qrStore.AssertExpectations(s.T())
}

func (s *TableServiceTestSuite) TestDelete_NotFound() {
	s.repo.table.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := s.service.Delete(context.Background(), "missing")

	s.ErrorIs(err, ErrTableNotFound)
}
