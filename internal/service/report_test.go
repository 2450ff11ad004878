package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qrorder/qr-order-api/internal/domain"
)

type ReportServiceTestSuite struct {
	suite.Suite
	repo    *mockRepository
	service *ReportService
	now     time.Time
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.repo = newMockRepository()
	s.service = NewReportService(s.repo)
	s.now = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestPeriodRange() {
	dailyStart, dailyEnd := s.service.periodRange(PeriodDaily, s.now)
	s.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), dailyStart)
	s.Equal(s.now, dailyEnd)

	weeklyStart, _ := s.service.periodRange(PeriodWeekly, s.now)
	s.Equal(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), weeklyStart)

	monthlyStart, _ := s.service.periodRange(PeriodMonthly, s.now)
	s.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), monthlyStart)
}

func (s *ReportServiceTestSuite) TestBuildSalesReport_GrandTotalMatchesRows() {
	table := &domain.Table{ID: "table1", Name: "Window 1"}
	orders := []domain.Order{
		{
			ID: "order1", Status: domain.StatusPaid, Table: table,
			CreatedAt: s.now.Add(-2 * time.Hour),
			Items: []domain.OrderItem{
				{Qty: 2, UnitPrice: decimal.RequireFromString("249.50")},
			},
		},
		{
			ID: "order2", Status: domain.StatusPaid,
			CreatedAt: s.now.Add(-time.Hour),
			Items: []domain.OrderItem{
				{Qty: 1, UnitPrice: decimal.RequireFromString("120.00")},
				{Qty: 3, UnitPrice: decimal.RequireFromString("10.00")},
			},
		},
	}
	s.repo.order.On("ListPaidBetween", mock.Anything, "rest1", mock.Anything, mock.Anything).
		Return(orders, nil)

	report, err := s.service.BuildSalesReport(context.Background(), "rest1", PeriodDaily)

	s.NoError(err)
	s.Len(report.Rows, 2)
	s.Equal("Window 1", report.Rows[0].TableName)
	s.Equal("", report.Rows[1].TableName)
	s.Equal("499.00", report.Rows[0].Total.StringFixed(2))
	s.Equal("150.00", report.Rows[1].Total.StringFixed(2))
	s.Equal("649.00", report.GrandTotal.StringFixed(2))
}

func (s *ReportServiceTestSuite) TestWriteCSV_Shape() {
	report := &SalesReport{
		Rows: []SalesRow{
			{
				OrderID:   "order1",
				TableName: "Window 1",
				Status:    "PAID",
				CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
				Total:     decimal.RequireFromString("499.00"),
			},
		},
		GrandTotal: decimal.RequireFromString("499.00"),
	}

	var buf bytes.Buffer
	s.NoError(s.service.WriteCSV(&buf, report))
	out := buf.String()

	// The separator row renders as a truly blank line, which csv.Reader
	// skips when parsing back.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	s.Len(lines, 4)
	s.Equal("", lines[2])

	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	s.NoError(err)

	s.Len(records, 3)
	s.Equal([]string{"Order ID", "Table", "Status", "Created At", "Total Amount"}, records[0])
	s.Equal("order1", records[1][0])
	s.Equal("499.00", records[1][4])
	s.Equal([]string{"", "", "", "TOTAL SALES", "499.00"}, records[2])
}

func (s *ReportServiceTestSuite) TestWriteCSV_EmptyReport() {
	report := &SalesReport{GrandTotal: decimal.Zero}

	var buf bytes.Buffer
	s.NoError(s.service.WriteCSV(&buf, report))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	s.Len(lines, 3)
	s.Equal("", lines[1])

	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	s.NoError(err)

	s.Len(records, 2)
	s.Equal("TOTAL SALES", records[1][3])
	s.Equal("0.00", records[1][4])
}

func (s *ReportServiceTestSuite) TestIsValidPeriod() {
	s.True(IsValidPeriod("daily"))
	s.True(IsValidPeriod("weekly"))
	s.True(IsValidPeriod("monthly"))
	s.False(IsValidPeriod("yearly"))
	s.False(IsValidPeriod(""))
}
