package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/qrorder/qr-order-api/internal/repository"
)

// ReportPeriod selects the date range of a sales export.
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

func IsValidPeriod(p string) bool {
	switch ReportPeriod(p) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

type SalesRow struct {
	OrderID   string
	TableName string
	Status    string
	CreatedAt time.Time
	Total     decimal.Decimal
}

// SalesReport is one row per PAID order plus a recomputed grand total;
// nothing is read from a cache, so the trailing total always equals the sum
// of the rows.
type SalesReport struct {
	Title      string
	Rows       []SalesRow
	GrandTotal decimal.Decimal
}

type ReportService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewReportService(repo repository.Repository) *ReportService {
	return &ReportService{repo: repo, now: time.Now}
}

// periodRange returns the inclusive date range for a period: daily = today,
// weekly = last 7 days, monthly = from the first of the month.
func (s *ReportService) periodRange(period ReportPeriod, now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodWeekly:
		return startOfDay.AddDate(0, 0, -7), now
	case PeriodMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), now
	default:
		return startOfDay, now
	}
}

// BuildSalesReport aggregates PAID orders for the restaurant over the
// period. Each order contributes exactly one row; totals are recomputed
// from item snapshots.
func (s *ReportService) BuildSalesReport(ctx context.Context, restaurantID string, period ReportPeriod) (*SalesReport, error) {
	now := s.now()
	start, end := s.periodRange(period, now)

	orders, err := s.repo.Order().ListPaidBetween(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid orders: %w", err)
	}

	report := &SalesReport{
		Title:      fmt.Sprintf("%s_sales_%s", period, start.Format("2006-01-02")),
		GrandTotal: decimal.Zero,
	}
	for i := range orders {
		order := &orders[i]
		tableName := ""
		if order.Table != nil {
			tableName = order.Table.Name
		}
		total := order.TotalAmount()
		report.Rows = append(report.Rows, SalesRow{
			OrderID:   order.ID,
			TableName: tableName,
			Status:    string(order.Status),
			CreatedAt: order.CreatedAt,
			Total:     total,
		})
		report.GrandTotal = report.GrandTotal.Add(total)
	}

	return report, nil
}

// WriteCSV renders the report: header, one row per order, a blank row, then
// the TOTAL SALES line.
func (s *ReportService) WriteCSV(w io.Writer, report *SalesReport) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Order ID", "Table", "Status", "Created At", "Total Amount"}); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{
			row.OrderID,
			row.TableName,
			row.Status,
			row.CreatedAt.Format(time.RFC3339),
			row.Total.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if err := writer.Write([]string{""}); err != nil {
		return err
	}
	if err := writer.Write([]string{"", "", "", "TOTAL SALES", report.GrandTotal.StringFixed(2)}); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
