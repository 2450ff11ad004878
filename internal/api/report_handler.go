package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/service"
	contextutils "github.com/qrorder/qr-order-api/internal/utils"
)

//go:generate mockery --name ReportService --output ../mocks
type ReportService interface {
	BuildSalesReport(ctx context.Context, restaurantID string, period service.ReportPeriod) (*service.SalesReport, error)
	WriteCSV(w io.Writer, report *service.SalesReport) error
}

type ReportHandler struct {
	*BaseHandler
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ExportSales Export a sales report as CSV
// @Summary Export sales report
// @Description Export PAID orders for the period as a CSV download with a trailing total row
// @Tags    reports
// @Produce text/csv
// @Param   period query string false "Report period (daily, weekly or monthly)" default(daily)
// @Success 200 {file} file
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /reports/sales/export [get]
func (h *ReportHandler) ExportSales(c *gin.Context) {
	restaurantID := c.GetString(string(contextutils.RestaurantIDKey))
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Caller has no restaurant"})
		return
	}

	period := c.DefaultQuery("period", "daily")
	if !service.IsValidPeriod(period) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid period. Must be 'daily', 'weekly' or 'monthly'"})
		return
	}

	report, err := h.service.BuildSalesReport(h.RequestCtx(c), restaurantID, service.ReportPeriod(period))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", report.Title))
	c.Header("Content-Type", "text/csv")

	if err := h.service.WriteCSV(c.Writer, report); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to write CSV"})
		return
	}
}
