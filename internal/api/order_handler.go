package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/pkg/utils"
)

//go:generate mockery --name OrderService --output ../mocks
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	CustomerOrders(ctx context.Context, tableCode string) ([]dto.OrderResponse, error)
	List(ctx context.Context, filter *domain.OrderFilter) ([]dto.OrderResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (*dto.OrderResponse, error)
}

type OrderHandler struct {
	*BaseHandler
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrder Place a customer order
// @Summary Create order
// @Description Place an order from a table; unknown item references are skipped
// @Tags    orders
// @Accept  json
// @Produce json
// @Param   body body dto.CreateOrderRequest true "Order payload"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// CustomerOrders List a table's orders
// @Summary List customer orders
// @Description List the orders placed from a table, newest first
// @Tags    orders
// @Produce json
// @Param   table query string true "Table code printed on the QR card"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders/customer [get]
func (h *OrderHandler) CustomerOrders(c *gin.Context) {
	orders, err := h.service.CustomerOrders(h.RequestCtx(c), c.Query("table"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListOrders List orders for staff
// @Summary List orders
// @Description List the caller's restaurant orders with filtering, newest first
// @Tags    orders
// @Produce json
// @Param   status query string false "Filter by status"
// @Param   table_id query string false "Filter by table ID"
// @Param   start_time query string false "Filter by start time (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Filter by end time (RFC3339 or YYYY-MM-DD)"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	orders, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder Get an order by ID
// @Summary Get order
// @Description Get a single order within the caller's restaurant
// @Tags    orders
// @Produce json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus Move an order through its lifecycle
// @Summary Update order status
// @Description Update an order's status; illegal transitions are rejected
// @Tags    orders
// @Accept  json
// @Produce json
// @Param   id path string true "Order ID"
// @Param   body body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /orders/{id} [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("id"), req.Status)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func orderFilterFromQuery(c *gin.Context) (*domain.OrderFilter, error) {
	filter := &domain.OrderFilter{
		TableID: c.Query("table_id"),
		Status:  domain.OrderStatus(c.Query("status")),
	}

	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}

	return filter, nil
}
