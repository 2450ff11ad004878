package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
)

//go:generate mockery --name TableService --output ../mocks
type TableService interface {
	Create(ctx context.Context, req dto.CreateTableRequest) (*dto.TableResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTableRequest) (*dto.TableResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*dto.TableResponse, error)
	List(ctx context.Context) ([]dto.TableResponse, error)
}

type TableHandler struct {
	*BaseHandler
	service TableService
}

func NewTableHandler(service TableService) *TableHandler {
	return &TableHandler{service: service}
}

// CreateTable Create a table
// @Summary Create table
// @Description Create a table and generate its QR code image
// @Tags    tables
// @Accept  json
// @Produce json
// @Param   body body dto.CreateTableRequest true "Table object"
// @Success 201 {object} dto.TableResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	table, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

// UpdateTable Update a table
// @Summary Update table
// @Description Update a table; name or code changes regenerate the QR image
// @Tags    tables
// @Accept  json
// @Produce json
// @Param   id path string true "Table ID"
// @Param   body body dto.UpdateTableRequest true "Fields to update"
// @Success 200 {object} dto.TableResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tables/{id} [patch]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	table, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// DeleteTable Delete a table
// @Summary Delete table
// @Description Delete a table; its orders survive with the table reference cleared
// @Tags    tables
// @Param   id path string true "Table ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTable Get a table
// @Summary Get table
// @Tags    tables
// @Produce json
// @Param   id path string true "Table ID"
// @Success 200 {object} dto.TableResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tables/{id} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	table, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// ListTables List the restaurant's tables
// @Summary List tables
// @Tags    tables
// @Produce json
// @Success 200 {array} dto.TableResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}
