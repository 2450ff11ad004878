package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
)

//go:generate mockery --name MenuService --output ../mocks
type MenuService interface {
	PublicMenu(ctx context.Context, restaurantID string) ([]dto.MenuCategoryResponse, error)
}

//go:generate mockery --name TableResolver --output ../mocks
type TableResolver interface {
	AuthorizePublic(ctx context.Context, tableCode string) (*domain.Table, error)
}

type MenuHandler struct {
	*BaseHandler
	service  MenuService
	resolver TableResolver
}

func NewMenuHandler(service MenuService, resolver TableResolver) *MenuHandler {
	return &MenuHandler{service: service, resolver: resolver}
}

// GetMenu Get the public menu for a table
// @Summary Get menu
// @Description Get the active menu for the restaurant a table code belongs to
// @Tags    menu
// @Produce json
// @Param   table query string true "Table code printed on the QR card"
// @Success 200 {array} dto.MenuCategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	table, err := h.resolver.AuthorizePublic(h.RequestCtx(c), c.Query("table"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	menu, err := h.service.PublicMenu(h.RequestCtx(c), table.RestaurantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}
