package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
)

//go:generate mockery --name CatalogService --output ../mocks
type CatalogService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
	GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.CatalogItemResponse, error)
	UpdateMenuItem(ctx context.Context, id string, req dto.UpdateMenuItemRequest) (*dto.CatalogItemResponse, error)
	DeleteMenuItem(ctx context.Context, id string) error
	GetMenuItem(ctx context.Context, id string) (*dto.CatalogItemResponse, error)
	ListMenuItems(ctx context.Context) ([]dto.CatalogItemResponse, error)
}

type CatalogHandler struct {
	*BaseHandler
	service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateCategory Create a menu category
// @Summary Create category
// @Tags    catalog
// @Accept  json
// @Produce json
// @Param   body body dto.CreateCategoryRequest true "Category object"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	category, err := h.service.CreateCategory(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory Update a menu category
// @Summary Update category
// @Tags    catalog
// @Accept  json
// @Produce json
// @Param   id path string true "Category ID"
// @Param   body body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	category, err := h.service.UpdateCategory(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory Delete a menu category
// @Summary Delete category
// @Description Delete a category; its items stay on the menu uncategorized
// @Tags    catalog
// @Param   id path string true "Category ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCategory Get a menu category
// @Summary Get category
// @Tags    catalog
// @Produce json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.service.GetCategory(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// ListCategories List the restaurant's categories
// @Summary List categories
// @Tags    catalog
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateMenuItem Create a menu item
// @Summary Create menu item
// @Tags    catalog
// @Accept  json
// @Produce json
// @Param   body body dto.CreateMenuItemRequest true "Menu item object"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /items [post]
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	item, err := h.service.CreateMenuItem(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem Update a menu item
// @Summary Update menu item
// @Tags    catalog
// @Accept  json
// @Produce json
// @Param   id path string true "Menu item ID"
// @Param   body body dto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /items/{id} [patch]
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	item, err := h.service.UpdateMenuItem(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem Delete a menu item
// @Summary Delete menu item
// @Description Delete a menu item; items referenced by orders are rejected
// @Tags    catalog
// @Param   id path string true "Menu item ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /items/{id} [delete]
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.service.DeleteMenuItem(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMenuItem Get a menu item
// @Summary Get menu item
// @Tags    catalog
// @Produce json
// @Param   id path string true "Menu item ID"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /items/{id} [get]
func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	item, err := h.service.GetMenuItem(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListMenuItems List the restaurant's menu items
// @Summary List menu items
// @Tags    catalog
// @Produce json
// @Success 200 {array} dto.CatalogItemResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /items [get]
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.service.ListMenuItems(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
