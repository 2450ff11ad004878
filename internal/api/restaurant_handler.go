package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
)

//go:generate mockery --name RestaurantService --output ../mocks
type RestaurantService interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RestaurantResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.RestaurantResponse, error)
	UpsertConfig(ctx context.Context, restaurantID string, req dto.UpsertConfigRequest) (*dto.ConfigResponse, error)
	UpsertLicense(ctx context.Context, userID string, req dto.UpsertLicenseRequest) (*dto.LicenseResponse, error)
}

type RestaurantHandler struct {
	*BaseHandler
	service RestaurantService
}

func NewRestaurantHandler(service RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// CreateRestaurant Provision a restaurant
// @Summary Create restaurant
// @Description Provision a restaurant with its owner account and license
// @Tags    restaurants
// @Accept  json
// @Produce json
// @Param   body body dto.CreateRestaurantRequest true "Restaurant object"
// @Success 201 {object} dto.RestaurantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	restaurant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// GetRestaurant Get a restaurant
// @Summary Get restaurant
// @Tags    restaurants
// @Produce json
// @Param   id path string true "Restaurant ID"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants/{id} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant Update a restaurant
// @Summary Update restaurant
// @Tags    restaurants
// @Accept  json
// @Produce json
// @Param   id path string true "Restaurant ID"
// @Param   body body dto.UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants/{id} [patch]
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	restaurant, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant Delete a restaurant
// @Summary Delete restaurant
// @Description Delete a restaurant and everything it owns
// @Tags    restaurants
// @Param   id path string true "Restaurant ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants/{id} [delete]
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRestaurants List all restaurants
// @Summary List restaurants
// @Tags    restaurants
// @Produce json
// @Success 200 {array} dto.RestaurantResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// UpsertConfig Set a restaurant's site config
// @Summary Upsert restaurant config
// @Description Set the host and scheme used to build the restaurant's QR URLs
// @Tags    restaurants
// @Accept  json
// @Produce json
// @Param   id path string true "Restaurant ID"
// @Param   body body dto.UpsertConfigRequest true "Config object"
// @Success 200 {object} dto.ConfigResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /restaurants/{id}/config [put]
func (h *RestaurantHandler) UpsertConfig(c *gin.Context) {
	var req dto.UpsertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	config, err := h.service.UpsertConfig(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpsertLicense Set a user's license
// @Summary Upsert license
// @Description Set or extend a user's license; omit expiry_date for unlimited
// @Tags    licenses
// @Accept  json
// @Produce json
// @Param   user_id path string true "User ID"
// @Param   body body dto.UpsertLicenseRequest true "License object"
// @Success 200 {object} dto.LicenseResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /licenses/{user_id} [put]
func (h *RestaurantHandler) UpsertLicense(c *gin.Context) {
	var req dto.UpsertLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	license, err := h.service.UpsertLicense(h.RequestCtx(c), c.Param("user_id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, license)
}
