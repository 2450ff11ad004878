package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/service"
	"github.com/qrorder/qr-order-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError maps service errors to HTTP status codes. Denial errors
// carry a machine-readable reason alongside the message.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	resp := dto.Error{Error: err.Error(), Reason: service.ReasonForError(err)}

	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, resp)

	case errors.Is(err, service.ErrUnknownTable),
		errors.Is(err, service.ErrAmbiguousTable),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidItemType):
		c.JSON(http.StatusBadRequest, resp)

	case errors.Is(err, service.ErrMenuItemReferenced),
		errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, service.ErrNoLicense),
		errors.Is(err, service.ErrLicenseExpired),
		errors.Is(err, service.ErrRestaurantInactive):
		c.JSON(http.StatusForbidden, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
	}
}
