package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/service"
	"github.com/qrorder/qr-order-api/internal/utils"
	"github.com/qrorder/qr-order-api/pkg/logger"
)

// LicenseMiddleware gates every staff endpoint behind the caller's license
// and restaurant expiry. It runs after JWTAuth, so claims are already set.
type LicenseMiddleware struct {
	access *service.AccessService
	logger *logger.Logger
}

func NewLicenseMiddleware(access *service.AccessService, logger *logger.Logger) *LicenseMiddleware {
	return &LicenseMiddleware{
		access: access,
		logger: logger,
	}
}

func (m *LicenseMiddleware) RequireActiveLicense() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		for k, v := range c.Keys {
			ctx = context.WithValue(ctx, utils.ContextKey(k), v)
		}

		userID, err := utils.GetUserIDFromContext(ctx)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
			return
		}

		if err := m.access.AuthorizeStaff(ctx, userID); err != nil {
			reason := service.ReasonForError(err)
			if reason == "" {
				m.logger.Errorf("License check failed for user %s: %v", userID, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "Internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "Access denied", Reason: reason})
			return
		}

		c.Next()
	}
}
