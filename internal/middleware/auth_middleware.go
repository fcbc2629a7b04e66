package middleware

import (
	"strings"

	"rideadmin/internal/models"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextAdminKey   = "admin"
	ContextAdminIDKey = "admin_id"
)

// AuthMiddleware requires a valid Bearer token and loads the admin it
// belongs to into the request context. Tokens for deleted admins fail.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "authorization header must be a Bearer token")
			c.Abort()
			return
		}

		admin, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			utils.UnauthorizedResponse(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Set(ContextAdminIDKey, admin.ID)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, or returns
// an empty string when the header is missing or not a Bearer scheme.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// GetAdmin returns the authenticated admin, or nil outside AuthMiddleware.
func GetAdmin(c *gin.Context) *models.Admin {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return nil
	}
	admin, ok := value.(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}
