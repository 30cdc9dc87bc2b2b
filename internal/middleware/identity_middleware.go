package middleware

import (
	"context"
	"strings"

	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityMiddleware parses an optional Bearer token and attaches the
// authenticated principal to the request context. A missing or invalid
// token is not an error here; the permission gate decides what an
// anonymous caller may do.
func IdentityMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		ctx := services.WithPrincipal(c.Request.Context(), services.Principal{
			UserID: userID,
			Role:   claims.Role,
		})
		ctx = context.WithValue(ctx, logger.UserIdKey, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
