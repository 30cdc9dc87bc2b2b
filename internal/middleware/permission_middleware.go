package middleware

import (
	"net/http"

	"github.com/RCOSDP/weko-itemtype/internal/i18n"
	"github.com/RCOSDP/weko-itemtype/internal/permissions"
	"github.com/RCOSDP/weko-itemtype/internal/services"
	"github.com/RCOSDP/weko-itemtype/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// NeedPermissions aborts the request when the permission factory
// denies the caller. With hidden set, denial answers 404 so the
// existence of the object is concealed; otherwise it answers 403 for
// authenticated callers and 401 for anonymous ones.
func NeedPermissions(factory permissions.Factory, hidden bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if factory == nil {
			c.Next()
			return
		}

		perm := factory(c.Request.Context())
		if perm != nil && perm.Can() {
			c.Next()
			return
		}

		if hidden {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		if _, authenticated := services.PrincipalFromContext(c.Request.Context()); authenticated {
			locale := i18n.SelectLocale(c.GetHeader("Accept-Language"))
			c.AbortWithStatusJSON(http.StatusForbidden, httpdto.NewErrorResponse(
				i18n.T(locale, "You do not have a permission for itemtype"), "FORBIDDEN"))
			return
		}
		c.AbortWithStatus(http.StatusUnauthorized)
	}
}
