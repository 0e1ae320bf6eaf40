package middleware

import (
	"crypto/subtle"
	"net/http"

	"payflux/pkg"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header clients authenticate with when key protection
// is enabled.
const APIKeyHeader = "x-api-key"

// APIKey rejects requests without the configured key. An empty configured key
// disables the check entirely.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			appErr := pkg.NewDomainErrorSimple("MISSING_API_KEY", "Missing API key", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			appErr := pkg.NewDomainErrorSimple("INVALID_API_KEY", "Invalid API key", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}
