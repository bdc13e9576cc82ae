package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novashop/inventory/internal/adapters/http/handlers"
)

// RequireAPIKey rejects requests whose X-API-KEY header does not match the
// configured key. An empty configured key disables the check.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-KEY")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.NewErrorDocument(
				strconv.Itoa(http.StatusUnauthorized),
				"Unauthorized",
				"Missing or invalid API key",
			))
			return
		}

		c.Next()
	}
}
