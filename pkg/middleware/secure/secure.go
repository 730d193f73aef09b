package secure

import (
	"github.com/gin-gonic/gin"
)

// Headers sets conservative browser-facing headers for the HTML surface.
// Pages carry per-user state, so responses must never be cached by
// intermediaries.
func Headers() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Cache-Control", "no-store")
		h.Set("Pragma", "no-cache")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")

		c.Next()
	}
}
