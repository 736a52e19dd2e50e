package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DevOrigin is answered when a request carries no Origin header, so a page
// served by a local static server can still call the API.
const DevOrigin = "http://127.0.0.1:5500"

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = DevOrigin
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key, Authorization")
		h.Set("Access-Control-Max-Age", "86400")

		// PRE-FLIGHT
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
