package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Acknowledge writes the {"ok":true} body used by every successful write.
func Acknowledge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RawJSON writes an already encoded JSON document.
func RawJSON(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json; charset=utf-8", body)
}
