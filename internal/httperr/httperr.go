package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code string `json:"error"`
}

// Write aborts the request with a {"error": code} body.
func Write(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{Code: code})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

func Unauthorized(c *gin.Context, code string) {
	Write(c, http.StatusUnauthorized, code)
}

func Conflict(c *gin.Context, code string) {
	Write(c, http.StatusConflict, code)
}

func TooManyRequests(c *gin.Context, code string) {
	Write(c, http.StatusTooManyRequests, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}

func Unavailable(c *gin.Context, code string) {
	Write(c, http.StatusServiceUnavailable, code)
}
