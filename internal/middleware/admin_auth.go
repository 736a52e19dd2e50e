package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/reservation-api/internal/config"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards admin routes with a static shared secret.
// The key is read from the X-Admin-Key header, a Bearer token or the "key"
// query parameter. It matches ADMIN_KEY (constant time) or the bcrypt hash
// in ADMIN_KEY_BCRYPT. With neither configured every request is refused.
func AdminKeyMiddleware(cfg *config.Config) gin.HandlerFunc {
	plain := []byte(cfg.AdminKey)
	hashed := []byte(cfg.AdminKeyBcrypt)

	return func(c *gin.Context) {
		key := presentedKey(c)
		if key == "" {
			httperr.Unauthorized(c, "unauthorized")
			return
		}

		ok := false
		if len(plain) > 0 && subtle.ConstantTimeCompare([]byte(key), plain) == 1 {
			ok = true
		}
		if !ok && len(hashed) > 0 && bcrypt.CompareHashAndPassword(hashed, []byte(key)) == nil {
			ok = true
		}
		if !ok {
			httperr.Unauthorized(c, "unauthorized")
			return
		}

		c.Next()
	}
}

func presentedKey(c *gin.Context) string {
	if k := c.GetHeader(AdminKeyHeader); k != "" {
		return k
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Query("key")
}
