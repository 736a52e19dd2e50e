package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadyCheck is a named dependency check for /readyz.
type ReadyCheck struct {
	Name  string
	Check func(context.Context) error
}

type HealthHandler struct {
	checks []ReadyCheck
}

func NewHealthHandler(checks ...ReadyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	var failures []string
	for _, check := range h.checks {
		if check.Check == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		err := check.Check(ctx)
		cancel()
		if err != nil {
			failures = append(failures, check.Name+": "+err.Error())
		}
	}

	if len(failures) > 0 {
		c.String(http.StatusServiceUnavailable, strings.Join(failures, "; "))
		return
	}
	c.String(http.StatusOK, "ok")
}
