package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/handler"
)

// registerSystemRoutes registers "system" endpoints that are not part
// of business logic.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
