package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the API
// surface itself, kept separate from business routes.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health endpoint for load balancers and monitors.
	r.GET("/status", h.Health.CheckHealth)
}
