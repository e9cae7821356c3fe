package router

import (
	"github.com/deppfellow/lazy-virtuoso/internal/handler"
	"github.com/deppfellow/lazy-virtuoso/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// catalog: liveness, the store report, dependency health and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/test", h.Health.StoreReport)
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
