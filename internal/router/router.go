// Package router builds the Echo instance: global middleware, the error
// handler, system routes and the /api routes.
package router

import (
	"github.com/deppfellow/lazy-virtuoso/internal/handler"
	"github.com/deppfellow/lazy-virtuoso/internal/middleware"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id and the New Relic transaction must exist
// before the context enhancer builds the request logger. CORS runs first
// so preflights never count against the rate limit.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.RateLimit.Limit(),
	)

	registerSystemRoutes(r, h)
	registerAPIRoutes(r.Group("/api"), h)

	return r
}
