package middleware

import (
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once from the application container.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic and decorates its transactions.
	Tracing *TracingMiddleware

	// RateLimit throttles clients per IP.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. Without a New
// Relic application the tracing middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
