package middleware

import (
	"strings"

	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// apiPrefix is where the catalog routes live.
const apiPrefix = "/api/"

// catalogQueryParams are the list filters recorded on transactions.
var catalogQueryParams = []string{"tag", "category", "limit"}

// TracingMiddleware wraps requests in New Relic transactions.
// nrApp is nil when no license key is configured.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or passes requests
// through when New Relic is off.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the request id, the catalog
// collection the route serves and any list filters, then notices the
// returned error. It must run after NewRelicMiddleware and RequestID.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("service.environment", tm.server.Config.Primary.Env)

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			if collection := CatalogCollection(c.Request().URL.Path); collection != "" {
				txn.AddAttribute("catalog.collection", collection)

				query := c.QueryParams()
				for _, name := range catalogQueryParams {
					if v := query.Get(name); v != "" {
						txn.AddAttribute("catalog."+name, v)
					}
				}
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// CatalogCollection names the resource an /api path addresses:
// "/api/artworks?tag=ink" is "artworks". Other paths give "".
func CatalogCollection(path string) string {
	rest, ok := strings.CutPrefix(path, apiPrefix)
	if !ok {
		return ""
	}

	resource, _, _ := strings.Cut(rest, "/")
	return resource
}
