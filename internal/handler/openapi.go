package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API docs UI. The page loads its script from a
// CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	files fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		files:   static.Files,
	}
}

// ServeOpenAPIUI serves openapi.html uncached so doc edits show up at once.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.files, "openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(page)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
