package router

import (
	"net/http"

	"github.com/deppfellow/lazy-virtuoso/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the catalog routes under /api. Contact
// messages and orders are write-only.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/artworks", handler.Handle(h.Gallery.Handler, h.Gallery.ListArtworks, http.StatusOK))
	api.POST("/artworks", handler.Handle(h.Gallery.Handler, h.Gallery.CreateArtwork, http.StatusOK))

	api.GET("/poems", handler.Handle(h.Gallery.Handler, h.Gallery.ListPoems, http.StatusOK))
	api.POST("/poems", handler.Handle(h.Gallery.Handler, h.Gallery.CreatePoem, http.StatusOK))

	api.GET("/products", handler.Handle(h.Shop.Handler, h.Shop.ListProducts, http.StatusOK))
	api.POST("/products", handler.Handle(h.Shop.Handler, h.Shop.CreateProduct, http.StatusOK))

	api.POST("/orders", handler.Handle(h.Shop.Handler, h.Shop.CreateOrder, http.StatusOK))
	api.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.CreateMessage, http.StatusOK))
}
