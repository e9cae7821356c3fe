package handler

import (
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/internal/service"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// GalleryHandler serves artworks and poems.
type GalleryHandler struct {
	Handler
	content *service.ContentService
}

func NewGalleryHandler(s *server.Server, content *service.ContentService) *GalleryHandler {
	return &GalleryHandler{
		Handler: NewHandler(s),
		content: content,
	}
}

func (h *GalleryHandler) CreateArtwork(c echo.Context, req *model.CreateArtworkRequest) (*model.CreatedResponse, error) {
	return h.content.CreateArtwork(c.Request().Context(), req)
}

func (h *GalleryHandler) ListArtworks(c echo.Context, req *model.ListArtworksRequest) ([]bson.M, error) {
	return h.content.ListArtworks(c.Request().Context(), req)
}

func (h *GalleryHandler) CreatePoem(c echo.Context, req *model.CreatePoemRequest) (*model.CreatedResponse, error) {
	return h.content.CreatePoem(c.Request().Context(), req)
}

func (h *GalleryHandler) ListPoems(c echo.Context, req *model.ListPoemsRequest) ([]bson.M, error) {
	return h.content.ListPoems(c.Request().Context(), req)
}
