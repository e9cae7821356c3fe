package handler

import (
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/internal/service"
)

// Handlers groups all HTTP handlers so the router gets a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Gallery *GalleryHandler
	Shop    *ShopHandler
	Contact *ContactHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Gallery: NewGalleryHandler(s, services.Content),
		Shop:    NewShopHandler(s, services.Shop),
		Contact: NewContactHandler(s, services.Contact),
	}
}
