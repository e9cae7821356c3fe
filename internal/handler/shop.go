package handler

import (
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"github.com/deppfellow/lazy-virtuoso/internal/service"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// ShopHandler serves products and orders.
type ShopHandler struct {
	Handler
	shop *service.ShopService
}

func NewShopHandler(s *server.Server, shop *service.ShopService) *ShopHandler {
	return &ShopHandler{
		Handler: NewHandler(s),
		shop:    shop,
	}
}

func (h *ShopHandler) CreateProduct(c echo.Context, req *model.CreateProductRequest) (*model.CreatedResponse, error) {
	return h.shop.CreateProduct(c.Request().Context(), req)
}

func (h *ShopHandler) ListProducts(c echo.Context, req *model.ListProductsRequest) ([]bson.M, error) {
	return h.shop.ListProducts(c.Request().Context(), req)
}

func (h *ShopHandler) CreateOrder(c echo.Context, req *model.CreateOrderRequest) (*model.CreatedWithStatusResponse, error) {
	return h.shop.CreateOrder(c.Request().Context(), req)
}
