package service

import (
	"context"

	"github.com/deppfellow/lazy-virtuoso/internal/lib/job"
	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"github.com/deppfellow/lazy-virtuoso/internal/repository"
	"github.com/deppfellow/lazy-virtuoso/internal/serialize"
	"github.com/deppfellow/lazy-virtuoso/internal/server"
	"go.mongodb.org/mongo-driver/bson"
)

// ShopService manages products and orders.
type ShopService struct {
	server   *server.Server
	products *repository.ProductRepository
	orders   *repository.OrderRepository
}

func NewShopService(s *server.Server, products *repository.ProductRepository, orders *repository.OrderRepository) *ShopService {
	return &ShopService{
		server:   s,
		products: products,
		orders:   orders,
	}
}

func (s *ShopService) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.CreatedResponse, error) {
	id, err := s.products.Create(ctx, req.ToProduct())
	if err != nil {
		return nil, storeError(s.server, err, s.products.Name(), "create product")
	}

	return &model.CreatedResponse{ID: id}, nil
}

func (s *ShopService) ListProducts(ctx context.Context, req *model.ListProductsRequest) ([]bson.M, error) {
	docs, err := s.products.List(ctx, req.Category, req.Limit)
	if err != nil {
		return nil, storeError(s.server, err, s.products.Name(), "list products")
	}

	return serialize.Documents(docs), nil
}

// CreateOrder stores the order as submitted. Product references are not
// resolved, stock is not reserved and no payment is taken: the response
// always reports the order as pending.
func (s *ShopService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreatedWithStatusResponse, error) {
	order := req.ToOrder()

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, storeError(s.server, err, s.orders.Name(), "create order")
	}

	items := make([]job.OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, job.OrderItemPayload{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	err = s.server.Job.EnqueueOrderReceived(ctx, job.OrderReceivedPayload{
		OrderID: id,
		Email:   order.Email,
		Items:   items,
		Total:   order.Total,
		Status:  string(order.Status),
	})
	if err != nil {
		s.server.Logger.Error().Err(err).Str("order_id", id).Msg("failed to enqueue order receipt")
	}

	return &model.CreatedWithStatusResponse{ID: id, Status: string(model.OrderStatusPending)}, nil
}
