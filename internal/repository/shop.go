package repository

import (
	"context"

	"github.com/deppfellow/lazy-virtuoso/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

type ProductRepository struct {
	collection
}

func NewProductRepository(store DocumentStore) *ProductRepository {
	return &ProductRepository{collection: newCollection(store, model.CollectionProduct)}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (string, error) {
	return r.insert(ctx, product)
}

// List returns up to limit products. category is matched exactly.
func (r *ProductRepository) List(ctx context.Context, category string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter, limit)
}

// OrderRepository only writes: orders are not listed back over the API.
type OrderRepository struct {
	collection
}

func NewOrderRepository(store DocumentStore) *OrderRepository {
	return &OrderRepository{collection: newCollection(store, model.CollectionOrder)}
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) (string, error) {
	return r.insert(ctx, order)
}

// ContactRepository only writes, like OrderRepository.
type ContactRepository struct {
	collection
}

func NewContactRepository(store DocumentStore) *ContactRepository {
	return &ContactRepository{collection: newCollection(store, model.CollectionContactMessage)}
}

func (r *ContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (string, error) {
	return r.insert(ctx, msg)
}
