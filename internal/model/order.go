package model

import "github.com/deppfellow/lazy-virtuoso/internal/validation"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem references a product by id. The reference is not checked
// against the product collection and stock is not reserved.
type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Order is stored in the "order" collection.
type Order struct {
	Base   `bson:",inline"`
	Items  []OrderItem `bson:"items" json:"items"`
	Email  string      `bson:"email" json:"email"`
	Total  float64     `bson:"total" json:"total"`
	Status OrderStatus `bson:"status" json:"status"`
}

type OrderItemRequest struct {
	ProductID *string `json:"product_id" validate:"required"`
	Quantity  *int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items  []OrderItemRequest `json:"items" validate:"required,dive"`
	Email  *string            `json:"email" validate:"required"`
	Total  *float64           `json:"total" validate:"required,gte=0"`
	Status OrderStatus        `json:"status" validate:"omitempty,oneof=pending paid shipped cancelled"`
}

func (r *CreateOrderRequest) SetDefaults() {
	r.Status = OrderStatusPending
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateOrderRequest) ToOrder() *Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ProductID: value(item.ProductID),
			Quantity:  *item.Quantity,
		})
	}

	status := r.Status
	if status == "" {
		status = OrderStatusPending
	}

	return &Order{
		Items:  items,
		Email:  value(r.Email),
		Total:  *r.Total,
		Status: status,
	}
}
