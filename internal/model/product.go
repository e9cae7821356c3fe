package model

import "github.com/deppfellow/lazy-virtuoso/internal/validation"

// Product is stored in the "product" collection.
//
// Category is free text; the shop uses Art, Poetry, NFT and Clothing.
type Product struct {
	Base        `bson:",inline"`
	Name        string  `bson:"name" json:"name"`
	Description *string `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	ImageURL    string  `bson:"image_url" json:"image_url"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}

type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" validate:"required"`
	ImageURL    *string  `json:"image_url" validate:"required"`
	InStock     bool     `json:"in_stock"`
}

// SetDefaults makes in_stock true unless the client says otherwise.
func (r *CreateProductRequest) SetDefaults() {
	r.InStock = true
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateProductRequest) ToProduct() *Product {
	return &Product{
		Name:        value(r.Name),
		Description: r.Description,
		Price:       *r.Price,
		Category:    value(r.Category),
		ImageURL:    value(r.ImageURL),
		InStock:     r.InStock,
	}
}

// ListProductsRequest filters products by exact category.
type ListProductsRequest struct {
	Category string `query:"category"`
	Limit    int64  `query:"limit" validate:"min=0"`
}

func (r *ListProductsRequest) SetDefaults() {
	r.Limit = DefaultLimit
}

func (r *ListProductsRequest) Validate() error {
	return validation.Struct(r)
}
