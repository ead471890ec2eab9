package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto bajo una categoría.
type CreateProductRequest struct {
	Name     string          `json:"name" form:"name" validate:"required,min=1,max=60"`
	Price    decimal.Decimal `json:"price" form:"price"`
	IsActive *bool           `json:"isActive" form:"isActive"`
}

// UpdateProductRequest entrada parcial (PATCH).
type UpdateProductRequest struct {
	Name     *string          `json:"name" form:"name" validate:"omitempty,min=1,max=60"`
	Price    *decimal.Decimal `json:"price" form:"price"`
	IsActive *bool            `json:"isActive" form:"isActive"`
}

// ProductResponse salida de un producto (familia owner).
type ProductResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Icon      *string         `json:"icon"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OwnerProductListResponse envoltura del listado de productos del dueño.
type OwnerProductListResponse struct {
	CategoryName string            `json:"categoryName"`
	CategoryID   string            `json:"categoryId"`
	Products     []ProductResponse `json:"products"`
}
