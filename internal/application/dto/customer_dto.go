package dto

import "github.com/shopspring/decimal"

// CustomerCategoryResponse categoría vista por el cliente anónimo: solo lo público.
type CustomerCategoryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

// CustomerCategoryDetailResponse detalle público con productos activos anidados.
type CustomerCategoryDetailResponse struct {
	ID       string                    `json:"id"`
	Name     string                    `json:"name"`
	Icon     *string                   `json:"icon"`
	Products []CustomerProductResponse `json:"products"`
}

// CustomerProductResponse producto visto por el cliente anónimo.
type CustomerProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Icon  *string         `json:"icon"`
}
