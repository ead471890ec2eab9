package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Con multipart los
// campos llegan por form; el ícono viaja aparte como archivo.
type CreateCategoryRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=60"`
	Slug     string `json:"slug" form:"slug" validate:"omitempty,max=60"`
	IsActive *bool  `json:"isActive" form:"isActive"`
}

// UpdateCategoryRequest entrada parcial (PATCH): solo se tocan los campos presentes.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" form:"name" validate:"omitempty,min=1,max=60"`
	Slug     *string `json:"slug" form:"slug" validate:"omitempty,max=60"`
	IsActive *bool   `json:"isActive" form:"isActive"`
}

// CategoryResponse salida de una categoría (familias owner y staff).
type CategoryResponse struct {
	ID        string    `json:"id"`
	Menu      string    `json:"menu"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	Icon      *string   `json:"icon"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerCategoryListResponse envoltura del listado del dueño.
type OwnerCategoryListResponse struct {
	MenuName   string             `json:"menuName"`
	Categories []CategoryResponse `json:"categories"`
}
