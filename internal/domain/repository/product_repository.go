package repository

import (
	"context"

	"github.com/carta-digital/carta-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCategoryAndID(ctx context.Context, categoryID, id string, activeOnly bool) (*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
