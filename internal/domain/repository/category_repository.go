package repository

import (
	"context"

	"github.com/carta-digital/carta-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// activeOnly lo decide la política de visibilidad según la familia de endpoints.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByMenuAndID(ctx context.Context, menuID, id string, activeOnly bool) (*entity.Category, error)
	// GetByMenuAndSlug verifica la unicidad de slug dentro de la carta.
	GetByMenuAndSlug(ctx context.Context, menuID, slug string) (*entity.Category, error)
	ListByMenu(ctx context.Context, menuID string, activeOnly bool) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete es solo para tooling administrativo; con productos colgando
	// devuelve domain.ErrConflict (restrict-delete).
	Delete(ctx context.Context, id string) error
}
