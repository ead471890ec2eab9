package repository

import (
	"context"

	"github.com/carta-digital/carta-api/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia para Menu (DIP).
// Los Get devuelven (nil, nil) cuando no hay fila.
type MenuRepository interface {
	Create(ctx context.Context, menu *entity.Menu) error
	GetByID(ctx context.Context, id string) (*entity.Menu, error)
	// GetActiveByOwner resuelve "mi carta activa" de la familia owner.
	GetActiveByOwner(ctx context.Context, ownerID string) (*entity.Menu, error)
	// GetActiveBySlug resuelve el direccionamiento público y del panel.
	GetActiveBySlug(ctx context.Context, slug string) (*entity.Menu, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Menu, error)
	Update(ctx context.Context, menu *entity.Menu) error
	// Delete es solo para tooling administrativo; con categorías colgando
	// devuelve domain.ErrConflict (restrict-delete).
	Delete(ctx context.Context, id string) error
}
