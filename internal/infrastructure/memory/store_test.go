package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/infrastructure/memory"
)

func seedMenuConCategoria(t *testing.T, store *memory.Store) (*entity.Menu, *entity.Category) {
	t.Helper()
	ctx := context.Background()
	menu := &entity.Menu{ID: uuid.NewString(), OwnerID: uuid.NewString(), Name: "La Esquina", Slug: "la-esquina", IsActive: true}
	require.NoError(t, store.Menus().Create(ctx, menu))
	category := &entity.Category{ID: uuid.NewString(), MenuID: menu.ID, Name: "Bebidas", Slug: "bebidas", IsActive: true}
	require.NoError(t, store.Categories().Create(ctx, category))
	return menu, category
}

// Borrar una carta con categorías se rechaza; al quedar sin hijas, procede.
func TestMenuDelete_RestriccionPorCategorias(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	menu, category := seedMenuConCategoria(t, store)

	err := store.Menus().Delete(ctx, menu.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.Menus().GetByID(ctx, menu.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la carta debe seguir existiendo tras el rechazo")

	require.NoError(t, store.Categories().Delete(ctx, category.ID))
	require.NoError(t, store.Menus().Delete(ctx, menu.ID))

	got, err = store.Menus().GetByID(ctx, menu.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Borrar una categoría con productos se rechaza; sin productos, procede.
func TestCategoryDelete_RestriccionPorProductos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, category := seedMenuConCategoria(t, store)

	product := &entity.Product{ID: uuid.NewString(), CategoryID: category.ID, Name: "Limonada", Price: decimal.NewFromFloat(3.50), IsActive: true}
	require.NoError(t, store.Products().Create(ctx, product))

	err := store.Categories().Delete(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.Categories().GetByMenuAndID(ctx, category.MenuID, category.ID, false)
	require.NoError(t, err)
	assert.NotNil(t, got, "la categoría debe seguir existiendo tras el rechazo")

	require.NoError(t, store.Products().Delete(ctx, product.ID))
	require.NoError(t, store.Categories().Delete(ctx, category.ID))

	got, err = store.Categories().GetByMenuAndID(ctx, category.MenuID, category.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got)
}
