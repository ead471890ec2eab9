package resolve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos dueños con sus cartas, categorías en ambos estados
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	resolver *resolve.Resolver

	owner      *entity.User
	otherOwner *entity.User

	menu      *entity.Menu // carta activa de owner
	otherMenu *entity.Menu // carta activa de otherOwner

	active   *entity.Category // categoría activa de menu
	inactive *entity.Category // categoría inactiva de menu

	product         *entity.Product // producto activo bajo active
	inactiveProduct *entity.Product // producto inactivo bajo active
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now()

	f := &fixture{
		store:    store,
		resolver: resolve.New(store.Menus(), store.Categories(), store.Products()),
		owner:    &entity.User{ID: "owner-1", Username: "dueno", Email: "dueno@example.com", UserType: entity.UserTypeOwner, IsActive: true},
		otherOwner: &entity.User{
			ID: "owner-2", Username: "vecino", Email: "vecino@example.com", UserType: entity.UserTypeOwner, IsActive: true,
		},
	}
	require.NoError(t, store.Users().Create(ctx, f.owner))
	require.NoError(t, store.Users().Create(ctx, f.otherOwner))

	f.menu = &entity.Menu{ID: "menu-1", OwnerID: f.owner.ID, Name: "Café del Centro", Slug: "cafe-del-centro", IsActive: true, CreatedAt: now, UpdatedAt: now}
	f.otherMenu = &entity.Menu{ID: "menu-2", OwnerID: f.otherOwner.ID, Name: "La Esquina", Slug: "la-esquina", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Menus().Create(ctx, f.menu))
	require.NoError(t, store.Menus().Create(ctx, f.otherMenu))

	f.active = &entity.Category{ID: "cat-1", MenuID: f.menu.ID, Name: "Calientes", Slug: "calientes", IsActive: true, CreatedAt: now, UpdatedAt: now}
	f.inactive = &entity.Category{ID: "cat-2", MenuID: f.menu.ID, Name: "De temporada", Slug: "de-temporada", IsActive: false, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Categories().Create(ctx, f.active))
	require.NoError(t, store.Categories().Create(ctx, f.inactive))

	f.product = &entity.Product{ID: "prod-1", CategoryID: f.active.ID, Name: "Espresso", IsActive: true, CreatedAt: now, UpdatedAt: now}
	f.inactiveProduct = &entity.Product{ID: "prod-2", CategoryID: f.active.ID, Name: "Granizado", IsActive: false, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Products().Create(ctx, f.product))
	require.NoError(t, store.Products().Create(ctx, f.inactiveProduct))

	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Familia del dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestOwnerMenu_ResuelveMiCartaActiva(t *testing.T) {
	f := newFixture(t)
	menu, err := f.resolver.OwnerMenu(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, f.menu.ID, menu.ID)
}

func TestOwnerMenu_SinCarta_RetornaMenuNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.resolver.OwnerMenu(context.Background(), "owner-sin-carta")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

// Una carta inactiva no se resuelve ni para su propio dueño.
func TestOwnerMenu_CartaInactiva_RetornaMenuNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.menu.IsActive = false
	require.NoError(t, f.store.Menus().Update(ctx, f.menu))

	_, err := f.resolver.OwnerMenu(ctx, f.owner.ID)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestOwnerCategory_VeInactivas(t *testing.T) {
	f := newFixture(t)
	_, category, err := f.resolver.OwnerCategory(context.Background(), f.owner.ID, f.inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, f.inactive.ID, category.ID)
	assert.False(t, category.IsActive)
}

// Pedir una categoría de otra carta devuelve 404, no 403: el alcance por
// carta hace que el recurso ajeno simplemente no exista para este dueño.
func TestOwnerCategory_CategoriaAjena_RetornaNotFound(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.resolver.OwnerCategory(context.Background(), f.otherOwner.ID, f.active.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestOwnerProduct_ResuelveJerarquiaCompleta(t *testing.T) {
	f := newFixture(t)
	menu, category, product, err := f.resolver.OwnerProduct(context.Background(), f.owner.ID, f.active.ID, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, f.menu.ID, menu.ID)
	assert.Equal(t, f.active.ID, category.ID)
	assert.Equal(t, f.product.ID, product.ID)
}

// La jerarquía corta en el primer nivel que falla: con una categoría
// inexistente el error es de categoría aunque el producto exista.
func TestOwnerProduct_CategoriaInexistente_CortaEnCategoria(t *testing.T) {
	f := newFixture(t)
	_, _, _, err := f.resolver.OwnerProduct(context.Background(), f.owner.ID, "no-existe", f.product.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

// Un producto bajo otra categoría (aunque sea de la misma carta) no resuelve.
func TestOwnerProduct_ProductoDeOtraCategoria_RetornaNotFound(t *testing.T) {
	f := newFixture(t)
	_, _, _, err := f.resolver.OwnerProduct(context.Background(), f.owner.ID, f.inactive.ID, f.product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Familia pública
// ──────────────────────────────────────────────────────────────────────────────

func TestPublicMenu_PorSlug(t *testing.T) {
	f := newFixture(t)
	menu, err := f.resolver.PublicMenu(context.Background(), "cafe-del-centro")
	require.NoError(t, err)
	assert.Equal(t, f.menu.ID, menu.ID)
}

func TestPublicMenu_CartaInactiva_RetornaMenuNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.menu.IsActive = false
	require.NoError(t, f.store.Menus().Update(ctx, f.menu))

	_, err := f.resolver.PublicMenu(ctx, "cafe-del-centro")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

// Para el cliente anónimo una categoría inactiva es indistinguible de una
// inexistente.
func TestPublicCategory_InactivaInvisible(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.resolver.PublicCategory(context.Background(), "cafe-del-centro", f.inactive.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestPublicCategory_ActivaResuelve(t *testing.T) {
	f := newFixture(t)
	_, category, err := f.resolver.PublicCategory(context.Background(), "cafe-del-centro", f.active.ID)
	require.NoError(t, err)
	assert.Equal(t, f.active.ID, category.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Familia del panel
// ──────────────────────────────────────────────────────────────────────────────

// El detalle del panel lee cualquier estado.
func TestStaffCategory_VeInactivas(t *testing.T) {
	f := newFixture(t)
	_, category, err := f.resolver.StaffCategory(context.Background(), "cafe-del-centro", f.inactive.ID)
	require.NoError(t, err)
	assert.False(t, category.IsActive)
}

func TestStaffMenuForWrite_DuenoPuede(t *testing.T) {
	f := newFixture(t)
	menu, err := f.resolver.StaffMenuForWrite(context.Background(), f.owner, "cafe-del-centro")
	require.NoError(t, err)
	assert.Equal(t, f.menu.ID, menu.ID)
}

func TestStaffMenuForWrite_AjenoRetornaForbidden(t *testing.T) {
	f := newFixture(t)
	_, err := f.resolver.StaffMenuForWrite(context.Background(), f.otherOwner, "cafe-del-centro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStaffMenuForWrite_SuperusuarioPuede(t *testing.T) {
	f := newFixture(t)
	super := &entity.User{ID: "admin-1", IsSuperuser: true}
	_, err := f.resolver.StaffMenuForWrite(context.Background(), super, "cafe-del-centro")
	assert.NoError(t, err)
}

// La resolución va primero: una carta inexistente responde not found aunque el
// principal tampoco tuviera permiso.
func TestStaffMenuForWrite_CartaInexistente_NotFoundAntesQueForbidden(t *testing.T) {
	f := newFixture(t)
	_, err := f.resolver.StaffMenuForWrite(context.Background(), f.otherOwner, "no-existe")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}
