// Package resolve implementa la resolución de recursos con alcance de
// propiedad: dado un principal (o ninguno) y los parámetros de ruta, devuelve
// la única entidad autorizada o un error de dominio definitivo. La resolución
// es estrictamente jerárquica (carta → categoría → producto) y corta en el
// primer nivel que falla.
package resolve

import (
	"context"

	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

// Resolver resuelve entidades según la familia de endpoints que consulta.
// No tiene efectos secundarios: la mutación la hace el caller después.
type Resolver struct {
	menus      repository.MenuRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// New construye el resolver.
func New(menus repository.MenuRepository, categories repository.CategoryRepository, products repository.ProductRepository) *Resolver {
	return &Resolver{menus: menus, categories: categories, products: products}
}

// OwnerMenu resuelve "mi carta activa" del dueño. No usa slug: un principal
// solo puede operar sobre una carta. Carta inactiva o inexistente → ErrMenuNotFound.
func (r *Resolver) OwnerMenu(ctx context.Context, ownerID string) (*entity.Menu, error) {
	menu, err := r.menus.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrMenuNotFound
	}
	return menu, nil
}

// OwnerCategory resuelve una categoría dentro de la carta del dueño, en
// cualquier estado. El alcance por carta ya garantiza la propiedad, por eso un
// id ajeno devuelve ErrCategoryNotFound y no ErrForbidden.
func (r *Resolver) OwnerCategory(ctx context.Context, ownerID, categoryID string) (*entity.Menu, *entity.Category, error) {
	menu, err := r.OwnerMenu(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	category, err := r.categories.GetByMenuAndID(ctx, menu.ID, categoryID, authz.ScopeOwner.CategoryDetailActiveOnly())
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, domain.ErrCategoryNotFound
	}
	return menu, category, nil
}

// OwnerProduct resuelve un producto dentro de una categoría del dueño.
func (r *Resolver) OwnerProduct(ctx context.Context, ownerID, categoryID, productID string) (*entity.Menu, *entity.Category, *entity.Product, error) {
	menu, category, err := r.OwnerCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, nil, nil, err
	}
	product, err := r.products.GetByCategoryAndID(ctx, category.ID, productID, authz.ScopeOwner.ProductsActiveOnly())
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		return nil, nil, nil, domain.ErrProductNotFound
	}
	return menu, category, product, nil
}

// PublicMenu resuelve una carta activa por slug, sin principal.
func (r *Resolver) PublicMenu(ctx context.Context, slug string) (*entity.Menu, error) {
	menu, err := r.menus.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrMenuNotFound
	}
	return menu, nil
}

// PublicCategory resuelve una categoría activa de una carta activa.
func (r *Resolver) PublicCategory(ctx context.Context, slug, categoryID string) (*entity.Menu, *entity.Category, error) {
	menu, err := r.PublicMenu(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	category, err := r.categories.GetByMenuAndID(ctx, menu.ID, categoryID, authz.ScopeCustomer.CategoryDetailActiveOnly())
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, domain.ErrCategoryNotFound
	}
	return menu, category, nil
}

// StaffMenu resuelve una carta activa por slug para el panel elevado. No
// filtra por dueño: cualquier staff autenticado puede direccionar cualquier
// carta para lectura.
func (r *Resolver) StaffMenu(ctx context.Context, slug string) (*entity.Menu, error) {
	menu, err := r.menus.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrMenuNotFound
	}
	return menu, nil
}

// StaffMenuForWrite resuelve la carta y además exige que el principal pueda
// mutarla (dueño o superusuario). Mismatch → ErrForbidden, nunca un not found.
func (r *Resolver) StaffMenuForWrite(ctx context.Context, principal *entity.User, slug string) (*entity.Menu, error) {
	menu, err := r.StaffMenu(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageMenu(principal, menu) {
		return nil, domain.ErrForbidden
	}
	return menu, nil
}

// StaffCategory resuelve una categoría del panel en cualquier estado (detalle).
func (r *Resolver) StaffCategory(ctx context.Context, slug, categoryID string) (*entity.Menu, *entity.Category, error) {
	menu, err := r.StaffMenu(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	category, err := r.categories.GetByMenuAndID(ctx, menu.ID, categoryID, authz.ScopeStaff.CategoryDetailActiveOnly())
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, domain.ErrCategoryNotFound
	}
	return menu, category, nil
}
