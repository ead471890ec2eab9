package usecase

import (
	"context"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

// CustomerUseCase familia pública: navegación anónima de una carta publicada
// por slug. Todo lo inactivo es invisible acá, sin excepción.
type CustomerUseCase struct {
	resolver   *resolve.Resolver
	categories repository.CategoryRepository
	products   repository.ProductRepository
	icons      IconStore
}

// NewCustomerUseCase construye el caso de uso público.
func NewCustomerUseCase(resolver *resolve.Resolver, categories repository.CategoryRepository, products repository.ProductRepository, icons IconStore) *CustomerUseCase {
	return &CustomerUseCase{resolver: resolver, categories: categories, products: products, icons: icons}
}

// ListCategories lista las categorías activas de una carta activa. Si la carta
// resuelve pero no tiene categorías activas, devuelve la colección vacía, no
// un error.
func (uc *CustomerUseCase) ListCategories(ctx context.Context, slug string) ([]dto.CustomerCategoryResponse, error) {
	menu, err := uc.resolver.PublicMenu(ctx, slug)
	if err != nil {
		return nil, err
	}
	list, err := uc.categories.ListByMenu(ctx, menu.ID, authz.ScopeCustomer.CategoryListActiveOnly())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCustomerCategory(uc.icons, c))
	}
	return items, nil
}

// GetCategory devuelve el detalle público de una categoría activa con sus
// productos activos anidados.
func (uc *CustomerUseCase) GetCategory(ctx context.Context, slug, categoryID string) (*dto.CustomerCategoryDetailResponse, error) {
	_, category, err := uc.resolver.PublicCategory(ctx, slug, categoryID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByCategory(ctx, category.ID, authz.ScopeCustomer.ProductsActiveOnly())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toCustomerProduct(uc.icons, p))
	}
	return &dto.CustomerCategoryDetailResponse{
		ID:       category.ID,
		Name:     category.Name,
		Icon:     iconURL(uc.icons, category.IconPath),
		Products: items,
	}, nil
}
