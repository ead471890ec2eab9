package usecase

import (
	"context"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

// PanelUseCase familia elevada: categorías direccionadas por slug de carta.
// La lectura exige solo staff autenticado; la mutación exige además ser el
// dueño de la carta o superusuario.
type PanelUseCase struct {
	resolver   *resolve.Resolver
	categories repository.CategoryRepository
	categoryUC *CategoryUseCase
	icons      IconStore
}

// NewPanelUseCase construye el caso de uso del panel.
func NewPanelUseCase(resolver *resolve.Resolver, categories repository.CategoryRepository, categoryUC *CategoryUseCase, icons IconStore) *PanelUseCase {
	return &PanelUseCase{resolver: resolver, categories: categories, categoryUC: categoryUC, icons: icons}
}

// ListCategories lista las categorías activas de la carta (el listado del
// panel filtra is_active; el detalle no).
func (uc *PanelUseCase) ListCategories(ctx context.Context, slug string) ([]dto.CategoryResponse, error) {
	menu, err := uc.resolver.StaffMenu(ctx, slug)
	if err != nil {
		return nil, err
	}
	list, err := uc.categories.ListByMenu(ctx, menu.ID, authz.ScopeStaff.CategoryListActiveOnly())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(uc.icons, c))
	}
	return items, nil
}

// CreateCategory crea una categoría en la carta direccionada por slug.
// Principal ajeno a la carta y sin superusuario → ErrForbidden.
func (uc *PanelUseCase) CreateCategory(ctx context.Context, principal *entity.User, slug string, in dto.CreateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	menu, err := uc.resolver.StaffMenuForWrite(ctx, principal, slug)
	if err != nil {
		return nil, err
	}
	return uc.categoryUC.create(ctx, menu, in, icon)
}

// GetCategory devuelve el detalle de una categoría en cualquier estado.
func (uc *PanelUseCase) GetCategory(ctx context.Context, slug, categoryID string) (*dto.CategoryResponse, error) {
	_, category, err := uc.resolver.StaffCategory(ctx, slug, categoryID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(uc.icons, category), nil
}

// UpdateCategory aplica un PATCH sobre una categoría del panel. La resolución
// va primero: un id inexistente reporta 404 aunque el principal tampoco tenga
// permiso; el permiso se verifica sobre la carta ya resuelta.
func (uc *PanelUseCase) UpdateCategory(ctx context.Context, principal *entity.User, slug, categoryID string, in dto.UpdateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	menu, category, err := uc.resolver.StaffCategory(ctx, slug, categoryID)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageMenu(principal, menu) {
		return nil, domain.ErrForbidden
	}
	return uc.categoryUC.update(ctx, menu, category, in, icon)
}
