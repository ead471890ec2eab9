package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// CategoryUseCase gestión de categorías de la familia owner: todo opera sobre
// "mi carta activa", nunca sobre un slug arbitrario.
type CategoryUseCase struct {
	resolver   *resolve.Resolver
	categories repository.CategoryRepository
	icons      IconStore
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(resolver *resolve.Resolver, categories repository.CategoryRepository, icons IconStore, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{resolver: resolver, categories: categories, icons: icons, log: log}
}

// ListMine lista todas las categorías de la carta del dueño, en cualquier
// estado: el dueño necesita ver lo inactivo para poder reactivarlo.
func (uc *CategoryUseCase) ListMine(ctx context.Context, ownerID string) (*dto.OwnerCategoryListResponse, error) {
	menu, err := uc.resolver.OwnerMenu(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list, err := uc.categories.ListByMenu(ctx, menu.ID, authz.ScopeOwner.CategoryListActiveOnly())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(uc.icons, c))
	}
	return &dto.OwnerCategoryListResponse{MenuName: menu.Name, Categories: items}, nil
}

// CreateMine crea una categoría bajo la carta activa del dueño. El slug se
// deriva del nombre si no viene y debe ser único dentro de la carta.
func (uc *CategoryUseCase) CreateMine(ctx context.Context, ownerID string, in dto.CreateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	menu, err := uc.resolver.OwnerMenu(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.create(ctx, menu, in, icon)
}

// GetMine devuelve una categoría de la carta del dueño, en cualquier estado.
func (uc *CategoryUseCase) GetMine(ctx context.Context, ownerID, categoryID string) (*dto.CategoryResponse, error) {
	_, category, err := uc.resolver.OwnerCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(uc.icons, category), nil
}

// UpdateMine aplica un PATCH parcial sobre una categoría del dueño.
func (uc *CategoryUseCase) UpdateMine(ctx context.Context, ownerID, categoryID string, in dto.UpdateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	menu, category, err := uc.resolver.OwnerCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, menu, category, in, icon)
}

// create es el tramo común de creación (familias owner y staff): el caller ya
// resolvió y autorizó la carta.
func (uc *CategoryUseCase) create(ctx context.Context, menu *entity.Menu, in dto.CreateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	slug := in.Slug
	if slug == "" {
		slug = validation.MakeSlug(in.Name)
	}
	if existing, err := uc.categories.GetByMenuAndSlug(ctx, menu.ID, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		MenuID:    menu.ID,
		Name:      in.Name,
		Slug:      slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if icon != nil {
		if err := validation.ValidateIcon(icon.Filename, icon.Size); err != nil {
			return nil, domain.ErrInvalidInput
		}
		category.IconPath = categoryIconPath(menu.Slug, category.ID, icon.Filename)
	}

	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.storeIcon(ctx, category.IconPath, icon)
	return toCategoryResponse(uc.icons, category), nil
}

// update es el tramo común de PATCH (familias owner y staff).
func (uc *CategoryUseCase) update(ctx context.Context, menu *entity.Menu, category *entity.Category, in dto.UpdateCategoryRequest, icon *dto.IconUpload) (*dto.CategoryResponse, error) {
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Slug != nil && *in.Slug != category.Slug {
		if existing, err := uc.categories.GetByMenuAndSlug(ctx, menu.ID, *in.Slug); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		category.Slug = *in.Slug
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	oldIcon := ""
	if icon != nil {
		if err := validation.ValidateIcon(icon.Filename, icon.Size); err != nil {
			return nil, domain.ErrInvalidInput
		}
		oldIcon = category.IconPath
		category.IconPath = categoryIconPath(menu.Slug, category.ID, icon.Filename)
	}

	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	if icon != nil && oldIcon != "" && oldIcon != category.IconPath {
		if err := uc.icons.Remove(ctx, oldIcon); err != nil {
			uc.log.Warn().Err(err).Str("path", oldIcon).Msg("no se pudo borrar el ícono reemplazado")
		}
	}
	uc.storeIcon(ctx, category.IconPath, icon)
	return toCategoryResponse(uc.icons, category), nil
}

// storeIcon guarda y reduce el ícono después del commit. Un fallo acá no
// revierte la escritura: se loggea y la petición sigue considerándose exitosa.
func (uc *CategoryUseCase) storeIcon(ctx context.Context, path string, icon *dto.IconUpload) {
	if icon == nil || path == "" {
		return
	}
	if err := uc.icons.Save(ctx, path, icon.Data); err != nil {
		uc.log.Error().Err(err).Str("path", path).Msg("no se pudo guardar el ícono")
		return
	}
	if err := uc.icons.ResizeToFit(ctx, path, iconMaxDimension, iconMaxDimension); err != nil {
		uc.log.Error().Err(err).Str("path", path).Msg("no se pudo reducir el ícono")
	}
}

func categoryIconPath(menuSlug, categoryID, filename string) string {
	return fmt.Sprintf("%s/category_icons/%s/%s", menuSlug, categoryID, filename)
}
