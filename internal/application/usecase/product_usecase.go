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

// ProductUseCase gestión de productos de la familia owner, siempre anidados
// bajo una categoría de "mi carta activa".
type ProductUseCase struct {
	resolver *resolve.Resolver
	products repository.ProductRepository
	icons    IconStore
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(resolver *resolve.Resolver, products repository.ProductRepository, icons IconStore, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{resolver: resolver, products: products, icons: icons, log: log}
}

// ListMine lista los productos de una categoría del dueño, en cualquier estado,
// con la envoltura {categoryName, categoryId, products}.
func (uc *ProductUseCase) ListMine(ctx context.Context, ownerID, categoryID string) (*dto.OwnerProductListResponse, error) {
	_, category, err := uc.resolver.OwnerCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.ListByCategory(ctx, category.ID, authz.ScopeOwner.ProductsActiveOnly())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(uc.icons, p))
	}
	return &dto.OwnerProductListResponse{CategoryName: category.Name, CategoryID: category.ID, Products: items}, nil
}

// CreateMine crea un producto bajo una categoría del dueño.
func (uc *ProductUseCase) CreateMine(ctx context.Context, ownerID, categoryID string, in dto.CreateProductRequest, icon *dto.IconUpload) (*dto.ProductResponse, error) {
	menu, category, err := uc.resolver.OwnerCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		Name:       in.Name,
		Price:      in.Price.Round(2),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if icon != nil {
		if err := validation.ValidateIcon(icon.Filename, icon.Size); err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.IconPath = productIconPath(menu.Slug, product.ID, icon.Filename)
	}

	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.storeIcon(ctx, product.IconPath, icon)
	return toProductResponse(uc.icons, product), nil
}

// GetMine devuelve un producto del dueño, en cualquier estado.
func (uc *ProductUseCase) GetMine(ctx context.Context, ownerID, categoryID, productID string) (*dto.ProductResponse, error) {
	_, _, product, err := uc.resolver.OwnerProduct(ctx, ownerID, categoryID, productID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(uc.icons, product), nil
}

// UpdateMine aplica un PATCH parcial sobre un producto del dueño.
func (uc *ProductUseCase) UpdateMine(ctx context.Context, ownerID, categoryID, productID string, in dto.UpdateProductRequest, icon *dto.IconUpload) (*dto.ProductResponse, error) {
	menu, _, product, err := uc.resolver.OwnerProduct(ctx, ownerID, categoryID, productID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}

	oldIcon := ""
	if icon != nil {
		if err := validation.ValidateIcon(icon.Filename, icon.Size); err != nil {
			return nil, domain.ErrInvalidInput
		}
		oldIcon = product.IconPath
		product.IconPath = productIconPath(menu.Slug, product.ID, icon.Filename)
	}

	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	if icon != nil && oldIcon != "" && oldIcon != product.IconPath {
		if err := uc.icons.Remove(ctx, oldIcon); err != nil {
			uc.log.Warn().Err(err).Str("path", oldIcon).Msg("no se pudo borrar el ícono reemplazado")
		}
	}
	uc.storeIcon(ctx, product.IconPath, icon)
	return toProductResponse(uc.icons, product), nil
}

func (uc *ProductUseCase) storeIcon(ctx context.Context, path string, icon *dto.IconUpload) {
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

func productIconPath(menuSlug, productID, filename string) string {
	return fmt.Sprintf("%s/product_icons/%s/%s", menuSlug, productID, filename)
}
