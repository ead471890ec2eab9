package usecase

import (
	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/domain/entity"
)

func iconURL(icons IconStore, path string) *string {
	if path == "" {
		return nil
	}
	u := icons.URL(path)
	return &u
}

func toCategoryResponse(icons IconStore, c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Menu:      c.MenuID,
		Name:      c.Name,
		Slug:      c.Slug,
		Icon:      iconURL(icons, c.IconPath),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toProductResponse(icons IconStore, p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Category:  p.CategoryID,
		Name:      p.Name,
		Price:     p.Price,
		Icon:      iconURL(icons, p.IconPath),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCustomerCategory(icons IconStore, c *entity.Category) dto.CustomerCategoryResponse {
	return dto.CustomerCategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Icon: iconURL(icons, c.IconPath),
	}
}

func toCustomerProduct(icons IconStore, p *entity.Product) dto.CustomerProductResponse {
	return dto.CustomerProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Icon:  iconURL(icons, p.IconPath),
	}
}

