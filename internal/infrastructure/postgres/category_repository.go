package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, menu_id, name, slug, icon_path, is_active, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Slug repetido dentro de la carta → ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.MenuID, category.Name, category.Slug, category.IconPath,
		category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByMenuAndID obtiene una categoría por carta e ID; activeOnly según la
// familia de endpoints. Sin fila devuelve (nil, nil).
func (r *CategoryRepo) GetByMenuAndID(ctx context.Context, menuID, id string, activeOnly bool) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE menu_id = $1 AND id = $2`
	if activeOnly {
		query += ` AND is_active`
	}
	return r.getOne(ctx, query, menuID, id)
}

// GetByMenuAndSlug obtiene una categoría por carta y slug (unicidad por carta).
func (r *CategoryRepo) GetByMenuAndSlug(ctx context.Context, menuID, slug string) (*entity.Category, error) {
	if slug == "" {
		return nil, nil
	}
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE menu_id = $1 AND slug = $2`
	return r.getOne(ctx, query, menuID, slug)
}

// ListByMenu lista las categorías de una carta, más recientes primero.
func (r *CategoryRepo) ListByMenu(ctx context.Context, menuID string, activeOnly bool) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE menu_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, menuID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.MenuID, &c.Name, &c.Slug, &c.IconPath,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, slug = $3, icon_path = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Slug, category.IconPath, category.IsActive, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría (solo tooling administrativo). Con productos
// colgando devuelve ErrConflict (restrict-delete).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isRestrictViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.MenuID, &c.Name, &c.Slug, &c.IconPath, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
