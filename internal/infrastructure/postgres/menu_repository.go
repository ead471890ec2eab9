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

var _ repository.MenuRepository = (*MenuRepo)(nil)

const menuColumns = `id, owner_id, name, slug, description, address, is_active, created_at, updated_at`

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador de persistencia para cartas.
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// Create persiste una nueva carta. Slug u owner duplicado → ErrDuplicate.
func (r *MenuRepo) Create(ctx context.Context, menu *entity.Menu) error {
	query := `
		INSERT INTO menus (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		menu.ID, menu.OwnerID, menu.Name, menu.Slug, menu.Description, menu.Address,
		menu.IsActive, menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// GetByID obtiene una carta por ID. Sin fila devuelve (nil, nil).
func (r *MenuRepo) GetByID(ctx context.Context, id string) (*entity.Menu, error) {
	return r.getOne(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = $1`, id)
}

// GetActiveByOwner resuelve "mi carta activa" del dueño.
func (r *MenuRepo) GetActiveByOwner(ctx context.Context, ownerID string) (*entity.Menu, error) {
	return r.getOne(ctx, `SELECT `+menuColumns+` FROM menus WHERE owner_id = $1 AND is_active`, ownerID)
}

// GetActiveBySlug resuelve el direccionamiento público y del panel por slug.
func (r *MenuRepo) GetActiveBySlug(ctx context.Context, slug string) (*entity.Menu, error) {
	return r.getOne(ctx, `SELECT `+menuColumns+` FROM menus WHERE slug = $1 AND is_active`, slug)
}

// GetBySlug obtiene una carta por slug en cualquier estado (chequeo de unicidad).
func (r *MenuRepo) GetBySlug(ctx context.Context, slug string) (*entity.Menu, error) {
	return r.getOne(ctx, `SELECT `+menuColumns+` FROM menus WHERE slug = $1`, slug)
}

// Update actualiza una carta. El slug no se toca: nunca se regenera después
// del primer guardado.
func (r *MenuRepo) Update(ctx context.Context, menu *entity.Menu) error {
	query := `
		UPDATE menus SET name = $2, description = $3, address = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		menu.ID, menu.Name, menu.Description, menu.Address, menu.IsActive, menu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	return nil
}

// Delete elimina una carta (solo tooling administrativo). Con categorías
// colgando devuelve ErrConflict (restrict-delete).
func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		if isRestrictViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}

func (r *MenuRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Menu, error) {
	var m entity.Menu
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.OwnerID, &m.Name, &m.Slug, &m.Description, &m.Address,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}
