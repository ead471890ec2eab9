// Package memory implementa los puertos de persistencia en memoria, con la
// misma semántica que los adaptadores de PostgreSQL (incluido el contrato
// "(nil, nil) cuando no hay fila"). Se usa en tests y para desarrollo local
// sin base de datos.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

// Store agrupa los cuatro repositorios sobre el mismo estado compartido.
type Store struct {
	mu         sync.RWMutex
	users      map[string]*entity.User
	menus      map[string]*entity.Menu
	categories map[string]*entity.Category
	products   map[string]*entity.Product
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]*entity.User),
		menus:      make(map[string]*entity.Menu),
		categories: make(map[string]*entity.Category),
		products:   make(map[string]*entity.Product),
	}
}

// Users devuelve la vista UserRepository del store.
func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

// Menus devuelve la vista MenuRepository del store.
func (s *Store) Menus() repository.MenuRepository { return (*menuRepo)(s) }

// Categories devuelve la vista CategoryRepository del store.
func (s *Store) Categories() repository.CategoryRepository { return (*categoryRepo)(s) }

// Products devuelve la vista ProductRepository del store.
func (s *Store) Products() repository.ProductRepository { return (*productRepo)(s) }

var _ auth.TxRunner = (*Store)(nil)

// RunOwnerSignup ejecuta fn sobre los repos del store. En memoria no hay
// transacción real: sirve para tests del flujo de alta.
func (s *Store) RunOwnerSignup(ctx context.Context, fn func(users repository.UserRepository, menus repository.MenuRepository) error) error {
	return fn(s.Users(), s.Menus())
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type userRepo Store

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email ||
			(user.PhoneNumber != "" && u.PhoneNumber == user.PhoneNumber) {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier ||
			(u.PhoneNumber != "" && u.PhoneNumber == identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// ── Cartas ────────────────────────────────────────────────────────────────────

type menuRepo Store

func (r *menuRepo) Create(ctx context.Context, menu *entity.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.menus {
		if m.Slug == menu.Slug || m.OwnerID == menu.OwnerID {
			return domain.ErrDuplicate
		}
	}
	cp := *menu
	r.menus[menu.ID] = &cp
	return nil
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*entity.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.menus[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *menuRepo) GetActiveByOwner(ctx context.Context, ownerID string) (*entity.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.menus {
		if m.OwnerID == ownerID && m.IsActive {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *menuRepo) GetActiveBySlug(ctx context.Context, slug string) (*entity.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.menus {
		if m.Slug == slug && m.IsActive {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *menuRepo) GetBySlug(ctx context.Context, slug string) (*entity.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.menus {
		if m.Slug == slug {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *menuRepo) Update(ctx context.Context, menu *entity.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.menus[menu.ID]; ok {
		cp := *menu
		cp.Slug = existing.Slug // el slug nunca se regenera
		r.menus[menu.ID] = &cp
	}
	return nil
}

func (r *menuRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.MenuID == id {
			return domain.ErrConflict
		}
	}
	delete(r.menus, id)
	return nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type categoryRepo Store

func (r *categoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.Slug != "" {
		for _, c := range r.categories {
			if c.MenuID == category.MenuID && c.Slug == category.Slug {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *categoryRepo) GetByMenuAndID(ctx context.Context, menuID, id string, activeOnly bool) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok || c.MenuID != menuID || (activeOnly && !c.IsActive) {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *categoryRepo) GetByMenuAndSlug(ctx context.Context, menuID, slug string) (*entity.Category, error) {
	if slug == "" {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.MenuID == menuID && c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) ListByMenu(ctx context.Context, menuID string, activeOnly bool) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Category
	for _, c := range r.categories {
		if c.MenuID != menuID || (activeOnly && !c.IsActive) {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; ok {
		cp := *category
		r.categories[category.ID] = &cp
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.CategoryID == id {
			return domain.ErrConflict
		}
	}
	delete(r.categories, id)
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type productRepo Store

func (r *productRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *productRepo) GetByCategoryAndID(ctx context.Context, categoryID, id string, activeOnly bool) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok || p.CategoryID != categoryID || (activeOnly && !p.IsActive) {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.CategoryID != categoryID || (activeOnly && !p.IsActive) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *productRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		cp := *product
		r.products[product.ID] = &cp
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}
