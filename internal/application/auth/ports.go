package auth

import (
	"context"

	"github.com/carta-digital/carta-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de dueño (usuario + carta) dentro de una
// transacción: o se crean ambos o ninguno.
type TxRunner interface {
	RunOwnerSignup(ctx context.Context, fn func(users repository.UserRepository, menus repository.MenuRepository) error) error
}
