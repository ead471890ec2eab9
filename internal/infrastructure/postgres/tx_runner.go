package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOwnerSignup inicia una transacción con repos de usuarios y cartas atados
// a la tx, ejecuta fn y hace Commit o Rollback: el alta de dueño crea usuario
// y carta o ninguno de los dos.
func (r *TxRunner) RunOwnerSignup(ctx context.Context, fn func(users repository.UserRepository, menus repository.MenuRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	menus := NewMenuRepository(tx)

	if err := fn(users, menus); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
