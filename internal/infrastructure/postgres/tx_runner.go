package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rs-bonus/internal/application/usecase"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

var _ usecase.RateTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRates publica versiones de tasas: el repositorio queda atado a una tx serializable
// para que dos publicaciones concurrentes no obtengan la misma versión.
func (r *TxRunner) RunRates(ctx context.Context, fn func(rates repository.RateTableRepository) error) error {
	err := r.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, func(tx pgx.Tx) error {
		return fn(NewRateTableRepository(tx))
	})
	if err != nil && isSerializationFailure(err) {
		return domain.ErrConflict
	}
	return err
}

// run inicia la transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
