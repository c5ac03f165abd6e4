package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

var _ repository.RateTableRepository = (*RateTableRepo)(nil)

const rateTableColumns = `id, company_id, version, matrix_bonus_rate, loyalty_bonus_rate, units_per_cycle,
	cycle_internal_value, global_cycle_bonus_per_cycle, high_multiplier_threshold,
	high_multiplier_credit_rate, low_multiplier_credit_rate, active, note, created_by, created_at`

// RateTableRepo versiones de tasas sobre PostgreSQL (pool o tx).
type RateTableRepo struct {
	q Querier
}

// NewRateTableRepository construye el adaptador.
func NewRateTableRepository(q Querier) *RateTableRepo {
	return &RateTableRepo{q: q}
}

// GetActive tabla activa de la empresa. (nil, nil) si nunca se publicó una.
func (r *RateTableRepo) GetActive(ctx context.Context, companyID string) (*entity.RateTable, error) {
	query := `SELECT ` + rateTableColumns + ` FROM rate_tables WHERE company_id = $1 AND active`
	return r.getOne(ctx, query, companyID)
}

// GetByVersion versión concreta, activa o histórica.
func (r *RateTableRepo) GetByVersion(ctx context.Context, companyID string, version int) (*entity.RateTable, error) {
	query := `SELECT ` + rateTableColumns + ` FROM rate_tables WHERE company_id = $1 AND version = $2`
	return r.getOne(ctx, query, companyID, version)
}

// List todas las versiones, la más reciente primero.
func (r *RateTableRepo) List(ctx context.Context, companyID string) ([]*entity.RateTable, error) {
	rows, err := r.q.Query(ctx, `SELECT `+rateTableColumns+` FROM rate_tables WHERE company_id = $1 ORDER BY version DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list rate tables: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.RateTable, 0)
	for rows.Next() {
		t, err := scanRateTable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rate table: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// MaxVersion última versión publicada (0 si ninguna).
func (r *RateTableRepo) MaxVersion(ctx context.Context, companyID string) (int, error) {
	var v int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM rate_tables WHERE company_id = $1`, companyID).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("max rate version: %w", err)
	}
	return v, nil
}

// DeactivateAll desactiva la tabla vigente. Se llama dentro de la tx de publicación.
func (r *RateTableRepo) DeactivateAll(ctx context.Context, companyID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE rate_tables SET active = false WHERE company_id = $1 AND active`, companyID); err != nil {
		return fmt.Errorf("deactivate rate tables: %w", err)
	}
	return nil
}

// Create inserta una versión. Una versión repetida (publicación concurrente) devuelve domain.ErrConflict.
func (r *RateTableRepo) Create(ctx context.Context, t *entity.RateTable) error {
	query := `INSERT INTO rate_tables (` + rateTableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	rt := t.Rates
	_, err := r.q.Exec(ctx, query,
		t.ID, t.CompanyID, t.Version, rt.MatrixBonusRate, rt.LoyaltyBonusRate, rt.UnitsPerCycle,
		rt.CycleInternalValue, rt.GlobalCycleBonusPerCycle, rt.HighMultiplierThreshold,
		rt.HighMultiplierCreditRate, rt.LowMultiplierCreditRate, t.Active, t.Note, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert rate table: %w", err)
	}
	return nil
}

func (r *RateTableRepo) getOne(ctx context.Context, query string, args ...any) (*entity.RateTable, error) {
	t, err := scanRateTable(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate table: %w", err)
	}
	return t, nil
}

func scanRateTable(row pgx.Row) (*entity.RateTable, error) {
	var t entity.RateTable
	rt := &t.Rates
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Version, &rt.MatrixBonusRate, &rt.LoyaltyBonusRate, &rt.UnitsPerCycle,
		&rt.CycleInternalValue, &rt.GlobalCycleBonusPerCycle, &rt.HighMultiplierThreshold,
		&rt.HighMultiplierCreditRate, &rt.LowMultiplierCreditRate, &t.Active, &t.Note, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
