package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

var _ repository.SimulationRunRepository = (*SimulationRunRepo)(nil)

const simulationRunColumns = `id, company_id, user_id, rate_version, period, rates, inputs, career_counts, result, created_at`

// SimulationRunRepo simulaciones guardadas; entradas y resultado en JSONB (montos como string decimal).
type SimulationRunRepo struct {
	q Querier
}

// NewSimulationRunRepository construye el adaptador.
func NewSimulationRunRepository(q Querier) *SimulationRunRepo {
	return &SimulationRunRepo{q: q}
}

// Create persiste la corrida.
func (r *SimulationRunRepo) Create(ctx context.Context, run *entity.SimulationRun) error {
	_, err := r.q.Exec(ctx, `INSERT INTO simulation_runs (`+simulationRunColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		run.ID, run.CompanyID, run.UserID, run.RateVersion, run.Period, run.Rates,
		run.Inputs, run.CareerCounts, run.Result, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert simulation run: %w", err)
	}
	return nil
}

// GetByID corrida de la empresa. (nil, nil) si no existe.
func (r *SimulationRunRepo) GetByID(ctx context.Context, companyID, id string) (*entity.SimulationRun, error) {
	run, err := scanSimulationRun(r.q.QueryRow(ctx,
		`SELECT `+simulationRunColumns+` FROM simulation_runs WHERE company_id = $1 AND id = $2`, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get simulation run: %w", err)
	}
	return run, nil
}

// ListByCompany corridas más recientes primero.
func (r *SimulationRunRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SimulationRun, error) {
	limit, offset = normalizePage(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+simulationRunColumns+` FROM simulation_runs
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list simulation runs: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SimulationRun, 0)
	for rows.Next() {
		run, err := scanSimulationRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan simulation run: %w", err)
		}
		list = append(list, run)
	}
	return list, rows.Err()
}

func scanSimulationRun(row pgx.Row) (*entity.SimulationRun, error) {
	var run entity.SimulationRun
	err := row.Scan(
		&run.ID, &run.CompanyID, &run.UserID, &run.RateVersion, &run.Period, &run.Rates,
		&run.Inputs, &run.CareerCounts, &run.Result, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
