package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

var _ repository.CareerCountsRepository = (*CareerCountsRepo)(nil)

// CareerCountsRepo conteos por período en una columna JSONB (nombre de PIN -> consultores).
type CareerCountsRepo struct {
	q Querier
}

// NewCareerCountsRepository construye el adaptador.
func NewCareerCountsRepository(q Querier) *CareerCountsRepo {
	return &CareerCountsRepo{q: q}
}

// Get conteos de un período. (nil, nil) si no hay registro.
func (r *CareerCountsRepo) Get(ctx context.Context, companyID, period string) (*entity.CareerPeriodCounts, error) {
	c := entity.CareerPeriodCounts{Counts: commission.CareerAchieverCounts{}}
	err := r.q.QueryRow(ctx,
		`SELECT company_id, period, counts, updated_at FROM career_counts WHERE company_id = $1 AND period = $2`,
		companyID, period,
	).Scan(&c.CompanyID, &c.Period, &c.Counts, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get career counts: %w", err)
	}
	return &c, nil
}

// Upsert reemplaza los conteos del período.
func (r *CareerCountsRepo) Upsert(ctx context.Context, c *entity.CareerPeriodCounts) error {
	counts := c.Counts
	if counts == nil {
		counts = commission.CareerAchieverCounts{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO career_counts (company_id, period, counts, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, period) DO UPDATE SET counts = EXCLUDED.counts, updated_at = EXCLUDED.updated_at`,
		c.CompanyID, c.Period, counts, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert career counts: %w", err)
	}
	return nil
}
