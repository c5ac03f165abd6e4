package repository

import (
	"context"

	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// SimulationRunRepository guarda y consulta simulaciones ejecutadas.
type SimulationRunRepository interface {
	Create(ctx context.Context, run *entity.SimulationRun) error
	GetByID(ctx context.Context, companyID, id string) (*entity.SimulationRun, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SimulationRun, error)
}
