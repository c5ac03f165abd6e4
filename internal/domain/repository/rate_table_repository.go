package repository

import (
	"context"

	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// RateTableRepository persistencia de las versiones de tasas.
// GetActive y GetByVersion devuelven (nil, nil) si no hay registro.
type RateTableRepository interface {
	GetActive(ctx context.Context, companyID string) (*entity.RateTable, error)
	GetByVersion(ctx context.Context, companyID string, version int) (*entity.RateTable, error)
	List(ctx context.Context, companyID string) ([]*entity.RateTable, error)
	MaxVersion(ctx context.Context, companyID string) (int, error)
	DeactivateAll(ctx context.Context, companyID string) error
	Create(ctx context.Context, table *entity.RateTable) error
}
