package repository

import (
	"context"

	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// CareerCountsRepository conteos históricos de PINs por período.
// Get devuelve (nil, nil) si el período no tiene conteos.
type CareerCountsRepository interface {
	Get(ctx context.Context, companyID, period string) (*entity.CareerPeriodCounts, error)
	Upsert(ctx context.Context, counts *entity.CareerPeriodCounts) error
}
