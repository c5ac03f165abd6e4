package dto

import (
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// CareerTiersResponse plan de carrera vigente con las advertencias de validación.
type CareerTiersResponse struct {
	Tiers    []commission.CareerTier `json:"tiers"`
	Warnings []string                `json:"warnings,omitempty"`
}

// CareerProgressQuery parámetros de GET /api/career/progress.
type CareerProgressQuery struct {
	Tier   string `query:"tier" validate:"required,max=100"`
	Cycles int64  `query:"cycles" validate:"min=0"`
}

// CareerCountsRequest conteos de consultores por PIN para un período.
type CareerCountsRequest struct {
	Counts map[string]int64 `json:"counts" validate:"required"`
}

// CareerCountsResponse conteos guardados.
type CareerCountsResponse struct {
	Period    string                          `json:"period"`
	Counts    commission.CareerAchieverCounts `json:"counts"`
	UpdatedAt time.Time                       `json:"updated_at"`
}
