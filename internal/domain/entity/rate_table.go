package entity

import (
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// RateTable versión auditable de las tasas del plan para una empresa.
// Solo una versión está activa; las anteriores se conservan para reproducir simulaciones.
type RateTable struct {
	ID        string
	CompanyID string
	Version   int // 1, 2, ... por empresa
	Rates     commission.Rates
	Active    bool
	Note      string
	CreatedBy string
	CreatedAt time.Time
}
