package entity

import (
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// SimulationRun simulación guardada junto con la versión de tasas que la produjo.
// RateVersion = 0 indica que se usaron las tasas por defecto de la configuración.
type SimulationRun struct {
	ID           string
	CompanyID    string
	UserID       string
	RateVersion  int
	Period       string // período de los conteos de carrera, si se tomaron de la DB
	Rates        commission.Rates
	Inputs       commission.SimulationInputs
	CareerCounts commission.CareerAchieverCounts
	Result       commission.SimulationResult
	CreatedAt    time.Time
}
