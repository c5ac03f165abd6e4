package simulation

import (
	"context"
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// RateResolver tasas a aplicar y su versión (0 = configuración).
type RateResolver interface {
	Resolve(ctx context.Context, companyID string, version int) (commission.Rates, int, error)
}

// CareerSource plan de carrera vigente y conteos guardados por período.
type CareerSource interface {
	Plan() []commission.CareerTier
	Counts(ctx context.Context, companyID, period string) (*entity.CareerPeriodCounts, error)
}

// ReportData contenido del PDF de una simulación.
type ReportData struct {
	CompanyName string
	RunID       string
	GeneratedAt time.Time
	RateVersion int
	Period      string
	Rates       commission.Rates
	Inputs      commission.SimulationInputs
	Result      commission.SimulationResult
}

// ReportGenerator genera el PDF del informe y devuelve sus bytes.
type ReportGenerator interface {
	SimulationReport(ctx context.Context, data ReportData) ([]byte, error)
}

// Recorder registra métricas de las operaciones del calculador.
type Recorder interface {
	ObserveCalculation(operation, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(string, string, time.Duration) {}
