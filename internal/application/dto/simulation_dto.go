package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// SimulateRequest entrada del simulador de bonos.
// Sin career_counts ni period se simula sin bono de carrera.
// RateVersion > 0 reproduce la simulación con una versión histórica de tasas.
type SimulateRequest struct {
	TotalActivations int64            `json:"total_activations" validate:"min=0"`
	ProductValue     decimal.Decimal  `json:"product_value" validate:"gte=0"`
	ConsultantPrice  decimal.Decimal  `json:"consultant_price" validate:"gte=0"`
	TopSigmePercent  decimal.Decimal  `json:"top_sigme_percent" validate:"gte=0,lte=100"`
	CareerCounts     map[string]int64 `json:"career_counts" validate:"omitempty,dive,min=0"`
	Period           string           `json:"period" validate:"omitempty,period"`
	RateVersion      int              `json:"rate_version" validate:"min=0"`
	Save             bool             `json:"save"`
}

// Inputs convierte la petición a las entradas del calculador.
func (r SimulateRequest) Inputs() commission.SimulationInputs {
	return commission.SimulationInputs{
		TotalActivations: r.TotalActivations,
		ProductValue:     r.ProductValue,
		ConsultantPrice:  r.ConsultantPrice,
		TopSigmePercent:  r.TopSigmePercent,
	}
}

// SimulationResponse resultado de una simulación (guardada o no).
type SimulationResponse struct {
	RunID        string                          `json:"run_id,omitempty"`
	RateVersion  int                             `json:"rate_version"` // 0 = tasas por defecto
	Period       string                          `json:"period,omitempty"`
	Rates        commission.Rates                `json:"rates"`
	Inputs       commission.SimulationInputs     `json:"inputs"`
	CareerCounts commission.CareerAchieverCounts `json:"career_counts"`
	Result       commission.SimulationResult     `json:"result"`
	CreatedAt    *time.Time                      `json:"created_at,omitempty"`
}

// SimulationListResponse lista paginada de simulaciones guardadas.
type SimulationListResponse struct {
	Items []SimulationResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ReportRequest genera el PDF de una simulación guardada (RunID) o de una simulación en línea.
type ReportRequest struct {
	SimulateRequest
	RunID       string `json:"run_id" validate:"omitempty,uuid"`
	CompanyName string `json:"company_name" validate:"max=200"`
}
