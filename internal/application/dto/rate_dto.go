package dto

import (
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// PublishRatesRequest nueva versión completa de tasas. Los rangos los valida commission.Rates.
type PublishRatesRequest struct {
	commission.Rates
	Note string `json:"note" validate:"max=500"`
}

// RateTableResponse versión de tasas. Source = "default" cuando la empresa no publicó ninguna.
type RateTableResponse struct {
	Version   int              `json:"version"`
	Active    bool             `json:"active"`
	Source    string           `json:"source"` // table | default
	Rates     commission.Rates `json:"rates"`
	Note      string           `json:"note,omitempty"`
	CreatedBy string           `json:"created_by,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty"`
}

// RateTableListResponse historial de versiones.
type RateTableListResponse struct {
	Items []RateTableResponse `json:"items"`
}
