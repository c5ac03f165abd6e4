package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// ProductCostRequest fila de la calculadora de costo (crear o reemplazar).
// ID solo se usa en filas enviadas en línea a economics/forecast.
type ProductCostRequest struct {
	ID              string          `json:"id,omitempty" validate:"max=64"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	SalesMixPercent decimal.Decimal `json:"sales_mix_percent" validate:"gte=0,lte=100"`
	Quantity        decimal.Decimal `json:"quantity" validate:"gte=0"`
	LabelsCost      decimal.Decimal `json:"labels_cost" validate:"gte=0"`
	UnitCost        decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	Multiplier      decimal.Decimal `json:"multiplier" validate:"gte=0"`
	FinalSalePrice  decimal.Decimal `json:"final_sale_price" validate:"gte=0"`
	Position        int             `json:"position" validate:"min=0"`
}

// CostItem convierte la fila en línea al valor del calculador.
func (r ProductCostRequest) CostItem() commission.ProductCostItem {
	return commission.ProductCostItem{
		ID:              r.ID,
		Name:            r.Name,
		SalesMixPercent: r.SalesMixPercent,
		Quantity:        r.Quantity,
		LabelsCost:      r.LabelsCost,
		UnitCost:        r.UnitCost,
		Multiplier:      r.Multiplier,
		FinalSalePrice:  r.FinalSalePrice,
	}
}

// ProductCostResponse fila persistida.
type ProductCostResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	SalesMixPercent decimal.Decimal `json:"sales_mix_percent"`
	Quantity        decimal.Decimal `json:"quantity"`
	LabelsCost      decimal.Decimal `json:"labels_cost"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	FinalSalePrice  decimal.Decimal `json:"final_sale_price"`
	Position        int             `json:"position"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductCostListResponse lista paginada del catálogo.
type ProductCostListResponse struct {
	Items []ProductCostResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// EconomicsRequest economía por producto. Sin products se usa el catálogo guardado.
type EconomicsRequest struct {
	Products []ProductCostRequest `json:"products" validate:"omitempty,max=500,dive"`
}

// ForecastRequest previsión de ventas para forecast_units unidades repartidas según el mix.
type ForecastRequest struct {
	ForecastUnits int64                `json:"forecast_units" validate:"min=0"`
	Products      []ProductCostRequest `json:"products" validate:"omitempty,max=500,dive"`
}

// CostItems convierte las filas en línea.
func CostItems(list []ProductCostRequest) []commission.ProductCostItem {
	out := make([]commission.ProductCostItem, 0, len(list))
	for _, p := range list {
		out = append(out, p.CostItem())
	}
	return out
}
