package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

// ProductCost fila persistida de la calculadora de costo por producto (multi-empresa).
// Position conserva el orden en que el painel muestra la tabla.
type ProductCost struct {
	ID              string
	CompanyID       string
	Name            string
	SalesMixPercent decimal.Decimal // 0–100; la suma entre productos no se exige
	Quantity        decimal.Decimal
	LabelsCost      decimal.Decimal // costo de rótulos por unidad
	UnitCost        decimal.Decimal
	Multiplier      decimal.Decimal
	FinalSalePrice  decimal.Decimal
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CostItem convierte la fila al valor que consume el calculador.
func (p *ProductCost) CostItem() commission.ProductCostItem {
	return commission.ProductCostItem{
		ID:              p.ID,
		Name:            p.Name,
		SalesMixPercent: p.SalesMixPercent,
		Quantity:        p.Quantity,
		LabelsCost:      p.LabelsCost,
		UnitCost:        p.UnitCost,
		Multiplier:      p.Multiplier,
		FinalSalePrice:  p.FinalSalePrice,
	}
}

// CostItems convierte una lista de filas.
func CostItems(list []*ProductCost) []commission.ProductCostItem {
	out := make([]commission.ProductCostItem, 0, len(list))
	for _, p := range list {
		out = append(out, p.CostItem())
	}
	return out
}
