package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

func product(id, mix, qty, labels, unit, mult, final string) commission.ProductCostItem {
	return commission.ProductCostItem{
		ID:              id,
		Name:            "Produto " + id,
		SalesMixPercent: d(mix),
		Quantity:        d(qty),
		LabelsCost:      d(labels),
		UnitCost:        d(unit),
		Multiplier:      d(mult),
		FinalSalePrice:  d(final),
	}
}

func TestProductEconomics_UmbralDeMultiplicador(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics([]commission.ProductCostItem{
		product("alto", "0", "1", "0", "10", "5", "60"),
		product("bajo", "0", "1", "0", "10", "4", "60"),
		product("justo-debajo", "0", "1", "0", "10", "4.99", "60"),
	})
	require.Len(t, out.Rows, 3)
	assertDec(t, "10", out.Rows[0].Profit1PerUnit, "profit1 multiplicador 5")
	assertDec(t, "8", out.Rows[1].Profit1PerUnit, "profit1 multiplicador 4")
	assertDec(t, "8", out.Rows[2].Profit1PerUnit, "profit1 multiplicador 4.99")
}

// Inflamax Cps del painel: custo 14.81, multiplicador 4, venda final 60.
func TestProductEconomics_FilaCompleta(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics([]commission.ProductCostItem{
		product("1", "21", "1", "0", "14.81", "4", "60"),
	})
	row := out.Rows[0]
	assertDec(t, "59.24", row.InternalSalePrice, "internal_sale_price")
	assertDec(t, "11.848", row.Profit1PerUnit, "profit1")
	assertDec(t, "0.76", row.Profit2PerUnit, "profit2")
	assertDec(t, "12.608", row.NetProfitPerUnit, "net_profit")
	assertDec(t, "21.01", row.NetProfitPercent.Round(2), "net_profit_percent")
}

func TestProductEconomics_PrecioFinalCeroDaPorcentajeCero(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics([]commission.ProductCostItem{
		product("a", "0", "1", "0.50", "10", "4", "0"), // lucro líquido negativo
		product("b", "0", "1", "0", "10", "6", "0"),
	})
	for _, row := range out.Rows {
		assert.True(t, row.NetProfitPercent.IsZero(), "net_profit_percent debe ser 0 con precio final 0")
	}
	assert.True(t, out.Rows[0].NetProfitPerUnit.IsNegative())
}

func TestProductEconomics_TotalesPonderadosPorCantidad(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics([]commission.ProductCostItem{
		product("a", "0", "2", "1", "10", "5", "60"), // interna 50, l1 10, l2 10, neto 19
		product("b", "0", "3", "0", "10", "4", "45"), // interna 40, l1 8, l2 5, neto 13
	})
	tot := out.Totals
	assertDec(t, "5", tot.TotalQuantity, "total_quantity")
	assertDec(t, "220", tot.TotalInternalSalePrice, "total_internal_sale_price")
	assertDec(t, "44", tot.TotalProfit1, "total_profit1")
	assertDec(t, "255", tot.TotalFinalSalePrice, "total_final_sale_price")
	assertDec(t, "35", tot.TotalProfit2, "total_profit2")
	assertDec(t, "77", tot.TotalNetProfit, "total_net_profit")
}

func TestProductEconomics_ListaVacia(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics(nil)
	assert.Empty(t, out.Rows)
	assert.True(t, out.Totals.TotalNetProfit.IsZero())
}

func TestProductEconomics_CantidadNegativaCuentaComoCero(t *testing.T) {
	calc := newCalc(t)
	out := calc.ProductEconomics([]commission.ProductCostItem{
		product("a", "0", "-3", "0", "10", "5", "60"),
	})
	assert.True(t, out.Totals.TotalQuantity.IsZero())
	assert.True(t, out.Totals.TotalNetProfit.IsZero())
	assertDec(t, "20", out.Rows[0].NetProfitPerUnit, "net_profit_per_unit")
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesForecast
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesForecast_ReparteSegunMix(t *testing.T) {
	calc := newCalc(t)
	out := calc.SalesForecast([]commission.ProductCostItem{
		product("a", "50", "1", "1", "4", "4", "10"),
		product("b", "25", "1", "0", "5", "4", "20"),
	}, 100)

	assertDec(t, "1000", out.TotalRevenue, "total_revenue")
	assertDec(t, "375", out.TotalCogs, "total_cogs")
	assertDec(t, "625", out.GrossProfit, "gross_profit")
	assertDec(t, "62.5", out.GrossMarginPercent, "gross_margin_percent")
}

// La mezcla no se normaliza: 150% del mix sobreestima el faturamento.
func TestSalesForecast_MixNoNormalizado(t *testing.T) {
	calc := newCalc(t)
	out := calc.SalesForecast([]commission.ProductCostItem{
		product("a", "100", "1", "0", "1", "4", "10"),
		product("b", "50", "1", "0", "1", "4", "10"),
	}, 10)
	assertDec(t, "150", out.TotalRevenue, "total_revenue")
}

func TestSalesForecast_SinFaturamentoMargenCero(t *testing.T) {
	calc := newCalc(t)
	out := calc.SalesForecast([]commission.ProductCostItem{
		product("a", "0", "1", "1", "4", "4", "10"),
	}, 1000)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.GrossMarginPercent.IsZero())

	out = calc.SalesForecast(nil, -5)
	assert.Zero(t, out.ForecastUnits)
	assert.True(t, out.GrossMarginPercent.IsZero())
}
