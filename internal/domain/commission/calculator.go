package commission

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator evalúa las fórmulas del plan con un juego de tasas fijo.
// Es inmutable: se puede compartir entre goroutines sin sincronización.
// Construir con NewCalculator; el valor cero no cuenta ciclos ni aplica tasas.
type Calculator struct {
	rates Rates
}

// NewCalculator valida las tasas una sola vez y construye el calculador.
func NewCalculator(rates Rates) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("commission: %w", err)
	}
	return &Calculator{rates: rates}, nil
}

// MustCalculator igual que NewCalculator pero entra en pánico con tasas inválidas.
// Solo para tasas conocidas en tiempo de compilación (DefaultRates, tests).
func MustCalculator(rates Rates) *Calculator {
	c, err := NewCalculator(rates)
	if err != nil {
		panic(err)
	}
	return c
}

// Rates devuelve las tasas con que se construyó el calculador.
func (c *Calculator) Rates() Rates { return c.rates }

// Simulate calcula GMV, descuentos, receita, bonos y lucro neto.
//
// Entradas negativas se tratan como 0. Con TotalActivations = 0 todos los campos
// derivados de activaciones quedan en cero, pero CareerBonus se mantiene: el bono
// de carrera no depende del volumen de activaciones.
func (c *Calculator) Simulate(in SimulationInputs, tiers []CareerTier, counts CareerAchieverCounts) SimulationResult {
	activations := in.TotalActivations
	if activations < 0 {
		activations = 0
	}
	qty := decimal.NewFromInt(activations)
	productValue := clamp(in.ProductValue)
	consultantPrice := clamp(in.ConsultantPrice)
	topSigme := clamp(in.TopSigmePercent)

	gmv := qty.Mul(productValue)
	discount := qty.Mul(productValue.Sub(consultantPrice))
	revenue := qty.Mul(consultantPrice)

	var cycles int64
	if c.rates.UnitsPerCycle > 0 {
		cycles = activations / c.rates.UnitsPerCycle
	}
	cyclesDec := decimal.NewFromInt(cycles)
	matrix := revenue.Mul(c.rates.MatrixBonusRate)
	loyalty := revenue.Mul(c.rates.LoyaltyBonusRate)
	cycleRevenue := cyclesDec.Mul(c.rates.CycleInternalValue)
	globalCycle := cyclesDec.Mul(c.rates.GlobalCycleBonusPerCycle)
	topSigmePool := cycleRevenue.Mul(topSigme).Div(hundred)

	career, payouts := CareerBonus(tiers, counts)

	perActivation := activations
	if perActivation == 0 {
		perActivation = 1
	}

	total := matrix.Add(loyalty).Add(globalCycle).Add(topSigmePool).Add(career)

	return SimulationResult{
		GrossMerchandiseValue:   gmv,
		ConsultantDiscount:      discount,
		CompanyRevenue:          revenue,
		CycleCount:              cycles,
		CycleRevenue:            cycleRevenue,
		MatrixBonus:             matrix,
		LoyaltyBonus:            loyalty,
		GlobalCycleBonus:        globalCycle,
		TopSigmePool:            topSigmePool,
		CareerBonus:             career,
		CareerPayouts:           payouts,
		CareerCostPerActivation: career.Div(decimal.NewFromInt(perActivation)),
		TotalBonus:              total,
		NetProfit:               revenue.Sub(total),
	}
}

// CareerBonus suma counts[tier.Name] * tier.BonusPerAchiever sobre el plan.
// Nombres que no están en el plan se ignoran; conteos negativos cuentan como 0.
func CareerBonus(tiers []CareerTier, counts CareerAchieverCounts) (decimal.Decimal, []CareerPayout) {
	total := decimal.Zero
	payouts := make([]CareerPayout, 0, len(tiers))
	for _, t := range tiers {
		n := counts[t.Name]
		if n < 0 {
			n = 0
		}
		payout := decimal.NewFromInt(n).Mul(clamp(t.BonusPerAchiever))
		total = total.Add(payout)
		payouts = append(payouts, CareerPayout{Tier: t.Name, Achievers: n, Payout: payout})
	}
	return total, payouts
}

// ProductEconomics calcula la economía unitaria de cada producto y los totales
// ponderados por cantidad.
func (c *Calculator) ProductEconomics(products []ProductCostItem) ProductEconomics {
	out := ProductEconomics{
		Rows: make([]ProductEconomicsRow, 0, len(products)),
		Totals: PortfolioTotals{
			TotalQuantity:          decimal.Zero,
			TotalInternalSalePrice: decimal.Zero,
			TotalProfit1:           decimal.Zero,
			TotalFinalSalePrice:    decimal.Zero,
			TotalProfit2:           decimal.Zero,
			TotalNetProfit:         decimal.Zero,
		},
	}
	for _, p := range products {
		p = sanitizeProduct(p)
		row := c.productRow(p)
		out.Rows = append(out.Rows, row)

		t := &out.Totals
		t.TotalQuantity = t.TotalQuantity.Add(p.Quantity)
		t.TotalInternalSalePrice = t.TotalInternalSalePrice.Add(row.InternalSalePrice.Mul(p.Quantity))
		t.TotalProfit1 = t.TotalProfit1.Add(row.Profit1PerUnit.Mul(p.Quantity))
		t.TotalFinalSalePrice = t.TotalFinalSalePrice.Add(p.FinalSalePrice.Mul(p.Quantity))
		t.TotalProfit2 = t.TotalProfit2.Add(row.Profit2PerUnit.Mul(p.Quantity))
		t.TotalNetProfit = t.TotalNetProfit.Add(row.NetProfitPerUnit.Mul(p.Quantity))
	}
	return out
}

// Lucro 1 acredita el costo unitario completo con multiplicador alto y una
// fracción con multiplicador bajo; Lucro 2 es el margen sobre la venta interna.
func (c *Calculator) productRow(p ProductCostItem) ProductEconomicsRow {
	internal := p.UnitCost.Mul(p.Multiplier)

	credit := c.rates.LowMultiplierCreditRate
	if p.Multiplier.GreaterThanOrEqual(c.rates.HighMultiplierThreshold) {
		credit = c.rates.HighMultiplierCreditRate
	}
	profit1 := p.UnitCost.Mul(credit)
	profit2 := p.FinalSalePrice.Sub(internal)
	net := profit1.Add(profit2).Sub(p.LabelsCost)

	percent := decimal.Zero
	if p.FinalSalePrice.IsPositive() {
		percent = net.Div(p.FinalSalePrice).Mul(hundred)
	}

	return ProductEconomicsRow{
		ID:                p.ID,
		Name:              p.Name,
		Quantity:          p.Quantity,
		InternalSalePrice: internal,
		Profit1PerUnit:    profit1,
		Profit2PerUnit:    profit2,
		NetProfitPerUnit:  net,
		NetProfitPercent:  percent,
	}
}

// SalesForecast reparte forecastUnits según SalesMixPercent de cada producto.
// La mezcla no se normaliza: si no suma 100 el faturamento se sub o sobre estima.
func (c *Calculator) SalesForecast(products []ProductCostItem, forecastUnits int64) SalesForecast {
	if forecastUnits < 0 {
		forecastUnits = 0
	}
	units := decimal.NewFromInt(forecastUnits)
	revenue := decimal.Zero
	cogs := decimal.Zero
	for _, p := range products {
		p = sanitizeProduct(p)
		sold := units.Mul(p.SalesMixPercent).Div(hundred)
		revenue = revenue.Add(sold.Mul(p.FinalSalePrice))
		cogs = cogs.Add(sold.Mul(p.UnitCost.Add(p.LabelsCost)))
	}
	gross := revenue.Sub(cogs)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = gross.Div(revenue).Mul(hundred)
	}
	return SalesForecast{
		ForecastUnits:      forecastUnits,
		TotalRevenue:       revenue,
		TotalCogs:          cogs,
		GrossProfit:        gross,
		GrossMarginPercent: margin,
	}
}

func sanitizeProduct(p ProductCostItem) ProductCostItem {
	p.SalesMixPercent = clamp(p.SalesMixPercent)
	p.Quantity = clamp(p.Quantity)
	p.LabelsCost = clamp(p.LabelsCost)
	p.UnitCost = clamp(p.UnitCost)
	p.Multiplier = clamp(p.Multiplier)
	p.FinalSalePrice = clamp(p.FinalSalePrice)
	return p
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
