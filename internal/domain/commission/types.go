package commission

import "github.com/shopspring/decimal"

// SimulationInputs parámetros globales de la simulación de bonos SIGME.
type SimulationInputs struct {
	TotalActivations int64           `json:"total_activations" yaml:"total_activations"`
	ProductValue     decimal.Decimal `json:"product_value" yaml:"product_value"`       // precio final del kit
	ConsultantPrice  decimal.Decimal `json:"consultant_price" yaml:"consultant_price"` // precio para el consultor
	TopSigmePercent  decimal.Decimal `json:"top_sigme_percent" yaml:"top_sigme_percent"`
}

// ProductCostItem fila de la calculadora de costo y rentabilidad por producto.
// SalesMixPercent no necesita sumar 100 entre productos (mezclas parciales o de prueba).
type ProductCostItem struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	SalesMixPercent decimal.Decimal `json:"sales_mix_percent" yaml:"sales_mix_percent"`
	Quantity        decimal.Decimal `json:"quantity" yaml:"quantity"`
	LabelsCost      decimal.Decimal `json:"labels_cost" yaml:"labels_cost"`
	UnitCost        decimal.Decimal `json:"unit_cost" yaml:"unit_cost"`
	Multiplier      decimal.Decimal `json:"multiplier" yaml:"multiplier"`
	FinalSalePrice  decimal.Decimal `json:"final_sale_price" yaml:"final_sale_price"`
}

// CareerTier nivel (PIN) del plan de carrera.
type CareerTier struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	CyclesRequired   int64           `json:"cycles_required"`
	BonusPerAchiever decimal.Decimal `json:"bonus_per_achiever"`
}

// CareerAchieverCounts consultores que alcanzaron cada PIN en el período, por nombre de PIN.
type CareerAchieverCounts map[string]int64

// CareerPayout bono de carrera pagado por un PIN.
type CareerPayout struct {
	Tier      string          `json:"tier"`
	Achievers int64           `json:"achievers"`
	Payout    decimal.Decimal `json:"payout"`
}

// SimulationResult foto inmutable de una pasada de simulación.
type SimulationResult struct {
	GrossMerchandiseValue   decimal.Decimal `json:"gross_merchandise_value"`
	ConsultantDiscount      decimal.Decimal `json:"consultant_discount"`
	CompanyRevenue          decimal.Decimal `json:"company_revenue"`
	CycleCount              int64           `json:"cycle_count"`
	CycleRevenue            decimal.Decimal `json:"cycle_revenue"`
	MatrixBonus             decimal.Decimal `json:"matrix_bonus"`
	LoyaltyBonus            decimal.Decimal `json:"loyalty_bonus"`
	GlobalCycleBonus        decimal.Decimal `json:"global_cycle_bonus"`
	TopSigmePool            decimal.Decimal `json:"top_sigme_pool"`
	CareerBonus             decimal.Decimal `json:"career_bonus"`
	CareerPayouts           []CareerPayout  `json:"career_payouts"`
	CareerCostPerActivation decimal.Decimal `json:"career_cost_per_activation"`
	TotalBonus              decimal.Decimal `json:"total_bonus"`
	NetProfit               decimal.Decimal `json:"net_profit"`
}

// ProductEconomicsRow economía unitaria de un producto.
type ProductEconomicsRow struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Quantity          decimal.Decimal `json:"quantity"`
	InternalSalePrice decimal.Decimal `json:"internal_sale_price"`
	Profit1PerUnit    decimal.Decimal `json:"profit1_per_unit"`
	Profit2PerUnit    decimal.Decimal `json:"profit2_per_unit"`
	NetProfitPerUnit  decimal.Decimal `json:"net_profit_per_unit"`
	NetProfitPercent  decimal.Decimal `json:"net_profit_percent"`
}

// PortfolioTotals acumulados de la tabla de productos ponderados por cantidad.
type PortfolioTotals struct {
	TotalQuantity          decimal.Decimal `json:"total_quantity"`
	TotalInternalSalePrice decimal.Decimal `json:"total_internal_sale_price"`
	TotalProfit1           decimal.Decimal `json:"total_profit1"`
	TotalFinalSalePrice    decimal.Decimal `json:"total_final_sale_price"`
	TotalProfit2           decimal.Decimal `json:"total_profit2"`
	TotalNetProfit         decimal.Decimal `json:"total_net_profit"`
}

// ProductEconomics filas por producto más totales del portafolio.
type ProductEconomics struct {
	Rows   []ProductEconomicsRow `json:"rows"`
	Totals PortfolioTotals       `json:"totals"`
}

// SalesForecast resultado del simulador de ventas por mezcla.
type SalesForecast struct {
	ForecastUnits      int64           `json:"forecast_units"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalCogs          decimal.Decimal `json:"total_cogs"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
}
