// Package pdf genera el informe A4 de una simulación de bonos.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título    │  Fecha + versión de tasas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÁMETROS: activaciones / valores / Top SIGME / período    │
//	│  RESUMEN: GMV / descuento / receita / bonos / lucro          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA BONOS: Matriz | Fidelidad | Global | Top SIGME | PIN  │
//	│  TABLA CARRERA: PIN | Consultores | Bono                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: tasas aplicadas                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/pkg/format"
)

var _ simulation.ReportGenerator = (*ReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorNeg     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ReportGenerator implementa simulation.ReportGenerator con Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// SimulationReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) SimulationReport(_ context.Context, data simulation.ReportData) ([]byte, error) {
	company := nonEmpty(data.CompanyName, "RS Prólipsi")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Simulação de Bônus SIGME", true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(inputsRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(data)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(bonusRows(data)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(careerRows(data)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, data simulation.ReportData) core.Row {
	version := "tasas padrão"
	if data.RateVersion > 0 {
		version = fmt.Sprintf("tabela de tasas v%d", data.RateVersion)
	}
	right := []core.Component{
		text.New("SIMULAÇÃO DE BÔNUS", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New(data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 7, Color: colorGray,
		}),
		text.New(version, props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
	}
	left := []core.Component{
		text.New(company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
	}
	if data.RunID != "" {
		left = append(left, text.New("Simulação "+data.RunID, props.Text{Size: 7, Top: 10, Color: colorGray}))
	}
	return row.New(18).Add(col.New(7).Add(left...), col.New(5).Add(right...))
}

func inputsRows(data simulation.ReportData) []core.Row {
	in := data.Inputs
	rows := []core.Row{
		sectionTitle("PARÂMETROS"),
		pairRow("Total de ativações", format.Count(in.TotalActivations)),
		pairRow("Valor do produto", format.BRL(in.ProductValue)),
		pairRow("Preço consultor", format.BRL(in.ConsultantPrice)),
		pairRow("Top SIGME", format.Percent(in.TopSigmePercent)),
	}
	if data.Period != "" {
		rows = append(rows, pairRow("Período plano de carreira", data.Period))
	}
	return rows
}

func summaryRows(data simulation.ReportData) []core.Row {
	r := data.Result
	return []core.Row{
		sectionTitle("RESUMO FINANCEIRO"),
		pairRow("Valor bruto de mercadoria", format.BRL(r.GrossMerchandiseValue)),
		pairRow("Desconto consultores", format.BRL(r.ConsultantDiscount)),
		pairRow("Receita da empresa", format.BRL(r.CompanyRevenue)),
		pairRow("Total de bônus", format.BRL(r.TotalBonus)),
		moneyRow("Lucro líquido", r.NetProfit, true),
	}
}

func bonusRows(data simulation.ReportData) []core.Row {
	r := data.Result
	cycles := fmt.Sprintf("%s ciclos de %s", format.Count(r.CycleCount), format.BRL(data.Rates.GlobalCycleBonusPerCycle))
	topSigme := fmt.Sprintf("%s de %s", format.Percent(data.Inputs.TopSigmePercent), format.BRL(r.CycleRevenue))
	return []core.Row{
		sectionTitle("BÔNUS"),
		tableHeader([]string{"Bônus", "Base", "Valor"}, []int{4, 5, 3}),
		tableRow([]string{"Matriz SIGME", format.Percent(data.Rates.MatrixBonusRate.Mul(decimal.NewFromInt(100))) + " da receita", format.BRL(r.MatrixBonus)}, []int{4, 5, 3}),
		tableRow([]string{"Fidelidade", format.Percent(data.Rates.LoyaltyBonusRate.Mul(decimal.NewFromInt(100))) + " da receita", format.BRL(r.LoyaltyBonus)}, []int{4, 5, 3}),
		tableRow([]string{"Ciclo global", cycles, format.BRL(r.GlobalCycleBonus)}, []int{4, 5, 3}),
		tableRow([]string{"Top SIGME", topSigme, format.BRL(r.TopSigmePool)}, []int{4, 5, 3}),
		tableRow([]string{"Plano de carreira", fmt.Sprintf("%s por ativação", format.BRL(r.CareerCostPerActivation)), format.BRL(r.CareerBonus)}, []int{4, 5, 3}),
	}
}

func careerRows(data simulation.ReportData) []core.Row {
	sizes := []int{6, 3, 3}
	rows := []core.Row{
		sectionTitle("PLANO DE CARREIRA"),
		tableHeader([]string{"PIN", "Consultores", "Bônus"}, sizes),
	}
	paid := 0
	for _, p := range data.Result.CareerPayouts {
		if p.Achievers == 0 {
			continue
		}
		paid++
		rows = append(rows, tableRow([]string{p.Tier, format.Count(p.Achievers), format.BRL(p.Payout)}, sizes))
	}
	if paid == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Nenhum PIN alcançado no período.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		)))
	}
	return rows
}

func footerRow(data simulation.ReportData) core.Row {
	rt := data.Rates
	legend := fmt.Sprintf(
		"Tasas aplicadas: matriz %s, fidelidade %s, %d ativações por ciclo, valor interno do ciclo %s, "+
			"bônus global %s por ciclo, crédito %s (multiplicador ≥ %s) ou %s.",
		rt.MatrixBonusRate, rt.LoyaltyBonusRate, rt.UnitsPerCycle, format.BRL(rt.CycleInternalValue),
		format.BRL(rt.GlobalCycleBonusPerCycle), rt.HighMultiplierCreditRate, rt.HighMultiplierThreshold,
		rt.LowMultiplierCreditRate,
	)
	return row.New(10).Add(col.New(12).Add(text.New(legend, props.Text{Size: 6.5, Color: colorGray, Top: 2})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func pairRow(label, value string) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 8, Top: 0.5, Left: 1})),
		col.New(6).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 0.5, Right: 1})),
	)
}

// moneyRow fila destacada; en rojo si el monto es negativo.
func moneyRow(label string, v decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	color := colorPrimary
	if v.IsNegative() {
		color = colorNeg
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Style: style, Size: 9, Top: 1, Left: 1, Color: color})),
		col.New(6).Add(text.New(format.BRL(v), props.Text{Style: style, Size: 9, Align: align.Right, Top: 1, Right: 1, Color: color})),
	)
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Left
		if i == len(labels)-1 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Left
		if i == len(values)-1 {
			a = align.Right
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})))
	}
	return row.New(6).Add(cols...)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
