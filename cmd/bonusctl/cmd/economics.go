package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/scenario"
	"github.com/jhoicas/rs-bonus/pkg/format"
)

var economicsCmd = &cobra.Command{
	Use:   "economics",
	Short: "Economía por producto y previsión de ventas del escenario",
	Args:  cobra.NoArgs,
	RunE:  runEconomics,
}

func init() {
	economicsCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "archivo YAML del escenario (- para stdin)")
	_ = economicsCmd.MarkFlagRequired("file")
}

type economicsOutput struct {
	Economics commission.ProductEconomics `json:"economics"`
	Forecast  *commission.SalesForecast   `json:"forecast,omitempty"`
}

func runEconomics(cmd *cobra.Command, _ []string) error {
	s, err := scenario.Load(scenarioFile)
	if err != nil {
		return err
	}
	if len(s.Products) == 0 {
		return fmt.Errorf("el escenario no tiene products")
	}
	base, err := baseRates()
	if err != nil {
		return err
	}
	calc, err := s.Calculator(base)
	if err != nil {
		return err
	}

	res := economicsOutput{Economics: calc.ProductEconomics(s.Products)}
	if s.ForecastUnits > 0 {
		fc := calc.SalesForecast(s.Products, s.ForecastUnits)
		res.Forecast = &fc
	}
	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return writeJSON(out, res)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Produto\tQtd\tVenda interna\tLucro 1\tLucro 2\tLucro líquido\t%")
	for _, r := range res.Economics.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, format.Number(r.Quantity, 0), format.BRL(r.InternalSalePrice), format.BRL(r.Profit1PerUnit),
			format.BRL(r.Profit2PerUnit), format.BRL(r.NetProfitPerUnit), format.Percent(r.NetProfitPercent))
	}
	t := res.Economics.Totals
	fmt.Fprintf(w, "Total\t%s\t%s\t%s\t%s\t%s\t\n",
		format.Number(t.TotalQuantity, 0), format.BRL(t.TotalInternalSalePrice), format.BRL(t.TotalProfit1),
		format.BRL(t.TotalProfit2), format.BRL(t.TotalNetProfit))
	if err := w.Flush(); err != nil {
		return err
	}

	if fc := res.Forecast; fc != nil {
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Previsão (%s unidades)\t\n", format.Count(fc.ForecastUnits))
		fmt.Fprintf(w, "Receita\t%s\n", format.BRL(fc.TotalRevenue))
		fmt.Fprintf(w, "Custo\t%s\n", format.BRL(fc.TotalCogs))
		fmt.Fprintf(w, "Lucro bruto\t%s\n", format.BRL(fc.GrossProfit))
		fmt.Fprintf(w, "Margem bruta\t%s\n", format.Percent(fc.GrossMarginPercent))
		return w.Flush()
	}
	return nil
}
