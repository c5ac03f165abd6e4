package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/scenario"
	"github.com/jhoicas/rs-bonus/pkg/format"
)

var scenarioFile string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simula los bonos de un escenario",
	Long: `Calcula GMV, bonos y lucro neto del escenario.

Examples:
  bonusctl simulate -f escenario.yaml
  cat escenario.yaml | bonusctl simulate -f - --format json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "archivo YAML del escenario (- para stdin)")
	_ = simulateCmd.MarkFlagRequired("file")
}

type simulateOutput struct {
	Scenario string                      `json:"scenario,omitempty"`
	Rates    commission.Rates            `json:"rates"`
	Inputs   commission.SimulationInputs `json:"inputs"`
	Result   commission.SimulationResult `json:"result"`
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	s, err := scenario.Load(scenarioFile)
	if err != nil {
		return err
	}
	base, err := baseRates()
	if err != nil {
		return err
	}
	calc, err := s.Calculator(base)
	if err != nil {
		return err
	}
	tiers := commission.DefaultCareerTiers()
	for _, name := range s.UnknownTiers(tiers) {
		log.Warn().Str("tier", name).Msg("PIN desconocido en career_counts, se ignora")
	}
	log.Debug().Str("scenario", s.Name).Int64("activations", s.Inputs.TotalActivations).Msg("simulando")

	res := calc.Simulate(s.Inputs, tiers, s.CareerCounts)
	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return writeJSON(out, simulateOutput{Scenario: s.Name, Rates: calc.Rates(), Inputs: s.Inputs, Result: res})
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	if s.Name != "" {
		fmt.Fprintf(w, "Escenario\t%s\t\n", s.Name)
	}
	rows := []struct {
		label string
		value string
	}{
		{"Ativações", format.Count(s.Inputs.TotalActivations)},
		{"Valor bruto de mercadoria", format.BRL(res.GrossMerchandiseValue)},
		{"Desconto consultores", format.BRL(res.ConsultantDiscount)},
		{"Receita da empresa", format.BRL(res.CompanyRevenue)},
		{"Ciclos", format.Count(res.CycleCount)},
		{"Bônus matriz", format.BRL(res.MatrixBonus)},
		{"Bônus fidelidade", format.BRL(res.LoyaltyBonus)},
		{"Bônus ciclo global", format.BRL(res.GlobalCycleBonus)},
		{"Top SIGME", format.BRL(res.TopSigmePool)},
		{"Plano de carreira", format.BRL(res.CareerBonus)},
		{"Total de bônus", format.BRL(res.TotalBonus)},
		{"Lucro líquido", format.BRL(res.NetProfit)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t\n", r.label, r.value)
	}
	return w.Flush()
}
