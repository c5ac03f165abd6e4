package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/pkg/format"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Lista el plan de carrera",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tiers := commission.DefaultCareerTiers()
		warnings, err := commission.ValidateCareerPlan(tiers)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn().Str("warning", w).Msg("plan de carrera")
		}
		out := cmd.OutOrStdout()
		if outputFormat == "json" {
			return writeJSON(out, tiers)
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Código\tPIN\tCiclos\tBônus")
		for _, t := range tiers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Code, t.Name, format.Count(t.CyclesRequired), format.BRL(t.BonusPerAchiever))
		}
		return w.Flush()
	},
}
