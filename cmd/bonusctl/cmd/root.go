// Package cmd comandos de bonusctl.
package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/pkg/config"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

// Se sobrescribe en build con -ldflags "-X github.com/jhoicas/rs-bonus/cmd/bonusctl/cmd.version=..."
var version = "dev"

var (
	outputFormat string
	useEnvRates  bool
	verbose      bool

	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "bonusctl",
	Short: "Simulador offline del plan de bonos SIGME",
	Long: `bonusctl evalúa escenarios YAML con el motor de bonos de rs-bonus.

Examples:
  bonusctl simulate -f escenario.yaml
  bonusctl simulate -f escenario.yaml --format json
  bonusctl economics -f escenario.yaml
  bonusctl tiers`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		switch outputFormat {
		case "table", "json":
		default:
			return fmt.Errorf("formato %q no soportado (table, json)", outputFormat)
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		log = logger.New(logger.Config{Env: "development", Level: level, Service: "bonusctl", Out: cmd.ErrOrStderr()})
		return nil
	},
}

// Execute ejecuta la CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "formato de salida (table, json)")
	rootCmd.PersistentFlags().BoolVar(&useEnvRates, "env-rates", false, "tomar las tasas base de COMMISSION_* en lugar de las por defecto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log detallado en stderr")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(economicsCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(versionCmd)
}

// baseRates tasas sobre las que se aplican las sobrescrituras del escenario.
func baseRates() (commission.Rates, error) {
	if !useEnvRates {
		return commission.DefaultRates(), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return commission.Rates{}, err
	}
	return cfg.Commission, nil
}

func writeJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bonusctl %s\n", version)
	},
}
