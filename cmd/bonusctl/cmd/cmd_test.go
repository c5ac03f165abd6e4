package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
name: referencia
inputs:
  total_activations: 1000
  product_value: 120
  consultant_price: 60
  top_sigme_percent: 9
forecast_units: 100
products:
  - name: Kit Pro
    sales_mix_percent: 100
    quantity: 1
    labels_cost: 2
    unit_cost: 20
    multiplier: 5
    final_sale_price: 120
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenario), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulate_Tabla(t *testing.T) {
	out, err := run(t, "simulate", "-f", writeScenario(t), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Total de bônus")
	assert.Contains(t, out, "R$ 39.506,40")
	assert.Contains(t, out, "R$ 20.493,60")
}

func TestSimulate_JSON(t *testing.T) {
	out, err := run(t, "simulate", "-f", writeScenario(t), "--format", "json")
	require.NoError(t, err)

	var got simulateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "referencia", got.Scenario)
	assert.Equal(t, "39506.4", got.Result.TotalBonus.String())
}

func TestSimulate_FormatoInvalido(t *testing.T) {
	_, err := run(t, "simulate", "-f", writeScenario(t), "--format", "xml")
	assert.Error(t, err)
}

func TestEconomics_IncluyePrevision(t *testing.T) {
	out, err := run(t, "economics", "-f", writeScenario(t), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Kit Pro")
	assert.Contains(t, out, "Previsão (100 unidades)")
	assert.Contains(t, out, "R$ 12.000,00")
}

func TestTiers_ListaPlan(t *testing.T) {
	out, err := run(t, "tiers", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Pin Bronze")
	assert.Contains(t, out, "Pin Diamante Black")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--format", "table")
	require.NoError(t, err)
	assert.Equal(t, "bonusctl dev\n", out)
}
