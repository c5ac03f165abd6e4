// Package scenario lee escenarios de simulación en YAML para bonusctl.
//
//	name: lanzamiento-kit
//	inputs:
//	  total_activations: 1000
//	  product_value: 120
//	  consultant_price: 60
//	  top_sigme_percent: 25
//	rates:
//	  matrix_bonus_rate: 0.21
//	career_counts:
//	  Pin Bronze: 2
//	forecast_units: 500
//	products:
//	  - name: Inflamax Cps
//	    sales_mix_percent: 21
//	    quantity: 1
//	    unit_cost: 14.81
//	    multiplier: 4
//	    final_sale_price: 60
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

var hundred = decimal.NewFromInt(100)

// Scenario entradas de una corrida offline.
type Scenario struct {
	Name          string                          `yaml:"name"`
	Inputs        commission.SimulationInputs     `yaml:"inputs"`
	Rates         RateOverrides                   `yaml:"rates"`
	CareerCounts  commission.CareerAchieverCounts `yaml:"career_counts"`
	Products      []commission.ProductCostItem    `yaml:"products"`
	ForecastUnits int64                           `yaml:"forecast_units"`
}

// RateOverrides reemplaza solo los campos presentes sobre las tasas base.
type RateOverrides struct {
	MatrixBonusRate          *decimal.Decimal `yaml:"matrix_bonus_rate"`
	LoyaltyBonusRate         *decimal.Decimal `yaml:"loyalty_bonus_rate"`
	UnitsPerCycle            *int64           `yaml:"units_per_cycle"`
	CycleInternalValue       *decimal.Decimal `yaml:"cycle_internal_value"`
	GlobalCycleBonusPerCycle *decimal.Decimal `yaml:"global_cycle_bonus_per_cycle"`
	HighMultiplierThreshold  *decimal.Decimal `yaml:"high_multiplier_threshold"`
	HighMultiplierCreditRate *decimal.Decimal `yaml:"high_multiplier_credit_rate"`
	LowMultiplierCreditRate  *decimal.Decimal `yaml:"low_multiplier_credit_rate"`
}

// Apply devuelve base con los campos sobrescritos, sin validar.
func (o RateOverrides) Apply(base commission.Rates) commission.Rates {
	set := func(dst *decimal.Decimal, v *decimal.Decimal) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.MatrixBonusRate, o.MatrixBonusRate)
	set(&base.LoyaltyBonusRate, o.LoyaltyBonusRate)
	if o.UnitsPerCycle != nil {
		base.UnitsPerCycle = *o.UnitsPerCycle
	}
	set(&base.CycleInternalValue, o.CycleInternalValue)
	set(&base.GlobalCycleBonusPerCycle, o.GlobalCycleBonusPerCycle)
	set(&base.HighMultiplierThreshold, o.HighMultiplierThreshold)
	set(&base.HighMultiplierCreditRate, o.HighMultiplierCreditRate)
	set(&base.LowMultiplierCreditRate, o.LowMultiplierCreditRate)
	return base
}

// Load lee y valida el archivo. "-" lee de stdin.
func Load(path string) (*Scenario, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("leer escenario: %w", err)
	}
	return Parse(raw)
}

// Parse decodifica el YAML. Claves desconocidas son un error para no ignorar tasas mal escritas.
func Parse(raw []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: escenario vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate aplica las mismas reglas de entrada que la API.
func (s *Scenario) Validate() error {
	in := s.Inputs
	switch {
	case in.TotalActivations < 0:
		return fmt.Errorf("%w: total_activations negativo", domain.ErrInvalidInput)
	case in.ProductValue.IsNegative(), in.ConsultantPrice.IsNegative():
		return fmt.Errorf("%w: precios negativos", domain.ErrInvalidInput)
	case in.ConsultantPrice.GreaterThan(in.ProductValue):
		return fmt.Errorf("%w: consultant_price (%s) mayor que product_value (%s)",
			domain.ErrInvalidInput, in.ConsultantPrice, in.ProductValue)
	case in.TopSigmePercent.IsNegative(), in.TopSigmePercent.GreaterThan(hundred):
		return fmt.Errorf("%w: top_sigme_percent fuera de 0–100", domain.ErrInvalidInput)
	case s.ForecastUnits < 0:
		return fmt.Errorf("%w: forecast_units negativo", domain.ErrInvalidInput)
	}
	for name, n := range s.CareerCounts {
		if n < 0 {
			return fmt.Errorf("%w: conteo negativo para %q", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

// Calculator construye el calculador con base y las sobrescrituras del escenario.
// Un campo fuera de rango devuelve el *commission.RateError correspondiente.
func (s *Scenario) Calculator(base commission.Rates) (*commission.Calculator, error) {
	return commission.NewCalculator(s.Rates.Apply(base))
}

// UnknownTiers PINs de career_counts que no existen en el plan, ordenados.
func (s *Scenario) UnknownTiers(tiers []commission.CareerTier) []string {
	var out []string
	for name := range s.CareerCounts {
		if commission.FindTier(tiers, name) < 0 {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
