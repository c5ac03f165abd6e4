// Package commission implementa el motor de cálculo de bonificaciones SIGME
// (simulación de bonos, economía por producto, previsión de ventas y plan de carrera).
//
// Todas las funciones son puras: no hacen I/O, no leen el reloj y no mutan
// estado compartido. Un Calculator se construye una vez a partir de Rates
// validados y puede usarse desde varias goroutines a la vez.
package commission

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/domain"
)

// Rates tabla de tasas del plan de compensación. Antes eran literales dispersos
// en el simulador; ahora se versionan y se pasan explícitamente al calculador.
type Rates struct {
	MatrixBonusRate          decimal.Decimal `json:"matrix_bonus_rate" yaml:"matrix_bonus_rate"`                     // fracción de la receita que paga la red (0.195)
	LoyaltyBonusRate         decimal.Decimal `json:"loyalty_bonus_rate" yaml:"loyalty_bonus_rate"`                   // bono fidelidad (0.075)
	UnitsPerCycle            int64           `json:"units_per_cycle" yaml:"units_per_cycle"`                         // activaciones por ciclo (6)
	CycleInternalValue       decimal.Decimal `json:"cycle_internal_value" yaml:"cycle_internal_value"`               // valor interno de un ciclo (360)
	GlobalCycleBonusPerCycle decimal.Decimal `json:"global_cycle_bonus_per_cycle" yaml:"global_cycle_bonus_per_cycle"` // pago fijo por ciclo (108)
	HighMultiplierThreshold  decimal.Decimal `json:"high_multiplier_threshold" yaml:"high_multiplier_threshold"`     // multiplicador a partir del cual aplica el crédito alto (5)
	HighMultiplierCreditRate decimal.Decimal `json:"high_multiplier_credit_rate" yaml:"high_multiplier_credit_rate"` // crédito sobre costo unitario con multiplicador alto (1.0)
	LowMultiplierCreditRate  decimal.Decimal `json:"low_multiplier_credit_rate" yaml:"low_multiplier_credit_rate"`   // crédito con multiplicador bajo (0.8)
}

// DefaultRates devuelve las tasas vigentes del plan RS Prólipsi.
//
// GlobalCycleBonusPerCycle es un valor fijo (108 = 30% de 360) y no se deriva de
// CycleInternalValue: el cálculo porcentual fue revertido y sigue pendiente de
// confirmación por negocio.
func DefaultRates() Rates {
	return Rates{
		MatrixBonusRate:          decimal.RequireFromString("0.195"),
		LoyaltyBonusRate:         decimal.RequireFromString("0.075"),
		UnitsPerCycle:            6,
		CycleInternalValue:       decimal.NewFromInt(360),
		GlobalCycleBonusPerCycle: decimal.NewFromInt(108),
		HighMultiplierThreshold:  decimal.NewFromInt(5),
		HighMultiplierCreditRate: decimal.NewFromInt(1),
		LowMultiplierCreditRate:  decimal.RequireFromString("0.8"),
	}
}

// RateError describe un campo de Rates fuera de rango.
type RateError struct {
	Field  string
	Value  string
	Reason string
}

func (e *RateError) Error() string {
	return fmt.Sprintf("tasa %s=%s fuera de rango: %s", e.Field, e.Value, e.Reason)
}

// Unwrap permite errors.Is(err, domain.ErrConfigOutOfRange).
func (e *RateError) Unwrap() error { return domain.ErrConfigOutOfRange }

var one = decimal.NewFromInt(1)

// Validate rechaza tasas negativas, fracciones de pago mayores a 1 y ciclos sin activaciones.
// Devuelve todos los campos inválidos unidos con errors.Join.
func (r Rates) Validate() error {
	var errs []error

	fraction := func(field string, v decimal.Decimal) {
		switch {
		case v.IsNegative():
			errs = append(errs, &RateError{Field: field, Value: v.String(), Reason: "no puede ser negativa"})
		case v.GreaterThan(one):
			errs = append(errs, &RateError{Field: field, Value: v.String(), Reason: "debe estar entre 0 y 1"})
		}
	}
	nonNegative := func(field string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, &RateError{Field: field, Value: v.String(), Reason: "no puede ser negativo"})
		}
	}

	fraction("matrix_bonus_rate", r.MatrixBonusRate)
	fraction("loyalty_bonus_rate", r.LoyaltyBonusRate)
	if r.UnitsPerCycle <= 0 {
		errs = append(errs, &RateError{
			Field: "units_per_cycle", Value: fmt.Sprint(r.UnitsPerCycle), Reason: "debe ser mayor que 0",
		})
	}
	nonNegative("cycle_internal_value", r.CycleInternalValue)
	nonNegative("global_cycle_bonus_per_cycle", r.GlobalCycleBonusPerCycle)
	nonNegative("high_multiplier_threshold", r.HighMultiplierThreshold)
	nonNegative("high_multiplier_credit_rate", r.HighMultiplierCreditRate)
	nonNegative("low_multiplier_credit_rate", r.LowMultiplierCreditRate)

	return errors.Join(errs...)
}

// RateFields extrae los campos inválidos de un error devuelto por Validate.
func RateFields(err error) []string {
	if err == nil {
		return nil
	}
	var fields []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fields = append(fields, RateFields(e)...)
		}
		return fields
	}
	var re *RateError
	if errors.As(err, &re) {
		fields = append(fields, re.Field)
	}
	return fields
}
