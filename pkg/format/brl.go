// Package format presenta montos y porcentajes en formato pt-BR (R$ 1.234,56).
// Solo para informes y CLI: la API devuelve decimales sin formato local.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Number redondea a places decimales y agrupa miles con punto y decimales con coma.
// Trabaja sobre los dígitos del decimal: sin pasar por float64 ni int64.
func Number(d decimal.Decimal, places int32) string {
	r := d.Round(places)
	neg := r.IsNegative()
	r = r.Abs()

	whole := r.Truncate(0)
	out := groupThousands(whole.String())
	if places > 0 {
		frac := r.Sub(whole).Shift(places).Truncate(0).String()
		out += "," + strings.Repeat("0", int(places)-len(frac)) + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta un punto cada tres dígitos desde la derecha.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// BRL monto en reales con dos decimales: R$ 39.506,40.
func BRL(d decimal.Decimal) string {
	n := Number(d, 2)
	if strings.HasPrefix(n, "-") {
		return "-R$ " + n[1:]
	}
	return "R$ " + n
}

// Percent porcentaje con dos decimales: 19,50%.
func Percent(d decimal.Decimal) string {
	return Number(d, 2) + "%"
}

// Count entero con separador de miles: 1.500.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}
