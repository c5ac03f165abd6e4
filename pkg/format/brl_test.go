package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rs-bonus/pkg/format"
)

func TestBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"39506.4", "R$ 39.506,40"},
		{"108", "R$ 108,00"},
		{"0", "R$ 0,00"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"0.05", "R$ 0,05"},
		{"-20493.6", "-R$ 20.493,60"},
		{"123456789012345678901.5", "R$ 123.456.789.012.345.678.901,50"},
		{"999.999", "R$ 1.000,00"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, format.BRL(decimal.RequireFromString(c.in)))
		})
	}
}

func TestPercentYCount(t *testing.T) {
	assert.Equal(t, "66,67%", format.Percent(decimal.RequireFromString("66.666")))
	assert.Equal(t, "50.000", format.Count(50000))
	assert.Equal(t, "166", format.Count(166))
	assert.Equal(t, "1.234", format.Number(decimal.RequireFromString("1234.4"), 0))
}
