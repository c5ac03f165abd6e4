package entity

import (
	"regexp"
	"time"

	"github.com/jhoicas/rs-bonus/internal/domain/commission"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2]|Q[1-4])$`)

// ValidPeriod acepta períodos mensuales (2026-03) o trimestrales (2026-Q1).
func ValidPeriod(period string) bool {
	return periodPattern.MatchString(period)
}

// CareerPeriodCounts conteo histórico de consultores que alcanzaron cada PIN en un período.
type CareerPeriodCounts struct {
	CompanyID string
	Period    string
	Counts    commission.CareerAchieverCounts
	UpdatedAt time.Time
}
