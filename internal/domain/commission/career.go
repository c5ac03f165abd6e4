package commission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/domain"
)

// CareerPlanSize número de PINs del plan oficial.
const CareerPlanSize = 13

// DefaultCareerTiers devuelve el plan de carrera oficial (13 PINs, de Bronze a Diamante Black).
// Se devuelve una copia nueva en cada llamada.
func DefaultCareerTiers() []CareerTier {
	return []CareerTier{
		tier(1, "Pin Bronze", 5, "13.50"),
		tier(2, "Pin Prata", 15, "40.50"),
		tier(3, "Pin Ouro", 70, "189.00"),
		tier(4, "Pin Safira", 150, "405.00"),
		tier(5, "Pin Esmeralda", 300, "810.00"),
		tier(6, "Pin Topázio", 500, "1350.00"),
		tier(7, "Pin Rubi", 750, "2025.00"),
		tier(8, "Pin Diamante", 1500, "4050.00"),
		tier(9, "Pin Diamante Duplo", 3000, "18450.00"),
		tier(10, "Pin Diamante Triplo", 5000, "36450.00"),
		tier(11, "Pin Diamante Red", 15000, "105300.00"),
		tier(12, "Pin Diamante Blue", 25000, "67500.00"),
		tier(13, "Pin Diamante Black", 50000, "135000.00"),
	}
}

func tier(n int, name string, cycles int64, bonus string) CareerTier {
	return CareerTier{
		Code:             TierCode(n),
		Name:             name,
		CyclesRequired:   cycles,
		BonusPerAchiever: decimal.RequireFromString(bonus),
	}
}

// TierCode código del PIN en la posición n (1-based): PIN01, PIN02, ...
func TierCode(n int) string { return fmt.Sprintf("PIN%02d", n) }

// ValidateCareerPlan revisa la integridad del plan.
// Son errores: plan vacío, nombre vacío o repetido, código fuera de secuencia,
// ciclos no positivos o no estrictamente crecientes, bono negativo.
// Son advertencias: un plan que no tenga 13 PINs y un bono menor que el del PIN anterior.
func ValidateCareerPlan(tiers []CareerTier) (warnings []string, err error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("plan de carrera vacío: %w", domain.ErrInvalidInput)
	}
	if len(tiers) != CareerPlanSize {
		warnings = append(warnings, fmt.Sprintf("el plan tiene %d PINs, se esperaban %d", len(tiers), CareerPlanSize))
	}

	var errs []error
	seen := make(map[string]struct{}, len(tiers))
	for i, t := range tiers {
		pos := i + 1
		name := strings.TrimSpace(t.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("PIN %d: nombre vacío", pos))
		} else if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("PIN %d: nombre duplicado %q", pos, name))
		}
		seen[name] = struct{}{}

		if t.Code != "" && t.Code != TierCode(pos) {
			errs = append(errs, fmt.Errorf("PIN %d: código inválido, esperado %s, encontrado %s", pos, TierCode(pos), t.Code))
		}
		if t.CyclesRequired <= 0 {
			errs = append(errs, fmt.Errorf("PIN %d: cycles_required debe ser > 0", pos))
		}
		if t.BonusPerAchiever.IsNegative() {
			errs = append(errs, fmt.Errorf("PIN %d: bonus_per_achiever debe ser >= 0", pos))
		}
		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		if t.CyclesRequired <= prev.CyclesRequired {
			errs = append(errs, fmt.Errorf("PIN %d: cycles_required (%d) debe ser mayor que el de %s (%d)",
				pos, t.CyclesRequired, prev.Name, prev.CyclesRequired))
		}
		if t.BonusPerAchiever.LessThan(prev.BonusPerAchiever) {
			warnings = append(warnings, fmt.Sprintf("%s paga menos (%s) que %s (%s)",
				t.Name, t.BonusPerAchiever.StringFixed(2), prev.Name, prev.BonusPerAchiever.StringFixed(2)))
		}
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return warnings, nil
}

// FindTier busca un PIN por nombre y devuelve su índice, o -1.
func FindTier(tiers []CareerTier, name string) int {
	for i, t := range tiers {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// NextTier devuelve el PIN siguiente a name. ok=false en el último PIN o si name no existe.
func NextTier(tiers []CareerTier, name string) (CareerTier, bool) {
	i := FindTier(tiers, name)
	if i < 0 || i == len(tiers)-1 {
		return CareerTier{}, false
	}
	return tiers[i+1], true
}

// TierForCycles devuelve el PIN más alto cuyo requisito de ciclos se cumple.
func TierForCycles(tiers []CareerTier, cycles int64) (CareerTier, bool) {
	var best CareerTier
	found := false
	for _, t := range tiers {
		if t.CyclesRequired <= cycles {
			best = t
			found = true
		}
	}
	return best, found
}

// CareerProgress avance de un consultor hacia el siguiente PIN.
type CareerProgress struct {
	CurrentTier     string          `json:"current_tier"`
	NextTier        string          `json:"next_tier,omitempty"`
	CurrentCycles   int64           `json:"current_cycles"`
	RequiredCycles  int64           `json:"required_cycles"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	Remaining       int64           `json:"remaining"`
}

// ProgressToNextTier calcula el porcentaje (máx. 100, 2 decimales) y los ciclos
// restantes para pasar de current al PIN siguiente. En el último PIN el avance es 100.
func ProgressToNextTier(tiers []CareerTier, current string, cycles int64) (CareerProgress, error) {
	i := FindTier(tiers, current)
	if i < 0 {
		return CareerProgress{}, fmt.Errorf("PIN %q: %w", current, domain.ErrNotFound)
	}
	if cycles < 0 {
		cycles = 0
	}
	cur := tiers[i]
	next, ok := NextTier(tiers, current)
	if !ok {
		return CareerProgress{
			CurrentTier:     cur.Name,
			CurrentCycles:   cycles,
			RequiredCycles:  cur.CyclesRequired,
			ProgressPercent: hundred,
			Remaining:       0,
		}, nil
	}

	required := next.CyclesRequired
	progress := hundred
	if required > 0 {
		progress = decimal.NewFromInt(cycles).Div(decimal.NewFromInt(required)).Mul(hundred)
	}
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	remaining := required - cycles
	if remaining < 0 {
		remaining = 0
	}
	return CareerProgress{
		CurrentTier:     cur.Name,
		NextTier:        next.Name,
		CurrentCycles:   cycles,
		RequiredCycles:  required,
		ProgressPercent: progress.Round(2),
		Remaining:       remaining,
	}, nil
}
