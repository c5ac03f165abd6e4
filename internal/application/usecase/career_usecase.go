package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

// CareerUseCase plan de carrera (PINs fijos) y conteos históricos por período.
type CareerUseCase struct {
	repo     repository.CareerCountsRepository
	tiers    []commission.CareerTier
	warnings []string
	now      func() time.Time
}

// NewCareerUseCase valida el plan una vez. Un plan inválido impide arrancar;
// las advertencias se exponen en Tiers.
func NewCareerUseCase(repo repository.CareerCountsRepository, tiers []commission.CareerTier) (*CareerUseCase, error) {
	warnings, err := commission.ValidateCareerPlan(tiers)
	if err != nil {
		return nil, err
	}
	plan := make([]commission.CareerTier, len(tiers))
	copy(plan, tiers)
	return &CareerUseCase{repo: repo, tiers: plan, warnings: warnings, now: time.Now}, nil
}

// Plan copia del plan vigente.
func (uc *CareerUseCase) Plan() []commission.CareerTier {
	out := make([]commission.CareerTier, len(uc.tiers))
	copy(out, uc.tiers)
	return out
}

// Warnings advertencias de la validación del plan.
func (uc *CareerUseCase) Warnings() []string {
	return append([]string(nil), uc.warnings...)
}

// Tiers plan con advertencias.
func (uc *CareerUseCase) Tiers() *dto.CareerTiersResponse {
	return &dto.CareerTiersResponse{Tiers: uc.Plan(), Warnings: uc.Warnings()}
}

// Progress avance hacia el PIN siguiente.
func (uc *CareerUseCase) Progress(q dto.CareerProgressQuery) (*commission.CareerProgress, error) {
	p, err := commission.ProgressToNextTier(uc.tiers, q.Tier, q.Cycles)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetCounts guarda los conteos de un período. PIN desconocido, conteo negativo o período
// mal formado devuelven domain.ErrInvalidInput.
func (uc *CareerUseCase) SetCounts(ctx context.Context, companyID, period string, counts map[string]int64) (*dto.CareerCountsResponse, error) {
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: período %q (esperado AAAA-MM o AAAA-Qn)", domain.ErrInvalidInput, period)
	}
	clean := make(commission.CareerAchieverCounts, len(counts))
	for name, n := range counts {
		if commission.FindTier(uc.tiers, name) < 0 {
			return nil, fmt.Errorf("%w: PIN desconocido %q", domain.ErrInvalidInput, name)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: conteo negativo para %q", domain.ErrInvalidInput, name)
		}
		clean[name] = n
	}
	c := &entity.CareerPeriodCounts{
		CompanyID: companyID,
		Period:    period,
		Counts:    clean,
		UpdatedAt: uc.now(),
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return toCareerCountsResponse(c), nil
}

// GetCounts conteos guardados. domain.ErrNotFound si el período no tiene registro.
func (uc *CareerUseCase) GetCounts(ctx context.Context, companyID, period string) (*dto.CareerCountsResponse, error) {
	c, err := uc.Counts(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	return toCareerCountsResponse(c), nil
}

// Counts fuente de conteos para la simulación.
func (uc *CareerUseCase) Counts(ctx context.Context, companyID, period string) (*entity.CareerPeriodCounts, error) {
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: período %q", domain.ErrInvalidInput, period)
	}
	c, err := uc.repo.Get(ctx, companyID, period)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toCareerCountsResponse(c *entity.CareerPeriodCounts) *dto.CareerCountsResponse {
	return &dto.CareerCountsResponse{Period: c.Period, Counts: c.Counts, UpdatedAt: c.UpdatedAt}
}
