package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

// RateTableUseCase versiones de tasas por empresa. Sin tabla publicada rigen las tasas
// por defecto de la configuración (versión 0).
type RateTableUseCase struct {
	repo     repository.RateTableRepository
	tx       RateTxRunner
	defaults commission.Rates
	log      *logger.Logger
	now      func() time.Time
}

// NewRateTableUseCase construye el caso de uso. defaults ya viene validado por config.Load.
func NewRateTableUseCase(repo repository.RateTableRepository, tx RateTxRunner, defaults commission.Rates, log *logger.Logger) *RateTableUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RateTableUseCase{repo: repo, tx: tx, defaults: defaults, log: log.Named("rates"), now: time.Now}
}

// Publish valida las tasas y las publica como versión max+1 activa, desactivando la anterior.
// Un campo fuera de rango devuelve un *commission.RateError (errors.Is domain.ErrConfigOutOfRange).
func (uc *RateTableUseCase) Publish(ctx context.Context, principal entity.Principal, in dto.PublishRatesRequest) (*dto.RateTableResponse, error) {
	if err := in.Rates.Validate(); err != nil {
		return nil, err
	}
	table := &entity.RateTable{
		ID:        uuid.New().String(),
		CompanyID: principal.CompanyID,
		Rates:     in.Rates,
		Active:    true,
		Note:      in.Note,
		CreatedBy: principal.UserID,
		CreatedAt: uc.now(),
	}
	err := uc.tx.RunRates(ctx, func(rates repository.RateTableRepository) error {
		last, err := rates.MaxVersion(ctx, principal.CompanyID)
		if err != nil {
			return err
		}
		if err := rates.DeactivateAll(ctx, principal.CompanyID); err != nil {
			return err
		}
		table.Version = last + 1
		return rates.Create(ctx, table)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", principal.CompanyID).
		Str("user_id", principal.UserID).
		Int("version", table.Version).
		Msg("tabla de tasas publicada")
	return toRateTableResponse(table), nil
}

// Active tabla vigente o, si no hay ninguna, las tasas por defecto.
func (uc *RateTableUseCase) Active(ctx context.Context, companyID string) (*dto.RateTableResponse, error) {
	t, err := uc.repo.GetActive(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return uc.defaultResponse(), nil
	}
	return toRateTableResponse(t), nil
}

// Get versión concreta. domain.ErrNotFound si no existe.
func (uc *RateTableUseCase) Get(ctx context.Context, companyID string, version int) (*dto.RateTableResponse, error) {
	if version == 0 {
		return uc.defaultResponse(), nil
	}
	t, err := uc.repo.GetByVersion(ctx, companyID, version)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toRateTableResponse(t), nil
}

// List historial de versiones, la más reciente primero.
func (uc *RateTableUseCase) List(ctx context.Context, companyID string) (*dto.RateTableListResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RateTableResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toRateTableResponse(t))
	}
	return &dto.RateTableListResponse{Items: items}, nil
}

// Resolve devuelve las tasas a usar en una simulación y su versión:
// version > 0 es una versión histórica; 0 toma la activa o, si no hay, las de configuración.
func (uc *RateTableUseCase) Resolve(ctx context.Context, companyID string, version int) (commission.Rates, int, error) {
	var (
		t   *entity.RateTable
		err error
	)
	if version > 0 {
		t, err = uc.repo.GetByVersion(ctx, companyID, version)
		if err == nil && t == nil {
			err = domain.ErrNotFound
		}
	} else {
		t, err = uc.repo.GetActive(ctx, companyID)
	}
	if err != nil {
		return commission.Rates{}, 0, err
	}
	if t == nil {
		return uc.defaults, 0, nil
	}
	return t.Rates, t.Version, nil
}

func (uc *RateTableUseCase) defaultResponse() *dto.RateTableResponse {
	return &dto.RateTableResponse{Version: 0, Active: true, Source: "default", Rates: uc.defaults}
}

func toRateTableResponse(t *entity.RateTable) *dto.RateTableResponse {
	created := t.CreatedAt
	return &dto.RateTableResponse{
		Version:   t.Version,
		Active:    t.Active,
		Source:    "table",
		Rates:     t.Rates,
		Note:      t.Note,
		CreatedBy: t.CreatedBy,
		CreatedAt: &created,
	}
}
