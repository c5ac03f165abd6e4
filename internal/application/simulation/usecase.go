// Package simulation orquesta el calculador de bonos: resuelve la versión de tasas,
// toma los conteos de carrera, guarda corridas y genera el informe PDF.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

// Operaciones y resultados usados como etiquetas de métricas.
const (
	OpSimulate  = "simulate"
	OpEconomics = "economics"
	OpForecast  = "forecast"
	OpReport    = "report"

	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var hundred = decimal.NewFromInt(100)

// Deps dependencias del caso de uso.
type Deps struct {
	Rates    RateResolver
	Career   CareerSource
	Runs     repository.SimulationRunRepository
	Products repository.ProductCostRepository
	Reports  ReportGenerator
	Metrics  Recorder
	Log      *logger.Logger
}

// UseCase simulación de bonos, economía por producto y previsión de ventas.
type UseCase struct {
	rates    RateResolver
	career   CareerSource
	runs     repository.SimulationRunRepository
	products repository.ProductCostRepository
	reports  ReportGenerator
	metrics  Recorder
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	uc := &UseCase{
		rates:    d.Rates,
		career:   d.Career,
		runs:     d.Runs,
		products: d.Products,
		reports:  d.Reports,
		metrics:  d.Metrics,
		log:      d.Log,
		now:      time.Now,
	}
	if uc.metrics == nil {
		uc.metrics = nopRecorder{}
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	uc.log = uc.log.Named("simulation")
	return uc
}

// Simulate ejecuta una simulación y, si req.Save, la guarda con la versión de tasas usada.
func (uc *UseCase) Simulate(ctx context.Context, principal entity.Principal, req dto.SimulateRequest) (resp *dto.SimulationResponse, err error) {
	defer uc.observe(OpSimulate, time.Now(), &err)

	run, err := uc.run(ctx, principal, req)
	if err != nil {
		return nil, err
	}
	if req.Save {
		if err := uc.runs.Create(ctx, run); err != nil {
			return nil, err
		}
		uc.log.Info().
			Str("company_id", run.CompanyID).
			Str("run_id", run.ID).
			Int("rate_version", run.RateVersion).
			Msg("simulación guardada")
		return toSimulationResponse(run, true), nil
	}
	return toSimulationResponse(run, false), nil
}

// run calcula sin persistir.
func (uc *UseCase) run(ctx context.Context, principal entity.Principal, req dto.SimulateRequest) (*entity.SimulationRun, error) {
	if err := checkInputs(req); err != nil {
		return nil, err
	}
	calc, version, err := uc.calculator(ctx, principal.CompanyID, req.RateVersion)
	if err != nil {
		return nil, err
	}
	counts, err := uc.careerCounts(ctx, principal.CompanyID, req)
	if err != nil {
		return nil, err
	}
	inputs := req.Inputs()
	result := calc.Simulate(inputs, uc.career.Plan(), counts)
	return &entity.SimulationRun{
		ID:           uuid.New().String(),
		CompanyID:    principal.CompanyID,
		UserID:       principal.UserID,
		RateVersion:  version,
		Period:       req.Period,
		Rates:        calc.Rates(),
		Inputs:       inputs,
		CareerCounts: counts,
		Result:       result,
		CreatedAt:    uc.now(),
	}, nil
}

// checkInputs validación previa que el calculador no hace:
// precio del consultor mayor al del producto o Top SIGME fuera de 0–100.
func checkInputs(req dto.SimulateRequest) error {
	if req.ConsultantPrice.GreaterThan(req.ProductValue) {
		return fmt.Errorf("%w: consultant_price (%s) mayor que product_value (%s)",
			domain.ErrInvalidInput, req.ConsultantPrice, req.ProductValue)
	}
	if req.TopSigmePercent.IsNegative() || req.TopSigmePercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: top_sigme_percent fuera de 0–100", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) calculator(ctx context.Context, companyID string, version int) (*commission.Calculator, int, error) {
	rates, resolved, err := uc.rates.Resolve(ctx, companyID, version)
	if err != nil {
		return nil, 0, err
	}
	calc, err := commission.NewCalculator(rates)
	if err != nil {
		return nil, 0, err
	}
	return calc, resolved, nil
}

// careerCounts usa los conteos enviados; si no hay y se indicó período, los guardados.
func (uc *UseCase) careerCounts(ctx context.Context, companyID string, req dto.SimulateRequest) (commission.CareerAchieverCounts, error) {
	if req.CareerCounts != nil {
		return commission.CareerAchieverCounts(req.CareerCounts), nil
	}
	if req.Period == "" {
		return commission.CareerAchieverCounts{}, nil
	}
	stored, err := uc.career.Counts(ctx, companyID, req.Period)
	if err != nil {
		return nil, err
	}
	return stored.Counts, nil
}

// ProductEconomics economía por producto. Sin filas en línea usa el catálogo de la empresa.
func (uc *UseCase) ProductEconomics(ctx context.Context, companyID string, req dto.EconomicsRequest) (out *commission.ProductEconomics, err error) {
	defer uc.observe(OpEconomics, time.Now(), &err)

	items, err := uc.costItems(ctx, companyID, req.Products)
	if err != nil {
		return nil, err
	}
	calc, _, err := uc.calculator(ctx, companyID, 0)
	if err != nil {
		return nil, err
	}
	res := calc.ProductEconomics(items)
	return &res, nil
}

// SalesForecast previsión de ventas repartida según el mix de cada producto.
func (uc *UseCase) SalesForecast(ctx context.Context, companyID string, req dto.ForecastRequest) (out *commission.SalesForecast, err error) {
	defer uc.observe(OpForecast, time.Now(), &err)

	items, err := uc.costItems(ctx, companyID, req.Products)
	if err != nil {
		return nil, err
	}
	calc, _, err := uc.calculator(ctx, companyID, 0)
	if err != nil {
		return nil, err
	}
	res := calc.SalesForecast(items, req.ForecastUnits)
	return &res, nil
}

func (uc *UseCase) costItems(ctx context.Context, companyID string, inline []dto.ProductCostRequest) ([]commission.ProductCostItem, error) {
	if len(inline) > 0 {
		return dto.CostItems(inline), nil
	}
	list, err := uc.products.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return entity.CostItems(list), nil
}

// Report PDF de una corrida guardada (req.RunID) o de una simulación en línea.
func (uc *UseCase) Report(ctx context.Context, principal entity.Principal, req dto.ReportRequest) (pdf []byte, err error) {
	defer uc.observe(OpReport, time.Now(), &err)

	var run *entity.SimulationRun
	if req.RunID != "" {
		run, err = uc.getRun(ctx, principal.CompanyID, req.RunID)
	} else {
		run, err = uc.run(ctx, principal, req.SimulateRequest)
	}
	if err != nil {
		return nil, err
	}
	if req.RunID == "" {
		run.ID = "" // simulación en línea, sin corrida guardada
	}
	return uc.reports.SimulationReport(ctx, ReportData{
		CompanyName: req.CompanyName,
		RunID:       run.ID,
		GeneratedAt: uc.now(),
		RateVersion: run.RateVersion,
		Period:      run.Period,
		Rates:       run.Rates,
		Inputs:      run.Inputs,
		Result:      run.Result,
	})
}

// ListRuns corridas guardadas de la empresa.
func (uc *UseCase) ListRuns(ctx context.Context, companyID string, page dto.PageRequest) (*dto.SimulationListResponse, error) {
	page.DefaultPage()
	list, err := uc.runs.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SimulationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toSimulationResponse(r, true))
	}
	return &dto.SimulationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetRun corrida guardada. domain.ErrNotFound si no existe.
func (uc *UseCase) GetRun(ctx context.Context, companyID, id string) (*dto.SimulationResponse, error) {
	run, err := uc.getRun(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toSimulationResponse(run, true), nil
}

func (uc *UseCase) getRun(ctx context.Context, companyID, id string) (*entity.SimulationRun, error) {
	run, err := uc.runs.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, domain.ErrNotFound
	}
	return run, nil
}

func (uc *UseCase) observe(op string, start time.Time, err *error) {
	outcome := OutcomeOK
	switch {
	case *err == nil:
	case errors.Is(*err, domain.ErrInvalidInput), errors.Is(*err, domain.ErrNotFound), errors.Is(*err, domain.ErrConfigOutOfRange):
		outcome = OutcomeRejected
	default:
		outcome = OutcomeError
		uc.log.Error().Err(*err).Str("operation", op).Msg("cálculo fallido")
	}
	uc.metrics.ObserveCalculation(op, outcome, time.Since(start))
}

func toSimulationResponse(run *entity.SimulationRun, saved bool) *dto.SimulationResponse {
	resp := &dto.SimulationResponse{
		RateVersion:  run.RateVersion,
		Period:       run.Period,
		Rates:        run.Rates,
		Inputs:       run.Inputs,
		CareerCounts: run.CareerCounts,
		Result:       run.Result,
	}
	if saved {
		created := run.CreatedAt
		resp.RunID = run.ID
		resp.CreatedAt = &created
	}
	return resp
}
