package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/rs-bonus/internal/interfaces/http"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

type testServer struct {
	app      *fiber.App
	runs     *memRuns
	products *memProducts
	reports  *fakeReports
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.Nop()
	rates := &memRates{}
	counts := &memCounts{rows: map[string]*entity.CareerPeriodCounts{}}
	s := &testServer{runs: &memRuns{}, products: &memProducts{}, reports: &fakeReports{}}

	rateUC := usecase.NewRateTableUseCase(rates, rates, commission.DefaultRates(), log)
	careerUC, err := usecase.NewCareerUseCase(counts, commission.DefaultCareerTiers())
	require.NoError(t, err)
	productUC := usecase.NewProductCostUseCase(s.products)

	reg := prometheus.NewRegistry()
	m := metrics.New("rs_bonus_test", reg)
	simUC := simulation.NewUseCase(simulation.Deps{
		Rates:    rateUC,
		Career:   careerUC,
		Runs:     s.runs,
		Products: s.products,
		Reports:  s.reports,
		Metrics:  m,
		Log:      log,
	})

	s.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(s.app, apphttp.RouterDeps{
		SimulationUC: simUC,
		ProductUC:    productUC,
		RateUC:       rateUC,
		CareerUC:     careerUC,
		Metrics:      m,
		Gatherer:     reg,
		Log:          log,
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
	})
	return s
}

// do lanza la petición con el rol indicado (vacío = sin Authorization).
func (s *testServer) do(t *testing.T, method, path, role string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func referenceBody() map[string]any {
	return map[string]any{
		"total_activations": 1000,
		"product_value":     "120",
		"consultant_price":  "60",
		"top_sigme_percent": "9",
	}
}

// ── simulaciones ──────────────────────────────────────────────────────────────

func TestRouter_SimularEscenarioReferencia(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, referenceBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.SimulationResponse](t, resp)
	assert.Equal(t, "39506.4", out.Result.TotalBonus.String())
	assert.Equal(t, "20493.6", out.Result.NetProfit.String())
	assert.Equal(t, 0, out.RateVersion)
	assert.Empty(t, out.RunID)
}

func TestRouter_SimularSinToken_Retorna401(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/simulations", "", referenceBody())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_SimularGuardaYConsulta(t *testing.T) {
	s := newTestServer(t)
	body := referenceBody()
	body["save"] = true

	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleFinanceiro, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saved := decode[dto.SimulationResponse](t, resp)
	require.NotEmpty(t, saved.RunID)

	resp = s.do(t, http.MethodGet, "/api/simulations/"+saved.RunID, entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.SimulationResponse](t, resp)
	assert.Equal(t, saved.Result.TotalBonus.String(), got.Result.TotalBonus.String())

	resp = s.do(t, http.MethodGet, "/api/simulations", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.SimulationListResponse](t, resp)
	assert.Len(t, list.Items, 1)

	resp = s.do(t, http.MethodGet, "/api/simulations/00000000-0000-0000-0000-0000000000ff", entity.RoleConsultor, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_IDMalFormado_Retorna400(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		method, path, role string
		body               any
	}{
		{http.MethodGet, "/api/simulations/abc", entity.RoleConsultor, nil},
		{http.MethodGet, "/api/products/abc", entity.RoleConsultor, nil},
		{http.MethodPut, "/api/products/abc", entity.RoleAdmin, productBody("Kit Pro")},
		{http.MethodDelete, "/api/products/abc", entity.RoleAdmin, nil},
	}
	for _, tc := range cases {
		resp := s.do(t, tc.method, tc.path, tc.role, tc.body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.method+" "+tc.path)
		out := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, apphttp.CodeValidation, out.Code)
		assert.Equal(t, []string{"id"}, out.Fields)
	}
}

func TestRouter_SimularPrecioConsultorMayor_Retorna400(t *testing.T) {
	s := newTestServer(t)
	body := referenceBody()
	body["consultant_price"] = "150"

	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, out.Code)
}

func TestRouter_SimularTopSigmeFueraDeRango_RetornaCampo(t *testing.T) {
	s := newTestServer(t)
	body := referenceBody()
	body["top_sigme_percent"] = "150"

	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, out.Code)
	assert.Equal(t, []string{"top_sigme_percent"}, out.Fields)
}

func TestRouter_SimularPeriodoMalFormado_Retorna400(t *testing.T) {
	s := newTestServer(t)
	body := referenceBody()
	body["period"] = "2026-13"

	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"period"}, out.Fields)
}

func TestRouter_SimularCuerpoInvalido_Retorna400(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/simulations", strings.NewReader("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleConsultor))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeInvalidBody, out.Code)
}

func TestRouter_InformePDF(t *testing.T) {
	s := newTestServer(t)
	body := referenceBody()
	body["company_name"] = "RS Prólipsi"

	resp := s.do(t, http.MethodPost, "/api/simulations/report", entity.RoleConsultor, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
	assert.Equal(t, "RS Prólipsi", s.reports.last.CompanyName)
	assert.Equal(t, "39506.4", s.reports.last.Result.TotalBonus.String())
}

// ── tasas ─────────────────────────────────────────────────────────────────────

func TestRouter_TasasPorDefecto(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/rates", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.RateTableResponse](t, resp)
	assert.Equal(t, "default", out.Source)
	assert.Equal(t, 0, out.Version)
	assert.Equal(t, "0.195", out.Rates.MatrixBonusRate.String())
}

func TestRouter_PublicarTasas_SoloAdmin(t *testing.T) {
	s := newTestServer(t)
	body := commission.DefaultRates()

	resp := s.do(t, http.MethodPost, "/api/rates", entity.RoleFinanceiro, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_PublicarTasas_NuevaVersionActiva(t *testing.T) {
	s := newTestServer(t)
	rates := commission.DefaultRates()
	rates.MatrixBonusRate = rates.MatrixBonusRate.Add(rates.LoyaltyBonusRate) // 0.27

	resp := s.do(t, http.MethodPost, "/api/rates", entity.RoleAdmin, rates)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.RateTableResponse](t, resp)
	assert.Equal(t, 1, out.Version)
	assert.Equal(t, "table", out.Source)

	resp = s.do(t, http.MethodGet, "/api/rates", entity.RoleConsultor, nil)
	active := decode[dto.RateTableResponse](t, resp)
	assert.Equal(t, 1, active.Version)
	assert.Equal(t, "0.27", active.Rates.MatrixBonusRate.String())

	resp = s.do(t, http.MethodGet, "/api/rates/versions", entity.RoleConsultor, nil)
	list := decode[dto.RateTableListResponse](t, resp)
	assert.Len(t, list.Items, 1)

	resp = s.do(t, http.MethodGet, "/api/rates/versions/7", entity.RoleConsultor, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_PublicarTasasFueraDeRango_RetornaCampos(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{
		"matrix_bonus_rate":            "1.5",
		"loyalty_bonus_rate":           "0.075",
		"units_per_cycle":              0,
		"cycle_internal_value":         "360",
		"global_cycle_bonus_per_cycle": "108",
		"high_multiplier_threshold":    "5",
		"high_multiplier_credit_rate":  "1",
		"low_multiplier_credit_rate":   "0.8",
	}

	resp := s.do(t, http.MethodPost, "/api/rates", entity.RoleAdmin, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeRateRange, out.Code)
	assert.ElementsMatch(t, []string{"matrix_bonus_rate", "units_per_cycle"}, out.Fields)
}

func TestRouter_VersionInvalida_Retorna400(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/rates/versions/abc", entity.RoleConsultor, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── plan de carrera ───────────────────────────────────────────────────────────

func TestRouter_PlanDeCarrera(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/career/tiers", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CareerTiersResponse](t, resp)
	require.Len(t, out.Tiers, commission.CareerPlanSize)
	assert.Equal(t, "Pin Bronze", out.Tiers[0].Name)
}

func TestRouter_ProgresoCarrera(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/career/progress?tier=Pin%20Bronze&cycles=10", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[commission.CareerProgress](t, resp)
	assert.Equal(t, "Pin Prata", out.NextTier)

	resp = s.do(t, http.MethodGet, "/api/career/progress", entity.RoleConsultor, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "tier es requerido")
}

func TestRouter_ConteosDeCarrera(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"counts": map[string]int64{"Pin Bronze": 2}}

	resp := s.do(t, http.MethodPut, "/api/career/counts/2026-01", entity.RoleConsultor, body)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPut, "/api/career/counts/2026-01", entity.RoleFinanceiro, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/api/career/counts/2026-01", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CareerCountsResponse](t, resp)
	assert.Equal(t, int64(2), got.Counts["Pin Bronze"])

	sim := referenceBody()
	sim["period"] = "2026-01"
	resp = s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, sim)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SimulationResponse](t, resp)
	assert.Equal(t, "27", out.Result.CareerBonus.String())

	resp = s.do(t, http.MethodGet, "/api/career/counts/2026-02", entity.RoleConsultor, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	bad := map[string]any{"counts": map[string]int64{"Pin Inexistente": 1}}
	resp = s.do(t, http.MethodPut, "/api/career/counts/2026-01", entity.RoleAdmin, bad)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── calculadora de costo ──────────────────────────────────────────────────────

func productBody(name string) map[string]any {
	return map[string]any{
		"name":              name,
		"sales_mix_percent": "100",
		"quantity":          "1",
		"labels_cost":       "2",
		"unit_cost":         "20",
		"multiplier":        "5",
		"final_sale_price":  "120",
	}
}

func TestRouter_Productos_CRUDYEconomia(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/products", entity.RoleConsultor, productBody("Kit Pro"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/products", entity.RoleFinanceiro, productBody("Kit Pro"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductCostResponse](t, resp)
	require.NotEmpty(t, created.ID)

	resp = s.do(t, http.MethodPost, "/api/products", entity.RoleAdmin, productBody("Kit Pro"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	dup := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeDuplicate, dup.Code)

	resp = s.do(t, http.MethodGet, "/api/products/"+created.ID, entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/api/products/economics", entity.RoleConsultor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	econ := decode[commission.ProductEconomics](t, resp)
	require.Len(t, econ.Rows, 1)
	assert.Equal(t, "Kit Pro", econ.Rows[0].Name)

	resp = s.do(t, http.MethodPost, "/api/products/forecast", entity.RoleConsultor, map[string]any{"forecast_units": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fc := decode[commission.SalesForecast](t, resp)
	assert.Equal(t, int64(100), fc.ForecastUnits)
	assert.Equal(t, "12000", fc.TotalRevenue.String())

	resp = s.do(t, http.MethodDelete, "/api/products/"+created.ID, entity.RoleAdmin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/"+created.ID, entity.RoleConsultor, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_EconomiaEnLinea_ValidaFilas(t *testing.T) {
	s := newTestServer(t)
	row := productBody("Kit")
	row["sales_mix_percent"] = "120"

	resp := s.do(t, http.MethodPost, "/api/products/economics", entity.RoleConsultor, map[string]any{"products": []any{row}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"sales_mix_percent"}, out.Fields)
}

// ── métricas ──────────────────────────────────────────────────────────────────

func TestRouter_MetricasExpuestas(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/simulations", entity.RoleConsultor, referenceBody())
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/metrics", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "rs_bonus_test_calculations_total")
	assert.Contains(t, string(raw), `route="/api/simulations`)
}
