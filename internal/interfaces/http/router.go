package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/infrastructure/metrics"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SimulationUC *simulation.UseCase
	ProductUC    *usecase.ProductCostUseCase
	RateUC       *usecase.RateTableUseCase
	CareerUC     *usecase.CareerUseCase
	Metrics      *metrics.Metrics    // opcional
	Gatherer     prometheus.Gatherer // opcional; expone /metrics
	Log          *logger.Logger
	JWTSecret    string
	JWTIssuer    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v := newValidator()
	writers := RequireRole(entity.RoleAdmin, entity.RoleFinanceiro)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/api", RequestLogger(log.Named("http")), AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Simulaciones (cualquier rol)
	simulations := protected.Group("/simulations")
	simulationHandler := NewSimulationHandler(deps.SimulationUC, v)
	simulations.Post("/", simulationHandler.Simulate)
	simulations.Get("/", simulationHandler.List)
	simulations.Post("/report", simulationHandler.Report)
	simulations.Get("/:id", simulationHandler.Get)

	// Calculadora de costo: lectura para todos, escritura admin y financeiro
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.SimulationUC, v)
	products.Get("/economics", productHandler.CatalogEconomics)
	products.Post("/economics", productHandler.Economics)
	products.Post("/forecast", productHandler.Forecast)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writers, productHandler.Create)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", writers, productHandler.Delete)

	// Tasas: publicar solo admin
	rates := protected.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC, v)
	rates.Get("/", rateHandler.Active)
	rates.Get("/versions", rateHandler.Versions)
	rates.Get("/versions/:version", rateHandler.Version)
	rates.Post("/", RequireRole(entity.RoleAdmin), rateHandler.Publish)

	// Plan de carrera
	career := protected.Group("/career")
	careerHandler := NewCareerHandler(deps.CareerUC, v)
	career.Get("/tiers", careerHandler.Tiers)
	career.Get("/progress", careerHandler.Progress)
	career.Get("/counts/:period", careerHandler.GetCounts)
	career.Put("/counts/:period", writers, careerHandler.PutCounts)
}
