package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/rs-bonus/internal/infrastructure/pdf"
	"github.com/jhoicas/rs-bonus/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/rs-bonus/internal/interfaces/http"
	"github.com/jhoicas/rs-bonus/pkg/config"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	if cfg.DB.MigrateOnStart {
		version, err := postgres.Migrate(cfg.DB.ConnectionString())
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductCostRepository(pool)
	rateRepo := postgres.NewRateTableRepository(pool)
	countsRepo := postgres.NewCareerCountsRepository(pool)
	runRepo := postgres.NewSimulationRunRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductCostUseCase(productRepo)
	rateUC := usecase.NewRateTableUseCase(rateRepo, txRunner, cfg.Commission, log)
	careerUC, err := usecase.NewCareerUseCase(countsRepo, commission.DefaultCareerTiers())
	if err != nil {
		log.Fatal().Err(err).Msg("plan de carrera inválido")
	}
	for _, w := range careerUC.Warnings() {
		log.Warn().Str("warning", w).Msg("plan de carrera")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(cfg.Metrics.Namespace, reg)

	simulationUC := simulation.NewUseCase(simulation.Deps{
		Rates:    rateUC,
		Career:   careerUC,
		Runs:     runRepo,
		Products: productRepo,
		Reports:  infrapdf.NewReportGenerator(),
		Metrics:  m,
		Log:      log,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RS Bonus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SimulationUC: simulationUC,
		ProductUC:    productUC,
		RateUC:       rateUC,
		CareerUC:     careerUC,
		Metrics:      m,
		Gatherer:     reg,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
