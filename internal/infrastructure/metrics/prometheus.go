// Package metrics registra los colectores Prometheus del servicio.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics colectores HTTP y del calculador.
type Metrics struct {
	ReqTotal         *prometheus.CounterVec
	ReqDur           *prometheus.HistogramVec
	CalculationTotal *prometheus.CounterVec
	CalculationDur   *prometheus.HistogramVec
}

// New crea y registra los colectores en reg (prometheus.DefaultRegisterer si es nil).
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Latencia de las peticiones HTTP en milisegundos.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "route"}),
		CalculationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Cálculos ejecutados por operación y resultado.",
		}, []string{"operation", "outcome"}),
		CalculationDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_ms",
			Help:      "Duración de los cálculos en milisegundos.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
		}, []string{"operation"}),
	}
	m.ReqTotal = register(reg, m.ReqTotal)
	m.ReqDur = register(reg, m.ReqDur)
	m.CalculationTotal = register(reg, m.CalculationTotal)
	m.CalculationDur = register(reg, m.CalculationDur)
	return m
}

// ObserveCalculation implementa simulation.Recorder.
func (m *Metrics) ObserveCalculation(operation, outcome string, elapsed time.Duration) {
	m.CalculationTotal.WithLabelValues(operation, outcome).Inc()
	m.CalculationDur.WithLabelValues(operation).Observe(millis(elapsed))
}

// Middleware cuenta peticiones por ruta registrada (no por path concreto, para acotar la cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil && errors.As(err, &fe) {
			status = fe.Code
		}
		route := c.Route().Path
		m.ReqTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.ReqDur.WithLabelValues(c.Method(), route).Observe(millis(time.Since(start)))
		return err
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// register reutiliza el colector ya registrado (tests que crean varias apps).
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
