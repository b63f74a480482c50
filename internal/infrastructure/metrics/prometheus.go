// Package metrics publica contadores del inventario y de las peticiones HTTP en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-tracker/internal/application/ports"
)

var _ ports.InventoryMetrics = (*Inventory)(nil)

// Inventory implementa ports.InventoryMetrics.
type Inventory struct {
	registry *prometheus.Registry

	movementsApplied  *prometheus.CounterVec
	movementsRejected *prometheus.CounterVec
	lowStockAlerts    prometheus.Counter
	persistFailures   *prometheus.CounterVec

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New registra las métricas en un registro propio (más los colectores de proceso y runtime).
func New(namespace string) *Inventory {
	reg := prometheus.NewRegistry()
	m := &Inventory{
		registry: reg,
		movementsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_applied_total",
			Help:      "Movimientos aplicados por tipo",
		}, []string{"type"}),
		movementsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_rejected_total",
			Help:      "Movimientos rechazados por motivo",
		}, []string{"reason"}),
		lowStockAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_stock_alerts_total",
			Help:      "Alertas de stock bajo emitidas",
		}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Fallos al guardar el estado por clave",
		}, []string{"key"}),
		requestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y estado",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.movementsApplied,
		m.movementsRejected,
		m.lowStockAlerts,
		m.persistFailures,
		m.requestCounter,
		m.requestLatency,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// MovementApplied cuenta un movimiento aplicado por tipo (IN/OUT).
func (m *Inventory) MovementApplied(movementType string) {
	m.movementsApplied.WithLabelValues(movementType).Inc()
}

// MovementRejected cuenta un rechazo por motivo.
func (m *Inventory) MovementRejected(reason string) {
	m.movementsRejected.WithLabelValues(reason).Inc()
}

// LowStockAlert cuenta una alerta de stock bajo emitida.
func (m *Inventory) LowStockAlert() {
	m.lowStockAlerts.Inc()
}

// PersistFailed cuenta un guardado fallido por clave.
func (m *Inventory) PersistFailed(key string) {
	m.persistFailures.WithLabelValues(key).Inc()
}

// Registry expone el registro (tests y handler).
func (m *Inventory) Registry() *prometheus.Registry {
	return m.registry
}

// Handler sirve /metrics.
func (m *Inventory) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware cuenta peticiones y mide su duración por ruta registrada (no por path crudo).
func (m *Inventory) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.requestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
