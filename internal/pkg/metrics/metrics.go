// Package metrics registers the store's Prometheus instruments on a private
// registry so tests can create isolated instances.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	OpCreateIntent = "create_intent"
	OpCapture      = "capture"
	OpRefund       = "refund"
)

type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated   prometheus.Counter
	OrdersCanceled  prometheus.Counter
	CheckoutsPurged prometheus.Counter

	// GatewayAttempts counts individual provider calls, labeled by
	// operation and outcome, so a retry storm is visible even when the
	// usecase eventually succeeds.
	GatewayAttempts *prometheus.CounterVec
	GatewayLatency  *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gemstore",
			Name:      "orders_created_total",
			Help:      "Orders settled from captured payments.",
		}),
		OrdersCanceled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gemstore",
			Name:      "orders_canceled_total",
			Help:      "Orders canceled and refunded.",
		}),
		CheckoutsPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gemstore",
			Name:      "checkouts_purged_total",
			Help:      "Expired checkout snapshots removed by the sweeper.",
		}),
		GatewayAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gemstore",
			Subsystem: "gateway",
			Name:      "attempts_total",
			Help:      "Payment provider call attempts.",
		}, []string{"op", "outcome"}),
		GatewayLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gemstore",
			Subsystem: "gateway",
			Name:      "latency_seconds",
			Help:      "Payment provider call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
