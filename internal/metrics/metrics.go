// filepath: internal/metrics/metrics.go
package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "todohub"

// Collector owns the service's Prometheus metrics.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	storeOpsTotal   *prometheus.CounterVec
	storeOpDuration *prometheus.HistogramVec
}

// NewCollector creates the metric vectors on a private registry.
// When db is non-nil its pool statistics are exported as well.
func NewCollector(db *sql.DB) (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		storeOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_ops_total",
				Help:      "Total number of store operations by outcome",
			},
			[]string{"op", "outcome"},
		),
		storeOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "store_op_duration_seconds",
				Help:      "Duration of store operations in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"op"},
		),
	}

	toRegister := []prometheus.Collector{
		c.requestsTotal,
		c.requestDuration,
		c.storeOpsTotal,
		c.storeOpDuration,
		collectors.NewGoCollector(),
	}
	if db != nil {
		toRegister = append(toRegister, collectors.NewDBStatsCollector(db, namespace))
	}
	for _, col := range toRegister {
		if err := c.registry.Register(col); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, err
			}
		}
	}

	return c, nil
}

// ObserveStoreOp records one store operation.
func (c *Collector) ObserveStoreOp(op, outcome string, duration time.Duration) {
	c.storeOpsTotal.WithLabelValues(op, outcome).Inc()
	c.storeOpDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(route, method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
