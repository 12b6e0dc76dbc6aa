// Package metrics exposes Prometheus instrumentation for the order service.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels used by the failure counter and duration histogram.
const (
	OpRegister = "register"
	OpUpdate   = "update"
	OpFindByID = "find_by_id"
	OpFindAll  = "find_all"
)

// OrderMetrics holds the service-level counters and histograms.
type OrderMetrics struct {
	ordersRegistered  prometheus.Counter
	ordersUpdated     prometheus.Counter
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewOrderMetrics creates order metrics on the default Prometheus registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer creates order metrics on a caller-supplied
// registerer. Registering the same metric twice reuses the existing collector.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersRegistered: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_registered_total",
			Help: "Total number of orders registered",
		}),
		ordersUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_updated_total",
			Help: "Total number of orders updated",
		}),
		operationFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "order_operation_failures_total",
			Help: "Total number of failed order operations by operation",
		}, []string{"operation"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "order_operation_duration_seconds",
			Help:    "Duration of order operations by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// OrderRegistered counts one successful order registration.
func (m *OrderMetrics) OrderRegistered() {
	m.ordersRegistered.Inc()
}

// OrderUpdated counts one successful order update.
func (m *OrderMetrics) OrderUpdated() {
	m.ordersUpdated.Inc()
}

// OperationFailed counts one failed operation.
func (m *OrderMetrics) OperationFailed(operation string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

// ObserveOperation records the duration of one operation.
func (m *OrderMetrics) ObserveOperation(operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(
	registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string,
) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogramVec(
	registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string,
) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(h); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}
