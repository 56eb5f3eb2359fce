package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route pattern and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RouteCalculations counts route calculations by outcome.
	RouteCalculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_calculations_total", Help: "Route calculations by result."},
		[]string{"result"},
	)
	// RouteCommits counts route commits by outcome.
	RouteCommits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_commits_total", Help: "Route commits by result."},
		[]string{"result"},
	)
	// StoreWrites counts persisted entity store writes.
	StoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "store_writes_total", Help: "Entity store writes by collection and result."},
		[]string{"collection", "result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RouteCalculations)
		Registry.MustRegister(RouteCommits)
		Registry.MustRegister(StoreWrites)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Result label for an operation outcome.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
