package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobboard",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobboard",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Domain metrics

	JobsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "jobboard",
		Name:      "jobs_created_total",
		Help:      "Total job postings created.",
	})

	ApplicationsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "jobboard",
		Name:      "applications_submitted_total",
		Help:      "Total applications submitted.",
	})

	MessagesSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "jobboard",
		Name:      "messages_sent_total",
		Help:      "Total chat messages sent.",
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		JobsCreatedTotal,
		ApplicationsSubmittedTotal,
		MessagesSentTotal,
	)
}

// HealthHandler is implemented by health.Checker.
type HealthHandler interface {
	LivenessHandler() http.Handler
	ReadinessHandler() http.Handler
}

// NewServer serves /metrics plus the health probes on the ops port,
// separate from the API listener.
func NewServer(addr string, checker HealthHandler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", checker.LivenessHandler())
	mux.Handle("/readyz", checker.ReadinessHandler())
	return &http.Server{Addr: addr, Handler: mux}
}
