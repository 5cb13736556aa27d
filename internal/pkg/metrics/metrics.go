/*
Package metrics defines the Prometheus collectors exported on /metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Issuance outcomes recorded on TokensIssued.
const (
	OutcomeIssued   = "issued"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	// HTTPRequests counts handled requests by route pattern, method and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meettoken_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meettoken_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// TokensIssued counts issuance attempts by outcome and moderator flag.
	TokensIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meettoken_tokens_total",
			Help: "Total number of meeting token issuance attempts",
		},
		[]string{"outcome", "moderator"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, TokensIssued)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordIssue increments TokensIssued.
func RecordIssue(outcome string, moderator bool) {
	TokensIssued.WithLabelValues(outcome, strconv.FormatBool(moderator)).Inc()
}

// Middleware records HTTPRequests and HTTPDuration using the matched chi route pattern,
// so path parameters do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
