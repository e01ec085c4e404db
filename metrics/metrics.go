// Package metrics defines the Prometheus collectors of the blog.
package metrics

import (
	"regexp"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// WorkflowTotal counts workflow outcomes, e.g. workflow="login", outcome="invalid".
	WorkflowTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_workflow_total",
			Help: "Total number of finished workflows by outcome",
		},
		[]string{"workflow", "outcome"},
	)

	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Workflow outcomes.
const (
	Success  = "success"
	Invalid  = "invalid"  // Result.Err was set
	Redirect = "redirect" // e.g. anonymous or already logged in
	Failure  = "error"    // infrastructure error
)

var numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, WorkflowTotal, RateLimited)
}

// NormalizePath replaces numeric path segments with {id}, e.g. /post/12/ becomes /post/{id}/.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

func RecordWorkflow(workflow, outcome string) {
	WorkflowTotal.WithLabelValues(workflow, outcome).Inc()
}
