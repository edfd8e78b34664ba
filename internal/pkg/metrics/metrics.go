package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// HTTPRequestsTotal tracks handled requests by matched route
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainfolio_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request handling time
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "domainfolio_http_request_duration_seconds",
		Help:    "Histogram of HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// DomainWrites tracks create/update/delete calls on the domain write path
	DomainWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainfolio_domain_writes_total",
		Help: "Total number of domain write operations",
	}, []string{"op", "result"})

	// BatchItems tracks per-item outcomes of batch endpoints
	BatchItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domainfolio_batch_items_total",
		Help: "Total number of batch items processed",
	}, []string{"op", "result"})
)

// Result maps an error to the result label
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
