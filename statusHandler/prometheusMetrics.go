package statusHandler

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	metricsNamespace = "neco"
	resultSuccess    = "success"
	resultFailure    = "failure"
)

// PrometheusMetrics records the chain reads and the API requests served by the process
type PrometheusMetrics struct {
	registry          *prometheus.Registry
	chainReads        *prometheus.CounterVec
	chainReadDuration *prometheus.HistogramVec
	apiRequests       *prometheus.CounterVec
	apiDuration       *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them on a dedicated registry
func NewPrometheusMetrics() (*PrometheusMetrics, error) {
	pm := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		chainReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "chain_reads_total",
			Help:      "Number of staking contract reads, by network, method and result.",
		}, []string{"network", "method", "result"}),
		chainReadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "chain_read_duration_seconds",
			Help:      "Duration of the staking contract reads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"network", "method"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_requests_total",
			Help:      "Number of API requests, by route and status code.",
		}, []string{"route", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of the API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	metricCollectors := []prometheus.Collector{
		pm.chainReads,
		pm.chainReadDuration,
		pm.apiRequests,
		pm.apiDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, collector := range metricCollectors {
		err := pm.registry.Register(collector)
		if err != nil {
			return nil, err
		}
	}

	return pm, nil
}

// ObserveChainRead records the outcome of one staking contract read
func (pm *PrometheusMetrics) ObserveChainRead(network string, method string, duration time.Duration, err error) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}

	pm.chainReads.WithLabelValues(network, method, result).Inc()
	pm.chainReadDuration.WithLabelValues(network, method).Observe(duration.Seconds())
}

// ObserveAPIRequest records one served API request
func (pm *PrometheusMetrics) ObserveAPIRequest(route string, status int, duration time.Duration) {
	pm.apiRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	pm.apiDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Gatherer returns the registry holding the collectors
func (pm *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return pm.registry
}

// IsInterfaceNil returns true if there is no value under the interface
func (pm *PrometheusMetrics) IsInterfaceNil() bool {
	return pm == nil
}
