package statusHandler

import "github.com/prometheus/client_golang/prometheus"

func (pm *PrometheusMetrics) ChainReadsCounter(network string, method string, result string) prometheus.Counter {
	return pm.chainReads.WithLabelValues(network, method, result)
}

func (pm *PrometheusMetrics) APIRequestsCounter(route string, status string) prometheus.Counter {
	return pm.apiRequests.WithLabelValues(route, status)
}
