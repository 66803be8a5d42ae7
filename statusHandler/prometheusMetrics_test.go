package statusHandler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/neco-fun/neco-api-go/statusHandler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	prometheusUtils "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusMetrics(t *testing.T) {
	t.Parallel()

	pm, err := statusHandler.NewPrometheusMetrics()
	require.Nil(t, err)
	assert.False(t, pm.IsInterfaceNil())
	assert.NotNil(t, pm.Gatherer())
}

func TestPrometheusMetrics_ObserveChainRead(t *testing.T) {
	t.Parallel()

	pm, _ := statusHandler.NewPrometheusMetrics()

	pm.ObserveChainRead("BSCMainNetwork", "getStakedAmount", time.Millisecond, nil)
	pm.ObserveChainRead("BSCMainNetwork", "getStakedAmount", time.Millisecond, nil)
	pm.ObserveChainRead("BSCMainNetwork", "getStakedAmount", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(2), prometheusUtils.ToFloat64(pm.ChainReadsCounter("BSCMainNetwork", "getStakedAmount", "success")))
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pm.ChainReadsCounter("BSCMainNetwork", "getStakedAmount", "failure")))
	assert.Equal(t, float64(0), prometheusUtils.ToFloat64(pm.ChainReadsCounter("BSCTestNetwork", "getStakedTime", "success")))
}

func TestPrometheusMetrics_ObserveAPIRequest(t *testing.T) {
	t.Parallel()

	pm, _ := statusHandler.NewPrometheusMetrics()
	route := "/v1/neco-staked-info/:network/:public_address"

	pm.ObserveAPIRequest(route, http.StatusOK, time.Millisecond)
	pm.ObserveAPIRequest(route, http.StatusBadRequest, time.Millisecond)
	pm.ObserveAPIRequest(route, http.StatusOK, time.Millisecond)

	assert.Equal(t, float64(2), prometheusUtils.ToFloat64(pm.APIRequestsCounter(route, "200")))
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(pm.APIRequestsCounter(route, "400")))
}

func TestPrometheusMetrics_ExposedOverHTTP(t *testing.T) {
	t.Parallel()

	pm, _ := statusHandler.NewPrometheusMetrics()
	pm.ObserveChainRead("BSCTestNetwork", "getStakedTime", time.Millisecond, nil)

	handler := promhttp.HandlerFor(pm.Gatherer(), promhttp.HandlerOpts{})
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), `neco_chain_reads_total{method="getStakedTime",network="BSCTestNetwork",result="success"} 1`))
}
