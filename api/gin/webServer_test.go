package gin_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiErrors "github.com/neco-fun/neco-api-go/api/errors"
	apiGin "github.com/neco-fun/neco-api-go/api/gin"
	"github.com/neco-fun/neco-api-go/api/mock"
	"github.com/neco-fun/neco-api-go/api/shared"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/data"
	"github.com/neco-fun/neco-api-go/facade"
	"github.com/neco-fun/neco-api-go/stake"
	"github.com/neco-fun/neco-api-go/statusHandler"
	"github.com/neco-fun/neco-api-go/statusHandler/disabled"
	"github.com/neco-fun/neco-api-go/testscommon/stakeMocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStakedInfoPath = "/v1/neco-staked-info/0/0x1111111111111111111111111111111111111111"

func init() {
	gin.SetMode(gin.TestMode)
}

func createMockArgsNewWebServer() apiGin.ArgsNewWebServer {
	return apiGin.ArgsNewWebServer{
		Facade: &mock.FacadeStub{
			RestAPIServerDebugModeCalled: func() bool {
				return true
			},
		},
		ApiConfig: config.ApiRoutesConfig{
			APIPackages: map[string]config.APIPackageConfig{
				"v1": {
					Routes: []config.RouteConfig{
						{Name: "/neco-staked-info/:network/:public_address", Open: true},
					},
				},
			},
		},
		AntiFloodConfig: config.WebServerAntifloodConfig{
			SimultaneousRequests:     100,
			SameSourceRequestsPerSec: 1000,
			SameSourceBurst:          1000,
		},
		MetricsHandler: disabled.NewDisabledMetrics(),
	}
}

func doRequest(engine http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "127.0.0.1:1000"
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	return resp
}

func TestNewGinWebServerHandler(t *testing.T) {
	t.Parallel()

	t.Run("nil facade should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.Facade = nil
		ws, err := apiGin.NewGinWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.True(t, errors.Is(err, apiErrors.ErrCannotCreateGinWebServer))
		assert.Contains(t, err.Error(), apiErrors.ErrNilFacadeHandler.Error())
	})
	t.Run("nil metrics handler should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.MetricsHandler = nil
		ws, err := apiGin.NewGinWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.Contains(t, err.Error(), apiErrors.ErrNilMetricsHandler.Error())
	})
	t.Run("metrics enabled without gatherer should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.MetricsConfig.Enabled = true
		ws, err := apiGin.NewGinWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.Contains(t, err.Error(), apiErrors.ErrNilMetricsGatherer.Error())
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ws, err := apiGin.NewGinWebServerHandler(createMockArgsNewWebServer())
		assert.False(t, check.IfNil(ws))
		assert.Nil(t, err)
	})
}

func TestWebServer_StartHttpServerWithPortOffShouldNotStart(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	args.Facade = &mock.FacadeStub{
		RestApiInterfaceCalled: func() string {
			return facade.DefaultRestPortOff
		},
	}
	ws, _ := apiGin.NewGinWebServerHandler(args)

	err := ws.StartHttpServer()
	assert.Nil(t, err)
	assert.Nil(t, ws.Close())
}

func TestWebServer_CreateEngine(t *testing.T) {
	t.Parallel()

	t.Run("invalid antiflood config should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.AntiFloodConfig.SimultaneousRequests = 0
		ws, _ := apiGin.NewGinWebServerHandler(args)

		engine, err := ws.CreateEngine()
		assert.Nil(t, engine)
		assert.NotNil(t, err)
	})
	t.Run("should serve the staked info route", func(t *testing.T) {
		t.Parallel()

		ws, _ := apiGin.NewGinWebServerHandler(createMockArgsNewWebServer())
		engine, err := ws.CreateEngine()
		require.Nil(t, err)

		resp := doRequest(engine, testStakedInfoPath)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"success":true`)

		resp = doRequest(engine, "/v1/neco-staked-info/9/0x1111111111111111111111111111111111111111")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
	t.Run("optional routes should be off by default", func(t *testing.T) {
		t.Parallel()

		ws, _ := apiGin.NewGinWebServerHandler(createMockArgsNewWebServer())
		engine, _ := ws.CreateEngine()

		assert.Equal(t, http.StatusNotFound, doRequest(engine, "/metrics").Code)
		assert.Equal(t, http.StatusNotFound, doRequest(engine, "/debug/pprof/cmdline").Code)
		assert.Equal(t, http.StatusNotFound, doRequest(engine, "/log").Code)
	})
	t.Run("pprof routes should be registered in profile mode", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.Facade = &mock.FacadeStub{
			RestAPIServerDebugModeCalled: func() bool {
				return true
			},
			PprofEnabledCalled: func() bool {
				return true
			},
		}
		ws, _ := apiGin.NewGinWebServerHandler(args)
		engine, _ := ws.CreateEngine()

		assert.Equal(t, http.StatusOK, doRequest(engine, "/debug/pprof/cmdline").Code)
	})
	t.Run("metrics route should expose the api requests", func(t *testing.T) {
		t.Parallel()

		metrics, err := statusHandler.NewPrometheusMetrics()
		require.Nil(t, err)

		args := createMockArgsNewWebServer()
		args.MetricsConfig = config.MetricsConfig{Enabled: true, Path: "/metrics"}
		args.MetricsHandler = metrics
		args.MetricsGatherer = metrics.Gatherer()
		ws, _ := apiGin.NewGinWebServerHandler(args)
		engine, _ := ws.CreateEngine()

		_ = doRequest(engine, testStakedInfoPath)
		resp := doRequest(engine, "/metrics")
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(),
			`neco_api_requests_total{route="/v1/neco-staked-info/:network/:public_address",status="200"} 1`)
	})
	t.Run("same source flood should be throttled", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.AntiFloodConfig.SameSourceRequestsPerSec = 0.001
		args.AntiFloodConfig.SameSourceBurst = 1
		ws, _ := apiGin.NewGinWebServerHandler(args)
		engine, _ := ws.CreateEngine()

		assert.Equal(t, http.StatusOK, doRequest(engine, testStakedInfoPath).Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(engine, testStakedInfoPath).Code)
	})
}

func TestWebServer_LogViewerShouldStreamLogLines(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	args.LogViewerEnabled = true
	ws, _ := apiGin.NewGinWebServerHandler(args)
	engine, err := ws.CreateEngine()
	require.Nil(t, err)

	server := httptest.NewServer(engine)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/log", nil)
	require.Nil(t, err)
	defer func() {
		_ = conn.Close()
	}()

	testLog := logger.GetOrCreate("api/gin/test")
	marker := "log viewer marker line"

	// the observer is attached asynchronously by the handler so the marker is logged until it is received
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				testLog.Warn(marker)
			}
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, message, errRead := conn.ReadMessage()
		if errRead != nil {
			break
		}
		if strings.Contains(string(message), marker) {
			return
		}
	}

	assert.Fail(t, "marker line was not received")
}

func TestNewHttpServer(t *testing.T) {
	t.Parallel()

	hs, err := apiGin.NewHttpServer(nil, time.Second)
	assert.True(t, check.IfNil(hs))
	assert.Equal(t, apiErrors.ErrNilHttpServer, err)

	hs, err = apiGin.NewHttpServer(&http.Server{Addr: "127.0.0.1:0"}, time.Second)
	assert.False(t, check.IfNil(hs))
	assert.Nil(t, err)
	assert.Nil(t, hs.Close())
}

func TestWebServer_StakedInfoThroughNecoFacade(t *testing.T) {
	t.Parallel()

	numProviderCalls := uint32(0)
	provider := &stakeMocks.ServiceProviderStub{
		ServiceForNetworkCalled: func(network common.NetworkType) (stake.StakeQueryService, error) {
			atomic.AddUint32(&numProviderCalls, 1)
			assert.Equal(t, common.BSCMainNetwork, network)

			return &stakeMocks.StakeQueryServiceStub{
				GetNecoStakedAmountCalled: func(ctx context.Context, address string) (*big.Int, error) {
					amount, _ := big.NewInt(0).SetString("123456789012345678901234567890", 10)
					return amount, nil
				},
				GetNecoStakedTimeCalled: func(ctx context.Context, address string) (*big.Int, error) {
					return big.NewInt(1700000000), nil
				},
			}, nil
		},
	}
	necoFacade, err := facade.NewNecoFacade(facade.ArgNecoFacade{
		ServiceProvider:        provider,
		FailurePolicy:          common.ZeroOnFailure,
		RestAPIServerDebugMode: true,
	})
	require.Nil(t, err)

	args := createMockArgsNewWebServer()
	args.Facade = necoFacade
	ws, _ := apiGin.NewGinWebServerHandler(args)
	engine, err := ws.CreateEngine()
	require.Nil(t, err)

	t.Run("known selector should return the staked info", func(t *testing.T) {
		resp := doRequest(engine, "/v1/neco-staked-info/0/0xABC")
		assert.Equal(t, http.StatusOK, resp.Code)

		response := struct {
			Success bool            `json:"success"`
			Data    data.StakedInfo `json:"data"`
		}{}
		require.Nil(t, json.Unmarshal(resp.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "0xABC", response.Data.PublicAddress)
		assert.Equal(t, "123456789012345678901234567890", response.Data.StakedAmount)
		assert.Equal(t, "1700000000", response.Data.StakedTime)
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numProviderCalls))
	})
	t.Run("unknown selectors should not reach the provider", func(t *testing.T) {
		for _, selector := range []string{"7", "99999999999999999999"} {
			resp := doRequest(engine, "/v1/neco-staked-info/"+selector+"/0xABC")
			assert.Equal(t, http.StatusBadRequest, resp.Code)

			response := shared.GenericAPIResponse{}
			require.Nil(t, json.Unmarshal(resp.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, "network type error", response.Message)
		}
		assert.Equal(t, uint32(1), atomic.LoadUint32(&numProviderCalls))
	})
}
