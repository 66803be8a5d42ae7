package gin

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiErrors "github.com/neco-fun/neco-api-go/api/errors"
	"github.com/neco-fun/neco-api-go/api/groups"
	"github.com/neco-fun/neco-api-go/api/middleware"
	"github.com/neco-fun/neco-api-go/api/shared"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/facade"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.GetOrCreate("api/gin")

const (
	v1GroupName            = "v1"
	defaultMetricsPath     = "/metrics"
	defaultShutdownTimeout = 5 * time.Second
)

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade           shared.FacadeHandler
	ApiConfig        config.ApiRoutesConfig
	AntiFloodConfig  config.WebServerAntifloodConfig
	MetricsConfig    config.MetricsConfig
	MetricsHandler   shared.APIMetricsHandler
	MetricsGatherer  prometheus.Gatherer
	LogViewerEnabled bool
	ShutdownTimeout  time.Duration
}

type webServer struct {
	sync.RWMutex
	facade           shared.FacadeHandler
	apiConfig        config.ApiRoutesConfig
	antiFloodConfig  config.WebServerAntifloodConfig
	metricsConfig    config.MetricsConfig
	metricsHandler   shared.APIMetricsHandler
	metricsGatherer  prometheus.Gatherer
	logViewerEnabled bool
	shutdownTimeout  time.Duration
	httpServer       shared.HttpServerCloser
	groups           map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	shutdownTimeout := args.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	gws := &webServer{
		facade:           args.Facade,
		apiConfig:        args.ApiConfig,
		antiFloodConfig:  args.AntiFloodConfig,
		metricsConfig:    args.MetricsConfig,
		metricsHandler:   args.MetricsHandler,
		metricsGatherer:  args.MetricsGatherer,
		logViewerEnabled: args.LogViewerEnabled,
		shutdownTimeout:  shutdownTimeout,
	}

	return gws, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return fmt.Errorf("%w: %v", apiErrors.ErrCannotCreateGinWebServer, apiErrors.ErrNilFacadeHandler)
	}
	if check.IfNil(args.MetricsHandler) {
		return fmt.Errorf("%w: %v", apiErrors.ErrCannotCreateGinWebServer, apiErrors.ErrNilMetricsHandler)
	}
	if args.MetricsConfig.Enabled && args.MetricsGatherer == nil {
		return fmt.Errorf("%w: %v", apiErrors.ErrCannotCreateGinWebServer, apiErrors.ErrNilMetricsGatherer)
	}

	return nil
}

// UpdateFacade updates the facade used by all the registered gin API groups
func (ws *webServer) UpdateFacade(facade shared.FacadeHandler) error {
	if check.IfNil(facade) {
		return apiErrors.ErrNilFacadeHandler
	}

	ws.Lock()
	defer ws.Unlock()

	ws.facade = facade

	for groupName, groupHandler := range ws.groups {
		log.Debug("upgrading facade for gin API group", "group name", groupName)
		err := groupHandler.UpdateFacade(facade)
		if err != nil {
			log.Error("cannot update facade for gin API group", "group name", groupName, "error", err)
		}
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.facade.RestApiInterface() == facade.DefaultRestPortOff {
		log.Info("web server is off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.facade.RestApiInterface(), Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.facade.RestApiInterface())
	ws.httpServer, err = NewHttpServer(server, ws.shutdownTimeout)
	if err != nil {
		return err
	}

	log.Debug("starting web server",
		"SimultaneousRequests", ws.antiFloodConfig.SimultaneousRequests,
		"SameSourceRequestsPerSec", ws.antiFloodConfig.SameSourceRequestsPerSec,
		"SameSourceBurst", ws.antiFloodConfig.SameSourceBurst,
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.facade.RestAPIServerDebugMode() {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}

	for _, proc := range processors {
		if check.IfNil(proc) {
			continue
		}

		engine.Use(proc.MiddlewareHandlerFunc())
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)
	necoGroup, err := groups.NewNecoGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap[v1GroupName] = necoGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, ws.apiConfig)
	}

	if ws.facade.PprofEnabled() {
		log.Debug("registering pprof routes")
		pprof.Register(ginRouter)
	}

	if ws.metricsConfig.Enabled {
		metricsPath := ws.metricsConfig.Path
		if len(metricsPath) == 0 {
			metricsPath = defaultMetricsPath
		}
		log.Debug("registering metrics route", "path", metricsPath)
		ginRouter.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(ws.metricsGatherer, promhttp.HandlerOpts{})))
	}

	if ws.logViewerEnabled {
		registerLoggerWsRoute(ginRouter)
	}
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	metricsMiddleware, err := middleware.NewMetricsMiddleware(ws.metricsHandler)
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, metricsMiddleware)

	if ws.apiConfig.Logging.LoggingEnabled {
		threshold := time.Duration(ws.apiConfig.Logging.ThresholdInMicroSeconds) * time.Microsecond
		responseLoggerMiddleware := middleware.NewResponseLoggerMiddleware(threshold)
		middlewares = append(middlewares, responseLoggerMiddleware)
	}

	sourceLimiter, err := middleware.NewSourceThrottler(middleware.ArgsSourceThrottler{
		RequestsPerSecond: ws.antiFloodConfig.SameSourceRequestsPerSec,
		Burst:             ws.antiFloodConfig.SameSourceBurst,
		IdleTimeout:       time.Duration(ws.antiFloodConfig.SameSourceIdleTimeoutInSec) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, sourceLimiter)

	globalLimiter, err := middleware.NewGlobalThrottler(ws.antiFloodConfig.SimultaneousRequests)
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
