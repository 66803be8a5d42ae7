package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	apiGin "github.com/neco-fun/neco-api-go/api/gin"
	"github.com/neco-fun/neco-api-go/api/shared"
	"github.com/neco-fun/neco-api-go/chain"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/facade"
	"github.com/neco-fun/neco-api-go/stake"
	"github.com/neco-fun/neco-api-go/statusHandler"
	"github.com/neco-fun/neco-api-go/statusHandler/disabled"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	maxTimeToClose          = 10 * time.Second
	defaultReadTimeout      = 10 * time.Second
	defaultDialTimeout      = 10 * time.Second
	defaultWebServerTimeout = 5 * time.Second
)

var log = logger.GetOrCreate("node")

type observer interface {
	stake.ReadObserver
	shared.APIMetricsHandler
}

type clientsCloser interface {
	chain.ClientsProvider
	Close()
}

type webServerHandler interface {
	StartHttpServer() error
	Close() error
	IsInterfaceNil() bool
}

type apiComponents struct {
	clients   clientsCloser
	facade    shared.FacadeHandler
	webServer webServerHandler
}

// ApiRunner holds the configs and the dependencies needed to start the NECO API process
type ApiRunner struct {
	configs     *config.Configs
	dialHandler chain.DialHandler
}

// NewApiRunner creates an ApiRunner instance
func NewApiRunner(cfgs *config.Configs) (*ApiRunner, error) {
	if cfgs == nil || cfgs.GeneralConfig == nil || cfgs.ApiRoutesConfig == nil || cfgs.FlagsConfig == nil {
		return nil, ErrNilConfigs
	}

	return &ApiRunner{
		configs:     cfgs,
		dialHandler: chain.DialEthClient,
	}, nil
}

// Start creates all the components, starts the web server and blocks until a termination signal is received
func (ar *ApiRunner) Start() error {
	enableGopsIfNeeded(ar.configs.FlagsConfig.EnableGops)
	logInformation(ar.configs)

	components, err := ar.createComponents(context.Background())
	if err != nil {
		return err
	}

	err = components.webServer.StartHttpServer()
	if err != nil {
		closeAllComponents(components)
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	return waitForSignal(sigs, components)
}

func (ar *ApiRunner) createComponents(ctx context.Context) (*apiComponents, error) {
	generalConfig := ar.configs.GeneralConfig
	flagsConfig := ar.configs.FlagsConfig

	failurePolicy, err := common.ParseFailurePolicy(generalConfig.StakeQuery.FailurePolicy)
	if err != nil {
		return nil, err
	}

	metricsHandler, gatherer, err := createMetrics(generalConfig.Metrics)
	if err != nil {
		return nil, err
	}

	clients, err := chain.NewClientsHolder(ctx, chain.ArgsClientsHolder{
		Networks:      generalConfig.Networks,
		DialTimeout:   millisecondsOrDefault(generalConfig.GeneralSettings.DialTimeoutInMilliseconds, defaultDialTimeout),
		VerifyChainID: generalConfig.GeneralSettings.VerifyChainIDOnStartup,
		DialHandler:   ar.dialHandler,
	})
	if err != nil {
		return nil, fmt.Errorf("%w while creating the chain clients", err)
	}

	components, err := createApiComponents(generalConfig, ar.configs.ApiRoutesConfig, flagsConfig, failurePolicy, clients, metricsHandler, gatherer)
	if err != nil {
		clients.Close()
		return nil, err
	}

	return components, nil
}

func createApiComponents(
	generalConfig *config.Config,
	apiRoutesConfig *config.ApiRoutesConfig,
	flagsConfig *config.ContextFlagsConfig,
	failurePolicy common.FailurePolicy,
	clients clientsCloser,
	metricsHandler observer,
	gatherer prometheus.Gatherer,
) (*apiComponents, error) {
	contractABI, err := stake.NecoStakeABI()
	if err != nil {
		return nil, err
	}

	reader, err := chain.NewContractReader(chain.ArgsContractReader{
		Clients:     clients,
		ContractABI: contractABI,
		ReadTimeout: millisecondsOrDefault(generalConfig.StakeQuery.ReadTimeoutInMilliseconds, defaultReadTimeout),
	})
	if err != nil {
		return nil, err
	}

	serviceProvider, err := stake.NewServiceProvider(stake.ArgsServiceProvider{
		Networks: generalConfig.Networks,
		Reader:   reader,
		Observer: metricsHandler,
	})
	if err != nil {
		return nil, err
	}

	restApiInterface := generalConfig.GeneralSettings.RestApiInterface
	if len(restApiInterface) == 0 {
		restApiInterface = facade.DefaultRestInterface
	}

	necoFacade, err := facade.NewNecoFacade(facade.ArgNecoFacade{
		ServiceProvider:        serviceProvider,
		FailurePolicy:          failurePolicy,
		RestAPIServerDebugMode: flagsConfig.EnableRestAPIServerDebugMode,
		FacadeConfig: config.FacadeConfig{
			RestApiInterface: restApiInterface,
			PprofEnabled:     flagsConfig.EnablePprof,
		},
	})
	if err != nil {
		return nil, err
	}

	shutdownTimeout := time.Duration(generalConfig.GeneralSettings.ShutdownTimeoutInSec) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = defaultWebServerTimeout
	}

	webServer, err := apiGin.NewGinWebServerHandler(apiGin.ArgsNewWebServer{
		Facade:           necoFacade,
		ApiConfig:        *apiRoutesConfig,
		AntiFloodConfig:  generalConfig.WebServerAntiflood,
		MetricsConfig:    generalConfig.Metrics,
		MetricsHandler:   metricsHandler,
		MetricsGatherer:  gatherer,
		LogViewerEnabled: generalConfig.LogViewer.Enabled,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &apiComponents{
		clients:   clients,
		facade:    necoFacade,
		webServer: webServer,
	}, nil
}

func createMetrics(metricsConfig config.MetricsConfig) (observer, prometheus.Gatherer, error) {
	if !metricsConfig.Enabled {
		return disabled.NewDisabledMetrics(), nil, nil
	}

	metrics, err := statusHandler.NewPrometheusMetrics()
	if err != nil {
		return nil, nil, err
	}

	return metrics, metrics.Gatherer(), nil
}

func millisecondsOrDefault(value uint32, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}

	return time.Duration(value) * time.Millisecond
}

func waitForSignal(sigs chan os.Signal, components *apiComponents) error {
	sig := <-sigs
	log.Info("terminating at user's signal...", "signal", sig.String())

	chanCloseComponents := make(chan struct{})
	go func() {
		closeAllComponents(components)
		close(chanCloseComponents)
	}()

	select {
	case <-chanCloseComponents:
		log.Debug("closed all components gracefully")
	case <-time.After(maxTimeToClose):
		log.Warn("force closing the api", "error", "closeAllComponents did not finish on time")
		return fmt.Errorf("did NOT close all components gracefully")
	}

	return nil
}

func closeAllComponents(components *apiComponents) {
	if !check.IfNil(components.webServer) {
		log.Debug("closing the web server")
		err := components.webServer.Close()
		if err != nil {
			log.Warn("error closing the web server", "error", err.Error())
		}
	}

	if !check.IfNil(components.clients) {
		log.Debug("closing the chain clients")
		components.clients.Close()
	}
}

func logInformation(configs *config.Configs) {
	log.Info("configuration files",
		"config", configs.ConfigurationFile,
		"api routes", configs.ApiRoutesFile,
	)
	for _, networkCfg := range configs.GeneralConfig.Networks {
		log.Info("network",
			"type", networkCfg.Type,
			"rpc endpoint", networkCfg.RPCEndpoint,
			"staking contract", networkCfg.NecoStakeContract,
		)
	}
	log.Info("stake query", "failure policy", configs.GeneralConfig.StakeQuery.FailurePolicy)
}

func enableGopsIfNeeded(gopsEnabled bool) {
	if gopsEnabled {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("failure to init gops", "error", err.Error())
		}
	}

	log.Trace("gops", "enabled", gopsEnabled)
}
