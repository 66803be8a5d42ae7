package config

// Config will hold the whole config file's data
type Config struct {
	GeneralSettings    GeneralSettingsConfig
	StakeQuery         StakeQueryConfig
	Networks           []NetworkConfig
	WebServerAntiflood WebServerAntifloodConfig
	Metrics            MetricsConfig
	LogViewer          LogViewerConfig
}

// GeneralSettingsConfig will hold the general settings of the service
type GeneralSettingsConfig struct {
	RestApiInterface          string
	ShutdownTimeoutInSec      uint32
	VerifyChainIDOnStartup    bool
	DialTimeoutInMilliseconds uint32
}

// StakeQueryConfig holds the settings used when reading the staking contract
type StakeQueryConfig struct {
	// FailurePolicy decides how a failed read is rendered: "zero" or "explicit"
	FailurePolicy             string
	ReadTimeoutInMilliseconds uint32
}

// NetworkConfig describes one chain the service can read from
type NetworkConfig struct {
	Type              string
	RPCEndpoint       string
	ChainID           uint64
	NecoStakeContract string
}

// WebServerAntifloodConfig will hold the anti-flooding parameters for the web server
type WebServerAntifloodConfig struct {
	SimultaneousRequests       uint32
	SameSourceRequestsPerSec   float64
	SameSourceBurst            int
	SameSourceIdleTimeoutInSec uint32
}

// MetricsConfig holds the settings of the prometheus exporter
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// LogViewerConfig holds the settings of the websocket log route
type LogViewerConfig struct {
	Enabled bool
}

// ApiRoutesConfig holds the configuration related to Rest API routes
type ApiRoutesConfig struct {
	Logging     ApiLoggingConfig
	APIPackages map[string]APIPackageConfig
}

// ApiLoggingConfig holds the configuration related to API requests logging
type ApiLoggingConfig struct {
	LoggingEnabled          bool
	ThresholdInMicroSeconds int
}

// APIPackageConfig holds the configuration for the routes of each package
type APIPackageConfig struct {
	Routes []RouteConfig
}

// RouteConfig holds the configuration for a single route
type RouteConfig struct {
	Name string
	Open bool
}

// Configs is a holder for the service configuration parameters
type Configs struct {
	GeneralConfig     *Config
	ApiRoutesConfig   *ApiRoutesConfig
	FlagsConfig       *ContextFlagsConfig
	ConfigurationFile string
	ApiRoutesFile     string
}

// ContextFlagsConfig will keep the values for the cli.Context flags
type ContextFlagsConfig struct {
	LogLevel                     string
	DisableAnsiColor             bool
	RestApiInterface             string
	EnableRestAPIServerDebugMode bool
	EnablePprof                  bool
	EnableGops                   bool
	FailurePolicy                string
}

// FacadeConfig will hold different configuration option that will be passed to the main facade
type FacadeConfig struct {
	RestApiInterface string
	PprofEnabled     bool
}
