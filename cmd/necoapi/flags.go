package main

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/facade"
	"github.com/urfave/cli"
)

const filePathPlaceholder = "[path]"

var (
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"networks, the staking contracts and the web server settings.",
		Value: "./config/config.toml",
	}
	// configurationApiFile defines a flag for the path to the api routes toml configuration file
	configurationApiFile = cli.StringFlag{
		Name: "config-api",
		Usage: "The `" + filePathPlaceholder + "` for the api configuration file. This TOML file contains " +
			"all available routes for Rest API and options to enable or disable them.",
		Value: "./config/api.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. If set to off, the REST API is disabled",
		Value: facade.DefaultRestInterface,
	}
	// restApiDebug defines a flag for starting the rest API engine in debug mode
	restApiDebug = cli.BoolFlag{
		Name:  "rest-api-debug",
		Usage: "Boolean option for starting the Rest API in debug mode.",
	}
	// profileMode defines a flag for profiling the binary
	profileMode = cli.BoolFlag{
		Name: "profile-mode",
		Usage: "Boolean option for enabling the profiling mode. If set, the /debug/pprof routes will be available " +
			"on the REST API for profiling the application.",
	}
	// gopsEn used to enable diagnosis of running go processes
	gopsEn = cli.BoolFlag{
		Name:  "gops-enable",
		Usage: "Boolean option for enabling gops over the process. If set, stack can be viewed by calling 'gops stack <pid>'.",
	}
	// failurePolicy overrides the failure policy from the main configuration file
	failurePolicy = cli.StringFlag{
		Name: "failure-policy",
		Usage: "The `policy` used to render a staking quantity whose chain read failed: " +
			"'" + string(common.ZeroOnFailure) + "' reports 0, '" + string(common.ExplicitOnFailure) +
			"' adds availability flags. Overrides the value from the main configuration file.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		configurationApiFile,
		logLevel,
		disableAnsiColor,
		restApiInterface,
		restApiDebug,
		profileMode,
		gopsEn,
		failurePolicy,
	}
}

func getFlagsConfig(ctx *cli.Context) *config.ContextFlagsConfig {
	flagsConfig := &config.ContextFlagsConfig{}

	flagsConfig.LogLevel = ctx.GlobalString(logLevel.Name)
	flagsConfig.DisableAnsiColor = ctx.GlobalBool(disableAnsiColor.Name)
	flagsConfig.RestApiInterface = ctx.GlobalString(restApiInterface.Name)
	flagsConfig.EnableRestAPIServerDebugMode = ctx.GlobalBool(restApiDebug.Name)
	flagsConfig.EnablePprof = ctx.GlobalBool(profileMode.Name)
	flagsConfig.EnableGops = ctx.GlobalBool(gopsEn.Name)
	flagsConfig.FailurePolicy = ctx.GlobalString(failurePolicy.Name)

	return flagsConfig
}

// applyFlags overrides the values loaded from the configuration files with the ones explicitly set on the command line
func applyFlags(ctx *cli.Context, cfgs *config.Configs, log logger.Logger) {
	if ctx.IsSet(restApiInterface.Name) || len(cfgs.GeneralConfig.GeneralSettings.RestApiInterface) == 0 {
		cfgs.GeneralConfig.GeneralSettings.RestApiInterface = cfgs.FlagsConfig.RestApiInterface
	}
	if len(cfgs.FlagsConfig.FailurePolicy) > 0 {
		log.Debug("failure policy overridden from flag", "policy", cfgs.FlagsConfig.FailurePolicy)
		cfgs.GeneralConfig.StakeQuery.FailurePolicy = cfgs.FlagsConfig.FailurePolicy
	}
}
