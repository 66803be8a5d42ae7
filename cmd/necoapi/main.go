package main

import (
	"fmt"
	"os"
	"runtime"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/node"
	"github.com/urfave/cli"
)

const defaultAppVersion = "undefined"

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//            go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = defaultAppVersion

func main() {
	log := logger.GetOrCreate("main")

	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "NECO staking API"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for starting the REST API reporting the NECO staking positions"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The NECO Team",
			Email: "contact@neco.fun",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startApi(c, log)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startApi(ctx *cli.Context, log logger.Logger) error {
	flagsConfig := getFlagsConfig(ctx)

	err := initializeLogger(flagsConfig)
	if err != nil {
		return err
	}

	cfgs, err := readConfigs(ctx, flagsConfig, log)
	if err != nil {
		return err
	}

	runner, err := node.NewApiRunner(cfgs)
	if err != nil {
		return err
	}

	log.Info("starting", "version", ctx.App.Version, "pid", os.Getpid())

	return runner.Start()
}

func readConfigs(ctx *cli.Context, flagsConfig *config.ContextFlagsConfig, log logger.Logger) (*config.Configs, error) {
	configurationFileName := ctx.GlobalString(configurationFile.Name)
	generalConfig, err := config.LoadMainConfig(configurationFileName)
	if err != nil {
		return nil, err
	}
	log.Debug("config", "file", configurationFileName)

	configurationApiFileName := ctx.GlobalString(configurationApiFile.Name)
	apiRoutesConfig, err := config.LoadApiConfig(configurationApiFileName)
	if err != nil {
		return nil, err
	}
	log.Debug("config", "file", configurationApiFileName)

	cfgs := &config.Configs{
		GeneralConfig:     generalConfig,
		ApiRoutesConfig:   apiRoutesConfig,
		FlagsConfig:       flagsConfig,
		ConfigurationFile: configurationFileName,
		ApiRoutesFile:     configurationApiFileName,
	}
	applyFlags(ctx, cfgs, log)

	err = config.CheckConfig(cfgs.GeneralConfig)
	if err != nil {
		return nil, err
	}

	return cfgs, nil
}

func initializeLogger(flagsConfig *config.ContextFlagsConfig) error {
	err := logger.SetLogLevel(flagsConfig.LogLevel)
	if err != nil {
		return err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return err
		}
	}

	return nil
}
