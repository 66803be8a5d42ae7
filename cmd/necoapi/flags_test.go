package main

import (
	"flag"
	"testing"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func createCliContext(t *testing.T, args []string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range getFlags() {
		f.Apply(set)
	}
	require.Nil(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func createConfigs(flagsConfig *config.ContextFlagsConfig) *config.Configs {
	return &config.Configs{
		GeneralConfig: &config.Config{
			GeneralSettings: config.GeneralSettingsConfig{
				RestApiInterface: "localhost:9090",
			},
			StakeQuery: config.StakeQueryConfig{
				FailurePolicy: "zero",
			},
		},
		ApiRoutesConfig: &config.ApiRoutesConfig{},
		FlagsConfig:     flagsConfig,
	}
}

func TestGetFlagsConfig(t *testing.T) {
	t.Parallel()

	ctx := createCliContext(t, []string{
		"--log-level", "*:DEBUG",
		"--disable-ansi-color",
		"--rest-api-debug",
		"--profile-mode",
		"--gops-enable",
		"--failure-policy", "explicit",
	})

	flagsConfig := getFlagsConfig(ctx)
	assert.Equal(t, "*:DEBUG", flagsConfig.LogLevel)
	assert.True(t, flagsConfig.DisableAnsiColor)
	assert.True(t, flagsConfig.EnableRestAPIServerDebugMode)
	assert.True(t, flagsConfig.EnablePprof)
	assert.True(t, flagsConfig.EnableGops)
	assert.Equal(t, "explicit", flagsConfig.FailurePolicy)
	assert.Equal(t, "localhost:8080", flagsConfig.RestApiInterface)
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	log := logger.GetOrCreate("main/test")

	t.Run("defaults should keep the configuration values", func(t *testing.T) {
		t.Parallel()

		ctx := createCliContext(t, nil)
		cfgs := createConfigs(getFlagsConfig(ctx))
		applyFlags(ctx, cfgs, log)

		assert.Equal(t, "localhost:9090", cfgs.GeneralConfig.GeneralSettings.RestApiInterface)
		assert.Equal(t, "zero", cfgs.GeneralConfig.StakeQuery.FailurePolicy)
	})
	t.Run("explicit flags should override the configuration values", func(t *testing.T) {
		t.Parallel()

		ctx := createCliContext(t, []string{"--rest-api-interface", "off", "--failure-policy", "explicit"})
		cfgs := createConfigs(getFlagsConfig(ctx))
		applyFlags(ctx, cfgs, log)

		assert.Equal(t, "off", cfgs.GeneralConfig.GeneralSettings.RestApiInterface)
		assert.Equal(t, "explicit", cfgs.GeneralConfig.StakeQuery.FailurePolicy)
	})
	t.Run("empty configured interface should use the flag default", func(t *testing.T) {
		t.Parallel()

		ctx := createCliContext(t, nil)
		cfgs := createConfigs(getFlagsConfig(ctx))
		cfgs.GeneralConfig.GeneralSettings.RestApiInterface = ""
		applyFlags(ctx, cfgs, log)

		assert.Equal(t, "localhost:8080", cfgs.GeneralConfig.GeneralSettings.RestApiInterface)
	})
}
