package config

import (
	"fmt"
	"strings"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/neco-fun/neco-api-go/common"
)

// CheckConfig verifies the main configuration before any component is created
func CheckConfig(cfg *Config) error {
	err := checkNetworks(cfg.Networks)
	if err != nil {
		return err
	}

	_, err = common.ParseFailurePolicy(cfg.StakeQuery.FailurePolicy)
	if err != nil {
		return err
	}

	return checkAntiflood(cfg.WebServerAntiflood)
}

func checkNetworks(networks []NetworkConfig) error {
	if len(networks) == 0 {
		return errNoNetworkConfigured
	}

	seen := make(map[common.NetworkType]struct{}, len(networks))
	for idx, networkCfg := range networks {
		network, err := common.NetworkTypeFromName(networkCfg.Type)
		if err != nil {
			return fmt.Errorf("%w for network at index %d", err, idx)
		}
		if _, found := seen[network]; found {
			return fmt.Errorf("%w: %s", errDuplicatedNetwork, network)
		}
		seen[network] = struct{}{}

		if len(strings.TrimSpace(networkCfg.RPCEndpoint)) == 0 {
			return fmt.Errorf("%w for network %s", errEmptyRPCEndpoint, network)
		}
		if !ethCommon.IsHexAddress(networkCfg.NecoStakeContract) {
			return fmt.Errorf("%w for network %s: %q", errInvalidContractAddress, network, networkCfg.NecoStakeContract)
		}
	}

	return nil
}

func checkAntiflood(cfg WebServerAntifloodConfig) error {
	if cfg.SimultaneousRequests == 0 {
		return errInvalidSimultaneousRequests
	}
	if cfg.SameSourceRequestsPerSec <= 0 || cfg.SameSourceBurst <= 0 {
		return fmt.Errorf("%w: %v requests/sec, burst %d",
			errInvalidSameSourceLimits, cfg.SameSourceRequestsPerSec, cfg.SameSourceBurst)
	}

	return nil
}
