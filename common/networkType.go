package common

import (
	"fmt"
	"strings"
)

// NetworkType identifies the chain a query is executed against
type NetworkType uint8

const (
	// BSCMainNetwork is the BNB smart chain main network
	BSCMainNetwork NetworkType = iota
	// BSCTestNetwork is the BNB smart chain test network
	BSCTestNetwork
)

const (
	bscMainNetworkName = "BSCMainNetwork"
	bscTestNetworkName = "BSCTestNetwork"
)

// AllNetworkTypes returns every supported network in selector order
func AllNetworkTypes() []NetworkType {
	return []NetworkType{BSCMainNetwork, BSCTestNetwork}
}

// NetworkTypeFromSelector maps the integer selector received on the API to a network
func NetworkTypeFromSelector(selector int64) (NetworkType, error) {
	switch selector {
	case 0:
		return BSCMainNetwork, nil
	case 1:
		return BSCTestNetwork, nil
	default:
		return 0, fmt.Errorf("%w: selector %d", ErrInvalidNetworkType, selector)
	}
}

// NetworkTypeFromName parses the name used in configuration files
func NetworkTypeFromName(name string) (NetworkType, error) {
	for _, network := range AllNetworkTypes() {
		if strings.EqualFold(network.String(), strings.TrimSpace(name)) {
			return network, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownNetworkName, name)
}

// Selector returns the integer code used on the API for this network
func (nt NetworkType) Selector() int64 {
	return int64(nt)
}

// String returns the human readable name of the network
func (nt NetworkType) String() string {
	switch nt {
	case BSCMainNetwork:
		return bscMainNetworkName
	case BSCTestNetwork:
		return bscTestNetworkName
	default:
		return fmt.Sprintf("unknown network %d", uint8(nt))
	}
}
