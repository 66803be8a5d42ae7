package stake

import (
	"fmt"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/neco-fun/neco-api-go/chain"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
)

// ArgsServiceProvider holds the arguments needed to create a new service provider
type ArgsServiceProvider struct {
	Networks []config.NetworkConfig
	Reader   chain.ContractReader
	Observer ReadObserver
}

type serviceProvider struct {
	contracts map[common.NetworkType]ethCommon.Address
	reader    chain.ContractReader
	observer  ReadObserver
}

// NewServiceProvider creates the component building the stake query services for each network
func NewServiceProvider(args ArgsServiceProvider) (*serviceProvider, error) {
	if check.IfNil(args.Reader) {
		return nil, ErrNilContractReader
	}
	if check.IfNil(args.Observer) {
		return nil, ErrNilReadObserver
	}

	contracts := make(map[common.NetworkType]ethCommon.Address, len(args.Networks))
	for _, networkCfg := range args.Networks {
		network, err := common.NetworkTypeFromName(networkCfg.Type)
		if err != nil {
			return nil, err
		}
		if !ethCommon.IsHexAddress(networkCfg.NecoStakeContract) {
			return nil, fmt.Errorf("%w for network %s", ErrInvalidContractAddress, network)
		}

		contracts[network] = ethCommon.HexToAddress(networkCfg.NecoStakeContract)
	}

	return &serviceProvider{
		contracts: contracts,
		reader:    args.Reader,
		observer:  args.Observer,
	}, nil
}

// ServiceForNetwork returns a stake query service bound to the provided network
func (sp *serviceProvider) ServiceForNetwork(network common.NetworkType) (StakeQueryService, error) {
	contract, ok := sp.contracts[network]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoContractForNetwork, network)
	}

	return necoStakeService{
		network:  network,
		contract: contract,
		reader:   sp.reader,
		observer: sp.observer,
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (sp *serviceProvider) IsInterfaceNil() bool {
	return sp == nil
}
