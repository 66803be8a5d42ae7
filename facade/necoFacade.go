package facade

import (
	"context"
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/data"
	"golang.org/x/sync/errgroup"
)

// DefaultRestInterface is the default interface the rest API will start on if not specified
const DefaultRestInterface = "localhost:8080"

// DefaultRestPortOff is the default value that should be passed if it is desired
// to start the node without a REST endpoint available
const DefaultRestPortOff = "off"

var log = logger.GetOrCreate("facade")

// ArgNecoFacade represents the argument for the neco facade
type ArgNecoFacade struct {
	ServiceProvider        StakeServiceProvider
	FailurePolicy          common.FailurePolicy
	RestAPIServerDebugMode bool
	FacadeConfig           config.FacadeConfig
}

// necoFacade represents a facade for grouping the functionality needed by the REST API
type necoFacade struct {
	serviceProvider        StakeServiceProvider
	failurePolicy          common.FailurePolicy
	restAPIServerDebugMode bool
	config                 config.FacadeConfig
}

// NewNecoFacade creates a new facade instance
func NewNecoFacade(arg ArgNecoFacade) (*necoFacade, error) {
	if check.IfNil(arg.ServiceProvider) {
		return nil, ErrNilStakeServiceProvider
	}
	failurePolicy, err := common.ParseFailurePolicy(string(arg.FailurePolicy))
	if err != nil {
		return nil, err
	}

	return &necoFacade{
		serviceProvider:        arg.ServiceProvider,
		failurePolicy:          failurePolicy,
		restAPIServerDebugMode: arg.RestAPIServerDebugMode,
		config:                 arg.FacadeConfig,
	}, nil
}

// GetNecoStakedInfo reads the staked amount and the staked time of the address on the provided network.
// A failed read never fails the query, the quantity is rendered according to the failure policy.
func (nf *necoFacade) GetNecoStakedInfo(ctx context.Context, network common.NetworkType, address string) (*data.StakedInfo, error) {
	service, err := nf.serviceProvider.ServiceForNetwork(network)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotCreateStakeService, err)
	}

	var amount, stakedTime data.StakeQuantity
	wg := errgroup.Group{}
	wg.Go(func() error {
		amount = readQuantity(ctx, "staked amount", network, address, service.GetNecoStakedAmount)
		return nil
	})
	wg.Go(func() error {
		stakedTime = readQuantity(ctx, "staked time", network, address, service.GetNecoStakedTime)
		return nil
	})
	_ = wg.Wait()

	return nf.renderStakedInfo(address, amount, stakedTime), nil
}

func readQuantity(
	ctx context.Context,
	name string,
	network common.NetworkType,
	address string,
	read func(ctx context.Context, address string) (*big.Int, error),
) data.StakeQuantity {
	value, err := read(ctx, address)
	if err != nil {
		log.Debug("cannot read "+name, "network", network, "address", address, "error", err.Error())
		return data.NewUnavailableQuantity()
	}

	return data.NewAvailableQuantity(value)
}

func (nf *necoFacade) renderStakedInfo(address string, amount data.StakeQuantity, stakedTime data.StakeQuantity) *data.StakedInfo {
	info := &data.StakedInfo{
		PublicAddress: address,
		StakedAmount:  amount.Value.String(),
		StakedTime:    stakedTime.Value.String(),
	}
	if nf.failurePolicy == common.ZeroOnFailure {
		return info
	}

	amountAvailable := amount.Available
	timeAvailable := stakedTime.Available
	info.StakedAmountAvailable = &amountAvailable
	info.StakedTimeAvailable = &timeAvailable
	if !amountAvailable {
		info.StakedAmount = ""
	}
	if !timeAvailable {
		info.StakedTime = ""
	}

	return info
}

// FailurePolicy returns the configured failure policy
func (nf *necoFacade) FailurePolicy() common.FailurePolicy {
	return nf.failurePolicy
}

// RestAPIServerDebugMode return true is debug mode for Rest API is enabled
func (nf *necoFacade) RestAPIServerDebugMode() bool {
	return nf.restAPIServerDebugMode
}

// RestApiInterface returns the interface on which the rest API should start on, based on the config file provided.
// The API will start on the DefaultRestInterface value unless a correct value is passed or
// the value is explicitly set to off, in which case it will not start at all
func (nf *necoFacade) RestApiInterface() string {
	if nf.config.RestApiInterface == "" {
		return DefaultRestInterface
	}

	return nf.config.RestApiInterface
}

// PprofEnabled returns if profiling mode should be active or not on the application
func (nf *necoFacade) PprofEnabled() bool {
	return nf.config.PprofEnabled
}

// IsInterfaceNil returns true if there is no value under the interface
func (nf *necoFacade) IsInterfaceNil() bool {
	return nf == nil
}
