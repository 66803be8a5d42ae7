package stakeMocks

import (
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/stake"
)

// ServiceProviderStub -
type ServiceProviderStub struct {
	ServiceForNetworkCalled func(network common.NetworkType) (stake.StakeQueryService, error)
}

// ServiceForNetwork -
func (stub *ServiceProviderStub) ServiceForNetwork(network common.NetworkType) (stake.StakeQueryService, error) {
	if stub.ServiceForNetworkCalled != nil {
		return stub.ServiceForNetworkCalled(network)
	}

	return &StakeQueryServiceStub{}, nil
}

// IsInterfaceNil -
func (stub *ServiceProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
