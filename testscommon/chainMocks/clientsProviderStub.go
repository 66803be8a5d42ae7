package chainMocks

import (
	"github.com/ethereum/go-ethereum"
	"github.com/neco-fun/neco-api-go/common"
)

// ClientsProviderStub -
type ClientsProviderStub struct {
	CallerCalled func(network common.NetworkType) (ethereum.ContractCaller, error)
}

// Caller -
func (stub *ClientsProviderStub) Caller(network common.NetworkType) (ethereum.ContractCaller, error) {
	if stub.CallerCalled != nil {
		return stub.CallerCalled(network)
	}

	return &RPCClientStub{}, nil
}

// IsInterfaceNil -
func (stub *ClientsProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
