package chainMocks

import (
	"context"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/neco-fun/neco-api-go/common"
)

// ContractReaderStub -
type ContractReaderStub struct {
	CallViewCalled func(ctx context.Context, network common.NetworkType, contract ethCommon.Address, method string, args ...interface{}) ([]interface{}, error)
}

// CallView -
func (stub *ContractReaderStub) CallView(
	ctx context.Context,
	network common.NetworkType,
	contract ethCommon.Address,
	method string,
	args ...interface{},
) ([]interface{}, error) {
	if stub.CallViewCalled != nil {
		return stub.CallViewCalled(ctx, network, contract, method, args...)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *ContractReaderStub) IsInterfaceNil() bool {
	return stub == nil
}
