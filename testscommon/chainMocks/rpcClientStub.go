package chainMocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// RPCClientStub -
type RPCClientStub struct {
	CallContractCalled func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	ChainIDCalled      func(ctx context.Context) (*big.Int, error)
	CloseCalled        func()
}

// CallContract -
func (stub *RPCClientStub) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if stub.CallContractCalled != nil {
		return stub.CallContractCalled(ctx, call, blockNumber)
	}

	return nil, nil
}

// ChainID -
func (stub *RPCClientStub) ChainID(ctx context.Context) (*big.Int, error) {
	if stub.ChainIDCalled != nil {
		return stub.ChainIDCalled(ctx)
	}

	return big.NewInt(0), nil
}

// Close -
func (stub *RPCClientStub) Close() {
	if stub.CloseCalled != nil {
		stub.CloseCalled()
	}
}
