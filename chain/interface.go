package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/neco-fun/neco-api-go/common"
)

// RPCClient is the subset of an EVM JSON-RPC client used by this package
type RPCClient interface {
	ethereum.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// DialHandler opens a connection to an EVM JSON-RPC endpoint
type DialHandler func(ctx context.Context, endpoint string) (RPCClient, error)

// ClientsProvider gives access to the shared chain caller of a network
type ClientsProvider interface {
	Caller(network common.NetworkType) (ethereum.ContractCaller, error)
	IsInterfaceNil() bool
}

// ContractReader executes read-only contract calls
type ContractReader interface {
	CallView(ctx context.Context, network common.NetworkType, contract ethCommon.Address, method string, args ...interface{}) ([]interface{}, error)
	IsInterfaceNil() bool
}
