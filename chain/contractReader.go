package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/neco-fun/neco-api-go/common"
)

// ArgsContractReader holds the arguments needed to create a new contract reader
type ArgsContractReader struct {
	Clients     ClientsProvider
	ContractABI abi.ABI
	ReadTimeout time.Duration
}

type contractReader struct {
	clients     ClientsProvider
	contractABI abi.ABI
	readTimeout time.Duration
}

// NewContractReader creates a reader able to execute the view methods of the provided ABI
func NewContractReader(args ArgsContractReader) (*contractReader, error) {
	if check.IfNil(args.Clients) {
		return nil, ErrNilClientsProvider
	}
	if args.ReadTimeout <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReadTimeout, args.ReadTimeout)
	}

	return &contractReader{
		clients:     args.Clients,
		contractABI: args.ContractABI,
		readTimeout: args.ReadTimeout,
	}, nil
}

// CallView packs the call, executes it against the latest block of the network and unpacks the returned values
func (cr *contractReader) CallView(
	ctx context.Context,
	network common.NetworkType,
	contract ethCommon.Address,
	method string,
	args ...interface{},
) ([]interface{}, error) {
	if _, found := cr.contractABI.Methods[method]; !found {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}

	caller, err := cr.clients.Caller(network)
	if err != nil {
		return nil, err
	}

	input, err := cr.contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w while packing the arguments of %s", err, method)
	}

	ctx, cancel := context.WithTimeout(ctx, cr.readTimeout)
	defer cancel()

	output, err := caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w while calling %s on %s", err, method, contract.Hex())
	}

	values, err := cr.contractABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%w while unpacking the output of %s", err, method)
	}

	return values, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (cr *contractReader) IsInterfaceNil() bool {
	return cr == nil
}
