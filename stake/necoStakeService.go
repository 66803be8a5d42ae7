package stake

import (
	"context"
	"fmt"
	"math/big"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/neco-fun/neco-api-go/chain"
	"github.com/neco-fun/neco-api-go/common"
)

// necoStakeService is a per request view over the shared contract reader, bound to one network
type necoStakeService struct {
	network  common.NetworkType
	contract ethCommon.Address
	reader   chain.ContractReader
	observer ReadObserver
}

// GetNecoStakedAmount returns the amount of NECO currently staked by the address
func (nss necoStakeService) GetNecoStakedAmount(ctx context.Context, address string) (*big.Int, error) {
	return nss.readUint(ctx, methodGetStakedAmount, address)
}

// GetNecoStakedTime returns the timestamp since the address has NECO staked
func (nss necoStakeService) GetNecoStakedTime(ctx context.Context, address string) (*big.Int, error) {
	return nss.readUint(ctx, methodGetStakedTime, address)
}

func (nss necoStakeService) readUint(ctx context.Context, method string, address string) (*big.Int, error) {
	start := time.Now()
	value, err := nss.callUint(ctx, method, address)
	nss.observer.ObserveChainRead(nss.network.String(), method, time.Since(start), err)

	return value, err
}

func (nss necoStakeService) callUint(ctx context.Context, method string, address string) (*big.Int, error) {
	if !ethCommon.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	values, err := nss.reader.CallView(ctx, nss.network, nss.contract, method, ethCommon.HexToAddress(address))
	if err != nil {
		return nil, fmt.Errorf("%w in %s on network %s", err, method, nss.network)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, method, len(values))
	}

	value, ok := values[0].(*big.Int)
	if !ok || value == nil {
		return nil, fmt.Errorf("%w: %s returned %T", ErrUnexpectedOutput, method, values[0])
	}

	return value, nil
}
