package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
)

var log = logger.GetOrCreate("chain")

// ArgsClientsHolder holds the arguments needed to create a new clients holder
type ArgsClientsHolder struct {
	Networks      []config.NetworkConfig
	DialTimeout   time.Duration
	VerifyChainID bool
	DialHandler   DialHandler
}

type clientsHolder struct {
	mut     sync.RWMutex
	clients map[common.NetworkType]RPCClient
}

// DialEthClient opens an ethclient connection to the given endpoint
func DialEthClient(ctx context.Context, endpoint string) (RPCClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// NewClientsHolder dials every configured network and keeps the connections for the lifetime of the service
func NewClientsHolder(ctx context.Context, args ArgsClientsHolder) (*clientsHolder, error) {
	if args.DialHandler == nil {
		return nil, ErrNilDialHandler
	}

	holder := &clientsHolder{
		clients: make(map[common.NetworkType]RPCClient, len(args.Networks)),
	}

	for _, networkCfg := range args.Networks {
		network, err := common.NetworkTypeFromName(networkCfg.Type)
		if err != nil {
			holder.Close()
			return nil, err
		}

		client, err := dialNetwork(ctx, args, network, networkCfg)
		if err != nil {
			holder.Close()
			return nil, err
		}

		holder.clients[network] = client
		log.Debug("chain client created", "network", network, "endpoint", networkCfg.RPCEndpoint)
	}

	return holder, nil
}

func dialNetwork(ctx context.Context, args ArgsClientsHolder, network common.NetworkType, networkCfg config.NetworkConfig) (RPCClient, error) {
	dialCtx := ctx
	if args.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, args.DialTimeout)
		defer cancel()
	}

	client, err := args.DialHandler(dialCtx, networkCfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%w while dialing %s for network %s", err, networkCfg.RPCEndpoint, network)
	}

	if !args.VerifyChainID || networkCfg.ChainID == 0 {
		return client, nil
	}

	chainID, err := client.ChainID(dialCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w while fetching the chain ID for network %s", err, network)
	}
	if !chainID.IsUint64() || chainID.Uint64() != networkCfg.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w for network %s: expected %d, got %s",
			ErrChainIDMismatch, network, networkCfg.ChainID, chainID.String())
	}

	return client, nil
}

// Caller returns the shared caller for the provided network
func (ch *clientsHolder) Caller(network common.NetworkType) (ethereum.ContractCaller, error) {
	ch.mut.RLock()
	defer ch.mut.RUnlock()

	client, ok := ch.clients[network]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoClientForNetwork, network)
	}

	return client, nil
}

// Close closes all the underlying connections
func (ch *clientsHolder) Close() {
	ch.mut.Lock()
	defer ch.mut.Unlock()

	for network, client := range ch.clients {
		client.Close()
		log.Debug("chain client closed", "network", network)
	}
	ch.clients = make(map[common.NetworkType]RPCClient)
}

// IsInterfaceNil returns true if there is no value under the interface
func (ch *clientsHolder) IsInterfaceNil() bool {
	return ch == nil
}
