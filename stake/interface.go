package stake

import (
	"context"
	"math/big"
	"time"
)

// StakeQueryService reads the NECO staking position of an account on one network
type StakeQueryService interface {
	GetNecoStakedAmount(ctx context.Context, address string) (*big.Int, error)
	GetNecoStakedTime(ctx context.Context, address string) (*big.Int, error)
}

// ReadObserver is notified after every staking contract read
type ReadObserver interface {
	ObserveChainRead(network string, method string, duration time.Duration, err error)
	IsInterfaceNil() bool
}
