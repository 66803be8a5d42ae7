package stakeMocks

import (
	"context"
	"math/big"
)

// StakeQueryServiceStub -
type StakeQueryServiceStub struct {
	GetNecoStakedAmountCalled func(ctx context.Context, address string) (*big.Int, error)
	GetNecoStakedTimeCalled   func(ctx context.Context, address string) (*big.Int, error)
}

// GetNecoStakedAmount -
func (stub *StakeQueryServiceStub) GetNecoStakedAmount(ctx context.Context, address string) (*big.Int, error) {
	if stub.GetNecoStakedAmountCalled != nil {
		return stub.GetNecoStakedAmountCalled(ctx, address)
	}

	return big.NewInt(0), nil
}

// GetNecoStakedTime -
func (stub *StakeQueryServiceStub) GetNecoStakedTime(ctx context.Context, address string) (*big.Int, error) {
	if stub.GetNecoStakedTimeCalled != nil {
		return stub.GetNecoStakedTimeCalled(ctx, address)
	}

	return big.NewInt(0), nil
}
