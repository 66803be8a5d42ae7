package stakeMocks

import "time"

// ReadObserverStub -
type ReadObserverStub struct {
	ObserveChainReadCalled func(network string, method string, duration time.Duration, err error)
}

// ObserveChainRead -
func (stub *ReadObserverStub) ObserveChainRead(network string, method string, duration time.Duration, err error) {
	if stub.ObserveChainReadCalled != nil {
		stub.ObserveChainReadCalled(network, method, duration, err)
	}
}

// IsInterfaceNil -
func (stub *ReadObserverStub) IsInterfaceNil() bool {
	return stub == nil
}
