package mock

import (
	"context"

	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/data"
)

// FacadeStub is the mock implementation of a node router handler
type FacadeStub struct {
	GetNecoStakedInfoCalled      func(ctx context.Context, network common.NetworkType, address string) (*data.StakedInfo, error)
	RestApiInterfaceCalled       func() string
	RestAPIServerDebugModeCalled func() bool
	PprofEnabledCalled           func() bool
}

// GetNecoStakedInfo -
func (f *FacadeStub) GetNecoStakedInfo(ctx context.Context, network common.NetworkType, address string) (*data.StakedInfo, error) {
	if f.GetNecoStakedInfoCalled != nil {
		return f.GetNecoStakedInfoCalled(ctx, network, address)
	}

	return &data.StakedInfo{
		PublicAddress: address,
		StakedAmount:  "0",
		StakedTime:    "0",
	}, nil
}

// RestApiInterface -
func (f *FacadeStub) RestApiInterface() string {
	if f.RestApiInterfaceCalled != nil {
		return f.RestApiInterfaceCalled()
	}

	return "localhost:8080"
}

// RestAPIServerDebugMode -
func (f *FacadeStub) RestAPIServerDebugMode() bool {
	if f.RestAPIServerDebugModeCalled != nil {
		return f.RestAPIServerDebugModeCalled()
	}

	return false
}

// PprofEnabled -
func (f *FacadeStub) PprofEnabled() bool {
	if f.PprofEnabledCalled != nil {
		return f.PprofEnabledCalled()
	}

	return false
}

// IsInterfaceNil returns true if there is no value under the interface
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
