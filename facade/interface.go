package facade

import (
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/stake"
)

// StakeServiceProvider builds the stake query service bound to a network
type StakeServiceProvider interface {
	ServiceForNetwork(network common.NetworkType) (stake.StakeQueryService, error)
	IsInterfaceNil() bool
}
