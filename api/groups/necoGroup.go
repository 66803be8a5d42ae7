package groups

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/neco-fun/neco-api-go/api/errors"
	"github.com/neco-fun/neco-api-go/api/shared"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/data"
)

const necoStakedInfoPath = "/neco-staked-info/:network/:public_address"

// necoFacadeHandler defines the methods to be implemented by a facade for NECO requests
type necoFacadeHandler interface {
	GetNecoStakedInfo(ctx context.Context, network common.NetworkType, address string) (*data.StakedInfo, error)
	IsInterfaceNil() bool
}

// necoStakedInfoRequest holds the path parameters of the staked info endpoint
type necoStakedInfoRequest struct {
	Network       int64  `uri:"network"`
	PublicAddress string `uri:"public_address"`
}

type necoGroup struct {
	*baseGroup
	facade    necoFacadeHandler
	mutFacade sync.RWMutex
}

// NewNecoGroup returns a new instance of necoGroup
func NewNecoGroup(facade necoFacadeHandler) (*necoGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for neco group", errors.ErrNilFacadeHandler)
	}

	ng := &necoGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    necoStakedInfoPath,
			Method:  http.MethodGet,
			Handler: ng.getNecoStakedInfo,
		},
	}
	ng.endpoints = endpoints

	return ng, nil
}

// getNecoStakedInfo returns the NECO staked amount and staked time of an address on the selected network
func (ng *necoGroup) getNecoStakedInfo(c *gin.Context) {
	log.Info("get neco staked info", "public address", c.Param("public_address"), "network", c.Param("network"))

	request := necoStakedInfoRequest{}
	err := c.ShouldBindUri(&request)
	if err != nil {
		log.Debug("get neco staked info - invalid request", "network", c.Param("network"), "error", err.Error())
		shared.RespondWithError(c, http.StatusBadRequest, errors.ErrNetworkType.Error())
		return
	}

	network, err := common.NetworkTypeFromSelector(request.Network)
	if err != nil {
		log.Debug("get neco staked info - invalid network",
			"public address", request.PublicAddress, "network", request.Network)
		shared.RespondWithError(c, http.StatusBadRequest, errors.ErrNetworkType.Error())
		return
	}

	stakedInfo, err := ng.getFacade().GetNecoStakedInfo(c.Request.Context(), network, request.PublicAddress)
	if err != nil {
		shared.RespondWithError(
			c,
			http.StatusInternalServerError,
			fmt.Sprintf("%s: %s", errors.ErrGetNecoStakedInfo.Error(), err.Error()),
		)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, stakedInfo)
}

func (ng *necoGroup) getFacade() necoFacadeHandler {
	ng.mutFacade.RLock()
	defer ng.mutFacade.RUnlock()

	return ng.facade
}

// UpdateFacade will update the facade
func (ng *necoGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return errors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(necoFacadeHandler)
	if !ok {
		return errors.ErrFacadeWrongTypeAssertion
	}

	ng.mutFacade.Lock()
	ng.facade = castFacade
	ng.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ng *necoGroup) IsInterfaceNil() bool {
	return ng == nil
}
