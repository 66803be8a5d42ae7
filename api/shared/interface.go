package shared

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neco-fun/neco-api-go/common"
	"github.com/neco-fun/neco-api-go/config"
	"github.com/neco-fun/neco-api-go/data"
)

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// GroupHandler defines the actions needed to be performed by an gin API group
type GroupHandler interface {
	UpdateFacade(newFacade interface{}) error
	RegisterRoutes(
		ws *gin.RouterGroup,
		apiConfig config.ApiRoutesConfig,
	)
	IsInterfaceNil() bool
}

// APIMetricsHandler records the API requests
type APIMetricsHandler interface {
	ObserveAPIRequest(route string, status int, duration time.Duration)
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	GetNecoStakedInfo(ctx context.Context, network common.NetworkType, address string) (*data.StakedInfo, error)
	RestApiInterface() string
	RestAPIServerDebugMode() bool
	PprofEnabled() bool
	IsInterfaceNil() bool
}
