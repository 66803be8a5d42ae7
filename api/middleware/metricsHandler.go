package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/neco-fun/neco-api-go/api/shared"
)

const unmatchedRoute = "unmatched"

type metricsMiddleware struct {
	handler shared.APIMetricsHandler
}

// NewMetricsMiddleware returns a middleware that reports every served request to the metrics handler
func NewMetricsMiddleware(handler shared.APIMetricsHandler) (*metricsMiddleware, error) {
	if check.IfNil(handler) {
		return nil, ErrNilMetricsHandler
	}

	return &metricsMiddleware{
		handler: handler,
	}, nil
}

// MiddlewareHandlerFunc returns the handler func used by the gin server when processing requests
func (mm *metricsMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// route templates keep the label cardinality bounded
		route := c.FullPath()
		if len(route) == 0 {
			route = unmatchedRoute
		}
		mm.handler.ObserveAPIRequest(route, c.Writer.Status(), time.Since(start))
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (mm *metricsMiddleware) IsInterfaceNil() bool {
	return mm == nil
}
