package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/neco-fun/neco-api-go/api/shared"
)

var log = logger.GetOrCreate("api/middleware")

func abortWithTooManyRequests(c *gin.Context, message string) {
	shared.AbortWithError(c, http.StatusTooManyRequests, message)
}

// sourceOf returns the host part of the request's remote address, falling back to gin's client IP
func sourceOf(c *gin.Context) string {
	remoteAddr, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.ClientIP()
	}

	return remoteAddr
}
