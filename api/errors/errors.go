package errors

import (
	"errors"
)

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrFacadeWrongTypeAssertion signals that a type conversion to a facade type failed
var ErrFacadeWrongTypeAssertion = errors.New("facade - wrong type assertion")

// ErrNetworkType signals that the network path parameter is not a known network selector
var ErrNetworkType = errors.New("network type error")

// ErrGetNecoStakedInfo signals an error in getting the NECO staked info of an address
var ErrGetNecoStakedInfo = errors.New("get neco staked info error")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrCannotCreateGinWebServer signals that the gin web server cannot be created
var ErrCannotCreateGinWebServer = errors.New("cannot create gin web server")

// ErrNilMetricsHandler signals that a nil metrics handler has been provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")

// ErrNilMetricsGatherer signals that a nil metrics gatherer has been provided while metrics are enabled
var ErrNilMetricsGatherer = errors.New("nil metrics gatherer")
