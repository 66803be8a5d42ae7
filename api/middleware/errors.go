package middleware

import "errors"

// ErrInvalidMaxNumRequests signals that a provided number of requests is invalid
var ErrInvalidMaxNumRequests = errors.New("max number of requests value is invalid")

// ErrInvalidRequestsPerSecond signals that the provided requests per second value is invalid
var ErrInvalidRequestsPerSecond = errors.New("requests per second value is invalid")

// ErrInvalidBurst signals that the provided burst value is invalid
var ErrInvalidBurst = errors.New("burst value is invalid")

// ErrTooManyRequests signals that too many requests were simultaneously received
var ErrTooManyRequests = errors.New("too many requests")

// ErrNilMetricsHandler signals that a nil metrics handler has been provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")
