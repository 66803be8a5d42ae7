package common

import "errors"

// ErrInvalidNetworkType signals that a network selector does not map to a known network
var ErrInvalidNetworkType = errors.New("network type error")

// ErrUnknownNetworkName signals that a network name could not be parsed
var ErrUnknownNetworkName = errors.New("unknown network name")

// ErrInvalidFailurePolicy signals that an unknown failure policy was provided
var ErrInvalidFailurePolicy = errors.New("invalid failure policy")
