package chain

import "errors"

// ErrNoClientForNetwork signals that no RPC client was configured for the requested network
var ErrNoClientForNetwork = errors.New("no RPC client configured for network")

// ErrNilClientsProvider signals that a nil clients provider has been provided
var ErrNilClientsProvider = errors.New("nil clients provider")

// ErrNilDialHandler signals that a nil dial handler has been provided
var ErrNilDialHandler = errors.New("nil dial handler")

// ErrChainIDMismatch signals that an endpoint serves a different chain than the configured one
var ErrChainIDMismatch = errors.New("chain ID mismatch")

// ErrInvalidReadTimeout signals that an invalid read timeout has been provided
var ErrInvalidReadTimeout = errors.New("invalid read timeout")

// ErrMethodNotFound signals that the contract ABI does not define the requested method
var ErrMethodNotFound = errors.New("method not found in contract ABI")
