package stake

import "errors"

// ErrInvalidAddress signals that the provided account address is not a valid hex address
var ErrInvalidAddress = errors.New("invalid account address")

// ErrUnexpectedOutput signals that the staking contract returned an unexpected value
var ErrUnexpectedOutput = errors.New("unexpected output from staking contract")

// ErrNoContractForNetwork signals that no staking contract is configured for the requested network
var ErrNoContractForNetwork = errors.New("no staking contract configured for network")

// ErrNilContractReader signals that a nil contract reader has been provided
var ErrNilContractReader = errors.New("nil contract reader")

// ErrNilReadObserver signals that a nil read observer has been provided
var ErrNilReadObserver = errors.New("nil read observer")

// ErrInvalidContractAddress signals that a configured staking contract address is invalid
var ErrInvalidContractAddress = errors.New("invalid staking contract address")
