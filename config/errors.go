package config

import "errors"

var errNoNetworkConfigured = errors.New("no network configured")

var errDuplicatedNetwork = errors.New("duplicated network configuration")

var errEmptyRPCEndpoint = errors.New("empty RPC endpoint")

var errInvalidContractAddress = errors.New("invalid staking contract address")

var errInvalidSimultaneousRequests = errors.New("invalid number of simultaneous requests")

var errInvalidSameSourceLimits = errors.New("invalid same source request limits")
