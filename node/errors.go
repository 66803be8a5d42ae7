package node

import "errors"

// ErrNilConfigs signals that nil configs have been provided
var ErrNilConfigs = errors.New("nil configs")
