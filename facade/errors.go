package facade

import "errors"

// ErrNilStakeServiceProvider signals that a nil stake service provider has been provided
var ErrNilStakeServiceProvider = errors.New("nil stake service provider")

// ErrCannotCreateStakeService signals that no stake query service could be built for the network
var ErrCannotCreateStakeService = errors.New("cannot create stake query service")
