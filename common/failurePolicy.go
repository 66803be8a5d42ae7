package common

import (
	"fmt"
	"strings"
)

// FailurePolicy defines how a staking quantity that could not be read is rendered
type FailurePolicy string

const (
	// ZeroOnFailure renders an unreadable quantity as zero, indistinguishable from nothing staked
	ZeroOnFailure FailurePolicy = "zero"
	// ExplicitOnFailure renders an unreadable quantity as unavailable
	ExplicitOnFailure FailurePolicy = "explicit"
)

// ParseFailurePolicy converts the configured value to a FailurePolicy. An empty value selects ZeroOnFailure.
func ParseFailurePolicy(value string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", ZeroOnFailure:
		return ZeroOnFailure, nil
	case ExplicitOnFailure:
		return ExplicitOnFailure, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFailurePolicy, value)
	}
}
