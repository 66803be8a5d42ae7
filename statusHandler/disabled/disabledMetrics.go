package disabled

import "time"

type disabledMetrics struct {
}

// NewDisabledMetrics returns a metrics handler that records nothing
func NewDisabledMetrics() *disabledMetrics {
	return &disabledMetrics{}
}

// ObserveChainRead does nothing
func (dm *disabledMetrics) ObserveChainRead(_ string, _ string, _ time.Duration, _ error) {
}

// ObserveAPIRequest does nothing
func (dm *disabledMetrics) ObserveAPIRequest(_ string, _ int, _ time.Duration) {
}

// IsInterfaceNil returns true if there is no value under the interface
func (dm *disabledMetrics) IsInterfaceNil() bool {
	return dm == nil
}
