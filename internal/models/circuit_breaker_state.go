package models

// CircuitBreakerState represents the state of a circuit breaker
type CircuitBreakerState int

// String returns a human-readable state name for logging and metrics
func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
