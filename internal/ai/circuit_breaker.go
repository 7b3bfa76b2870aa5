package ai

import (
	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
)

// AICircuitBreaker wraps generation calls so a failing upstream trips open
// instead of burning retries on every request
type AICircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[*genai.GenerateContentResponse]
}

// NewAICircuitBreaker creates a circuit breaker for AI generation operations.
// Returns nil when the breaker is disabled; a nil breaker passes calls through.
func NewAICircuitBreaker(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) *AICircuitBreaker {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "AI-" + operationType,
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.MinRequests &&
				failureRatio >= cfg.CircuitBreaker.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &AICircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[*genai.GenerateContentResponse](settings),
	}
}

// Execute runs the operation through the circuit breaker
func (acb *AICircuitBreaker) Execute(operation func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	if acb == nil || acb.cb == nil {
		return operation()
	}
	return acb.cb.Execute(operation)
}

// GetStats returns circuit breaker statistics
func (acb *AICircuitBreaker) GetStats() map[string]any {
	if acb == nil || acb.cb == nil {
		return map[string]any{"enabled": false}
	}

	counts := acb.cb.Counts()
	return map[string]any{
		"enabled":              true,
		"state":                acb.cb.State().String(),
		"requests":             counts.Requests,
		"totalSuccesses":       counts.TotalSuccesses,
		"totalFailures":        counts.TotalFailures,
		"consecutiveFailures":  counts.ConsecutiveFailures,
		"consecutiveSuccesses": counts.ConsecutiveSuccesses,
	}
}

// IsHealthy reports whether the breaker allows traffic
func (acb *AICircuitBreaker) IsHealthy() bool {
	if acb == nil || acb.cb == nil {
		return true
	}
	return acb.cb.State() != gobreaker.StateOpen
}

// ModelCircuitBreaker guards model metadata lookups used by health checks
type ModelCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[*genai.Model]
}

// NewModelCircuitBreaker creates a circuit breaker for model info operations.
// Model lookups are cheap and tolerated to fail more often, so the trip
// threshold is stricter than for generation calls.
func NewModelCircuitBreaker(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) *ModelCircuitBreaker {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "AI-Model-" + operationType,
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Model circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &ModelCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[*genai.Model](settings),
	}
}

// ExecuteModel runs the model lookup through the circuit breaker
func (mcb *ModelCircuitBreaker) ExecuteModel(operation func() (*genai.Model, error)) (*genai.Model, error) {
	if mcb == nil || mcb.cb == nil {
		return operation()
	}
	return mcb.cb.Execute(operation)
}

// GetModelStats returns model circuit breaker statistics
func (mcb *ModelCircuitBreaker) GetModelStats() map[string]any {
	if mcb == nil || mcb.cb == nil {
		return map[string]any{"enabled": false}
	}

	counts := mcb.cb.Counts()
	return map[string]any{
		"enabled":              true,
		"state":                mcb.cb.State().String(),
		"requests":             counts.Requests,
		"totalSuccesses":       counts.TotalSuccesses,
		"totalFailures":        counts.TotalFailures,
		"consecutiveFailures":  counts.ConsecutiveFailures,
		"consecutiveSuccesses": counts.ConsecutiveSuccesses,
	}
}

// IsModelHealthy reports whether the model breaker allows traffic
func (mcb *ModelCircuitBreaker) IsModelHealthy() bool {
	if mcb == nil || mcb.cb == nil {
		return true
	}
	return mcb.cb.State() != gobreaker.StateOpen
}
