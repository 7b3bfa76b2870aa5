package ai

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/genai"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	cb := NewAICircuitBreaker(breakerConfig(false), "tips", apperrors.NewLogger(slog.LevelError))
	if cb != nil {
		t.Fatal("expected nil breaker when disabled")
	}

	// nil breaker still passes calls through
	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil || !called {
		t.Errorf("nil breaker should run the operation: called=%v err=%v", called, err)
	}
	if !cb.IsHealthy() {
		t.Error("nil breaker reports healthy")
	}
	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("nil breaker stats should report enabled=false")
	}
}

func TestCircuitBreakerTripsAfterFailures(t *testing.T) {
	cb := NewAICircuitBreaker(breakerConfig(true), "atsreview", apperrors.NewLogger(slog.LevelError))
	if cb == nil {
		t.Fatal("expected a breaker when enabled")
	}
	if !cb.IsHealthy() {
		t.Fatal("new breaker should start closed")
	}

	fail := func() (*genai.GenerateContentResponse, error) {
		return nil, errors.New("upstream down")
	}
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(fail); err == nil {
			t.Fatalf("attempt %d: expected failure", i)
		}
	}

	if cb.IsHealthy() {
		t.Error("breaker should be open after three consecutive failures")
	}
	// once open, gobreaker rejects calls without running the operation
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		t.Error("operation should not run while the breaker is open")
		return nil, nil
	}); err == nil {
		t.Error("open breaker should reject calls")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); !enabled {
		t.Error("enabled breaker stats should report enabled=true")
	}
	if state, _ := stats["state"].(string); state != "open" {
		t.Errorf("expected open state, got %q", state)
	}
}

func TestCircuitBreakerStaysClosedBelowThreshold(t *testing.T) {
	cb := NewAICircuitBreaker(breakerConfig(true), "coach", apperrors.NewLogger(slog.LevelError))

	ok := func() (*genai.GenerateContentResponse, error) { return nil, nil }
	fail := func() (*genai.GenerateContentResponse, error) { return nil, errors.New("transient") }

	// one failure out of three is under the 0.6 failure ratio
	cb.Execute(ok)
	cb.Execute(ok)
	cb.Execute(fail)

	if !cb.IsHealthy() {
		t.Error("breaker should stay closed below the failure threshold")
	}
}

func TestModelCircuitBreakerDisabled(t *testing.T) {
	mcb := NewModelCircuitBreaker(breakerConfig(false), "tips", apperrors.NewLogger(slog.LevelError))
	if mcb != nil {
		t.Fatal("expected nil model breaker when disabled")
	}
	model, err := mcb.ExecuteModel(func() (*genai.Model, error) {
		return &genai.Model{Name: "gemini-2.0-flash"}, nil
	})
	if err != nil || model == nil {
		t.Errorf("nil model breaker should pass through: model=%v err=%v", model, err)
	}
	if !mcb.IsModelHealthy() {
		t.Error("nil model breaker reports healthy")
	}
}
