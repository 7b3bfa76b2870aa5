package ai

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

func testOperationConfig(apiKey string) *config.OperationAIConfig {
	timeout := 5 * time.Second
	retries := 0
	temperature := float32(0.1)
	useSystem := true
	return &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "gemini-2.0-flash",
		APIKey:           apiKey,
		Timeout:          &timeout,
		MaxRetries:       &retries,
		Temperature:      &temperature,
		UseSystemPrompts: &useSystem,
	}
}

func TestNewServiceWithoutAPIKey(t *testing.T) {
	svc, err := NewService(testOperationConfig(""), "atsreview", apperrors.NewLogger(slog.LevelError))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.Provider.(*MockProvider); !ok {
		t.Fatalf("expected mock provider without API key, got %T", svc.Provider)
	}

	result := svc.ExternalAnalysis(context.Background(),
		"react developer with experience", "react developer wanted")
	if result.IsAIGenerated {
		t.Error("mock results must not be marked AI generated")
	}
	if result.Error != "" {
		t.Errorf("unexpected error in result: %s", result.Error)
	}
	if result.Confidence <= 0 {
		t.Errorf("expected positive confidence, got %d", result.Confidence)
	}
}

func TestNewServiceUnsupportedProvider(t *testing.T) {
	cfg := testOperationConfig("some-key")
	cfg.Provider = "openai"

	_, err := NewService(cfg, "tips", apperrors.NewLogger(slog.LevelError))
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidConfig {
		t.Errorf("expected %s error, got %v", apperrors.ErrCodeInvalidConfig, err)
	}
}

type failingProvider struct {
	MockProvider
}

// unparseableProvider simulates a remote provider whose structured JSON
// responses cannot be decoded
type unparseableProvider struct {
	MockProvider
}

func (u *unparseableProvider) GenerateResumeTips(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *TokenUsage, error) {
	return types.ResumeTipsOutput{}, nil,
		apperrors.NewAIError(apperrors.ErrCodeAIParseFailed, "Failed to parse generateResumeTips response as JSON", nil)
}

func (u *unparseableProvider) GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error) {
	return types.ExternalATSAnalysis{}, nil,
		apperrors.NewAIError(apperrors.ErrCodeAIParseFailed, "Failed to parse generateATSAnalysis response as JSON", nil)
}

func TestServiceSubstitutesMockOnParseFailure(t *testing.T) {
	svc := &Service{
		Provider: &unparseableProvider{},
		fallback: NewMockProvider(),
		config:   testOperationConfig("some-key"),
		logger:   apperrors.NewLogger(slog.LevelError),
	}

	tips, _, err := svc.GenerateResumeTips(context.Background(),
		"react developer with 5 years experience leading projects")
	if err != nil {
		t.Fatalf("expected mock substitution, got error: %v", err)
	}
	if tips.Tips == "" {
		t.Error("expected deterministic tips in place of the unparseable response")
	}

	result := svc.ExternalAnalysis(context.Background(),
		"react developer with experience", "react developer wanted")
	if result.Error != "" {
		t.Errorf("expected substituted analysis without error, got %s", result.Error)
	}
	if result.Analysis.OverallScore == 0 {
		t.Error("expected a scored deterministic analysis")
	}
}

func TestServiceDoesNotSubstituteOnServiceFailure(t *testing.T) {
	svc := &Service{
		Provider: &failingProvider{},
		fallback: NewMockProvider(),
		config:   testOperationConfig("some-key"),
		logger:   apperrors.NewLogger(slog.LevelError),
	}

	_, _, err := svc.GenerateATSAnalysis(context.Background(), "resume", "job")
	if err == nil {
		t.Fatal("expected service failure to propagate")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeAIServiceFailed {
		t.Errorf("expected %s error, got %v", apperrors.ErrCodeAIServiceFailed, err)
	}
}

func (f *failingProvider) GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error) {
	return types.ExternalATSAnalysis{}, nil,
		apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "upstream unavailable", nil)
}

func TestExternalAnalysisIsolatesFailures(t *testing.T) {
	svc := &Service{
		Provider: &failingProvider{},
		config:   testOperationConfig("some-key"),
		logger:   apperrors.NewLogger(slog.LevelError),
	}

	result := svc.ExternalAnalysis(context.Background(), "resume", "job")
	if result == nil {
		t.Fatal("expected a result even on failure")
	}
	if result.Error == "" {
		t.Error("expected the provider error to be recorded")
	}
	if result.IsAIGenerated {
		t.Error("failed analysis must not be marked AI generated")
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence on failure, got %d", result.Confidence)
	}
	if result.Analysis.OverallScore != 0 {
		t.Errorf("expected zeroed analysis, got %+v", result.Analysis)
	}
}
