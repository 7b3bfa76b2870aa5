package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// Service wraps an AIProvider for one operation type. Responses the remote
// provider returns but that cannot be parsed into the expected structure are
// silently replaced by the deterministic mock equivalent.
type Service struct {
	Provider AIProvider
	fallback *MockProvider
	config   *config.OperationAIConfig
	logger   *apperrors.Logger
}

// NewService creates a new AI service for the given operation. An empty API
// key selects the deterministic mock provider instead of a remote one.
func NewService(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) (*Service, error) {
	var provider AIProvider

	if cfg.APIKey == "" {
		logger.Warn("No AI API key configured, using deterministic mock provider",
			"operation", operationType)
		provider = NewMockProvider()
	} else {
		switch cfg.Provider {
		case "gemini":
			gemini, err := NewGeminiProvider(cfg, operationType, logger)
			if err != nil {
				return nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "Failed to create AI provider", err)
			}
			provider = gemini
		default:
			return nil, apperrors.NewConfigError(apperrors.ErrCodeInvalidConfig,
				fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
		}
	}

	return &Service{
		Provider: provider,
		fallback: NewMockProvider(),
		config:   cfg,
		logger:   logger,
	}, nil
}

// isParseFailure reports whether the provider produced a response that could
// not be parsed into the expected structure
func isParseFailure(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.ErrCodeAIParseFailed
}

// GenerateResumeTips produces improvement guidance for a resume
func (s *Service) GenerateResumeTips(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *TokenUsage, error) {
	out, usage, err := s.Provider.GenerateResumeTips(ctx, resumeText)
	if !isParseFailure(err) {
		return out, usage, err
	}
	s.logger.Warn("Unparseable tips response, substituting deterministic analysis",
		"error", err.Error())
	return s.fallback.GenerateResumeTips(ctx, resumeText)
}

// GenerateCareerCoachAnalysis produces structured career guidance for a resume
func (s *Service) GenerateCareerCoachAnalysis(ctx context.Context, resumeText string) (types.CareerCoachAnalysis, *TokenUsage, error) {
	out, usage, err := s.Provider.GenerateCareerCoachAnalysis(ctx, resumeText)
	if !isParseFailure(err) {
		return out, usage, err
	}
	s.logger.Warn("Unparseable coach response, substituting deterministic analysis",
		"error", err.Error())
	return s.fallback.GenerateCareerCoachAnalysis(ctx, resumeText)
}

// GenerateATSAnalysis scores a resume against a job description
func (s *Service) GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error) {
	out, usage, err := s.Provider.GenerateATSAnalysis(ctx, resumeText, jobDescription)
	if !isParseFailure(err) {
		return out, usage, err
	}
	s.logger.Warn("Unparseable ATS response, substituting deterministic analysis",
		"error", err.Error())
	return s.fallback.GenerateATSAnalysis(ctx, resumeText, jobDescription)
}

// ExternalAnalysis runs the external ATS scorer and wraps the outcome with
// provenance. Failures are isolated into the result instead of propagating,
// so the deterministic analysis a caller pairs this with is never lost.
func (s *Service) ExternalAnalysis(ctx context.Context, resumeText, jobDescription string) *types.ExternalAnalysisResult {
	start := time.Now()

	analysis, _, err := s.GenerateATSAnalysis(ctx, resumeText, jobDescription)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		s.logger.LogError(err, "External ATS analysis failed")
		return &types.ExternalAnalysisResult{
			Analysis: types.ExternalATSAnalysis{
				Suggestions: []string{},
			},
			IsAIGenerated:    false,
			Error:            err.Error(),
			Confidence:       0,
			ProcessingTimeMs: elapsed,
		}
	}

	return &types.ExternalAnalysisResult{
		Analysis:         analysis,
		IsAIGenerated:    s.config.APIKey != "",
		Confidence:       calculateConfidence(analysis, resumeText, jobDescription),
		ProcessingTimeMs: elapsed,
	}
}

// GetModelInfo reports the provider's model availability
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases the underlying provider
func (s *Service) Close() error {
	return s.Provider.Close()
}
