package ai

import (
	"context"

	"resumelens/internal/types"
)

// TokenUsage represents token consumption for a single AI operation
type TokenUsage struct {
	InputTokens  int64 `json:"inputTokens"`
	OutputTokens int64 `json:"outputTokens"`
	TotalTokens  int64 `json:"totalTokens"`
}

// ModelInfo describes the model behind a provider and its availability
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// AIProvider defines the interface for AI service providers
type AIProvider interface {
	// GenerateResumeTips produces freeform improvement guidance for a resume
	GenerateResumeTips(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *TokenUsage, error)

	// GenerateCareerCoachAnalysis produces structured career guidance for a resume
	GenerateCareerCoachAnalysis(ctx context.Context, resumeText string) (types.CareerCoachAnalysis, *TokenUsage, error)

	// GenerateATSAnalysis scores a resume against a job description independently
	// of the deterministic pipeline
	GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error)

	// GetModelInfo reports which model the provider uses and whether it is reachable
	GetModelInfo(ctx context.Context) *ModelInfo

	// Close releases provider resources
	Close() error
}
