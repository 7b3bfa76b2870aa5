package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

const defaultModelCheckTimeout = 10 * time.Second

// GeminiProvider implements AIProvider backed by the Gemini API
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	operationType  string
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *apperrors.Logger
}

var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini AI provider
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:         client,
		httpClient:     &http.Client{Timeout: *cfg.Timeout},
		config:         cfg,
		operationType:  operationType,
		circuitBreaker: NewAICircuitBreaker(cfg, operationType, logger),
		modelBreaker:   NewModelCircuitBreaker(cfg, operationType, logger),
		logger:         logger,
	}, nil
}

// executeAIOperation runs a generation request through the circuit breaker and
// retry loop, then parses the structured JSON response into Out.
func executeAIOperation[Out any](g *GeminiProvider, ctx context.Context, operationName, userPrompt, systemPrompt string, genaiConfig *genai.GenerateContentConfig, spanAttributes ...attribute.KeyValue) (Out, *TokenUsage, error) {
	var out Out

	tracer := otel.Tracer("resumelens.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
	)
	if g.config.Temperature != nil {
		span.SetAttributes(attribute.Float64("ai.temperature", float64(*g.config.Temperature)))
	}
	span.SetAttributes(spanAttributes...)

	if g.config.UseSystemPrompts != nil && *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})
	if err != nil {
		return out, nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed,
			fmt.Sprintf("Gemini %s request failed", operationName), err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil {
		return out, nil, apperrors.NewAIError(apperrors.ErrCodeAIParseFailed,
			fmt.Sprintf("Failed to parse %s response as JSON", operationName), err)
	}

	usage := extractTokenUsage(result)
	if usage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", usage.InputTokens),
			attribute.Int64("ai.tokens.output", usage.OutputTokens),
			attribute.Int64("ai.tokens.total", usage.TotalTokens),
		)
	}

	return out, usage, nil
}

// executeWithRetry retries transient failures with exponential backoff and jitter
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	maxRetries := 0
	if g.config.MaxRetries != nil {
		maxRetries = *g.config.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			baseDelay := time.Duration(1<<uint(attempt-1)) * time.Second

			// Up to 10% jitter so concurrent retries do not align
			jitter := time.Duration(0)
			if n, err := rand.Int(rand.Reader, big.NewInt(int64(baseDelay/10)+1)); err == nil {
				jitter = time.Duration(n.Int64())
			}

			delay := baseDelay + jitter
			if delay > 30*time.Second {
				delay = 30 * time.Second
			}

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		g.logger.Warn("Retrying Gemini request after transient error",
			"operation", g.operationType,
			"attempt", attempt+1,
			"error", err.Error())
	}

	return nil, lastErr
}

// isRetryableError reports whether the request should be retried
func isRetryableError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// extractTokenUsage pulls token counts from the response metadata
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}
	return &TokenUsage{
		InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
		OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
	}
}

// GenerateResumeTips produces freeform improvement guidance for a resume
func (g *GeminiProvider) GenerateResumeTips(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(g.getUserPrompt("tips"), resumeText)

	out, usage, err := executeAIOperation[types.ResumeTipsOutput](
		g, ctx, "generateResumeTips", userPrompt, g.getSystemPrompt("tips"), g.buildTipsConfig(),
		attribute.Int("ai.input.resume_length", len(resumeText)),
	)
	if err != nil {
		return out, usage, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("ai.output.tips_length", len(out.Tips)),
	)
	return out, usage, nil
}

// GenerateCareerCoachAnalysis produces structured career guidance for a resume
func (g *GeminiProvider) GenerateCareerCoachAnalysis(ctx context.Context, resumeText string) (types.CareerCoachAnalysis, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(g.getUserPrompt("coach"), resumeText)

	out, usage, err := executeAIOperation[types.CareerCoachAnalysis](
		g, ctx, "generateCareerCoachAnalysis", userPrompt, g.getSystemPrompt("coach"), g.buildCoachConfig(),
		attribute.Int("ai.input.resume_length", len(resumeText)),
	)
	if err != nil {
		return out, usage, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("ai.output.job_titles", len(out.SuitableJobTitles)),
		attribute.Int("ai.output.improvements", len(out.Improvements)),
	)
	return out, usage, nil
}

// GenerateATSAnalysis scores a resume against a job description
func (g *GeminiProvider) GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(g.getUserPrompt("atsreview"), resumeText, jobDescription)

	out, usage, err := executeAIOperation[types.ExternalATSAnalysis](
		g, ctx, "generateATSAnalysis", userPrompt, g.getSystemPrompt("atsreview"), g.buildATSConfig(),
		attribute.Int("ai.input.resume_length", len(resumeText)),
		attribute.Int("ai.input.job_length", len(jobDescription)),
	)
	if err != nil {
		return out, usage, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("ai.output.overall_score", out.OverallScore),
		attribute.Int("ai.output.suggestions", len(out.Suggestions)),
	)
	return out, usage, nil
}

// GetModelInfo checks availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	timeout := defaultModelCheckTimeout
	if config.GlobalConfig != nil && config.GlobalConfig.Observability.HealthCheck.AIModelCheckTimeout > 0 {
		timeout = config.GlobalConfig.Observability.HealthCheck.AIModelCheckTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(ctx, g.config.Model, nil)
	})
	if err != nil {
		return &ModelInfo{
			Name:      g.config.Model,
			Available: false,
			Error:     err.Error(),
		}
	}

	return &ModelInfo{
		Name:        model.Name,
		DisplayName: model.DisplayName,
		Version:     model.Version,
		Available:   true,
	}
}

// GetCircuitBreakerStats returns statistics for both circuit breakers
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
		"overall_healthy":  g.circuitBreaker.IsHealthy() && g.modelBreaker.IsModelHealthy(),
	}
}

// Close releases provider resources
func (g *GeminiProvider) Close() error {
	// The genai client does not hold connections that need explicit cleanup
	return nil
}

// resolvePrompt picks the highest-priority prompt source: file, config, default
func resolvePrompt(fromFile, fromConfig, fromDefault string) string {
	if fromFile != "" {
		return fromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}

// getSystemPrompt returns the system prompt for the given operation
func (g *GeminiProvider) getSystemPrompt(operation string) string {
	loaded := config.GetPromptsForOperation(operation)

	switch operation {
	case "tips":
		return resolvePrompt(loaded.SystemPrompts.ResumeTips,
			g.config.CustomPrompts.SystemPrompts.ResumeTips,
			DefaultSystemPrompts.ResumeTips)
	case "coach":
		return resolvePrompt(loaded.SystemPrompts.CareerCoach,
			g.config.CustomPrompts.SystemPrompts.CareerCoach,
			DefaultSystemPrompts.CareerCoach)
	case "atsreview":
		return resolvePrompt(loaded.SystemPrompts.ATSReview,
			g.config.CustomPrompts.SystemPrompts.ATSReview,
			DefaultSystemPrompts.ATSReview)
	}
	return ""
}

// getUserPrompt returns the user prompt template for the given operation
func (g *GeminiProvider) getUserPrompt(operation string) string {
	loaded := config.GetPromptsForOperation(operation)

	switch operation {
	case "tips":
		return resolvePrompt(loaded.UserPrompts.ResumeTips,
			g.config.CustomPrompts.UserPrompts.ResumeTips,
			DefaultUserPrompts.ResumeTips)
	case "coach":
		return resolvePrompt(loaded.UserPrompts.CareerCoach,
			g.config.CustomPrompts.UserPrompts.CareerCoach,
			DefaultUserPrompts.CareerCoach)
	case "atsreview":
		return resolvePrompt(loaded.UserPrompts.ATSReview,
			g.config.CustomPrompts.UserPrompts.ATSReview,
			DefaultUserPrompts.ATSReview)
	}
	return ""
}

// baseGenerateConfig returns a structured-output config with the operation temperature
func (g *GeminiProvider) baseGenerateConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if g.config.Temperature != nil && *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
	return cfg
}

// buildTipsConfig builds the response schema for resume tips
func (g *GeminiProvider) buildTipsConfig() *genai.GenerateContentConfig {
	return g.baseGenerateConfig(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tips": {
				Type:        genai.TypeString,
				Description: "Comprehensive, actionable career guidance for the resume",
			},
		},
		Required: []string{"tips"},
	})
}

// buildCoachConfig builds the response schema for career coach analysis
func (g *GeminiProvider) buildCoachConfig() *genai.GenerateContentConfig {
	return g.baseGenerateConfig(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suitableJobTitles": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"missingSkills": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"jobTitle": {Type: genai.TypeString},
						"requiredSkills": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
						"preferredSkills": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"jobTitle", "requiredSkills", "preferredSkills"},
				},
			},
			"improvements": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"overallAssessment": {Type: genai.TypeString},
		},
		Required: []string{"suitableJobTitles", "missingSkills", "improvements", "overallAssessment"},
	})
}

// buildATSConfig builds the response schema for the external ATS analysis
func (g *GeminiProvider) buildATSConfig() *genai.GenerateContentConfig {
	return g.baseGenerateConfig(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallScore": {Type: genai.TypeInteger},
			"breakdown": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"keywordMatch":    {Type: genai.TypeInteger},
					"titleMatch":      {Type: genai.TypeInteger},
					"formatting":      {Type: genai.TypeInteger},
					"skillOverlap":    {Type: genai.TypeInteger},
					"experienceLevel": {Type: genai.TypeInteger},
					"educationMatch":  {Type: genai.TypeInteger},
				},
				Required: []string{"keywordMatch", "titleMatch", "formatting", "skillOverlap", "experienceLevel", "educationMatch"},
			},
			"suggestions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"overallScore", "breakdown", "suggestions", "explanation"},
	})
}
