package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"resumelens/internal/ai"
	"resumelens/internal/analysis"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createExtractHandler wraps skill extraction with observability. Every
// successful extraction is stored in the history; the entry ID is returned
// in the X-Analysis-Id header.
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "text field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("operation", "extract"),
		)

		metrics := om.GetMetrics()

		skills, err := analysis.ExtractSkills(req.Text)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om)
			writeErrorResponse(w, "Failed to extract skills", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		fileName := req.FileName
		if fileName == "" {
			fileName = "api-text"
		}
		stored := s.History.Save(types.StoredAnalysis{
			FileName:      fileName,
			FileSize:      int64(len(req.Text)),
			ExtractedText: req.Text,
			WordCount:     len(strings.Fields(req.Text)),
			Skills:        skills,
		})

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("skills.hard", len(skills.HardSkills)),
			attribute.Int("skills.soft", len(skills.SoftSkills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("analysis.id", stored.ID),
		)

		w.Header().Set("X-Analysis-Id", stored.ID)
		writeJSONResponse(w, skills)
	}
}

// resolveSkills returns the given profile, or extracts one from text
func resolveSkills(skills *types.ExtractedSkills, text string) (types.ExtractedSkills, error) {
	if skills != nil {
		return *skills, nil
	}
	if strings.TrimSpace(text) == "" {
		return types.ExtractedSkills{}, fmt.Errorf("either text or skills is required")
	}
	return analysis.ExtractSkills(text)
}

// createSuggestHandler wraps role suggestion with observability
func (s *Server) createSuggestHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.suggest")
		defer span.End()

		var req SuggestRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		skills, err := resolveSkills(req.Skills, req.Text)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing input", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(attribute.String("operation", "suggest"))

		result := s.Suggester.SuggestJobRoles(skills)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "roles_suggested", true, om,
			attribute.Int("suggestions.count", len(result.SuggestedRoles)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("suggestions.count", len(result.SuggestedRoles)),
		)

		writeJSONResponse(w, result)
	}
}

// createCompareHandler wraps target job comparison with observability
func (s *Server) createCompareHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.compare")
		defer span.End()

		var req CompareRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobTitle) == "" {
			err := fmt.Errorf("missing job title")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job title", "jobTitle field is required", http.StatusBadRequest)
			return
		}

		skills, err := resolveSkills(req.Skills, req.Text)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Missing input", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("operation", "compare"),
			attribute.String("job.title", req.JobTitle),
		)

		metrics := om.GetMetrics()

		comparison, err := analysis.CompareWithTargetJob(req.JobTitle, skills)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "comparison_run", false, om)
			writeErrorResponse(w, "Unknown target job", err.Error(), http.StatusNotFound)
			return
		}

		if req.AnalysisID != "" {
			if err := s.History.RecordJobComparison(req.AnalysisID, comparison); err != nil {
				s.Logger.Warn("Failed to attach comparison to history entry",
					"analysis_id", req.AnalysisID,
					"error", err.Error())
			}
		}

		metrics.RecordBusinessMetric(ctx, "comparison_run", true, om,
			attribute.String("job.title", req.JobTitle),
			attribute.Int("match.percentage", comparison.MatchPercentage))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match.percentage", comparison.MatchPercentage),
		)

		writeJSONResponse(w, comparison)
	}
}

// createMatchHandler wraps the deterministic ATS analysis, optionally
// augmented with an external AI score, with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
			attribute.Bool("request.include_external", req.IncludeExternal),
		)

		metrics := om.GetMetrics()

		result := analysis.AnalyzeMatch(req.ResumeText, req.JobDescription)

		if req.IncludeExternal {
			reviewConfig := s.AppConfig.GetATSReviewConfig()
			aiService, err := ai.NewService(&reviewConfig, "atsreview", s.Logger)
			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "service_creation"))
				writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
				return
			}

			// External failures land inside the result; the deterministic
			// analysis always survives.
			result.ExternalAnalysis = aiService.ExternalAnalysis(ctx, req.ResumeText, req.JobDescription)
			span.SetAttributes(
				attribute.Bool("external.ai_generated", result.ExternalAnalysis.IsAIGenerated),
				attribute.Int("external.confidence", result.ExternalAnalysis.Confidence),
			)
		}

		metrics.RecordBusinessMetric(ctx, "ats_scan", true, om,
			attribute.Int("ats.score", result.OverallScore))
		metrics.RecordATSScore(ctx, result.OverallScore, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.OverallScore),
		)

		writeJSONResponse(w, result)
	}
}

// createCoachHandler wraps the career coach AI operation with observability
func (s *Server) createCoachHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.coach")
		defer span.End()

		var req CoachRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "coach"),
		)

		coachConfig := s.AppConfig.GetCoachConfig()
		aiService, err := ai.NewService(&coachConfig, "coach", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result types.CareerCoachAnalysis
		err = metrics.TrackAIOperationWithTokens(ctx, "coach", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.GenerateCareerCoachAnalysis(ctx, req.ResumeText)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			writeErrorResponse(w, "Failed to generate career coach analysis", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.job_titles", len(result.SuitableJobTitles)),
			attribute.Int("response.improvements", len(result.Improvements)),
		)

		writeJSONResponse(w, result)
	}
}

// createTipsHandler wraps the resume tips AI operation with observability
func (s *Server) createTipsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.tips")
		defer span.End()

		var req TipsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "tips"),
		)

		tipsConfig := s.AppConfig.GetTipsConfig()
		aiService, err := ai.NewService(&tipsConfig, "tips", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result types.ResumeTipsOutput
		err = metrics.TrackAIOperationWithTokens(ctx, "tips", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.GenerateResumeTips(ctx, req.ResumeText)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			writeErrorResponse(w, "Failed to generate resume tips", err.Error(), http.StatusInternalServerError)
			return
		}

		if req.AnalysisID != "" {
			if err := s.History.RecordSuggestions(req.AnalysisID, result.Tips); err != nil {
				s.Logger.Warn("Failed to attach tips to history entry",
					"analysis_id", req.AnalysisID,
					"error", err.Error())
			}
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.tips_length", len(result.Tips)),
		)

		writeJSONResponse(w, result)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
