package server

import (
	"math/rand"
	"time"

	"resumelens/internal/analysis"
	"resumelens/internal/config"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// ExtractRequest is the request body for the extract endpoint. FileName is
// optional and only labels the stored history entry.
type ExtractRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName,omitempty"`
}

// SuggestRequest carries either raw resume text or an already extracted
// skill profile. When both are present the profile wins.
type SuggestRequest struct {
	Text       string                 `json:"text,omitempty"`
	Skills     *types.ExtractedSkills `json:"skills,omitempty"`
	AnalysisID string                 `json:"analysisId,omitempty"`
}

// CompareRequest is the request body for the compare endpoint
type CompareRequest struct {
	JobTitle   string                 `json:"jobTitle"`
	Text       string                 `json:"text,omitempty"`
	Skills     *types.ExtractedSkills `json:"skills,omitempty"`
	AnalysisID string                 `json:"analysisId,omitempty"`
}

// MatchRequest is the request body for the match endpoint
type MatchRequest struct {
	ResumeText      string `json:"resumeText"`
	JobDescription  string `json:"jobDescription"`
	IncludeExternal bool   `json:"includeExternal,omitempty"`
}

// CoachRequest is the request body for the coach endpoint
type CoachRequest struct {
	ResumeText string `json:"resumeText"`
}

// TipsRequest is the request body for the tips endpoint. AnalysisID
// optionally attaches the generated tips to a stored history entry.
type TipsRequest struct {
	ResumeText string `json:"resumeText"`
	AnalysisID string `json:"analysisId,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Analysis state shared across requests
	History   *analysis.History
	Suggester *analysis.Suggester

	// Logger
	Logger *apperrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *apperrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		History:        analysis.NewHistory(),
		Suggester:      analysis.NewSuggester(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Logger:         logger,
	}
}
