package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Resume tips operation defaults
	v.SetDefault("ai.tips.provider", "gemini")
	v.SetDefault("ai.tips.model", "")
	v.SetDefault("ai.tips.timeout", 60*time.Second)
	v.SetDefault("ai.tips.apiKey", "")
	v.SetDefault("ai.tips.maxRetries", 3)
	v.SetDefault("ai.tips.temperature", 0.4) // Some variety in phrasing, still grounded
	v.SetDefault("ai.tips.useSystemPrompts", true)

	// AI Configuration - Career coach operation defaults
	v.SetDefault("ai.coach.provider", "gemini")
	v.SetDefault("ai.coach.model", "")
	v.SetDefault("ai.coach.timeout", 90*time.Second) // Longer timeout for the richer analysis
	v.SetDefault("ai.coach.apiKey", "")
	v.SetDefault("ai.coach.maxRetries", 2)
	v.SetDefault("ai.coach.temperature", 0.3) // Lower temperature for consistency
	v.SetDefault("ai.coach.useSystemPrompts", true)

	// AI Configuration - ATS review operation defaults
	v.SetDefault("ai.atsreview.provider", "gemini")
	v.SetDefault("ai.atsreview.model", "")
	v.SetDefault("ai.atsreview.timeout", 75*time.Second)
	v.SetDefault("ai.atsreview.apiKey", "")
	v.SetDefault("ai.atsreview.maxRetries", 2)
	v.SetDefault("ai.atsreview.temperature", 0.1) // Very low temperature for factual scoring
	v.SetDefault("ai.atsreview.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.tips.circuitBreaker.enabled", true)
	v.SetDefault("ai.tips.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.tips.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.tips.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.tips.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.tips.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.coach.circuitBreaker.enabled", true)
	v.SetDefault("ai.coach.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.coach.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.coach.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.coach.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.coach.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.atsreview.circuitBreaker.enabled", true)
	v.SetDefault("ai.atsreview.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.atsreview.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.atsreview.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.atsreview.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.atsreview.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)
	v.SetDefault("server.tls.serverName", "")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumelens")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
