package config

import "os"

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	// Legacy fallback; an empty key selects the deterministic mock provider
	if opCfg.APIKey == "" {
		opCfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetTipsConfig returns the AI configuration for resume tip operations with fallback to global config
func (c *Config) GetTipsConfig() OperationAIConfig {
	config := c.AI.Tips

	c.applyOperationDefaults(&config)

	// Apply tips-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ResumeTips == "" {
		config.CustomPrompts.SystemPrompts.ResumeTips = c.AI.CustomPrompts.SystemPrompts.ResumeTips
	}
	if config.CustomPrompts.UserPrompts.ResumeTips == "" {
		config.CustomPrompts.UserPrompts.ResumeTips = c.AI.CustomPrompts.UserPrompts.ResumeTips
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ResumeTipsFile == "" {
		config.CustomPrompts.SystemPrompts.ResumeTipsFile = c.AI.CustomPrompts.SystemPrompts.ResumeTipsFile
	}
	if config.CustomPrompts.UserPrompts.ResumeTipsFile == "" {
		config.CustomPrompts.UserPrompts.ResumeTipsFile = c.AI.CustomPrompts.UserPrompts.ResumeTipsFile
	}

	return config
}

// GetCoachConfig returns the AI configuration for career coach operations with fallback to global config
func (c *Config) GetCoachConfig() OperationAIConfig {
	config := c.AI.Coach

	c.applyOperationDefaults(&config)

	// Apply coach-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.CareerCoach == "" {
		config.CustomPrompts.SystemPrompts.CareerCoach = c.AI.CustomPrompts.SystemPrompts.CareerCoach
	}
	if config.CustomPrompts.UserPrompts.CareerCoach == "" {
		config.CustomPrompts.UserPrompts.CareerCoach = c.AI.CustomPrompts.UserPrompts.CareerCoach
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.CareerCoachFile == "" {
		config.CustomPrompts.SystemPrompts.CareerCoachFile = c.AI.CustomPrompts.SystemPrompts.CareerCoachFile
	}
	if config.CustomPrompts.UserPrompts.CareerCoachFile == "" {
		config.CustomPrompts.UserPrompts.CareerCoachFile = c.AI.CustomPrompts.UserPrompts.CareerCoachFile
	}

	return config
}

// GetATSReviewConfig returns the AI configuration for ATS review operations with fallback to global config
func (c *Config) GetATSReviewConfig() OperationAIConfig {
	config := c.AI.ATSReview

	c.applyOperationDefaults(&config)

	// Apply ATS-review-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ATSReview == "" {
		config.CustomPrompts.SystemPrompts.ATSReview = c.AI.CustomPrompts.SystemPrompts.ATSReview
	}
	if config.CustomPrompts.UserPrompts.ATSReview == "" {
		config.CustomPrompts.UserPrompts.ATSReview = c.AI.CustomPrompts.UserPrompts.ATSReview
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ATSReviewFile == "" {
		config.CustomPrompts.SystemPrompts.ATSReviewFile = c.AI.CustomPrompts.SystemPrompts.ATSReviewFile
	}
	if config.CustomPrompts.UserPrompts.ATSReviewFile == "" {
		config.CustomPrompts.UserPrompts.ATSReviewFile = c.AI.CustomPrompts.UserPrompts.ATSReviewFile
	}

	return config
}

// GetLoadedTipsPrompts returns a copy of the loaded prompts for the resume tips operation
func (c *Config) GetLoadedTipsPrompts() OperationLoadedPrompts {
	return loadedPrompts.Tips
}

// GetLoadedCoachPrompts returns a copy of the loaded prompts for the career coach operation
func (c *Config) GetLoadedCoachPrompts() OperationLoadedPrompts {
	return loadedPrompts.Coach
}

// GetLoadedATSReviewPrompts returns a copy of the loaded prompts for the ATS review operation
func (c *Config) GetLoadedATSReviewPrompts() OperationLoadedPrompts {
	return loadedPrompts.ATSReview
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
