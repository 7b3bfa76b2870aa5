package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	// Initialize loaded prompts exactly once
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &loadedPrompts.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &loadedPrompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.Tips.CustomPrompts.SystemPrompts, &loadedPrompts.Tips.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load tips system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Tips.CustomPrompts.UserPrompts, &loadedPrompts.Tips.UserPrompts); err != nil {
		return fmt.Errorf("failed to load tips user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.Coach.CustomPrompts.SystemPrompts, &loadedPrompts.Coach.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load coach system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Coach.CustomPrompts.UserPrompts, &loadedPrompts.Coach.UserPrompts); err != nil {
		return fmt.Errorf("failed to load coach user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.ATSReview.CustomPrompts.SystemPrompts, &loadedPrompts.ATSReview.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load atsreview system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.ATSReview.CustomPrompts.UserPrompts, &loadedPrompts.ATSReview.UserPrompts); err != nil {
		return fmt.Errorf("failed to load atsreview user prompts: %w", err)
	}

	// Log summary of prompt sources after loading
	c.logPromptLoadingSummary()

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	if prompts.ResumeTipsFile != "" {
		content, err := c.loadPromptFromFile(prompts.ResumeTipsFile, "system", "resumeTips")
		if err != nil {
			return err
		}
		target.ResumeTips = content
	}

	if prompts.CareerCoachFile != "" {
		content, err := c.loadPromptFromFile(prompts.CareerCoachFile, "system", "careerCoach")
		if err != nil {
			return err
		}
		target.CareerCoach = content
	}

	if prompts.ATSReviewFile != "" {
		content, err := c.loadPromptFromFile(prompts.ATSReviewFile, "system", "atsReview")
		if err != nil {
			return err
		}
		target.ATSReview = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	if prompts.ResumeTipsFile != "" {
		content, err := c.loadPromptFromFile(prompts.ResumeTipsFile, "user", "resumeTips")
		if err != nil {
			return err
		}
		target.ResumeTips = content
	}

	if prompts.CareerCoachFile != "" {
		content, err := c.loadPromptFromFile(prompts.CareerCoachFile, "user", "careerCoach")
		if err != nil {
			return err
		}
		target.CareerCoach = content
	}

	if prompts.ATSReviewFile != "" {
		content, err := c.loadPromptFromFile(prompts.ATSReviewFile, "user", "atsReview")
		if err != nil {
			return err
		}
		target.ATSReview = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	// Log successful loading
	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	// Helper function to validate a file path
	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	// Validate global prompt files
	validateFile(c.AI.CustomPrompts.SystemPrompts.ResumeTipsFile, "system", "resumeTips")
	validateFile(c.AI.CustomPrompts.SystemPrompts.CareerCoachFile, "system", "careerCoach")
	validateFile(c.AI.CustomPrompts.SystemPrompts.ATSReviewFile, "system", "atsReview")
	validateFile(c.AI.CustomPrompts.UserPrompts.ResumeTipsFile, "user", "resumeTips")
	validateFile(c.AI.CustomPrompts.UserPrompts.CareerCoachFile, "user", "careerCoach")
	validateFile(c.AI.CustomPrompts.UserPrompts.ATSReviewFile, "user", "atsReview")

	// Validate operation-specific prompt files
	validateFile(c.AI.Tips.CustomPrompts.SystemPrompts.ResumeTipsFile, "tips system", "resumeTips")
	validateFile(c.AI.Tips.CustomPrompts.UserPrompts.ResumeTipsFile, "tips user", "resumeTips")
	validateFile(c.AI.Coach.CustomPrompts.SystemPrompts.CareerCoachFile, "coach system", "careerCoach")
	validateFile(c.AI.Coach.CustomPrompts.UserPrompts.CareerCoachFile, "coach user", "careerCoach")
	validateFile(c.AI.ATSReview.CustomPrompts.SystemPrompts.ATSReviewFile, "atsreview system", "atsReview")
	validateFile(c.AI.ATSReview.CustomPrompts.UserPrompts.ATSReviewFile, "atsreview user", "atsReview")

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary() {
	promptCount := 0

	promptChecks := []struct {
		content string
		message string
	}{
		{loadedPrompts.Global.SystemPrompts.ResumeTips, "[CONFIG] Global system tips prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.CareerCoach, "[CONFIG] Global system coach prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.ATSReview, "[CONFIG] Global system atsreview prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.ResumeTips, "[CONFIG] Global user tips prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.CareerCoach, "[CONFIG] Global user coach prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.ATSReview, "[CONFIG] Global user atsreview prompt: loaded from config/file"},
		{loadedPrompts.Tips.SystemPrompts.ResumeTips, "[CONFIG] Tips-specific system prompt: loaded from config/file"},
		{loadedPrompts.Tips.UserPrompts.ResumeTips, "[CONFIG] Tips-specific user prompt: loaded from config/file"},
		{loadedPrompts.Coach.SystemPrompts.CareerCoach, "[CONFIG] Coach-specific system prompt: loaded from config/file"},
		{loadedPrompts.Coach.UserPrompts.CareerCoach, "[CONFIG] Coach-specific user prompt: loaded from config/file"},
		{loadedPrompts.ATSReview.SystemPrompts.ATSReview, "[CONFIG] ATSReview-specific system prompt: loaded from config/file"},
		{loadedPrompts.ATSReview.UserPrompts.ATSReview, "[CONFIG] ATSReview-specific user prompt: loaded from config/file"},
	}

	for _, check := range promptChecks {
		if check.content != "" {
			log.Println(check.message)
			promptCount++
		}
	}

	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", promptCount)
	}
}
