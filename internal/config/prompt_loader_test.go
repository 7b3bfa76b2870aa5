package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePromptFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write prompt file: %v", err)
	}
	return path
}

func TestLoadPromptFromFile(t *testing.T) {
	dir := t.TempDir()
	c := &Config{}

	t.Run("valid file", func(t *testing.T) {
		path := writePromptFile(t, dir, "tips.txt", "  You are a resume reviewer.  \n")
		content, err := c.loadPromptFromFile(path, "system", "resumeTips")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "You are a resume reviewer." {
			t.Errorf("expected trimmed content, got %q", content)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := c.loadPromptFromFile(filepath.Join(dir, "missing.txt"), "system", "resumeTips")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writePromptFile(t, dir, "empty.txt", "   \n\t")
		_, err := c.loadPromptFromFile(path, "user", "careerCoach")
		if err == nil || !strings.Contains(err.Error(), "is empty") {
			t.Errorf("expected empty file error, got %v", err)
		}
	})
}

func TestValidatePromptFiles(t *testing.T) {
	dir := t.TempDir()
	existing := writePromptFile(t, dir, "coach.txt", "coach prompt")

	t.Run("no files configured", func(t *testing.T) {
		c := &Config{}
		if err := c.validatePromptFiles(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("existing file passes", func(t *testing.T) {
		c := &Config{}
		c.AI.CustomPrompts.SystemPrompts.CareerCoachFile = existing
		if err := c.validatePromptFiles(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing files collected", func(t *testing.T) {
		c := &Config{}
		c.AI.CustomPrompts.SystemPrompts.ResumeTipsFile = filepath.Join(dir, "no-such-tips.txt")
		c.AI.Coach.CustomPrompts.UserPrompts.CareerCoachFile = filepath.Join(dir, "no-such-coach.txt")
		err := c.validatePromptFiles()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "no-such-tips.txt") || !strings.Contains(err.Error(), "no-such-coach.txt") {
			t.Errorf("expected both missing files reported, got %v", err)
		}
	})
}

func TestLoadPromptsFromFiles(t *testing.T) {
	dir := t.TempDir()
	tipsPath := writePromptFile(t, dir, "tips-system.txt", "Tips system prompt")
	atsPath := writePromptFile(t, dir, "ats-user.txt", "ATS user prompt")

	c := &Config{}
	c.AI.Tips.CustomPrompts.SystemPrompts.ResumeTipsFile = tipsPath
	c.AI.ATSReview.CustomPrompts.UserPrompts.ATSReviewFile = atsPath

	if err := c.loadPromptsFromFiles(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.GetLoadedTipsPrompts().SystemPrompts.ResumeTips; got != "Tips system prompt" {
		t.Errorf("tips system prompt not loaded, got %q", got)
	}
	if got := c.GetLoadedATSReviewPrompts().UserPrompts.ATSReview; got != "ATS user prompt" {
		t.Errorf("atsreview user prompt not loaded, got %q", got)
	}

	ops := GetPromptsForOperation("tips")
	if ops.SystemPrompts.ResumeTips != "Tips system prompt" {
		t.Errorf("operation lookup returned %q", ops.SystemPrompts.ResumeTips)
	}
}
