package formatters

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleSkills() types.ExtractedSkills {
	return types.ExtractedSkills{
		HardSkills: []types.SkillMatch{
			{Name: "React", Category: "Frontend Development", Confidence: 92, Mentions: 3},
		},
		SoftSkills: []types.SkillMatch{
			{Name: "Leadership", Category: "Leadership & Management", Confidence: 85, Mentions: 1},
		},
		TotalSkills: 2,
	}
}

func TestFormatJSONFallback(t *testing.T) {
	out, err := GlobalRegistry.Format(map[string]string{"hello": "world"}, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"hello": "world"`) {
		t.Errorf("json output missing payload: %s", out)
	}
}

func TestFormatSkillsText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSkills(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"SKILL PROFILE", "React", "Leadership", "Total skills detected: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatSkillsMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSkills(), "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "# Skill Profile") {
		t.Errorf("markdown output should start with heading, got %q", out[:min(len(out), 40)])
	}
	if !strings.Contains(out, "## Hard Skills (1)") {
		t.Errorf("markdown output missing hard skills section: %s", out)
	}
}

func TestFormatComparisonChecklist(t *testing.T) {
	comparison := types.TargetJobComparison{
		JobTitle:        "Frontend Developer",
		MatchPercentage: 72,
		ExperienceLevel: types.ExperienceMid,
		SalaryRange:     "$70,000 - $110,000",
		SkillsChecklist: []types.SkillChecklistItem{
			{Skill: "React", Category: types.ChecklistRequired, HasSkill: true, Importance: types.ImportanceHigh},
			{Skill: "TypeScript", Category: types.ChecklistRequired, HasSkill: false, Importance: types.ImportanceHigh, LearningTime: "2-3 months"},
		},
	}

	out, err := GlobalRegistry.Format(comparison, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "[x] React") {
		t.Errorf("owned skill should be checked: %s", out)
	}
	if !strings.Contains(out, "[ ] TypeScript") || !strings.Contains(out, "2-3 months") {
		t.Errorf("missing skill should be unchecked with learning time: %s", out)
	}
}

func TestFormatMatchExternalError(t *testing.T) {
	result := types.ATSMatchResult{
		OverallScore: 55,
		ExternalAnalysis: &types.ExternalAnalysisResult{
			Error: "service unavailable",
		},
	}

	out, err := GlobalRegistry.Format(result, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Unavailable: service unavailable") {
		t.Errorf("external failure should surface in report: %s", out)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleSkills(), "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
