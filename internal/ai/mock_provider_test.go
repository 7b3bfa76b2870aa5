package ai

import (
	"context"
	"strings"
	"testing"
)

func TestMockResumeTips(t *testing.T) {
	m := NewMockProvider()

	out, usage, err := m.GenerateResumeTips(context.Background(),
		"Senior React developer leading projects. Python, SQL and git daily.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usage != nil {
		t.Error("mock provider should not report token usage")
	}

	for _, want := range []string{
		"**Job Title Suitability:**",
		"Frontend Developer, React Developer, Data Analyst",
		"**Skills Gap Analysis:**",
		"**Actionable Improvements:**",
		"**Overall Assessment:**",
		"competitive for mid-level positions",
	} {
		if !strings.Contains(out.Tips, want) {
			t.Errorf("expected tips to contain %q", want)
		}
	}
}

func TestMockResumeTipsNoSignals(t *testing.T) {
	m := NewMockProvider()

	out, _, err := m.GenerateResumeTips(context.Background(), "I enjoy gardening and cooking.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Tips, "Software Developer, Junior Developer") {
		t.Errorf("expected fallback job titles, got %q", out.Tips)
	}
	if strings.Contains(out.Tips, "competitive for mid-level positions") {
		t.Error("mid-level sentence should only appear with technical signals")
	}
}

func TestMockCareerCoachAnalysis(t *testing.T) {
	m := NewMockProvider()

	out, _, err := m.GenerateCareerCoachAnalysis(context.Background(),
		"React developer building projects, tested with Jest, css styling")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.SuitableJobTitles) == 0 || len(out.SuitableJobTitles) > 4 {
		t.Fatalf("expected 1-4 job titles, got %v", out.SuitableJobTitles)
	}
	if out.SuitableJobTitles[0] != "Frontend Developer" {
		t.Errorf("expected Frontend Developer first, got %s", out.SuitableJobTitles[0])
	}

	if len(out.MissingSkills) == 0 || len(out.MissingSkills) > 2 {
		t.Fatalf("expected 1-2 skill gap entries, got %d", len(out.MissingSkills))
	}
	frontend := out.MissingSkills[0]
	if frontend.JobTitle != "Frontend Developer" {
		t.Errorf("expected Frontend Developer gaps, got %s", frontend.JobTitle)
	}
	// TypeScript absent from the resume, css and test coverage present
	foundTS := false
	for _, s := range frontend.RequiredSkills {
		if s == "TypeScript" {
			foundTS = true
		}
		if s == "Advanced CSS/SASS" {
			t.Error("CSS should not be flagged: resume mentions css")
		}
	}
	if !foundTS {
		t.Errorf("expected TypeScript among required gaps, got %v", frontend.RequiredSkills)
	}

	if len(out.Improvements) == 0 || len(out.Improvements) > 4 {
		t.Errorf("expected 1-4 improvements, got %d", len(out.Improvements))
	}
	if !strings.Contains(out.OverallAssessment, "strong frontend expertise") {
		t.Errorf("expected frontend assessment, got %q", out.OverallAssessment)
	}
}

func TestMockATSAnalysis(t *testing.T) {
	m := NewMockProvider()

	resume := "senior react developer with 5 years of experience"
	job := "senior react developer, 3+ years experience required"

	out, _, err := m.GenerateATSAnalysis(context.Background(), resume, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// react bonus and the experience mention on top of the base score
	if out.Breakdown.SkillOverlap != 70 {
		t.Errorf("expected skill overlap 70, got %d", out.Breakdown.SkillOverlap)
	}
	// one shared role term plus a seniority match
	if out.Breakdown.TitleMatch != 75 {
		t.Errorf("expected title match 75, got %d", out.Breakdown.TitleMatch)
	}
	// 5 years on the resume against 3+ required
	if out.Breakdown.ExperienceLevel != 100 {
		t.Errorf("expected experience level 100, got %d", out.Breakdown.ExperienceLevel)
	}
	// no degree requirement in the job description
	if out.Breakdown.EducationMatch != 80 {
		t.Errorf("expected education match 80, got %d", out.Breakdown.EducationMatch)
	}

	if out.OverallScore < 0 || out.OverallScore > 100 {
		t.Errorf("overall score %d out of range", out.OverallScore)
	}
	if len(out.Suggestions) == 0 || len(out.Suggestions) > 4 {
		t.Errorf("expected 1-4 suggestions, got %d", len(out.Suggestions))
	}
	if !strings.HasPrefix(out.Explanation, "This enhanced analysis simulates modern ATS processing") {
		t.Errorf("unexpected explanation prefix: %q", out.Explanation)
	}
}

func TestMockKeywordMatch(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
		want   int
	}{
		{name: "empty job", resume: "react developer", job: "", want: 0},
		{name: "only short or stop words", resume: "react", job: "the and for you", want: 0},
		{name: "full overlap", resume: "react python", job: "react python", want: 100},
		// 4 of 6 meaningful words shared: round(4/6*120) capped at 100
		{
			name:   "partial overlap",
			resume: "senior react developer with 5 years of experience",
			job:    "senior react developer, 3+ years experience required",
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mockKeywordMatch(tt.resume, tt.job); got != tt.want {
				t.Errorf("mockKeywordMatch = %d, want %d", got, tt.want)
			}
		})
	}
}
