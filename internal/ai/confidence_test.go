package ai

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestCalculateConfidence(t *testing.T) {
	consistent := types.ExternalATSAnalysis{
		OverallScore: 78,
		Breakdown: types.ExternalATSBreakdown{
			KeywordMatch: 80, TitleMatch: 75, Formatting: 62,
			SkillOverlap: 70, ExperienceLevel: 100, EducationMatch: 80,
		},
		Suggestions: []string{"one", "two"},
		Explanation: strings.Repeat("detailed scoring methodology ", 3),
	}

	tests := []struct {
		name     string
		analysis types.ExternalATSAnalysis
		resume   string
		job      string
		want     int
	}{
		{
			// 70 base + 10 range + 10 breakdown + 5 suggestions + 5 explanation
			// + 10 consistency, capped
			name:     "fully consistent analysis",
			analysis: consistent,
			resume:   "short",
			job:      "short",
			want:     100,
		},
		{
			// overall far from the breakdown average, no suggestions, short
			// explanation: 70 + 10 + 10
			name: "inconsistent scores",
			analysis: types.ExternalATSAnalysis{
				OverallScore: 90,
				Breakdown:    types.ExternalATSBreakdown{},
			},
			resume: "short",
			job:    "short",
			want:   90,
		},
		{
			// zeroed error fallback still self-consistent: 70 + 10 + 10 + 10
			name:     "zero value analysis",
			analysis: types.ExternalATSAnalysis{},
			resume:   "",
			job:      "",
			want:     100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateConfidence(tt.analysis, tt.resume, tt.job)
			if got != tt.want {
				t.Errorf("calculateConfidence = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateConfidenceTextComplexity(t *testing.T) {
	analysis := types.ExternalATSAnalysis{
		OverallScore: 90,
		Breakdown:    types.ExternalATSBreakdown{},
	}

	short := calculateConfidence(analysis, "short", "short")
	long := calculateConfidence(analysis, strings.Repeat("x", 2000), strings.Repeat("y", 2000))
	if long <= short {
		t.Errorf("expected longer inputs to raise confidence: short %d, long %d", short, long)
	}
}
