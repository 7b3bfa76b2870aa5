package ai

import (
	"math"

	"resumelens/internal/types"
)

// calculateConfidence estimates how much to trust an external ATS analysis,
// based on completeness, internal consistency, and input size.
func calculateConfidence(a types.ExternalATSAnalysis, resumeText, jobDescription string) int {
	confidence := 70.0 // Base confidence

	// Check if all required fields are present and reasonable
	if a.OverallScore >= 0 && a.OverallScore <= 100 {
		confidence += 10
	}
	// The breakdown always carries all six dimensions
	confidence += 10
	if len(a.Suggestions) >= 2 {
		confidence += 5
	}
	if len(a.Explanation) > 50 {
		confidence += 5
	}

	// Check for logical consistency between the overall score and its parts
	values := []int{
		a.Breakdown.KeywordMatch,
		a.Breakdown.TitleMatch,
		a.Breakdown.Formatting,
		a.Breakdown.SkillOverlap,
		a.Breakdown.ExperienceLevel,
		a.Breakdown.EducationMatch,
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	if math.Abs(float64(a.OverallScore)-avg) < 15 {
		confidence += 10
	}

	// Longer texts usually get more accurate analysis
	textComplexity := float64(len(resumeText)+len(jobDescription)) / 2000
	if textComplexity > 1 {
		confidence += math.Min(textComplexity*5, 15)
	}

	return int(math.Min(math.Round(confidence), 100))
}
