package analysis

import (
	"fmt"
	"strings"

	"resumelens/internal/catalog"
	"resumelens/internal/types"
)

// skillImportance grades how strongly the job description demands a
// skill by probing for requirement phrasing around the skill name.
//
// The probes are literal substring checks like "required: react" and
// "react required", so importance only upgrades when the description
// uses one of these exact collocations. Free-form phrasing falls
// through to low, which keeps the scoring conservative.
func skillImportance(skill, jobDescription string) types.Importance {
	text := strings.ToLower(jobDescription)
	skillLower := strings.ToLower(skill)

	highPatterns := []string{
		"required: " + skillLower, "must have " + skillLower, "essential: " + skillLower,
		"required " + skillLower, "critical " + skillLower, "mandatory " + skillLower,
		"key requirement: " + skillLower, skillLower + " required", skillLower + " essential",
	}
	mediumPatterns := []string{
		"preferred: " + skillLower, "nice to have " + skillLower, "plus: " + skillLower,
		"desired " + skillLower, "advantage: " + skillLower, skillLower + " preferred",
		"experience with " + skillLower, "familiarity with " + skillLower,
	}

	for _, p := range highPatterns {
		if strings.Contains(text, p) {
			return types.ImportanceHigh
		}
	}
	for _, p := range mediumPatterns {
		if strings.Contains(text, p) {
			return types.ImportanceMedium
		}
	}
	return types.ImportanceLow
}

// analyzeSkillsWithPoints scores vocabulary skills the job asks for.
// Technical skills carry 15/10/5 base points by importance with mention
// frequency capped at 3; soft skills carry 10/7/4 capped at 2. Both
// inputs must already be lowercased.
func analyzeSkillsWithPoints(resumeText, jobDescription string) types.SkillsAnalysis {
	var matched []types.MatchedSkill
	var missing []types.MissingSkill

	for _, skill := range catalog.TechnicalSkillTerms {
		jobMentions := countMentions(jobDescription, skill)
		if jobMentions == 0 {
			continue
		}
		resumeMentions := countMentions(resumeText, skill)
		importance := skillImportance(skill, jobDescription)

		basePoints := 5
		switch importance {
		case types.ImportanceHigh:
			basePoints = 15
		case types.ImportanceMedium:
			basePoints = 10
		}
		freqMultiplier := jobMentions
		if freqMultiplier > 3 {
			freqMultiplier = 3
		}

		if resumeMentions > 0 {
			overlap := resumeMentions
			if jobMentions < overlap {
				overlap = jobMentions
			}
			matched = append(matched, types.MatchedSkill{
				Skill:      skill,
				Category:   types.SkillGroupTechnical,
				Importance: importance,
				Frequency:  resumeMentions,
				Points:     overlap * basePoints,
			})
		} else {
			missing = append(missing, types.MissingSkill{
				Skill:       skill,
				Category:    types.SkillGroupTechnical,
				Importance:  importance,
				Suggestions: technicalSkillSuggestions(skill),
				PointsLost:  basePoints * freqMultiplier,
			})
		}
	}

	for _, skill := range catalog.SoftSkillTerms {
		jobMentions := countMentions(jobDescription, skill)
		if jobMentions == 0 {
			continue
		}
		resumeMentions := countMentions(resumeText, skill)
		importance := skillImportance(skill, jobDescription)

		basePoints := 4
		switch importance {
		case types.ImportanceHigh:
			basePoints = 10
		case types.ImportanceMedium:
			basePoints = 7
		}
		freqMultiplier := jobMentions
		if freqMultiplier > 2 {
			freqMultiplier = 2
		}

		if resumeMentions > 0 {
			overlap := resumeMentions
			if jobMentions < overlap {
				overlap = jobMentions
			}
			matched = append(matched, types.MatchedSkill{
				Skill:      skill,
				Category:   types.SkillGroupSoft,
				Importance: importance,
				Frequency:  resumeMentions,
				Points:     overlap * basePoints,
			})
		} else {
			missing = append(missing, types.MissingSkill{
				Skill:       skill,
				Category:    types.SkillGroupSoft,
				Importance:  importance,
				Suggestions: softSkillSuggestions(skill),
				PointsLost:  basePoints * freqMultiplier,
			})
		}
	}

	if len(matched) > 20 {
		matched = matched[:20]
	}
	if len(missing) > 10 {
		missing = missing[:10]
	}

	return types.SkillsAnalysis{
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

func technicalSkillSuggestions(skill string) []string {
	if s, ok := catalog.TechnicalSkillSuggestions[skill]; ok {
		return s
	}
	return []string{
		fmt.Sprintf("Add %s to skills section", skill),
		fmt.Sprintf("Include %s in project descriptions", skill),
	}
}

func softSkillSuggestions(skill string) []string {
	if s, ok := catalog.SoftSkillSuggestions[skill]; ok {
		return s
	}
	return []string{
		fmt.Sprintf("Demonstrate %s with examples", skill),
		fmt.Sprintf("Quantify %s achievements", skill),
	}
}
