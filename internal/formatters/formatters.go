package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ExtractedSkills", &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", "ExtractedSkills", &SkillsMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobSuggestionResult", &SuggestionsTextFormatter{})
	registry.RegisterFormatter("markdown", "JobSuggestionResult", &SuggestionsMarkdownFormatter{})
	registry.RegisterFormatter("text", "TargetJobComparison", &ComparisonTextFormatter{})
	registry.RegisterFormatter("markdown", "TargetJobComparison", &ComparisonMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSMatchResult", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSMatchResult", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "CareerCoachAnalysis", &CoachTextFormatter{})
	registry.RegisterFormatter("markdown", "CareerCoachAnalysis", &CoachMarkdownFormatter{})
	registry.RegisterFormatter("text", "ResumeTipsOutput", &TipsTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeTipsOutput", &TipsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ExtractedSkills:
		return "ExtractedSkills"
	case types.JobSuggestionResult:
		return "JobSuggestionResult"
	case types.TargetJobComparison:
		return "TargetJobComparison"
	case types.ATSMatchResult:
		return "ATSMatchResult"
	case types.CareerCoachAnalysis:
		return "CareerCoachAnalysis"
	case types.ResumeTipsOutput:
		return "ResumeTipsOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeSkillList(output *strings.Builder, skills []types.SkillMatch) {
	for _, skill := range skills {
		output.WriteString(fmt.Sprintf("- %s (%s) confidence %d, mentions %d\n",
			skill.Name, skill.Category, skill.Confidence, skill.Mentions))
	}
}

// SkillsTextFormatter handles text formatting for skill extraction results
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractedSkills)
	if !ok {
		return "", fmt.Errorf("expected ExtractedSkills, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SKILL PROFILE ===\n\n")
	output.WriteString(fmt.Sprintf("Total skills detected: %d\n\n", result.TotalSkills))

	output.WriteString(fmt.Sprintf("Hard skills (%d):\n", len(result.HardSkills)))
	writeSkillList(&output, result.HardSkills)
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Soft skills (%d):\n", len(result.SoftSkills)))
	writeSkillList(&output, result.SoftSkills)

	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return "ExtractedSkills"
}

// SkillsMarkdownFormatter handles markdown formatting for skill extraction results
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ExtractedSkills)
	if !ok {
		return "", fmt.Errorf("expected ExtractedSkills, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Skill Profile\n\n")
	output.WriteString(fmt.Sprintf("**Total skills detected:** %d\n\n", result.TotalSkills))

	output.WriteString(fmt.Sprintf("## Hard Skills (%d)\n\n", len(result.HardSkills)))
	for _, skill := range result.HardSkills {
		output.WriteString(fmt.Sprintf("- **%s** (%s): confidence %d, mentions %d\n",
			skill.Name, skill.Category, skill.Confidence, skill.Mentions))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("## Soft Skills (%d)\n\n", len(result.SoftSkills)))
	for _, skill := range result.SoftSkills {
		output.WriteString(fmt.Sprintf("- **%s** (%s): confidence %d, mentions %d\n",
			skill.Name, skill.Category, skill.Confidence, skill.Mentions))
	}

	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return "ExtractedSkills"
}

// SuggestionsTextFormatter handles text formatting for job role suggestions
type SuggestionsTextFormatter struct{}

func (stf *SuggestionsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobSuggestionResult)
	if !ok {
		return "", fmt.Errorf("expected JobSuggestionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB ROLE SUGGESTIONS ===\n\n")
	output.WriteString("Profile: ")
	output.WriteString(result.OverallProfile)
	output.WriteString("\n")
	if len(result.TopSkillCategories) > 0 {
		output.WriteString(fmt.Sprintf("Top skill categories: %s\n", strings.Join(result.TopSkillCategories, ", ")))
	}
	output.WriteString("\n")

	for i, role := range result.SuggestedRoles {
		output.WriteString(fmt.Sprintf("%d. %s (%d%% match)\n", i+1, role.Title, role.Match))
		output.WriteString(fmt.Sprintf("   %s - %s\n", role.Company, role.Location))
		output.WriteString(fmt.Sprintf("   Salary: %s\n", role.Salary))
		output.WriteString(fmt.Sprintf("   Level: %s | Demand: %s | Remote: %t\n",
			role.ExperienceLevel, role.DemandLevel, role.RemoteAvailable))
		if len(role.Requirements) > 0 {
			output.WriteString(fmt.Sprintf("   Requirements: %s\n", strings.Join(role.Requirements, ", ")))
		}
		if len(role.Missing) > 0 {
			output.WriteString(fmt.Sprintf("   Missing: %s\n", strings.Join(role.Missing, ", ")))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== MARKET INSIGHTS ===\n")
	if len(result.MarketInsights.HighDemandSkills) > 0 {
		output.WriteString(fmt.Sprintf("High demand skills: %s\n", strings.Join(result.MarketInsights.HighDemandSkills, ", ")))
	}
	if len(result.MarketInsights.EmergingTrends) > 0 {
		output.WriteString(fmt.Sprintf("Emerging trends: %s\n", strings.Join(result.MarketInsights.EmergingTrends, ", ")))
	}
	output.WriteString("Salary trends: ")
	output.WriteString(result.MarketInsights.SalaryTrends)
	output.WriteString("\n")
	output.WriteString(fmt.Sprintf("Remote opportunities: %d%%\n", result.MarketInsights.RemoteOpportunities))

	return output.String(), nil
}

func (stf *SuggestionsTextFormatter) SupportedType() string {
	return "JobSuggestionResult"
}

// SuggestionsMarkdownFormatter handles markdown formatting for job role suggestions
type SuggestionsMarkdownFormatter struct{}

func (smf *SuggestionsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobSuggestionResult)
	if !ok {
		return "", fmt.Errorf("expected JobSuggestionResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Role Suggestions\n\n")
	output.WriteString("**Profile:** ")
	output.WriteString(result.OverallProfile)
	output.WriteString("\n\n")
	if len(result.TopSkillCategories) > 0 {
		output.WriteString(fmt.Sprintf("**Top skill categories:** %s\n\n", strings.Join(result.TopSkillCategories, ", ")))
	}

	for i, role := range result.SuggestedRoles {
		output.WriteString(fmt.Sprintf("## %d. %s (%d%% match)\n\n", i+1, role.Title, role.Match))
		output.WriteString(fmt.Sprintf("%s - %s\n\n", role.Company, role.Location))
		output.WriteString(fmt.Sprintf("**Salary:** %s\n\n", role.Salary))
		output.WriteString(fmt.Sprintf("**Level:** %s | **Demand:** %s | **Remote:** %t\n\n",
			role.ExperienceLevel, role.DemandLevel, role.RemoteAvailable))
		if len(role.Requirements) > 0 {
			output.WriteString("### Requirements\n")
			for _, req := range role.Requirements {
				output.WriteString(fmt.Sprintf("- %s\n", req))
			}
			output.WriteString("\n")
		}
		if len(role.Missing) > 0 {
			output.WriteString("### Missing Skills\n")
			for _, missing := range role.Missing {
				output.WriteString(fmt.Sprintf("- %s\n", missing))
			}
			output.WriteString("\n")
		}
	}

	output.WriteString("## Market Insights\n\n")
	if len(result.MarketInsights.HighDemandSkills) > 0 {
		output.WriteString(fmt.Sprintf("**High demand skills:** %s\n\n", strings.Join(result.MarketInsights.HighDemandSkills, ", ")))
	}
	if len(result.MarketInsights.EmergingTrends) > 0 {
		output.WriteString(fmt.Sprintf("**Emerging trends:** %s\n\n", strings.Join(result.MarketInsights.EmergingTrends, ", ")))
	}
	output.WriteString("**Salary trends:** ")
	output.WriteString(result.MarketInsights.SalaryTrends)
	output.WriteString("\n\n")
	output.WriteString(fmt.Sprintf("**Remote opportunities:** %d%%\n", result.MarketInsights.RemoteOpportunities))

	return output.String(), nil
}

func (smf *SuggestionsMarkdownFormatter) SupportedType() string {
	return "JobSuggestionResult"
}

// ComparisonTextFormatter handles text formatting for target job comparisons
type ComparisonTextFormatter struct{}

func (ctf *ComparisonTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TargetJobComparison)
	if !ok {
		return "", fmt.Errorf("expected TargetJobComparison, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== TARGET JOB COMPARISON ===\n\n")
	output.WriteString(fmt.Sprintf("Job: %s\n", result.JobTitle))
	output.WriteString(fmt.Sprintf("Match: %d%%\n", result.MatchPercentage))
	output.WriteString(fmt.Sprintf("Experience level: %s\n", result.ExperienceLevel))
	output.WriteString(fmt.Sprintf("Salary range: %s\n\n", result.SalaryRange))
	output.WriteString(result.Description)
	output.WriteString("\n\n")

	if len(result.MatchingSkills) > 0 {
		output.WriteString("Matching skills:\n")
		for _, skill := range result.MatchingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingRequiredSkills) > 0 {
		output.WriteString("Missing required skills:\n")
		for _, skill := range result.MissingRequiredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingPreferredSkills) > 0 {
		output.WriteString("Missing preferred skills:\n")
		for _, skill := range result.MissingPreferredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== SKILLS CHECKLIST ===\n")
	for _, item := range result.SkillsChecklist {
		marker := "[ ]"
		if item.HasSkill {
			marker = "[x]"
		}
		output.WriteString(fmt.Sprintf("%s %s (%s, %s importance)\n",
			marker, item.Skill, item.Category, item.Importance))
		if !item.HasSkill {
			output.WriteString(fmt.Sprintf("    Learning time: %s\n", item.LearningTime))
			if len(item.Resources) > 0 {
				output.WriteString(fmt.Sprintf("    Resources: %s\n", strings.Join(item.Resources, ", ")))
			}
		}
	}

	return output.String(), nil
}

func (ctf *ComparisonTextFormatter) SupportedType() string {
	return "TargetJobComparison"
}

// ComparisonMarkdownFormatter handles markdown formatting for target job comparisons
type ComparisonMarkdownFormatter struct{}

func (cmf *ComparisonMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TargetJobComparison)
	if !ok {
		return "", fmt.Errorf("expected TargetJobComparison, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Target Job Comparison: %s\n\n", result.JobTitle))
	output.WriteString(fmt.Sprintf("**Match:** %d%%\n\n", result.MatchPercentage))
	output.WriteString(fmt.Sprintf("**Experience level:** %s\n\n", result.ExperienceLevel))
	output.WriteString(fmt.Sprintf("**Salary range:** %s\n\n", result.SalaryRange))
	output.WriteString(result.Description)
	output.WriteString("\n\n")

	if len(result.MatchingSkills) > 0 {
		output.WriteString("## Matching Skills\n\n")
		for _, skill := range result.MatchingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingRequiredSkills) > 0 {
		output.WriteString("## Missing Required Skills\n\n")
		for _, skill := range result.MissingRequiredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.MissingPreferredSkills) > 0 {
		output.WriteString("## Missing Preferred Skills\n\n")
		for _, skill := range result.MissingPreferredSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Skills Checklist\n\n")
	for _, item := range result.SkillsChecklist {
		marker := "[ ]"
		if item.HasSkill {
			marker = "[x]"
		}
		output.WriteString(fmt.Sprintf("- %s **%s** (%s, %s importance)\n",
			marker, item.Skill, item.Category, item.Importance))
		if !item.HasSkill {
			output.WriteString(fmt.Sprintf("  - Learning time: %s\n", item.LearningTime))
			if len(item.Resources) > 0 {
				output.WriteString(fmt.Sprintf("  - Resources: %s\n", strings.Join(item.Resources, ", ")))
			}
		}
	}

	return output.String(), nil
}

func (cmf *ComparisonMarkdownFormatter) SupportedType() string {
	return "TargetJobComparison"
}

// MatchTextFormatter handles text formatting for ATS match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSMatchResult)
	if !ok {
		return "", fmt.Errorf("expected ATSMatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS MATCH REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall score: %d/100\n\n", result.OverallScore))

	output.WriteString("Breakdown:\n")
	output.WriteString(fmt.Sprintf("  Skill match:     %d/100\n", result.Breakdown.SkillMatch))
	output.WriteString(fmt.Sprintf("  Keyword match:   %d/100\n", result.Breakdown.KeywordMatch))
	output.WriteString(fmt.Sprintf("  Title alignment: %d/100\n", result.Breakdown.TitleAlignment))
	output.WriteString(fmt.Sprintf("  Format check:    %s\n\n", result.Breakdown.FormatCheck))

	output.WriteString("=== KEYWORDS ===\n")
	output.WriteString(fmt.Sprintf("Matched %d of %d keywords (%d%%)\n",
		len(result.KeywordMatches.Matched), result.KeywordMatches.Total, result.KeywordMatches.MatchPercentage))
	if len(result.KeywordMatches.Missing) > 0 {
		output.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(result.KeywordMatches.Missing, ", ")))
	}
	output.WriteString("\n")

	if len(result.SkillsAnalysis.MatchedSkills) > 0 {
		output.WriteString("=== MATCHED SKILLS ===\n")
		for _, skill := range result.SkillsAnalysis.MatchedSkills {
			output.WriteString(fmt.Sprintf("- %s (%s, %s importance): %d points\n",
				skill.Skill, skill.Category, skill.Importance, skill.Points))
		}
		output.WriteString("\n")
	}

	if len(result.SkillsAnalysis.MissingSkills) > 0 {
		output.WriteString("=== MISSING SKILLS ===\n")
		for _, skill := range result.SkillsAnalysis.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s (%s, %s importance): %d points lost\n",
				skill.Skill, skill.Category, skill.Importance, skill.PointsLost))
			for _, suggestion := range skill.Suggestions {
				output.WriteString(fmt.Sprintf("    %s\n", suggestion))
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("=== TITLE ALIGNMENT ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.TitleAnalysis.AlignmentScore))
	if len(result.TitleAnalysis.MatchingTitles) > 0 {
		output.WriteString(fmt.Sprintf("Matching titles: %s\n", strings.Join(result.TitleAnalysis.MatchingTitles, ", ")))
	}
	output.WriteString("\n")

	output.WriteString("=== FORMAT CHECKS ===\n")
	output.WriteString(fmt.Sprintf("Bullet points: %t\n", result.FormatAnalysis.HasBulletPoints))
	output.WriteString(fmt.Sprintf("Standard sections: %t\n", result.FormatAnalysis.HasStandardSections))
	output.WriteString(fmt.Sprintf("Quantified results: %t\n", result.FormatAnalysis.HasQuantifiedResults))
	output.WriteString(fmt.Sprintf("Contact info: %t\n", result.FormatAnalysis.HasContactInfo))
	output.WriteString(fmt.Sprintf("Overall: %s\n\n", result.FormatAnalysis.OverallFormatScore))

	output.WriteString(fmt.Sprintf("Experience match: %d/100 - %s\n", result.ExperienceMatch.Score, result.ExperienceMatch.Feedback))
	output.WriteString(fmt.Sprintf("Education match: %d/100 - %s\n\n", result.EducationMatch.Score, result.EducationMatch.Feedback))

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
		output.WriteString("\n")
	}

	if result.ExternalAnalysis != nil {
		output.WriteString("=== EXTERNAL ANALYSIS ===\n")
		if result.ExternalAnalysis.Error != "" {
			output.WriteString(fmt.Sprintf("Unavailable: %s\n", result.ExternalAnalysis.Error))
		} else {
			output.WriteString(fmt.Sprintf("Overall score: %d/100 (confidence %d%%)\n",
				result.ExternalAnalysis.Analysis.OverallScore, result.ExternalAnalysis.Confidence))
			output.WriteString(fmt.Sprintf("AI generated: %t\n", result.ExternalAnalysis.IsAIGenerated))
			if result.ExternalAnalysis.Analysis.Explanation != "" {
				output.WriteString(result.ExternalAnalysis.Analysis.Explanation)
				output.WriteString("\n")
			}
			for _, suggestion := range result.ExternalAnalysis.Analysis.Suggestions {
				output.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "ATSMatchResult"
}

// MatchMarkdownFormatter handles markdown formatting for ATS match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSMatchResult)
	if !ok {
		return "", fmt.Errorf("expected ATSMatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Match Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall score:** %d/100\n\n", result.OverallScore))

	output.WriteString("## Breakdown\n\n")
	output.WriteString(fmt.Sprintf("- **Skill match:** %d/100\n", result.Breakdown.SkillMatch))
	output.WriteString(fmt.Sprintf("- **Keyword match:** %d/100\n", result.Breakdown.KeywordMatch))
	output.WriteString(fmt.Sprintf("- **Title alignment:** %d/100\n", result.Breakdown.TitleAlignment))
	output.WriteString(fmt.Sprintf("- **Format check:** %s\n\n", result.Breakdown.FormatCheck))

	output.WriteString("## Keywords\n\n")
	output.WriteString(fmt.Sprintf("Matched %d of %d keywords (%d%%)\n\n",
		len(result.KeywordMatches.Matched), result.KeywordMatches.Total, result.KeywordMatches.MatchPercentage))
	if len(result.KeywordMatches.Missing) > 0 {
		output.WriteString(fmt.Sprintf("**Missing:** %s\n\n", strings.Join(result.KeywordMatches.Missing, ", ")))
	}

	if len(result.SkillsAnalysis.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n\n")
		for _, skill := range result.SkillsAnalysis.MatchedSkills {
			output.WriteString(fmt.Sprintf("- **%s** (%s, %s importance): %d points\n",
				skill.Skill, skill.Category, skill.Importance, skill.Points))
		}
		output.WriteString("\n")
	}

	if len(result.SkillsAnalysis.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.SkillsAnalysis.MissingSkills {
			output.WriteString(fmt.Sprintf("- **%s** (%s, %s importance): %d points lost\n",
				skill.Skill, skill.Category, skill.Importance, skill.PointsLost))
			for _, suggestion := range skill.Suggestions {
				output.WriteString(fmt.Sprintf("  - %s\n", suggestion))
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("## Title Alignment\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.TitleAnalysis.AlignmentScore))
	if len(result.TitleAnalysis.MatchingTitles) > 0 {
		output.WriteString(fmt.Sprintf("**Matching titles:** %s\n\n", strings.Join(result.TitleAnalysis.MatchingTitles, ", ")))
	}

	output.WriteString("## Format Checks\n\n")
	output.WriteString(fmt.Sprintf("- Bullet points: %t\n", result.FormatAnalysis.HasBulletPoints))
	output.WriteString(fmt.Sprintf("- Standard sections: %t\n", result.FormatAnalysis.HasStandardSections))
	output.WriteString(fmt.Sprintf("- Quantified results: %t\n", result.FormatAnalysis.HasQuantifiedResults))
	output.WriteString(fmt.Sprintf("- Contact info: %t\n", result.FormatAnalysis.HasContactInfo))
	output.WriteString(fmt.Sprintf("- **Overall:** %s\n\n", result.FormatAnalysis.OverallFormatScore))

	output.WriteString(fmt.Sprintf("**Experience match:** %d/100 - %s\n\n", result.ExperienceMatch.Score, result.ExperienceMatch.Feedback))
	output.WriteString(fmt.Sprintf("**Education match:** %d/100 - %s\n\n", result.EducationMatch.Score, result.EducationMatch.Feedback))

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
		output.WriteString("\n")
	}

	if result.ExternalAnalysis != nil {
		output.WriteString("## External Analysis\n\n")
		if result.ExternalAnalysis.Error != "" {
			output.WriteString(fmt.Sprintf("Unavailable: %s\n", result.ExternalAnalysis.Error))
		} else {
			output.WriteString(fmt.Sprintf("**Overall score:** %d/100 (confidence %d%%)\n\n",
				result.ExternalAnalysis.Analysis.OverallScore, result.ExternalAnalysis.Confidence))
			output.WriteString(fmt.Sprintf("**AI generated:** %t\n\n", result.ExternalAnalysis.IsAIGenerated))
			if result.ExternalAnalysis.Analysis.Explanation != "" {
				output.WriteString(result.ExternalAnalysis.Analysis.Explanation)
				output.WriteString("\n\n")
			}
			for _, suggestion := range result.ExternalAnalysis.Analysis.Suggestions {
				output.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "ATSMatchResult"
}

// CoachTextFormatter handles text formatting for career coach results
type CoachTextFormatter struct{}

func (ctf *CoachTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CareerCoachAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CareerCoachAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CAREER COACH ANALYSIS ===\n\n")
	output.WriteString("Overall assessment:\n")
	output.WriteString(result.OverallAssessment)
	output.WriteString("\n\n")

	if len(result.SuitableJobTitles) > 0 {
		output.WriteString("Suitable job titles:\n")
		for _, title := range result.SuitableJobTitles {
			output.WriteString(fmt.Sprintf("- %s\n", title))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("=== SKILL GAPS ===\n\n")
		for _, gaps := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("%s:\n", gaps.JobTitle))
			if len(gaps.RequiredSkills) > 0 {
				output.WriteString(fmt.Sprintf("  Required: %s\n", strings.Join(gaps.RequiredSkills, ", ")))
			}
			if len(gaps.PreferredSkills) > 0 {
				output.WriteString(fmt.Sprintf("  Preferred: %s\n", strings.Join(gaps.PreferredSkills, ", ")))
			}
			output.WriteString("\n")
		}
	}

	if len(result.Improvements) > 0 {
		output.WriteString("=== IMPROVEMENTS ===\n")
		for i, improvement := range result.Improvements {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, improvement))
		}
	}

	return output.String(), nil
}

func (ctf *CoachTextFormatter) SupportedType() string {
	return "CareerCoachAnalysis"
}

// CoachMarkdownFormatter handles markdown formatting for career coach results
type CoachMarkdownFormatter struct{}

func (cmf *CoachMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CareerCoachAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CareerCoachAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Career Coach Analysis\n\n")
	output.WriteString("## Overall Assessment\n\n")
	output.WriteString(result.OverallAssessment)
	output.WriteString("\n\n")

	if len(result.SuitableJobTitles) > 0 {
		output.WriteString("## Suitable Job Titles\n\n")
		for _, title := range result.SuitableJobTitles {
			output.WriteString(fmt.Sprintf("- %s\n", title))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Skill Gaps\n\n")
		for _, gaps := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("### %s\n\n", gaps.JobTitle))
			if len(gaps.RequiredSkills) > 0 {
				output.WriteString(fmt.Sprintf("**Required:** %s\n\n", strings.Join(gaps.RequiredSkills, ", ")))
			}
			if len(gaps.PreferredSkills) > 0 {
				output.WriteString(fmt.Sprintf("**Preferred:** %s\n\n", strings.Join(gaps.PreferredSkills, ", ")))
			}
		}
	}

	if len(result.Improvements) > 0 {
		output.WriteString("## Improvements\n\n")
		for i, improvement := range result.Improvements {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, improvement))
		}
	}

	return output.String(), nil
}

func (cmf *CoachMarkdownFormatter) SupportedType() string {
	return "CareerCoachAnalysis"
}

// TipsTextFormatter handles text formatting for resume tips
type TipsTextFormatter struct{}

func (ttf *TipsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeTipsOutput)
	if !ok {
		return "", fmt.Errorf("expected ResumeTipsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME TIPS ===\n\n")
	output.WriteString(result.Tips)
	output.WriteString("\n")

	return output.String(), nil
}

func (ttf *TipsTextFormatter) SupportedType() string {
	return "ResumeTipsOutput"
}

// TipsMarkdownFormatter handles markdown formatting for resume tips
type TipsMarkdownFormatter struct{}

func (tmf *TipsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeTipsOutput)
	if !ok {
		return "", fmt.Errorf("expected ResumeTipsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Tips\n\n")
	output.WriteString(result.Tips)
	output.WriteString("\n")

	return output.String(), nil
}

func (tmf *TipsMarkdownFormatter) SupportedType() string {
	return "ResumeTipsOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
