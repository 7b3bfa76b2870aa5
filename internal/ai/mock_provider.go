package ai

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"resumelens/internal/types"
)

// MockProvider is a deterministic, offline AIProvider. It stands in when no
// API key is configured so every operation still returns a usable result.
type MockProvider struct{}

var _ AIProvider = (*MockProvider)(nil)

// NewMockProvider creates a deterministic mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var (
	mockBulletsRe    = regexp.MustCompile(`[•\-\*]`)
	mockQuantifiedRe = regexp.MustCompile(`\d+%|\$\d+|\d+k|\d+\+`)
	mockPhoneRe      = regexp.MustCompile(`\(\d{3}\)`)
	mockYearsRe      = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
	mockEducationRe  = regexp.MustCompile(`bachelor|master|degree|university|college`)
	mockRemoteRe     = regexp.MustCompile(`remote|distributed|virtual`)
)

// GenerateResumeTips builds guidance from keyword probes against the resume text
func (m *MockProvider) GenerateResumeTips(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *TokenUsage, error) {
	lower := strings.ToLower(resumeText)

	hasReact := strings.Contains(lower, "react")
	hasProjects := strings.Contains(lower, "project")
	hasLeadership := strings.Contains(lower, "lead") || strings.Contains(lower, "manage")
	hasPython := strings.Contains(lower, "python")
	hasSQL := strings.Contains(lower, "sql")
	hasAWS := strings.Contains(lower, "aws") || strings.Contains(lower, "cloud")
	wordCount := len(strings.Fields(resumeText))

	var b strings.Builder
	b.WriteString("**Job Title Suitability:** Based on your experience, you're well-positioned for ")

	var jobTitles []string
	if hasReact {
		jobTitles = append(jobTitles, "Frontend Developer", "React Developer")
	}
	if hasPython && hasSQL {
		jobTitles = append(jobTitles, "Data Analyst", "Backend Developer")
	}
	if hasAWS {
		jobTitles = append(jobTitles, "Cloud Engineer", "DevOps Engineer")
	}
	if hasLeadership {
		jobTitles = append(jobTitles, "Senior Developer", "Tech Lead")
	}
	if len(jobTitles) == 0 {
		jobTitles = append(jobTitles, "Software Developer", "Junior Developer")
	}
	b.WriteString(strings.Join(truncateStrings(jobTitles, 3), ", "))
	b.WriteString(" roles. ")

	b.WriteString("\n\n**Skills Gap Analysis:** To strengthen your candidacy, consider adding ")
	var missingSkills []string
	if !hasReact && !strings.Contains(lower, "vue") && !strings.Contains(lower, "angular") {
		missingSkills = append(missingSkills, "modern frontend frameworks (React/Vue/Angular)")
	}
	if !hasSQL {
		missingSkills = append(missingSkills, "SQL and database management")
	}
	if !hasAWS && !strings.Contains(lower, "docker") {
		missingSkills = append(missingSkills, "cloud platforms (AWS/Azure) and containerization")
	}
	if !strings.Contains(lower, "git") {
		missingSkills = append(missingSkills, "version control (Git)")
	}
	if len(missingSkills) > 0 {
		b.WriteString(strings.Join(truncateStrings(missingSkills, 2), " and "))
	} else {
		b.WriteString("more specific technical projects")
	}
	b.WriteString(". ")

	b.WriteString("\n\n**Actionable Improvements:** ")
	var improvements []string
	if wordCount < 200 {
		improvements = append(improvements, "Expand your experience descriptions with specific metrics and quantifiable achievements")
	}
	if !hasProjects {
		improvements = append(improvements, "Add a projects section showcasing 2-3 technical projects with GitHub links")
	}
	improvements = append(improvements, "Include specific technologies, tools, and programming languages you've used")
	if !strings.Contains(lower, "certif") {
		improvements = append(improvements, "Consider pursuing relevant certifications (AWS, Google Cloud, or technology-specific)")
	}
	b.WriteString(strings.Join(truncateStrings(improvements, 3), "; "))
	b.WriteString(". ")

	b.WriteString("\n\n**Overall Assessment:** You have a solid foundation for a tech career! ")
	if hasReact || hasPython || hasSQL {
		b.WriteString("Your technical skills show promise, and with some strategic additions, you'll be competitive for mid-level positions. ")
	}
	b.WriteString("Focus on showcasing real-world applications of your skills and you'll see great results in your job search.")

	return types.ResumeTipsOutput{Tips: b.String()}, nil, nil
}

// GenerateCareerCoachAnalysis derives structured guidance from keyword probes
func (m *MockProvider) GenerateCareerCoachAnalysis(ctx context.Context, resumeText string) (types.CareerCoachAnalysis, *TokenUsage, error) {
	lower := strings.ToLower(resumeText)

	hasReact := strings.Contains(lower, "react")
	hasPython := strings.Contains(lower, "python")
	hasSQL := strings.Contains(lower, "sql")
	hasAWS := strings.Contains(lower, "aws")
	hasLeadership := strings.Contains(lower, "lead") || strings.Contains(lower, "manage")
	hasProjects := strings.Contains(lower, "project")

	var suitableJobTitles []string
	if hasReact {
		suitableJobTitles = append(suitableJobTitles, "Frontend Developer", "React Developer")
	}
	if hasPython && hasSQL {
		suitableJobTitles = append(suitableJobTitles, "Full Stack Developer", "Backend Developer")
	}
	if hasPython && !hasSQL {
		suitableJobTitles = append(suitableJobTitles, "Python Developer", "Software Engineer")
	}
	if hasAWS {
		suitableJobTitles = append(suitableJobTitles, "Cloud Engineer", "DevOps Engineer")
	}
	if hasLeadership && (hasReact || hasPython) {
		suitableJobTitles = append(suitableJobTitles, "Senior Developer", "Tech Lead")
	}
	if len(suitableJobTitles) == 0 {
		suitableJobTitles = append(suitableJobTitles, "Junior Software Developer", "Software Engineer", "Web Developer")
	}

	titleSet := make(map[string]bool, len(suitableJobTitles))
	for _, title := range suitableJobTitles {
		titleSet[title] = true
	}

	var missingSkills []types.JobSkillGaps

	if titleSet["Frontend Developer"] || titleSet["React Developer"] {
		var missing, preferred []string
		if !strings.Contains(lower, "typescript") {
			missing = append(missing, "TypeScript")
		}
		if !strings.Contains(lower, "css") && !strings.Contains(lower, "sass") {
			missing = append(missing, "Advanced CSS/SASS")
		}
		if !strings.Contains(lower, "jest") && !strings.Contains(lower, "test") {
			preferred = append(preferred, "Jest/Testing")
		}
		if !strings.Contains(lower, "webpack") && !strings.Contains(lower, "vite") {
			preferred = append(preferred, "Build Tools (Webpack/Vite)")
		}
		missingSkills = append(missingSkills, types.JobSkillGaps{
			JobTitle:        "Frontend Developer",
			RequiredSkills:  truncateStrings(missing, 2),
			PreferredSkills: truncateStrings(preferred, 2),
		})
	}

	if titleSet["Full Stack Developer"] || titleSet["Backend Developer"] {
		var missing, preferred []string
		if !hasSQL {
			missing = append(missing, "SQL/Database Management")
		}
		if !strings.Contains(lower, "api") && !strings.Contains(lower, "rest") {
			missing = append(missing, "REST API Development")
		}
		if !strings.Contains(lower, "docker") {
			preferred = append(preferred, "Docker/Containerization")
		}
		if !hasAWS && !strings.Contains(lower, "cloud") {
			preferred = append(preferred, "Cloud Platforms (AWS/Azure)")
		}
		missingSkills = append(missingSkills, types.JobSkillGaps{
			JobTitle:        "Full Stack Developer",
			RequiredSkills:  truncateStrings(missing, 2),
			PreferredSkills: truncateStrings(preferred, 2),
		})
	}

	var improvements []string
	if !hasProjects {
		improvements = append(improvements, "Create a portfolio with 3-4 technical projects showcasing different skills")
	}
	if len(strings.Fields(resumeText)) < 200 {
		improvements = append(improvements, "Expand experience descriptions with specific metrics and quantifiable achievements")
	}
	if !strings.Contains(lower, "github") {
		improvements = append(improvements, "Include GitHub profile link and ensure repositories are well-documented")
	}
	if !strings.Contains(lower, "certif") {
		improvements = append(improvements, "Consider pursuing relevant certifications (AWS Cloud Practitioner, Google Cloud, etc.)")
	}
	improvements = append(improvements, "Use action verbs and quantify impact (e.g., 'Improved performance by 40%', 'Led team of 5 developers')")

	overallAssessment := "You have a solid technical foundation"
	switch {
	case hasReact && hasPython:
		overallAssessment += " with versatile full-stack capabilities. Your diverse skill set positions you well for senior developer roles with continued growth."
	case hasReact:
		overallAssessment += " with strong frontend expertise. You're well-positioned for React-focused roles and can grow into full-stack positions."
	case hasPython:
		overallAssessment += " with backend/data capabilities. Consider expanding into frontend technologies or specializing deeper in data engineering."
	default:
		overallAssessment += ". Focus on building projects with modern technologies to demonstrate practical application of your skills."
	}

	return types.CareerCoachAnalysis{
		SuitableJobTitles: truncateStrings(suitableJobTitles, 4),
		MissingSkills:     truncateGaps(missingSkills, 2),
		Improvements:      truncateStrings(improvements, 4),
		OverallAssessment: overallAssessment,
	}, nil, nil
}

// GenerateATSAnalysis simulates a weighted multi-dimension ATS score
func (m *MockProvider) GenerateATSAnalysis(ctx context.Context, resumeText, jobDescription string) (types.ExternalATSAnalysis, *TokenUsage, error) {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)

	bothContain := func(term string) bool {
		return strings.Contains(resumeLower, term) && strings.Contains(jobLower, term)
	}

	hasReact := bothContain("react")
	hasPython := bothContain("python")
	hasJavaScript := bothContain("javascript")
	hasTypeScript := bothContain("typescript")
	hasAWS := bothContain("aws")
	hasDocker := bothContain("docker")
	hasKubernetes := bothContain("kubernetes")
	hasExperience := strings.Contains(resumeLower, "experience") || strings.Contains(resumeLower, "year")
	hasBullets := mockBulletsRe.MatchString(resumeText)
	hasQuantifiedResults := mockQuantifiedRe.MatchString(resumeText)
	hasEducation := mockEducationRe.MatchString(resumeLower)
	hasRemoteExperience := mockRemoteRe.MatchString(resumeLower)

	keywordMatch := mockKeywordMatch(resumeLower, jobLower)

	skillOverlap := 40
	if hasReact {
		skillOverlap += 20
	}
	if hasPython {
		skillOverlap += 18
	}
	if hasJavaScript {
		skillOverlap += 15
	}
	if hasTypeScript {
		skillOverlap += 12
	}
	if hasAWS {
		skillOverlap += 15
	}
	if hasDocker {
		skillOverlap += 10
	}
	if hasKubernetes {
		skillOverlap += 12
	}
	if hasExperience {
		skillOverlap += 10
	}
	if hasRemoteExperience && strings.Contains(jobLower, "remote") {
		skillOverlap += 8
	}
	skillOverlap = capAt(skillOverlap, 100)

	roleTerms := []string{"developer", "engineer", "analyst", "manager", "specialist"}
	seniorityTerms := []string{"senior", "lead", "principal", "staff", "junior", "entry"}

	titleMatches := 0
	for _, term := range roleTerms {
		if bothContain(term) {
			titleMatches++
		}
	}
	seniorityMatches := 0
	for _, term := range seniorityTerms {
		if bothContain(term) {
			seniorityMatches++
		}
	}
	titleMatch := capAt(titleMatches*25+40, 90)
	if seniorityMatches > 0 {
		titleMatch += 10
	}
	titleMatch = capAt(titleMatch, 100)

	formatting := 60
	if hasBullets {
		formatting += 15
	}
	if hasQuantifiedResults {
		formatting += 15
	}
	if strings.Contains(resumeText, "@") || mockPhoneRe.MatchString(resumeText) {
		formatting += 10
	}
	for _, section := range []string{"experience", "education", "skills", "projects"} {
		if strings.Contains(resumeLower, section) {
			formatting += 2
		}
	}
	formatting = capAt(formatting, 100)

	educationRequired := strings.Contains(jobLower, "degree") ||
		strings.Contains(jobLower, "bachelor") ||
		strings.Contains(jobLower, "master")
	educationScore := 80
	if educationRequired && hasEducation {
		educationScore = 100
	} else if educationRequired && !hasEducation {
		educationScore = 40
	}

	requiredYears := 3
	if match := mockYearsRe.FindStringSubmatch(jobDescription); match != nil {
		requiredYears = parseIntDefault(match[1], requiredYears)
	}
	candidateYears := 2
	if match := mockYearsRe.FindStringSubmatch(resumeText); match != nil {
		candidateYears = parseIntDefault(match[1], candidateYears)
	}

	experienceLevel := 50
	switch {
	case candidateYears >= requiredYears:
		experienceLevel = 100
	case float64(candidateYears) >= float64(requiredYears)*0.8:
		experienceLevel = 85
	case float64(candidateYears) >= float64(requiredYears)*0.6:
		experienceLevel = 70
	}

	overallScore := int(math.Round(
		float64(skillOverlap)*0.28 +
			float64(keywordMatch)*0.25 +
			float64(titleMatch)*0.18 +
			float64(formatting)*0.12 +
			float64(experienceLevel)*0.12 +
			float64(educationScore)*0.05))

	var suggestions []string
	if keywordMatch < 65 {
		suggestions = append(suggestions, "Increase keyword density by incorporating more job-specific terminology")
	}
	if skillOverlap < 65 {
		suggestions = append(suggestions, "Add missing technical skills and highlight relevant experience")
	}
	if titleMatch < 70 {
		suggestions = append(suggestions, "Align job titles and role descriptions with target position")
	}
	if formatting < 75 {
		suggestions = append(suggestions, "Improve ATS compatibility with better formatting and standard sections")
	}
	if experienceLevel < 80 {
		suggestions = append(suggestions, "Emphasize relevant experience and quantify achievements")
	}
	if educationRequired && !hasEducation {
		suggestions = append(suggestions, "Highlight relevant certifications or equivalent experience")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Excellent match! Consider fine-tuning keywords for optimal ATS performance")
	}

	return types.ExternalATSAnalysis{
		OverallScore: overallScore,
		Breakdown: types.ExternalATSBreakdown{
			KeywordMatch:    keywordMatch,
			TitleMatch:      titleMatch,
			Formatting:      formatting,
			SkillOverlap:    skillOverlap,
			ExperienceLevel: experienceLevel,
			EducationMatch:  educationScore,
		},
		Suggestions: truncateStrings(suggestions, 4),
		Explanation: mockExplanation(overallScore),
	}, nil, nil
}

// GetModelInfo reports the static mock model
func (m *MockProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	return &ModelInfo{
		Name:        "mock",
		DisplayName: "Deterministic Mock",
		Available:   true,
	}
}

// Close is a no-op for the mock provider
func (m *MockProvider) Close() error {
	return nil
}

// mockStopWords are skipped when measuring keyword density
var mockStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "will": true,
	"you": true, "our": true, "this": true, "that": true, "have": true,
	"been": true, "from": true,
}

// mockKeywordMatch measures how densely job keywords appear in the resume.
// Both sides keep duplicates so frequency pulls the ratio up or down.
func mockKeywordMatch(resumeLower, jobLower string) int {
	var meaningful []string
	meaningfulSet := make(map[string]bool)
	for _, word := range strings.Fields(jobLower) {
		if len(word) > 3 && !mockStopWords[word] {
			meaningful = append(meaningful, word)
			meaningfulSet[word] = true
		}
	}
	if len(meaningful) == 0 {
		return 0
	}

	common := 0
	for _, word := range strings.Fields(resumeLower) {
		if meaningfulSet[word] {
			common++
		}
	}

	density := float64(common) / float64(len(meaningful))
	return capAt(int(math.Round(density*120)), 100)
}

// mockExplanation renders the fixed explanation template for a score
func mockExplanation(overallScore int) string {
	tier := "Significant ATS optimization needed to improve screening success rate."
	switch {
	case overallScore >= 85:
		tier = "Excellent ATS compatibility with high pass-through probability."
	case overallScore >= 70:
		tier = "Good ATS score with optimization opportunities for better ranking."
	case overallScore >= 50:
		tier = "Moderate ATS compatibility requiring focused improvements."
	}

	strength := "limited"
	switch {
	case overallScore >= 75:
		strength = "strong"
	case overallScore >= 60:
		strength = "moderate"
	}

	return "This enhanced analysis simulates modern ATS processing using weighted scoring across multiple dimensions. " +
		tier + " Current market analysis suggests " + strength + " competitiveness for similar roles."
}

func truncateStrings(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncateGaps(items []types.JobSkillGaps, max int) []types.JobSkillGaps {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func capAt(value, max int) int {
	if value > max {
		return max
	}
	return value
}

func parseIntDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
