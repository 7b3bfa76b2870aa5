package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"resumelens/internal/types"
)

// AnalyzeMatch runs the full deterministic ATS analysis of a resume
// against a job description. The result never includes an external
// analysis; callers attach one separately when configured.
func AnalyzeMatch(resumeText, jobDescription string) types.ATSMatchResult {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)

	detailedKeywords := extractDetailedKeywords(resumeLower, jobLower)
	keywordMatches := analyzeKeywordFrequency(resumeLower, jobLower)
	skillsAnalysis := analyzeSkillsWithPoints(resumeLower, jobLower)
	titleAnalysis := analyzeTitleAlignment(resumeLower, jobLower)
	formatAnalysis := analyzeFormat(resumeText)
	experienceMatch := analyzeExperience(resumeLower, jobLower)
	educationMatch := analyzeEducation(resumeLower, jobLower)

	breakdown := types.ATSBreakdown{
		SkillMatch:     skillMatchPercentage(skillsAnalysis),
		KeywordMatch:   keywordMatches.MatchPercentage,
		TitleAlignment: titleAnalysis.AlignmentScore,
		FormatCheck:    formatAnalysis.OverallFormatScore,
	}

	overall := weightedOverallScore(breakdown, experienceMatch.Score, educationMatch.Score)

	return types.ATSMatchResult{
		OverallScore:     overall,
		Breakdown:        breakdown,
		KeywordMatches:   keywordMatches,
		SkillsAnalysis:   skillsAnalysis,
		TitleAnalysis:    titleAnalysis,
		FormatAnalysis:   formatAnalysis,
		ExperienceMatch:  experienceMatch,
		EducationMatch:   educationMatch,
		Recommendations:  detailedRecommendations(breakdown, skillsAnalysis, formatAnalysis),
		DetailedKeywords: detailedKeywords,
	}
}

// skillMatchPercentage converts the points-based skill analysis into a
// percentage. It works on the already truncated matched and missing
// lists, so points on entries cut by truncation do not count either way.
func skillMatchPercentage(sa types.SkillsAnalysis) int {
	var earned, lost int
	for _, s := range sa.MatchedSkills {
		earned += s.Points
	}
	for _, s := range sa.MissingSkills {
		lost += s.PointsLost
	}
	total := earned + lost
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(earned) / float64(total) * 100))
}

func weightedOverallScore(b types.ATSBreakdown, experienceScore, educationScore int) int {
	formatScore := 50
	switch b.FormatCheck {
	case types.FormatGood:
		formatScore = 90
	case types.FormatFair:
		formatScore = 70
	}

	return int(math.Round(
		float64(b.SkillMatch)*0.35 +
			float64(b.KeywordMatch)*0.25 +
			float64(b.TitleAlignment)*0.20 +
			float64(formatScore)*0.10 +
			float64(experienceScore)*0.07 +
			float64(educationScore)*0.03))
}

var (
	bulletPointsRe = regexp.MustCompile(`[•\-\*]`)
	phoneRe        = regexp.MustCompile(`\(\d{3}\)`)
	quantifiedRe   = regexp.MustCompile(`\d+%|\$\d+|\d+k|\d+\+`)
	yearsExpRe     = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
)

var standardSections = []string{"experience", "education", "skills", "work", "employment"}

// analyzeFormat runs heuristic structure checks against the original,
// unlowered resume text
func analyzeFormat(resumeText string) types.FormatAnalysis {
	hasBullets := bulletPointsRe.MatchString(resumeText)
	hasContact := strings.Contains(resumeText, "@") || phoneRe.MatchString(resumeText)
	hasQuantified := quantifiedRe.MatchString(resumeText)

	lower := strings.ToLower(resumeText)
	hasSections := false
	for _, section := range standardSections {
		if strings.Contains(lower, section) {
			hasSections = true
			break
		}
	}

	score := 0
	for _, ok := range []bool{hasBullets, hasContact, hasQuantified, hasSections} {
		if ok {
			score++
		}
	}

	rating := types.FormatPoor
	switch {
	case score >= 3:
		rating = types.FormatGood
	case score >= 2:
		rating = types.FormatFair
	}

	return types.FormatAnalysis{
		HasBulletPoints:      hasBullets,
		HasStandardSections:  hasSections,
		HasQuantifiedResults: hasQuantified,
		HasContactInfo:       hasContact,
		OverallFormatScore:   rating,
	}
}

func yearsOfExperience(text string) int {
	m := yearsExpRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, _ := strconv.Atoi(m[1])
	return years
}

func analyzeExperience(resumeText, jobDescription string) types.ScoreFeedback {
	required := yearsOfExperience(jobDescription)
	candidate := yearsOfExperience(resumeText)

	if required == 0 {
		return types.ScoreFeedback{Score: 80, Feedback: "Experience analysis completed"}
	}

	switch {
	case candidate >= required:
		return types.ScoreFeedback{
			Score:    100,
			Feedback: fmt.Sprintf("Meets experience requirement (%d+ vs %d+ required)", candidate, required),
		}
	case float64(candidate) >= float64(required)*0.8:
		return types.ScoreFeedback{
			Score:    75,
			Feedback: fmt.Sprintf("Close to requirement (%d+ vs %d+ required)", candidate, required),
		}
	default:
		return types.ScoreFeedback{
			Score:    50,
			Feedback: fmt.Sprintf("Below requirement (%d+ vs %d+ required)", candidate, required),
		}
	}
}

var degreeKeywords = []string{"bachelor", "master", "phd", "degree", "university"}

func analyzeEducation(resumeText, jobDescription string) types.ScoreFeedback {
	containsDegree := func(text string) bool {
		for _, kw := range degreeKeywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}

	resumeHas := containsDegree(resumeText)
	jobRequires := containsDegree(jobDescription)

	switch {
	case jobRequires && resumeHas:
		return types.ScoreFeedback{Score: 100, Feedback: "Education requirements met"}
	case jobRequires && !resumeHas:
		return types.ScoreFeedback{Score: 60, Feedback: "Consider highlighting relevant certifications"}
	default:
		return types.ScoreFeedback{Score: 80, Feedback: "Education requirements analysis"}
	}
}

func detailedRecommendations(b types.ATSBreakdown, sa types.SkillsAnalysis, fa types.FormatAnalysis) []string {
	var recs []string

	if b.SkillMatch < 70 {
		recs = append(recs, fmt.Sprintf("Improve skill match (%d%%): Add missing key skills to your resume", b.SkillMatch))
	}
	if b.KeywordMatch < 65 {
		recs = append(recs, fmt.Sprintf("Increase keyword density (%d%%): Include more job-specific terminology", b.KeywordMatch))
	}
	if b.TitleAlignment < 75 {
		recs = append(recs, fmt.Sprintf("Improve title alignment (%d%%): Adjust job titles to match target role", b.TitleAlignment))
	}
	if fa.OverallFormatScore != types.FormatGood {
		recs = append(recs, fmt.Sprintf("Improve resume format (%s): Add bullet points and quantified achievements", fa.OverallFormatScore))
	}

	if len(sa.MissingSkills) > 3 {
		var topMissing []string
		for _, skill := range sa.MissingSkills {
			if skill.Importance == types.ImportanceHigh {
				topMissing = append(topMissing, skill.Skill)
				if len(topMissing) == 3 {
					break
				}
			}
		}
		if len(topMissing) > 0 {
			recs = append(recs, "Priority skills to add: "+strings.Join(topMissing, ", "))
		}
	}

	recs = append(recs,
		"Use exact keywords from the job description",
		"Include quantified achievements with metrics")

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}
