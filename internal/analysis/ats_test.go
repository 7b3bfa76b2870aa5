package analysis

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

const sampleResume = `John Doe
john@example.com | (555) 123-4567

Experience
• Senior React Developer with 5 years of experience
• Built JavaScript applications, improved performance by 40%
• Led unit testing adoption with Jest

Education
Bachelor of Science, Computer Science

Skills
React, JavaScript, TypeScript, Node.js, Git, communication`

const sampleJob = `We are hiring a Frontend Developer.
Required: React and strong JavaScript fundamentals.
Must have 3+ years of experience. Bachelor degree required.
Experience with TypeScript preferred. Knowledge of unit testing is a plus.
Strong communication skills essential.`

func TestAnalyzeMatch(t *testing.T) {
	result := AnalyzeMatch(sampleResume, sampleJob)

	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("overall score %d out of range", result.OverallScore)
	}
	for name, score := range map[string]int{
		"skillMatch":     result.Breakdown.SkillMatch,
		"keywordMatch":   result.Breakdown.KeywordMatch,
		"titleAlignment": result.Breakdown.TitleAlignment,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score %d out of range", name, score)
		}
	}

	if result.ExternalAnalysis != nil {
		t.Error("deterministic analysis should not carry an external result")
	}

	var matchedNames []string
	for _, s := range result.SkillsAnalysis.MatchedSkills {
		matchedNames = append(matchedNames, s.Skill)
	}
	for _, want := range []string{"react", "javascript", "typescript", "communication"} {
		found := false
		for _, got := range matchedNames {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s among matched skills, got %v", want, matchedNames)
		}
	}

	if len(result.SkillsAnalysis.MatchedSkills) > 20 {
		t.Errorf("matched skills not truncated: %d", len(result.SkillsAnalysis.MatchedSkills))
	}
	if len(result.SkillsAnalysis.MissingSkills) > 10 {
		t.Errorf("missing skills not truncated: %d", len(result.SkillsAnalysis.MissingSkills))
	}

	if len(result.Recommendations) == 0 || len(result.Recommendations) > 6 {
		t.Errorf("expected 1-6 recommendations, got %d", len(result.Recommendations))
	}

	// 5 years on the resume vs 3+ required
	if result.ExperienceMatch.Score != 100 {
		t.Errorf("expected experience score 100, got %d (%s)",
			result.ExperienceMatch.Score, result.ExperienceMatch.Feedback)
	}
	if result.EducationMatch.Score != 100 {
		t.Errorf("expected education score 100, got %d", result.EducationMatch.Score)
	}
	if result.FormatAnalysis.OverallFormatScore != types.FormatGood {
		t.Errorf("expected Good format, got %s", result.FormatAnalysis.OverallFormatScore)
	}
}

func TestAnalyzeMatchNoOverlap(t *testing.T) {
	result := AnalyzeMatch(
		"A short note about gardening and cooking.",
		"Required: react developer with python and aws experience.")

	if result.Breakdown.SkillMatch != 0 {
		t.Errorf("expected 0 skill match, got %d", result.Breakdown.SkillMatch)
	}
	if len(result.SkillsAnalysis.MatchedSkills) != 0 {
		t.Errorf("expected no matched skills, got %v", result.SkillsAnalysis.MatchedSkills)
	}
}

func TestSkillImportance(t *testing.T) {
	tests := []struct {
		name string
		job  string
		want types.Importance
	}{
		{name: "required prefix", job: "Required: react experience for this role", want: types.ImportanceHigh},
		{name: "required suffix", job: "Candidates with react required", want: types.ImportanceHigh},
		{name: "experience with", job: "Experience with react is valued", want: types.ImportanceMedium},
		{name: "plain mention", job: "Our stack includes react", want: types.ImportanceLow},
		// "react is required" does not match any literal pattern, so the
		// skill stays low even though the phrasing clearly demands it.
		{name: "phrasing outside patterns", job: "react is required for this role", want: types.ImportanceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skillImportance("react", tt.job); got != tt.want {
				t.Errorf("skillImportance(react, %q) = %s, want %s", tt.job, got, tt.want)
			}
		})
	}
}

func TestAnalyzeKeywordFrequency(t *testing.T) {
	// "python" appears three times in the job (6 points capped) and once
	// in the resume (2 points earned): 33%.
	result := analyzeKeywordFrequency("python", "python python python")

	if result.Total != 1 {
		t.Errorf("expected 1 distinct keyword, got %d", result.Total)
	}
	if result.MatchPercentage != 33 {
		t.Errorf("expected 33%% match, got %d", result.MatchPercentage)
	}
	if len(result.Matched) != 1 || result.Matched[0] != "python" {
		t.Errorf("unexpected matched list %v", result.Matched)
	}
	if len(result.Missing) != 0 {
		t.Errorf("unexpected missing list %v", result.Missing)
	}
}

func TestAnalyzeKeywordFrequencyEmptyJob(t *testing.T) {
	result := analyzeKeywordFrequency("some resume text", "")
	if result.MatchPercentage != 0 {
		t.Errorf("expected 0%% for empty job description, got %d", result.MatchPercentage)
	}
	if result.Total != 0 {
		t.Errorf("expected 0 keywords, got %d", result.Total)
	}
}

func TestAnalyzeTitleAlignment(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
		want   int
	}{
		{
			name:   "no titles in job description",
			resume: "worked as frontend developer",
			job:    "we need somebody good with computers",
			want:   75,
		},
		{
			name:   "direct match",
			resume: "senior frontend developer at acme",
			job:    "hiring a frontend developer",
			want:   100,
		},
		{
			name:   "related title only",
			resume: "worked as react developer",
			job:    "looking for a frontend developer",
			want:   70,
		},
		{
			name:   "no match at all",
			resume: "professional chef",
			job:    "hiring a data scientist",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeTitleAlignment(tt.resume, tt.job)
			if result.AlignmentScore != tt.want {
				t.Errorf("expected alignment %d, got %d", tt.want, result.AlignmentScore)
			}
		})
	}
}

func TestAnalyzeFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.FormatRating
	}{
		{
			name: "all signals present",
			text: "• Led team\njohn@example.com\nImproved by 30%\nExperience section",
			want: types.FormatGood,
		},
		{
			name: "two signals",
			text: "plain text with experience section and email me at a@b.c",
			want: types.FormatFair,
		},
		{
			name: "bare text",
			text: "nothing structured here",
			want: types.FormatPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeFormat(tt.text)
			if result.OverallFormatScore != tt.want {
				t.Errorf("expected %s, got %s", tt.want, result.OverallFormatScore)
			}
		})
	}
}

func TestAnalyzeExperience(t *testing.T) {
	tests := []struct {
		name      string
		resume    string
		job       string
		wantScore int
	}{
		{name: "no requirement", resume: "resume text", job: "job text", wantScore: 80},
		{name: "meets requirement", resume: "5 years of experience", job: "3+ years experience", wantScore: 100},
		{name: "close to requirement", resume: "4 years experience", job: "5+ years of experience", wantScore: 75},
		{name: "below requirement", resume: "1 year of experience", job: "5+ years experience", wantScore: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeExperience(strings.ToLower(tt.resume), strings.ToLower(tt.job))
			if result.Score != tt.wantScore {
				t.Errorf("expected score %d, got %d (%s)", tt.wantScore, result.Score, result.Feedback)
			}
		})
	}
}

func TestExtractDetailedKeywords(t *testing.T) {
	result := extractDetailedKeywords(
		"developed applications using react and unit testing",
		"we need someone who developed and deployed applications with react, graphql and unit testing")

	verbsMatched := strings.Join(result.Verbs.Matched, " ")
	if !strings.Contains(verbsMatched, "developed") {
		t.Errorf("expected developed among matched verbs, got %v", result.Verbs.Matched)
	}
	if !strings.Contains(strings.Join(result.Verbs.Missing, " "), "deployed") {
		t.Errorf("expected deployed among missing verbs, got %v", result.Verbs.Missing)
	}

	foundPhrase := false
	for _, p := range result.Phrases.Matched {
		if p == "unit testing" {
			foundPhrase = true
		}
	}
	if !foundPhrase {
		t.Errorf("expected unit testing among matched phrases, got %v", result.Phrases.Matched)
	}

	// react is a high-value term and must rank before plain nouns
	if len(result.Nouns.Matched) == 0 || result.Nouns.Matched[0] != "react" {
		t.Errorf("expected react ranked first among matched nouns, got %v", result.Nouns.Matched)
	}

	if len(result.Nouns.Matched) > 12 || len(result.Nouns.Missing) > 10 ||
		len(result.Verbs.Missing) > 8 || len(result.Phrases.Missing) > 8 {
		t.Error("detailed keyword lists not truncated to their caps")
	}
}
