package types

// FormatRating is the categorical format check result
type FormatRating string

const (
	FormatGood FormatRating = "Good"
	FormatFair FormatRating = "Fair"
	FormatPoor FormatRating = "Poor"
)

// SkillGroup classifies a vocabulary skill
type SkillGroup string

const (
	SkillGroupTechnical SkillGroup = "technical"
	SkillGroupSoft      SkillGroup = "soft"
	SkillGroupIndustry  SkillGroup = "industry"
)

// ATSBreakdown holds the per-dimension scores behind the overall ATS score
type ATSBreakdown struct {
	SkillMatch     int          `json:"skillMatch"`
	KeywordMatch   int          `json:"keywordMatch"`
	TitleAlignment int          `json:"titleAlignment"`
	FormatCheck    FormatRating `json:"formatCheck"`
}

// KeywordMatches reports frequency-weighted keyword overlap
type KeywordMatches struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	Total           int      `json:"total"`
	MatchPercentage int      `json:"matchPercentage"`
}

// MatchedSkill is a vocabulary skill present in both texts, with earned points
type MatchedSkill struct {
	Skill      string     `json:"skill"`
	Category   SkillGroup `json:"category"`
	Importance Importance `json:"importance"`
	Frequency  int        `json:"frequency"`
	Points     int        `json:"points"`
}

// MissingSkill is a vocabulary skill the job asks for that the resume lacks
type MissingSkill struct {
	Skill       string     `json:"skill"`
	Category    SkillGroup `json:"category"`
	Importance  Importance `json:"importance"`
	Suggestions []string   `json:"suggestions"`
	PointsLost  int        `json:"pointsLost"`
}

// SkillsAnalysis is the points-based skill overlap result
type SkillsAnalysis struct {
	MatchedSkills []MatchedSkill `json:"matchedSkills"`
	MissingSkills []MissingSkill `json:"missingSkills"`
}

// TitleAnalysis reports job title alignment between the two texts
type TitleAnalysis struct {
	JobTitles      []string `json:"jobTitles"`
	ResumeTitles   []string `json:"resumeTitles"`
	MatchingTitles []string `json:"matchingTitles"`
	AlignmentScore int      `json:"alignmentScore"`
}

// FormatAnalysis reports the heuristic resume format checks
type FormatAnalysis struct {
	HasBulletPoints      bool         `json:"hasBulletPoints"`
	HasStandardSections  bool         `json:"hasStandardSections"`
	HasQuantifiedResults bool         `json:"hasQuantifiedResults"`
	HasContactInfo       bool         `json:"hasContactInfo"`
	OverallFormatScore   FormatRating `json:"overallFormatScore"`
}

// ScoreFeedback pairs a 0-100 score with a human-readable explanation
type ScoreFeedback struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// KeywordGroup holds matched and missing keywords of one category
type KeywordGroup struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// DetailedKeywords categorizes keyword overlap into nouns, verbs and phrases
type DetailedKeywords struct {
	Nouns   KeywordGroup `json:"nouns"`
	Verbs   KeywordGroup `json:"verbs"`
	Phrases KeywordGroup `json:"phrases"`
}

// ATSMatchResult is the full deterministic ATS analysis of a resume against
// a job description, optionally augmented with an independent external score
type ATSMatchResult struct {
	OverallScore     int                     `json:"overallScore"`
	Breakdown        ATSBreakdown            `json:"breakdown"`
	ExternalAnalysis *ExternalAnalysisResult `json:"externalAnalysis,omitempty"`
	KeywordMatches   KeywordMatches          `json:"keywordMatches"`
	SkillsAnalysis   SkillsAnalysis          `json:"skillsAnalysis"`
	TitleAnalysis    TitleAnalysis           `json:"titleAnalysis"`
	FormatAnalysis   FormatAnalysis          `json:"formatAnalysis"`
	ExperienceMatch  ScoreFeedback           `json:"experienceMatch"`
	EducationMatch   ScoreFeedback           `json:"educationMatch"`
	Recommendations  []string                `json:"recommendations"`
	DetailedKeywords DetailedKeywords        `json:"detailedKeywords"`
}
