package types

// ExternalATSBreakdown holds the sub-scores of an externally produced ATS
// analysis. The external scorer reports two more dimensions than the
// deterministic breakdown.
type ExternalATSBreakdown struct {
	KeywordMatch    int `json:"keywordMatch"`
	TitleMatch      int `json:"titleMatch"`
	Formatting      int `json:"formatting"`
	SkillOverlap    int `json:"skillOverlap"`
	ExperienceLevel int `json:"experienceLevel"`
	EducationMatch  int `json:"educationMatch"`
}

// ExternalATSAnalysis is the independently scored ATS result from the
// text-generation service or its deterministic fallback
type ExternalATSAnalysis struct {
	OverallScore int                  `json:"overallScore"`
	Breakdown    ExternalATSBreakdown `json:"breakdown"`
	Suggestions  []string             `json:"suggestions"`
	Explanation  string               `json:"explanation"`
}

// ExternalAnalysisResult wraps an external ATS analysis with provenance.
// A failed external call carries its error here; it never aborts the
// deterministic analysis it accompanies.
type ExternalAnalysisResult struct {
	Analysis         ExternalATSAnalysis `json:"aiAnalysis"`
	IsAIGenerated    bool                `json:"isAIGenerated"`
	Error            string              `json:"error,omitempty"`
	Confidence       int                 `json:"confidence"`
	ProcessingTimeMs int64               `json:"processingTime"`
}

// JobSkillGaps lists the skills missing for one suitable job title
type JobSkillGaps struct {
	JobTitle        string   `json:"jobTitle"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills"`
}

// CareerCoachAnalysis is the structured career guidance produced for a resume
type CareerCoachAnalysis struct {
	SuitableJobTitles []string       `json:"suitableJobTitles"`
	MissingSkills     []JobSkillGaps `json:"missingSkills"`
	Improvements      []string       `json:"improvements"`
	OverallAssessment string         `json:"overallAssessment"`
}

// ResumeTipsOutput wraps freeform improvement guidance for a resume
type ResumeTipsOutput struct {
	Tips string `json:"tips"`
}
