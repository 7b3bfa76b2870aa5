package types

import "time"

// StoredJobComparison is the snapshot of a target job comparison kept with
// an analysis record
type StoredJobComparison struct {
	JobTitle               string    `json:"jobTitle"`
	MatchPercentage        int       `json:"matchPercentage"`
	AnalyzedAt             time.Time `json:"analyzedAt"`
	MissingRequiredSkills  []string  `json:"missingRequiredSkills"`
	MissingPreferredSkills []string  `json:"missingPreferredSkills"`
}

// StoredAnalysis is one persisted analysis snapshot
type StoredAnalysis struct {
	ID                   string                `json:"id"`
	FileName             string                `json:"fileName"`
	AnalyzedAt           time.Time             `json:"analyzedAt"`
	FileSize             int64                 `json:"fileSize"`
	ExtractedText        string                `json:"extractedText"`
	WordCount            int                   `json:"wordCount"`
	Skills               ExtractedSkills       `json:"skills"`
	JobSuggestions       []JobRoleSuggestion   `json:"jobSuggestions"`
	AISuggestions        string                `json:"aiSuggestions,omitempty"`
	TargetJobComparisons []StoredJobComparison `json:"targetJobComparisons"`
}

// HistoryInfo summarizes history store usage
type HistoryInfo struct {
	AnalysisCount int   `json:"analysisCount"`
	UsedBytes     int64 `json:"usedBytes"`
	Capacity      int   `json:"capacity"`
}
