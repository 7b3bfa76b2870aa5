package analysis

import (
	"math"
	"strings"

	"resumelens/internal/catalog"
	"resumelens/internal/types"
)

// analyzeTitleAlignment measures how well job titles on the resume line
// up with titles in the job description. Related titles earn partial
// credit at 70% of a direct match. Both inputs must already be
// lowercased.
func analyzeTitleAlignment(resumeText, jobDescription string) types.TitleAnalysis {
	titlesIn := func(text string) []string {
		var titles []string
		for _, title := range catalog.JobTitleTerms {
			if strings.Contains(text, title) {
				titles = append(titles, title)
			}
		}
		return titles
	}

	jobTitles := titlesIn(jobDescription)
	resumeTitles := titlesIn(resumeText)

	var matching []string
	for _, title := range jobTitles {
		if containsExact(resumeTitles, title) {
			matching = append(matching, title)
		}
	}

	score := 75
	if len(jobTitles) > 0 {
		related := relatedTitleMatches(jobTitles, resumeTitles)
		total := float64(len(matching)) + float64(related)*0.7
		score = int(math.Round(total / float64(len(jobTitles)) * 100))
		if score > 100 {
			score = 100
		}
	}

	return types.TitleAnalysis{
		JobTitles:      jobTitles,
		ResumeTitles:   resumeTitles,
		MatchingTitles: matching,
		AlignmentScore: score,
	}
}

// relatedTitleMatches counts job titles that have at least one adjacent
// title present among the resume titles
func relatedTitleMatches(jobTitles, resumeTitles []string) int {
	count := 0
	for _, jobTitle := range jobTitles {
		for _, related := range catalog.TitleRelations[jobTitle] {
			if anySkillMatches(resumeTitles, related) {
				count++
				break
			}
		}
	}
	return count
}
