package analysis

import (
	"math"
	"regexp"
	"strings"

	"resumelens/internal/catalog"
	"resumelens/internal/types"
)

var (
	nonWordRe           = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe        = regexp.MustCompile(`\s+`)
	highPriorityCtxRe   = regexp.MustCompile(`(?i)(?:required|must have|essential|critical|mandatory|key requirement)`)
	mediumPriorityCtxRe = regexp.MustCompile(`(?i)(?:preferred|nice to have|desired|plus|advantage)`)
)

// extractWords tokenizes the text into lowercase words longer than two
// characters, dropping words in the stop list. Punctuation becomes
// whitespace first, so "node.js" splits into "node" and neither half of
// "ci/cd" survives intact.
func extractWords(text string, stopWords map[string]bool) []string {
	cleaned := nonWordRe.ReplaceAllString(text, " ")
	var words []string
	for _, word := range whitespaceRe.Split(cleaned, -1) {
		if len(word) <= 2 {
			continue
		}
		word = strings.ToLower(word)
		if stopWords[word] {
			continue
		}
		words = append(words, word)
	}
	return words
}

// analyzeKeywordFrequency scores keyword overlap with per-word points
// weighted by frequency and by the context the word appears in: words
// near requirement language count triple, near preference language
// double. Both inputs must already be lowercased.
func analyzeKeywordFrequency(resumeText, jobDescription string) types.KeywordMatches {
	resumeWords := extractWords(resumeText, catalog.KeywordStopWords)
	jobWords := extractWords(jobDescription, catalog.KeywordStopWords)

	jobFreq := make(map[string]int)
	jobPriority := make(map[string]int)
	var jobOrder []string
	for _, word := range jobWords {
		if jobFreq[word] == 0 {
			jobOrder = append(jobOrder, word)
		}
		jobFreq[word]++

		// Priority looks at a 200-char window around the first occurrence,
		// so every repeat of a word shares one priority.
		idx := strings.Index(jobDescription, word)
		start := idx - 100
		if start < 0 {
			start = 0
		}
		end := idx + 100
		if end > len(jobDescription) {
			end = len(jobDescription)
		}
		surrounding := jobDescription[start:end]
		switch {
		case highPriorityCtxRe.MatchString(surrounding):
			jobPriority[word] = 3
		case mediumPriorityCtxRe.MatchString(surrounding):
			jobPriority[word] = 2
		default:
			jobPriority[word] = 1
		}
	}

	resumeFreq := make(map[string]int)
	for _, word := range resumeWords {
		resumeFreq[word]++
	}

	var totalPoints, earnedPoints int
	var matched, missing []string
	for _, word := range jobOrder {
		freq := jobFreq[word]
		priority := jobPriority[word]
		wordPoints := freq * priority * 2
		if wordPoints > 15 {
			wordPoints = 15
		}
		totalPoints += wordPoints

		if rf := resumeFreq[word]; rf > 0 {
			overlap := rf
			if freq < overlap {
				overlap = freq
			}
			earnedPoints += overlap * priority * 2
			matched = append(matched, word)
		} else {
			missing = append(missing, word)
		}
	}

	matchPercentage := 0
	if totalPoints > 0 {
		matchPercentage = int(math.Round(float64(earnedPoints) / float64(totalPoints) * 100))
	}
	if len(missing) > 20 {
		missing = missing[:20]
	}

	return types.KeywordMatches{
		Matched:         matched,
		Missing:         missing,
		Total:           len(jobFreq),
		MatchPercentage: matchPercentage,
	}
}

// extractDetailedKeywords categorizes keyword overlap into technical
// nouns, action verbs and multi-word phrases. Both inputs must already
// be lowercased.
func extractDetailedKeywords(resumeText, jobDescription string) types.DetailedKeywords {
	jobWords := extractWords(jobDescription, catalog.DetailedStopWords)
	resumeWords := extractWords(resumeText, catalog.DetailedStopWords)

	resumeWordSet := make(map[string]bool, len(resumeWords))
	for _, word := range resumeWords {
		resumeWordSet[word] = true
	}

	isNoun := func(word string) bool {
		return containsExact(catalog.TechnicalNouns, word) ||
			containsExact(catalog.TechnicalSkillTerms, word) ||
			catalog.HighValueTerms[word] ||
			strings.HasSuffix(word, "ing") ||
			strings.HasSuffix(word, "tion") ||
			strings.HasSuffix(word, "ment")
	}

	var matchedNouns, missingNouns []string
	for _, word := range jobWords {
		if !isNoun(word) {
			continue
		}
		if resumeWordSet[word] {
			matchedNouns = append(matchedNouns, word)
		} else {
			missingNouns = append(missingNouns, word)
		}
	}

	var matchedVerbs, missingVerbs []string
	for _, word := range jobWords {
		if !containsExact(catalog.ActionVerbs, word) {
			continue
		}
		if resumeWordSet[word] {
			matchedVerbs = append(matchedVerbs, word)
		} else {
			missingVerbs = append(missingVerbs, word)
		}
	}

	jobPhrases := matchPhrases(jobDescription)
	resumePhraseSet := make(map[string]bool)
	for _, phrase := range matchPhrases(resumeText) {
		resumePhraseSet[phrase] = true
	}
	var matchedPhrases, missingPhrases []string
	for _, phrase := range jobPhrases {
		if resumePhraseSet[phrase] {
			matchedPhrases = append(matchedPhrases, phrase)
		} else {
			missingPhrases = append(missingPhrases, phrase)
		}
	}

	highValueFirst := func(nouns []string) []string {
		var weighted []string
		for _, noun := range nouns {
			if catalog.HighValueTerms[noun] {
				weighted = append(weighted, noun)
			}
		}
		return dedup(append(weighted, nouns...))
	}

	return types.DetailedKeywords{
		Nouns: types.KeywordGroup{
			Matched: truncate(highValueFirst(matchedNouns), 12),
			Missing: truncate(highValueFirst(missingNouns), 10),
		},
		Verbs: types.KeywordGroup{
			Matched: dedup(matchedVerbs),
			Missing: truncate(dedup(missingVerbs), 8),
		},
		Phrases: types.KeywordGroup{
			Matched: dedup(matchedPhrases),
			Missing: truncate(dedup(missingPhrases), 8),
		},
	}
}

// matchPhrases returns the known tech phrases present in the text
func matchPhrases(text string) []string {
	var phrases []string
	for _, phrase := range catalog.CommonTechPhrases {
		if strings.Contains(text, phrase) {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// dedup removes duplicates preserving first occurrence order
func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
