package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"resumelens/internal/catalog"
	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// skillPatterns caches the compiled whole-word pattern per skill label.
// The catalog is static, so the cache only ever grows to its size.
var skillPatterns sync.Map

func skillPattern(skill string) *regexp.Regexp {
	if re, ok := skillPatterns.Load(skill); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	skillPatterns.Store(skill, re)
	return re
}

// countMentions counts whole-word occurrences of skill in the lowercased
// text. Skills whose labels end in a non-word character, such as "C++",
// never satisfy the trailing boundary and always count zero. That quirk
// is kept because downstream scores were tuned around it.
func countMentions(normalizedText, skill string) int {
	return len(skillPattern(skill).FindAllStringIndex(normalizedText, -1))
}

// mentionConfidence scores how confidently a skill mention reflects real
// proficiency, on a 0-100 scale. More mentions raise it, very long texts
// dampen it, very short texts boost it.
func mentionConfidence(mentions, textLength int) int {
	confidence := math.Min(float64(mentions)*20, 100)
	if mentions > 1 {
		confidence = math.Min(confidence*1.2, 100)
	}
	lengthFactor := math.Max(0.8, math.Min(1.2, 1000/float64(textLength)))
	confidence *= lengthFactor
	return int(math.Round(math.Max(0, math.Min(100, confidence))))
}

// ExtractSkills scans the text against the hard and soft skill catalogs
// and returns every detected skill with its confidence and mention count,
// each list sorted by confidence then mentions, descending.
func ExtractSkills(text string) (types.ExtractedSkills, error) {
	if strings.TrimSpace(text) == "" {
		return types.ExtractedSkills{}, apperrors.NewValidationError(
			apperrors.ErrCodeEmptyText, "text is empty", nil)
	}

	normalized := strings.ToLower(text)
	textLength := utf8.RuneCountInString(text)

	collect := func(categories []catalog.SkillCategory) []types.SkillMatch {
		var matches []types.SkillMatch
		for _, cat := range categories {
			for _, skill := range cat.Skills {
				mentions := countMentions(normalized, skill)
				if mentions == 0 {
					continue
				}
				matches = append(matches, types.SkillMatch{
					Name:       skill,
					Category:   cat.Name,
					Confidence: mentionConfidence(mentions, textLength),
					Mentions:   mentions,
				})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].Confidence != matches[j].Confidence {
				return matches[i].Confidence > matches[j].Confidence
			}
			return matches[i].Mentions > matches[j].Mentions
		})
		return matches
	}

	hard := collect(catalog.HardSkills)
	soft := collect(catalog.SoftSkills)

	return types.ExtractedSkills{
		HardSkills:  hard,
		SoftSkills:  soft,
		TotalSkills: len(hard) + len(soft),
	}, nil
}
