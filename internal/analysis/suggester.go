package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"resumelens/internal/catalog"
	"resumelens/internal/types"
)

// Suggester produces job role suggestions for a skill profile. The rand
// source only drives display enrichment (company, location), never scores.
// A Suggester is safe for concurrent use.
type Suggester struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSuggester returns a Suggester drawing display attributes from rng
func NewSuggester(rng *rand.Rand) *Suggester {
	return &Suggester{rng: rng}
}

// SuggestJobRoles scores the skill profile against every role in the
// catalog and returns the best-fitting roles together with profile and
// market summaries
func (s *Suggester) SuggestJobRoles(skills types.ExtractedSkills) types.JobSuggestionResult {
	userSkills := skills.AllSkillNames()

	type scoredRole struct {
		types.JobRoleSuggestion
		score int
	}

	var matches []scoredRole
	for _, role := range catalog.SuggestionRoles {
		match, missing, level := s.scoreRole(userSkills, role)
		if match <= 25 {
			continue
		}

		// rand.Rand is not safe for concurrent use and one Suggester is
		// shared across server requests, so all draws happen under the lock.
		s.mu.Lock()
		company := catalog.Companies[s.rng.Intn(len(catalog.Companies))]
		location := catalog.Locations[s.rng.Intn(len(catalog.Locations))]
		if role.RemoteAvailable && s.rng.Float64() > 0.3 {
			location = "Remote"
		}
		s.mu.Unlock()

		// Requirements the candidate satisfies use exact label equality,
		// unlike the fuzzy matching behind match and missing.
		var metRequirements []string
		for _, req := range role.RequiredSkills {
			if containsExact(userSkills, req) {
				metRequirements = append(metRequirements, req)
			}
		}

		matches = append(matches, scoredRole{
			JobRoleSuggestion: types.JobRoleSuggestion{
				Title:           role.Title,
				Match:           match,
				Company:         company,
				Location:        location,
				Salary:          role.ExperienceLevels[level].Salary,
				Requirements:    metRequirements,
				Missing:         missing,
				Description:     role.Description,
				ExperienceLevel: level,
				DemandLevel:     role.DemandLevel,
				RemoteAvailable: role.RemoteAvailable,
				IndustryGrowth:  role.IndustryGrowth,
				MarketTrends:    role.MarketTrends,
			},
			score: match + (len(role.RequiredSkills)-len(missing))*5,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > 6 {
		matches = matches[:6]
	}

	suggested := make([]types.JobRoleSuggestion, len(matches))
	for i, m := range matches {
		suggested[i] = m.JobRoleSuggestion
	}

	return types.JobSuggestionResult{
		SuggestedRoles:     suggested,
		TopSkillCategories: topSkillCategories(skills),
		OverallProfile:     profileDescription(skills, suggested),
		MarketInsights:     marketInsights(userSkills, suggested),
	}
}

// scoreRole computes the 0-100 match, the missing required skills and the
// inferred experience tier for one role. Required overlap dominates the
// score at 70%, overall overlap contributes the remaining 30%.
func (s *Suggester) scoreRole(userSkills []string, role catalog.SuggestionRole) (int, []string, types.ExperienceLevel) {
	allJobSkills := append(append([]string{}, role.RequiredSkills...), role.PreferredSkills...)

	var matchingCount int
	for _, us := range userSkills {
		for _, js := range allJobSkills {
			if skillsMatch(us, js) {
				matchingCount++
				break
			}
		}
	}

	var requiredMatches int
	var missing []string
	for _, req := range role.RequiredSkills {
		if anySkillMatches(userSkills, req) {
			requiredMatches++
		} else {
			missing = append(missing, req)
		}
	}

	requiredPct := float64(requiredMatches) / float64(len(role.RequiredSkills)) * 100
	overallPct := float64(matchingCount) / float64(len(allJobSkills)) * 100
	match := int(math.Round(requiredPct*0.7 + overallPct*0.3))

	level := types.ExperienceJunior
	for _, tier := range types.ExperienceLevels {
		if matchingCount >= role.ExperienceLevels[tier].MinSkills {
			level = tier
		}
	}

	return match, missing, level
}

// topSkillCategories returns the three categories with the most detected
// skills, counted across hard and soft skills
func topSkillCategories(skills types.ExtractedSkills) []string {
	counts := make(map[string]int)
	var order []string
	for _, sk := range append(append([]types.SkillMatch{}, skills.HardSkills...), skills.SoftSkills...) {
		if counts[sk.Category] == 0 {
			order = append(order, sk.Category)
		}
		counts[sk.Category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	return order
}

func profileDescription(skills types.ExtractedSkills, suggested []types.JobRoleSuggestion) string {
	total := skills.TotalSkills
	hard := len(skills.HardSkills)
	soft := len(skills.SoftSkills)

	var profile string
	switch {
	case float64(hard) > float64(soft)*1.5:
		profile = fmt.Sprintf("Technical specialist with %d identified skills. Strong in technical execution with %d hard skills detected.", total, hard)
	case soft > hard:
		profile = fmt.Sprintf("Well-rounded professional with %d skills, emphasizing leadership and collaboration with %d soft skills.", total, soft)
	default:
		profile = fmt.Sprintf("Balanced professional profile with %d skills across technical and interpersonal domains.", total)
	}

	if len(suggested) > 0 {
		var sum int
		for _, role := range suggested {
			sum += role.Match
		}
		avgMatch := math.Round(float64(sum) / float64(len(suggested)))
		profile += fmt.Sprintf(" Best suited for %s roles with %.0f%% average match across suggested positions.", suggested[0].Title, avgMatch)
	}

	return profile
}

func marketInsights(userSkills []string, suggested []types.JobRoleSuggestion) types.MarketInsights {
	var highDemand []string
	for _, skill := range catalog.HighDemandSkills {
		if anySkillMatches(userSkills, skill) {
			highDemand = append(highDemand, skill)
		}
	}
	if len(highDemand) > 5 {
		highDemand = highDemand[:5]
	}

	var trends []string
	for _, trend := range catalog.EmergingTrends {
		if trendRelevant(trend, userSkills) {
			trends = append(trends, trend)
		}
	}
	if len(trends) > 4 {
		trends = trends[:4]
	}

	remotePct := 0
	if len(suggested) > 0 {
		var remoteCount int
		for _, role := range suggested {
			if role.RemoteAvailable {
				remoteCount++
			}
		}
		remotePct = int(math.Round(float64(remoteCount) / float64(len(suggested)) * 100))
	}

	return types.MarketInsights{
		HighDemandSkills:    highDemand,
		EmergingTrends:      trends,
		SalaryTrends:        salaryTrends(suggested),
		RemoteOpportunities: remotePct,
	}
}

// trendRelevant relates a market trend to the candidate's skills, either
// by the skill appearing in the trend name or through a few hardcoded
// skill-to-trend associations
func trendRelevant(trend string, userSkills []string) bool {
	trendLower := strings.ToLower(trend)
	for _, skill := range userSkills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(trendLower, skillLower) {
			return true
		}
		if strings.Contains(trendLower, "ai") &&
			(strings.Contains(skillLower, "python") || strings.Contains(skillLower, "machine learning")) {
			return true
		}
		if strings.Contains(trendLower, "cloud") && strings.Contains(skillLower, "aws") {
			return true
		}
		if strings.Contains(trendLower, "devops") &&
			(strings.Contains(skillLower, "docker") || strings.Contains(skillLower, "kubernetes")) {
			return true
		}
	}
	return false
}

var growthPercentRe = regexp.MustCompile(`(\d+)%`)

func salaryTrends(suggested []types.JobRoleSuggestion) string {
	var sum, count int
	for _, role := range suggested {
		if role.DemandLevel != types.DemandHigh {
			continue
		}
		growth := 10
		if m := growthPercentRe.FindStringSubmatch(role.IndustryGrowth); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				growth = n
			}
		}
		sum += growth
		count++
	}
	if count == 0 {
		count = 1
	}
	avg := float64(sum) / float64(count)
	rounded := int(math.Round(avg))

	switch {
	case avg >= 15:
		return fmt.Sprintf("Strong upward trend with %d%% average growth. High-demand roles showing premium salary increases.", rounded)
	case avg >= 10:
		return fmt.Sprintf("Positive salary growth trend at %d%% annually. Competitive market for skilled professionals.", rounded)
	default:
		return fmt.Sprintf("Stable market with %d%% growth. Focus on high-demand skills for better positioning.", rounded)
	}
}
