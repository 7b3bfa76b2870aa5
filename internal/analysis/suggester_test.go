package analysis

import (
	"math/rand"
	"sync"
	"testing"

	"resumelens/internal/types"
)

func skillProfile(hard, soft []string) types.ExtractedSkills {
	var hardMatches, softMatches []types.SkillMatch
	for _, name := range hard {
		hardMatches = append(hardMatches, types.SkillMatch{Name: name, Category: "Test", Confidence: 50, Mentions: 1})
	}
	for _, name := range soft {
		softMatches = append(softMatches, types.SkillMatch{Name: name, Category: "Test Soft", Confidence: 50, Mentions: 1})
	}
	return types.ExtractedSkills{
		HardSkills:  hardMatches,
		SoftSkills:  softMatches,
		TotalSkills: len(hardMatches) + len(softMatches),
	}
}

func TestSuggestJobRolesFrontendProfile(t *testing.T) {
	s := NewSuggester(rand.New(rand.NewSource(1)))
	skills := skillProfile([]string{"JavaScript", "HTML", "CSS", "React", "TypeScript"}, nil)

	result := s.SuggestJobRoles(skills)

	if len(result.SuggestedRoles) == 0 {
		t.Fatal("expected suggested roles")
	}
	if len(result.SuggestedRoles) > 6 {
		t.Fatalf("expected at most 6 roles, got %d", len(result.SuggestedRoles))
	}

	// Frontend Developer and React Developer tie on score; the catalog
	// order breaks the tie.
	top := result.SuggestedRoles[0]
	if top.Title != "Frontend Developer" {
		t.Fatalf("expected Frontend Developer first, got %s", top.Title)
	}

	// All four required skills matched (70 points) plus 5 of 9 catalog
	// skills overall (16.67 points), rounded.
	if top.Match != 87 {
		t.Errorf("expected match 87, got %d", top.Match)
	}
	if top.ExperienceLevel != types.ExperienceMid {
		t.Errorf("expected Mid level, got %s", top.ExperienceLevel)
	}
	if top.Salary != "$80,000 - $110,000" {
		t.Errorf("unexpected salary %s", top.Salary)
	}
	if len(top.Missing) != 0 {
		t.Errorf("expected no missing required skills, got %v", top.Missing)
	}
	if len(top.Requirements) != 4 {
		t.Errorf("expected all 4 required skills met, got %v", top.Requirements)
	}

	for _, role := range result.SuggestedRoles {
		if role.Match < 0 || role.Match > 100 {
			t.Errorf("match %d out of range for %s", role.Match, role.Title)
		}
	}

	if len(result.TopSkillCategories) == 0 || result.TopSkillCategories[0] != "Test" {
		t.Errorf("expected Test as top category, got %v", result.TopSkillCategories)
	}
	if result.OverallProfile == "" {
		t.Error("expected non-empty profile description")
	}
}

// Requirements use exact label equality while match and missing use
// fuzzy matching, so a fuzzy-only match counts toward the score but
// never appears under requirements.
func TestSuggestJobRolesRequirementsExactMatch(t *testing.T) {
	s := NewSuggester(rand.New(rand.NewSource(1)))
	skills := skillProfile([]string{"React Native", "JavaScript", "HTML", "CSS"}, nil)

	result := s.SuggestJobRoles(skills)

	var frontend *types.JobRoleSuggestion
	for i := range result.SuggestedRoles {
		if result.SuggestedRoles[i].Title == "Frontend Developer" {
			frontend = &result.SuggestedRoles[i]
		}
	}
	if frontend == nil {
		t.Fatal("expected Frontend Developer among suggestions")
	}
	if len(frontend.Missing) != 0 {
		t.Errorf("React Native should satisfy React fuzzily, missing: %v", frontend.Missing)
	}
	for _, req := range frontend.Requirements {
		if req == "React" {
			t.Error("React should not be listed as met: no exact label match")
		}
	}
}

// The server shares one Suggester across all requests, so concurrent
// suggestions draw from the same rand source. Run with -race.
func TestSuggestJobRolesConcurrent(t *testing.T) {
	s := NewSuggester(rand.New(rand.NewSource(1)))
	skills := skillProfile([]string{"JavaScript", "HTML", "CSS", "React", "TypeScript"}, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				result := s.SuggestJobRoles(skills)
				if len(result.SuggestedRoles) == 0 {
					t.Error("expected suggested roles")
				}
			}
		}()
	}
	wg.Wait()
}

func TestSuggestJobRolesEmptyProfile(t *testing.T) {
	s := NewSuggester(rand.New(rand.NewSource(1)))

	result := s.SuggestJobRoles(types.ExtractedSkills{})

	if len(result.SuggestedRoles) != 0 {
		t.Errorf("expected no roles for empty profile, got %d", len(result.SuggestedRoles))
	}
	if result.MarketInsights.RemoteOpportunities != 0 {
		t.Errorf("expected 0%% remote opportunities, got %d", result.MarketInsights.RemoteOpportunities)
	}
	want := "Balanced professional profile with 0 skills across technical and interpersonal domains."
	if result.OverallProfile != want {
		t.Errorf("unexpected profile: %q", result.OverallProfile)
	}
	wantTrend := "Stable market with 0% growth. Focus on high-demand skills for better positioning."
	if result.MarketInsights.SalaryTrends != wantTrend {
		t.Errorf("unexpected salary trend: %q", result.MarketInsights.SalaryTrends)
	}
}

func TestMarketInsightsHighDemandSkills(t *testing.T) {
	s := NewSuggester(rand.New(rand.NewSource(1)))
	skills := skillProfile([]string{"React", "TypeScript", "Python", "AWS", "Kubernetes", "Docker", "GraphQL"}, nil)

	result := s.SuggestJobRoles(skills)

	if len(result.MarketInsights.HighDemandSkills) != 5 {
		t.Errorf("expected high-demand skills capped at 5, got %v", result.MarketInsights.HighDemandSkills)
	}
	if len(result.MarketInsights.EmergingTrends) > 4 {
		t.Errorf("expected at most 4 trends, got %v", result.MarketInsights.EmergingTrends)
	}
}

func TestTrendRelevant(t *testing.T) {
	tests := []struct {
		name   string
		trend  string
		skills []string
		want   bool
	}{
		{name: "python implies AI", trend: "AI/ML Integration", skills: []string{"Python"}, want: true},
		{name: "aws implies cloud", trend: "Cloud-Native Development", skills: []string{"AWS"}, want: true},
		{name: "docker implies devops", trend: "DevOps Automation", skills: []string{"Docker"}, want: true},
		{name: "skill named in trend", trend: "Cybersecurity Focus", skills: []string{"Cybersecurity"}, want: true},
		{name: "unrelated", trend: "Sustainability Tech", skills: []string{"React"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trendRelevant(tt.trend, tt.skills); got != tt.want {
				t.Errorf("trendRelevant(%q, %v) = %v, want %v", tt.trend, tt.skills, got, tt.want)
			}
		})
	}
}
