package types

// SkillMatch represents one catalog skill detected in a text
type SkillMatch struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Confidence int    `json:"confidence"` // 0-100
	Mentions   int    `json:"mentions"`
}

// ExtractedSkills represents the full skill profile of an analyzed text
type ExtractedSkills struct {
	HardSkills  []SkillMatch `json:"hardSkills"`
	SoftSkills  []SkillMatch `json:"softSkills"`
	TotalSkills int          `json:"totalSkills"`
}

// AllSkillNames returns the hard and soft skill names in extraction order
func (e ExtractedSkills) AllSkillNames() []string {
	names := make([]string, 0, len(e.HardSkills)+len(e.SoftSkills))
	for _, s := range e.HardSkills {
		names = append(names, s.Name)
	}
	for _, s := range e.SoftSkills {
		names = append(names, s.Name)
	}
	return names
}

// ExperienceLevel is a seniority tier inferred from matched skill count
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
	ExperienceLead   ExperienceLevel = "Lead"
)

// ExperienceLevels lists the tiers in ascending order of required skills
var ExperienceLevels = []ExperienceLevel{ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead}

// DemandLevel describes market demand for a role
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// JobRoleSuggestion is one suggested role enriched with display attributes.
// Company and location are synthesized for display and carry no meaning.
type JobRoleSuggestion struct {
	Title           string          `json:"title"`
	Match           int             `json:"match"` // 0-100
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary"`
	Requirements    []string        `json:"requirements"`
	Missing         []string        `json:"missing"`
	Description     string          `json:"description"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	DemandLevel     DemandLevel     `json:"demandLevel"`
	RemoteAvailable bool            `json:"remoteAvailable"`
	IndustryGrowth  string          `json:"industryGrowth"`
	MarketTrends    []string        `json:"marketTrends"`
}

// MarketInsights summarizes market positioning for a skill profile
type MarketInsights struct {
	HighDemandSkills    []string `json:"highDemandSkills"`
	EmergingTrends      []string `json:"emergingTrends"`
	SalaryTrends        string   `json:"salaryTrends"`
	RemoteOpportunities int      `json:"remoteOpportunities"` // percentage
}

// JobSuggestionResult represents the output of role suggestion
type JobSuggestionResult struct {
	SuggestedRoles     []JobRoleSuggestion `json:"suggestedRoles"`
	TopSkillCategories []string            `json:"topSkillCategories"`
	OverallProfile     string              `json:"overallProfile"`
	MarketInsights     MarketInsights      `json:"marketInsights"`
}

// ChecklistCategory distinguishes required from preferred checklist skills
type ChecklistCategory string

const (
	ChecklistRequired  ChecklistCategory = "required"
	ChecklistPreferred ChecklistCategory = "preferred"
)

// Importance grades how strongly a skill is demanded
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// SkillChecklistItem is one skill a target job asks for, annotated with
// whether the candidate has it and how to acquire it
type SkillChecklistItem struct {
	Skill        string            `json:"skill"`
	Category     ChecklistCategory `json:"category"`
	HasSkill     bool              `json:"hasSkill"`
	Importance   Importance        `json:"importance"`
	LearningTime string            `json:"learningTime"`
	Resources    []string          `json:"resources"`
}

// TargetJobComparison represents the comparison of a skill profile against
// one selected target job
type TargetJobComparison struct {
	JobTitle               string               `json:"jobTitle"`
	MatchPercentage        int                  `json:"matchPercentage"`
	MatchingSkills         []string             `json:"matchingSkills"`
	MissingRequiredSkills  []string             `json:"missingRequiredSkills"`
	MissingPreferredSkills []string             `json:"missingPreferredSkills"`
	ExperienceLevel        ExperienceLevel      `json:"experienceLevel"`
	SalaryRange            string               `json:"salaryRange"`
	Description            string               `json:"description"`
	SkillsChecklist        []SkillChecklistItem `json:"skillsChecklist"`
}

// JobOption is a selectable target job
type JobOption struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Popularity int    `json:"popularity"`
}
