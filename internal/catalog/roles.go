package catalog

import "resumelens/internal/types"

// LevelProfile holds the entry bar and salary band for one experience tier
type LevelProfile struct {
	MinSkills int
	Salary    string
}

// SuggestionRole is one role profile used for role suggestion
type SuggestionRole struct {
	Title            string
	RequiredSkills   []string
	PreferredSkills  []string
	ExperienceLevels map[types.ExperienceLevel]LevelProfile
	Description      string
	DemandLevel      types.DemandLevel
	RemoteAvailable  bool
	IndustryGrowth   string
	MarketTrends     []string
}

// SuggestionRoles is the role database scanned by the role matcher.
// Declaration order is the tie-break order for equally scored roles.
var SuggestionRoles = []SuggestionRole{
	{
		Title:           "Frontend Developer",
		RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "React"},
		PreferredSkills: []string{"TypeScript", "Vue.js", "Angular", "Tailwind CSS", "SASS"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$60,000 - $80,000"},
			types.ExperienceMid:    {5, "$80,000 - $110,000"},
			types.ExperienceSenior: {7, "$110,000 - $140,000"},
			types.ExperienceLead:   {9, "$140,000 - $180,000"},
		},
		Description:     "Build user interfaces and experiences for web applications",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+12% annually",
		MarketTrends:    []string{"React 18+", "TypeScript adoption", "Micro-frontends", "Web3 integration"},
	},
	{
		Title:           "Full Stack Developer",
		RequiredSkills:  []string{"JavaScript", "React", "Node.js", "HTML", "CSS"},
		PreferredSkills: []string{"TypeScript", "Express.js", "MongoDB", "PostgreSQL", "AWS"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {4, "$70,000 - $90,000"},
			types.ExperienceMid:    {6, "$90,000 - $120,000"},
			types.ExperienceSenior: {8, "$120,000 - $150,000"},
			types.ExperienceLead:   {10, "$150,000 - $190,000"},
		},
		Description:     "Develop both frontend and backend components of web applications",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+15% annually",
		MarketTrends:    []string{"Full-stack frameworks", "Serverless architecture", "JAMstack", "API-first design"},
	},
	{
		Title:           "Backend Developer",
		RequiredSkills:  []string{"Node.js", "JavaScript", "SQL", "REST API"},
		PreferredSkills: []string{"TypeScript", "Python", "Express.js", "MongoDB", "PostgreSQL", "Docker"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$65,000 - $85,000"},
			types.ExperienceMid:    {5, "$85,000 - $115,000"},
			types.ExperienceSenior: {7, "$115,000 - $145,000"},
			types.ExperienceLead:   {9, "$145,000 - $185,000"},
		},
		Description:     "Design and implement server-side logic and database architecture",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+10% annually",
		MarketTrends:    []string{"Microservices", "Event-driven architecture", "GraphQL APIs", "Database optimization"},
	},
	{
		Title:           "React Developer",
		RequiredSkills:  []string{"React", "JavaScript", "HTML", "CSS"},
		PreferredSkills: []string{"TypeScript", "Next.js", "Redux", "Jest", "Webpack"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$65,000 - $85,000"},
			types.ExperienceMid:    {5, "$85,000 - $115,000"},
			types.ExperienceSenior: {7, "$115,000 - $145,000"},
			types.ExperienceLead:   {9, "$145,000 - $185,000"},
		},
		Description:     "Specialize in building React-based applications and components",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+18% annually",
		MarketTrends:    []string{"React Server Components", "Next.js 14+", "State management evolution", "Performance optimization"},
	},
	{
		Title:           "DevOps Engineer",
		RequiredSkills:  []string{"Docker", "AWS", "Linux", "Git"},
		PreferredSkills: []string{"Kubernetes", "Jenkins", "Terraform", "Ansible", "Python"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$70,000 - $90,000"},
			types.ExperienceMid:    {5, "$90,000 - $125,000"},
			types.ExperienceSenior: {7, "$125,000 - $160,000"},
			types.ExperienceLead:   {9, "$160,000 - $200,000"},
		},
		Description:     "Manage infrastructure, deployment pipelines, and system reliability",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+20% annually",
		MarketTrends:    []string{"Platform engineering", "GitOps", "Observability", "FinOps practices"},
	},
	{
		Title:           "Data Scientist",
		RequiredSkills:  []string{"Python", "SQL", "Pandas", "NumPy"},
		PreferredSkills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Jupyter", "R"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$75,000 - $95,000"},
			types.ExperienceMid:    {5, "$95,000 - $130,000"},
			types.ExperienceSenior: {7, "$130,000 - $170,000"},
			types.ExperienceLead:   {9, "$170,000 - $220,000"},
		},
		Description:     "Analyze data to derive insights and build predictive models",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+22% annually",
		MarketTrends:    []string{"LLM integration", "MLOps", "Real-time analytics", "Ethical AI"},
	},
	{
		Title:           "Mobile Developer",
		RequiredSkills:  []string{"React Native", "JavaScript", "Mobile Development"},
		PreferredSkills: []string{"Swift", "Kotlin", "Flutter", "TypeScript", "iOS", "Android"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$65,000 - $85,000"},
			types.ExperienceMid:    {4, "$85,000 - $115,000"},
			types.ExperienceSenior: {6, "$115,000 - $145,000"},
			types.ExperienceLead:   {8, "$145,000 - $185,000"},
		},
		Description:     "Build mobile applications for iOS and Android platforms",
		DemandLevel:     types.DemandMedium,
		RemoteAvailable: true,
		IndustryGrowth:  "+8% annually",
		MarketTrends:    []string{"Cross-platform development", "React Native 0.73+", "Flutter adoption", "Mobile-first design"},
	},
	{
		Title:           "Cloud Engineer",
		RequiredSkills:  []string{"AWS", "Cloud Platforms", "Linux"},
		PreferredSkills: []string{"Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$70,000 - $90,000"},
			types.ExperienceMid:    {4, "$90,000 - $125,000"},
			types.ExperienceSenior: {6, "$125,000 - $160,000"},
			types.ExperienceLead:   {8, "$160,000 - $200,000"},
		},
		Description:     "Design and manage cloud infrastructure and services",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+25% annually",
		MarketTrends:    []string{"Multi-cloud strategies", "Serverless computing", "Edge computing", "Cloud security"},
	},
	{
		Title:           "QA Engineer",
		RequiredSkills:  []string{"Testing", "JavaScript", "Quality Assurance"},
		PreferredSkills: []string{"Jest", "Cypress", "Selenium", "Playwright", "Automation"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$55,000 - $75,000"},
			types.ExperienceMid:    {4, "$75,000 - $100,000"},
			types.ExperienceSenior: {6, "$100,000 - $130,000"},
			types.ExperienceLead:   {8, "$130,000 - $160,000"},
		},
		Description:     "Ensure software quality through testing and automation",
		DemandLevel:     types.DemandMedium,
		RemoteAvailable: true,
		IndustryGrowth:  "+7% annually",
		MarketTrends:    []string{"Shift-left testing", "AI-powered testing", "Test automation", "API testing"},
	},
	{
		Title:           "Product Manager",
		RequiredSkills:  []string{"Project Management", "Communication", "Strategic Planning"},
		PreferredSkills: []string{"Agile", "Scrum", "Leadership", "User Experience", "Analytics"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$80,000 - $100,000"},
			types.ExperienceMid:    {4, "$100,000 - $135,000"},
			types.ExperienceSenior: {6, "$135,000 - $170,000"},
			types.ExperienceLead:   {8, "$170,000 - $220,000"},
		},
		Description:     "Guide product development and strategy from conception to launch",
		DemandLevel:     types.DemandHigh,
		RemoteAvailable: true,
		IndustryGrowth:  "+14% annually",
		MarketTrends:    []string{"AI-driven insights", "Data-driven decisions", "User-centric design", "Agile methodologies"},
	},
}
