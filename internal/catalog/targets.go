package catalog

import (
	"sort"

	"resumelens/internal/types"
)

// TargetJob is one job profile available for direct comparison
type TargetJob struct {
	Title            string
	Category         string
	RequiredSkills   []string
	PreferredSkills  []string
	ExperienceLevels map[types.ExperienceLevel]LevelProfile
	Description      string
	Popularity       int
}

// TargetJobs is the comparison-side job database, keyed by exact title
var TargetJobs = map[string]TargetJob{
	"Frontend Developer": {
		Title:           "Frontend Developer",
		Category:        "Frontend Development",
		RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "React"},
		PreferredSkills: []string{"TypeScript", "Vue.js", "Angular", "Tailwind CSS", "SASS", "Webpack", "Jest"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$60,000 - $80,000"},
			types.ExperienceMid:    {5, "$80,000 - $110,000"},
			types.ExperienceSenior: {7, "$110,000 - $140,000"},
			types.ExperienceLead:   {9, "$140,000 - $180,000"},
		},
		Description: "Build user interfaces and experiences for web applications",
		Popularity:  95,
	},
	"Full Stack Developer": {
		Title:           "Full Stack Developer",
		Category:        "Full Stack Development",
		RequiredSkills:  []string{"JavaScript", "React", "Node.js", "HTML", "CSS", "SQL"},
		PreferredSkills: []string{"TypeScript", "Express.js", "MongoDB", "PostgreSQL", "AWS", "Docker", "GraphQL"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {4, "$70,000 - $90,000"},
			types.ExperienceMid:    {6, "$90,000 - $120,000"},
			types.ExperienceSenior: {8, "$120,000 - $150,000"},
			types.ExperienceLead:   {10, "$150,000 - $190,000"},
		},
		Description: "Develop both frontend and backend components of web applications",
		Popularity:  90,
	},
	"Backend Developer": {
		Title:           "Backend Developer",
		Category:        "Backend Development",
		RequiredSkills:  []string{"Node.js", "JavaScript", "SQL", "REST API"},
		PreferredSkills: []string{"TypeScript", "Python", "Express.js", "MongoDB", "PostgreSQL", "Docker", "AWS", "GraphQL"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$65,000 - $85,000"},
			types.ExperienceMid:    {5, "$85,000 - $115,000"},
			types.ExperienceSenior: {7, "$115,000 - $145,000"},
			types.ExperienceLead:   {9, "$145,000 - $185,000"},
		},
		Description: "Design and implement server-side logic and database architecture",
		Popularity:  85,
	},
	"React Developer": {
		Title:           "React Developer",
		Category:        "Frontend Development",
		RequiredSkills:  []string{"React", "JavaScript", "HTML", "CSS"},
		PreferredSkills: []string{"TypeScript", "Next.js", "Redux", "Jest", "Webpack", "GraphQL", "Material-UI"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$65,000 - $85,000"},
			types.ExperienceMid:    {5, "$85,000 - $115,000"},
			types.ExperienceSenior: {7, "$115,000 - $145,000"},
			types.ExperienceLead:   {9, "$145,000 - $185,000"},
		},
		Description: "Specialize in building React-based applications and components",
		Popularity:  88,
	},
	"DevOps Engineer": {
		Title:           "DevOps Engineer",
		Category:        "DevOps & Infrastructure",
		RequiredSkills:  []string{"Docker", "AWS", "Linux", "Git"},
		PreferredSkills: []string{"Kubernetes", "Jenkins", "Terraform", "Ansible", "Python", "CI/CD", "Nginx"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$70,000 - $90,000"},
			types.ExperienceMid:    {5, "$90,000 - $125,000"},
			types.ExperienceSenior: {7, "$125,000 - $160,000"},
			types.ExperienceLead:   {9, "$160,000 - $200,000"},
		},
		Description: "Manage infrastructure, deployment pipelines, and system reliability",
		Popularity:  80,
	},
	"Data Scientist": {
		Title:           "Data Scientist",
		Category:        "Data Science & Analytics",
		RequiredSkills:  []string{"Python", "SQL", "Pandas", "NumPy"},
		PreferredSkills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Jupyter", "R", "Tableau", "Apache Spark"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {3, "$75,000 - $95,000"},
			types.ExperienceMid:    {5, "$95,000 - $130,000"},
			types.ExperienceSenior: {7, "$130,000 - $170,000"},
			types.ExperienceLead:   {9, "$170,000 - $220,000"},
		},
		Description: "Analyze data to derive insights and build predictive models",
		Popularity:  75,
	},
	"Mobile Developer": {
		Title:           "Mobile Developer",
		Category:        "Mobile Development",
		RequiredSkills:  []string{"React Native", "JavaScript", "Mobile Development"},
		PreferredSkills: []string{"Swift", "Kotlin", "Flutter", "TypeScript", "iOS", "Android", "Firebase"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$65,000 - $85,000"},
			types.ExperienceMid:    {4, "$85,000 - $115,000"},
			types.ExperienceSenior: {6, "$115,000 - $145,000"},
			types.ExperienceLead:   {8, "$145,000 - $185,000"},
		},
		Description: "Build mobile applications for iOS and Android platforms",
		Popularity:  70,
	},
	"Cloud Engineer": {
		Title:           "Cloud Engineer",
		Category:        "Cloud & Infrastructure",
		RequiredSkills:  []string{"AWS", "Cloud Platforms", "Linux"},
		PreferredSkills: []string{"Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Python"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$70,000 - $90,000"},
			types.ExperienceMid:    {4, "$90,000 - $125,000"},
			types.ExperienceSenior: {6, "$125,000 - $160,000"},
			types.ExperienceLead:   {8, "$160,000 - $200,000"},
		},
		Description: "Design and manage cloud infrastructure and services",
		Popularity:  82,
	},
	"QA Engineer": {
		Title:           "QA Engineer",
		Category:        "Quality Assurance",
		RequiredSkills:  []string{"Testing", "JavaScript", "Quality Assurance"},
		PreferredSkills: []string{"Jest", "Cypress", "Selenium", "Playwright", "Automation", "Python"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$55,000 - $75,000"},
			types.ExperienceMid:    {4, "$75,000 - $100,000"},
			types.ExperienceSenior: {6, "$100,000 - $130,000"},
			types.ExperienceLead:   {8, "$130,000 - $160,000"},
		},
		Description: "Ensure software quality through testing and automation",
		Popularity:  65,
	},
	"Product Manager": {
		Title:           "Product Manager",
		Category:        "Product Management",
		RequiredSkills:  []string{"Project Management", "Communication", "Strategic Planning"},
		PreferredSkills: []string{"Agile", "Scrum", "Leadership", "User Experience", "Analytics", "Roadmapping"},
		ExperienceLevels: map[types.ExperienceLevel]LevelProfile{
			types.ExperienceJunior: {2, "$80,000 - $100,000"},
			types.ExperienceMid:    {4, "$100,000 - $135,000"},
			types.ExperienceSenior: {6, "$135,000 - $170,000"},
			types.ExperienceLead:   {8, "$170,000 - $220,000"},
		},
		Description: "Guide product development and strategy from conception to launch",
		Popularity:  72,
	},
}

// SkillLearning is curated learning metadata for one skill
type SkillLearning struct {
	TimeToLearn string
	Resources   []string
}

// SkillLearningData maps well-known skills to learning time estimates and
// starter resources for the comparison checklist
var SkillLearningData = map[string]SkillLearning{
	"JavaScript": {"2-3 months", []string{"MDN Web Docs", "freeCodeCamp", "JavaScript.info"}},
	"TypeScript": {"3-4 weeks", []string{"TypeScript Handbook", "Execute Program", "Type Challenges"}},
	"React":      {"2-3 months", []string{"React Documentation", "React Tutorial", "Epic React"}},
	"Node.js":    {"1-2 months", []string{"Node.js Documentation", "Node.js Course", "Express.js Guide"}},
	"Python":     {"2-3 months", []string{"Python.org Tutorial", "Automate the Boring Stuff", "Python Crash Course"}},
	"AWS":        {"3-6 months", []string{"AWS Training", "Cloud Practitioner Course", "AWS Documentation"}},
	"Docker":     {"3-4 weeks", []string{"Docker Documentation", "Docker Mastery Course", "Docker Tutorial"}},
	"SQL":        {"4-6 weeks", []string{"W3Schools SQL", "SQL Bolt", "PostgreSQL Tutorial"}},
	"GraphQL":    {"2-3 weeks", []string{"GraphQL.org", "Apollo GraphQL Course", "The Road to GraphQL"}},
	"MongoDB":    {"2-3 weeks", []string{"MongoDB University", "MongoDB Documentation", "Mongoose Guide"}},
	"Next.js":    {"2-4 weeks", []string{"Next.js Documentation", "Vercel Learn", "Next.js Handbook"}},
	"Vue.js":     {"1-2 months", []string{"Vue.js Documentation", "Vue Mastery", "Vue School"}},
	"Angular":    {"2-3 months", []string{"Angular Documentation", "Angular University", "Angular Tutorial"}},
	"Kubernetes": {"2-4 months", []string{"Kubernetes Documentation", "CNCF Training", "Kubernetes Course"}},
	"Jest":       {"1-2 weeks", []string{"Jest Documentation", "Testing JavaScript", "Jest Tutorial"}},
	"Cypress":    {"1-2 weeks", []string{"Cypress Documentation", "Cypress Real World App", "Testing Course"}},
}

// DefaultLearningTime is used for checklist skills without curated metadata.
// Required skills get the longer estimate.
const (
	DefaultRequiredLearningTime  = "2-4 weeks"
	DefaultPreferredLearningTime = "1-3 weeks"
)

// DefaultLearningResources backs checklist skills without curated resources
var DefaultLearningResources = []string{"Official Documentation", "Online Tutorials", "Practice Projects"}

// AvailableJobs lists all comparable jobs sorted by popularity, most
// popular first
func AvailableJobs() []types.JobOption {
	jobs := make([]types.JobOption, 0, len(TargetJobs))
	for _, job := range TargetJobs {
		jobs = append(jobs, types.JobOption{
			Title:      job.Title,
			Category:   job.Category,
			Popularity: job.Popularity,
		})
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Popularity > jobs[j].Popularity
	})
	return jobs
}
