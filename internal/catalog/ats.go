package catalog

// ATS vocabularies. All terms are stored lowercase because the matcher
// lowercases both texts before scanning.

// TechnicalSkillTerms are the technical skills scanned during ATS matching
var TechnicalSkillTerms = []string{
	"javascript", "typescript", "python", "java", "react", "angular", "vue", "node.js",
	"express", "spring", "django", "flask", "sql", "mongodb", "postgresql", "aws",
	"azure", "docker", "kubernetes", "git", "html", "css", "sass", "tailwind",
	"webpack", "vite", "jest", "cypress", "selenium", "agile", "scrum", "ci/cd",
	"devops", "machine learning", "ai", "data science", "analytics", "tableau",
	"power bi", "excel", "figma", "sketch", "photoshop", "redux", "graphql",
	"rest api", "microservices", "terraform", "jenkins", "github", "linux",
}

// SoftSkillTerms are the soft skills scanned during ATS matching
var SoftSkillTerms = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"creative", "adaptable", "organized", "detail-oriented", "collaborative",
	"innovative", "strategic", "mentoring", "project management", "time management",
	"critical thinking", "presentation", "negotiation", "customer service",
	"conflict resolution", "decision making", "cross-functional", "stakeholder management",
}

// IndustryTerms are industry and domain keywords. The matcher scans
// technical and soft terms only and never consults this list; adding it
// to the scan would shift every skill-overlap score.
var IndustryTerms = []string{
	"fintech", "healthcare", "e-commerce", "saas", "b2b", "b2c", "startup",
	"enterprise", "mobile", "web development", "frontend", "backend", "full stack",
	"data engineering", "cybersecurity", "blockchain", "iot", "ar/vr", "cloud computing",
}

// JobTitleTerms are the job titles recognized in either text
var JobTitleTerms = []string{
	"software engineer", "frontend developer", "backend developer", "full stack developer",
	"data scientist", "product manager", "ui/ux designer", "devops engineer",
	"senior developer", "lead developer", "engineering manager", "tech lead",
	"software architect", "qa engineer", "data analyst", "machine learning engineer",
	"cloud engineer", "mobile developer", "react developer", "python developer",
}

// ActionVerbs are the impact verbs counted in the detailed keyword breakdown
var ActionVerbs = []string{
	"developed", "created", "built", "designed", "implemented", "managed", "led",
	"optimized", "improved", "increased", "reduced", "delivered", "architected",
	"collaborated", "mentored", "analyzed", "automated", "streamlined", "enhanced",
	"maintained", "deployed", "tested", "debugged", "integrated", "coordinated",
}

// TechnicalNouns are the technical domain nouns counted in the detailed
// keyword breakdown
var TechnicalNouns = []string{
	"application", "system", "database", "api", "framework", "library", "platform",
	"infrastructure", "architecture", "deployment", "testing", "performance",
	"security", "scalability", "algorithm", "data structure", "optimization",
	"integration", "automation", "monitoring", "analytics", "dashboard",
}

// HighValueTerms get priority when ranking matched and missing nouns
var HighValueTerms = map[string]bool{
	"react": true, "python": true, "javascript": true, "typescript": true,
	"aws": true, "docker": true, "kubernetes": true, "node.js": true,
	"express": true, "mongodb": true, "postgresql": true, "graphql": true,
	"rest": true, "api": true, "microservices": true, "devops": true,
	"ci/cd": true, "terraform": true, "jenkins": true, "git": true,
	"agile": true, "scrum": true, "machine learning": true, "data science": true,
	"artificial intelligence": true,
}

// CommonTechPhrases are multi-word phrases matched by substring in both texts
var CommonTechPhrases = []string{
	"machine learning", "data science", "web development", "mobile development",
	"cloud computing", "software engineering", "project management", "team leadership",
	"problem solving", "code review", "unit testing", "integration testing",
	"continuous integration", "continuous deployment", "agile development",
	"scrum methodology", "rest api", "graphql api", "database design",
	"system architecture", "user experience", "user interface",
	"artificial intelligence", "natural language processing", "computer vision",
	"deep learning", "neural networks", "distributed systems", "event driven",
	"microservices architecture", "serverless computing", "edge computing",
	"devops practices", "infrastructure as code", "gitops", "observability",
}

// KeywordStopWords are filler words excluded from keyword frequency analysis
var KeywordStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "will": true,
}

// DetailedStopWords extends the keyword stop list for the detailed
// noun and verb breakdown
var DetailedStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"can": true, "must": true, "shall": true, "this": true, "that": true,
}

// TitleRelations maps a recognized job title to titles considered adjacent
// for partial alignment credit
var TitleRelations = map[string][]string{
	"software engineer":    {"developer", "programmer", "software developer"},
	"frontend developer":   {"ui developer", "web developer", "react developer"},
	"backend developer":    {"server developer", "api developer", "python developer"},
	"full stack developer": {"software engineer", "web developer"},
	"data scientist":       {"data analyst", "machine learning engineer"},
	"devops engineer":      {"cloud engineer", "infrastructure engineer"},
}

// TechnicalSkillSuggestions are curated resume tips for well-known missing
// technical skills
var TechnicalSkillSuggestions = map[string][]string{
	"react":      {"Add React projects with hooks and context", "Mention component libraries and state management", "Include React performance optimization"},
	"python":     {"Include Python automation and data analysis projects", "Highlight specific libraries (pandas, numpy, django)", "Add machine learning or web scraping examples"},
	"aws":        {"List specific AWS services (EC2, S3, Lambda, RDS)", "Mention cloud architecture and infrastructure as code", "Include cost optimization and security practices"},
	"docker":     {"Describe containerization and orchestration projects", "Include Docker Compose and multi-stage builds", "Add container security and optimization"},
	"kubernetes": {"Include container orchestration experience", "Mention helm charts and cluster management", "Add monitoring and scaling strategies"},
	"typescript": {"Show TypeScript project examples", "Mention type safety and developer experience improvements", "Include advanced TypeScript patterns"},
	"graphql":    {"Add GraphQL API development experience", "Mention schema design and resolver optimization", "Include client-side GraphQL usage"},
}

// SoftSkillSuggestions are curated resume tips for well-known missing
// soft skills
var SoftSkillSuggestions = map[string][]string{
	"leadership":         {"Quantify team size and project outcomes", "Include mentoring and coaching achievements", "Show cross-functional collaboration results"},
	"communication":      {"Highlight presentation and documentation skills", "Include stakeholder management examples", "Show technical writing and knowledge sharing"},
	"problem solving":    {"Quantify problems solved with metrics", "Describe analytical frameworks used", "Include process improvement achievements"},
	"project management": {"Show project delivery success rates", "Include budget and timeline management", "Mention agile/scrum facilitation experience"},
}
