// Package catalog holds the static reference data the analysis pipeline
// runs against: skill vocabularies, job role profiles, learning metadata
// and market data. Everything here is immutable after process start and
// shared read-only across calls.
package catalog

// SkillCategory is one named group of skill labels. Categories keep their
// declaration order so extraction output is deterministic.
type SkillCategory struct {
	Name   string
	Skills []string
}

// HardSkills is the categorized hard-skill vocabulary
var HardSkills = []SkillCategory{
	{"Programming Languages", []string{
		"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "C", "Go", "Rust", "Swift", "Kotlin",
		"PHP", "Ruby", "Scala", "R", "MATLAB", "Perl", "Objective-C", "Dart", "Elixir", "Clojure",
	}},
	{"Frontend Technologies", []string{
		"React", "Vue.js", "Angular", "Next.js", "Nuxt.js", "Svelte", "jQuery", "Bootstrap", "Tailwind CSS",
		"Material-UI", "Chakra UI", "HTML", "CSS", "SASS", "LESS", "Webpack", "Vite", "Parcel",
	}},
	{"Backend Technologies", []string{
		"Node.js", "Express.js", "Nest.js", "Django", "Flask", "FastAPI", "Spring", "ASP.NET", "Laravel",
		"Ruby on Rails", "Gin", "Echo", "Fiber", "Koa.js", "Hapi.js",
	}},
	{"Databases", []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "SQL Server", "MariaDB",
		"DynamoDB", "Cassandra", "Neo4j", "InfluxDB", "CouchDB", "Firebase", "Supabase",
	}},
	{"Cloud Platforms", []string{
		"AWS", "Azure", "Google Cloud", "GCP", "Heroku", "Netlify", "Vercel", "DigitalOcean",
		"Linode", "Vultr", "IBM Cloud", "Oracle Cloud",
	}},
	{"DevOps & Tools", []string{
		"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions", "CircleCI", "Travis CI",
		"Terraform", "Ansible", "Puppet", "Chef", "Vagrant", "Nginx", "Apache", "Linux", "Ubuntu",
	}},
	{"Databases & Query Languages", []string{
		"SQL", "NoSQL", "GraphQL", "REST API", "SOAP", "gRPC", "JSON", "XML", "YAML",
	}},
	{"Testing", []string{
		"Jest", "Mocha", "Chai", "Cypress", "Selenium", "Playwright", "Puppeteer", "JUnit",
		"PyTest", "RSpec", "PHPUnit", "Vitest", "Testing Library",
	}},
	{"Version Control", []string{
		"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Mercurial",
	}},
	{"Mobile Development", []string{
		"React Native", "Flutter", "Ionic", "Xamarin", "Swift", "Kotlin", "Java Android",
	}},
	{"Data Science & Analytics", []string{
		"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "Jupyter",
		"Tableau", "Power BI", "Excel", "SPSS", "SAS", "Apache Spark", "Hadoop",
	}},
	{"Design & UI/UX", []string{
		"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator", "InVision", "Zeplin",
		"Framer", "Principle", "Wireframing", "Prototyping",
	}},
}

// SoftSkills is the categorized soft-skill vocabulary
var SoftSkills = []SkillCategory{
	{"Communication", []string{
		"Communication", "Public Speaking", "Presentation", "Writing", "Documentation",
		"Technical Writing", "Verbal Communication", "Written Communication", "Storytelling",
	}},
	{"Leadership", []string{
		"Leadership", "Team Leadership", "Project Management", "People Management",
		"Mentoring", "Coaching", "Strategic Planning", "Vision", "Delegation",
	}},
	{"Collaboration", []string{
		"Teamwork", "Collaboration", "Cross-functional", "Stakeholder Management",
		"Partnership", "Networking", "Relationship Building", "Interpersonal Skills",
	}},
	{"Problem Solving", []string{
		"Problem Solving", "Critical Thinking", "Analytical", "Troubleshooting",
		"Debugging", "Root Cause Analysis", "Decision Making", "Strategic Thinking",
	}},
	{"Adaptability", []string{
		"Adaptability", "Flexibility", "Learning Agility", "Change Management",
		"Innovation", "Creativity", "Open-minded", "Resilience",
	}},
	{"Project Management", []string{
		"Project Management", "Agile", "Scrum", "Kanban", "Waterfall", "Planning",
		"Organization", "Time Management", "Prioritization", "Resource Management",
	}},
	{"Quality & Process", []string{
		"Quality Assurance", "Attention to Detail", "Process Improvement",
		"Best Practices", "Standards", "Compliance", "Optimization",
	}},
	{"Customer Focus", []string{
		"Customer Service", "Client Relations", "User Experience", "Customer Success",
		"Business Requirements", "Stakeholder Engagement",
	}},
}
