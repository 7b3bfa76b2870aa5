package catalog

// Companies is the pool of employers used to enrich role suggestions
var Companies = []string{
	"Google", "Meta", "Apple", "Microsoft", "Amazon", "Netflix", "Spotify", "Stripe",
	"Shopify", "Airbnb", "Uber", "Lyft", "Twitter", "LinkedIn", "Dropbox", "Slack",
	"Zoom", "Adobe", "Salesforce", "Oracle", "IBM", "Intel", "NVIDIA", "Tesla",
	"TechFlow Inc.", "InnovateCorp", "DataDriven LLC", "CloudFirst Systems",
	"DevOps Pro", "StartupHub", "ScaleUp Technologies", "NextGen Solutions", "DigitalEdge Co.",
}

// Locations is the pool of job locations used to enrich role suggestions
var Locations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX", "Boston, MA",
	"Los Angeles, CA", "Chicago, IL", "Denver, CO", "Atlanta, GA", "Remote",
	"Toronto, Canada", "London, UK", "Berlin, Germany", "Amsterdam, Netherlands",
}

// HighDemandSkills are the skills currently in highest market demand
var HighDemandSkills = []string{
	"React", "TypeScript", "Python", "AWS", "Kubernetes", "Docker", "GraphQL",
	"Next.js", "Node.js", "PostgreSQL", "Redis", "Terraform", "CI/CD",
	"Machine Learning", "Data Analysis", "Cybersecurity",
}

// EmergingTrends are the industry trends matched against a candidate's skills
var EmergingTrends = []string{
	"AI/ML Integration", "Cloud-Native Development", "DevOps Automation",
	"Remote-First Culture", "Microservices Architecture", "Data Privacy",
	"Sustainability Tech", "Edge Computing", "Cybersecurity Focus",
}
