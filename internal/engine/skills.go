package engine

import "strings"

// technicalSkills is the curated skill vocabulary. It distinguishes
// actionable technical terms ("kubernetes") from generic nouns when filtering
// skill gaps, and supplies the multi-word phrases the fallback extractor can
// recognize without a linguistic model.
var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "golang", "go",
	"rust", "scala", "kotlin", "swift", "ruby", "php", "perl", "matlab",
	"julia", "dart", "objective-c",

	// Web frontend
	"react", "angular", "vue", "svelte", "next.js", "nuxt", "jquery", "html",
	"html5", "css", "css3", "sass", "scss", "tailwind", "bootstrap",
	"webpack", "vite", "material ui",

	// Web backend
	"node.js", "nodejs", "express", "django", "flask", "fastapi", "spring",
	"spring boot", "rails", "laravel", "nestjs", "asp.net", ".net",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "ionic",
	"swiftui",

	// Databases
	"sql", "nosql", "mysql", "postgresql", "postgres", "mongodb",
	"cassandra", "redis", "elasticsearch", "dynamodb", "oracle", "mariadb",
	"couchdb", "neo4j", "sqlite",

	// Cloud
	"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
	"lambda", "ec2", "s3", "cloudfront", "cloud functions", "serverless",

	// DevOps
	"docker", "kubernetes", "k8s", "jenkins", "gitlab ci", "github actions",
	"terraform", "ansible", "puppet", "chef", "ci/cd", "devops",
	"continuous integration", "continuous deployment", "helm", "prometheus",
	"grafana",

	// Data science
	"machine learning", "deep learning", "artificial intelligence",
	"data science", "data analysis", "tensorflow", "pytorch", "keras",
	"scikit-learn", "pandas", "numpy", "scipy", "jupyter", "nlp",
	"computer vision", "neural networks", "data visualization", "statistics",

	// Tools
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "postman",
	"swagger", "figma", "linux", "bash", "kafka", "rabbitmq", "grpc",

	// Methodologies
	"agile", "scrum", "kanban", "tdd", "bdd", "microservices", "rest",
	"restful", "graphql", "api", "soap", "mvc", "oop", "design patterns",
}

var technicalSkillSet = buildSkillSet()

// phraseSkills holds the vocabulary entries the tokenizer can never produce
// as a single token: multi-word phrases and slash-joined terms like "ci/cd".
// They are found by scanning the normalized text instead.
var phraseSkills = buildPhraseSkills()

func buildSkillSet() map[string]bool {
	set := make(map[string]bool, len(technicalSkills))
	for _, s := range technicalSkills {
		set[s] = true
	}
	return set
}

func buildPhraseSkills() []string {
	var phrases []string
	for _, s := range technicalSkills {
		if strings.ContainsAny(s, " /") {
			phrases = append(phrases, s)
		}
	}
	return phrases
}

// IsTechnicalSkill reports whether a term belongs to the curated skill
// vocabulary.
func IsTechnicalSkill(term string) bool {
	return technicalSkillSet[strings.ToLower(strings.TrimSpace(term))]
}

// filterSkillGaps restricts missing keywords to curated technical skills,
// preserving input order.
func filterSkillGaps(missing []string) []string {
	gaps := make([]string, 0, len(missing))
	for _, kw := range missing {
		if IsTechnicalSkill(kw) {
			gaps = append(gaps, kw)
		}
	}
	return gaps
}
