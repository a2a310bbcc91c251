package engine

import "strings"

// SectionFlags reports which canonical resume sections were found. The three
// flags are computed independently of each other.
type SectionFlags struct {
	Skills     bool `json:"skills"`
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
}

// sectionAliases is the heading-pattern rule table. Matching is
// case-insensitive substring matching against the whole text, not NLP; the
// alias lists are the enumerable, testable rule set.
var sectionAliases = []struct {
	name    string
	aliases []string
}{
	{
		name: "skills",
		aliases: []string{
			"skills", "technical skills", "core competencies", "expertise",
			"proficiencies", "technologies", "technical proficiencies",
			"key skills",
		},
	},
	{
		name: "experience",
		aliases: []string{
			"experience", "work history", "employment",
			"professional experience", "work experience", "career history",
			"employment history", "professional background",
		},
	},
	{
		name: "education",
		aliases: []string{
			"education", "academic", "degree", "university", "college",
			"qualification", "academic background", "certifications",
			"training",
		},
	},
}

// DetectSections scans resume text for recognizable section headings. It is
// a pure function of its input; a missing section is a defined false, never
// an error.
func DetectSections(resumeText string) SectionFlags {
	lower := strings.ToLower(resumeText)

	var flags SectionFlags
	for _, rule := range sectionAliases {
		present := false
		for _, alias := range rule.aliases {
			if strings.Contains(lower, alias) {
				present = true
				break
			}
		}
		switch rule.name {
		case "skills":
			flags.Skills = present
		case "experience":
			flags.Experience = present
		case "education":
			flags.Education = present
		}
	}
	return flags
}

// sectionScore is the fraction of the three canonical sections present.
func sectionScore(flags SectionFlags) float64 {
	count := 0
	if flags.Skills {
		count++
	}
	if flags.Experience {
		count++
	}
	if flags.Education {
		count++
	}
	return float64(count) / 3.0
}
