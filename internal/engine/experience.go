package engine

import "regexp"

// experienceDepth summarizes how concretely the resume describes its
// experience. It influences suggestions only, never the ats score blend.
type experienceDepth struct {
	ActionVerbs int
	Leadership  int
	Metrics     int
}

// actionVerbs indicate strong experience descriptions, grouped so leadership
// signals can be reported separately.
var actionVerbs = []struct {
	category string
	verbs    []string
}{
	{"leadership", []string{
		"led", "managed", "directed", "supervised", "coordinated", "headed",
		"spearheaded", "orchestrated",
	}},
	{"achievement", []string{
		"achieved", "accomplished", "delivered", "exceeded", "surpassed",
		"completed", "attained",
	}},
	{"improvement", []string{
		"improved", "enhanced", "optimized", "increased", "reduced",
		"streamlined", "accelerated", "maximized",
	}},
	{"creation", []string{
		"created", "developed", "designed", "built", "implemented",
		"established", "launched", "pioneered",
	}},
	{"collaboration", []string{
		"collaborated", "partnered", "facilitated", "contributed",
		"supported", "mentored",
	}},
}

// metricPatterns match quantifiable results: percentages, money, large
// numbers, multipliers, time spans, and scale.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+[kKmMbB]?`),
	regexp.MustCompile(`\d+[kKmMbB]\+?\b`),
	regexp.MustCompile(`\d+x\b`),
	regexp.MustCompile(`\d+\s*(?:years?|months?|weeks?)\b`),
	regexp.MustCompile(`\d+\s*(?:users?|customers?|clients?|people|employees|engineers)\b`),
}

var verbBoundary = regexp.MustCompile(`[a-z]+`)

// analyzeExperienceDepth counts action verbs and quantifiable metrics in the
// normalized resume text.
func analyzeExperienceDepth(normalized string) experienceDepth {
	verbSet := make(map[string]string)
	for _, group := range actionVerbs {
		for _, v := range group.verbs {
			verbSet[v] = group.category
		}
	}

	var depth experienceDepth
	for _, word := range verbBoundary.FindAllString(normalized, -1) {
		category, ok := verbSet[word]
		if !ok {
			continue
		}
		depth.ActionVerbs++
		if category == "leadership" {
			depth.Leadership++
		}
	}
	for _, re := range metricPatterns {
		depth.Metrics += len(re.FindAllString(normalized, -1))
	}
	return depth
}
