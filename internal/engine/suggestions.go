package engine

import (
	"fmt"
	"strings"
)

const (
	maxSuggestedKeywords   = 5
	minDetailedResumeChars = 500
)

// suggestionInput carries everything the rule set needs. Keeping the rules in
// one ordered pass makes the output ordering part of the contract: identical
// inputs always produce the identical ordered slice.
type suggestionInput struct {
	Score       int
	MatchRate   float64
	Missing     []string
	SkillGaps   []string
	Sections    SectionFlags
	Experience  experienceDepth
	ResumeChars int
}

// generateSuggestions maps analysis signals to actionable, human-readable
// suggestions. Rules fire in a fixed order: overall verdict first, then
// section gaps, then keyword and skill guidance, then writing-quality advice.
func generateSuggestions(in suggestionInput) []string {
	suggestions := make([]string, 0, 8)

	switch tier := Tier(in.Score); tier {
	case TierExcellent:
		suggestions = append(suggestions, "Excellent match. Your resume aligns strongly with this role; a few extra keywords could push it further.")
	case TierGood:
		suggestions = append(suggestions, "Good alignment. A few targeted keyword additions will strengthen your application.")
	case TierFair:
		suggestions = append(suggestions, "Moderate match. Focus on incorporating more of the job's keywords and skills.")
	default:
		suggestions = append(suggestions, "Low compatibility. Consider substantial revisions, or whether this role matches your background.")
	}

	if missingSections := missingSectionNames(in.Sections); len(missingSections) > 0 {
		suggestions = append(suggestions,
			"Add the missing section(s): "+strings.Join(missingSections, ", ")+". Standard headings help ATS parsing.")
	}

	if len(in.Missing) > 0 {
		top := in.Missing
		if len(top) > maxSuggestedKeywords {
			top = top[:maxSuggestedKeywords]
		}
		suggestions = append(suggestions,
			"Incorporate these keywords from the job description: "+strings.Join(top, ", ")+".")
	}

	if len(in.SkillGaps) > 0 {
		top := in.SkillGaps
		if len(top) > maxSuggestedKeywords {
			top = top[:maxSuggestedKeywords]
		}
		suggestions = append(suggestions,
			"Add these technical skills if you have them: "+strings.Join(top, ", ")+".")
	}

	if in.MatchRate > 0 && in.MatchRate < 30 {
		suggestions = append(suggestions,
			fmt.Sprintf("Keyword overlap is only %.0f%%; this resume may not pass initial ATS screening.", in.MatchRate))
	}

	if in.Experience.Metrics < 3 {
		suggestions = append(suggestions,
			"Add quantifiable achievements with metrics (for example \"increased throughput by 40%\" or \"managed a team of 12\").")
	}
	if in.Experience.ActionVerbs < 10 {
		suggestions = append(suggestions,
			"Use more strong action verbs (led, built, improved, delivered) to describe your experience.")
	}
	if in.ResumeChars < minDetailedResumeChars {
		suggestions = append(suggestions,
			"Your resume is quite short. Expand on your accomplishments and responsibilities in each role.")
	}

	suggestions = append(suggestions,
		"Mirror the job description's terminology so exact phrases match.")

	return suggestions
}

func missingSectionNames(flags SectionFlags) []string {
	var names []string
	if !flags.Skills {
		names = append(names, "Skills")
	}
	if !flags.Experience {
		names = append(names, "Experience")
	}
	if !flags.Education {
		names = append(names, "Education")
	}
	return names
}
