package engine

import (
	"math"
	"sort"
)

// ScoreWeights holds the blend applied by the score synthesizer. The values
// are configuration, not algorithm: they can be tuned per deployment, but the
// defaults reproduce the published formula and must sum to 1.
type ScoreWeights struct {
	Keyword    float64
	Similarity float64
	Section    float64
}

// DefaultScoreWeights is the fixed 40/30/30 blend.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Keyword: 0.40, Similarity: 0.30, Section: 0.30}
}

// Valid reports whether the weights are nonnegative and sum to 1 within
// float tolerance.
func (w ScoreWeights) Valid() bool {
	if w.Keyword < 0 || w.Similarity < 0 || w.Section < 0 {
		return false
	}
	return math.Abs(w.Keyword+w.Similarity+w.Section-1.0) < 1e-9
}

// Score tiers. Boundaries are inclusive on the lower bound of each tier.
const (
	TierExcellent = "Excellent"
	TierGood      = "Good"
	TierFair      = "Fair"
	TierNeedsWork = "Needs Work"
)

// tierBoundaries maps each tier to its inclusive lower bound, ordered from
// highest to lowest.
var tierBoundaries = []struct {
	floor int
	name  string
}{
	{80, TierExcellent},
	{60, TierGood},
	{40, TierFair},
	{0, TierNeedsWork},
}

// Tier classifies a 0-100 score.
func Tier(score int) string {
	for _, t := range tierBoundaries {
		if score >= t.floor {
			return t.name
		}
	}
	return TierNeedsWork
}

// matchKeywords partitions the job term set against the resume term set.
// matched ∪ missing equals the job term set and the two never overlap. Both
// lists are ordered by job-description frequency (descending), ties broken
// alphabetically, so output is stable for identical inputs.
func matchKeywords(resumeTerms, jobTerms map[string]int) (matched, missing []string) {
	matched = make([]string, 0, len(jobTerms))
	missing = make([]string, 0, len(jobTerms))
	for term := range jobTerms {
		if _, ok := resumeTerms[term]; ok {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	sortByFrequency(matched, jobTerms)
	sortByFrequency(missing, jobTerms)
	return matched, missing
}

func sortByFrequency(terms []string, freq map[string]int) {
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
}

// synthesizeScore combines the three signals into the 0-100 ats score.
// keywordRate is a percentage (0-100); similarity and sections are 0-1.
func synthesizeScore(keywordRate, similarity float64, flags SectionFlags, w ScoreWeights) int {
	blended := keywordRate/100.0*w.Keyword +
		similarity*w.Similarity +
		sectionScore(flags)*w.Section
	score := int(math.Round(blended * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// keywordMatchRate is the percentage of job keywords found in the resume,
// rounded to two decimals; zero when the job has no keywords.
func keywordMatchRate(matchedCount, jobKeywordCount int) float64 {
	if jobKeywordCount == 0 {
		return 0.0
	}
	rate := float64(matchedCount) / float64(jobKeywordCount) * 100.0
	return math.Round(rate*100) / 100
}
