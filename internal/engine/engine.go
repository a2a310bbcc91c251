// Package engine scores how well a resume matches a job description and
// explains the gap. Analysis is a pure, stateless computation: identical
// inputs always produce an identical AnalysisResult, and concurrent calls
// need no coordination. The only process-wide state is the one-time keyword
// extractor selection (see SelectExtractor).
package engine

import (
	"fmt"
	"strings"
)

const minJobDescriptionRunes = 10

// ValidationError rejects caller-supplied text before any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AnalysisResult is the flat contract every rendering layer consumes
// unaltered. It is constructed once per request and never mutated after.
type AnalysisResult struct {
	ATSScore        int          `json:"ats_score"`
	MatchedKeywords []string     `json:"matched_keywords"`
	MissingKeywords []string     `json:"missing_keywords"`
	SectionAnalysis SectionFlags `json:"section_analysis"`
	Suggestions     []string     `json:"suggestions"`
	KeywordRate     float64      `json:"keyword_match_rate"`
	SkillGaps       []string     `json:"skill_gaps"`
}

// Analyzer runs the full matching pipeline. It holds no mutable state and is
// safe for concurrent use; one instance serves all requests.
type Analyzer struct {
	extractor KeywordExtractor
	weights   ScoreWeights
}

// NewAnalyzer builds an Analyzer with the given extraction path and score
// weights. Invalid weights fall back to the published 40/30/30 defaults.
func NewAnalyzer(extractor KeywordExtractor, weights ScoreWeights) *Analyzer {
	if extractor == nil {
		extractor = FallbackExtractor{}
	}
	if !weights.Valid() {
		weights = DefaultScoreWeights()
	}
	return &Analyzer{extractor: extractor, weights: weights}
}

// ExtractorName reports which extraction path this analyzer runs with.
func (a *Analyzer) ExtractorName() string {
	return a.extractor.Name()
}

// Analyze scores resumeText against jobDescription. It fails only on invalid
// input; every internal edge case (empty term sets, missing sections,
// zero-norm vectors) produces a defined value, because a real resume may
// legitimately lack any of these and must yield a low score plus suggestions,
// not an error.
func (a *Analyzer) Analyze(resumeText, jobDescription string) (*AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ValidationError{Field: "resume_text", Message: "resume text is empty"}
	}
	if len([]rune(strings.TrimSpace(jobDescription))) < minJobDescriptionRunes {
		return nil, &ValidationError{
			Field:   "job_description",
			Message: fmt.Sprintf("job description must be at least %d characters", minJobDescriptionRunes),
		}
	}

	resumeNorm := NormalizeText(resumeText)
	jobNorm := NormalizeText(jobDescription)

	resumeTerms := a.extractor.Extract(resumeNorm)
	jobTerms := a.extractor.Extract(jobNorm)

	matched, missing := matchKeywords(resumeTerms, jobTerms)
	rate := keywordMatchRate(len(matched), len(jobTerms))
	similarity := Similarity(resumeText, jobDescription)
	sections := DetectSections(resumeText)
	gaps := filterSkillGaps(missing)

	score := synthesizeScore(rate, similarity, sections, a.weights)

	suggestions := generateSuggestions(suggestionInput{
		Score:       score,
		MatchRate:   rate,
		Missing:     missing,
		SkillGaps:   gaps,
		Sections:    sections,
		Experience:  analyzeExperienceDepth(resumeNorm),
		ResumeChars: len(resumeText),
	})

	return &AnalysisResult{
		ATSScore:        score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		SectionAnalysis: sections,
		Suggestions:     suggestions,
		KeywordRate:     rate,
		SkillGaps:       gaps,
	}, nil
}
