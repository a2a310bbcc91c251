package engine

import "strings"

// KeywordExtractor produces the salient term set of a normalized text along
// with per-term counts. Implementations must accept any input, including the
// empty string, without failing.
type KeywordExtractor interface {
	// Name identifies the extraction path for logs and diagnostics.
	Name() string
	// Extract returns term -> occurrence count. Terms are lowercase,
	// stripped of punctuation, at least two runes, and never stop words or
	// pure numbers.
	Extract(text string) map[string]int
}

// FallbackExtractor is the deterministic path used when the linguistic model
// is unavailable: tokenization, stopword and numeric filtering, plus the
// curated-vocabulary backstop so terms like "machine learning" are still
// recognized.
type FallbackExtractor struct{}

// Name implements KeywordExtractor.
func (FallbackExtractor) Name() string { return "fallback" }

// Extract implements KeywordExtractor.
func (FallbackExtractor) Extract(text string) map[string]int {
	normalized := NormalizeText(text)
	terms := make(map[string]int)
	for _, tok := range Tokenize(normalized) {
		if isStopWord(tok) || isNumeric(tok) {
			continue
		}
		terms[tok]++
	}
	addVocabularyTerms(terms, normalized)
	return terms
}

// addVocabularyTerms backstops an extractor's term set with the curated skill
// vocabulary. Phrase entries ("machine learning", "ci/cd") are counted by
// word-boundary scan, so "java" does not fire inside "javascript". Single-word
// skills the extractor dropped (a tagger can mislabel "kubernetes" as a verb)
// are restored from the token stream; skills the extractor already counted are
// left untouched.
func addVocabularyTerms(terms map[string]int, normalized string) {
	padded := " " + normalized + " "
	for _, phrase := range phraseSkills {
		n := countPhrase(padded, phrase)
		if n > 0 {
			terms[phrase] += n
		}
	}

	missed := make(map[string]int)
	for _, tok := range Tokenize(normalized) {
		if technicalSkillSet[tok] {
			missed[tok]++
		}
	}
	for skill, n := range missed {
		if _, ok := terms[skill]; !ok {
			terms[skill] = n
		}
	}
}

func countPhrase(padded, phrase string) int {
	count := 0
	search := " " + phrase + " "
	for idx := strings.Index(padded, search); idx >= 0; {
		count++
		padded = padded[idx+len(search)-1:]
		idx = strings.Index(padded, search)
	}
	return count
}
