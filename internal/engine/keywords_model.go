package engine

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ModelExtractor is the primary extraction path. It runs the prose
// part-of-speech tagger to keep nouns and proper nouns and to assemble
// noun-phrase chunks, which recognizes multi-word technical terms the plain
// tokenizer cannot ("machine learning", "data science").
type ModelExtractor struct{}

// Name implements KeywordExtractor.
func (ModelExtractor) Name() string { return "model" }

// Extract implements KeywordExtractor. Tagging failures degrade to the
// fallback path for this call; Extract itself never fails.
func (m ModelExtractor) Extract(text string) map[string]int {
	normalized := NormalizeText(text)
	if normalized == "" {
		return map[string]int{}
	}

	doc, err := prose.NewDocument(normalized,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return FallbackExtractor{}.Extract(text)
	}

	terms := make(map[string]int)
	tokens := doc.Tokens()

	for _, tok := range tokens {
		if !isNounTag(tok.Tag) && !isAdjectiveTag(tok.Tag) {
			continue
		}
		word := cleanTerm(tok.Text)
		if word == "" || isStopWord(word) || isNumeric(word) {
			continue
		}
		terms[word]++
	}

	for _, chunk := range nounChunks(tokens) {
		terms[chunk]++
	}

	// The tagger is wrong often enough on bare tech names that curated
	// skills cannot depend on it; the vocabulary backstop restores them.
	addVocabularyTerms(terms, normalized)
	return terms
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isAdjectiveTag(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}

type chunkWord struct {
	text string
	noun bool
}

// nounChunks assembles multi-word noun phrases from consecutive adjective and
// noun tags ending on a noun, mirroring spaCy-style noun chunking with a
// plain tag scan.
func nounChunks(tokens []prose.Token) []string {
	var chunks []string
	var current []chunkWord

	flush := func() {
		// Drop trailing adjectives so every chunk ends on a noun.
		for len(current) > 0 && !current[len(current)-1].noun {
			current = current[:len(current)-1]
		}
		if len(current) >= 2 {
			words := make([]string, len(current))
			for i, w := range current {
				words[i] = w.text
			}
			chunks = append(chunks, strings.Join(words, " "))
		}
		current = current[:0]
	}

	for _, tok := range tokens {
		word := cleanTerm(tok.Text)
		if word != "" && !isStopWord(word) && (isNounTag(tok.Tag) || isAdjectiveTag(tok.Tag)) {
			current = append(current, chunkWord{text: word, noun: isNounTag(tok.Tag)})
			continue
		}
		flush()
	}
	flush()
	return chunks
}

func cleanTerm(raw string) string {
	w := strings.Trim(strings.ToLower(strings.TrimSpace(raw)), ".,;:!?()[]{}\"'`-")
	if len([]rune(w)) < 2 {
		return ""
	}
	return w
}
