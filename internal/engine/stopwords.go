package engine

// stopWords filters articles, prepositions, pronouns, and common auxiliaries
// that add noise to keyword matching.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "should": true, "could": true, "may": true, "might": true,
	"must": true, "can": true, "that": true, "this": true, "these": true,
	"those": true, "which": true, "who": true, "whom": true, "what": true,
	"where": true, "when": true, "why": true, "how": true, "as": true,
	"from": true, "by": true, "up": true, "about": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "between": true, "under": true,
	"again": true, "further": true, "then": true, "once": true, "you": true,
	"your": true, "yours": true, "we": true, "our": true, "ours": true,
	"they": true, "their": true, "them": true, "it": true, "its": true,
	"he": true, "she": true, "his": true, "her": true, "not": true,
	"no": true, "nor": true, "so": true, "than": true, "too": true,
	"very": true, "just": true, "also": true, "such": true, "each": true,
	"all": true, "any": true, "both": true, "more": true, "most": true,
	"other": true, "some": true, "own": true, "same": true, "if": true,
	"while": true, "out": true, "off": true, "over": true, "here": true,
	"there": true, "etc": true, "eg": true, "ie": true, "per": true,
	"via": true, "within": true, "including": true, "plus": true,
	"strong": true, "ability": true, "able": true, "well": true,
	"new": true, "using": true, "used": true, "use": true, "work": true,
	"working": true, "years": true, "year": true, "experience": true,
	"seeking": true, "required": true, "preferred": true, "looking": true,
}

// isStopWord reports whether a token should be excluded from term sets.
func isStopWord(token string) bool {
	return stopWords[token]
}
