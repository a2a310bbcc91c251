package engine

import "math"

// Similarity computes the TF-IDF cosine similarity between two texts over
// their two-document corpus. The vocabulary is the union of both token sets;
// weighting follows the smoothed formula idf = ln((1+n)/(1+df)) + 1 with n=2
// so terms shared by both documents keep a nonzero weight and identical
// documents score exactly 1. The result is deterministic and stateless: idf
// is computed fresh for each pair, never across requests.
func Similarity(a, b string) float64 {
	tokensA := Tokenize(NormalizeText(a))
	tokensB := Tokenize(NormalizeText(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	tfA := termFrequencies(tokensA)
	tfB := termFrequencies(tokensB)

	vocab := make(map[string]struct{}, len(tfA)+len(tfB))
	for term := range tfA {
		vocab[term] = struct{}{}
	}
	for term := range tfB {
		vocab[term] = struct{}{}
	}

	var dot, normA, normB float64
	for term := range vocab {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/(1.0+float64(df))) + 1.0

		wA := float64(tfA[term]) * idf
		wB := float64(tfB[term]) * idf
		dot += wA * wB
		normA += wA * wA
		normB += wB * wB
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Cosine of nonnegative vectors lives in [0,1]; clamp float drift.
	return math.Min(1.0, math.Max(0.0, sim))
}

func termFrequencies(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}
