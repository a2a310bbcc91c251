package engine

import "testing"

func TestFallbackExtractorFiltersNoise(t *testing.T) {
	terms := FallbackExtractor{}.Extract("We are looking for a Python developer with 5 years of experience in 2024")

	for _, banned := range []string{"we", "are", "for", "with", "of", "in", "looking", "experience", "years", "5", "2024"} {
		if _, ok := terms[banned]; ok {
			t.Errorf("term set should not contain %q", banned)
		}
	}
	if terms["python"] == 0 {
		t.Error("expected python in term set")
	}
	if terms["developer"] == 0 {
		t.Error("expected developer in term set")
	}
}

func TestFallbackExtractorCounts(t *testing.T) {
	terms := FallbackExtractor{}.Extract("python python java")
	if terms["python"] != 2 {
		t.Errorf("python count = %d, want 2", terms["python"])
	}
	if terms["java"] != 1 {
		t.Errorf("java count = %d, want 1", terms["java"])
	}
}

func TestFallbackExtractorPhrases(t *testing.T) {
	terms := FallbackExtractor{}.Extract("Built machine learning pipelines and deep learning models")
	if terms["machine learning"] == 0 {
		t.Error("expected phrase \"machine learning\" in term set")
	}
	if terms["deep learning"] == 0 {
		t.Error("expected phrase \"deep learning\" in term set")
	}
}

func TestFallbackExtractorPhraseWordBoundaries(t *testing.T) {
	// "react native" must not fire inside "react natively distinct" style
	// substrings without boundaries on both sides.
	terms := FallbackExtractor{}.Extract("proactive nativespeaker")
	if _, ok := terms["react native"]; ok {
		t.Error("phrase matched inside larger words")
	}
}

func TestFallbackExtractorEmpty(t *testing.T) {
	terms := FallbackExtractor{}.Extract("")
	if len(terms) != 0 {
		t.Errorf("expected empty term set, got %v", terms)
	}
}

func TestExtractorNames(t *testing.T) {
	if got := (FallbackExtractor{}).Name(); got != "fallback" {
		t.Errorf("FallbackExtractor.Name() = %q", got)
	}
	if got := (ModelExtractor{}).Name(); got != "model" {
		t.Errorf("ModelExtractor.Name() = %q", got)
	}
}

func TestFallbackExtractorSlashSkill(t *testing.T) {
	terms := FallbackExtractor{}.Extract("Owns the CI/CD pipelines for the team")
	if terms["ci/cd"] == 0 {
		t.Errorf("expected ci/cd in term set, got %v", terms)
	}
}

func TestAddVocabularyTermsKeepsExtractorCounts(t *testing.T) {
	// A skill the extractor already counted must not be overwritten by the
	// vocabulary backstop.
	terms := map[string]int{"python": 3}
	addVocabularyTerms(terms, "python python")
	if terms["python"] != 3 {
		t.Errorf("python count = %d, want 3", terms["python"])
	}
}

func TestAddVocabularyTermsRestoresDroppedSkills(t *testing.T) {
	terms := map[string]int{}
	addVocabularyTerms(terms, "kubernetes orchestration with kubernetes and docker")
	if terms["kubernetes"] != 2 {
		t.Errorf("kubernetes count = %d, want 2", terms["kubernetes"])
	}
	if terms["docker"] != 1 {
		t.Errorf("docker count = %d, want 1", terms["docker"])
	}
	if _, ok := terms["orchestration"]; ok {
		t.Error("backstop restores curated skills only, not arbitrary tokens")
	}
}

func TestModelExtractorRecognizesCuratedPhrases(t *testing.T) {
	// The tagger's output varies by model version; the curated phrase scan is
	// the guaranteed floor either path must provide.
	terms := ModelExtractor{}.Extract("Experienced in machine learning and data science with Python")
	if terms["machine learning"] == 0 {
		t.Error("expected phrase \"machine learning\" in term set")
	}
	if terms["data science"] == 0 {
		t.Error("expected phrase \"data science\" in term set")
	}
}

func TestModelExtractorKeepsSingleWordSkills(t *testing.T) {
	// The tagger labels bare tech names unpredictably on lowercased text
	// ("kubernetes" can come back as a verb); curated skills must survive
	// regardless of the tag.
	terms := ModelExtractor{}.Extract("Requirements: Docker containers and Kubernetes orchestration")
	if terms["kubernetes"] == 0 {
		t.Errorf("expected kubernetes in term set, got %v", terms)
	}
	if terms["docker"] == 0 {
		t.Errorf("expected docker in term set, got %v", terms)
	}
}

func TestModelExtractorEmpty(t *testing.T) {
	terms := ModelExtractor{}.Extract("   ")
	if len(terms) != 0 {
		t.Errorf("expected empty term set, got %v", terms)
	}
}
