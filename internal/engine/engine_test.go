package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

const sampleResume = `John Smith

Skills
Python, AWS, Docker, PostgreSQL, Git

Experience
Senior Software Engineer
Led a team of 4 engineers. Built and delivered Python services on AWS.
Improved deployment times by 60% with Docker. Reduced costs by $50k.

Education
BS Computer Science, State University`

const sampleJob = `We are seeking a Senior Software Engineer.

Requirements: strong Python skills, AWS cloud infrastructure, Docker
containers, and Kubernetes orchestration. PostgreSQL a plus.`

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(FallbackExtractor{}, DefaultScoreWeights())
}

func TestAnalyzeMatchingScenario(t *testing.T) {
	result, err := newTestAnalyzer().Analyze(sampleResume, sampleJob)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.ATSScore < 0 || result.ATSScore > 100 {
		t.Errorf("ats_score = %d, out of range", result.ATSScore)
	}
	for _, want := range []string{"python", "aws", "docker", "postgresql"} {
		if !contains(result.MatchedKeywords, want) {
			t.Errorf("matched_keywords missing %q: %v", want, result.MatchedKeywords)
		}
	}
	if !contains(result.MissingKeywords, "kubernetes") {
		t.Errorf("missing_keywords should include kubernetes: %v", result.MissingKeywords)
	}
	if !contains(result.SkillGaps, "kubernetes") {
		t.Errorf("skill_gaps should include kubernetes: %v", result.SkillGaps)
	}

	want := SectionFlags{Skills: true, Experience: true, Education: true}
	if result.SectionAnalysis != want {
		t.Errorf("section_analysis = %+v, want %+v", result.SectionAnalysis, want)
	}

	if result.KeywordRate <= 0 || result.KeywordRate > 100 {
		t.Errorf("keyword_match_rate = %v, out of range", result.KeywordRate)
	}
	if len(result.Suggestions) == 0 {
		t.Error("suggestions should never be empty")
	}
}

func TestAnalyzeMatchedMissingPartition(t *testing.T) {
	result, err := newTestAnalyzer().Analyze(sampleResume, sampleJob)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	seen := make(map[string]bool, len(result.MatchedKeywords))
	for _, kw := range result.MatchedKeywords {
		seen[kw] = true
	}
	for _, kw := range result.MissingKeywords {
		if seen[kw] {
			t.Errorf("keyword %q appears in both matched and missing", kw)
		}
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	for _, resume := range []string{"", "   ", "\n\t  \n"} {
		_, err := newTestAnalyzer().Analyze(resume, sampleJob)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("resume %q: error = %v, want ValidationError", resume, err)
		}
		if verr.Field != "resume_text" {
			t.Errorf("field = %q, want resume_text", verr.Field)
		}
	}
}

func TestAnalyzeShortJobDescription(t *testing.T) {
	_, err := newTestAnalyzer().Analyze(sampleResume, "too short")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "job_description" {
		t.Errorf("field = %q, want job_description", verr.Field)
	}

	// Exactly at the minimum once trimmed passes validation.
	if _, err := newTestAnalyzer().Analyze(sampleResume, "  python dev  "); err != nil {
		t.Errorf("10-character job description should pass validation: %v", err)
	}
}

func TestAnalyzeIdenticalTexts(t *testing.T) {
	text := "Skills: Python developer with AWS and Docker experience building services"
	result, err := newTestAnalyzer().Analyze(text, text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.KeywordRate != 100.0 {
		t.Errorf("keyword_match_rate = %v, want 100.0", result.KeywordRate)
	}
	if len(result.MissingKeywords) != 0 {
		t.Errorf("missing_keywords = %v, want empty", result.MissingKeywords)
	}
	if len(result.SkillGaps) != 0 {
		t.Errorf("skill_gaps = %v, want empty", result.SkillGaps)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := newTestAnalyzer()
	first, err := a.Analyze(sampleResume, sampleJob)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := a.Analyze(sampleResume, sampleJob)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		nextJSON, err := json.Marshal(next)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(firstJSON) != string(nextJSON) {
			t.Fatalf("results differ across runs:\n%s\n%s", firstJSON, nextJSON)
		}
	}
}

func TestAnalyzeJSONShape(t *testing.T) {
	result, err := newTestAnalyzer().Analyze(sampleResume, sampleJob)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"ats_score", "matched_keywords", "missing_keywords",
		"section_analysis", "suggestions", "keyword_match_rate", "skill_gaps",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("response missing field %q", key)
		}
	}
}

func TestAnalyzeNoOverlap(t *testing.T) {
	result, err := newTestAnalyzer().Analyze(
		"Skills: gardening, cooking, painting landscapes",
		"Requirements: kubernetes, terraform, golang microservices",
	)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.MatchedKeywords) != 0 {
		t.Errorf("matched_keywords = %v, want empty", result.MatchedKeywords)
	}
	if result.KeywordRate != 0.0 {
		t.Errorf("keyword_match_rate = %v, want 0", result.KeywordRate)
	}
	if result.ATSScore >= 40 {
		t.Errorf("ats_score = %d for disjoint documents, want Needs Work tier", result.ATSScore)
	}
}

func TestAnalyzeModelPathScenario(t *testing.T) {
	// The canonical matching scenario must hold on the model path too: the
	// tagger's view of single tech names varies, so the gap report cannot
	// depend on it.
	a := NewAnalyzer(ModelExtractor{}, DefaultScoreWeights())
	result, err := a.Analyze(sampleResume, sampleJob)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for _, want := range []string{"python", "aws", "docker", "postgresql"} {
		if !contains(result.MatchedKeywords, want) {
			t.Errorf("matched_keywords missing %q: %v", want, result.MatchedKeywords)
		}
	}
	if !contains(result.MissingKeywords, "kubernetes") {
		t.Errorf("missing_keywords should include kubernetes: %v", result.MissingKeywords)
	}
	if !contains(result.SkillGaps, "kubernetes") {
		t.Errorf("skill_gaps should include kubernetes: %v", result.SkillGaps)
	}
	if result.KeywordRate >= 100.0 {
		t.Errorf("keyword_match_rate = %v, want < 100 with kubernetes unmatched", result.KeywordRate)
	}
}

func TestAnalyzeModelAndFallbackBothWellFormed(t *testing.T) {
	for _, extractor := range []KeywordExtractor{FallbackExtractor{}, ModelExtractor{}} {
		a := NewAnalyzer(extractor, DefaultScoreWeights())
		result, err := a.Analyze(sampleResume, sampleJob)
		if err != nil {
			t.Fatalf("%s: Analyze: %v", extractor.Name(), err)
		}
		if result.ATSScore < 0 || result.ATSScore > 100 {
			t.Errorf("%s: ats_score = %d, out of range", extractor.Name(), result.ATSScore)
		}
		if len(result.Suggestions) == 0 {
			t.Errorf("%s: suggestions empty", extractor.Name())
		}
		if !contains(result.MatchedKeywords, "python") {
			t.Errorf("%s: matched_keywords should include python: %v", extractor.Name(), result.MatchedKeywords)
		}
	}
}

func TestNewAnalyzerDefaults(t *testing.T) {
	a := NewAnalyzer(nil, ScoreWeights{Keyword: 2, Similarity: 2, Section: 2})
	if a.extractor == nil {
		t.Fatal("nil extractor should default to fallback")
	}
	if a.weights != DefaultScoreWeights() {
		t.Errorf("invalid weights should fall back to defaults, got %+v", a.weights)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
