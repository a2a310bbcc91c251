package engine

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsTechnicalSkill(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"python", true},
		{"Python", true},
		{" kubernetes ", true},
		{"machine learning", true},
		{"c++", true},
		{"communication", false},
		{"team", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTechnicalSkill(tt.term); got != tt.want {
			t.Errorf("IsTechnicalSkill(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestFilterSkillGapsPreservesOrder(t *testing.T) {
	missing := []string{"leadership", "kubernetes", "communication", "terraform", "python"}
	got := filterSkillGaps(missing)
	want := []string{"kubernetes", "terraform", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterSkillGaps(%v) = %v, want %v", missing, got, want)
	}
}

func TestFilterSkillGapsEmpty(t *testing.T) {
	if got := filterSkillGaps(nil); len(got) != 0 {
		t.Errorf("filterSkillGaps(nil) = %v, want empty", got)
	}
}

func TestPhraseSkillsOnlyUntokenizableEntries(t *testing.T) {
	for _, p := range phraseSkills {
		if !strings.ContainsAny(p, " /") {
			t.Errorf("phraseSkills contains plain-token entry %q", p)
		}
	}
}

func TestPhraseSkillsIncludeSlashTerms(t *testing.T) {
	// "ci/cd" cannot survive tokenization (the slash splits it), so it must
	// be carried by the phrase scan.
	for _, p := range phraseSkills {
		if p == "ci/cd" {
			return
		}
	}
	t.Error("phraseSkills missing ci/cd")
}
