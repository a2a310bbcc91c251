package util

import "testing"

func TestHashContentStable(t *testing.T) {
	a := HashContent("python developer resume")
	b := HashContent("python developer resume")
	if a != b {
		t.Fatalf("expected stable hash, got %q and %q", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %d", len(a))
	}
}

func TestHashContentDiffers(t *testing.T) {
	if HashContent("resume a") == HashContent("resume b") {
		t.Fatalf("expected different hashes for different content")
	}
}
