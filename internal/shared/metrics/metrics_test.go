package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d, want 3", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("bucket counts = %v, want [1 1]", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("sum = %v, want 555", snap.sum)
	}
}

func TestRenderFormat(t *testing.T) {
	out := Render()
	for _, want := range []string{
		"# TYPE analysis_started_total counter",
		"# TYPE analysis_duration_ms histogram",
		`analysis_duration_ms_bucket{le="+Inf"}`,
		"analysis_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}
