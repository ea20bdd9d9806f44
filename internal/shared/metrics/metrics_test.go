package metrics

import (
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 || snap.sum != 555 {
		t.Fatalf("unexpected snapshot: count=%d sum=%v", snap.count, snap.sum)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
}

func TestRenderIncludesQuestionCategories(t *testing.T) {
	IncQuestions("extraction")
	IncQuestions("extraction")
	IncQuestions("lookup")
	IncDocumentsUploaded()

	out := Render()
	for _, want := range []string{
		`questions_total{category="extraction"}`,
		`questions_total{category="lookup"}`,
		"documents_uploaded_total",
		`simulated_latency_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, out)
		}
	}
	if strings.Index(out, `category="extraction"`) > strings.Index(out, `category="lookup"`) {
		t.Fatalf("expected categories sorted")
	}
}
