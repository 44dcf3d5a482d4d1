package pipeline

import (
	"testing"

	"ferrex/internal"
)

func TestFilterAndSummarize(t *testing.T) {
	records := []internal.CandidateRecord{
		candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "5648,37", 24),
		candidate("", "ARANDELA FIBRA ORBIS BOTONERA CHICA", "", 0),
		candidate("", "CORTA", "", 0),    // too short without a code
		candidate("2000000", "", "", 0),  // code without description
	}

	final, stats := NewQualityFilter(testConfig()).FilterAndSummarize(records)
	if len(final) != 2 {
		t.Fatalf("len=%d", len(final))
	}
	for _, p := range final {
		if p.Description == nil {
			t.Fatalf("accepted record without description: %+v", p)
		}
		if p.Code == nil && len([]rune(*p.Description)) <= 10 {
			t.Fatalf("accepted short code-less record: %+v", p)
		}
		if p.Category == nil {
			t.Fatalf("category not defaulted")
		}
	}

	if stats.Total != 2 || stats.WithCode != 1 || stats.WithDescription != 2 || stats.WithPrice != 1 {
		t.Fatalf("stats=%+v", stats)
	}
	if stats.Complete != 1 {
		t.Fatalf("complete=%d", stats.Complete)
	}
	if stats.CompleteRatio != 0.5 {
		t.Fatalf("ratio=%v", stats.CompleteRatio)
	}
}

func TestSummarizeConsistency(t *testing.T) {
	products := []internal.ProductRecord{
		{CandidateRecord: candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "5648,37", 24)},
		{CandidateRecord: candidate("2000000", "PINZA UNIVERSAL ACERO FORJADO", "", 0)},
		{CandidateRecord: candidate("", "ARANDELA FIBRA ORBIS BOTONERA CHICA", "300,00", 0)},
	}

	stats := Summarize(products)
	minCover := stats.WithCode
	if stats.WithDescription < minCover {
		minCover = stats.WithDescription
	}
	if stats.WithPrice < minCover {
		minCover = stats.WithPrice
	}
	if stats.Complete > minCover {
		t.Fatalf("complete=%d exceeds min coverage %d", stats.Complete, minCover)
	}
	want := float64(stats.Complete) / float64(stats.Total)
	if stats.CompleteRatio != want {
		t.Fatalf("ratio=%v want %v", stats.CompleteRatio, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	if stats.Total != 0 || stats.CompleteRatio != 0 {
		t.Fatalf("stats=%+v", stats)
	}
}
