package pipeline

import (
	"testing"

	"ferrex/internal"
	"ferrex/internal/util"
)

func candidate(code, description, price string, vat int) internal.CandidateRecord {
	var r internal.CandidateRecord
	if code != "" {
		r.Code = util.StringPtr(code)
	}
	if description != "" {
		r.Description = util.StringPtr(description)
	}
	if price != "" {
		r.Price = util.StringPtr(price)
	}
	if vat > 0 {
		r.VatRate = util.IntPtr(vat)
	}
	return r
}

func TestDeduplicateKeepsMostComplete(t *testing.T) {
	sparse := candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "", 0)
	full := candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "5648,37", 24)

	unique, removed := Deduplicate([]internal.CandidateRecord{sparse, full}, 10)
	if removed != 1 {
		t.Fatalf("removed=%d", removed)
	}
	if len(unique) != 1 {
		t.Fatalf("len=%d", len(unique))
	}
	if unique[0].Price == nil || unique[0].VatRate == nil {
		t.Fatalf("sparse variant kept: %+v", unique[0])
	}
}

func TestDeduplicateTieKeepsFirst(t *testing.T) {
	first := candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "", 0)
	second := candidate("1000000", "ARANDELA FIBRA ORBIS GRANDE", "", 0)

	unique, removed := Deduplicate([]internal.CandidateRecord{first, second}, 10)
	if removed != 1 {
		t.Fatalf("removed=%d", removed)
	}
	if *unique[0].Description != "ARANDELA FIBRA ORBIS CHICA" {
		t.Fatalf("description=%s", *unique[0].Description)
	}
}

func TestDeduplicateCodelessFilter(t *testing.T) {
	long := candidate("", "ARANDELA FIBRA ORBIS BOTONERA CHICA", "", 0)
	short := candidate("", "CORTA", "", 0)

	unique, _ := Deduplicate([]internal.CandidateRecord{long, short}, 10)
	if len(unique) != 1 {
		t.Fatalf("len=%d", len(unique))
	}
	if unique[0].Code != nil {
		t.Fatalf("unexpected code")
	}
}

func TestDeduplicateOrder(t *testing.T) {
	records := []internal.CandidateRecord{
		candidate("2000000", "PINZA UNIVERSAL ACERO FORJADO", "", 0),
		candidate("", "ARANDELA FIBRA ORBIS BOTONERA CHICA", "", 0),
		candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "", 0),
	}

	unique, removed := Deduplicate(records, 10)
	if removed != 0 {
		t.Fatalf("removed=%d", removed)
	}
	if len(unique) != 3 {
		t.Fatalf("len=%d", len(unique))
	}
	if *unique[0].Code != "1000000" || *unique[1].Code != "2000000" {
		t.Fatalf("code order: %v, %v", *unique[0].Code, *unique[1].Code)
	}
	if unique[2].Code != nil {
		t.Fatalf("code-less record not last")
	}
}

func TestDeduplicateUniqueCodes(t *testing.T) {
	records := []internal.CandidateRecord{
		candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "", 0),
		candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "5648,37", 0),
		candidate("1000000", "ARANDELA FIBRA ORBIS CHICA", "5648,37", 24),
		candidate("3000000", "PINZA UNIVERSAL ACERO FORJADO", "", 0),
	}

	unique, removed := Deduplicate(records, 10)
	if removed != 2 {
		t.Fatalf("removed=%d", removed)
	}
	seen := map[string]int{}
	for _, r := range unique {
		if r.Code != nil {
			seen[*r.Code]++
		}
	}
	for code, count := range seen {
		if count != 1 {
			t.Fatalf("code %s appears %d times", code, count)
		}
	}
}
