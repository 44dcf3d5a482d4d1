package pipeline

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Suppliers seen in the source spreadsheets. The detector also harvests
// email domains, so the list does not need to be complete.
var knownSuppliers = []string{
	"CRIMARAL", "ANCAIG", "DAFYS", "HERRAMETAL", "YAYI",
	"DIST_CITY_BELL", "BABUSI", "FERRIPLAST", "FERRETERIA",
	"DISTRIBUIDORA", "BRIMAX", "PUMA", "ROTAFLEX",
}

var reSupplierEmail = regexp.MustCompile(`\b([A-Z0-9._%+-]+)@([A-Z0-9-]+)\.[A-Z0-9.-]*[A-Z]{2,}\b`)

type SupplierHit struct {
	Name        string
	Occurrences int
	Confidence  float64
}

type SupplierStrategy string

const (
	StrategySingle   SupplierStrategy = "single_supplier"
	StrategyMultiple SupplierStrategy = "multiple_suppliers"
	StrategyUnknown  SupplierStrategy = "unknown"
)

// DetectSuppliers scans raw sheet content for known supplier names and
// email domains, scoring each hit by occurrence count.
func DetectSuppliers(content string) []SupplierHit {
	upper := strings.ToUpper(content)

	var hits []SupplierHit
	seen := map[string]struct{}{}
	for _, supplier := range knownSuppliers {
		count := strings.Count(upper, supplier)
		if count == 0 {
			continue
		}
		confidence := float64(count) / 10
		if confidence > 1 {
			confidence = 1
		}
		hits = append(hits, SupplierHit{Name: supplier, Occurrences: count, Confidence: confidence})
		seen[supplier] = struct{}{}
	}

	for _, match := range reSupplierEmail.FindAllStringSubmatch(upper, -1) {
		domain := match[2]
		if len(domain) <= 3 {
			continue
		}
		if _, dup := seen[domain]; dup {
			continue
		}
		seen[domain] = struct{}{}
		hits = append(hits, SupplierHit{Name: domain, Occurrences: 1, Confidence: 0.8})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Confidence != hits[j].Confidence {
			return hits[i].Confidence > hits[j].Confidence
		}
		return hits[i].Occurrences > hits[j].Occurrences
	})
	return hits
}

// ResolveStrategy picks the dominant supplier across sheet files. When the
// dominant one covers at least the dominance share of the files, every sheet
// is treated as another list from that supplier; otherwise each sheet keeps
// its own detected name.
func ResolveStrategy(perFile map[string][]SupplierHit, dominance float64) (string, SupplierStrategy) {
	counts := map[string]int{}
	for _, hits := range perFile {
		for _, hit := range hits {
			counts[hit.Name]++
		}
	}
	if len(counts) == 0 || len(perFile) == 0 {
		return "", StrategyUnknown
	}

	principal := ""
	best := 0
	for name, count := range counts {
		if count > best || (count == best && name < principal) {
			principal = name
			best = count
		}
	}

	if float64(best)/float64(len(perFile)) >= dominance {
		return principal, StrategySingle
	}
	return principal, StrategyMultiple
}

// SheetLabel names a sheet according to the resolved strategy: numbered
// lists of one supplier, the per-sheet supplier name, or a generic label
// derived from the file name.
func SheetLabel(file string, index int, strategy SupplierStrategy, principal string, hits []SupplierHit) string {
	switch strategy {
	case StrategySingle:
		if len(hits) > 0 && hits[0].Confidence > 0.7 {
			return fmt.Sprintf("%s_LISTA_%02d", principal, index+1)
		}
		return fmt.Sprintf("%s_HOJA_%02d", principal, index+1)
	case StrategyMultiple:
		if len(hits) > 0 && hits[0].Confidence > 0.5 {
			return hits[0].Name
		}
		return fmt.Sprintf("PROVEEDOR_%02d", index+1)
	default:
		base := strings.TrimSuffix(file, filepath.Ext(file))
		if strings.HasPrefix(strings.ToLower(base), "sheet") {
			return fmt.Sprintf("HOJA_%02d", index+1)
		}
		return strings.ToUpper(base)
	}
}
