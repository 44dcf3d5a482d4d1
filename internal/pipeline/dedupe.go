package pipeline

import (
	"sort"
	"strconv"

	"ferrex/internal"
)

// Deduplicate collapses candidates sharing a product code, keeping the
// variant with the most populated fields (ties keep the first seen). Every
// collision counts toward duplicatesRemoved whether the incoming or stored
// record loses. Code-less candidates survive only with a description longer
// than ten characters and are never deduplicated against each other.
//
// The result orders code-bearing records ascending by numeric code, codes
// that do not parse after them, and code-less records last.
func Deduplicate(records []internal.CandidateRecord, minLooseDescription int) ([]internal.CandidateRecord, int) {
	byCode := map[string]internal.CandidateRecord{}
	var codeOrder []string
	var codeless []internal.CandidateRecord
	duplicatesRemoved := 0

	for _, record := range records {
		if record.Code == nil {
			if record.Description != nil && len([]rune(*record.Description)) > minLooseDescription {
				codeless = append(codeless, record)
			}
			continue
		}

		code := *record.Code
		stored, exists := byCode[code]
		if !exists {
			byCode[code] = record
			codeOrder = append(codeOrder, code)
			continue
		}
		if record.FieldCount() > stored.FieldCount() {
			byCode[code] = record
		}
		duplicatesRemoved++
	}

	sort.SliceStable(codeOrder, func(i, j int) bool {
		return codeSortKey(codeOrder[i]) < codeSortKey(codeOrder[j])
	})

	unique := make([]internal.CandidateRecord, 0, len(codeOrder)+len(codeless))
	for _, code := range codeOrder {
		unique = append(unique, byCode[code])
	}
	unique = append(unique, codeless...)

	return unique, duplicatesRemoved
}

func codeSortKey(code string) int64 {
	v, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return 1<<62 - 1
	}
	return v
}
