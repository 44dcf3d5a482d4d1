package pipeline

import (
	"ferrex/internal"
	"ferrex/internal/config"
	"ferrex/internal/util"
)

// QualityFilter re-applies the acceptance rule over deduplicated candidates
// and measures field coverage. Assembly already enforces acceptance, but the
// filter repeats it so callers feeding records from storage or other sources
// get the same guarantee.
type QualityFilter struct {
	asm *Assembler
}

func NewQualityFilter(cfg config.Config) *QualityFilter {
	return &QualityFilter{asm: NewAssembler(cfg)}
}

func (q *QualityFilter) FilterAndSummarize(records []internal.CandidateRecord) ([]internal.ProductRecord, internal.QualityStats) {
	final := make([]internal.ProductRecord, 0, len(records))
	for _, record := range records {
		if !q.asm.accepted(record) {
			continue
		}
		if record.Category == nil {
			record.Category = util.StringPtr(defaultCategory)
		}
		final = append(final, internal.ProductRecord{CandidateRecord: record})
	}
	return final, Summarize(final)
}

// Summarize computes coverage statistics in a single pass.
func Summarize(final []internal.ProductRecord) internal.QualityStats {
	stats := internal.QualityStats{Total: len(final)}
	for _, p := range final {
		if p.Code != nil {
			stats.WithCode++
		}
		if p.Description != nil {
			stats.WithDescription++
		}
		if p.HasPrice() {
			stats.WithPrice++
		}
		if p.Quantity != nil {
			stats.WithQuantity++
		}
		if p.Measurement != nil {
			stats.WithMeasurement++
		}
		if p.VatRate != nil {
			stats.WithVat++
		}
		if p.Brand != nil {
			stats.WithBrand++
		}
		if p.Category != nil {
			stats.WithCategory++
		}
		if p.Code != nil && p.Description != nil && p.HasPrice() {
			stats.Complete++
		}
	}
	if stats.Total > 0 {
		stats.CompleteRatio = float64(stats.Complete) / float64(stats.Total)
	}
	return stats
}
