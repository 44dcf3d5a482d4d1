package pipeline

import (
	"strconv"

	"ferrex/internal"
	"ferrex/internal/config"
	"ferrex/internal/util"
)

const defaultCategory = "General"

// Assembler folds the classified cells of one row into a candidate record.
type Assembler struct {
	minLooseDescription int
	requirePrice        bool
}

func NewAssembler(cfg config.Config) *Assembler {
	return &Assembler{
		minLooseDescription: cfg.MinLooseDescription,
		requirePrice:        cfg.RequirePrice,
	}
}

// Assemble classifies every cell in column order and folds the results into
// a record. The first code wins, prices accumulate with exact duplicates
// dropped, the longest description wins (first seen keeps ties), and the
// remaining scalars are first-occurrence. Rows whose fold fails the
// acceptance rule report ok=false and leave nothing behind.
func (a *Assembler) Assemble(row []string) (internal.CandidateRecord, bool) {
	var record internal.CandidateRecord
	var prices []string
	classified := 0

	for _, cell := range row {
		field, ok := Classify(cell)
		if !ok || field.Kind == internal.KindIrrelevant {
			continue
		}
		classified++

		switch field.Kind {
		case internal.KindCode:
			if record.Code == nil {
				record.Code = util.StringPtr(field.Value)
			}
		case internal.KindPrice:
			if !containsString(prices, field.Value) {
				prices = append(prices, field.Value)
			}
		case internal.KindDescription:
			if record.Description == nil || len([]rune(field.Value)) > len([]rune(*record.Description)) {
				record.Description = util.StringPtr(field.Value)
			}
		case internal.KindQuantity:
			if record.Quantity == nil {
				record.Quantity = util.StringPtr(field.Value)
			}
		case internal.KindMeasurement:
			if record.Measurement == nil {
				record.Measurement = util.StringPtr(field.Value)
			}
		case internal.KindVatRate:
			if record.VatRate == nil {
				if v, err := strconv.Atoi(field.Value); err == nil {
					record.VatRate = util.IntPtr(v)
				}
			}
		case internal.KindBrand:
			if record.Brand == nil {
				record.Brand = util.StringPtr(field.Value)
			}
		case internal.KindCategory:
			if record.Category == nil {
				record.Category = util.StringPtr(field.Value)
			}
		}
	}

	if classified == 0 {
		return internal.CandidateRecord{}, false
	}

	if len(prices) == 1 {
		record.Price = util.StringPtr(prices[0])
	} else if len(prices) > 1 {
		record.Prices = prices
	}

	if !a.accepted(record) {
		return internal.CandidateRecord{}, false
	}
	if record.Category == nil {
		record.Category = util.StringPtr(defaultCategory)
	}
	return record, true
}

// accepted is the record acceptance rule: a code with any description, or a
// description long enough to be trusted on its own (optionally backed by a
// price when RequirePrice is set).
func (a *Assembler) accepted(record internal.CandidateRecord) bool {
	if record.Description == nil {
		return false
	}
	if record.Code != nil {
		return true
	}
	if len([]rune(*record.Description)) <= a.minLooseDescription {
		return false
	}
	if a.requirePrice && !record.HasPrice() {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
