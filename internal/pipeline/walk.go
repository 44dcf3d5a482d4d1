package pipeline

import (
	"strings"

	"ferrex/internal"
	"ferrex/internal/config"
)

var headerKeywords = []string{
	"CODIGO", "COD", "SKU", "DESCRIPCION", "DESC", "PRODUCTO",
	"PRECIO", "PRICE", "COST", "VALOR", "CANTIDAD", "QTY",
	"STOCK", "MARCA", "BRAND", "CATEGORIA", "TIPO",
}

// Walker iterates the rows of one extracted table, skipping a detected
// header row and stamping provenance on every record the assembler emits.
type Walker struct {
	asm *Assembler
}

func NewWalker(cfg config.Config) *Walker {
	return &Walker{asm: NewAssembler(cfg)}
}

func (w *Walker) Walk(table internal.SheetTable) []internal.CandidateRecord {
	rows := table.Rows
	if len(rows) > 0 && IsHeaderRow(rows[0]) {
		rows = rows[1:]
	}

	out := make([]internal.CandidateRecord, 0, len(rows))
	for _, row := range rows {
		record, ok := w.asm.Assemble(row)
		if !ok {
			continue
		}
		record.SourceSheet = table.Sheet
		record.SourceSupplier = table.Supplier
		out = append(out, record)
	}
	return out
}

// IsHeaderRow reports whether a row looks like column headers: at least two
// cells matching the header keyword lexicon.
func IsHeaderRow(row []string) bool {
	hits := 0
	for _, cell := range row {
		upper := strings.ToUpper(strings.TrimSpace(cell))
		if upper == "" {
			continue
		}
		for _, keyword := range headerKeywords {
			if strings.Contains(upper, keyword) {
				hits++
				break
			}
		}
		if hits >= 2 {
			return true
		}
	}
	return false
}
