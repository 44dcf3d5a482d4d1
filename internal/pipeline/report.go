package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"ferrex/internal"
)

// BuildReport renders a plain-text coverage summary. Downstream consumers
// show it directly or feed it to a summarization prompt; the pipeline itself
// never talks to the network.
func BuildReport(supplier string, stats internal.QualityStats, perSheet map[string]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "supplier: %s\n", supplier)
	fmt.Fprintf(&b, "products: %d\n", stats.Total)
	fmt.Fprintf(&b, "  with code: %d\n", stats.WithCode)
	fmt.Fprintf(&b, "  with description: %d\n", stats.WithDescription)
	fmt.Fprintf(&b, "  with price: %d\n", stats.WithPrice)
	fmt.Fprintf(&b, "  with measurement: %d\n", stats.WithMeasurement)
	fmt.Fprintf(&b, "  with vat: %d\n", stats.WithVat)
	fmt.Fprintf(&b, "  complete (code+description+price): %d (%.1f%%)\n", stats.Complete, stats.CompleteRatio*100)

	if len(perSheet) > 0 {
		b.WriteString("per sheet:\n")
		sheets := make([]string, 0, len(perSheet))
		for sheet := range perSheet {
			sheets = append(sheets, sheet)
		}
		sort.Strings(sheets)
		for _, sheet := range sheets {
			fmt.Fprintf(&b, "  %s: %d\n", sheet, perSheet[sheet])
		}
	}

	return b.String()
}
