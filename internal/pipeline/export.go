package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ferrex/internal"
	"ferrex/internal/util"
)

// ExportProductsToXLSX writes the final product set to one sheet and the
// coverage statistics to a second. Absent optional fields render as empty
// cells; multi-price records join their values with " | ".
func ExportProductsToXLSX(products []internal.ProductRecord, stats internal.QualityStats, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"codigo", "descripcion", "precio", "precios", "cantidad",
		"medida", "iva", "marca", "categoria", "hoja", "proveedor",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, p := range products {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, util.DerefString(p.Code))
		set(2, util.DerefString(p.Description))
		set(3, util.DerefString(p.Price))
		set(4, strings.Join(p.Prices, " | "))
		set(5, util.DerefString(p.Quantity))
		set(6, util.DerefString(p.Measurement))
		set(7, util.DerefInt(p.VatRate))
		set(8, util.DerefString(p.Brand))
		set(9, util.DerefString(p.Category))
		set(10, p.SourceSheet)
		set(11, p.SourceSupplier)
	}

	statsSheet := "Resumen"
	if _, err := f.NewSheet(statsSheet); err != nil {
		return err
	}
	statRows := [][2]any{
		{"total_productos", stats.Total},
		{"con_codigo", stats.WithCode},
		{"con_descripcion", stats.WithDescription},
		{"con_precio", stats.WithPrice},
		{"con_cantidad", stats.WithQuantity},
		{"con_medida", stats.WithMeasurement},
		{"con_iva", stats.WithVat},
		{"con_marca", stats.WithBrand},
		{"con_categoria", stats.WithCategory},
		{"completos", stats.Complete},
		{"ratio_completos", stats.CompleteRatio},
	}
	for i, row := range statRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(statsSheet, labelCell, row[0])
		_ = f.SetCellValue(statsSheet, valueCell, row[1])
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
