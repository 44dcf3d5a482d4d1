package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"ferrex/internal"
	"ferrex/internal/util"
)

// Files Excel writes alongside sheet pages when exporting a workbook as a
// web page; they carry no product data.
var skipSheetFiles = map[string]struct{}{
	"tabstrip.htm": {},
	"filelist.xml": {},
}

// ListSheetFiles returns the HTML sheet pages of an Excel web export in a
// stable order.
func ListSheetFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if _, skip := skipSheetFiles[name]; skip {
			continue
		}
		if strings.HasSuffix(name, ".htm") || strings.HasSuffix(name, ".html") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ParseHTMLTables extracts every table of one sheet page as whitespace-
// normalized cell rows. Rows without any non-empty cell are dropped; tables
// without surviving rows are dropped too.
func ParseHTMLTables(html, sheet string) []internal.SheetTable {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var out []internal.SheetTable
	doc.Find("table").Each(func(tableIdx int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var cells []string
			hasContent := false
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				text := util.NormalizeSpaces(cell.Text())
				if text != "" {
					hasContent = true
				}
				cells = append(cells, text)
			})
			if hasContent {
				rows = append(rows, cells)
			}
		})
		if len(rows) > 0 {
			out = append(out, internal.SheetTable{Sheet: sheet, TableIndex: tableIdx, Rows: rows})
		}
	})

	return out
}

// ExtractSheetFile reads one HTML sheet page from disk.
func ExtractSheetFile(path, sheet string) ([]internal.SheetTable, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHTMLTables(string(blob), sheet), nil
}

// ExtractXLSX reads a native workbook, one SheetTable per sheet with data.
func ExtractXLSX(content []byte) ([]internal.SheetTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []internal.SheetTable
	for i, sheet := range f.GetSheetList() {
		raw, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		var rows [][]string
		for _, row := range raw {
			cells := make([]string, 0, len(row))
			hasContent := false
			for _, c := range row {
				text := util.NormalizeSpaces(c)
				if text != "" {
					hasContent = true
				}
				cells = append(cells, text)
			}
			if hasContent {
				rows = append(rows, cells)
			}
		}
		if len(rows) > 0 {
			out = append(out, internal.SheetTable{Sheet: sheet, TableIndex: i, Rows: rows})
		}
	}
	return out, nil
}

// ExtractTablesFromInput handles the one-shot command inputs.
func ExtractTablesFromInput(inputType, input string) ([]internal.SheetTable, error) {
	switch inputType {
	case "html":
		sheet := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return ExtractSheetFile(input, strings.ToUpper(sheet))
	case "xlsx":
		blob, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		return ExtractXLSX(blob)
	default:
		return nil, fmt.Errorf("unsupported input type: %s", inputType)
	}
}
