package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ferrex/internal/config"
	"ferrex/internal/pipeline"
	"ferrex/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", "", "directory with exported HTML sheets")
		out := fs.String("out", "", "optional output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*dir) == "" {
			must(fmt.Errorf("--dir is required"))
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		svc := pipeline.NewProcessingService(db, cfg)
		result, err := svc.ProcessDirectory(*dir)
		if errors.Is(err, pipeline.ErrNoTables) {
			fmt.Println("no tables found in directory")
			return
		}
		if errors.Is(err, pipeline.ErrNoRecords) {
			fmt.Println("tables found but no records extracted; heuristics may need tuning for this layout")
			return
		}
		must(err)

		fmt.Printf("extract done supplier=%s strategy=%s sheets=%d rows=%d products=%d duplicatesRemoved=%d\n",
			result.Supplier, result.Strategy, result.Sheets, result.RowsSeen, len(result.Final), result.DuplicatesRemoved)
		fmt.Print(pipeline.BuildReport(result.Supplier, result.Stats, result.PerSheet))

		if strings.TrimSpace(*out) != "" {
			must(pipeline.ExportProductsToXLSX(result.Final, result.Stats, *out))
			fmt.Printf("exported %d products to %s\n", len(result.Final), *out)
		}
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file path")
		inType := fs.String("type", "", "html|xlsx")
		output := fs.String("output", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *inType == "" || *output == "" {
			must(fmt.Errorf("--input --type --output are required"))
		}

		tables, err := pipeline.ExtractTablesFromInput(*inType, *input)
		must(err)
		final, stats, duplicatesRemoved, err := pipeline.Run(cfg, tables)
		if errors.Is(err, pipeline.ErrNoTables) || errors.Is(err, pipeline.ErrNoRecords) {
			fmt.Printf("no products found in %s\n", *input)
			return
		}
		must(err)
		must(pipeline.ExportProductsToXLSX(final, stats, *output))
		fmt.Printf("run done products=%d duplicatesRemoved=%d output=%s\n", len(final), duplicatesRemoved, *output)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		supplier := fs.String("supplier", "", "supplier to export (empty for all)")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			*out = filepath.Join(cfg.OutputDir, "productos.xlsx")
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		products, err := db.ListProducts(*supplier)
		must(err)
		if len(products) == 0 {
			must(fmt.Errorf("no stored products for supplier=%q", *supplier))
		}
		stats := pipeline.Summarize(products)
		must(pipeline.ExportProductsToXLSX(products, stats, *out))
		fmt.Printf("exported %d products to %s\n", len(products), *out)
	case "report":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		supplier := fs.String("supplier", "", "supplier to report on (empty for all)")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		products, err := db.ListProducts(*supplier)
		must(err)
		if len(products) == 0 {
			fmt.Println("no stored products")
			return
		}
		stats := pipeline.Summarize(products)
		perSheet := map[string]int{}
		name := *supplier
		for _, p := range products {
			perSheet[p.SourceSheet]++
			if name == "" {
				name = p.SourceSupplier
			}
		}
		fmt.Print(pipeline.BuildReport(name, stats, perSheet))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: ferrex <command>")
	fmt.Println("commands:")
	fmt.Println("  extract --dir=./planilla_archivos [--out=./out/productos.xlsx]")
	fmt.Println("  run --input=... --type=html|xlsx --output=...xlsx")
	fmt.Println("  export:xlsx [--supplier=YAYI] [--out=./out/productos.xlsx]")
	fmt.Println("  report [--supplier=YAYI]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
