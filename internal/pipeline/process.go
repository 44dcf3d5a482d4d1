package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ferrex/internal"
	"ferrex/internal/config"
	"ferrex/internal/storage"
)

// Empty-result signals. Both are expected conditions during batch runs and
// callers should test with errors.Is instead of aborting.
var (
	ErrNoTables  = errors.New("no tables found")
	ErrNoRecords = errors.New("no records extracted")
)

// Run drives the core over already-extracted tables: walk, dedupe, filter.
func Run(cfg config.Config, tables []internal.SheetTable) ([]internal.ProductRecord, internal.QualityStats, int, error) {
	if len(tables) == 0 {
		return nil, internal.QualityStats{}, 0, ErrNoTables
	}

	walker := NewWalker(cfg)
	var candidates []internal.CandidateRecord
	for _, table := range tables {
		candidates = append(candidates, walker.Walk(table)...)
	}
	if len(candidates) == 0 {
		return nil, internal.QualityStats{}, 0, ErrNoRecords
	}

	unique, duplicatesRemoved := Deduplicate(candidates, cfg.MinLooseDescription)
	final, stats := NewQualityFilter(cfg).FilterAndSummarize(unique)
	if len(final) == 0 {
		return nil, internal.QualityStats{}, duplicatesRemoved, ErrNoRecords
	}
	return final, stats, duplicatesRemoved, nil
}

type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
}

func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg}
}

type DirectoryResult struct {
	Supplier          string
	Strategy          SupplierStrategy
	Sheets            int
	RowsSeen          int
	DuplicatesRemoved int
	Final             []internal.ProductRecord
	Stats             internal.QualityStats
	PerSheet          map[string]int
}

// ProcessDirectory extracts every sheet page of an Excel web export, resolves
// the supplier per sheet, runs the core pipeline and persists the outcome.
func (s *ProcessingService) ProcessDirectory(dir string) (DirectoryResult, error) {
	start := time.Now()

	files, err := ListSheetFiles(dir)
	if err != nil {
		return DirectoryResult{}, err
	}
	if len(files) == 0 {
		return DirectoryResult{}, ErrNoTables
	}

	contents := make(map[string]string, len(files))
	perFile := make(map[string][]SupplierHit, len(files))
	for _, file := range files {
		blob, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return DirectoryResult{}, fmt.Errorf("read sheet %s: %w", file, err)
		}
		contents[file] = string(blob)
		perFile[file] = DetectSuppliers(contents[file])
	}

	principal, strategy := ResolveStrategy(perFile, s.cfg.SupplierDominance)
	if principal == "" {
		principal = s.cfg.DefaultSupplier
	}

	var tables []internal.SheetTable
	rowsSeen := 0
	for i, file := range files {
		hits := perFile[file]
		label := SheetLabel(file, i, strategy, principal, hits)
		supplier := principal
		if strategy == StrategyMultiple && len(hits) > 0 && hits[0].Confidence > 0.5 {
			supplier = hits[0].Name
		}
		for _, table := range ParseHTMLTables(contents[file], label) {
			table.Supplier = supplier
			rowsSeen += len(table.Rows)
			tables = append(tables, table)
		}
	}

	final, stats, duplicatesRemoved, err := Run(s.cfg, tables)
	if err != nil {
		return DirectoryResult{}, err
	}

	perSheet := map[string]int{}
	for _, p := range final {
		perSheet[p.SourceSheet]++
	}

	if s.db != nil {
		if err := s.db.ReplaceProducts(principal, final); err != nil {
			return DirectoryResult{}, err
		}
		counts := map[string]int{
			"sheets":            len(files),
			"rowsSeen":          rowsSeen,
			"duplicatesRemoved": duplicatesRemoved,
			"final":             len(final),
			"durationMs":        int(time.Since(start).Milliseconds()),
		}
		if err := s.db.InsertRun(traceID(), dir, principal, counts, stats); err != nil {
			return DirectoryResult{}, err
		}
	}

	return DirectoryResult{
		Supplier:          principal,
		Strategy:          strategy,
		Sheets:            len(files),
		RowsSeen:          rowsSeen,
		DuplicatesRemoved: duplicatesRemoved,
		Final:             final,
		Stats:             stats,
		PerSheet:          perSheet,
	}, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
