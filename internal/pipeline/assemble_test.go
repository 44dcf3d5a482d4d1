package pipeline

import (
	"testing"

	"ferrex/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		MinLooseDescription: 10,
		SupplierDominance:   0.70,
		DefaultSupplier:     "YAYI",
	}
}

func TestAssembleFullRow(t *testing.T) {
	asm := NewAssembler(testConfig())
	record, ok := asm.Assemble([]string{"1000000", `ARANDELA FIBRA ORBIS CHICA DE 1/2" X100U.`, "5648,37", "24"})
	if !ok {
		t.Fatalf("row rejected")
	}
	if record.Code == nil || *record.Code != "1000000" {
		t.Fatalf("code=%v", record.Code)
	}
	if record.Description == nil || *record.Description != `ARANDELA FIBRA ORBIS CHICA DE 1/2" X100U.` {
		t.Fatalf("description=%v", record.Description)
	}
	if record.Price == nil || *record.Price != "5648,37" {
		t.Fatalf("price=%v", record.Price)
	}
	if record.VatRate == nil || *record.VatRate != 24 {
		t.Fatalf("vat=%v", record.VatRate)
	}
	if record.Category == nil || *record.Category != "General" {
		t.Fatalf("category=%v", record.Category)
	}
}

func TestAssembleNoiseRow(t *testing.T) {
	asm := NewAssembler(testConfig())
	if _, ok := asm.Assemble([]string{".", ".", ".", "."}); ok {
		t.Fatalf("noise row accepted")
	}
	if _, ok := asm.Assemble([]string{"BUSCADOR RAPIDO:", "distribuidorayayi@gmail.com", "OFERTAS", "FECHA"}); ok {
		t.Fatalf("boilerplate row accepted")
	}
}

func TestAssembleLongDescriptionOnly(t *testing.T) {
	asm := NewAssembler(testConfig())
	record, ok := asm.Assemble([]string{"", `ARANDELA FIBRA ORBIS BOTONERA 3/4" CHICA X100U.`, "", ""})
	if !ok {
		t.Fatalf("row rejected")
	}
	if record.Code != nil {
		t.Fatalf("code=%v", record.Code)
	}
	if record.Description == nil {
		t.Fatalf("description missing")
	}
}

func TestAssembleShortDescriptionRejected(t *testing.T) {
	asm := NewAssembler(testConfig())
	if _, ok := asm.Assemble([]string{"TUERCA M8"}); ok {
		t.Fatalf("short code-less description accepted")
	}
}

func TestAssembleRequirePrice(t *testing.T) {
	cfg := testConfig()
	cfg.RequirePrice = true
	asm := NewAssembler(cfg)

	if _, ok := asm.Assemble([]string{"MARTILLO GALPONERO MANGO FIBRA"}); ok {
		t.Fatalf("accepted without price")
	}
	if _, ok := asm.Assemble([]string{"MARTILLO GALPONERO MANGO FIBRA", "1250,00"}); !ok {
		t.Fatalf("rejected with price")
	}
}

func TestAssembleFirstCodeWins(t *testing.T) {
	asm := NewAssembler(testConfig())
	record, ok := asm.Assemble([]string{"1000000", "2000000", "MARTILLO GALPONERO MANGO FIBRA"})
	if !ok {
		t.Fatalf("row rejected")
	}
	if *record.Code != "1000000" {
		t.Fatalf("code=%s", *record.Code)
	}
}

func TestAssembleMultiplePrices(t *testing.T) {
	asm := NewAssembler(testConfig())
	record, ok := asm.Assemble([]string{"1000002", "TORNILLO AUTOPERFORANTE T2 X50U", "100,50", "200,75", "100,50"})
	if !ok {
		t.Fatalf("row rejected")
	}
	if record.Price != nil {
		t.Fatalf("scalar price set with multiple values")
	}
	if len(record.Prices) != 2 || record.Prices[0] != "100,50" || record.Prices[1] != "200,75" {
		t.Fatalf("prices=%v", record.Prices)
	}
}

func TestAssembleLongestDescriptionWins(t *testing.T) {
	asm := NewAssembler(testConfig())
	record, ok := asm.Assemble([]string{"DESTORNILLADOR PLANO", "PINZA UNIVERSAL ACERO FORJADO"})
	if !ok {
		t.Fatalf("row rejected")
	}
	if *record.Description != "PINZA UNIVERSAL ACERO FORJADO" {
		t.Fatalf("description=%s", *record.Description)
	}

	// Equal lengths keep the first seen.
	record, ok = asm.Assemble([]string{"MECHA ACERO RAPIDO 10MM", "DISCO CORTE METAL 115MM"})
	if !ok {
		t.Fatalf("row rejected")
	}
	if *record.Description != "MECHA ACERO RAPIDO 10MM" {
		t.Fatalf("description=%s", *record.Description)
	}
}
