package internal

// FieldKind is the semantic class assigned to a single table cell.
type FieldKind string

const (
	KindCode        FieldKind = "code"
	KindPrice       FieldKind = "price"
	KindQuantity    FieldKind = "quantity"
	KindMeasurement FieldKind = "measurement"
	KindVatRate     FieldKind = "vat_rate"
	KindBrand       FieldKind = "brand"
	KindCategory    FieldKind = "category"
	KindDescription FieldKind = "description"
	KindIrrelevant  FieldKind = "irrelevant"
)

// ClassifiedField is the result of classifying one raw cell.
type ClassifiedField struct {
	Kind  FieldKind
	Value string
}

// SheetTable is one table extracted from a sheet, with provenance attached
// by the extraction layer. Supplier is resolved separately and may stay
// empty until the supplier detector has run over the sheet contents.
type SheetTable struct {
	Sheet      string
	Supplier   string
	TableIndex int
	Rows       [][]string
}

// CandidateRecord is the per-row output of the assembler, not yet
// deduplicated or quality-filtered. All fields are optional; a record is
// only emitted when it has a code plus description, or a description long
// enough to stand on its own.
type CandidateRecord struct {
	Code        *string
	Description *string
	Price       *string
	Prices      []string
	Quantity    *string
	Measurement *string
	VatRate     *int
	Brand       *string
	Category    *string

	SourceSheet    string
	SourceSupplier string
}

// FieldCount is the dedup tie-break metric: how many of the optional fields
// carry a value. Price and Prices count as a single field.
func (r CandidateRecord) FieldCount() int {
	n := 0
	if r.Code != nil {
		n++
	}
	if r.Description != nil {
		n++
	}
	if r.Price != nil || len(r.Prices) > 0 {
		n++
	}
	if r.Measurement != nil {
		n++
	}
	if r.VatRate != nil {
		n++
	}
	if r.Brand != nil {
		n++
	}
	if r.Category != nil {
		n++
	}
	return n
}

// HasPrice reports whether the record carries either price form.
func (r CandidateRecord) HasPrice() bool {
	return r.Price != nil || len(r.Prices) > 0
}

// ProductRecord is a candidate that survived dedup and the quality filter.
// Code-bearing records are unique by code within a final set. ID is assigned
// by storage and zero otherwise.
type ProductRecord struct {
	ID int
	CandidateRecord
}

// QualityStats aggregates field coverage over a final product set.
// Complete counts records carrying code, description and a price.
type QualityStats struct {
	Total           int
	WithCode        int
	WithDescription int
	WithPrice       int
	WithQuantity    int
	WithMeasurement int
	WithVat         int
	WithBrand       int
	WithCategory    int
	Complete        int
	CompleteRatio   float64
}
