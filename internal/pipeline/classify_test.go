package pipeline

import (
	"testing"

	"ferrex/internal"
)

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  internal.FieldKind
		value string
	}{
		{name: "code", input: "1000000", kind: internal.KindCode, value: "1000000"},
		{name: "eight digit code", input: "12345678", kind: internal.KindCode, value: "12345678"},
		{name: "vat", input: "24", kind: internal.KindVatRate, value: "24"},
		{name: "price decimal comma", input: "5648,37", kind: internal.KindPrice, value: "5648,37"},
		{name: "price with currency", input: "$ 1.234,56", kind: internal.KindPrice, value: "1.234,56"},
		{name: "fraction", input: "1/2", kind: internal.KindMeasurement, value: "1/2"},
		{name: "fraction inches", input: `1/2"`, kind: internal.KindMeasurement, value: `1/2"`},
		{name: "dimension", input: "20x20", kind: internal.KindMeasurement, value: "20x20"},
		{name: "millimeters", input: "50mm", kind: internal.KindMeasurement, value: "50mm"},
		{name: "pack quantity", input: "x100", kind: internal.KindQuantity, value: "x100"},
		{name: "stock quantity", input: "STOCK: 12", kind: internal.KindQuantity, value: "STOCK: 12"},
		{name: "brand", input: "Stanley", kind: internal.KindBrand, value: "STANLEY"},
		{name: "category", input: "PINTURA", kind: internal.KindCategory, value: "PINTURA"},
		{name: "description", input: `ARANDELA FIBRA ORBIS CHICA DE 1/2" X100U.`, kind: internal.KindDescription, value: `ARANDELA FIBRA ORBIS CHICA DE 1/2" X100U.`},
		{name: "description collapses spaces", input: "MARTILLO   GALPONERO\t MANGO FIBRA", kind: internal.KindDescription, value: "MARTILLO GALPONERO MANGO FIBRA"},
		{name: "dot", input: ".", kind: internal.KindIrrelevant, value: "."},
		{name: "header label", input: "PRECIO", kind: internal.KindIrrelevant, value: "PRECIO"},
		{name: "ui noise", input: "BUSCADOR RAPIDO:", kind: internal.KindIrrelevant, value: "BUSCADOR RAPIDO:"},
		{name: "email", input: "distribuidorayayi@gmail.com", kind: internal.KindIrrelevant, value: "distribuidorayayi@gmail.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field, ok := Classify(tc.input)
			if !ok {
				t.Fatalf("no classification")
			}
			if field.Kind != tc.kind {
				t.Fatalf("kind=%s want %s", field.Kind, tc.kind)
			}
			if field.Value != tc.value {
				t.Fatalf("value=%q want %q", field.Value, tc.value)
			}
		})
	}
}

func TestClassifyAbsent(t *testing.T) {
	for _, input := range []string{
		"",
		"  ",
		"ab",    // too short for a description
		"51",    // two digits but out of VAT range
		"0,00",  // zero is not a price
		"12345", // bare digits, neither code nor price
	} {
		if field, ok := Classify(input); ok {
			t.Fatalf("classified %q as %s", input, field.Kind)
		}
	}
}

func TestClassifyPure(t *testing.T) {
	first, ok1 := Classify("5648,37")
	second, ok2 := Classify("5648,37")
	if ok1 != ok2 || first != second {
		t.Fatalf("classification not stable: %+v vs %+v", first, second)
	}
}
