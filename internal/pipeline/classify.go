package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"ferrex/internal"
	"ferrex/internal/util"
)

// Noise recognized in the source sheets: UI instructions, column header
// labels, contact lines, boilerplate. A cell matching any of these
// contributes nothing to its row.
var irrelevantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BUSCADOR RAPIDO`),
	regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`),
	regexp.MustCompile(`(?i)PRECIOS ORIENTATIVOS`),
	regexp.MustCompile(`(?i)CALCULADORA`),
	regexp.MustCompile(`(?i)COMPLETAR DONDE`),
	regexp.MustCompile(`(?i)FUNCIONAMIENTO`),
	regexp.MustCompile(`(?i)INGRESAR.*CENTIMETROS`),
	regexp.MustCompile(`(?i)MARGEN DE GANANCIA`),
	regexp.MustCompile(`(?i)POR DEFECTO`),
	regexp.MustCompile(`(?i)RECUERDE QUE`),
	regexp.MustCompile(`(?i)CODIGO.*DESCRIPCION.*BASE`),
	regexp.MustCompile(`(?i)ESCRIBA AQUI MISMO`),
	regexp.MustCompile(`(?i)DIAMETRO DEL`),
	regexp.MustCompile(`(?i)CUANTO COBRAR`),
	regexp.MustCompile(`(?i)^YAYI$`),
	regexp.MustCompile(`(?i)^DESCRIPCION$`),
	regexp.MustCompile(`(?i)^CODIGO$`),
	regexp.MustCompile(`(?i)^BASE$`),
	regexp.MustCompile(`(?i)^PUBLICO$`),
	regexp.MustCompile(`(?i)^PRECIO$`),
	regexp.MustCompile(`^[.\-+$]$`),
	regexp.MustCompile(`(?i)OFERTAS`),
	regexp.MustCompile(`(?i)FECHA`),
	regexp.MustCompile(`(?i)% GANANCIA`),
	regexp.MustCompile(`(?i)SIN IVA`),
	regexp.MustCompile(`(?i)COSTO FINAL`),
}

// Long free text with imperative verbs is embedded usage help, not data.
var reImperative = regexp.MustCompile(`(?i)\b(INGRESAR|INGRESE|COMPLETAR|COMPLETE|SELECCIONE|SELECCIONA|ESCRIBA|CLICK)\b`)

var (
	reCode     = regexp.MustCompile(`^[0-9]{6,8}$`)
	reVat      = regexp.MustCompile(`^[0-9]{1,2}$`)
	rePrice    = regexp.MustCompile(`^(?:\$|ARS|USD|PESOS?)?\s*[\d.,]+\s*(?:\$|ARS|USD|PESOS?)?$`)
	reMeasure  = regexp.MustCompile(`^\d+(?:/\d+"?|[xX]\d+(?:[.,]\d+)?|\s?(?:MM|CM|mm|cm)|")$`)
	reQuantity = regexp.MustCompile(`(?i)^(?:(?:STOCK|CANTIDAD|QTY|UNIDADES)[\s:]*\d+|\d+\s*(?:UND|UNIT|PCS|KG|GR|LT|ML)\.?|[xX]\s?\d+)$`)
	reBrand    = regexp.MustCompile(`(?i)^(STANLEY|DEWALT|MAKITA|BOSCH|BLACK\s*&?\s*DECKER|TRUPER|BAHCO|IRWIN|MILWAUKEE)$`)
	reCategory = regexp.MustCompile(`(?i)^(HERRAMIENTAS?|TORNILLOS?|TUERCAS?|CLAVOS?|PINTURA|ELECTRICIDAD|PLOMERIA|CONSTRUCCION)$`)

	// Digit runs that passed none of the numeric rules (3-5 digit codes cut
	// short, zero prices) are too ambiguous to keep as text.
	reNumericOnly = regexp.MustCompile(`^[\d.,\s]+$`)
)

const (
	minDescriptionChars = 3
	maxDescriptionChars = 80
	maxFreeTextChars    = 100
)

// Classify decides the semantic kind of a single raw cell. Rules are
// evaluated in order and the first match wins; cells that are empty or match
// nothing report ok=false. The function is pure: it reads only its input and
// the static pattern tables above.
func Classify(cell string) (internal.ClassifiedField, bool) {
	clean := util.NormalizeSpaces(cell)
	if clean == "" {
		return internal.ClassifiedField{}, false
	}
	upper := strings.ToUpper(clean)

	if isIrrelevant(upper) {
		return internal.ClassifiedField{Kind: internal.KindIrrelevant, Value: clean}, true
	}
	if reCode.MatchString(upper) {
		return internal.ClassifiedField{Kind: internal.KindCode, Value: clean}, true
	}
	if reVat.MatchString(upper) {
		if v, err := strconv.Atoi(upper); err == nil && v <= 50 {
			return internal.ClassifiedField{Kind: internal.KindVatRate, Value: clean}, true
		}
	}
	if value, ok := classifyPrice(upper); ok {
		return internal.ClassifiedField{Kind: internal.KindPrice, Value: value}, true
	}
	if reMeasure.MatchString(clean) {
		return internal.ClassifiedField{Kind: internal.KindMeasurement, Value: clean}, true
	}
	if reQuantity.MatchString(clean) {
		return internal.ClassifiedField{Kind: internal.KindQuantity, Value: clean}, true
	}
	if reBrand.MatchString(clean) {
		return internal.ClassifiedField{Kind: internal.KindBrand, Value: upper}, true
	}
	if reCategory.MatchString(clean) {
		return internal.ClassifiedField{Kind: internal.KindCategory, Value: upper}, true
	}
	if reNumericOnly.MatchString(clean) {
		return internal.ClassifiedField{}, false
	}
	if n := len([]rune(clean)); n >= minDescriptionChars && n <= maxDescriptionChars {
		return internal.ClassifiedField{Kind: internal.KindDescription, Value: clean}, true
	}

	return internal.ClassifiedField{}, false
}

func isIrrelevant(upper string) bool {
	for _, re := range irrelevantPatterns {
		if re.MatchString(upper) {
			return true
		}
	}
	if len([]rune(upper)) > maxFreeTextChars && reImperative.MatchString(upper) {
		return true
	}
	return false
}

// classifyPrice accepts tokens made of digits with comma/dot separators and
// an optional currency marker. The cleaned token keeps its original
// separators; values that reduce to zero are not prices.
func classifyPrice(upper string) (string, bool) {
	if !rePrice.MatchString(upper) {
		return "", false
	}
	cleaned := util.CleanNumeric(upper)
	if cleaned == "" || !strings.ContainsAny(cleaned, ",.") {
		return "", false
	}
	value, ok := util.NumericValue(cleaned)
	if !ok || value <= 0 {
		return "", false
	}
	return cleaned, true
}
